// Package naming derives companion and output file paths from a container
// path.
package naming

import (
	"path/filepath"
	"strings"
)

// Stem returns the container's base name without its extension.
func Stem(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath builds the destination path: same base name as the input,
// placed in outputDir with the target audio extension (leading dot).
func OutputPath(inputPath, outputDir, outputExt string) string {
	return filepath.Join(outputDir, Stem(inputPath)+outputExt)
}

// SidecarPath replaces the container's extension with ext (leading dot),
// keeping the directory. Used to locate the cue sheet next to the input.
func SidecarPath(inputPath, ext string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}
