// Package artwork locates cover art for an audiobook container: an external
// image file next to the container, or failing that an embedded image
// stream inside it.
package artwork

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions is the fixed search order for external artwork files.
var imageExtensions = []string{"jpg", "jpeg", "png", "bmp", "gif", "tiff", "webp"}

// coverNames are conventional artwork base names, tried after the
// container's own base name.
var coverNames = []string{"cover", "folder", "albumart", "front", "artwork"}

// Reference identifies the artwork chosen for one conversion. At most one
// of ExternalPath/Embedded is active: an external file always wins, and
// Embedded is only probed when no external file exists.
type Reference struct {
	ExternalPath string
	Embedded     bool
}

// Present reports whether any artwork was found.
func (r Reference) Present() bool { return r.ExternalPath != "" || r.Embedded }

// VideoProber reports whether a container has any video stream (an embedded
// cover image is exposed as one). Matches probe.HasVideoStream; injected so
// tests run without a real ffprobe binary.
type VideoProber func(ctx context.Context, path string) (bool, error)

// Locate resolves the artwork for containerPath. External search first;
// only when it finds nothing is the container probed for an embedded image
// stream. A probe failure is returned so the caller can degrade to "no
// artwork" with a warning.
func Locate(ctx context.Context, containerPath string, hasVideo VideoProber) (Reference, error) {
	if ext := FindExternal(containerPath); ext != "" {
		return Reference{ExternalPath: ext}, nil
	}

	embedded, err := hasVideo(ctx, containerPath)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Embedded: embedded}, nil
}

// FindExternal searches the container's directory for an image file, first
// matching the container's base name across the fixed extension order, then
// the conventional cover names. Returns the first match or "".
func FindExternal(containerPath string) string {
	dir := filepath.Dir(containerPath)
	base := strings.TrimSuffix(filepath.Base(containerPath), filepath.Ext(containerPath))

	for _, ext := range imageExtensions {
		p := filepath.Join(dir, base+"."+ext)
		if isFile(p) {
			return p
		}
	}
	for _, name := range coverNames {
		for _, ext := range imageExtensions {
			p := filepath.Join(dir, name+"."+ext)
			if isFile(p) {
				return p
			}
		}
	}
	return ""
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
