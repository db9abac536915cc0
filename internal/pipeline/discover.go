package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover lists the container files directly inside inputDir (no descent
// into subdirectories), matching ext case-insensitively, sorted
// lexicographically for deterministic processing order.
func Discover(inputDir, ext string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			files = append(files, filepath.Join(inputDir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
