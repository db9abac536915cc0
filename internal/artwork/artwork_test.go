package artwork

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		t.Fatalf("touch %s: %v", path, err)
	}
	return path
}

func noVideo(context.Context, string) (bool, error)  { return false, nil }
func hasVideo(context.Context, string) (bool, error) { return true, nil }

func TestFindExternal_BaseNameBeatsCoverName(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")
	want := touch(t, dir, "book.jpg")
	touch(t, dir, "cover.png")

	if got := FindExternal(book); got != want {
		t.Errorf("FindExternal: got %q, want %q", got, want)
	}
}

func TestFindExternal_ExtensionOrder(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")
	touch(t, dir, "book.png")
	want := touch(t, dir, "book.jpeg")

	// jpeg precedes png in the fixed search order.
	if got := FindExternal(book); got != want {
		t.Errorf("FindExternal: got %q, want %q", got, want)
	}
}

func TestFindExternal_ConventionalNames(t *testing.T) {
	tests := []struct {
		name  string
		image string
	}{
		{"cover", "cover.jpg"},
		{"folder", "folder.png"},
		{"albumart", "albumart.webp"},
		{"front", "front.gif"},
		{"artwork", "artwork.tiff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			book := touch(t, dir, "book.m4b")
			want := touch(t, dir, tt.image)

			if got := FindExternal(book); got != want {
				t.Errorf("FindExternal: got %q, want %q", got, want)
			}
		})
	}
}

func TestFindExternal_CoverNameOrder(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")
	want := touch(t, dir, "cover.webp")
	touch(t, dir, "folder.jpg")

	// "cover" is tried before "folder" even when folder has a
	// higher-priority extension.
	if got := FindExternal(book); got != want {
		t.Errorf("FindExternal: got %q, want %q", got, want)
	}
}

func TestFindExternal_NoMatch(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")
	touch(t, dir, "unrelated.jpg")
	touch(t, dir, "book.txt")

	if got := FindExternal(book); got != "" {
		t.Errorf("FindExternal: got %q, want empty", got)
	}
}

func TestLocate_ExternalSuppressesEmbeddedProbe(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")
	want := touch(t, dir, "book.jpg")

	probed := false
	ref, err := Locate(context.Background(), book, func(context.Context, string) (bool, error) {
		probed = true
		return true, nil
	})
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if ref.ExternalPath != want || ref.Embedded {
		t.Errorf("got %+v, want external only", ref)
	}
	if probed {
		t.Error("embedded probe ran despite external artwork")
	}
}

func TestLocate_EmbeddedFallback(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")

	ref, err := Locate(context.Background(), book, hasVideo)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if ref.ExternalPath != "" || !ref.Embedded {
		t.Errorf("got %+v, want embedded only", ref)
	}
	if !ref.Present() {
		t.Error("Present: got false, want true")
	}
}

func TestLocate_NoArtwork(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")

	ref, err := Locate(context.Background(), book, noVideo)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if ref.Present() {
		t.Errorf("Present: got true for %+v, want false", ref)
	}
}

func TestLocate_ProbeError(t *testing.T) {
	dir := t.TempDir()
	book := touch(t, dir, "book.m4b")

	boom := errors.New("ffprobe exploded")
	ref, err := Locate(context.Background(), book, func(context.Context, string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Locate error: got %v, want %v", err, boom)
	}
	if ref.Present() {
		t.Errorf("Present after probe error: got true, want false")
	}
}
