package naming

import (
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/books/The Long Road.m4b", "The Long Road"},
		{"book.m4b", "book"},
		{"/books/Book. With Dots.m4b", "Book. With Dots"},
		{"/books/noext", "noext"},
	}
	for _, tt := range tests {
		if got := Stem(tt.in); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/books/The Long Road.m4b", "/out", ".mp3")
	want := filepath.Join("/out", "The Long Road.mp3")
	if got != want {
		t.Errorf("OutputPath: got %q, want %q", got, want)
	}
}

func TestSidecarPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/books/The Long Road.m4b", "/books/The Long Road.cue"},
		{"book.m4b", "book.cue"},
		{"/books/Book. With Dots.m4b", "/books/Book. With Dots.cue"},
	}
	for _, tt := range tests {
		if got := SidecarPath(tt.in, ".cue"); got != tt.want {
			t.Errorf("SidecarPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
