package display

import "testing"

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{59872345, "57.1 MiB"},
		{1073741824, "1.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatOffset(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0:00"},
		{-10, "0:00"},
		{999, "0:00"},
		{1000, "0:01"},
		{90493, "1:30"},
		{600000, "10:00"},
		{3600000, "1:00:00"},
		{7259986, "2:00:59"},
	}
	for _, tt := range tests {
		if got := FormatOffset(tt.in); got != tt.want {
			t.Errorf("FormatOffset(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
