package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/books/library", "/books/library"},
		{"single trailing slash", "/books/library/", "/books/library"},
		{"multiple trailing slashes", "/books/library///", "/books/library"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = "/books"
	cfg.ResolveOutputDir()
	if want := filepath.Join("/books", "converted_mp3"); cfg.OutputDir != want {
		t.Errorf("OutputDir: got %q, want %q", cfg.OutputDir, want)
	}

	cfg2 := DefaultConfig()
	cfg2.InputDir = "/books"
	cfg2.OutputDir = "/elsewhere"
	cfg2.ResolveOutputDir()
	if cfg2.OutputDir != "/elsewhere" {
		t.Errorf("explicit OutputDir overridden: got %q", cfg2.OutputDir)
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_VBRQuality(t *testing.T) {
	tests := []struct {
		name    string
		quality int
		wantErr bool
	}{
		{"zero is valid", 0, false},
		{"default is valid", 2, false},
		{"nine is valid", 9, false},
		{"negative is invalid", -1, true},
		{"ten is invalid", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.VBRQuality = tt.quality
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresInputDir(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when input dir is empty")
	}

	cfg.InputDir = "/books"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate with input dir: %v", err)
	}

	cfg2 := DefaultConfig()
	cfg2.CheckOnly = true
	if err := cfg2.Validate(); err != nil {
		t.Errorf("Validate in check-only mode: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookmux.yaml")
	data := []byte("input_dir: /books\nvbr_quality: 4\nskip_existing: true\ncolor: never\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := DefaultConfig()
	if err := LoadConfigFile(&cfg, path); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	if cfg.InputDir != "/books" {
		t.Errorf("InputDir: got %q, want /books", cfg.InputDir)
	}
	if cfg.VBRQuality != 4 {
		t.Errorf("VBRQuality: got %d, want 4", cfg.VBRQuality)
	}
	if !cfg.SkipExisting {
		t.Error("SkipExisting: got false, want true")
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode: got %q, want never", cfg.ColorMode)
	}
	// Untouched fields keep their defaults.
	if cfg.AudioCodec != "libmp3lame" {
		t.Errorf("AudioCodec: got %q, want libmp3lame", cfg.AudioCodec)
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("input_dir: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := DefaultConfig()
	if err := LoadConfigFile(&cfg, path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestConfigPathFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"absent", []string{"-v", "/books"}, ""},
		{"double dash", []string{"--config", "/etc/b.yaml", "/books"}, "/etc/b.yaml"},
		{"single dash", []string{"-config", "/etc/b.yaml"}, "/etc/b.yaml"},
		{"equals form", []string{"--config=/etc/b.yaml"}, "/etc/b.yaml"},
		{"single dash equals", []string{"-config=/etc/b.yaml"}, "/etc/b.yaml"},
		{"dangling flag", []string{"--config"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigPathFromArgs(tt.args); got != tt.want {
				t.Errorf("ConfigPathFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
