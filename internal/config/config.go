// Package config holds runtime configuration: defaults, YAML config-file
// loading, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a YAML config file, and then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths. InputDir comes from the first positional arg; OutputDir from
	// the optional second arg, defaulting to <InputDir>/converted_mp3.
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Encode settings for the MP3 output.
	AudioCodec string `yaml:"audio_codec"` // Default: "libmp3lame".
	VBRQuality int    `yaml:"vbr_quality"` // Default: 2 (VBR ~190 kbps). Range 0-9.

	// File extensions (lowercase, with leading dot; not user-configurable).
	InputExt  string `yaml:"-"` // Fixed: ".m4b".
	OutputExt string `yaml:"-"` // Fixed: ".mp3".
	CueExt    string `yaml:"-"` // Fixed: ".cue".

	// Behavior flags.
	DryRun       bool `yaml:"dry_run"`
	SkipExisting bool `yaml:"skip_existing"` // Skip files whose output already exists.

	// Display and logging.
	Verbose   bool      `yaml:"verbose"`
	ColorMode ColorMode `yaml:"color"`    // Default: "auto".
	LogFile   string    `yaml:"log_file"` // Optional log file path.
	CheckOnly bool      `yaml:"-"`        // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		AudioCodec:   "libmp3lame",
		VBRQuality:   2,
		InputExt:     ".m4b",
		OutputExt:    ".mp3",
		CueExt:       ".cue",
		DryRun:       false,
		SkipExisting: false,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ResolveOutputDir fills in the default output directory when none was given.
// Called after positional args are parsed.
func (c *Config) ResolveOutputDir() {
	if c.OutputDir == "" && c.InputDir != "" {
		c.OutputDir = filepath.Join(c.InputDir, "converted_mp3")
	}
}

// Validate checks enum and range fields, and (when not in CheckOnly mode)
// requires an input directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.AudioCodec == "" {
		return errors.New("audio codec must not be empty")
	}
	if c.VBRQuality < 0 || c.VBRQuality > 9 {
		return fmt.Errorf("invalid VBR quality %d (LAME accepts 0-9)", c.VBRQuality)
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	return nil
}
