package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration with priority:
// CLI flags > config file > defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path := ConfigPathFromArgs(os.Args[1:])
	if path == "" {
		path = FindConfigFile()
	}
	if path != "" {
		// A discovered file must load just like an explicitly requested one;
		// silently ignoring a broken file would surprise the user.
		if err := LoadConfigFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if err := ParseFlags(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile overlays YAML settings from path onto cfg.
func LoadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// FindConfigFile searches standard locations for a config file.
// Returns empty string if none exists (non-fatal).
func FindConfigFile() string {
	home, _ := os.UserHomeDir()
	locations := []string{
		"./bookmux.yaml",
		"./bookmux.yml",
		filepath.Join(home, ".config", "bookmux", "config.yaml"),
		filepath.Join(home, ".config", "bookmux", "config.yml"),
		"/etc/bookmux/config.yaml",
	}
	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
