package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// (or config-file values) hold unless the flag was actually set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with -ldflags "-X ...config.version=...".
var version = "1.1.0"

// Version returns the build version string.
func Version() string { return version }

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("bookmux", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var negated negatedFlags

	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, cfg, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "bookmux v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineBehaviorFlags registers dry-run and skip-existing.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "Preview only; do not convert")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", cfg.SkipExisting, "Skip files whose MP3 output already exists")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --config, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	// --config is consumed by Load before flag parsing; registered here so
	// the flag package accepts it and help text lists it.
	fs.String("config", "", "Path to YAML config file")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies color override flags into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets InputDir (required) and OutputDir (optional) when
// not in CheckOnly mode. A missing output dir is resolved to the default.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	switch len(args) {
	case 0:
		// InputDir may still come from the config file.
	case 1:
		cfg.InputDir = NormalizeDirArg(args[0])
	case 2:
		cfg.InputDir = NormalizeDirArg(args[0])
		cfg.OutputDir = NormalizeDirArg(args[1])
	default:
		return fmt.Errorf("expected <input_dir> [output_dir], got %d arguments", len(args))
	}
	cfg.ResolveOutputDir()
	return nil
}

// ConfigPathFromArgs scans raw CLI args for --config/-config before flag
// parsing, so the file can be loaded first and flags still win.
func ConfigPathFromArgs(args []string) string {
	for i, arg := range args {
		if arg == "--config" || arg == "-config" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
		if strings.HasPrefix(arg, "-config=") {
			return strings.TrimPrefix(arg, "-config=")
		}
	}
	return ""
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "bookmux v" + version + " — audiobook M4B-to-MP3 batch converter"},
		{"", ""},
		{"  bookmux [OPTIONS] <input_dir> [output_dir]", ""},
		{"", ""},
		{"", "Output defaults to <input_dir>/converted_mp3. Metadata tags,"},
		{"", "embedded chapters, and cover art are carried over when present."},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not convert"},
		{"  --skip-existing", "Skip files whose MP3 output already exists"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (includes ffmpeg log output)"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (default: search standard locations)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, MP3 encoder)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
