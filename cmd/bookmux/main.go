// Command bookmux is the entrypoint for the bookmux audiobook converter CLI.
//
// It loads configuration (defaults, YAML config file, flags), validates it,
// and either runs system diagnostics (--check) or the batch conversion
// pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/bookmux/internal/check"
	"github.com/backmassage/bookmux/internal/config"
	"github.com/backmassage/bookmux/internal/display"
	"github.com/backmassage/bookmux/internal/logging"
	"github.com/backmassage/bookmux/internal/pipeline"
)

func main() {
	// 1. Load config from defaults, config file, and CLI flags.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookmux: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "bookmux: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bookmux: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for system check, run it and exit successfully.
	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		os.Exit(0)
	}

	// 3. Input directory must exist before anything else runs.
	if fi, err := os.Stat(cfg.InputDir); err != nil || !fi.IsDir() {
		log.Error("Input directory not found: %s", cfg.InputDir)
		log.Close()
		os.Exit(1)
	}

	log.Info("=== bookmux v%s ===", config.Version())
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	log.Info("")

	// 4. Ensure ffmpeg/ffprobe and the MP3 encoder are available; fail fast
	// before touching any file.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		log.Close()
		os.Exit(1)
	}

	// 5. Run the pipeline with SIGINT/SIGTERM cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := pipeline.Run(ctx, &cfg, log)

	// An empty input set exits cleanly; failed files and hard aborts do not.
	if stats.Abort == pipeline.AbortError || stats.Failed > 0 {
		log.Close()
		os.Exit(1)
	}
}
