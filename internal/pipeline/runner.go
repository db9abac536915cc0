// Package pipeline orchestrates file discovery, per-file conversion, and
// batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/bookmux/internal/artwork"
	"github.com/backmassage/bookmux/internal/config"
	"github.com/backmassage/bookmux/internal/cue"
	"github.com/backmassage/bookmux/internal/display"
	"github.com/backmassage/bookmux/internal/ffmpeg"
	"github.com/backmassage/bookmux/internal/logging"
	"github.com/backmassage/bookmux/internal/naming"
	"github.com/backmassage/bookmux/internal/planner"
	"github.com/backmassage/bookmux/internal/probe"
)

const minFileSize = 1000

// preservedTagKeys are the format tags echoed after a successful
// conversion, in display order.
var preservedTagKeys = []string{"title", "artist", "album", "date", "genre"}

// Run is the top-level batch entry point. It discovers containers, converts
// each one sequentially, and returns aggregate stats. An empty input set or
// an unusable output directory aborts before any file is attempted.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir, cfg.InputExt)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		stats.Abort = AbortError
		return stats
	}
	if len(files) == 0 {
		log.Warn("No %s files found in %s", cfg.InputExt, cfg.InputDir)
		stats.Abort = AbortEmptyInput
		return stats
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		log.Error("Cannot create output directory %s: %v", cfg.OutputDir, err)
		stats.Abort = AbortError
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one container: validate → probe → cue → artwork →
// plan → execute → record outcome. Probe, cue-parse, and artwork errors
// degrade to empty values with a warning; only the ffmpeg invocation
// itself can fail the file.
func processFile(ctx context.Context, cfg *config.Config, log *logging.Logger, path string, stats *RunStats) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	// --- Validate ---
	fi, err := os.Stat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		fmt.Println()
		return
	}
	if fi.Size() < minFileSize {
		log.Error("File too small (possibly corrupt): %s", path)
		stats.Failed++
		fmt.Println()
		return
	}

	// --- Probe (soft: absent result means no tags, no chapters) ---
	pr, err := probe.Probe(ctx, path)
	if err != nil {
		log.Warn("Could not read metadata from %s: %v", basename, err)
		pr = nil
	}

	// --- Cue sheet (soft) ---
	var cueChapters []cue.Chapter
	cuePath := naming.SidecarPath(path, cfg.CueExt)
	if _, err := os.Stat(cuePath); err == nil {
		log.Info("Found cue sheet: %s", filepath.Base(cuePath))
		cueChapters, err = cue.ParseFile(cuePath)
		if err != nil {
			log.Warn("Could not parse cue sheet %s: %v", filepath.Base(cuePath), err)
			cueChapters = nil
		}
	}

	// --- Artwork (soft) ---
	art, err := artwork.Locate(ctx, path, probe.HasVideoStream)
	if err != nil {
		log.Warn("Artwork probe failed for %s: %v", basename, err)
		art = artwork.Reference{}
	}

	// --- Plan ---
	plan := planner.BuildPlan(pr, art, cueChapters)
	plan.InputPath = path
	plan.OutputPath = naming.OutputPath(path, cfg.OutputDir, cfg.OutputExt)

	logPlan(cfg, log, plan)

	// --- Skip-existing check ---
	if cfg.SkipExisting {
		if _, err := os.Stat(plan.OutputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(plan.OutputPath))
			stats.Skipped++
			fmt.Println()
			return
		}
	}

	log.Info("Converting: %s", basename)
	log.Info("  -> %s", filepath.Base(plan.OutputPath))

	// --- Dry-run ---
	if cfg.DryRun {
		log.Success("[DRY] Would convert")
		stats.Converted++
		fmt.Println()
		return
	}

	// --- Execute ---
	start := time.Now()
	result := ffmpeg.Execute(ctx, cfg, plan)
	if result.Err != nil {
		log.Error("Conversion failed: %v", result.Err)
		logStderr(log, result.Stderr)
		os.Remove(plan.OutputPath)
		stats.Failed++
		fmt.Println()
		return
	}

	// --- Record outcome ---
	elapsed := time.Since(start)
	var outSize int64
	if outInfo, err := os.Stat(plan.OutputPath); err == nil {
		outSize = outInfo.Size()
	}
	stats.TotalOutputBytes += outSize
	stats.Converted++

	log.Success("Converted in %ds (%s)", int(elapsed.Seconds()), display.FormatBytes(outSize))
	logPreservedTags(log, pr)
	fmt.Println()
}

// logPlan reports the chapter and artwork decisions for one file.
func logPlan(cfg *config.Config, log *logging.Logger, plan *planner.FilePlan) {
	switch {
	case plan.CopyChapters:
		log.Info("  Chapters: %d (from container)", plan.NativeChapters)
	case len(plan.CueChapters) > 0:
		// Cue chapters are informational only; they are not written out.
		log.Info("  Chapters: %d in cue sheet (output will have none)", len(plan.CueChapters))
	default:
		log.Debug(cfg.Verbose, "  Chapters: none")
	}

	if cfg.Verbose {
		for _, c := range plan.CueChapters {
			log.Debug(cfg.Verbose, "    [%s] %s", display.FormatOffset(c.OffsetMillis), c.Title)
		}
	}

	switch plan.ArtworkMode {
	case planner.ArtworkExternal:
		log.Info("  Cover art: %s", filepath.Base(plan.ArtworkPath))
	case planner.ArtworkEmbedded:
		log.Info("  Cover art: embedded image stream")
	default:
		log.Debug(cfg.Verbose, "  Cover art: none")
	}
}

// logPreservedTags echoes the common format tags that were carried over.
func logPreservedTags(log *logging.Logger, pr *probe.ProbeResult) {
	shown := false
	for _, key := range preservedTagKeys {
		v := pr.Tag(key)
		if v == "" {
			continue
		}
		if !shown {
			log.Info("  Metadata preserved:")
			shown = true
		}
		log.Info("    %s%s: %s", strings.ToUpper(key[:1]), key[1:], v)
	}
}

func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last ffmpeg output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d %s file(s)", stats.Total, cfg.InputExt)
	log.Info("Output folder: %s", cfg.OutputDir)
	log.Info("Audio: %s, VBR quality %d", cfg.AudioCodec, cfg.VBRQuality)
	if cfg.SkipExisting {
		log.Info("Existing outputs: skip")
	} else {
		log.Info("Existing outputs: overwrite")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d converted, %d skipped, %d failed", stats.Converted, stats.Skipped, stats.Failed)
	if cfg.DryRun {
		log.Info("  Total output size: n/a (dry run)")
		return
	}
	if stats.Converted > 0 {
		log.Info("  Total output size: %s", display.FormatBytes(stats.TotalOutputBytes))
	}
}
