package ffmpeg

import (
	"strconv"

	"github.com/backmassage/bookmux/internal/config"
	"github.com/backmassage/bookmux/internal/planner"
)

// Build constructs the complete ffmpeg argument slice for one conversion.
// The command always maps the audio from input 0 and copies its container
// metadata; artwork and chapter sections are injected per the plan.
//
// Argument order is deterministic: preamble, inputs, audio map + metadata,
// artwork maps, chapter copy, audio codec, overwrite, output.
func Build(cfg *config.Config, plan *planner.FilePlan) []string {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin")
	if cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Inputs ---
	args = append(args, "-i", plan.InputPath)
	if plan.ArtworkMode == planner.ArtworkExternal {
		args = append(args, "-i", plan.ArtworkPath)
	}

	// --- Audio map and metadata copy ---
	args = append(args, "-map", "0:a", "-map_metadata", "0")

	// --- Artwork ---
	// The image stream is copied, never re-encoded, and flagged as an
	// attached picture so players treat it as cover art.
	switch plan.ArtworkMode {
	case planner.ArtworkExternal:
		args = append(args,
			"-map", "1:v",
			"-c:v", "copy",
			"-disposition:v:0", "attached_pic",
		)
	case planner.ArtworkEmbedded:
		args = append(args,
			"-map", "0:v",
			"-c:v", "copy",
			"-disposition:v:0", "attached_pic",
		)
	}

	// --- Chapters ---
	// Only native container chapters are copied. Cue-derived chapters are
	// not rendered into arguments; that branch produces no chapter markers.
	if plan.CopyChapters {
		args = append(args, "-map_chapters", "0")
	}

	// --- Audio encode and output ---
	args = append(args,
		"-c:a", cfg.AudioCodec,
		"-q:a", strconv.Itoa(cfg.VBRQuality),
		"-y",
		plan.OutputPath,
	)

	return args
}
