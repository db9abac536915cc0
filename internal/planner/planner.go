// Package planner turns the probed facts about one container (tags, native
// chapters, artwork) into an immutable per-file conversion plan. The ffmpeg
// package renders the plan into an argument list; keeping decision and
// rendering apart makes both halves testable without a binary.
package planner

import (
	"github.com/backmassage/bookmux/internal/artwork"
	"github.com/backmassage/bookmux/internal/cue"
	"github.com/backmassage/bookmux/internal/probe"
)

// ArtworkMode selects how cover art reaches the output.
type ArtworkMode int

const (
	ArtworkNone     ArtworkMode = iota
	ArtworkExternal             // Second input file; its image stream is mapped.
	ArtworkEmbedded             // Image stream copied from input 0 directly.
)

// FilePlan holds everything needed to build and report one conversion.
// Built once per file and not mutated afterwards.
type FilePlan struct {
	InputPath  string
	OutputPath string

	ArtworkMode ArtworkMode
	ArtworkPath string // Set only for ArtworkExternal.

	// CopyChapters requests -map_chapters from input 0. It is set only for
	// native container chapters; cue-derived chapters are carried for
	// reporting but never rendered into ffmpeg arguments.
	CopyChapters   bool
	NativeChapters int
	CueChapters    []cue.Chapter
}

// HasChapters reports whether the output will carry chapter markers.
func (p *FilePlan) HasChapters() bool { return p.CopyChapters }

// ArtworkIncluded reports whether the output will carry an attached picture.
func (p *FilePlan) ArtworkIncluded() bool { return p.ArtworkMode != ArtworkNone }

// BuildPlan reconciles probe, artwork, and cue results into a FilePlan.
// Precedence: an external artwork file suppresses embedded artwork
// entirely; native chapters win over cue-derived ones. The caller fills in
// InputPath and OutputPath.
func BuildPlan(pr *probe.ProbeResult, art artwork.Reference, cueChapters []cue.Chapter) *FilePlan {
	plan := &FilePlan{
		NativeChapters: pr.ChapterCount(),
		CueChapters:    cueChapters,
	}

	switch {
	case art.ExternalPath != "":
		plan.ArtworkMode = ArtworkExternal
		plan.ArtworkPath = art.ExternalPath
	case art.Embedded:
		plan.ArtworkMode = ArtworkEmbedded
	}

	if pr.HasChapters() {
		plan.CopyChapters = true
	}

	return plan
}
