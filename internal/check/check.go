// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for ffmpeg, ffprobe, and the MP3 encoder.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/bookmux/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing or
// unusable. Any of these aborts the run before a single file is processed.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrMP3EncodeFailed = errors.New("MP3 test encode failed (encoder unavailable in this ffmpeg build)")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of
// ffmpeg, ffprobe, the MP3 encoders ffmpeg reports, and a short test
// encode. Informational only, it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkTool(log, "ffmpeg")
	checkTool(log, "ffprobe")
	checkMP3Encoders(log)
	checkMP3Encode(cfg, log)
}

// checkTool verifies a binary is on PATH and logs its version string.
func checkTool(log Logger, name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	cmd := exec.Command(name, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// checkMP3Encoders lists the MP3 encoders reported by ffmpeg.
func checkMP3Encoders(log Logger) {
	log.Info("MP3 encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(strings.ToLower(line), "mp3") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkMP3Encode runs a minimal encode to verify the configured codec works.
func checkMP3Encode(cfg *config.Config, log Logger) {
	log.Info("Testing %s...", cfg.AudioCodec)
	if runSilent("ffmpeg", mp3TestArgs(cfg.AudioCodec)...) {
		log.Success("%s works", cfg.AudioCodec)
	} else {
		log.Error("%s test encode failed", cfg.AudioCodec)
	}
}

// CheckDeps is the pre-run validation: ffmpeg and ffprobe must be on PATH
// and the configured MP3 encoder must pass a short test encode. Returns a
// sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", mp3TestArgs(cfg.AudioCodec)...) {
		return ErrMP3EncodeFailed
	}
	return nil
}

// --- internal helpers ---

// mp3TestArgs returns the ffmpeg arguments for a minimal MP3 test encode.
func mp3TestArgs(codec string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", codec,
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
