package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the parsed
// format tags and chapter list.
func Probe(ctx context.Context, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_chapters",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

// HasVideoStream checks whether the container exposes any video stream
// (an embedded cover image shows up as one). It uses ffprobe's stream
// selection with minimal CSV output: any non-empty line means a match.
func HasVideoStream(ctx context.Context, path string) (bool, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v",
		"-show_entries", "stream=codec_type",
		"-of", "csv=p=0",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("ffprobe streams %q: %w", path, err)
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format   ffprobeFormat    `json:"format"`
	Chapters []ffprobeChapter `json:"chapters"`
}

type ffprobeFormat struct {
	Filename   string            `json:"filename"`
	NbStreams  int               `json:"nb_streams"`
	FormatName string            `json:"format_name"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	BitRate    string            `json:"bit_rate"`
	Tags       map[string]string `json:"tags"`
}

type ffprobeChapter struct {
	ID        int64             `json:"id"`
	TimeBase  string            `json:"time_base"`
	Start     int64             `json:"start"`
	StartTime string            `json:"start_time"`
	End       int64             `json:"end"`
	EndTime   string            `json:"end_time"`
	Tags      map[string]string `json:"tags"`
}

// --- Conversion from wire types to domain types ---

func buildResult(raw *ffprobeOutput) *ProbeResult {
	pr := &ProbeResult{
		Tags:     raw.Format.Tags,
		Duration: parseFloat(raw.Format.Duration),
		Size:     parseInt64(raw.Format.Size),
	}
	if pr.Tags == nil {
		pr.Tags = map[string]string{}
	}

	for i := range raw.Chapters {
		c := &raw.Chapters[i]
		pr.Chapters = append(pr.Chapters, Chapter{
			ID:       c.ID,
			Title:    c.Tags["title"],
			StartSec: parseFloat(c.StartTime),
			EndSec:   parseFloat(c.EndTime),
		})
	}
	return pr
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	s = strings.TrimSpace(s)
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
