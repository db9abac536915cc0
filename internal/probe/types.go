package probe

// Chapter holds one native chapter record from the container.
type Chapter struct {
	ID       int64
	Title    string
	StartSec float64
	EndSec   float64
}

// ProbeResult is the fully parsed output of a single ffprobe JSON call:
// container-level format tags plus the native chapter list. A nil
// ProbeResult is treated by callers exactly like one with no tags and no
// chapters.
type ProbeResult struct {
	Tags     map[string]string
	Chapters []Chapter
	Duration float64
	Size     int64
}

// HasChapters reports whether the container carries at least one native
// chapter. Safe on a nil receiver.
func (p *ProbeResult) HasChapters() bool {
	return p != nil && len(p.Chapters) > 0
}

// Tag returns the format tag for key, or "" when absent. Safe on a nil
// receiver.
func (p *ProbeResult) Tag(key string) string {
	if p == nil {
		return ""
	}
	return p.Tags[key]
}

// ChapterCount returns the number of native chapters. Safe on a nil receiver.
func (p *ProbeResult) ChapterCount() int {
	if p == nil {
		return 0
	}
	return len(p.Chapters)
}
