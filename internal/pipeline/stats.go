package pipeline

// AbortReason classifies runs that ended before any file was attempted.
// An empty input set is benign (the run exits cleanly); a discovery or
// output-directory failure is an error. Both are distinct from a run where
// files were attempted and failed.
type AbortReason int

const (
	AbortNone       AbortReason = iota
	AbortEmptyInput             // No matching container files found.
	AbortError                  // Discovery failed or output dir unusable.
)

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total            int
	Current          int
	Converted        int
	Skipped          int
	Failed           int
	Abort            AbortReason
	TotalOutputBytes int64
}

// Aborted reports whether the run ended before any file was attempted.
func (s *RunStats) Aborted() bool { return s.Abort != AbortNone }

// Attempted returns the number of files that reached a terminal outcome.
func (s *RunStats) Attempted() int {
	return s.Converted + s.Skipped + s.Failed
}
