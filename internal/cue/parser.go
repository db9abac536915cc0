// Package cue parses cue-sheet track lists that ship alongside audiobook
// containers. Only the fields needed for chapter markers are extracted:
// per-track title and first index timestamp.
package cue

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// framesPerSecond is fixed by the cue-sheet format (CD frames).
const framesPerSecond = 75

// Chapter is one chapter marker derived from a cue-sheet track record.
type Chapter struct {
	Title        string
	OffsetMillis int64
}

var (
	reTrack = regexp.MustCompile(`^\s*TRACK\s+(\d+)`)
	reTitle = regexp.MustCompile(`^\s*TITLE\s+"(.*)"`)
	reIndex = regexp.MustCompile(`^\s*INDEX\s+\d+\s+(\d+):(\d+):(\d+)\s*$`)
)

// ParseFile reads and parses the cue sheet at path. An unreadable file is an
// error; a readable file with no usable track records yields an empty slice.
func ParseFile(path string) ([]Chapter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cue sheet: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse extracts chapter entries from cue-sheet text. Each TRACK block
// contributes one entry built from its quoted TITLE and the first INDEX
// timestamp. Records missing either field are skipped; entries appear in
// file order, with no uniqueness or monotonicity checks.
func Parse(r io.Reader) ([]Chapter, error) {
	var (
		chapters []Chapter
		inTrack  bool
		title    string
		haveT    bool
		emitted  bool
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()

		if reTrack.MatchString(line) {
			inTrack = true
			title = ""
			haveT = false
			emitted = false
			continue
		}
		if !inTrack {
			// A disc-level TITLE before the first TRACK is not a chapter.
			continue
		}

		if m := reTitle.FindStringSubmatch(line); m != nil && !haveT {
			title = m[1]
			haveT = true
			continue
		}

		if m := reIndex.FindStringSubmatch(line); m != nil && haveT && !emitted {
			mm, _ := strconv.Atoi(m[1])
			ss, _ := strconv.Atoi(m[2])
			ff, _ := strconv.Atoi(m[3])
			chapters = append(chapters, Chapter{
				Title:        title,
				OffsetMillis: offsetMillis(mm, ss, ff),
			})
			emitted = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read cue sheet: %w", err)
	}
	return chapters, nil
}

// offsetMillis converts a cue timestamp to milliseconds. The frame part is
// floored: ff*1000/75 in integer arithmetic.
func offsetMillis(mm, ss, ff int) int64 {
	return (int64(mm)*60+int64(ss))*1000 + int64(ff)*1000/framesPerSecond
}
