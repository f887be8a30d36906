// Package srt splits decoded subtitle text into dialogue blocks and derives
// the second-resolution keys used to align entries across tracks.
package srt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MergeKey is a dialogue start time truncated to whole seconds. Two cues
// differing only in milliseconds collide on the same key.
type MergeKey int64

func (k MergeKey) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", k/3600, k/60%60, k%60)
}

// Block is one parsed dialogue unit. Index is the original cue number from
// the source file; it is discarded during merging.
type Block struct {
	Index     string
	TimeRange string
	Body      []string
}

// terminator marks placeholder blocks that carry no dialogue
const terminator = "--"

var (
	blockSep = regexp.MustCompile(`\r?\n[ \t]*\r?\n`)
	timeRe   = regexp.MustCompile(`(\d+):(\d{2}):(\d{2})`)
)

// ParseBlocks splits text on blank-line separators and extracts
// (index, time range, body) triples. Malformed and placeholder blocks are
// dropped silently; they are expected input, not corruption.
func ParseBlocks(text string) []Block {
	var blocks []Block
	for _, chunk := range blockSep.Split(text, -1) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		lines := strings.Split(chunk, "\n")
		for i := range lines {
			lines[i] = strings.TrimRight(lines[i], "\r")
		}
		// index line, time range line and at least one body line
		if len(lines) < 3 {
			continue
		}

		body := lines[2:]
		if strings.TrimSpace(strings.Join(body, "\n")) == terminator {
			continue
		}

		blocks = append(blocks, Block{
			Index:     strings.TrimSpace(lines[0]),
			TimeRange: strings.TrimSpace(lines[1]),
			Body:      body,
		})
	}
	return blocks
}

// Key derives the MergeKey from a time range literal: the left side of the
// arrow, sub-second digits discarded, read as HH:MM:SS.
func Key(timeRange string) (MergeKey, error) {
	start := timeRange
	if i := strings.Index(timeRange, "-->"); i >= 0 {
		start = timeRange[:i]
	}
	start = strings.TrimSpace(start)

	// strip the sub-second component, comma or dot separated
	if i := strings.IndexAny(start, ",."); i >= 0 {
		start = start[:i]
	}

	m := timeRe.FindStringSubmatch(start)
	if m == nil {
		return 0, fmt.Errorf("malformed time range: %q", timeRange)
	}

	h, _ := strconv.ParseInt(m[1], 10, 64)
	mi, _ := strconv.ParseInt(m[2], 10, 64)
	s, _ := strconv.ParseInt(m[3], 10, 64)
	return MergeKey(h*3600 + mi*60 + s), nil
}
