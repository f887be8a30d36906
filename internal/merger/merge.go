package merger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"submix/internal/encoding"
	"submix/internal/srt"
)

// Fallback cue emitted when filtering removes every entry; players reject
// empty subtitle files.
const (
	fallbackTimeRange = "00:00:01,000 --> 00:00:05,000"
	fallbackBody      = "No subtitles were merged"
)

type cue struct {
	number    int
	timeRange string
	body      string
}

func (c cue) render() string {
	return fmt.Sprintf("%d\n%s\n%s\n\n", c.number, c.timeRange, c.body)
}

// Merge emits the sorted union of all track keys as sequentially renumbered
// cues, encodes them to the output encoding with the matching BOM and
// writes the result to outputPath/outputName.
func (s *Session) Merge() error {
	// the dedup state served the add phase; reset it so the session can
	// take a fresh add/merge round
	s.seenOverlays = make(map[srt.MergeKey]bool)

	canonical, ok := encoding.Lookup(s.outputEncoding)
	if !ok {
		return fmt.Errorf("unsupported output encoding: %s", s.outputEncoding)
	}

	var cues []cue
	for _, k := range s.sortedKeys() {
		// tracks in add order break ties within a key
		for _, t := range s.tracks {
			e, ok := t.dialogues[k]
			if !ok {
				continue
			}
			cues = append(cues, cue{number: len(cues) + 1, timeRange: e.timeRange, body: e.body})
		}
	}

	if len(cues) == 0 {
		s.log.Warnw("no cues survived filtering, emitting placeholder",
			"output", s.outputName,
		)
		cues = append(cues, cue{number: 1, timeRange: fallbackTimeRange, body: fallbackBody})
	}

	var buf bytes.Buffer
	buf.Write(encoding.BOM(canonical))
	for _, c := range cues {
		b, err := encoding.Encode(canonical, c.render())
		if err != nil {
			s.log.Warnw("cue not representable in output encoding",
				"cue", c.number,
				"encoding", canonical,
			)
			degraded := cue{
				number:    c.number,
				timeRange: c.timeRange,
				body:      fmt.Sprintf("[cue %d not representable in %s]", c.number, canonical),
			}
			b, err = encoding.EncodeReplacing(canonical, degraded.render())
			if err != nil {
				continue
			}
		}
		buf.Write(b)
	}

	target := filepath.Join(s.outputPath, s.outputName)
	if err := os.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return &WriteError{Path: target, Err: err}
	}

	s.log.Infow("merged subtitle written",
		"path", target,
		"cues", len(cues),
		"encoding", canonical,
	)
	return nil
}

func (s *Session) sortedKeys() []srt.MergeKey {
	seen := make(map[srt.MergeKey]bool)
	var keys []srt.MergeKey
	for _, t := range s.tracks {
		for k := range t.dialogues {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
