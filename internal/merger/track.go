package merger

import (
	"submix/internal/srt"
	"submix/internal/style"
)

// entry is one stored dialogue per MergeKey. TimeRange keeps the literal
// text of the first block seen at this key so exactly one range survives
// per-track collisions.
type entry struct {
	timeRange string
	body      string
}

// Track is one added subtitle source together with its style parameters.
type Track struct {
	Address        string
	RequestedCodec string
	ResolvedCodec  string
	Options        style.Options

	// TimeOffset in milliseconds is carried for downstream tooling;
	// the engine itself never shifts timestamps.
	TimeOffset int

	dialogues map[srt.MergeKey]*entry
}

func newTrack(address, codec string, opts AddOptions) *Track {
	return &Track{
		Address:        address,
		RequestedCodec: codec,
		Options: style.Options{
			Color:                 opts.Color,
			Size:                  opts.Size,
			Bold:                  opts.Bold,
			AnchorTop:             opts.AnchorTop,
			PreserveVectorOverlay: opts.PreserveVectorOverlay,
		},
		TimeOffset: opts.TimeOffset,
		dialogues:  make(map[srt.MergeKey]*entry),
	}
}

// insert applies the per-track collision rule: a later block at the same
// key has its composed text placed before the existing text, and only the
// first time range literal is kept.
func (t *Track) insert(key srt.MergeKey, timeRange, body string) {
	if e, ok := t.dialogues[key]; ok {
		e.body = body + "\n" + e.body
		return
	}
	t.dialogues[key] = &entry{timeRange: timeRange, body: body}
}

// Len returns the number of stored dialogues.
func (t *Track) Len() int {
	return len(t.dialogues)
}
