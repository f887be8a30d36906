// Package merger implements the subtitle merge engine: tracks are added one
// by one, styled and filtered, then merged into a single renumbered,
// BOM-prefixed output file.
package merger

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"submix/internal/encoding"
	"submix/internal/logging"
	"submix/internal/srt"
	"submix/internal/style"
)

// AddOptions are the per-track parameters for Session.Add.
type AddOptions struct {
	Codec                 string // preferred codec, tried first
	Color                 string // hex color, empty for none
	Size                  int    // font size, 0 for none
	Bold                  bool
	AnchorTop             bool
	TimeOffset            int // milliseconds, stored on the track only
	PreserveVectorOverlay bool
}

// Session accumulates tracks for one output file. It is single-threaded:
// callers needing concurrent merges create one Session per output.
type Session struct {
	outputPath     string
	outputName     string
	outputEncoding string

	overlayFilter bool
	suppressText  bool

	tracks       []*Track
	seenOverlays map[srt.MergeKey]bool

	log *logging.Logger
}

func NewSession(outputPath, outputName, outputEncoding string, log *logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{
		outputPath:     outputPath,
		outputName:     outputName,
		outputEncoding: outputEncoding,
		seenOverlays:   make(map[srt.MergeKey]bool),
		log:            log,
	}
}

// EnableOverlayFilter turns on cross-track deduplication of vector-overlay
// entries: the first overlay seen for a timestamp wins, across all tracks.
func (s *Session) EnableOverlayFilter(enabled bool) {
	s.overlayFilter = enabled
}

// SuppressTextEntries drops every plain-text entry, keeping only overlays.
func (s *Session) SuppressTextEntries(enabled bool) {
	s.suppressText = enabled
}

// Tracks returns the tracks in the order they were added.
func (s *Session) Tracks() []*Track {
	return s.tracks
}

// Add reads, decodes, parses, styles and filters one subtitle source and
// registers it as the next track. A DecodeError is fatal for this call
// only; the session stays usable.
func (s *Session) Add(address string, opts AddOptions) error {
	raw, err := os.ReadFile(address)
	if err != nil {
		return fmt.Errorf("read subtitle %s: %w", address, err)
	}

	text, codecUsed, err := encoding.Resolve(raw, opts.Codec)
	if err != nil {
		var derr *encoding.DecodeError
		if errors.As(err, &derr) {
			derr.Address = address
		}
		return err
	}

	t := newTrack(address, opts.Codec, opts)
	t.ResolvedCodec = codecUsed

	blocks := srt.ParseBlocks(text)
	kept := 0
	for _, b := range blocks {
		key, err := srt.Key(b.TimeRange)
		if err != nil {
			// malformed blocks are expected input, not corruption
			continue
		}

		body := strings.Join(b.Body, "\n")
		overlay := style.IsVectorOverlay(body)
		if !s.keep(key, overlay) {
			continue
		}

		composed := style.Compose(body, t.Options)
		if composed == "" {
			continue
		}

		t.insert(key, b.TimeRange, composed)
		kept++
	}

	s.tracks = append(s.tracks, t)
	s.log.Debugw("track added",
		"address", address,
		"codec", codecUsed,
		"blocks", len(blocks),
		"kept", kept,
	)
	return nil
}

// keep applies the session-wide filter rules. Overlay dedup is global and
// order-of-addition sensitive, unlike the per-track collision rule.
func (s *Session) keep(key srt.MergeKey, overlay bool) bool {
	if overlay {
		if s.overlayFilter {
			if s.seenOverlays[key] {
				return false
			}
			s.seenOverlays[key] = true
		}
		return true
	}
	return !s.suppressText
}
