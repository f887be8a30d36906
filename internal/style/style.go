// Package style wraps dialogue bodies with presentational markup, or
// rebuilds the wrapper around vector-overlay path data without touching it.
package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Options are the per-track presentation parameters.
type Options struct {
	Color                 string // hex color like #FFFF00, empty for none
	Size                  int    // font size, 0 for none
	Bold                  bool
	AnchorTop             bool // prefix {\an8} to non-overlay bodies
	PreserveVectorOverlay bool
}

// Hex values for the color names the original tool exposes.
const (
	White  = "#FFFFFF"
	Yellow = "#FFFF00"
	Red    = "#FF0000"
	Blue   = "#0000FF"
	Green  = "#00FF00"
)

// Defaults used when an overlay body carries no markup of its own.
const (
	DefaultOverlayFace   = "Brady Bunch Remastered"
	DefaultOverlaySize   = 48
	DefaultOverlayColor  = White
	DefaultOverlayAnchor = 7
)

var colorNames = map[string]string{
	"white":  White,
	"yellow": Yellow,
	"red":    Red,
	"blue":   Blue,
	"green":  Green,
}

// ColorHex resolves a color name to its hex value. Anything that is not a
// known name is passed through unchanged so callers can hand in raw hex.
func ColorHex(name string) string {
	if hex, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return hex
	}
	return name
}

var (
	// positioning override immediately followed by move/curve opcodes and
	// coordinate pairs marks a vector overlay body
	overlayRe = regexp.MustCompile(`\{\\an\d\}m\s+\d+(?:\.\d+)?\s+\d+(?:\.\d+)?\s+b`)

	faceRe   = regexp.MustCompile(`face="([^"]*)"`)
	sizeRe   = regexp.MustCompile(`size="(\d+)"`)
	colorRe  = regexp.MustCompile(`color="([^"]*)"`)
	anchorRe = regexp.MustCompile(`\{\\an(\d)\}`)

	tagRe      = regexp.MustCompile(`<[^>]*>`)
	overrideRe = regexp.MustCompile(`\{\\[^}]*\}`)
)

// IsVectorOverlay reports whether body carries 2-D path drawing commands.
func IsVectorOverlay(body string) bool {
	return overlayRe.MatchString(body)
}

// Compose returns body wrapped in presentational markup. Vector overlay
// bodies keep their path data byte-for-byte and only have the surrounding
// markup rebuilt; anything else is stripped and re-styled per opts.
func Compose(body string, opts Options) string {
	if opts.PreserveVectorOverlay && IsVectorOverlay(body) {
		return composeOverlay(body)
	}
	return composePlain(body, opts)
}

func composeOverlay(body string) string {
	face := DefaultOverlayFace
	size := DefaultOverlaySize
	color := DefaultOverlayColor
	anchor := DefaultOverlayAnchor

	if m := faceRe.FindStringSubmatch(body); m != nil {
		face = m[1]
	}
	if m := sizeRe.FindStringSubmatch(body); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			size = n
		}
	}
	if m := colorRe.FindStringSubmatch(body); m != nil {
		color = m[1]
	}
	if m := anchorRe.FindStringSubmatch(body); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			anchor = n
		}
	}

	// path coordinates are numeric; never run generic styling over them
	path := tagRe.ReplaceAllString(body, "")
	path = anchorRe.ReplaceAllString(path, "")
	path = strings.TrimSpace(path)

	return fmt.Sprintf(`<font face="%s" size="%d" color="%s">{\an%d}%s</font>`,
		face, size, color, anchor, path)
}

func composePlain(body string, opts Options) string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		raw := StripMarkup(line)
		if raw == "" {
			continue
		}

		text := raw
		if opts.Bold {
			text = "<b>" + text + "</b>"
		}

		var attrs []string
		if m := faceRe.FindStringSubmatch(line); m != nil && m[1] != "" {
			attrs = append(attrs, fmt.Sprintf(`face="%s"`, m[1]))
		}
		if opts.Size > 0 {
			attrs = append(attrs, fmt.Sprintf(`size="%d"`, opts.Size))
		}
		if opts.Color != "" {
			attrs = append(attrs, fmt.Sprintf(`color="%s"`, opts.Color))
		}
		if len(attrs) > 0 {
			text = "<font " + strings.Join(attrs, " ") + ">" + text + "</font>"
		}

		out = append(out, text)
	}

	if len(out) == 0 {
		return ""
	}
	composed := strings.Join(out, "\n")
	if opts.AnchorTop {
		composed = `{\an8}` + composed
	}
	return composed
}

// StripMarkup removes font/weight tags and override tags from a line,
// returning the trimmed raw text.
func StripMarkup(line string) string {
	line = tagRe.ReplaceAllString(line, "")
	line = overrideRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}
