// Package pattern pairs subtitle files from two filename patterns by
// episode number for batch merging.
package pattern

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Pair is two subtitle files belonging to the same episode.
type Pair struct {
	Episode    int
	Sub1       string
	Sub2       string
	OutputName string
}

var numberRe = regexp.MustCompile(`\d{1,4}`)

// EpisodeNumber extracts an episode number from a file name. Release names
// keep it in the last run of digits that isn't a resolution marker.
func EpisodeNumber(name string) (int, bool) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	matches := numberRe.FindAllString(base, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if m == "480" || m == "720" || m == "1080" || m == "2160" {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}

// MatchPairs globs two patterns under dir and pairs the results by episode
// number. Files whose name yields no episode number are skipped.
func MatchPairs(dir, glob1, glob2 string) ([]Pair, error) {
	files1, err := filepath.Glob(filepath.Join(dir, glob1))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", glob1, err)
	}
	files2, err := filepath.Glob(filepath.Join(dir, glob2))
	if err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", glob2, err)
	}

	byEpisode := func(files []string) map[int]string {
		m := make(map[int]string)
		for _, f := range files {
			if ep, ok := EpisodeNumber(f); ok {
				if _, dup := m[ep]; !dup {
					m[ep] = f
				}
			}
		}
		return m
	}
	m1 := byEpisode(files1)
	m2 := byEpisode(files2)

	var pairs []Pair
	for ep, f1 := range m1 {
		f2, ok := m2[ep]
		if !ok || f1 == f2 {
			continue
		}
		base := strings.TrimSuffix(filepath.Base(f1), filepath.Ext(f1))
		pairs = append(pairs, Pair{
			Episode:    ep,
			Sub1:       f1,
			Sub2:       f2,
			OutputName: base + "_merged.srt",
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Episode < pairs[j].Episode })
	return pairs, nil
}
