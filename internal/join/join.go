// Package join merges streaming records with award records so streaming
// success can be compared per award instance.
package join

import (
	"fmt"
	"strings"

	"github.com/needledrop/needledrop/pkg/dataset"
)

// Policy selects how unmatched streaming rows are handled.
type Policy string

const (
	// PolicyLeft keeps every streaming row; unmatched rows are annotated as
	// non-winners. This is the default - no streaming data is silently dropped.
	PolicyLeft Policy = "left"

	// PolicyInner drops streaming rows with no matching award record.
	PolicyInner Policy = "inner"
)

// ParsePolicy validates a policy string from config or flags.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyLeft, "":
		return PolicyLeft, nil
	case PolicyInner:
		return PolicyInner, nil
	}
	return "", fmt.Errorf("invalid join policy: %s (must be 'left' or 'inner')", s)
}

// Row is one streaming record annotated with award status. When a streaming
// row matches multiple award records (same artist and year, several
// categories) it appears once per award instance - the winners-vs-streams
// question is evaluated per award, not per artist-year, so duplicates are
// deliberate.
type Row struct {
	dataset.StreamingRecord

	Won      bool   // award outcome; false for unmatched rows
	Category string // matched award category, "" for unmatched rows
	Matched  bool   // whether any award record matched
}

type yearKey struct {
	artist string
	year   int
}

type trackKey struct {
	artist string
	track  string
}

// Join merges streaming rows with award records. The primary key is
// (clean artist, year); streaming rows with no artist/year match fall back
// to (clean artist, clean track). Under PolicyLeft the output always has at
// least as many rows as the streaming input.
func Join(streams []dataset.StreamingRecord, awards []dataset.AwardRecord, policy Policy) []Row {
	byYear := make(map[yearKey][]dataset.AwardRecord)
	byTrack := make(map[trackKey][]dataset.AwardRecord)
	for _, a := range awards {
		yk := yearKey{artist: dataset.Key(a.Artist), year: a.Year}
		byYear[yk] = append(byYear[yk], a)
		if a.Work != "" {
			tk := trackKey{artist: dataset.Key(a.Artist), track: strings.ToLower(a.Work)}
			byTrack[tk] = append(byTrack[tk], a)
		}
	}

	rows := make([]Row, 0, len(streams))
	for _, s := range streams {
		artist := dataset.Key(s.Artist)

		matches := byYear[yearKey{artist: artist, year: s.Year}]
		if len(matches) == 0 {
			matches = byTrack[trackKey{artist: artist, track: strings.ToLower(s.Track)}]
		}

		if len(matches) == 0 {
			if policy == PolicyInner {
				continue
			}
			rows = append(rows, Row{StreamingRecord: s})
			continue
		}

		for _, a := range matches {
			rows = append(rows, Row{
				StreamingRecord: s,
				Won:             a.Won,
				Category:        a.Category,
				Matched:         true,
			})
		}
	}
	return rows
}
