// Package dataset provides the typed records for the four input datasets and
// the loaders that read them from CSV. Records are immutable, read-only
// inputs for a single analysis run - loaded, used, discarded.
//
// Artist names in the source files are messy ("Beyoncé (feat. Jay-Z)",
// "Santana & Rob Thomas"), so every cross-dataset key goes through
// CleanArtistName before comparison.
package dataset

import (
	"fmt"
	"regexp"
	"strings"
)

// AwardRecord is a single award nomination or win.
type AwardRecord struct {
	Year     int    `json:"year"`
	Category string `json:"category"`
	Artist   string `json:"artist"`
	Work     string `json:"work"`
	Won      bool   `json:"won"`
}

// Validate checks an AwardRecord's invariants.
func (r AwardRecord) Validate() error {
	if strings.TrimSpace(r.Artist) == "" {
		return fmt.Errorf("award record: artist is required")
	}
	if r.Year < 0 {
		return fmt.Errorf("award record: negative year %d", r.Year)
	}
	return nil
}

// StreamingRecord is one track's streaming total.
type StreamingRecord struct {
	Artist  string `json:"artist"`
	Track   string `json:"track"`
	Streams int64  `json:"streams"`
	Year    int    `json:"year"`
}

// Validate checks a StreamingRecord's invariants.
func (r StreamingRecord) Validate() error {
	if strings.TrimSpace(r.Artist) == "" {
		return fmt.Errorf("streaming record: artist is required")
	}
	if r.Streams < 0 {
		return fmt.Errorf("streaming record for %q: negative streams %d", r.Artist, r.Streams)
	}
	return nil
}

// ArtistLifetimeAward summarises an artist's recorded award history.
type ArtistLifetimeAward struct {
	Artist       string `json:"artist"`
	FirstWinYear int    `json:"first_win_year"`
	LastWinYear  int    `json:"last_win_year"`
	TotalWins    int    `json:"total_wins"`
}

// Span returns the number of years between the artist's first and last win.
func (r ArtistLifetimeAward) Span() int {
	return r.LastWinYear - r.FirstWinYear
}

// Validate checks an ArtistLifetimeAward's invariants.
func (r ArtistLifetimeAward) Validate() error {
	if strings.TrimSpace(r.Artist) == "" {
		return fmt.Errorf("lifetime award record: artist is required")
	}
	if r.TotalWins < 0 {
		return fmt.Errorf("lifetime award record for %q: negative total wins %d", r.Artist, r.TotalWins)
	}
	if r.LastWinYear < r.FirstWinYear {
		return fmt.Errorf("lifetime award record for %q: last win year %d before first win year %d",
			r.Artist, r.LastWinYear, r.FirstWinYear)
	}
	return nil
}

// ProducerCredit links a producer to a track they produced.
type ProducerCredit struct {
	Producer string `json:"producer"`
	Artist   string `json:"artist"`
	Track    string `json:"track"`
	Year     int    `json:"year"`
}

// Validate checks a ProducerCredit's invariants.
func (r ProducerCredit) Validate() error {
	if strings.TrimSpace(r.Producer) == "" {
		return fmt.Errorf("producer credit: producer is required")
	}
	return nil
}

var (
	parenthetical = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	featuring     = regexp.MustCompile(`(?i)\s+(feat\.?|ft\.?|featuring)\s+.*$`)
	collaborators = regexp.MustCompile(`\s+(&|x)\s+.*$`)
	commaSuffix   = regexp.MustCompile(`,.*$`)
	whitespace    = regexp.MustCompile(`\s+`)
)

// CleanArtistName strips featured artists and annotations from an artist
// name so the same performer matches across datasets:
//
//	"Beyoncé (feat. Jay-Z)"      → "Beyoncé"
//	"Santana & Rob Thomas"       → "Santana"
//	"Doja Cat x SZA [Remix]"     → "Doja Cat"
//	"Tony Bennett, Lady Gaga"    → "Tony Bennett"
func CleanArtistName(name string) string {
	name = parenthetical.ReplaceAllString(name, "")
	name = featuring.ReplaceAllString(name, "")
	name = collaborators.ReplaceAllString(name, "")
	name = commaSuffix.ReplaceAllString(name, "")
	name = whitespace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// Key returns the canonical join key for an artist name: cleaned and
// lower-cased.
func Key(artist string) string {
	return strings.ToLower(CleanArtistName(artist))
}
