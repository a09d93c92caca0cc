// Package stats computes the grouped summary statistics of the analysis:
// streaming means by award status, category counts, longevity spans and
// producer standings. Every ranking uses an alphabetical tie-break so
// repeated runs over the same data produce identical output.
package stats

import (
	"errors"
	"sort"
	"strings"

	"github.com/needledrop/needledrop/internal/join"
	"github.com/needledrop/needledrop/pkg/dataset"
)

// ErrEmptyGroup is returned when an aggregation has zero rows to work with.
// Callers recover locally: the affected chart or report section is skipped
// with a warning and the run continues.
var ErrEmptyGroup = errors.New("no rows in group")

// StreamComparison holds mean streams for award winners vs non-winners.
type StreamComparison struct {
	WinnerMean    float64 `json:"winner_mean"`
	NonWinnerMean float64 `json:"non_winner_mean"`
	Winners       int     `json:"winners"`
	NonWinners    int     `json:"non_winners"`
}

// StreamsByAwardStatus computes mean streams grouped by award outcome over
// the joined rows. A group with zero rows reports a zero mean; joining zero
// rows overall is ErrEmptyGroup.
func StreamsByAwardStatus(rows []join.Row) (StreamComparison, error) {
	if len(rows) == 0 {
		return StreamComparison{}, ErrEmptyGroup
	}

	var c StreamComparison
	var winnerTotal, nonWinnerTotal float64
	for _, r := range rows {
		if r.Won {
			c.Winners++
			winnerTotal += float64(r.Streams)
		} else {
			c.NonWinners++
			nonWinnerTotal += float64(r.Streams)
		}
	}
	if c.Winners > 0 {
		c.WinnerMean = winnerTotal / float64(c.Winners)
	}
	if c.NonWinners > 0 {
		c.NonWinnerMean = nonWinnerTotal / float64(c.NonWinners)
	}
	return c, nil
}

// CategoryCount is the number of award records in one category. Categories
// stand in for genre - the source data carries no explicit genre tags.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts counts award records per category, sorted by count
// descending with alphabetical tie-break.
func CategoryCounts(awards []dataset.AwardRecord) []CategoryCount {
	byCategory := make(map[string]int)
	for _, a := range awards {
		byCategory[a.Category]++
	}

	counts := make([]CategoryCount, 0, len(byCategory))
	for category, n := range byCategory {
		counts = append(counts, CategoryCount{Category: category, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category < counts[j].Category
	})
	return counts
}

// ArtistSpan is one artist's career span between first and last win.
type ArtistSpan struct {
	Artist       string `json:"artist"`
	Span         int    `json:"span"`
	FirstWinYear int    `json:"first_win_year"`
	LastWinYear  int    `json:"last_win_year"`
	TotalWins    int    `json:"total_wins"`
}

// LongevityRanking ranks artists by span descending. Artists with equal
// spans keep alphabetical order, so the ranking is stable across runs.
func LongevityRanking(lifetime []dataset.ArtistLifetimeAward) []ArtistSpan {
	spans := make([]ArtistSpan, 0, len(lifetime))
	for _, r := range lifetime {
		spans = append(spans, ArtistSpan{
			Artist:       r.Artist,
			Span:         r.Span(),
			FirstWinYear: r.FirstWinYear,
			LastWinYear:  r.LastWinYear,
			TotalWins:    r.TotalWins,
		})
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Span != spans[j].Span {
			return spans[i].Span > spans[j].Span
		}
		return spans[i].Artist < spans[j].Artist
	})
	return spans
}

// ProducerStanding summarises one producer's credits against award and
// streaming outcomes.
type ProducerStanding struct {
	Producer        string  `json:"producer"`
	Wins            int     `json:"wins"`
	Credits         int     `json:"credits"`
	WinRate         float64 `json:"win_rate"`
	StreamedHitRate float64 `json:"streamed_hit_rate"`
}

// ProducerWins counts, per producer, credits whose (artist, year) matches a
// winning award record, plus the fraction of credited tracks that appear in
// the streaming data at all. Sorted by wins descending, tie alphabetical.
func ProducerWins(credits []dataset.ProducerCredit, awards []dataset.AwardRecord, streams []dataset.StreamingRecord) []ProducerStanding {
	type winKey struct {
		artist string
		year   int
	}
	wins := make(map[winKey]bool)
	for _, a := range awards {
		if a.Won {
			wins[winKey{artist: dataset.Key(a.Artist), year: a.Year}] = true
		}
	}

	streamed := make(map[string]bool)
	for _, s := range streams {
		streamed[trackKey(s.Artist, s.Track)] = true
	}

	byProducer := make(map[string]*ProducerStanding)
	order := make([]string, 0)
	for _, c := range credits {
		standing, ok := byProducer[c.Producer]
		if !ok {
			standing = &ProducerStanding{Producer: c.Producer}
			byProducer[c.Producer] = standing
			order = append(order, c.Producer)
		}
		standing.Credits++
		if wins[winKey{artist: dataset.Key(c.Artist), year: c.Year}] {
			standing.Wins++
		}
		if streamed[trackKey(c.Artist, c.Track)] {
			standing.StreamedHitRate++ // raw hit count; converted to rate below
		}
	}

	standings := make([]ProducerStanding, 0, len(order))
	for _, producer := range order {
		s := *byProducer[producer]
		if s.Credits > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Credits)
			s.StreamedHitRate = s.StreamedHitRate / float64(s.Credits)
		}
		standings = append(standings, s)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Producer < standings[j].Producer
	})
	return standings
}

// ArtistCount is an artist with a win count.
type ArtistCount struct {
	Artist string `json:"artist"`
	Wins   int    `json:"wins"`
}

// TopAwardedArtists counts wins per artist and returns the top n, count
// descending with alphabetical tie-break.
func TopAwardedArtists(awards []dataset.AwardRecord, n int) []ArtistCount {
	byArtist := make(map[string]int)
	for _, a := range awards {
		if a.Won {
			byArtist[a.Artist]++
		}
	}

	counts := make([]ArtistCount, 0, len(byArtist))
	for artist, wins := range byArtist {
		counts = append(counts, ArtistCount{Artist: artist, Wins: wins})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Wins != counts[j].Wins {
			return counts[i].Wins > counts[j].Wins
		}
		return counts[i].Artist < counts[j].Artist
	})
	return limit(counts, n)
}

// YearCount is the number of wins awarded in one year.
type YearCount struct {
	Year int `json:"year"`
	Wins int `json:"wins"`
}

// AwardsByYear counts wins per year in chronological order.
func AwardsByYear(awards []dataset.AwardRecord) []YearCount {
	byYear := make(map[int]int)
	for _, a := range awards {
		if a.Won {
			byYear[a.Year]++
		}
	}

	counts := make([]YearCount, 0, len(byYear))
	for year, wins := range byYear {
		counts = append(counts, YearCount{Year: year, Wins: wins})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Year < counts[j].Year })
	return counts
}

// ArtistStreams is an artist's total streams across all their tracks.
type ArtistStreams struct {
	Artist  string `json:"artist"`
	Streams int64  `json:"streams"`
}

// TopStreamedArtists sums streams per clean artist name and returns the top
// n, total descending with alphabetical tie-break.
func TopStreamedArtists(streams []dataset.StreamingRecord, n int) []ArtistStreams {
	totals := make(map[string]int64)
	display := make(map[string]string)
	for _, s := range streams {
		key := dataset.Key(s.Artist)
		totals[key] += s.Streams
		if _, ok := display[key]; !ok {
			display[key] = dataset.CleanArtistName(s.Artist)
		}
	}

	out := make([]ArtistStreams, 0, len(totals))
	for key, total := range totals {
		out = append(out, ArtistStreams{Artist: display[key], Streams: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Streams != out[j].Streams {
			return out[i].Streams > out[j].Streams
		}
		return out[i].Artist < out[j].Artist
	})
	return limit(out, n)
}

// TopStreamedNonWinners returns the most-streamed artists with no award win
// on record - the artists streaming success overlooked. Same ordering as
// TopStreamedArtists.
func TopStreamedNonWinners(streams []dataset.StreamingRecord, awards []dataset.AwardRecord, n int) []ArtistStreams {
	winners := make(map[string]bool)
	for _, a := range awards {
		if a.Won {
			winners[dataset.Key(a.Artist)] = true
		}
	}

	overlooked := make([]dataset.StreamingRecord, 0, len(streams))
	for _, s := range streams {
		if !winners[dataset.Key(s.Artist)] {
			overlooked = append(overlooked, s)
		}
	}
	return TopStreamedArtists(overlooked, n)
}

// trackKey identifies a track by clean artist plus lower-cased title.
// Track titles are not run through CleanArtistName - "Me & You" is a title,
// not a collaboration.
func trackKey(artist, track string) string {
	return dataset.Key(artist) + "\x00" + strings.ToLower(strings.TrimSpace(track))
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
