package dataset

import (
	"fmt"

	"github.com/needledrop/needledrop/pkg/tabular"
)

// Expected column sets per dataset. Lookup is case-insensitive.
var (
	awardColumns     = []string{"year", "category", "artist", "work", "won"}
	streamingColumns = []string{"artist", "track", "streams", "year"}
	lifetimeColumns  = []string{"artist", "first_win_year", "last_win_year", "total_wins"}
	producerColumns  = []string{"producer", "artist", "track", "year"}
)

// LoadAwards reads award records from path. One record per data row.
func LoadAwards(path string) ([]AwardRecord, error) {
	t, err := tabular.ReadFile(path, awardColumns...)
	if err != nil {
		return nil, err
	}

	records := make([]AwardRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		year, err := t.Int(i, "year")
		if err != nil {
			return nil, err
		}
		won, err := t.Bool(i, "won")
		if err != nil {
			return nil, err
		}
		rec := AwardRecord{
			Year:     int(year),
			Category: t.String(i, "category"),
			Artist:   t.String(i, "artist"),
			Work:     t.String(i, "work"),
			Won:      won,
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadStreaming reads streaming records from path.
func LoadStreaming(path string) ([]StreamingRecord, error) {
	t, err := tabular.ReadFile(path, streamingColumns...)
	if err != nil {
		return nil, err
	}

	records := make([]StreamingRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		streams, err := t.Int(i, "streams")
		if err != nil {
			return nil, err
		}
		year, err := t.Int(i, "year")
		if err != nil {
			return nil, err
		}
		rec := StreamingRecord{
			Artist:  t.String(i, "artist"),
			Track:   t.String(i, "track"),
			Streams: streams,
			Year:    int(year),
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadLifetimeAwards reads per-artist lifetime award summaries from path.
func LoadLifetimeAwards(path string) ([]ArtistLifetimeAward, error) {
	t, err := tabular.ReadFile(path, lifetimeColumns...)
	if err != nil {
		return nil, err
	}

	records := make([]ArtistLifetimeAward, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		first, err := t.Int(i, "first_win_year")
		if err != nil {
			return nil, err
		}
		last, err := t.Int(i, "last_win_year")
		if err != nil {
			return nil, err
		}
		wins, err := t.Int(i, "total_wins")
		if err != nil {
			return nil, err
		}
		rec := ArtistLifetimeAward{
			Artist:       t.String(i, "artist"),
			FirstWinYear: int(first),
			LastWinYear:  int(last),
			TotalWins:    int(wins),
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadProducerCredits reads producer credits from path.
func LoadProducerCredits(path string) ([]ProducerCredit, error) {
	t, err := tabular.ReadFile(path, producerColumns...)
	if err != nil {
		return nil, err
	}

	records := make([]ProducerCredit, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		year, err := t.Int(i, "year")
		if err != nil {
			return nil, err
		}
		rec := ProducerCredit{
			Producer: t.String(i, "producer"),
			Artist:   t.String(i, "artist"),
			Track:    t.String(i, "track"),
			Year:     int(year),
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
