// Package report assembles the findings of an analysis run into a Summary
// and formats it as a human table, JSONL, or a summary.json file.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/needledrop/needledrop/internal/stats"
)

// DatasetCounts records how many rows each input dataset contributed.
type DatasetCounts struct {
	Awards    int `json:"awards"`
	Streaming int `json:"streaming"`
	Lifetime  int `json:"lifetime"`
	Producers int `json:"producers"`
	Joined    int `json:"joined"`
}

// Summary is the complete result of one analysis run. Every run gets a
// fresh UUID so chart sets and summaries can be traced back to the run
// that produced them.
type Summary struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	JoinPolicy  string    `json:"join_policy"`
	Years       string    `json:"years,omitempty"` // ceremony year scope, empty = all

	Counts DatasetCounts `json:"counts"`

	StreamComparison   *stats.StreamComparison  `json:"stream_comparison,omitempty"`
	TopCategories      []stats.CategoryCount    `json:"top_categories,omitempty"`
	Longevity          []stats.ArtistSpan       `json:"longevity,omitempty"`
	Producers          []stats.ProducerStanding `json:"producers,omitempty"`
	TopAwardedArtists  []stats.ArtistCount      `json:"top_awarded_artists,omitempty"`
	AwardsByYear       []stats.YearCount        `json:"awards_by_year,omitempty"`
	TopStreamedArtists []stats.ArtistStreams    `json:"top_streamed_artists,omitempty"`
	OverlookedArtists  []stats.ArtistStreams    `json:"overlooked_artists,omitempty"`
}

// New creates an empty Summary with a fresh run ID.
func New(joinPolicy string) *Summary {
	return &Summary{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		JoinPolicy:  joinPolicy,
	}
}

// WriteJSON writes the summary as pretty-printed JSON into dir as
// summary.json.
func (s *Summary) WriteJSON(dir string) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	path := filepath.Join(dir, "summary.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
