package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needledrop/needledrop/internal/stats"
)

func sampleSummary() *Summary {
	s := New("left")
	s.Counts = DatasetCounts{Awards: 3, Streaming: 3, Lifetime: 2, Producers: 1, Joined: 3}
	s.StreamComparison = &stats.StreamComparison{
		WinnerMean:    150,
		NonWinnerMean: 50,
		Winners:       2,
		NonWinners:    1,
	}
	s.TopCategories = []stats.CategoryCount{
		{Category: "Record Of The Year", Count: 2},
		{Category: "Best New Artist", Count: 1},
	}
	s.Longevity = []stats.ArtistSpan{
		{Artist: "Stevie Wonder", Span: 35, FirstWinYear: 1974, LastWinYear: 2009, TotalWins: 25},
	}
	return s
}

func TestNew_FreshRunID(t *testing.T) {
	a := New("left")
	b := New("left")
	assert.NotEmpty(t, a.RunID)
	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, "left", a.JoinPolicy)
	assert.False(t, a.GeneratedAt.IsZero())
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	s := sampleSummary()
	FormatTable(&buf, s)

	out := buf.String()
	assert.Contains(t, out, s.RunID)
	assert.Contains(t, out, "Winner")
	assert.Contains(t, out, "150.00")
	assert.Contains(t, out, "Record Of The Year")
	assert.Contains(t, out, "Stevie Wonder")
}

func TestFormatTable_SkipsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	s := New("left")
	FormatTable(&buf, s)

	out := buf.String()
	assert.NotContains(t, out, "Producer")
	assert.NotContains(t, out, "Category")
}

func TestFormatJSONL(t *testing.T) {
	var buf bytes.Buffer
	s := sampleSummary()
	require.NoError(t, FormatJSONL(&buf, s))

	// Every line is its own valid JSON object carrying the run ID
	scanner := bufio.NewScanner(&buf)
	var findings []string
	for scanner.Scan() {
		var f struct {
			RunID   string `json:"run_id"`
			Finding string `json:"finding"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &f))
		assert.Equal(t, s.RunID, f.RunID)
		findings = append(findings, f.Finding)
	}
	assert.Contains(t, findings, "dataset_counts")
	assert.Contains(t, findings, "stream_comparison")
	assert.Contains(t, findings, "top_categories")
	assert.Contains(t, findings, "longevity_ranking")
	assert.NotContains(t, findings, "producer_standings")
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	s := sampleSummary()

	path, err := s.WriteJSON(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Summary
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, s.RunID, loaded.RunID)
	assert.Equal(t, s.Counts, loaded.Counts)
	require.NotNil(t, loaded.StreamComparison)
	assert.InDelta(t, 150.0, loaded.StreamComparison.WinnerMean, 1e-9)
}
