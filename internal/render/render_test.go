package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needledrop/needledrop/internal/report"
	"github.com/needledrop/needledrop/internal/stats"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(filepath.Join(t.TempDir(), "visuals"), nil)
	require.NoError(t, err)
	return r
}

func assertChartFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestStreamComparison(t *testing.T) {
	r := newRenderer(t)

	path, err := r.StreamComparison(stats.StreamComparison{
		WinnerMean:    150,
		NonWinnerMean: 50,
		Winners:       2,
		NonWinners:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(r.Dir(), "streams_by_award_status.png"), path)
	assertChartFile(t, path)
}

func TestStreamComparison_EmptyGroup(t *testing.T) {
	r := newRenderer(t)

	_, err := r.StreamComparison(stats.StreamComparison{})
	assert.ErrorIs(t, err, stats.ErrEmptyGroup)

	// Nothing written for the skipped chart
	_, statErr := os.Stat(filepath.Join(r.Dir(), "streams_by_award_status.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAwardsByYear(t *testing.T) {
	r := newRenderer(t)

	path, err := r.AwardsByYear([]stats.YearCount{
		{Year: 2019, Wins: 5},
		{Year: 2020, Wins: 8},
		{Year: 2021, Wins: 3},
	})
	require.NoError(t, err)
	assertChartFile(t, path)
}

func TestAwardsByYear_EmptySeries(t *testing.T) {
	r := newRenderer(t)
	_, err := r.AwardsByYear(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyGroup)
}

func TestCategoryCounts(t *testing.T) {
	r := newRenderer(t)

	path, err := r.CategoryCounts([]stats.CategoryCount{
		{Category: "Pop", Count: 4},
		{Category: "Rock", Count: 2},
	})
	require.NoError(t, err)
	assertChartFile(t, path)
}

func TestLongevityRanking(t *testing.T) {
	r := newRenderer(t)

	path, err := r.LongevityRanking([]stats.ArtistSpan{
		{Artist: "Stevie Wonder", Span: 35},
		{Artist: "Tony Bennett", Span: 59},
	})
	require.NoError(t, err)
	assertChartFile(t, path)
}

func TestProducerWins(t *testing.T) {
	r := newRenderer(t)

	path, err := r.ProducerWins([]stats.ProducerStanding{
		{Producer: "Finneas", Wins: 2, Credits: 2},
	})
	require.NoError(t, err)
	assertChartFile(t, path)
}

func TestHTML(t *testing.T) {
	r := newRenderer(t)

	s := report.New("left")
	s.StreamComparison = &stats.StreamComparison{WinnerMean: 150, NonWinnerMean: 50, Winners: 2, NonWinners: 1}
	s.AwardsByYear = []stats.YearCount{{Year: 2020, Wins: 2}}
	s.TopCategories = []stats.CategoryCount{{Category: "Pop", Count: 4}}

	path, err := r.HTML(s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(r.Dir(), "charts.html"), path)
	assertChartFile(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Mean Streams by Award Status")
	assert.Contains(t, string(content), "Awards by Year")
}

func TestHTML_NothingToRender(t *testing.T) {
	r := newRenderer(t)
	_, err := r.HTML(report.New("left"))
	assert.ErrorIs(t, err, stats.ErrEmptyGroup)
}

func TestNew_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "visuals")
	_, err := New(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
