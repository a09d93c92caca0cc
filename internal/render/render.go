// Package render produces the chart outputs of an analysis run: static PNG
// charts via gonum/plot and an interactive HTML page via go-echarts.
//
// Rendering is best-effort per chart: a chart over an empty group returns
// stats.ErrEmptyGroup and the caller skips it with a warning instead of
// aborting the run.
package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/needledrop/needledrop/internal/stats"
)

// Renderer writes chart files into a single output directory.
type Renderer struct {
	dir    string
	logger *slog.Logger
}

// New creates a Renderer, creating the output directory if needed.
func New(dir string, logger *slog.Logger) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{dir: dir, logger: logger}, nil
}

// Dir returns the output directory.
func (r *Renderer) Dir() string {
	return r.dir
}

// StreamComparison renders the winners-vs-non-winners mean streams bar
// chart. Returns stats.ErrEmptyGroup when both groups are empty.
func (r *Renderer) StreamComparison(c stats.StreamComparison) (string, error) {
	if c.Winners == 0 && c.NonWinners == 0 {
		return "", stats.ErrEmptyGroup
	}

	p := plot.New()
	p.Title.Text = "Mean Streams by Award Status"
	p.Y.Label.Text = "Mean Streams"

	bars, err := plotter.NewBarChart(plotter.Values{c.WinnerMean, c.NonWinnerMean}, vg.Points(40))
	if err != nil {
		return "", fmt.Errorf("failed to build stream comparison chart: %w", err)
	}
	p.Add(bars)
	p.NominalX("Winners", "Non-winners")

	return r.save(p, "streams_by_award_status.png")
}

// AwardsByYear renders the wins-per-year line chart.
func (r *Renderer) AwardsByYear(series []stats.YearCount) (string, error) {
	if len(series) == 0 {
		return "", stats.ErrEmptyGroup
	}

	pts := make(plotter.XYs, len(series))
	for i, yc := range series {
		pts[i].X = float64(yc.Year)
		pts[i].Y = float64(yc.Wins)
	}

	p := plot.New()
	p.Title.Text = "Awards by Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Wins"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", fmt.Errorf("failed to build awards-by-year chart: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	return r.save(p, "awards_by_year.png")
}

// CategoryCounts renders the award-records-per-category bar chart.
func (r *Renderer) CategoryCounts(counts []stats.CategoryCount) (string, error) {
	if len(counts) == 0 {
		return "", stats.ErrEmptyGroup
	}

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = c.Category
	}

	p := plot.New()
	p.Title.Text = "Award Records by Category"
	p.Y.Label.Text = "Records"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", fmt.Errorf("failed to build category chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.5
	p.X.Tick.Label.XAlign = -0.8

	return r.save(p, "category_counts.png")
}

// LongevityRanking renders the artist career span bar chart.
func (r *Renderer) LongevityRanking(spans []stats.ArtistSpan) (string, error) {
	if len(spans) == 0 {
		return "", stats.ErrEmptyGroup
	}

	values := make(plotter.Values, len(spans))
	labels := make([]string, len(spans))
	for i, s := range spans {
		values[i] = float64(s.Span)
		labels[i] = s.Artist
	}

	p := plot.New()
	p.Title.Text = "Career Span Between First and Last Win"
	p.Y.Label.Text = "Years"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", fmt.Errorf("failed to build longevity chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.5
	p.X.Tick.Label.XAlign = -0.8

	return r.save(p, "longevity_ranking.png")
}

// ProducerWins renders the wins-per-producer bar chart.
func (r *Renderer) ProducerWins(standings []stats.ProducerStanding) (string, error) {
	if len(standings) == 0 {
		return "", stats.ErrEmptyGroup
	}

	values := make(plotter.Values, len(standings))
	labels := make([]string, len(standings))
	for i, s := range standings {
		values[i] = float64(s.Wins)
		labels[i] = s.Producer
	}

	p := plot.New()
	p.Title.Text = "Producer Wins"
	p.Y.Label.Text = "Wins"

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", fmt.Errorf("failed to build producer chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.5
	p.X.Tick.Label.XAlign = -0.8

	return r.save(p, "producer_wins.png")
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := filepath.Join(r.dir, name)
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	r.logger.Debug("chart written", "path", path)
	return path, nil
}
