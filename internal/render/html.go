package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/needledrop/needledrop/internal/report"
	"github.com/needledrop/needledrop/internal/stats"
)

// HTML renders the interactive companion page for a summary: the same
// findings as the PNG charts, on a single echarts page. Sections with no
// data are left off the page rather than failing the render.
func (r *Renderer) HTML(s *report.Summary) (string, error) {
	page := components.NewPage()

	added := 0
	if s.StreamComparison != nil {
		page.AddCharts(streamComparisonBar(*s.StreamComparison))
		added++
	}
	if len(s.AwardsByYear) > 0 {
		page.AddCharts(awardsByYearLine(s.AwardsByYear))
		added++
	}
	if len(s.TopCategories) > 0 {
		labels, values := categoryAxes(s.TopCategories)
		page.AddCharts(namedBar("Award Records by Category", labels, values))
		added++
	}
	if len(s.Longevity) > 0 {
		labels, values := longevityAxes(s.Longevity)
		page.AddCharts(namedBar("Career Span Between First and Last Win", labels, values))
		added++
	}
	if len(s.Producers) > 0 {
		labels, values := producerAxes(s.Producers)
		page.AddCharts(namedBar("Producer Wins", labels, values))
		added++
	}
	if added == 0 {
		return "", stats.ErrEmptyGroup
	}

	path := filepath.Join(r.dir, "charts.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", path, err)
	}
	r.logger.Debug("html charts written", "path", path)
	return path, nil
}

func streamComparisonBar(c stats.StreamComparison) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Mean Streams by Award Status",
		Subtitle: fmt.Sprintf("%d winner rows, %d non-winner rows", c.Winners, c.NonWinners),
	}))
	bar.SetXAxis([]string{"Winners", "Non-winners"}).
		AddSeries("mean streams", []opts.BarData{
			{Value: c.WinnerMean},
			{Value: c.NonWinnerMean},
		})
	return bar
}

func awardsByYearLine(series []stats.YearCount) *charts.Line {
	years := make([]string, len(series))
	values := make([]opts.LineData, len(series))
	for i, yc := range series {
		years[i] = strconv.Itoa(yc.Year)
		values[i] = opts.LineData{Value: yc.Wins}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Awards by Year"}))
	line.SetXAxis(years).AddSeries("wins", values)
	return line
}

func namedBar(title string, labels []string, values []opts.BarData) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	bar.SetXAxis(labels).AddSeries("count", values)
	return bar
}

func categoryAxes(counts []stats.CategoryCount) ([]string, []opts.BarData) {
	labels := make([]string, len(counts))
	values := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = c.Category
		values[i] = opts.BarData{Value: c.Count}
	}
	return labels, values
}

func longevityAxes(spans []stats.ArtistSpan) ([]string, []opts.BarData) {
	labels := make([]string, len(spans))
	values := make([]opts.BarData, len(spans))
	for i, s := range spans {
		labels[i] = s.Artist
		values[i] = opts.BarData{Value: s.Span}
	}
	return labels, values
}

func producerAxes(standings []stats.ProducerStanding) ([]string, []opts.BarData) {
	labels := make([]string, len(standings))
	values := make([]opts.BarData, len(standings))
	for i, s := range standings {
		labels[i] = s.Producer
		values[i] = opts.BarData{Value: s.Wins}
	}
	return labels, values
}
