// Package analysis orchestrates the batch pipeline: load the four datasets,
// join streaming rows with award records, aggregate, and render. One pass
// per invocation, strictly sequential, no retries - a load or join failure
// aborts the run, a chart failure skips that chart.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/needledrop/needledrop/internal/config"
	"github.com/needledrop/needledrop/internal/join"
	"github.com/needledrop/needledrop/internal/render"
	"github.com/needledrop/needledrop/internal/report"
	"github.com/needledrop/needledrop/internal/stats"
	"github.com/needledrop/needledrop/internal/yearspec"
	"github.com/needledrop/needledrop/pkg/dataset"
)

// ChartWarning records a chart that was skipped rather than rendered.
type ChartWarning struct {
	Chart  string
	Reason string
}

// Result bundles the run's summary with any per-chart warnings.
type Result struct {
	Summary  *report.Summary
	Charts   []string // paths of rendered chart files
	Warnings []ChartWarning
}

// Engine runs the analysis pipeline for one configuration.
type Engine struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates an Engine.
func New(cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger.With("component", "analysis")}
}

// Run executes the pipeline once: Loader → Joiner → Aggregator → Renderer.
// The context is threaded for symmetry with the rest of the codebase; the
// pipeline has no suspension points beyond file IO.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Loader
	awards, err := dataset.LoadAwards(e.cfg.Datasets.Awards)
	if err != nil {
		return nil, fmt.Errorf("load awards: %w", err)
	}
	streams, err := dataset.LoadStreaming(e.cfg.Datasets.Streaming)
	if err != nil {
		return nil, fmt.Errorf("load streaming: %w", err)
	}
	lifetime, err := dataset.LoadLifetimeAwards(e.cfg.Datasets.Lifetime)
	if err != nil {
		return nil, fmt.Errorf("load lifetime awards: %w", err)
	}
	producers, err := dataset.LoadProducerCredits(e.cfg.Datasets.Producers)
	if err != nil {
		return nil, fmt.Errorf("load producer credits: %w", err)
	}
	e.logger.Info("datasets loaded",
		"awards", len(awards),
		"streaming", len(streams),
		"lifetime", len(lifetime),
		"producers", len(producers))

	// Year filter. Lifetime award spans stay unfiltered: a career is not
	// scoped to the ceremonies under analysis.
	if years := e.cfg.YearRange(); !years.IsZero() {
		awards = filterYears(awards, years, func(a dataset.AwardRecord) int { return a.Year })
		streams = filterYears(streams, years, func(s dataset.StreamingRecord) int { return s.Year })
		producers = filterYears(producers, years, func(p dataset.ProducerCredit) int { return p.Year })
		e.logger.Info("restricted to ceremony years",
			"years", years.String(),
			"awards", len(awards),
			"streaming", len(streams),
			"producers", len(producers))
	}

	// Joiner
	policy, err := join.ParsePolicy(e.cfg.Analysis.JoinPolicy)
	if err != nil {
		return nil, err
	}
	joined := join.Join(streams, awards, policy)
	e.logger.Info("joined streaming rows with award records",
		"policy", string(policy), "rows", len(joined))

	// Aggregator
	summary := report.New(string(policy))
	if years := e.cfg.YearRange(); !years.IsZero() {
		summary.Years = years.String()
	}
	summary.Counts = report.DatasetCounts{
		Awards:    len(awards),
		Streaming: len(streams),
		Lifetime:  len(lifetime),
		Producers: len(producers),
		Joined:    len(joined),
	}

	result := &Result{Summary: summary}

	if comparison, err := stats.StreamsByAwardStatus(joined); err == nil {
		summary.StreamComparison = &comparison
	} else {
		result.warn("stream comparison", err)
	}

	topN := e.cfg.Analysis.TopN
	summary.TopCategories = top(stats.CategoryCounts(awards), topN)
	summary.Longevity = top(stats.LongevityRanking(lifetime), topN)
	summary.Producers = top(stats.ProducerWins(producers, awards, streams), topN)
	summary.TopAwardedArtists = stats.TopAwardedArtists(awards, topN)
	summary.AwardsByYear = stats.AwardsByYear(awards)
	summary.TopStreamedArtists = stats.TopStreamedArtists(streams, topN)
	summary.OverlookedArtists = stats.TopStreamedNonWinners(streams, awards, topN)

	// Renderer
	if e.cfg.ChartsEnabled() || e.cfg.HTMLEnabled() {
		if err := e.renderCharts(result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// renderCharts renders every enabled chart, downgrading per-chart failures
// to warnings. Only renderer construction (an unwritable output directory)
// is fatal.
func (e *Engine) renderCharts(result *Result) error {
	r, err := render.New(e.cfg.Output.Dir, e.logger)
	if err != nil {
		return err
	}

	summary := result.Summary
	if e.cfg.ChartsEnabled() {
		if summary.StreamComparison != nil {
			path, err := r.StreamComparison(*summary.StreamComparison)
			result.record("stream comparison", path, err)
		}
		path, err := r.AwardsByYear(summary.AwardsByYear)
		result.record("awards by year", path, err)

		path, err = r.CategoryCounts(summary.TopCategories)
		result.record("category counts", path, err)

		path, err = r.LongevityRanking(summary.Longevity)
		result.record("longevity ranking", path, err)

		path, err = r.ProducerWins(summary.Producers)
		result.record("producer wins", path, err)
	}

	if e.cfg.HTMLEnabled() {
		path, err := r.HTML(summary)
		result.record("html charts", path, err)
	}
	return nil
}

// record notes a render outcome: the path on success, a warning on failure.
// Empty groups are expected; everything else is still only a warning
// because chart failures never abort the run.
func (result *Result) record(name, path string, err error) {
	if err == nil {
		result.Charts = append(result.Charts, path)
		return
	}
	result.warn(name, err)
}

func (result *Result) warn(chart string, err error) {
	reason := err.Error()
	if errors.Is(err, stats.ErrEmptyGroup) {
		reason = "no rows in group"
	}
	result.Warnings = append(result.Warnings, ChartWarning{Chart: chart, Reason: reason})
}

func top[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

func filterYears[T any](items []T, r yearspec.Range, year func(T) int) []T {
	kept := items[:0:0]
	for _, item := range items {
		if r.Contains(year(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}
