package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// FormatTable writes the summary as a set of human-readable tables.
func FormatTable(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "Analysis run %s (%s join)\n", s.RunID, s.JoinPolicy)
	fmt.Fprintf(w, "Rows: %d awards, %d streaming, %d lifetime, %d producer credits, %d joined\n\n",
		s.Counts.Awards, s.Counts.Streaming, s.Counts.Lifetime, s.Counts.Producers, s.Counts.Joined)

	if s.StreamComparison != nil {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Award Status", "Rows", "Mean Streams"})
		table.Append([]string{"Winner", strconv.Itoa(s.StreamComparison.Winners), formatFloat(s.StreamComparison.WinnerMean)})
		table.Append([]string{"Non-winner", strconv.Itoa(s.StreamComparison.NonWinners), formatFloat(s.StreamComparison.NonWinnerMean)})
		table.Render()
		fmt.Fprintln(w)
	}

	if len(s.TopCategories) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Category", "Records"})
		for _, c := range s.TopCategories {
			table.Append([]string{c.Category, strconv.Itoa(c.Count)})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(s.Longevity) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Artist", "Span (Years)", "First Win", "Last Win", "Total Wins"})
		for _, a := range s.Longevity {
			table.Append([]string{
				a.Artist,
				strconv.Itoa(a.Span),
				strconv.Itoa(a.FirstWinYear),
				strconv.Itoa(a.LastWinYear),
				strconv.Itoa(a.TotalWins),
			})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(s.Producers) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Producer", "Wins", "Credits", "Win Rate", "Streamed Hit Rate"})
		for _, p := range s.Producers {
			table.Append([]string{
				p.Producer,
				strconv.Itoa(p.Wins),
				strconv.Itoa(p.Credits),
				formatRate(p.WinRate),
				formatRate(p.StreamedHitRate),
			})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(s.TopAwardedArtists) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Artist", "Wins"})
		for _, a := range s.TopAwardedArtists {
			table.Append([]string{a.Artist, strconv.Itoa(a.Wins)})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(s.TopStreamedArtists) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Artist", "Total Streams"})
		for _, a := range s.TopStreamedArtists {
			table.Append([]string{a.Artist, strconv.FormatInt(a.Streams, 10)})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	if len(s.OverlookedArtists) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Overlooked Artist (No Wins)", "Total Streams"})
		for _, a := range s.OverlookedArtists {
			table.Append([]string{a.Artist, strconv.FormatInt(a.Streams, 10)})
		}
		table.Render()
		fmt.Fprintln(w)
	}
}

// finding is one JSONL line: a named result with its payload.
type finding struct {
	RunID   string `json:"run_id"`
	Finding string `json:"finding"`
	Data    any    `json:"data"`
}

// FormatJSONL writes the summary as line-delimited JSON, one finding per
// line, for processing with tools like jq.
func FormatJSONL(w io.Writer, s *Summary) error {
	findings := []finding{
		{RunID: s.RunID, Finding: "dataset_counts", Data: s.Counts},
	}
	if s.StreamComparison != nil {
		findings = append(findings, finding{RunID: s.RunID, Finding: "stream_comparison", Data: s.StreamComparison})
	}
	if len(s.TopCategories) > 0 {
		findings = append(findings, finding{RunID: s.RunID, Finding: "top_categories", Data: s.TopCategories})
	}
	if len(s.Longevity) > 0 {
		findings = append(findings, finding{RunID: s.RunID, Finding: "longevity_ranking", Data: s.Longevity})
	}
	if len(s.Producers) > 0 {
		findings = append(findings, finding{RunID: s.RunID, Finding: "producer_standings", Data: s.Producers})
	}
	if len(s.TopAwardedArtists) > 0 {
		findings = append(findings, finding{RunID: s.RunID, Finding: "top_awarded_artists", Data: s.TopAwardedArtists})
	}
	if len(s.AwardsByYear) > 0 {
		findings = append(findings, finding{RunID: s.RunID, Finding: "awards_by_year", Data: s.AwardsByYear})
	}
	if len(s.TopStreamedArtists) > 0 {
		findings = append(findings, finding{RunID: s.RunID, Finding: "top_streamed_artists", Data: s.TopStreamedArtists})
	}
	if len(s.OverlookedArtists) > 0 {
		findings = append(findings, finding{RunID: s.RunID, Finding: "overlooked_artists", Data: s.OverlookedArtists})
	}

	for _, f := range findings {
		data, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("failed to marshal finding %q: %w", f.Finding, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}
