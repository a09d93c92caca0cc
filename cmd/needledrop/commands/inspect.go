package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/needledrop/needledrop/internal/printer"
	"github.com/needledrop/needledrop/pkg/dataset"
	"github.com/needledrop/needledrop/pkg/tabular"
)

var (
	inspectConfigPath string
	inspectDataDir    string
	inspectOutput     string
)

// datasetInfo is the inspection result for one dataset file.
type datasetInfo struct {
	Name            string   `json:"name"`
	Path            string   `json:"path"`
	Rows            int      `json:"rows"`
	Columns         []string `json:"columns"`
	MinYear         int      `json:"min_year,omitempty"`
	MaxYear         int      `json:"max_year,omitempty"`
	DistinctArtists int      `json:"distinct_artists,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// yearColumns names the columns bounding each dataset's year range. The
// lifetime dataset spans careers, so its bounds come from two columns.
var yearColumns = map[string][2]string{
	"awards":    {"year", "year"},
	"streaming": {"year", "year"},
	"lifetime":  {"first_win_year", "last_win_year"},
	"producers": {"year", "year"},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show row counts and columns for each dataset",
	Long: `Inspect the configured dataset files without running the analysis:
row counts (header excluded), column names, year range, distinct artist
counts, and per-file load errors.

Useful for checking data before a run, since a missing file or column
aborts 'needledrop analyze'.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectConfigPath, "config", "c", "", "Config file (default needledrop.yml if present)")
	inspectCmd.Flags().StringVarP(&inspectDataDir, "data", "d", "", "Dataset directory (overrides config paths)")
	inspectCmd.Flags().StringVar(&inspectOutput, "output", "table", "Output format: table or json")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(inspectConfigPath, inspectDataDir)
	if err != nil {
		return err
	}

	infos := []datasetInfo{
		inspectFile("awards", cfg.Datasets.Awards),
		inspectFile("streaming", cfg.Datasets.Streaming),
		inspectFile("lifetime", cfg.Datasets.Lifetime),
		inspectFile("producers", cfg.Datasets.Producers),
	}

	if inspectOutput == "json" {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal inspection: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	broken := 0
	for _, info := range infos {
		if info.Error != "" {
			printer.Warning("%-10s %s: %s\n", info.Name, info.Path, info.Error)
			broken++
			continue
		}
		years := "no year data"
		if info.MinYear > 0 {
			years = fmt.Sprintf("years %d-%d", info.MinYear, info.MaxYear)
		}
		printer.Printf("%-10s %s: %d rows, %d artists, %s, columns: %v\n",
			info.Name, info.Path, info.Rows, info.DistinctArtists, years, info.Columns)
	}

	if broken > 0 {
		return printer.Error(
			fmt.Sprintf("%d of %d datasets failed to load", broken, len(infos)),
			"'needledrop analyze' will abort until these are fixed.",
			nil,
		)
	}
	printer.Success("all datasets load cleanly\n")
	return nil
}

// inspectFile loads one dataset and reports what it found. It also runs
// the typed loader so schema problems beyond the header (bad numbers, bad
// booleans) surface here too.
func inspectFile(name, path string) datasetInfo {
	info := datasetInfo{Name: name, Path: path}

	t, err := tabular.ReadFile(path)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Rows = t.Len()
	info.Columns = append(info.Columns, t.Columns...)
	sort.Strings(info.Columns)

	cols := yearColumns[name]
	artists := make(map[string]bool)
	for i := 0; i < t.Len(); i++ {
		if artist := t.String(i, "artist"); artist != "" {
			artists[dataset.Key(artist)] = true
		}
		min, err := t.Int(i, cols[0])
		if err != nil || min == 0 {
			continue
		}
		max, err := t.Int(i, cols[1])
		if err != nil {
			continue
		}
		if info.MinYear == 0 || int(min) < info.MinYear {
			info.MinYear = int(min)
		}
		if int(max) > info.MaxYear {
			info.MaxYear = int(max)
		}
	}
	info.DistinctArtists = len(artists)

	if err := loadTyped(name, path); err != nil {
		info.Error = err.Error()
	}
	return info
}

func loadTyped(name, path string) error {
	var err error
	switch name {
	case "awards":
		_, err = dataset.LoadAwards(path)
	case "streaming":
		_, err = dataset.LoadStreaming(path)
	case "lifetime":
		_, err = dataset.LoadLifetimeAwards(path)
	case "producers":
		_, err = dataset.LoadProducerCredits(path)
	}
	return err
}
