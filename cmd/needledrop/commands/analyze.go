package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/needledrop/needledrop/internal/analysis"
	"github.com/needledrop/needledrop/internal/config"
	"github.com/needledrop/needledrop/internal/logging"
	"github.com/needledrop/needledrop/internal/printer"
	"github.com/needledrop/needledrop/internal/report"
	"github.com/needledrop/needledrop/internal/yearspec"
)

var (
	analyzeConfigPath string
	analyzeDataDir    string
	analyzeOutDir     string
	analyzeOutput     string
	analyzeYears      string
	analyzeNoCharts   bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline",
	Long: `Run the full analysis pipeline: load the four datasets, join streaming
rows with award records, compute grouped statistics, and render charts.

The run fails if a dataset file is missing or a required column is absent.
A chart over an empty group is skipped with a warning and the run
continues.

Examples:
  # Analyze using needledrop.yml from the working directory
  needledrop analyze

  # Point at a dataset directory without a config file
  needledrop analyze --data ./datasets --out ./visuals

  # Machine-readable findings
  needledrop analyze --output jsonl

  # Restrict the analysis to recent ceremonies
  needledrop analyze --years 2019-2024`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "Config file (default needledrop.yml if present)")
	analyzeCmd.Flags().StringVarP(&analyzeDataDir, "data", "d", "", "Dataset directory (overrides config paths)")
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Output directory for charts and summary (overrides config)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "table", "Output format: table, jsonl or json")
	analyzeCmd.Flags().StringVar(&analyzeYears, "years", "", "Ceremony year range like '2019-2024' (overrides config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoCharts, "no-charts", false, "Skip chart rendering")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	switch analyzeOutput {
	case "table", "jsonl", "json", "":
	default:
		return printer.Error(
			fmt.Sprintf("invalid output format: %s", analyzeOutput),
			"Supported formats are 'table', 'jsonl' and 'json'.",
			nil,
		)
	}

	cfg, err := resolveConfig(analyzeConfigPath, analyzeDataDir)
	if err != nil {
		return err
	}
	if analyzeOutDir != "" {
		cfg.Output.Dir = analyzeOutDir
	}
	if analyzeNoCharts {
		disabled := false
		cfg.Output.Charts = &disabled
		cfg.Output.HTML = &disabled
	}
	if analyzeYears != "" {
		if _, err := yearspec.ParseRange(analyzeYears); err != nil {
			return printer.Error("invalid --years", err.Error(),
				[]string{"Use a four-digit year or range like '2019-2024'"})
		}
		cfg.Analysis.Years = analyzeYears
	}

	level := "info"
	if analyzeVerbose {
		level = "debug"
	}
	logger := logging.New(level)

	engine := analysis.New(cfg, logger)
	result, err := engine.Run(context.Background())
	if err != nil {
		return analysisError(err)
	}

	for _, w := range result.Warnings {
		printer.Warning("skipped %s: %s\n", w.Chart, w.Reason)
	}

	switch analyzeOutput {
	case "jsonl":
		if err := report.FormatJSONL(os.Stdout, result.Summary); err != nil {
			return err
		}
	case "json":
		data, err := json.MarshalIndent(result.Summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		fmt.Println(string(data))
	default:
		report.FormatTable(os.Stdout, result.Summary)
	}

	// summary.json belongs to the run, not to chart success: written even
	// when every chart was skipped or --no-charts is set.
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.Output.Dir, err)
	}
	summaryPath, err := result.Summary.WriteJSON(cfg.Output.Dir)
	if err != nil {
		return err
	}
	if len(result.Charts) > 0 {
		printer.Success("%d charts and %s written\n", len(result.Charts), summaryPath)
	} else {
		printer.Success("%s written\n", summaryPath)
	}

	return nil
}

// analysisError turns a pipeline failure into a printed error with
// suggestions. Missing files and schema mismatches are the two fatal cases
// the pipeline can hit.
func analysisError(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return printer.Error(
			"dataset file not found",
			err.Error(),
			[]string{
				"Check the dataset paths in needledrop.yml",
				"Run 'needledrop init' to scaffold a project with sample data",
			},
		)
	}
	return printer.Error("analysis failed", err.Error(), nil)
}

// resolveConfig picks the effective configuration: an explicit --config
// file, the conventional needledrop.yml if present, or defaults rooted at
// the --data directory.
func resolveConfig(configPath, dataDir string) (*config.Config, error) {
	switch {
	case configPath != "":
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, printer.Error("invalid config", err.Error(), nil)
		}
		return applyDataDir(cfg, dataDir), nil
	default:
		if _, err := os.Stat(config.DefaultFile); err == nil {
			cfg, err := config.Load(config.DefaultFile)
			if err != nil {
				return nil, printer.Error("invalid config", err.Error(), nil)
			}
			return applyDataDir(cfg, dataDir), nil
		}
		if dataDir == "" {
			dataDir = "datasets"
		}
		return config.Default(dataDir), nil
	}
}

// applyDataDir rebuilds the dataset paths under dir when --data is given.
func applyDataDir(cfg *config.Config, dir string) *config.Config {
	if dir == "" {
		return cfg
	}
	cfg.Datasets = config.Default(dir).Datasets
	return cfg
}
