package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "needledrop",
	Short: "Needledrop - Grammy award and streaming data analysis",
	Long: `Needledrop is a one-shot batch tool that joins Grammy award records
with streaming statistics, artist award history, and producer credits,
computes descriptive statistics, and renders charts summarizing the
findings.

The pipeline is strictly sequential: load the four CSV datasets, join
streaming rows with award records, aggregate, and render. A missing file
or column aborts the run; a chart over an empty group is skipped with a
warning.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: show help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing; formatted colored
	// errors are printed directly by the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}
