package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/needledrop/needledrop/internal/scaffold"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new needledrop project",
	Long: `Initialize a new needledrop project with default configuration and
sample datasets.

Creates:
  • needledrop.yml - project configuration
  • datasets/ - sample CSV files in the expected schemas
  • visuals/ - output directory for charts

Use --force to reinitialize an existing project (overwrites configuration
and sample datasets).`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Force reinitialization (overwrites needledrop.yml and sample datasets)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !forceInit {
		if err := scaffold.CheckExisting(); err != nil {
			return err
		}
	}

	if err := scaffold.Initialize(forceInit); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess()
	return nil
}
