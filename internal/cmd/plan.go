package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/marcus/zeropad/internal/config"
	"github.com/marcus/zeropad/internal/display"
	"github.com/marcus/zeropad/internal/fileutil"
	"github.com/marcus/zeropad/internal/plan"
	"github.com/spf13/cobra"
)

// NewPlanCommand creates the plan subcommand: compute and print the
// rename plan for a directory without ever touching the filesystem.
func NewPlanCommand() *cobra.Command {
	var configPath string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "plan [directory]",
		Short: "Show the rename plan without renaming anything",
		Long: `Compute the zero-padding plan for one directory and print it:
files that are already padded correctly, the old -> new pairs that
would be renamed, and files skipped with their reasons.

Exit code: 0 unless the directory cannot be read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			var cfg *config.Config
			var err error
			if configPath != "" {
				cfg, err = config.LoadConfig(configPath)
			} else {
				cfg, err = config.LoadConfigFromDir(dir)
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if noColor || cfg.NoColor {
				color.NoColor = true
			}

			listing, err := fileutil.ListDirectory(dir)
			if err != nil {
				return err
			}

			p := plan.BuildPlan(dir, listing.Names)
			display.NewRenderer(cmd.OutOrStdout(), noColor || cfg.NoColor).PlanSummary(p)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: <directory>/.zeropad/config.yaml)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
