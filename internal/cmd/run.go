package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/marcus/zeropad/internal/config"
	"github.com/marcus/zeropad/internal/display"
	"github.com/marcus/zeropad/internal/fileutil"
	"github.com/marcus/zeropad/internal/logger"
	"github.com/marcus/zeropad/internal/plan"
	"github.com/marcus/zeropad/internal/rename"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runOptions holds the flag values shared by the root and run commands.
type runOptions struct {
	configPath string
	logLevel   string
	logDir     string
	assumeYes  bool
	dryRun     bool
	noColor    bool
}

func newRunOptions() *runOptions {
	return &runOptions{}
}

func (o *runOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", "", "Path to config file (default: <directory>/.zeropad/config.yaml)")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "", "Logging verbosity (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&o.logDir, "log-dir", "", "Directory for run log files")
	cmd.Flags().BoolVarP(&o.assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "Show the plan without renaming anything")
	cmd.Flags().BoolVar(&o.noColor, "no-color", false, "Disable colored output")
}

// NewRunCommand creates the run command, the explicit spelling of what
// the bare root command does.
func NewRunCommand() *cobra.Command {
	opts := newRunOptions()

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Rename numbered files in a directory (default: current directory)",
		Long: `Compute the zero-padding plan for one directory, show it, ask for
confirmation and apply it. Each rename failure is reported per file and
does not stop the remaining renames.

Examples:
  # Rename in the current directory
  zeropad run

  # Rename a specific directory without prompting
  zeropad run ~/Pictures/paris --yes

  # Preview only
  zeropad run --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, opts)
		},
		SilenceUsage: true,
	}

	opts.addFlags(cmd)
	return cmd
}

// loadRunConfig merges the config file with flag overrides. Flags win
// over file values; the file is looked up next to the target directory
// unless --config names one explicitly.
func loadRunConfig(cmd *cobra.Command, dir string, opts *runOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if opts.configPath != "" {
		cfg, err = config.LoadConfig(opts.configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.LogDir = opts.logDir
	}
	if cmd.Flags().Changed("yes") {
		cfg.AssumeYes = opts.assumeYes
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = opts.noColor
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runRename is the full pipeline: list, plan, display, confirm,
// execute, report. Exit is clean (nil error) on success and on user
// decline; unreadable directories and rename collisions return errors.
func runRename(cmd *cobra.Command, args []string, opts *runOptions) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := loadRunConfig(cmd, dir, opts)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	out := cmd.OutOrStdout()
	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	listing, err := fileutil.ListDirectory(dir)
	if err != nil {
		return err
	}
	for _, lerr := range listing.Errors {
		console.LogWarn(lerr.Error())
	}

	p := plan.BuildPlan(dir, listing.Names)
	for _, s := range p.Skipped {
		console.LogWarn(fmt.Sprintf("skipping %s: %s", s.Name, s.Reason))
	}

	renderer := display.NewRenderer(out, cfg.NoColor)
	renderer.PlanSummary(p)

	if len(p.ToRename) == 0 {
		return nil
	}
	if cfg.DryRun {
		fmt.Fprintf(out, "\nDry run: no files were renamed.\n")
		return nil
	}

	if !confirm(cmd, cfg) {
		return nil
	}

	runID := uuid.New().String()

	// A relative log_dir lives inside the directory being renamed.
	logDir := cfg.LogDir
	if !filepath.IsAbs(logDir) {
		logDir = filepath.Join(dir, logDir)
	}

	var runLog logger.Logger
	fileLog, err := logger.NewFileLogger(logDir, cfg.LogLevel, runID)
	if err != nil {
		// Losing the run log is not worth aborting the rename over.
		console.LogWarn(fmt.Sprintf("run log disabled: %v", err))
	} else {
		defer fileLog.Close()
		runLog = fileLog
	}

	ex := rename.NewExecutor(nil, logger.NewTee(console, runLog), runID)
	report, err := ex.Execute(p, true)
	if err != nil {
		var collision *rename.CollisionError
		if errors.As(err, &collision) {
			console.LogError(collision.Error())
		}
		return err
	}

	renderer.ReportSummary(report)
	return nil
}

// confirm resolves the confirmation answer. It returns false when the
// run must stop before touching anything: the user declined, or the
// prompt cannot be answered because stdin is not a terminal.
func confirm(cmd *cobra.Command, cfg *config.Config) bool {
	if cfg.AssumeYes {
		return true
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		// Nobody can answer the prompt; refuse to rename rather than
		// guess.
		warning := display.Warning{
			Title:      "standard input is not a terminal, cannot ask for confirmation",
			Suggestion: "re-run with --yes to skip the confirmation prompt",
		}
		warning.Display(cmd.OutOrStdout())
		fmt.Fprintf(cmd.OutOrStdout(), "\nCancelled. No files were renamed.\n")
		return false
	}

	if !display.Confirm(in, cmd.OutOrStdout()) {
		fmt.Fprintf(cmd.OutOrStdout(), "\nCancelled. No files were renamed.\n")
		return false
	}
	return true
}
