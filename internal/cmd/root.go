package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for
// zeropad. Running the root itself renames the given directory; the
// plan subcommand previews without touching anything.
func NewRootCommand() *cobra.Command {
	opts := newRunOptions()

	cmd := &cobra.Command{
		Use:   "zeropad [directory]",
		Short: "Zero-pad numbered filenames so every tool sorts them correctly",
		Long: `zeropad renames sibling files that share a literal prefix/suffix and a
single parenthesized number so that all numbers carry the same amount
of leading zeros:

  paris (1).jpg   =>  paris (001).jpg
  paris (10).jpg  =>  paris (010).jpg
  paris (734).jpg =>  paris (734).jpg

The padding width is taken from the highest number in each group, which
keeps the files in order even in programs that sort plain
alphabetically. The plan is always shown and confirmed before any file
is touched, and files that do not fit the pattern are skipped with a
reason, never renamed.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, opts)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	opts.addFlags(cmd)

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewPlanCommand())

	return cmd
}
