// Package display renders plan summaries, execution reports, warnings
// and the confirmation prompt for terminal output.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/marcus/zeropad/internal/plan"
	"github.com/marcus/zeropad/internal/rename"
	"github.com/mattn/go-isatty"
)

// colorScheme defines consistent colors for the summary sections.
// Green: files that are fine or succeeded. Cyan: planned targets.
// Yellow: skipped files. Red: failures.
type colorScheme struct {
	ok      *color.Color
	target  *color.Color
	skipped *color.Color
	fail    *color.Color
	heading *color.Color
}

func newColorScheme() *colorScheme {
	return &colorScheme{
		ok:      color.New(color.FgGreen),
		target:  color.New(color.FgCyan),
		skipped: color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		heading: color.New(color.Bold),
	}
}

// Renderer writes human-readable summaries to a single output writer.
type Renderer struct {
	out    io.Writer
	scheme *colorScheme
}

// NewRenderer creates a Renderer writing to out. Color is dropped
// automatically when out is not a terminal or noColor is set; the
// fatih/color NO_COLOR handling still applies on top.
func NewRenderer(out io.Writer, noColor bool) *Renderer {
	if noColor || !isTerminalWriter(out) {
		color.NoColor = true
	}
	return &Renderer{out: out, scheme: newColorScheme()}
}

// isTerminalWriter reports whether w is a TTY that can take ANSI codes.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlanSummary prints the itemized plan: unchanged files, planned
// old -> new pairs, and skipped files with their reasons. Nothing is
// renamed silently; this is the exact set the user confirms.
func (r *Renderer) PlanSummary(p *plan.DirectoryPlan) {
	fmt.Fprintf(r.out, "%s\n", r.scheme.heading.Sprintf("Rename plan for %s", p.Dir))

	if len(p.AlreadyCorrect) > 0 {
		fmt.Fprintf(r.out, "\nAlready correct (%d):\n", len(p.AlreadyCorrect))
		for _, e := range p.AlreadyCorrect {
			fmt.Fprintf(r.out, "  %s\n", r.scheme.ok.Sprint(e.Original))
		}
	}

	if len(p.ToRename) > 0 {
		fmt.Fprintf(r.out, "\nTo rename (%d):\n", len(p.ToRename))
		for _, e := range p.ToRename {
			fmt.Fprintf(r.out, "  %s -> %s\n", e.Name.Original, r.scheme.target.Sprint(e.NewName))
		}
	}

	if len(p.Skipped) > 0 {
		fmt.Fprintf(r.out, "\nSkipped (%d):\n", len(p.Skipped))
		for _, s := range p.Skipped {
			fmt.Fprintf(r.out, "  %s: %s\n", r.scheme.skipped.Sprint(s.Name), s.Reason)
		}
	}

	if len(p.ToRename) == 0 {
		fmt.Fprintf(r.out, "\nNothing to rename.\n")
	}
}

// ReportSummary prints the outcome of an execution run: how many files
// were renamed and every per-file failure with its reason.
func (r *Renderer) ReportSummary(rep *rename.Report) {
	if !rep.Confirmed {
		fmt.Fprintf(r.out, "\nCancelled. No files were renamed.\n")
		return
	}

	fmt.Fprintf(r.out, "\n%s\n", r.scheme.heading.Sprint("Summary"))
	fmt.Fprintf(r.out, "  Renamed: %s\n", r.scheme.ok.Sprintf("%d", rep.Renamed))
	if len(rep.Failures) > 0 {
		fmt.Fprintf(r.out, "  Failed:  %s\n", r.scheme.fail.Sprintf("%d", len(rep.Failures)))
		for _, f := range rep.Failures {
			fmt.Fprintf(r.out, "    %s -> %s: %v\n", f.OldName, f.NewName, f.Err)
		}
	}
	fmt.Fprintf(r.out, "  Run ID:  %s\n", rep.RunID)
}
