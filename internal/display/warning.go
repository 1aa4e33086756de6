package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Warning is a user-facing warning block with an optional remedy.
type Warning struct {
	Title      string
	Message    string   // detailed explanation (optional)
	Files      []string // related files (optional)
	Suggestion string   // action to take (optional)
}

// Display writes the warning to out, in yellow when color is enabled.
func (w Warning) Display(out io.Writer) {
	warn := color.New(color.FgYellow)

	fmt.Fprintf(out, "%s %s\n", warn.Sprint("Warning:"), w.Title)
	if w.Message != "" {
		fmt.Fprintf(out, "    %s\n", w.Message)
	}
	if len(w.Files) > 0 {
		label := "Affected files:"
		if len(w.Files) == 1 {
			label = "Affected file:"
		}
		fmt.Fprintf(out, "    %s\n", label)
		for i, file := range w.Files {
			fmt.Fprintf(out, "      %d. %s\n", i+1, file)
		}
	}
	if w.Suggestion != "" {
		fmt.Fprintf(out, "    Suggestion: %s\n", w.Suggestion)
	}
}
