// Package plan turns a directory listing into a deterministic rename
// plan: which files already carry the right zero-padding, which need a
// new name, and which had to be skipped and why.
package plan

import (
	"fmt"

	"github.com/marcus/zeropad/internal/parse"
)

// RenameEntry pairs a parsed filename with its zero-padded target name.
type RenameEntry struct {
	Name        parse.ParsedName
	TargetWidth int
	NewName     string
}

// DirectoryPlan is the full outcome of planning one directory. ToRename
// and AlreadyCorrect together partition every file that parsed cleanly;
// Skipped holds the rest. Ordering is stable for a given input set:
// groups by shape key, entries by ascending numeric value.
type DirectoryPlan struct {
	Dir            string
	ToRename       []RenameEntry
	AlreadyCorrect []parse.ParsedName
	Skipped        []Skipped
}

// BuildPlan groups the given filenames and computes the rename plan for
// every group. It never touches the filesystem.
func BuildPlan(dir string, names []string) *DirectoryPlan {
	groups, skipped := GroupFiles(names)

	p := &DirectoryPlan{Dir: dir, Skipped: skipped}
	for _, g := range groups {
		toRename, correct := planGroup(g)
		p.ToRename = append(p.ToRename, toRename...)
		p.AlreadyCorrect = append(p.AlreadyCorrect, correct...)
	}
	return p
}

// planGroup computes the rename fragment for one shape group. The
// target width is the digit count of the group's maximum value, which
// makes a single-file group always already correct.
func planGroup(g Group) ([]RenameEntry, []parse.ParsedName) {
	if len(g.Entries) == 0 {
		return nil, nil
	}

	// Entries are sorted by ascending value, so the maximum is last.
	width := digitCount(g.Entries[len(g.Entries)-1].Value)

	var toRename []RenameEntry
	var correct []parse.ParsedName
	for _, e := range g.Entries {
		newName := e.Prefix + pad(e.Value, width) + e.Suffix
		if newName == e.Original {
			correct = append(correct, e)
			continue
		}
		toRename = append(toRename, RenameEntry{Name: e, TargetWidth: width, NewName: newName})
	}
	return toRename, correct
}

// digitCount returns the decimal digit count of v. Zero has one digit.
func digitCount(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// pad renders v zero-padded on the left to width digits.
func pad(v uint64, width int) string {
	return fmt.Sprintf("%0*d", width, v)
}
