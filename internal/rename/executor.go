// Package rename applies a directory plan to the filesystem. It
// verifies the whole rename set is conflict-free before touching
// anything, then applies renames one at a time with per-file error
// isolation: one failed rename is recorded and the batch continues.
package rename

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/marcus/zeropad/internal/plan"
)

// Logger receives progress messages during execution. The console and
// file loggers both satisfy it; a nil logger discards everything.
type Logger interface {
	LogInfo(message string)
	LogError(message string)
}

// CollisionError aborts execution before any file is touched: two
// planned targets collide, or a planned target is already occupied by a
// file outside the rename set.
type CollisionError struct {
	Names []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("cannot rename: %d target name(s) conflict with existing or planned files: %s",
		len(e.Names), strings.Join(e.Names, ", "))
}

// Failure records one rename that could not be applied.
type Failure struct {
	OldName string
	NewName string
	Err     error
}

// Report summarizes one execution run.
type Report struct {
	RunID     string
	Confirmed bool
	Renamed   int
	Failures  []Failure
}

// Executor applies directory plans to the filesystem.
type Executor struct {
	fs    FS
	log   Logger
	runID string
}

// NewExecutor returns an Executor backed by fs, logging progress to
// log. A nil fs uses the real filesystem; a nil log discards messages.
// An empty runID gets a fresh one generated.
func NewExecutor(fs FS, log Logger, runID string) *Executor {
	if fs == nil {
		fs = OSFS{}
	}
	if runID == "" {
		runID = uuid.New().String()
	}
	return &Executor{fs: fs, log: log, runID: runID}
}

// RunID returns the identifier stamped on every report this executor
// produces.
func (ex *Executor) RunID() string {
	return ex.runID
}

// Execute applies p to the filesystem. If confirmed is false nothing is
// touched and the report shows zero renames with no error. Otherwise
// the whole rename set is collision-checked first; any collision aborts
// before the first mutation. Individual rename failures are recorded in
// the report and do not stop the remaining renames.
func (ex *Executor) Execute(p *plan.DirectoryPlan, confirmed bool) (*Report, error) {
	report := &Report{RunID: ex.runID, Confirmed: confirmed}
	if !confirmed {
		return report, nil
	}

	if err := ex.checkCollisions(p); err != nil {
		return report, err
	}

	for _, entry := range p.ToRename {
		oldPath := filepath.Join(p.Dir, entry.Name.Original)
		newPath := filepath.Join(p.Dir, entry.NewName)
		if err := ex.fs.Rename(oldPath, newPath); err != nil {
			report.Failures = append(report.Failures, Failure{
				OldName: entry.Name.Original,
				NewName: entry.NewName,
				Err:     err,
			})
			ex.logError(fmt.Sprintf("failed to rename %s to %s: %v", entry.Name.Original, entry.NewName, err))
			continue
		}
		report.Renamed++
		ex.logInfo(fmt.Sprintf("renamed %s to %s", entry.Name.Original, entry.NewName))
	}
	return report, nil
}

// checkCollisions proves the rename set is safe before any mutation:
// planned targets must be pairwise distinct, and a target occupied on
// disk is only acceptable when the occupant is itself being renamed
// away as part of the set.
func (ex *Executor) checkCollisions(p *plan.DirectoryPlan) error {
	sources := make(map[string]bool, len(p.ToRename))
	for _, entry := range p.ToRename {
		sources[entry.Name.Original] = true
	}

	targets := make(map[string]bool, len(p.ToRename))
	var conflicts []string
	for _, entry := range p.ToRename {
		if targets[entry.NewName] {
			conflicts = append(conflicts, entry.NewName)
			continue
		}
		targets[entry.NewName] = true

		if sources[entry.NewName] {
			// The occupant is part of the rename set. Distinct values
			// padded to one width cannot map onto each other, so this
			// only happens for hand-crafted plans; reject those too.
			conflicts = append(conflicts, entry.NewName)
			continue
		}
		if ex.fs.Exists(filepath.Join(p.Dir, entry.NewName)) {
			conflicts = append(conflicts, entry.NewName)
		}
	}

	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return &CollisionError{Names: conflicts}
	}
	return nil
}

func (ex *Executor) logInfo(message string) {
	if ex.log != nil {
		ex.log.LogInfo(message)
	}
}

func (ex *Executor) logError(message string) {
	if ex.log != nil {
		ex.log.LogError(message)
	}
}
