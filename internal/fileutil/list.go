// Package fileutil provides the directory listing that seeds a rename
// plan: one directory level, regular files only, sorted output.
package fileutil

import (
	"fmt"
	"os"
	"sort"
)

// ListResult contains the outcome of listing one directory level.
type ListResult struct {
	// Names holds the names of all regular files, sorted alphabetically
	// for deterministic planning output.
	Names []string
	// Errors contains non-fatal errors encountered while inspecting
	// individual entries.
	Errors []error
}

// ListDirectory returns the regular files directly inside dir. There is
// no recursion: subdirectories, symlinks and other non-regular entries
// are silently ignored, since only plain files can be renamed safely.
// A directory that cannot be read at all is a fatal error.
func ListDirectory(dir string) (*ListResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	result := &ListResult{Names: make([]string, 0, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !entry.Type().IsRegular() {
			// Symlinks, sockets, devices. Note entries whose type
			// cannot even be inspected; skip the rest quietly.
			if _, err := entry.Info(); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("error inspecting %s: %w", entry.Name(), err))
			}
			continue
		}
		result.Names = append(result.Names, entry.Name())
	}

	sort.Strings(result.Names)
	return result, nil
}
