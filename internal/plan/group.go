package plan

import (
	"fmt"
	"sort"

	"github.com/marcus/zeropad/internal/parse"
)

// Skipped records one filename excluded from planning and the exact
// constraint it violated.
type Skipped struct {
	Name   string
	Reason string
}

// Group is the set of parsed names sharing one shape key, ordered by
// ascending numeric value.
type Group struct {
	Key     string
	Entries []parse.ParsedName
}

// GroupFiles partitions a flat directory listing into rename groups by
// shape key. Files that fail to parse are routed to the skipped list
// with a per-file diagnostic and never abort the run. Within a group,
// every holder of a duplicated numeric value is also skipped; the
// distinct remainder of the group still proceeds.
func GroupFiles(names []string) ([]Group, []Skipped) {
	var skipped []Skipped
	byKey := make(map[string][]parse.ParsedName)

	for _, name := range names {
		pn, err := parse.Parse(name)
		if err != nil {
			skipped = append(skipped, Skipped{Name: name, Reason: err.Error()})
			continue
		}
		key := pn.ShapeKey()
		byKey[key] = append(byKey[key], pn)
	}

	keys := make([]string, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(byKey))
	for _, key := range keys {
		entries := byKey[key]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Value < entries[j].Value
		})

		entries, conflicts := dropDuplicateValues(entries)
		skipped = append(skipped, conflicts...)
		if len(entries) == 0 {
			continue
		}
		groups = append(groups, Group{Key: key, Entries: entries})
	}
	return groups, skipped
}

// dropDuplicateValues excludes every entry whose numeric value appears
// more than once in the group. A duplicated value means two files claim
// the same ordering index and would collide after padding, so neither
// side can be renamed safely. Entries with unique values are kept.
func dropDuplicateValues(entries []parse.ParsedName) ([]parse.ParsedName, []Skipped) {
	count := make(map[uint64]int, len(entries))
	for _, e := range entries {
		count[e.Value]++
	}

	var kept []parse.ParsedName
	var skipped []Skipped
	for _, e := range entries {
		if count[e.Value] > 1 {
			skipped = append(skipped, Skipped{
				Name:   e.Original,
				Reason: fmt.Sprintf("duplicate index %d is claimed by %d files in the same group", e.Value, count[e.Value]),
			})
			continue
		}
		kept = append(kept, e)
	}
	return kept, skipped
}
