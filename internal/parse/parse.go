// Package parse splits filenames that carry a single parenthesized
// number, like "paris (12).jpg", into their literal and numeric parts.
//
// A filename qualifies only when it contains exactly one "(N)" segment;
// that segment is the ordering index the rest of the pipeline pads.
// Everything around it, including the parentheses themselves and the
// extension, is preserved verbatim as prefix and suffix.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
)

// numberGroup matches one parenthesized run of decimal digits.
var numberGroup = regexp.MustCompile(`\([0-9]+\)`)

// ErrorKind identifies the way a filename failed to parse.
type ErrorKind int

const (
	// KindNoNumberedGroup means the filename contains no "(N)" segment.
	KindNoNumberedGroup ErrorKind = iota
	// KindMultipleNumberedGroups means the filename contains more than
	// one "(N)" segment, so the ordering index is ambiguous.
	KindMultipleNumberedGroups
	// KindValueOutOfRange means the digits do not fit in a uint64.
	KindValueOutOfRange
)

// Error describes why a filename cannot participate in a rename group.
type Error struct {
	Filename string
	Kind     ErrorKind
	Groups   int // numbered groups found
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValueOutOfRange:
		return fmt.Sprintf("filename %q has a numbered group too large to process", e.Filename)
	default:
		return fmt.Sprintf("filename %q must include exactly one numbered group; found %d", e.Filename, e.Groups)
	}
}

// ParsedName is one filename split around its numbered group.
// Prefix keeps the opening parenthesis and Suffix keeps the closing one
// plus the extension, so Original == Prefix + Text + Suffix.
type ParsedName struct {
	Original string
	Prefix   string
	Suffix   string
	Text     string // raw digits as found, leading zeros preserved
	Value    uint64
}

// Digits returns the number of digits the numbered group currently has.
func (p ParsedName) Digits() int {
	return len(p.Text)
}

// ShapeKey identifies the rename group this filename belongs to. Two
// filenames belong to the same group iff their literal parts, and
// therefore their extensions, match exactly.
func (p ParsedName) ShapeKey() string {
	return p.Prefix + "\x00" + p.Suffix
}

func (p ParsedName) String() string {
	return p.Original
}

// Parse splits filename around its single parenthesized number.
// Filenames with zero or several numbered groups, or with a number too
// large for uint64, return a *Error describing the violation.
func Parse(filename string) (ParsedName, error) {
	locs := numberGroup.FindAllStringIndex(filename, -1)
	switch {
	case len(locs) == 0:
		return ParsedName{}, &Error{Filename: filename, Kind: KindNoNumberedGroup}
	case len(locs) > 1:
		return ParsedName{}, &Error{Filename: filename, Kind: KindMultipleNumberedGroups, Groups: len(locs)}
	}

	// Strip the parentheses from the matched span.
	begin, end := locs[0][0]+1, locs[0][1]-1

	text := filename[begin:end]
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return ParsedName{}, &Error{Filename: filename, Kind: KindValueOutOfRange, Groups: 1}
	}

	return ParsedName{
		Original: filename,
		Prefix:   filename[:begin],
		Suffix:   filename[end:],
		Text:     text,
		Value:    value,
	}, nil
}
