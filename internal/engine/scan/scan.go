// Package scan finds word and line boundaries within a single line.
//
// Words are delimited by a configurable set of break runes. Scans never
// cross line boundaries.
package scan

import (
	"github.com/dshills/vedit/internal/engine/buffer"
)

// DefaultBreakChars are the runes that end a word.
const DefaultBreakChars = " ,.;:\"(){}[]<>_-@'\t"

// BreakSet is a set of word-breaking runes.
type BreakSet map[rune]struct{}

// NewBreakSet builds a set from every rune in chars.
func NewBreakSet(chars string) BreakSet {
	set := make(BreakSet, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// DefaultBreakSet returns a set built from DefaultBreakChars.
func DefaultBreakSet() BreakSet {
	return NewBreakSet(DefaultBreakChars)
}

// Contains reports whether r breaks a word.
func (s BreakSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// String returns the runes of the set in no particular order.
func (s BreakSet) String() string {
	out := make([]rune, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	return string(out)
}

// NextWord returns the column of the first break rune after pos, or the
// last column of the line when there is none. It returns false when pos is
// already on or past the last column, or the line does not exist.
func NextWord(src buffer.LineSource, pos buffer.Pos, breaks BreakSet) (buffer.Pos, bool) {
	line, ok := src.Get(pos.Line)
	if !ok {
		return pos, false
	}
	runes := []rune(line)
	if pos.Col >= len(runes) {
		return pos, false
	}

	// Columns are 1-based, so column c is runes[c-1].
	for c := max(pos.Col+1, 1); c <= len(runes); c++ {
		if breaks.Contains(runes[c-1]) {
			return pos.WithCol(c), true
		}
	}
	return pos.WithCol(len(runes)), true
}

// PrevWord returns the column just after the nearest break rune left of
// pos, skipping the rune immediately left of the cursor. Column 1 is
// returned when no break rune is found. It returns false at column 1,
// past the end-of-line slot, or when the line does not exist.
func PrevWord(src buffer.LineSource, pos buffer.Pos, breaks BreakSet) (buffer.Pos, bool) {
	line, ok := src.Get(pos.Line)
	if !ok {
		return pos, false
	}
	runes := []rune(line)
	if pos.Col <= 1 || pos.Col > len(runes)+1 {
		return pos, false
	}

	for c := pos.Col - 2; c >= 1; c-- {
		if breaks.Contains(runes[c-1]) {
			return pos.WithCol(c + 1), true
		}
	}
	return pos.WithCol(1), true
}

// LineStart returns the column of the first rune that is not a space or a
// tab. A line made only of whitespace yields one past its last rune.
func LineStart(src buffer.LineSource, pos buffer.Pos) buffer.Pos {
	line, ok := src.Get(pos.Line)
	if !ok {
		return pos
	}
	col := 1
	for _, r := range line {
		if r != ' ' && r != '\t' {
			return pos.WithCol(col)
		}
		col++
	}
	return pos.WithCol(col)
}

// LineEnd returns the column of the last rune of the line.
func LineEnd(src buffer.LineSource, pos buffer.Pos) buffer.Pos {
	line, ok := src.Get(pos.Line)
	if !ok {
		return pos
	}
	return pos.WithCol(buffer.RuneLen(line))
}
