// Package dirty tracks which document lines need re-classification and
// redraw.
//
// Edits mark single lines; structural edits (line insert, delete, join)
// mark every line from the edit point down, since their line numbers shift.
// A Tracker collapses into a full redraw when too many lines are marked.
package dirty

import "slices"

// DefaultMaxLines is the number of marked lines that forces a full redraw.
const DefaultMaxLines = 256

// Tracker records dirty lines. It is not safe for concurrent use.
type Tracker struct {
	lines map[int]struct{}

	// from marks every line >= from as dirty; 0 means unset.
	from int

	full     bool
	maxLines int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		lines:    make(map[int]struct{}),
		maxLines: DefaultMaxLines,
	}
}

// MarkLine marks line n.
func (t *Tracker) MarkLine(n int) {
	if t.full || n < 1 || t.coveredByFrom(n) {
		return
	}
	t.lines[n] = struct{}{}
	if len(t.lines) > t.maxLines {
		t.MarkAll()
	}
}

// MarkFrom marks line n and every line after it.
func (t *Tracker) MarkFrom(n int) {
	if t.full {
		return
	}
	n = max(n, 1)
	if t.from == 0 || n < t.from {
		t.from = n
	}
	for l := range t.lines {
		if l >= t.from {
			delete(t.lines, l)
		}
	}
}

// MarkAll marks the whole document.
func (t *Tracker) MarkAll() {
	t.full = true
	t.from = 0
	clear(t.lines)
}

// IsDirty reports whether line n is marked.
func (t *Tracker) IsDirty(n int) bool {
	if t.full || t.coveredByFrom(n) {
		return true
	}
	_, ok := t.lines[n]
	return ok
}

// Empty reports whether nothing is marked.
func (t *Tracker) Empty() bool {
	return !t.full && t.from == 0 && len(t.lines) == 0
}

// Take returns the marked set and clears the tracker.
func (t *Tracker) Take() Set {
	s := Set{Full: t.full, From: t.from}
	for l := range t.lines {
		s.Lines = append(s.Lines, l)
	}
	slices.Sort(s.Lines)

	t.full = false
	t.from = 0
	clear(t.lines)
	return s
}

func (t *Tracker) coveredByFrom(n int) bool {
	return t.from > 0 && n >= t.from
}

// Set is a snapshot of dirty lines.
type Set struct {
	// Full is true when the whole document is dirty.
	Full bool

	// From, when non-zero, marks every line >= From.
	From int

	// Lines are individually marked lines, sorted.
	Lines []int
}

// Contains reports whether line n is in the set.
func (s Set) Contains(n int) bool {
	if s.Full || (s.From > 0 && n >= s.From) {
		return true
	}
	_, found := slices.BinarySearch(s.Lines, n)
	return found
}

// Empty reports whether the set marks nothing.
func (s Set) Empty() bool {
	return !s.Full && s.From == 0 && len(s.Lines) == 0
}

// Intersects reports whether any line in [first, last] is dirty.
func (s Set) Intersects(first, last int) bool {
	if s.Full {
		return true
	}
	if s.From > 0 && s.From <= last {
		return true
	}
	for _, l := range s.Lines {
		if l >= first && l <= last {
			return true
		}
	}
	return false
}
