package buffer

import "fmt"

// Range represents a span between two positions.
// Delete operations treat it as a single-line column range.
type Range struct {
	Start Pos
	End   Pos
}

// NewRange creates a new Range from start and end positions.
func NewRange(start, end Pos) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s]", r.Start, r.End)
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// Normalize returns the range with Start before End.
func (r Range) Normalize() Range {
	if r.Start.After(r.End) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// Contains returns true if p lies within the range, both ends inclusive.
func (r Range) Contains(p Pos) bool {
	n := r.Normalize()
	return p.Compare(n.Start) >= 0 && p.Compare(n.End) <= 0
}

// LineRange returns a range covering the whole of line n in src.
func LineRange(src LineSource, n int) Range {
	line, _ := src.Get(n)
	end := RuneLen(line)
	if end < 1 {
		end = 1
	}
	return Range{Start: Pos{Line: n, Col: 1}, End: Pos{Line: n, Col: end}}
}
