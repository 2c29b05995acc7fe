package buffer

import "fmt"

// Pos represents a line and column position.
// Both Line and Col are 1-based. Col is measured in runes.
type Pos struct {
	Line int
	Col  int
}

// NewPos creates a Pos.
func NewPos(line, col int) Pos {
	return Pos{Line: line, Col: col}
}

// String returns a human-readable representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Pos) Compare(other Pos) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Pos) Before(other Pos) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Pos) After(other Pos) bool {
	return p.Compare(other) > 0
}

// WithCol returns a copy of p with the column replaced.
func (p Pos) WithCol(col int) Pos {
	p.Col = col
	return p
}

// WithLine returns a copy of p with the line replaced.
func (p Pos) WithLine(line int) Pos {
	p.Line = line
	return p
}

// Clamp restricts x to [lo, hi]. Inverted bounds are swapped.
func Clamp(x, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Bound returns the nearest valid cursor position to pos.
//
// The line is clamped to [1, src.Len()] first, then the column to
// [1, max] where max is the rune length of the line, plus one when insert
// is true or the line is empty. Each step only moves the candidate toward
// the valid space, so the result is stable: Bound(Bound(p)) == Bound(p).
func Bound(src LineSource, pos Pos, insert bool) Pos {
	count := src.Len()

	if pos.Line < 1 {
		pos.Line = 1
	}
	if count > 0 && pos.Line > count {
		pos.Line = count
	}

	if pos.Col < 1 {
		pos.Col = 1
	}
	if line, ok := src.Get(pos.Line); ok {
		max := RuneLen(line)
		if max == 0 || insert {
			max++
		}
		if pos.Col > max {
			pos.Col = max
		}
	}

	return pos
}
