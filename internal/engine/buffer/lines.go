package buffer

import (
	"slices"
	"unicode/utf8"
)

// LineSource is read access to an ordered sequence of lines.
// Line numbers are 1-based.
type LineSource interface {
	// Len returns the number of lines.
	Len() int

	// Get returns line n, or false if n is out of range.
	Get(n int) (string, bool)
}

// Lines is the document line store.
// It always holds at least one (possibly empty) line.
type Lines struct {
	lines []string
}

// Ensure Lines implements LineSource.
var _ LineSource = (*Lines)(nil)

// NewLines creates a store holding a copy of lines.
// An empty input produces a single empty line.
func NewLines(lines []string) *Lines {
	l := &Lines{lines: slices.Clone(lines)}
	l.ensureNonEmpty()
	return l
}

// NewLinesFromString splits text on "\n" into a store.
func NewLinesFromString(text string) *Lines {
	return NewLines(SplitLines(text))
}

// Len returns the number of lines.
func (l *Lines) Len() int {
	return len(l.lines)
}

// Get returns line n.
func (l *Lines) Get(n int) (string, bool) {
	if n < 1 || n > len(l.lines) {
		return "", false
	}
	return l.lines[n-1], true
}

// Set replaces line n. Returns false if n is out of range.
func (l *Lines) Set(n int, text string) bool {
	if n < 1 || n > len(l.lines) {
		return false
	}
	l.lines[n-1] = text
	return true
}

// InsertAt inserts an empty line before line n, shifting later lines down.
// n may be Len()+1 to append. Returns the line following the inserted one,
// clamped to the new content length. Out-of-range n is ignored.
func (l *Lines) InsertAt(n int) int {
	if n >= 1 && n <= len(l.lines)+1 {
		l.lines = slices.Insert(l.lines, n-1, "")
	}
	return Clamp(n+1, 1, len(l.lines))
}

// DeleteAt removes line n. Removing the only line leaves one empty line.
// Returns n clamped to the new content length.
func (l *Lines) DeleteAt(n int) int {
	if n >= 1 && n <= len(l.lines) {
		l.lines = slices.Delete(l.lines, n-1, n)
		l.ensureNonEmpty()
	}
	return Clamp(n, 1, len(l.lines))
}

// Snapshot returns a copy of all lines.
func (l *Lines) Snapshot() []string {
	return slices.Clone(l.lines)
}

// Replace swaps the whole content for a copy of lines.
func (l *Lines) Replace(lines []string) {
	l.lines = slices.Clone(lines)
	l.ensureNonEmpty()
}

// Equal reports whether the store holds exactly lines.
func (l *Lines) Equal(lines []string) bool {
	return slices.Equal(l.lines, lines)
}

func (l *Lines) ensureNonEmpty() {
	if len(l.lines) == 0 {
		l.lines = []string{""}
	}
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// SplitLines splits text into lines on "\n".
// A trailing newline does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
