// Package search finds substring occurrences in a document.
//
// Matches are reported as 1-based rune columns. Every start position is
// reported, so overlapping occurrences are all found. Directional searches
// never re-match the occurrence that starts exactly at the given column.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/vedit/internal/engine/buffer"
)

// Columns returns the 1-based start column of every occurrence of target in
// line, including overlapping ones.
func Columns(line, target string) []int {
	if target == "" {
		return nil
	}

	var cols []int
	col := 1
	for i := 0; i < len(line); {
		idx := strings.Index(line[i:], target)
		if idx < 0 {
			break
		}
		col += utf8.RuneCountInString(line[i : i+idx])
		cols = append(cols, col)

		// Step one rune past the match start so overlaps are found.
		_, size := utf8.DecodeRuneInString(line[i+idx:])
		i += idx + size
		col++
	}
	return cols
}

// All returns every match in the document, top to bottom and left to right.
func All(src buffer.LineSource, target string) []buffer.Pos {
	if target == "" {
		return nil
	}

	var out []buffer.Pos
	for n := 1; n <= src.Len(); n++ {
		line, _ := src.Get(n)
		for _, c := range Columns(line, target) {
			out = append(out, buffer.NewPos(n, c))
		}
	}
	return out
}

// NextInline returns the first match on pos.Line that starts strictly after
// pos.Col.
func NextInline(src buffer.LineSource, pos buffer.Pos, target string) (buffer.Pos, bool) {
	line, ok := src.Get(pos.Line)
	if !ok {
		return pos, false
	}
	for _, c := range Columns(line, target) {
		if c > pos.Col {
			return buffer.NewPos(pos.Line, c), true
		}
	}
	return pos, false
}

// PrevInline returns the rightmost match on pos.Line that starts strictly
// before pos.Col.
func PrevInline(src buffer.LineSource, pos buffer.Pos, target string) (buffer.Pos, bool) {
	line, ok := src.Get(pos.Line)
	if !ok {
		return pos, false
	}
	found := false
	best := pos
	for _, c := range Columns(line, target) {
		if c >= pos.Col {
			break
		}
		best = buffer.NewPos(pos.Line, c)
		found = true
	}
	return best, found
}

// Next returns the next match after pos. The rest of pos.Line is searched
// first, then every following line from its first column.
func Next(src buffer.LineSource, pos buffer.Pos, target string) (buffer.Pos, bool) {
	if p, ok := NextInline(src, pos, target); ok {
		return p, true
	}
	for n := pos.Line + 1; n <= src.Len(); n++ {
		if p, ok := NextInline(src, buffer.NewPos(n, 0), target); ok {
			return p, true
		}
	}
	return pos, false
}

// Prev returns the previous match before pos. The start of pos.Line is
// searched first, then every preceding line from its end.
func Prev(src buffer.LineSource, pos buffer.Pos, target string) (buffer.Pos, bool) {
	if p, ok := PrevInline(src, pos, target); ok {
		return p, true
	}
	for n := min(pos.Line-1, src.Len()); n >= 1; n-- {
		line, _ := src.Get(n)
		if p, ok := PrevInline(src, buffer.NewPos(n, buffer.RuneLen(line)+1), target); ok {
			return p, true
		}
	}
	return pos, false
}
