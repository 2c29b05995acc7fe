// Package cursor manages secondary cursors of a document.
//
// The primary cursor lives on the document itself; a Set holds the
// additional positions added for simultaneous edits. Positions are kept in
// insertion order and duplicates are dropped. Edits are not broadcast to
// secondary cursors; they are only stored, listed and kept within bounds.
package cursor

import (
	"slices"

	"github.com/dshills/vedit/internal/engine/buffer"
)

// Set manages secondary cursors.
type Set struct {
	positions []buffer.Pos
}

// NewSet creates an empty cursor set.
func NewSet() *Set {
	return &Set{}
}

// Add appends a cursor. Returns false if a cursor already sits at pos.
func (s *Set) Add(pos buffer.Pos) bool {
	if slices.Contains(s.positions, pos) {
		return false
	}
	s.positions = append(s.positions, pos)
	return true
}

// All returns a copy of all positions in insertion order.
func (s *Set) All() []buffer.Pos {
	return slices.Clone(s.positions)
}

// Sorted returns a copy of all positions in document order.
func (s *Set) Sorted() []buffer.Pos {
	out := slices.Clone(s.positions)
	slices.SortFunc(out, buffer.Pos.Compare)
	return out
}

// Count returns the number of secondary cursors.
func (s *Set) Count() int {
	return len(s.positions)
}

// Get returns the cursor at index, or false if index is out of range.
func (s *Set) Get(index int) (buffer.Pos, bool) {
	if index < 0 || index >= len(s.positions) {
		return buffer.Pos{}, false
	}
	return s.positions[index], true
}

// Remove removes the cursor at the given index.
func (s *Set) Remove(index int) {
	if index < 0 || index >= len(s.positions) {
		return
	}
	s.positions = slices.Delete(s.positions, index, index+1)
}

// RemoveLast removes the most recently added cursor.
func (s *Set) RemoveLast() {
	if len(s.positions) > 0 {
		s.positions = s.positions[:len(s.positions)-1]
	}
}

// Clear removes all secondary cursors.
func (s *Set) Clear() {
	s.positions = nil
}

// Clamp passes every position through bound and drops the duplicates it
// produces.
func (s *Set) Clamp(bound func(buffer.Pos) buffer.Pos) {
	out := s.positions[:0]
	for _, p := range s.positions {
		p = bound(p)
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	s.positions = out
}

// ForEach calls f for each cursor with its index.
func (s *Set) ForEach(f func(index int, pos buffer.Pos)) {
	for i, p := range s.positions {
		f(i, p)
	}
}
