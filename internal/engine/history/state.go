package history

import (
	"slices"

	"github.com/dshills/vedit/internal/engine/buffer"
)

// State is a restorable document snapshot.
// A State must not be modified after it is pushed.
type State struct {
	Content  []string
	Cursor   buffer.Pos
	Modified bool
}

// NewState creates a State holding a copy of content.
func NewState(content []string, cursor buffer.Pos, modified bool) State {
	return State{
		Content:  slices.Clone(content),
		Cursor:   cursor,
		Modified: modified,
	}
}

// Equal reports whether two states have the same content, cursor and
// modified flag.
func (s State) Equal(other State) bool {
	return s.Cursor == other.Cursor &&
		s.Modified == other.Modified &&
		slices.Equal(s.Content, other.Content)
}
