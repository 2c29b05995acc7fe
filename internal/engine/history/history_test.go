package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vedit/internal/engine/buffer"
)

func state(content string, col int) State {
	return NewState([]string{content}, buffer.NewPos(1, col), false)
}

func TestNewDefaults(t *testing.T) {
	assert.Equal(t, DefaultMaxEntries, New(0).MaxEntries())
	assert.Equal(t, DefaultMaxEntries, New(-3).MaxEntries())
	assert.Equal(t, 5, New(5).MaxEntries())
}

func TestNewStateCopiesContent(t *testing.T) {
	content := []string{"a"}
	s := NewState(content, buffer.NewPos(1, 1), true)
	content[0] = "b"

	assert.Equal(t, []string{"a"}, s.Content)
}

func TestStateEqual(t *testing.T) {
	a := state("x", 1)

	assert.True(t, a.Equal(state("x", 1)))
	assert.False(t, a.Equal(state("y", 1)))
	assert.False(t, a.Equal(state("x", 2)))

	b := state("x", 1)
	b.Modified = true
	assert.False(t, a.Equal(b))
}

func TestPushSkipsDuplicateTop(t *testing.T) {
	h := New(10)

	assert.True(t, h.Push(state("a", 1)))
	assert.False(t, h.Push(state("a", 1)))
	assert.Equal(t, 1, h.UndoCount())

	assert.True(t, h.Push(state("b", 1)))
	assert.True(t, h.Push(state("a", 1)), "only the top is compared")
	assert.Equal(t, 3, h.UndoCount())
}

func TestPopUndoOrder(t *testing.T) {
	h := New(10)
	h.Push(state("a", 1))
	h.Push(state("b", 1))

	top, ok := h.PeekUndo()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, top.Content)

	s, ok := h.PopUndo()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, s.Content)

	s, ok = h.PopUndo()
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, s.Content)

	_, ok = h.PopUndo()
	assert.False(t, ok)
	_, ok = h.PeekUndo()
	assert.False(t, ok)
	assert.False(t, h.CanUndo())
}

func TestRedoStack(t *testing.T) {
	h := New(10)
	assert.False(t, h.CanRedo())

	h.PushRedo(state("a", 1))
	h.PushRedo(state("b", 1))
	assert.Equal(t, 2, h.RedoCount())

	s, ok := h.PopRedo()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, s.Content)

	h.ClearRedo()
	assert.False(t, h.CanRedo())
	_, ok = h.PopRedo()
	assert.False(t, ok)
}

func TestPushDoesNotClearRedo(t *testing.T) {
	h := New(10)
	h.PushRedo(state("r", 1))
	h.Push(state("u", 1))

	assert.True(t, h.CanRedo())
}

func TestMaxEntries(t *testing.T) {
	h := New(3)
	for i := 1; i <= 5; i++ {
		h.Push(state("x", i))
	}
	require.Equal(t, 3, h.UndoCount())

	oldest := h.undoStack[0]
	assert.Equal(t, 3, oldest.Cursor.Col)

	h.SetMaxEntries(2)
	assert.Equal(t, 2, h.UndoCount())
	assert.Equal(t, 4, h.undoStack[0].Cursor.Col)
}

func TestClear(t *testing.T) {
	h := New(10)
	h.Push(state("a", 1))
	h.PushRedo(state("b", 1))

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
