package history

// DefaultMaxEntries is used when New is given a non-positive limit.
const DefaultMaxEntries = 1000

// History holds the undo and redo stacks for one document.
type History struct {
	undoStack []State
	redoStack []State

	maxEntries int
}

// New creates a history that keeps at most maxEntries undo states.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Push adds a state to the undo stack.
// It returns false, and does nothing, if state equals the current top.
func (h *History) Push(state State) bool {
	if n := len(h.undoStack); n > 0 && h.undoStack[n-1].Equal(state) {
		return false
	}

	h.undoStack = append(h.undoStack, state)

	// Enforce max entries
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
	return true
}

// PopUndo removes and returns the most recent undo state.
func (h *History) PopUndo() (State, bool) {
	n := len(h.undoStack)
	if n == 0 {
		return State{}, false
	}
	state := h.undoStack[n-1]
	h.undoStack = h.undoStack[:n-1]
	return state, true
}

// PeekUndo returns the most recent undo state without removing it.
func (h *History) PeekUndo() (State, bool) {
	n := len(h.undoStack)
	if n == 0 {
		return State{}, false
	}
	return h.undoStack[n-1], true
}

// PushRedo adds a state to the redo stack.
func (h *History) PushRedo(state State) {
	h.redoStack = append(h.redoStack, state)
}

// PopRedo removes and returns the most recent redo state.
func (h *History) PopRedo() (State, bool) {
	n := len(h.redoStack)
	if n == 0 {
		return State{}, false
	}
	state := h.redoStack[n-1]
	h.redoStack = h.redoStack[:n-1]
	return state, true
}

// ClearRedo drops every redo state.
func (h *History) ClearRedo() {
	h.redoStack = nil
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo states available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo states available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max

	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}
