package engine

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/vedit/internal/clipboard"
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/engine/cursor"
	"github.com/dshills/vedit/internal/engine/history"
	"github.com/dshills/vedit/internal/engine/scan"
	"github.com/dshills/vedit/internal/filetype"
	"github.com/dshills/vedit/internal/input/mode"
	"github.com/dshills/vedit/internal/logging"
	"github.com/dshills/vedit/internal/renderer/dirty"
)

// Re-export commonly used types for convenience.
type (
	// Pos is a 1-based line and rune column.
	Pos = buffer.Pos

	// Range is a pair of positions.
	Range = buffer.Range
)

// Document is an in-memory line-oriented document with a primary cursor,
// secondary cursors, a mode and undo/redo history.
type Document struct {
	lines    *buffer.Lines
	cursor   buffer.Pos
	children *cursor.Set
	modes    *mode.Machine
	history  *history.History
	dirty    *dirty.Tracker
	modified bool

	// Configuration
	breaks         scan.BreakSet
	filetype       *filetype.FileType
	clipboard      clipboard.Clipboard
	maxUndoEntries int
	logger         *log.Logger

	// Initialization
	initLines []string
}

// New creates a document in Normal mode with the cursor at (1, 1).
func New(opts ...Option) *Document {
	d := &Document{
		breaks:         scan.DefaultBreakSet(),
		filetype:       filetype.Default(),
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.clipboard == nil {
		d.clipboard = clipboard.NewMemory()
	}
	d.logger = logging.OrDiscard(d.logger)
	d.lines = buffer.NewLines(d.initLines)
	d.initLines = nil
	d.children = cursor.NewSet()
	d.modes = mode.NewMachine()
	d.history = history.New(d.maxUndoEntries)
	d.dirty = dirty.NewTracker()
	d.cursor = d.bound(buffer.NewPos(1, 1))
	d.dirty.MarkAll()
	return d
}

// Load replaces the whole content, resets the cursor to (1, 1) and clears
// history, secondary cursors and the modified flag.
func (d *Document) Load(lines []string) {
	d.lines.Replace(lines)
	d.history.Clear()
	d.children.Clear()
	d.modified = false
	d.cursor = d.bound(buffer.NewPos(1, 1))
	d.dirty.MarkAll()

	d.logger.Debug("document loaded", logging.FieldLines, d.lines.Len())
}

// ============================================================================
// Content Access
// ============================================================================

// Lines returns read access to the content.
func (d *Document) Lines() buffer.LineSource {
	return d.lines
}

// Line returns line n, or false if n is out of range.
func (d *Document) Line(n int) (string, bool) {
	return d.lines.Get(n)
}

// CurrentLine returns the line under the cursor.
func (d *Document) CurrentLine() string {
	line, _ := d.lines.Get(d.cursor.Line)
	return line
}

// LineCount returns the number of lines. It is always at least one.
func (d *Document) LineCount() int {
	return d.lines.Len()
}

// Content returns a copy of all lines.
func (d *Document) Content() []string {
	return d.lines.Snapshot()
}

// CharAt returns the rune at pos.
func (d *Document) CharAt(pos buffer.Pos) (rune, bool) {
	line, ok := d.lines.Get(pos.Line)
	if !ok || pos.Col < 1 {
		return 0, false
	}
	runes := []rune(line)
	if pos.Col > len(runes) {
		return 0, false
	}
	return runes[pos.Col-1], true
}

// Modified reports whether the document changed since it was loaded or
// last marked saved.
func (d *Document) Modified() bool {
	return d.modified
}

// MarkSaved clears the modified flag. The next edit commits a checkpoint.
func (d *Document) MarkSaved() {
	d.modified = false
}

// FileType returns the active file type.
func (d *Document) FileType() *filetype.FileType {
	return d.filetype
}

// SetFileType replaces the active file type.
func (d *Document) SetFileType(ft *filetype.FileType) {
	if ft == nil {
		ft = filetype.Default()
	}
	d.filetype = ft
	d.dirty.MarkAll()
}

// BreakSet returns the word break runes.
func (d *Document) BreakSet() scan.BreakSet {
	return d.breaks
}

// TakeDirty returns the lines changed since the last call and resets
// tracking.
func (d *Document) TakeDirty() dirty.Set {
	return d.dirty.Take()
}

// ============================================================================
// Undo/Redo
// ============================================================================

// Undo restores the most recent checkpoint. The current state moves to the
// redo stack.
func (d *Document) Undo() error {
	state, ok := d.history.PopUndo()
	if !ok {
		return ErrNothingToUndo
	}
	d.history.PushRedo(d.state())
	d.restore(state)

	d.logger.Debug("undo", logging.FieldLine, d.cursor.Line, logging.FieldCol, d.cursor.Col)
	return nil
}

// Redo reapplies the most recently undone state. The current state moves to
// the undo stack.
func (d *Document) Redo() error {
	state, ok := d.history.PopRedo()
	if !ok {
		return ErrNothingToRedo
	}
	d.history.Push(d.state())
	d.restore(state)

	d.logger.Debug("redo", logging.FieldLine, d.cursor.Line, logging.FieldCol, d.cursor.Col)
	return nil
}

// CanUndo returns true if undo is available.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// UndoCount returns the number of undo checkpoints.
func (d *Document) UndoCount() int {
	return d.history.UndoCount()
}

// RedoCount returns the number of redo states.
func (d *Document) RedoCount() int {
	return d.history.RedoCount()
}

// Checkpoint commits the current state as an undo boundary.
func (d *Document) Checkpoint() {
	d.checkpoint()
}

func (d *Document) state() history.State {
	return history.NewState(d.lines.Snapshot(), d.cursor, d.modified)
}

func (d *Document) restore(s history.State) {
	d.lines.Replace(s.Content)
	d.modified = s.Modified
	d.cursor = d.bound(s.Cursor)
	d.children.Clamp(d.bound)
	d.dirty.MarkAll()
}

func (d *Document) checkpoint() {
	d.history.Push(d.state())
}

// ============================================================================
// Change Tracking
// ============================================================================

// touch records that an edit is about to be committed. The first edit after
// a clean state commits a checkpoint.
func (d *Document) touch() {
	if !d.modified {
		d.checkpoint()
		d.modified = true
	}
	d.history.ClearRedo()
}

// setLine replaces line n. Writing identical text is not an edit.
func (d *Document) setLine(n int, text string) bool {
	old, ok := d.lines.Get(n)
	if !ok {
		return false
	}
	if old == text {
		return true
	}
	d.touch()
	d.lines.Set(n, text)
	d.dirty.MarkLine(n)
	return true
}

// commitLine replaces line n behind a checkpoint.
func (d *Document) commitLine(n int, text string) {
	if old, ok := d.lines.Get(n); !ok || old == text {
		return
	}
	d.checkpoint()
	d.setLine(n, text)
}

func (d *Document) insertLine(n int) int {
	if n < 1 || n > d.lines.Len()+1 {
		return buffer.Clamp(n+1, 1, d.lines.Len())
	}
	d.touch()
	next := d.lines.InsertAt(n)
	d.dirty.MarkFrom(n)
	return next
}

func (d *Document) deleteLine(n int) int {
	if n < 1 || n > d.lines.Len() {
		return buffer.Clamp(n, 1, d.lines.Len())
	}
	d.touch()
	next := d.lines.DeleteAt(n)
	d.dirty.MarkFrom(n)
	d.children.Clamp(d.bound)
	return next
}

// ============================================================================
// Bounds
// ============================================================================

// Bound returns the nearest valid cursor position to pos for the current
// mode.
func (d *Document) Bound(pos buffer.Pos) buffer.Pos {
	return d.bound(pos)
}

func (d *Document) bound(pos buffer.Pos) buffer.Pos {
	return buffer.Bound(d.lines, pos, d.modes.Current().AllowsLineEnd())
}
