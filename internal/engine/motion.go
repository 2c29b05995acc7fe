package engine

import (
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/engine/scan"
	"github.com/dshills/vedit/internal/engine/search"
)

// ============================================================================
// Cursor
// ============================================================================

// Cursor returns the primary cursor.
func (d *Document) Cursor() buffer.Pos {
	return d.cursor
}

// MoveTo moves the cursor to the nearest valid position to pos.
func (d *Document) MoveTo(pos buffer.Pos) {
	d.cursor = d.bound(pos)
}

// MoveLeft moves the cursor one column left.
func (d *Document) MoveLeft() {
	d.MoveTo(d.cursor.WithCol(d.cursor.Col - 1))
}

// MoveRight moves the cursor one column right.
func (d *Document) MoveRight() {
	d.MoveTo(d.cursor.WithCol(d.cursor.Col + 1))
}

// MoveUp moves the cursor one line up.
func (d *Document) MoveUp() {
	d.MoveTo(d.cursor.WithLine(d.cursor.Line - 1))
}

// MoveDown moves the cursor one line down.
func (d *Document) MoveDown() {
	d.MoveTo(d.cursor.WithLine(d.cursor.Line + 1))
}

// NextWordAt returns the next word boundary after pos on its line.
func (d *Document) NextWordAt(pos buffer.Pos) (buffer.Pos, bool) {
	return scan.NextWord(d.lines, pos, d.breaks)
}

// PrevWordAt returns the start of the word before pos on its line.
func (d *Document) PrevWordAt(pos buffer.Pos) (buffer.Pos, bool) {
	return scan.PrevWord(d.lines, pos, d.breaks)
}

// MoveNextWord moves to the next word boundary.
func (d *Document) MoveNextWord() {
	if pos, ok := d.NextWordAt(d.cursor); ok {
		d.MoveTo(pos)
	}
}

// MovePrevWord moves to the start of the previous word.
func (d *Document) MovePrevWord() {
	if pos, ok := d.PrevWordAt(d.cursor); ok {
		d.MoveTo(pos)
	}
}

// LineStartAt returns the first column of pos's line that is not a space
// or a tab.
func (d *Document) LineStartAt(pos buffer.Pos) buffer.Pos {
	return d.bound(scan.LineStart(d.lines, pos))
}

// LineEndAt returns the last column of pos's line.
func (d *Document) LineEndAt(pos buffer.Pos) buffer.Pos {
	return d.bound(scan.LineEnd(d.lines, pos))
}

// MoveLineStart moves to the first non-blank column.
func (d *Document) MoveLineStart() {
	d.cursor = d.LineStartAt(d.cursor)
}

// MoveLineEnd moves to the last column.
func (d *Document) MoveLineEnd() {
	d.cursor = d.LineEndAt(d.cursor)
}

// MoveLineStartInsert enters Insert mode before the first non-blank
// column.
func (d *Document) MoveLineStartInsert() {
	d.MoveLineStart()
	if d.StartInsert() == nil {
		d.MoveLeft()
	}
}

// MoveLineEndInsert enters Insert mode after the last column.
func (d *Document) MoveLineEndInsert() {
	d.MoveLineEnd()
	_ = d.StartInsert()
}

// ============================================================================
// Secondary Cursors
// ============================================================================

// AddCursor adds a secondary cursor at the nearest valid position to pos.
// It returns false if a secondary cursor is already there.
func (d *Document) AddCursor(pos buffer.Pos) bool {
	return d.children.Add(d.bound(pos))
}

// Cursors returns the secondary cursors in insertion order.
func (d *Document) Cursors() []buffer.Pos {
	return d.children.All()
}

// CursorCount returns the number of secondary cursors.
func (d *Document) CursorCount() int {
	return d.children.Count()
}

// ============================================================================
// Search
// ============================================================================

// Search returns every position where target starts, overlapping matches
// included.
func (d *Document) Search(target string) []buffer.Pos {
	return search.All(d.lines, target)
}

// SearchNextInlineAt returns the first match after pos on its line.
func (d *Document) SearchNextInlineAt(pos buffer.Pos, target string) (buffer.Pos, bool) {
	return search.NextInline(d.lines, pos, target)
}

// SearchPrevInlineAt returns the last match before pos on its line.
func (d *Document) SearchPrevInlineAt(pos buffer.Pos, target string) (buffer.Pos, bool) {
	return search.PrevInline(d.lines, pos, target)
}

// SearchNextAt returns the next match after pos, continuing on later lines.
func (d *Document) SearchNextAt(pos buffer.Pos, target string) (buffer.Pos, bool) {
	return search.Next(d.lines, pos, target)
}

// SearchPrevAt returns the previous match before pos, continuing on
// earlier lines.
func (d *Document) SearchPrevAt(pos buffer.Pos, target string) (buffer.Pos, bool) {
	return search.Prev(d.lines, pos, target)
}

// MoveToNextInline moves to the next match on the cursor line.
func (d *Document) MoveToNextInline(target string) bool {
	return d.moveIf(d.SearchNextInlineAt(d.cursor, target))
}

// MoveToPrevInline moves to the previous match on the cursor line.
func (d *Document) MoveToPrevInline(target string) bool {
	return d.moveIf(d.SearchPrevInlineAt(d.cursor, target))
}

// MoveToNext moves to the next match.
func (d *Document) MoveToNext(target string) bool {
	return d.moveIf(d.SearchNextAt(d.cursor, target))
}

// MoveToPrev moves to the previous match.
func (d *Document) MoveToPrev(target string) bool {
	return d.moveIf(d.SearchPrevAt(d.cursor, target))
}

func (d *Document) moveIf(pos buffer.Pos, ok bool) bool {
	if ok {
		d.MoveTo(pos)
	}
	return ok
}
