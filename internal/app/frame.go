package app

import (
	"fmt"
	"strings"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/mode"
	"github.com/dshills/vedit/internal/renderer/dirty"
	"github.com/dshills/vedit/internal/renderer/highlight"
	"github.com/dshills/vedit/internal/renderer/viewport"
)

// Row is one visible document line.
type Row struct {
	// Line is the 1-based document line number.
	Line   int
	Chunks []highlight.Chunk
}

// Frame is everything needed to draw one screen.
type Frame struct {
	// Rows holds the visible lines, top to bottom. Screen rows past the
	// end of the document have no entry.
	Rows []Row

	// Top is the document line shown on the first screen row.
	Top int

	// Height is the number of text rows, excluding the status line.
	Height int

	// Left is the first visible screen column.
	Left int

	// TabWidth is the number of cells a Shift chunk occupies.
	TabWidth int

	// CursorX and CursorY locate the cursor on screen.
	CursorX int
	CursorY int

	Mode   mode.Mode
	Status string

	// Failed is true when Status reports an error.
	Failed bool

	// Dirty marks the lines that changed since the previous frame.
	// Scrolled is true when the window moved and every row must be redrawn.
	Dirty    dirty.Set
	Scrolled bool
}

// Frame renders the visible window. Taking a frame consumes the document's
// dirty marks; the first frame always reports Scrolled.
func (s *Session) Frame() Frame {
	cur := s.doc.Cursor()
	total := s.doc.LineCount()
	tab := s.TabWidth()

	s.view.Follow(cur.Line, total)

	line, _ := s.doc.Line(cur.Line)
	x := viewport.VisualCol(line, cur.Col, tab)
	s.view.FollowColumn(x)

	first, last := s.view.VisibleLineRange(total)
	rendered := s.adapter.RenderWindow(s.doc.Lines(), first, last)
	status, failed := s.statusLine(cur)
	scrolled := s.drawnTop != first || s.drawnLeft != s.view.LeftColumn()
	s.drawnTop, s.drawnLeft = first, s.view.LeftColumn()

	rows := make([]Row, len(rendered))
	for i, chunks := range rendered {
		rows[i] = Row{Line: first + i, Chunks: chunks}
	}

	return Frame{
		Rows:     rows,
		Top:      first,
		Height:   s.view.Height(),
		Left:     s.view.LeftColumn(),
		TabWidth: tab,
		CursorX:  x - s.view.LeftColumn(),
		CursorY:  cur.Line - first,
		Mode:     s.doc.Mode(),
		Status:   status,
		Failed:   failed,
		Dirty:    s.doc.TakeDirty(),
		Scrolled: scrolled,
	}
}

// statusLine shows the command or search line while one is being typed,
// then a pending message, and otherwise the file position summary.
func (s *Session) statusLine(cur buffer.Pos) (string, bool) {
	m := s.doc.Mode()
	switch m.Kind() {
	case mode.Command:
		return ":" + m.Text(), false
	case mode.Search:
		return "/" + m.Text(), false
	}
	if s.message != "" {
		return s.message, s.failed
	}

	var b strings.Builder
	fmt.Fprintf(&b, " %s  %s", m.Kind().DisplayName(), s.Name())
	if s.doc.Modified() {
		b.WriteString(" [+]")
	}
	fmt.Fprintf(&b, "  %s  %d:%d/%d", s.doc.FileType().Name, cur.Line, cur.Col, s.doc.LineCount())
	if n := s.doc.CursorCount(); n > 0 {
		fmt.Fprintf(&b, "  +%d cursors", n)
	}
	return b.String(), false
}
