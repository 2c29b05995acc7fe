package engine

import (
	"slices"
	"strings"
	"unicode"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/engine/scan"
	"github.com/dshills/vedit/internal/logging"
)

// Insertable reports whether r may be inserted by InsertAt. Control runes
// other than tab are rejected.
func Insertable(r rune) bool {
	return r == '\t' || !unicode.IsControl(r)
}

// InsertAt inserts r before the column of pos. An opening delimiter is
// followed by its closer, with the result placed between them. A break rune
// commits a checkpoint first.
func (d *Document) InsertAt(pos buffer.Pos, r rune) buffer.Pos {
	if !Insertable(r) {
		return pos
	}
	line, ok := d.lines.Get(pos.Line)
	if !ok {
		return pos
	}

	runes := []rune(line)
	idx := buffer.Clamp(pos.Col-1, 0, len(runes))
	text := []rune{r}
	if closer, ok := d.filetype.Closer(r); ok {
		text = append(text, closer)
	}

	if d.breaks.Contains(r) {
		d.checkpoint()
	}
	d.setLine(pos.Line, string(slices.Insert(runes, idx, text...)))
	return d.bound(pos.WithCol(idx + 2))
}

// Insert inserts r at the cursor.
func (d *Document) Insert(r rune) {
	d.cursor = d.InsertAt(d.cursor, r)
}

// InsertStrAt inserts text before the column of pos behind a checkpoint and
// returns the position after it. Text containing newlines is split into
// lines.
func (d *Document) InsertStrAt(pos buffer.Pos, text string) buffer.Pos {
	line, ok := d.lines.Get(pos.Line)
	if !ok || text == "" {
		return pos
	}

	runes := []rune(line)
	idx := buffer.Clamp(pos.Col-1, 0, len(runes))
	before, after := string(runes[:idx]), string(runes[idx:])
	parts := strings.Split(text, "\n")
	for i, p := range parts[:len(parts)-1] {
		parts[i] = strings.TrimSuffix(p, "\r")
	}

	d.checkpoint()

	if len(parts) == 1 {
		d.setLine(pos.Line, before+text+after)
		return d.bound(pos.WithCol(idx + 1 + buffer.RuneLen(text)))
	}

	last := len(parts) - 1
	d.setLine(pos.Line, before+parts[0])
	for i := 1; i <= last; i++ {
		content := parts[i]
		if i == last {
			content += after
		}
		d.insertLine(pos.Line + i)
		d.setLine(pos.Line+i, content)
	}
	return d.bound(buffer.NewPos(pos.Line+last, buffer.RuneLen(parts[last])+1))
}

// InsertStr inserts text at the cursor.
func (d *Document) InsertStr(text string) {
	d.cursor = d.InsertStrAt(d.cursor, text)
}

// InsertLineAt inserts an empty line before line n behind a checkpoint and
// returns the line after it.
func (d *Document) InsertLineAt(n int) int {
	if n < 1 || n > d.lines.Len()+1 {
		return buffer.Clamp(n+1, 1, d.lines.Len())
	}
	d.checkpoint()
	return d.insertLine(n)
}

// InsertLine opens an empty line at the cursor line; the cursor follows the
// line it was on.
func (d *Document) InsertLine() {
	d.cursor = d.bound(d.cursor.WithLine(d.InsertLineAt(d.cursor.Line)))
}

// BreakLineAt splits the line at pos behind a checkpoint. The new line is
// indented by the expected indent and the result is placed after it.
func (d *Document) BreakLineAt(pos buffer.Pos) buffer.Pos {
	line, ok := d.lines.Get(pos.Line)
	if !ok {
		return pos
	}

	runes := []rune(line)
	idx := buffer.Clamp(pos.Col-1, 0, len(runes))
	before, after := string(runes[:idx]), string(runes[idx:])
	indent := d.expectedIndent(before, after)

	d.checkpoint()
	d.setLine(pos.Line, before)
	d.insertLine(pos.Line + 1)
	d.setLine(pos.Line+1, withIndent(after, indent))
	return d.bound(buffer.NewPos(pos.Line+1, indent+1))
}

// BreakLine splits the line at the cursor.
func (d *Document) BreakLine() {
	d.cursor = d.BreakLineAt(d.cursor)
}

// DelAt deletes the rune left of pos. At column 1 the line is joined onto
// the previous one. Deleting an opening delimiter directly followed by its
// closer removes both.
func (d *Document) DelAt(pos buffer.Pos) buffer.Pos {
	line, ok := d.lines.Get(pos.Line)
	if !ok {
		return pos
	}

	runes := []rune(line)
	idx := buffer.Clamp(pos.Col-1, 0, len(runes))
	if idx == 0 {
		prev, ok := d.lines.Get(pos.Line - 1)
		if !ok {
			return pos
		}
		col := buffer.RuneLen(prev) + 1

		d.checkpoint()
		d.deleteLine(pos.Line)
		d.setLine(pos.Line-1, prev+line)
		return d.bound(buffer.NewPos(pos.Line-1, col))
	}

	end := idx
	if closer, ok := d.filetype.Closer(runes[idx-1]); ok && idx < len(runes) && runes[idx] == closer {
		end++
	}
	d.setLine(pos.Line, string(runes[:idx-1])+string(runes[end:]))
	return d.bound(pos.WithCol(idx))
}

// Del deletes the rune left of the cursor.
func (d *Document) Del() {
	d.cursor = d.DelAt(d.cursor)
}

// DelLineAt deletes line n behind a checkpoint and returns the line the
// cursor should move to. Deleting the only line leaves one empty line.
func (d *Document) DelLineAt(n int) int {
	if n < 1 || n > d.lines.Len() {
		return buffer.Clamp(n, 1, d.lines.Len())
	}
	d.checkpoint()
	return d.deleteLine(n)
}

// DelLine deletes the cursor line.
func (d *Document) DelLine() {
	d.cursor = d.bound(d.cursor.WithLine(d.DelLineAt(d.cursor.Line)))
}

// DelWordAt deletes from the start of the previous word up to the rune
// left of pos.
func (d *Document) DelWordAt(pos buffer.Pos) buffer.Pos {
	prev, ok := scan.PrevWord(d.lines, pos, d.breaks)
	if !ok {
		return pos
	}
	return d.DelRange(buffer.NewRange(prev, pos.WithCol(pos.Col-1)))
}

// DelWord deletes the word before the cursor.
func (d *Document) DelWord() {
	d.cursor = d.bound(d.DelWordAt(d.cursor))
}

// DelRange deletes columns r.Start.Col through r.End.Col of a single line
// behind a checkpoint and returns r.Start. Both ends are clamped to the
// line. A range spanning lines is ignored and the cursor is returned.
func (d *Document) DelRange(r buffer.Range) buffer.Pos {
	if r.Start.Line != r.End.Line {
		return d.cursor
	}
	line, ok := d.lines.Get(r.Start.Line)
	if !ok {
		return d.cursor
	}

	runes := []rune(line)
	start := buffer.Clamp(r.Start.Col-1, 0, len(runes))
	end := buffer.Clamp(r.End.Col, 0, len(runes))
	if start >= end {
		return r.Start
	}

	d.checkpoint()
	d.setLine(r.Start.Line, string(runes[:start])+string(runes[end:]))
	return r.Start
}

// CopyLineAt puts line n on the clipboard. Clipboard failures are ignored.
func (d *Document) CopyLineAt(n int) {
	line, ok := d.lines.Get(n)
	if !ok {
		return
	}
	if err := d.clipboard.Set(line); err != nil {
		d.logger.Debug("copy failed", logging.FieldError, err)
	}
}

// CopyLine copies the cursor line.
func (d *Document) CopyLine() {
	d.CopyLineAt(d.cursor.Line)
}

// PasteAt inserts the clipboard text at pos. Clipboard failures leave the
// document unchanged.
func (d *Document) PasteAt(pos buffer.Pos) buffer.Pos {
	text, err := d.clipboard.Get()
	if err != nil {
		d.logger.Debug("paste failed", logging.FieldError, err)
		return pos
	}
	return d.InsertStrAt(pos, text)
}

// Paste inserts the clipboard text at the cursor.
func (d *Document) Paste() {
	d.cursor = d.PasteAt(d.cursor)
}
