package engine

import "strings"

// IndentAt returns the number of leading tabs of line n.
func (d *Document) IndentAt(n int) (int, bool) {
	line, ok := d.lines.Get(n)
	if !ok {
		return 0, false
	}
	return leadingTabs(line), true
}

// ExpectedIndentAt returns the indent line n should have given the line
// before it: the same number of tabs, one more if the previous line opens
// a level, one less if line n closes one. It is zero when the file type
// disables auto-indent, and false when line n has no previous line.
func (d *Document) ExpectedIndentAt(n int) (int, bool) {
	prev, ok := d.lines.Get(n - 1)
	if !ok {
		return 0, false
	}
	cur, _ := d.lines.Get(n)
	return d.expectedIndent(prev, cur), true
}

// ApplyExpectedIndentAt re-indents line n to its expected indent.
func (d *Document) ApplyExpectedIndentAt(n int) {
	if level, ok := d.ExpectedIndentAt(n); ok {
		d.SetIndentAt(n, level)
	}
}

// SetIndentAt replaces the leading tab run of line n with level tabs.
func (d *Document) SetIndentAt(n, level int) {
	line, ok := d.lines.Get(n)
	if !ok {
		return
	}
	d.commitLine(n, withIndent(line, level))
}

// IndentForwardAt prepends one tab to line n.
func (d *Document) IndentForwardAt(n int) {
	line, ok := d.lines.Get(n)
	if !ok {
		return
	}
	d.commitLine(n, "\t"+line)
}

// IndentForward indents the cursor line.
func (d *Document) IndentForward() {
	d.IndentForwardAt(d.cursor.Line)
	d.cursor = d.bound(d.cursor)
}

// IndentBackwardAt removes one leading tab from line n, if it has one.
func (d *Document) IndentBackwardAt(n int) {
	line, ok := d.lines.Get(n)
	if !ok || !strings.HasPrefix(line, "\t") {
		return
	}
	d.commitLine(n, line[1:])
}

// IndentBackward unindents the cursor line.
func (d *Document) IndentBackward() {
	d.IndentBackwardAt(d.cursor.Line)
	d.cursor = d.bound(d.cursor)
}

// IsCommentedAt reports whether line n starts with the comment token
// followed by a space.
func (d *Document) IsCommentedAt(n int) bool {
	if !d.filetype.HasComment() {
		return false
	}
	line, ok := d.lines.Get(n)
	return ok && strings.HasPrefix(line, d.commentPrefix())
}

// ToggleCommentAt adds or removes the comment prefix at column 1 of line n.
// It does nothing when the file type has no comment token.
func (d *Document) ToggleCommentAt(n int) {
	if !d.filetype.HasComment() {
		return
	}
	line, ok := d.lines.Get(n)
	if !ok {
		return
	}

	prefix := d.commentPrefix()
	if strings.HasPrefix(line, prefix) {
		d.commitLine(n, strings.TrimPrefix(line, prefix))
	} else {
		d.commitLine(n, prefix+line)
	}
}

// ToggleComment toggles the comment on the cursor line.
func (d *Document) ToggleComment() {
	d.ToggleCommentAt(d.cursor.Line)
	d.cursor = d.bound(d.cursor)
}

func (d *Document) commentPrefix() string {
	return d.filetype.Comment + " "
}

func (d *Document) expectedIndent(prev, cur string) int {
	if !d.filetype.AutoIndent {
		return 0
	}
	level := leadingTabs(prev)
	if d.filetype.ForwardIndent(prev) {
		level++
	}
	if d.filetype.BackwardIndent(cur) {
		level--
	}
	return max(level, 0)
}

func leadingTabs(line string) int {
	return len(line) - len(strings.TrimLeft(line, "\t"))
}

// withIndent replaces the leading tab run of line with level tabs.
func withIndent(line string, level int) string {
	return strings.Repeat("\t", max(level, 0)) + strings.TrimLeft(line, "\t")
}
