package engine

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vedit/internal/clipboard"
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/filetype"
	"github.com/dshills/vedit/internal/input/mode"
)

func codeType() *filetype.FileType {
	ft := filetype.Default()
	ft.Name = "code"
	ft.Comment = "//"
	ft.Pairs = map[rune]rune{'(': ')', '{': '}', '[': ']', '"': '"'}
	ft.IndentForward = regexp.MustCompile(`[\{\(\[]\s*$`)
	ft.IndentBackward = regexp.MustCompile(`^\s*[\}\)\]]`)
	return ft
}

func newDoc(lines ...string) *Document {
	return New(WithLines(lines), WithFileType(codeType()))
}

func insertDoc(t *testing.T, lines ...string) *Document {
	t.Helper()
	d := newDoc(lines...)
	require.NoError(t, d.StartInsert())
	return d
}

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	d := New()

	assert.Equal(t, []string{""}, d.Content())
	assert.Equal(t, buffer.NewPos(1, 1), d.Cursor())
	assert.True(t, d.Mode().Is(mode.Normal))
	assert.False(t, d.Modified())
	assert.Equal(t, filetype.DefaultName, d.FileType().Name)
}

func TestCharAt(t *testing.T) {
	d := newDoc("aé")

	r, ok := d.CharAt(buffer.NewPos(1, 2))
	require.True(t, ok)
	assert.Equal(t, 'é', r)

	_, ok = d.CharAt(buffer.NewPos(1, 3))
	assert.False(t, ok)
	_, ok = d.CharAt(buffer.NewPos(2, 1))
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	d := insertDoc(t, "abc")
	d.Insert('x')
	d.AddCursor(buffer.NewPos(1, 2))

	d.Load([]string{"one", "two"})

	assert.Equal(t, []string{"one", "two"}, d.Content())
	assert.Equal(t, buffer.NewPos(1, 1), d.Cursor())
	assert.False(t, d.Modified())
	assert.False(t, d.CanUndo())
	assert.Zero(t, d.CursorCount())
}

// ============================================================================
// Insertion
// ============================================================================

func TestInsertScenario(t *testing.T) {
	d := insertDoc(t, "fn main() {", "    let x = 1;", "}")
	d.MoveTo(buffer.NewPos(2, 13))

	d.Insert('2')
	assert.Equal(t, "    let x = 21;", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(2, 14), d.Cursor())

	d.Del()
	assert.Equal(t, "    let x = 1;", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(2, 13), d.Cursor())
}

func TestInsertRejectsControl(t *testing.T) {
	d := insertDoc(t, "ab")

	for _, r := range []rune{'\n', '\r', 0x1b, 0x7f, '\b', 0x00} {
		pos := d.InsertAt(buffer.NewPos(1, 2), r)
		assert.Equal(t, buffer.NewPos(1, 2), pos)
	}
	assert.Equal(t, "ab", d.CurrentLine())
	assert.False(t, d.Modified())

	d.MoveTo(buffer.NewPos(1, 1))
	d.Insert('\t')
	assert.Equal(t, "\tab", d.CurrentLine())
}

func TestInsertPairs(t *testing.T) {
	d := insertDoc(t, "")

	d.Insert('(')
	assert.Equal(t, "()", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(1, 2), d.Cursor())

	d.Del()
	assert.Equal(t, "", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(1, 1), d.Cursor())
}

func TestDelOpenerWithoutCloser(t *testing.T) {
	d := insertDoc(t, "(x)")
	d.MoveTo(buffer.NewPos(1, 2))

	d.Del()
	assert.Equal(t, "x)", d.CurrentLine())
}

func TestInsertMultibyte(t *testing.T) {
	d := insertDoc(t, "héllo")
	d.MoveTo(buffer.NewPos(1, 3))

	d.Insert('ü')
	assert.Equal(t, "héüllo", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(1, 4), d.Cursor())
}

func TestInsertStrAt(t *testing.T) {
	d := newDoc("ab")

	pos := d.InsertStrAt(buffer.NewPos(1, 2), "XY")
	assert.Equal(t, "aXYb", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(1, 4), pos)
	assert.Equal(t, 1, d.UndoCount())

	pos = d.InsertStrAt(buffer.NewPos(1, 2), "")
	assert.Equal(t, buffer.NewPos(1, 2), pos)

	pos = d.InsertStrAt(buffer.NewPos(9, 1), "z")
	assert.Equal(t, buffer.NewPos(9, 1), pos)
}

func TestInsertStrAtMultiline(t *testing.T) {
	d := newDoc("ab", "tail")

	pos := d.InsertStrAt(buffer.NewPos(1, 2), "x\r\ny\nz")
	assert.Equal(t, []string{"ax", "y", "zb", "tail"}, d.Content())
	assert.Equal(t, buffer.NewPos(3, 2), pos)

	require.NoError(t, d.Undo())
	assert.Equal(t, []string{"ab", "tail"}, d.Content())
}

func TestInsertLine(t *testing.T) {
	d := newDoc("a", "b")
	d.MoveTo(buffer.NewPos(2, 1))

	d.InsertLine()
	assert.Equal(t, []string{"a", "", "b"}, d.Content())
	assert.Equal(t, buffer.NewPos(3, 1), d.Cursor())

	assert.Equal(t, 3, d.InsertLineAt(7))
	assert.Equal(t, 3, d.LineCount())
}

// ============================================================================
// Line Breaks and Indentation
// ============================================================================

func TestBreakLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		col    int
		want   []string
		cursor buffer.Pos
	}{
		{"forward indent", "if true {", 10, []string{"if true {", "\t"}, buffer.NewPos(2, 2)},
		{"keeps indent", "\tx := 1", 8, []string{"\tx := 1", "\t"}, buffer.NewPos(2, 2)},
		{"nested", "\tif x {", 8, []string{"\tif x {", "\t\t"}, buffer.NewPos(2, 3)},
		{"closing", "\tfoo {}", 7, []string{"\tfoo {", "\t}"}, buffer.NewPos(2, 2)},
		{"split", "abcd", 3, []string{"ab", "cd"}, buffer.NewPos(2, 1)},
		{"start", "ab", 1, []string{"", "ab"}, buffer.NewPos(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := insertDoc(t, tt.line)
			d.MoveTo(buffer.NewPos(1, tt.col))

			d.BreakLine()
			assert.Equal(t, tt.want, d.Content())
			assert.Equal(t, tt.cursor, d.Cursor())

			require.NoError(t, d.Undo())
			assert.Equal(t, []string{tt.line}, d.Content())
			assert.Equal(t, buffer.NewPos(1, tt.col), d.Cursor())
		})
	}
}

func TestBreakLineNoAutoIndent(t *testing.T) {
	ft := codeType()
	ft.AutoIndent = false
	d := New(WithLines([]string{"\tx {"}), WithFileType(ft))
	require.NoError(t, d.StartInsert())
	d.MoveTo(buffer.NewPos(1, 5))

	d.BreakLine()
	assert.Equal(t, []string{"\tx {", ""}, d.Content())
	assert.Equal(t, buffer.NewPos(2, 1), d.Cursor())
}

func TestIndent(t *testing.T) {
	d := newDoc("x")

	d.IndentForward()
	assert.Equal(t, "\tx", d.CurrentLine())
	level, ok := d.IndentAt(1)
	require.True(t, ok)
	assert.Equal(t, 1, level)

	d.IndentBackward()
	assert.Equal(t, "x", d.CurrentLine())

	undo := d.UndoCount()
	d.IndentBackward()
	assert.Equal(t, "x", d.CurrentLine())
	assert.Equal(t, undo, d.UndoCount(), "no-op pushes nothing")

	d.SetIndentAt(1, 3)
	assert.Equal(t, "\t\t\tx", d.CurrentLine())
	d.SetIndentAt(1, -2)
	assert.Equal(t, "x", d.CurrentLine())

	_, ok = d.IndentAt(4)
	assert.False(t, ok)
}

func TestIndentCheckpointsEachStep(t *testing.T) {
	d := newDoc("x")
	d.IndentForward()
	d.IndentForward()

	require.NoError(t, d.Undo())
	assert.Equal(t, "\tx", d.CurrentLine())
	require.NoError(t, d.Undo())
	assert.Equal(t, "x", d.CurrentLine())
}

func TestExpectedIndent(t *testing.T) {
	d := newDoc("\tif x {", "y", "\t}")

	level, ok := d.ExpectedIndentAt(2)
	require.True(t, ok)
	assert.Equal(t, 2, level)

	_, ok = d.ExpectedIndentAt(1)
	assert.False(t, ok)

	d.ApplyExpectedIndentAt(2)
	assert.Equal(t, "\t\ty", d.Content()[1])

	level, _ = d.ExpectedIndentAt(3)
	assert.Equal(t, 1, level)
}

func TestToggleComment(t *testing.T) {
	d := newDoc("x := 1")

	assert.False(t, d.IsCommentedAt(1))
	d.ToggleComment()
	assert.Equal(t, "// x := 1", d.CurrentLine())
	assert.True(t, d.IsCommentedAt(1))

	d.ToggleCommentAt(1)
	assert.Equal(t, "x := 1", d.CurrentLine())

	d.ToggleCommentAt(5)
	assert.Equal(t, []string{"x := 1"}, d.Content())
}

func TestToggleCommentWithoutToken(t *testing.T) {
	d := New(WithLines([]string{"x"}))

	d.ToggleComment()
	assert.Equal(t, "x", d.CurrentLine())
	assert.False(t, d.IsCommentedAt(1))
	assert.False(t, d.Modified())
}

// ============================================================================
// Deletion
// ============================================================================

func TestDelJoinsLines(t *testing.T) {
	d := insertDoc(t, "ab", "cd")
	d.MoveTo(buffer.NewPos(2, 1))

	d.Del()
	assert.Equal(t, []string{"abcd"}, d.Content())
	assert.Equal(t, buffer.NewPos(1, 3), d.Cursor())

	require.NoError(t, d.Undo())
	assert.Equal(t, []string{"ab", "cd"}, d.Content())
}

func TestDelAtFirstColumnOfFirstLine(t *testing.T) {
	d := insertDoc(t, "ab")

	pos := d.DelAt(buffer.NewPos(1, 1))
	assert.Equal(t, buffer.NewPos(1, 1), pos)
	assert.Equal(t, []string{"ab"}, d.Content())
	assert.False(t, d.Modified())
}

func TestDelLine(t *testing.T) {
	d := newDoc("a", "b", "c")
	d.MoveTo(buffer.NewPos(3, 1))

	d.DelLine()
	assert.Equal(t, []string{"a", "b"}, d.Content())
	assert.Equal(t, buffer.NewPos(2, 1), d.Cursor())

	d.DelLine()
	d.DelLine()
	assert.Equal(t, []string{""}, d.Content())
	assert.Equal(t, 1, d.LineCount())

	d.DelLine()
	assert.Equal(t, []string{""}, d.Content())

	assert.Equal(t, 1, d.DelLineAt(5))
}

func TestDelRange(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		d := newDoc("hello world")
		pos := d.DelRange(buffer.NewRange(buffer.NewPos(1, 1), buffer.NewPos(1, 5)))
		assert.Equal(t, buffer.NewPos(1, 1), pos)
		assert.Equal(t, " world", d.CurrentLine())
	})

	t.Run("clamped", func(t *testing.T) {
		d := newDoc("hello world")
		d.DelRange(buffer.NewRange(buffer.NewPos(1, 7), buffer.NewPos(1, 99)))
		assert.Equal(t, "hello ", d.CurrentLine())
	})

	t.Run("cross line", func(t *testing.T) {
		d := newDoc("ab", "cd")
		d.MoveTo(buffer.NewPos(1, 2))
		pos := d.DelRange(buffer.NewRange(buffer.NewPos(1, 1), buffer.NewPos(2, 1)))
		assert.Equal(t, d.Cursor(), pos)
		assert.Equal(t, []string{"ab", "cd"}, d.Content())
		assert.False(t, d.CanUndo())
	})

	t.Run("inverted", func(t *testing.T) {
		d := newDoc("abc")
		d.DelRange(buffer.NewRange(buffer.NewPos(1, 3), buffer.NewPos(1, 1)))
		assert.Equal(t, "abc", d.CurrentLine())
		assert.False(t, d.CanUndo())
	})
}

func TestDelWord(t *testing.T) {
	d := insertDoc(t, "foo bar")
	d.MoveTo(buffer.NewPos(1, 8))

	d.DelWord()
	assert.Equal(t, "foo ", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(1, 5), d.Cursor())

	d.MoveTo(buffer.NewPos(1, 1))
	d.DelWord()
	assert.Equal(t, "foo ", d.CurrentLine())
}

// ============================================================================
// Undo/Redo
// ============================================================================

func TestUndoRedo(t *testing.T) {
	d := insertDoc(t, "abc")
	d.MoveTo(buffer.NewPos(1, 4))

	d.Insert('d')
	assert.True(t, d.Modified())
	assert.Equal(t, 1, d.UndoCount())

	require.NoError(t, d.Undo())
	assert.Equal(t, "abc", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(1, 4), d.Cursor())
	assert.False(t, d.Modified())
	assert.True(t, d.CanRedo())

	require.NoError(t, d.Redo())
	assert.Equal(t, "abcd", d.CurrentLine())
	assert.Equal(t, buffer.NewPos(1, 5), d.Cursor())
	assert.True(t, d.Modified())

	assert.ErrorIs(t, d.Redo(), ErrNothingToRedo)
}

func TestUndoGroupsWords(t *testing.T) {
	d := insertDoc(t, "")
	for _, r := range "ab c" {
		d.Insert(r)
	}
	assert.Equal(t, "ab c", d.CurrentLine())

	require.NoError(t, d.Undo())
	assert.Equal(t, "ab", d.CurrentLine())
	require.NoError(t, d.Undo())
	assert.Equal(t, "", d.CurrentLine())
	assert.ErrorIs(t, d.Undo(), ErrNothingToUndo)
}

func TestNewEditClearsRedo(t *testing.T) {
	d := insertDoc(t, "")
	for _, r := range "ab c" {
		d.Insert(r)
	}
	require.NoError(t, d.Undo())
	require.True(t, d.CanRedo())

	d.Insert('x')
	assert.False(t, d.CanRedo())
	assert.ErrorIs(t, d.Redo(), ErrNothingToRedo)
}

func TestMarkSavedStartsNewCheckpoint(t *testing.T) {
	d := insertDoc(t, "")
	d.Insert('a')
	d.MarkSaved()
	assert.False(t, d.Modified())

	d.Insert('b')
	assert.True(t, d.Modified())

	require.NoError(t, d.Undo())
	assert.Equal(t, "a", d.CurrentLine())
	assert.False(t, d.Modified())
}

// ============================================================================
// Modes
// ============================================================================

func TestModeTransitions(t *testing.T) {
	d := newDoc("abc")

	require.NoError(t, d.StartCommand())
	assert.True(t, d.Mode().Is(mode.Command))
	assert.ErrorIs(t, d.StartInsert(), mode.ErrInvalidTransition)
	assert.ErrorIs(t, d.StartSearch(), mode.ErrInvalidTransition)
	require.NoError(t, d.StartCommand(), "re-entering is a no-op")

	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel())

	require.NoError(t, d.StartSearch())
	assert.True(t, d.SetModeText("foo"))
	assert.Equal(t, "foo", d.Mode().Text())
	d.StartNormal()
	assert.False(t, d.SetModeText("bar"))

	ranges := []buffer.Range{buffer.LineRange(d.Lines(), 1)}
	require.NoError(t, d.StartSelect(ranges))
	assert.Equal(t, ranges, d.Mode().Ranges())
}

func TestInsertModeMovesCursor(t *testing.T) {
	d := newDoc("abc")

	require.NoError(t, d.StartInsert())
	assert.Equal(t, buffer.NewPos(1, 2), d.Cursor())
	d.StartNormal()
	assert.Equal(t, buffer.NewPos(1, 1), d.Cursor())

	d.MoveTo(buffer.NewPos(1, 3))
	require.NoError(t, d.StartInsert())
	assert.Equal(t, buffer.NewPos(1, 4), d.Cursor())
	d.StartNormal()
	assert.Equal(t, buffer.NewPos(1, 3), d.Cursor())
}

func TestOnModeChange(t *testing.T) {
	d := newDoc("abc")
	var seen []mode.Kind
	d.OnModeChange(func(_, to mode.Mode) {
		seen = append(seen, to.Kind())
	})

	require.NoError(t, d.StartInsert())
	d.StartNormal()
	assert.Equal(t, []mode.Kind{mode.Insert, mode.Normal}, seen)
}

func TestReset(t *testing.T) {
	d := insertDoc(t, "abc")
	d.MoveTo(buffer.NewPos(1, 4))
	d.AddCursor(buffer.NewPos(1, 1))

	d.Reset()
	assert.True(t, d.Mode().Is(mode.Normal))
	assert.Zero(t, d.CursorCount())
	assert.Equal(t, buffer.NewPos(1, 3), d.Cursor())
}

// ============================================================================
// Motion
// ============================================================================

func TestMotions(t *testing.T) {
	d := newDoc("\tfoo(bar)", "x")

	d.MoveLineStart()
	assert.Equal(t, buffer.NewPos(1, 2), d.Cursor())

	d.MoveNextWord()
	assert.Equal(t, buffer.NewPos(1, 5), d.Cursor())

	d.MoveLineEnd()
	assert.Equal(t, buffer.NewPos(1, 9), d.Cursor())
	d.MoveNextWord()
	assert.Equal(t, buffer.NewPos(1, 9), d.Cursor())

	d.MovePrevWord()
	assert.Equal(t, buffer.NewPos(1, 6), d.Cursor())

	d.MoveDown()
	assert.Equal(t, buffer.NewPos(2, 1), d.Cursor())
	d.MoveDown()
	assert.Equal(t, buffer.NewPos(2, 1), d.Cursor())
	d.MoveLeft()
	assert.Equal(t, buffer.NewPos(2, 1), d.Cursor())
	d.MoveUp()
	d.MoveRight()
	assert.Equal(t, buffer.NewPos(1, 2), d.Cursor())
}

func TestLineInsertMotions(t *testing.T) {
	d := newDoc("\t\tabc")
	d.MoveLineStartInsert()
	assert.True(t, d.Mode().Is(mode.Insert))
	assert.Equal(t, buffer.NewPos(1, 3), d.Cursor())

	d = newDoc("abc")
	d.MoveLineEndInsert()
	assert.True(t, d.Mode().Is(mode.Insert))
	assert.Equal(t, buffer.NewPos(1, 4), d.Cursor())
}

func TestAddCursor(t *testing.T) {
	d := newDoc("ab")

	assert.True(t, d.AddCursor(buffer.NewPos(5, 9)))
	assert.False(t, d.AddCursor(buffer.NewPos(1, 2)))
	assert.Equal(t, []buffer.Pos{{Line: 1, Col: 2}}, d.Cursors())
}

// ============================================================================
// Search
// ============================================================================

func TestSearchMotions(t *testing.T) {
	d := newDoc("let a = 1;", "let b = 2;")

	assert.Equal(t, []buffer.Pos{{Line: 1, Col: 1}, {Line: 2, Col: 1}}, d.Search("let"))

	assert.True(t, d.MoveToNext("let"))
	assert.Equal(t, buffer.NewPos(2, 1), d.Cursor())
	assert.False(t, d.MoveToNext("let"))

	assert.True(t, d.MoveToPrev("let"))
	assert.Equal(t, buffer.NewPos(1, 1), d.Cursor())

	assert.True(t, d.MoveToNextInline("1"))
	assert.Equal(t, buffer.NewPos(1, 9), d.Cursor())
	assert.True(t, d.MoveToPrevInline("a"))
	assert.Equal(t, buffer.NewPos(1, 5), d.Cursor())
	assert.False(t, d.MoveToNextInline("b"))
}

// ============================================================================
// Clipboard
// ============================================================================

func TestCopyPaste(t *testing.T) {
	mem := clipboard.NewMemory()
	d := New(WithLines([]string{"abc", "x"}), WithClipboard(mem))

	d.Paste()
	assert.Equal(t, []string{"abc", "x"}, d.Content(), "empty clipboard")

	d.CopyLine()
	text, err := mem.Get()
	require.NoError(t, err)
	assert.Equal(t, "abc", text)

	d.MoveTo(buffer.NewPos(2, 1))
	d.Paste()
	assert.Equal(t, []string{"abc", "abcx"}, d.Content())
	assert.Equal(t, buffer.NewPos(2, 4), d.Cursor())
}

// ============================================================================
// Dirty Tracking
// ============================================================================

func TestTakeDirty(t *testing.T) {
	d := insertDoc(t, "a", "b", "c")

	assert.True(t, d.TakeDirty().Full)
	assert.True(t, d.TakeDirty().Empty())

	d.MoveTo(buffer.NewPos(2, 1))
	d.Insert('x')
	set := d.TakeDirty()
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(1))

	d.BreakLine()
	set = d.TakeDirty()
	assert.True(t, set.Contains(3))
	assert.True(t, set.Contains(4))

	d.SetFileType(nil)
	assert.True(t, d.TakeDirty().Full)
	assert.Equal(t, filetype.DefaultName, d.FileType().Name)
}
