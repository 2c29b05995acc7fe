package engine

import (
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/vedit/internal/engine/buffer"
)

var lineGen = rapid.StringMatching(`[a-c \t(){}]{0,8}`)

func drawDoc(t *rapid.T) *Document {
	lines := rapid.SliceOfN(lineGen, 1, 5).Draw(t, "lines")
	d := newDoc(lines...)
	if rapid.Bool().Draw(t, "insert") {
		_ = d.StartInsert()
	}
	d.MoveTo(buffer.NewPos(
		rapid.IntRange(-1, 7).Draw(t, "line"),
		rapid.IntRange(-1, 10).Draw(t, "col"),
	))
	return d
}

type op struct {
	name  string
	apply func(t *rapid.T, d *Document)
}

var ops = []op{
	{"insert", func(t *rapid.T, d *Document) {
		d.Insert(rapid.SampledFrom([]rune{'a', ' ', '(', '{', '\t', '\n'}).Draw(t, "rune"))
	}},
	{"insert str", func(t *rapid.T, d *Document) {
		d.InsertStr(rapid.StringMatching(`[ab\n]{0,4}`).Draw(t, "text"))
	}},
	{"break", func(_ *rapid.T, d *Document) { d.BreakLine() }},
	{"del", func(_ *rapid.T, d *Document) { d.Del() }},
	{"del line", func(_ *rapid.T, d *Document) { d.DelLine() }},
	{"del word", func(_ *rapid.T, d *Document) { d.DelWord() }},
	{"del range", func(t *rapid.T, d *Document) {
		l := rapid.IntRange(0, 6).Draw(t, "range line")
		d.MoveTo(d.DelRange(buffer.NewRange(
			buffer.NewPos(l, rapid.IntRange(-2, 10).Draw(t, "start")),
			buffer.NewPos(l, rapid.IntRange(-2, 10).Draw(t, "end")),
		)))
	}},
	{"insert line", func(_ *rapid.T, d *Document) { d.InsertLine() }},
	{"comment", func(_ *rapid.T, d *Document) { d.ToggleComment() }},
	{"indent", func(_ *rapid.T, d *Document) { d.IndentForward() }},
	{"unindent", func(_ *rapid.T, d *Document) { d.IndentBackward() }},
	{"undo", func(_ *rapid.T, d *Document) { _ = d.Undo() }},
	{"redo", func(_ *rapid.T, d *Document) { _ = d.Redo() }},
	{"left", func(_ *rapid.T, d *Document) { d.MoveLeft() }},
	{"right", func(_ *rapid.T, d *Document) { d.MoveRight() }},
	{"up", func(_ *rapid.T, d *Document) { d.MoveUp() }},
	{"down", func(_ *rapid.T, d *Document) { d.MoveDown() }},
	{"next word", func(_ *rapid.T, d *Document) { d.MoveNextWord() }},
	{"prev word", func(_ *rapid.T, d *Document) { d.MovePrevWord() }},
	{"line start", func(_ *rapid.T, d *Document) { d.MoveLineStart() }},
	{"line end", func(_ *rapid.T, d *Document) { d.MoveLineEnd() }},
	{"insert mode", func(_ *rapid.T, d *Document) { _ = d.StartInsert() }},
	{"normal mode", func(_ *rapid.T, d *Document) { d.StartNormal() }},
	{"search", func(_ *rapid.T, d *Document) { d.MoveToNext("a") }},
	{"paste", func(_ *rapid.T, d *Document) { d.Paste() }},
	{"copy", func(_ *rapid.T, d *Document) { d.CopyLine() }},
}

func checkBounds(t *rapid.T, d *Document, after string) {
	if d.LineCount() < 1 {
		t.Fatalf("after %s: document is empty", after)
	}
	c := d.Cursor()
	if c.Line < 1 || c.Line > d.LineCount() {
		t.Fatalf("after %s: cursor line %d outside [1, %d]", after, c.Line, d.LineCount())
	}
	line, _ := d.Line(c.Line)
	maxCol := buffer.RuneLen(line)
	if maxCol == 0 || d.Mode().AllowsLineEnd() {
		maxCol++
	}
	if c.Col < 1 || c.Col > maxCol {
		t.Fatalf("after %s: cursor col %d outside [1, %d] on %q", after, c.Col, maxCol, line)
	}
}

// Every operation leaves a non-empty document and a cursor within bounds.
func TestBoundsInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := drawDoc(t)
		checkBounds(t, d, "setup")

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for range steps {
			o := rapid.SampledFrom(ops).Draw(t, "op")
			o.apply(t, d)
			checkBounds(t, d, o.name)
		}
	})
}

var checkpointed = []op{
	{"insert str", func(t *rapid.T, d *Document) {
		d.InsertStr(rapid.StringMatching(`[ab(\n]{1,4}`).Draw(t, "text"))
	}},
	{"break", func(_ *rapid.T, d *Document) { d.BreakLine() }},
	{"del line", func(_ *rapid.T, d *Document) { d.DelLine() }},
	{"indent", func(_ *rapid.T, d *Document) { d.IndentForward() }},
	{"comment", func(_ *rapid.T, d *Document) { d.ToggleComment() }},
	{"insert break rune", func(_ *rapid.T, d *Document) { d.Insert(' ') }},
}

// Undoing a single checkpointed edit restores content and cursor; redoing
// it restores the edited state.
func TestUndoRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := drawDoc(t)
		before, cursor := d.Content(), d.Cursor()

		rapid.SampledFrom(checkpointed).Draw(t, "edit").apply(t, d)
		edited, editedCursor := d.Content(), d.Cursor()

		if err := d.Undo(); err != nil {
			if !slices.Equal(before, edited) {
				t.Fatalf("edit changed content but left nothing to undo")
			}
			return
		}
		if !slices.Equal(d.Content(), before) || d.Cursor() != cursor {
			t.Fatalf("undo: got %q at %v, want %q at %v", d.Content(), d.Cursor(), before, cursor)
		}

		if err := d.Redo(); err != nil {
			t.Fatalf("redo: %v", err)
		}
		if !slices.Equal(d.Content(), edited) || d.Cursor() != editedCursor {
			t.Fatalf("redo: got %q at %v, want %q at %v", d.Content(), d.Cursor(), edited, editedCursor)
		}
	})
}

// A new edit after undo clears the redo stack.
func TestRedoInvalidation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := drawDoc(t)
		for range rapid.IntRange(1, 5).Draw(t, "edits") {
			rapid.SampledFrom(checkpointed).Draw(t, "edit").apply(t, d)
		}
		if d.Undo() != nil {
			return
		}

		before := d.Content()
		d.IndentForward()
		if slices.Equal(before, d.Content()) {
			t.Fatalf("indent did not change the line")
		}
		if d.CanRedo() {
			t.Fatalf("redo stack survived a new edit")
		}
	})
}

// Inserting an opening delimiter and deleting it right away restores the
// line and the cursor.
func TestPairSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := lineGen.Draw(t, "line")
		d := newDoc(line)
		_ = d.StartInsert()
		col := rapid.IntRange(1, buffer.RuneLen(line)+1).Draw(t, "col")
		d.MoveTo(buffer.NewPos(1, col))

		d.Insert(rapid.SampledFrom([]rune{'(', '{', '['}).Draw(t, "open"))
		d.Del()

		if d.CurrentLine() != line || d.Cursor().Col != col {
			t.Fatalf("got %q at col %d, want %q at col %d", d.CurrentLine(), d.Cursor().Col, line, col)
		}
	})
}
