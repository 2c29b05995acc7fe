package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/mode"
	"github.com/dshills/vedit/internal/logging"
)

// keyHandler runs one key binding.
type keyHandler func(s *Session) error

// normalKeys maps printable keys in Normal mode to their actions.
var normalKeys = map[rune]keyHandler{
	'h': func(s *Session) error { s.doc.MoveLeft(); return nil },
	'j': func(s *Session) error { s.doc.MoveDown(); return nil },
	'k': func(s *Session) error { s.doc.MoveUp(); return nil },
	'l': func(s *Session) error { s.doc.MoveRight(); return nil },
	'w': func(s *Session) error { s.doc.MoveNextWord(); return nil },
	'b': func(s *Session) error { s.doc.MovePrevWord(); return nil },
	'0': func(s *Session) error { s.doc.MoveLineStart(); return nil },
	'$': func(s *Session) error { s.doc.MoveLineEnd(); return nil },
	'i': func(s *Session) error { return s.doc.StartInsert() },
	'<': func(s *Session) error { s.doc.MoveLineStartInsert(); return nil },
	'>': func(s *Session) error { s.doc.MoveLineEndInsert(); return nil },
	'o': (*Session).openBelow,
	'O': (*Session).openAbove,
	'x': (*Session).deleteUnder,
	'd': func(s *Session) error { s.doc.DelLine(); return nil },
	'u': (*Session).undo,
	'y': func(s *Session) error { s.doc.CopyLine(); s.info("line copied"); return nil },
	'p': func(s *Session) error { s.doc.Paste(); return nil },
	'#': func(s *Session) error { s.doc.ToggleComment(); return nil },
	':': func(s *Session) error { return s.doc.StartCommand() },
	'/': func(s *Session) error { return s.doc.StartSearch() },
	'n': func(s *Session) error { return s.repeatSearch(true) },
	'N': func(s *Session) error { return s.repeatSearch(false) },
	'v': (*Session).selectLine,
}

// HandleKey applies one key event to the document according to the current
// mode. It returns ErrQuit when the session should end. Other errors are
// also shown on the status line.
func (s *Session) HandleKey(ev *tcell.EventKey) error {
	s.clearMessage()

	var err error
	switch s.doc.Mode().Kind() {
	case mode.Insert:
		err = s.insertKey(ev)
	case mode.Command:
		err = s.commandKey(ev)
	case mode.Search:
		err = s.searchKey(ev)
	case mode.Select:
		err = s.selectKey(ev)
	default:
		err = s.normalKey(ev)
	}

	if err != nil && !errors.Is(err, ErrQuit) {
		s.fail(err)
	}
	s.follow()
	return err
}

func (s *Session) normalKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyRune:
		if h, ok := normalKeys[ev.Rune()]; ok {
			return h(s)
		}
		s.logger.Debug("unbound key", logging.FieldKey, string(ev.Rune()), logging.FieldMode, mode.NameNormal)
		return nil
	case tcell.KeyLeft:
		s.doc.MoveLeft()
	case tcell.KeyRight:
		s.doc.MoveRight()
	case tcell.KeyUp:
		s.doc.MoveUp()
	case tcell.KeyDown:
		s.doc.MoveDown()
	case tcell.KeyHome:
		s.doc.MoveLineStart()
	case tcell.KeyEnd:
		s.doc.MoveLineEnd()
	case tcell.KeyTab:
		s.doc.IndentForward()
	case tcell.KeyBacktab:
		s.doc.IndentBackward()
	case tcell.KeyCtrlR:
		return s.redo()
	case tcell.KeyEscape:
		s.doc.Reset()
	}
	return nil
}

func (s *Session) insertKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyRune:
		s.doc.Insert(ev.Rune())
	case tcell.KeyTab:
		s.doc.Insert('\t')
	case tcell.KeyEnter:
		s.doc.BreakLine()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			s.doc.DelWord()
		} else {
			s.doc.Del()
		}
	case tcell.KeyLeft:
		s.doc.MoveLeft()
	case tcell.KeyRight:
		s.doc.MoveRight()
	case tcell.KeyUp:
		s.doc.MoveUp()
	case tcell.KeyDown:
		s.doc.MoveDown()
	case tcell.KeyEscape:
		s.doc.StartNormal()
	}
	return nil
}

// commandKey edits the command line; Enter runs it.
func (s *Session) commandKey(ev *tcell.EventKey) error {
	text := s.doc.Mode().Text()
	switch ev.Key() {
	case tcell.KeyRune:
		s.doc.SetModeText(text + string(ev.Rune()))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if text == "" {
			s.leave()
			return nil
		}
		s.doc.SetModeText(dropLast(text))
	case tcell.KeyEnter:
		s.leave()
		return s.Exec(text)
	case tcell.KeyEscape:
		s.leave()
	}
	return nil
}

// searchKey edits the search target; Enter jumps to the next match.
func (s *Session) searchKey(ev *tcell.EventKey) error {
	text := s.doc.Mode().Text()
	switch ev.Key() {
	case tcell.KeyRune:
		s.doc.SetModeText(text + string(ev.Rune()))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if text == "" {
			s.leave()
			return nil
		}
		s.doc.SetModeText(dropLast(text))
	case tcell.KeyEnter:
		s.leave()
		if text != "" {
			s.search = text
		}
		return s.repeatSearch(true)
	case tcell.KeyEscape:
		s.leave()
	}
	return nil
}

// selectKey acts on the selected lines and returns to Normal mode.
func (s *Session) selectKey(ev *tcell.EventKey) error {
	ranges := s.doc.Mode().Ranges()
	if ev.Key() == tcell.KeyEscape {
		s.leave()
		return nil
	}
	if ev.Key() != tcell.KeyRune {
		return nil
	}

	switch ev.Rune() {
	case 'd', 'x':
		s.leave()
		// Back to front so earlier ranges keep their columns.
		for i := len(ranges) - 1; i >= 0; i-- {
			s.doc.MoveTo(s.doc.DelRange(ranges[i]))
		}
	case 'y':
		s.leave()
		if len(ranges) > 0 {
			s.doc.CopyLineAt(ranges[0].Start.Line)
			s.info("line copied")
		}
	case '#':
		s.leave()
		for _, r := range ranges {
			s.doc.ToggleCommentAt(r.Start.Line)
		}
	case '>':
		s.leave()
		for _, r := range ranges {
			s.doc.IndentForwardAt(r.Start.Line)
		}
	case '<':
		s.leave()
		for _, r := range ranges {
			s.doc.IndentBackwardAt(r.Start.Line)
		}
	}
	return nil
}

// leave returns to Normal mode without moving the cursor.
func (s *Session) leave() {
	cur := s.doc.Cursor()
	s.doc.Cancel()
	s.doc.MoveTo(cur)
}

func (s *Session) selectLine() error {
	line := s.doc.Cursor().Line
	return s.doc.StartSelect([]buffer.Range{buffer.LineRange(s.doc.Lines(), line)})
}

// openBelow opens an indented line after the cursor line in Insert mode.
func (s *Session) openBelow() error {
	return s.openAt(s.doc.Cursor().Line + 1)
}

// openAbove opens an indented line before the cursor line in Insert mode.
func (s *Session) openAbove() error {
	return s.openAt(s.doc.Cursor().Line)
}

func (s *Session) openAt(n int) error {
	s.doc.InsertLineAt(n)
	s.doc.MoveTo(buffer.NewPos(n, 1))
	s.doc.ApplyExpectedIndentAt(n)
	s.doc.MoveLineEndInsert()
	return nil
}

// deleteUnder deletes the rune under the cursor as its own undo step.
func (s *Session) deleteUnder() error {
	cur := s.doc.Cursor()
	if line := s.doc.CurrentLine(); line == "" {
		return nil
	}
	s.doc.Checkpoint()
	s.doc.MoveTo(s.doc.DelAt(cur.WithCol(cur.Col + 1)))
	return nil
}

func (s *Session) undo() error {
	if err := s.doc.Undo(); err != nil {
		s.info("already at oldest change")
	}
	return nil
}

func (s *Session) redo() error {
	if err := s.doc.Redo(); err != nil {
		s.info("already at newest change")
	}
	return nil
}

// repeatSearch jumps to the next or previous match of the last search.
func (s *Session) repeatSearch(forward bool) error {
	if s.search == "" {
		return nil
	}
	var found bool
	if forward {
		found = s.doc.MoveToNext(s.search)
	} else {
		found = s.doc.MoveToPrev(s.search)
	}
	if !found {
		s.warn("pattern not found: " + s.search)
		return nil
	}
	s.view.CenterOn(s.doc.Cursor().Line, s.doc.LineCount())
	return nil
}

// follow keeps the cursor inside the visible window.
func (s *Session) follow() {
	cur := s.doc.Cursor()
	s.view.Follow(cur.Line, s.doc.LineCount())
}

func dropLast(s string) string {
	r := []rune(s)
	return string(r[:len(r)-1])
}
