package app

import (
	"strconv"
	"strings"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/logging"
)

// Exec runs a command line as typed after ':'.
//
//	w [path]   write the file, optionally under a new name
//	q          quit; refused while there are unsaved changes
//	q!         quit, discarding changes
//	wq, x      write and quit
//	e!         discard changes and reload the file
//	<n>        go to line n
//
// Quitting commands return ErrQuit. Failures are wrapped in a
// *CommandError.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	s.logger.Debug("exec", logging.FieldCommand, line)

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	if n, err := strconv.Atoi(name); err == nil {
		s.gotoLine(n)
		return nil
	}

	var err error
	switch name {
	case "w":
		if arg != "" {
			err = s.SaveAs(arg)
		} else {
			err = s.Save()
		}
	case "q":
		if s.doc.Modified() {
			err = ErrUnsavedChanges
			break
		}
		return ErrQuit
	case "q!":
		return ErrQuit
	case "wq", "x":
		if err = s.Save(); err == nil {
			return ErrQuit
		}
	case "e!":
		err = s.Revert()
	default:
		err = ErrUnknownCommand
	}

	if err != nil {
		return &CommandError{Command: line, Err: err}
	}
	return nil
}

// gotoLine moves to the first non-blank column of line n, clamped to the
// document.
func (s *Session) gotoLine(n int) {
	n = buffer.Clamp(n, 1, s.doc.LineCount())
	s.doc.MoveTo(buffer.NewPos(n, 1))
	s.doc.MoveLineStart()
	s.view.CenterOn(n, s.doc.LineCount())
}
