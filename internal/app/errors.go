package app

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrQuit signals that the session should end.
	ErrQuit = errors.New("quit requested")

	// ErrUnsavedChanges indicates a quit was refused because the document
	// has unsaved changes.
	ErrUnsavedChanges = errors.New("unsaved changes")

	// ErrNoPath indicates a save was requested for a document without a path.
	ErrNoPath = errors.New("no file name")

	// ErrUnknownCommand indicates a command line that matches no command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrAlreadyRunning indicates the terminal is already running.
	ErrAlreadyRunning = errors.New("terminal already running")
)

// CommandError reports a failed command-line command.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Command
	}
	return fmt.Sprintf(":%s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
