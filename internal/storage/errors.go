package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for storage operations.
var (
	// ErrNotFound is returned when the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrIsDir is returned when the path names a directory.
	ErrIsDir = errors.New("path is a directory")

	// ErrInvalidPolicy is returned for an unknown trailing newline policy.
	ErrInvalidPolicy = errors.New("invalid trailing newline policy")
)

// IOError describes a failed read or write of a document.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
