// Package storage reads and writes documents as flat newline-delimited text.
//
// A document is a list of lines. Reading splits on "\n" and drops the "\r"
// of "\r\n" terminators; writing joins with the terminator the file was read
// with. Whether the file ended with a newline is recorded on File and
// restored on write under the default Preserve policy.
package storage

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dshills/vedit/internal/logging"
)

// Policy controls the trailing newline on write.
type Policy string

const (
	// Preserve writes a trailing newline only if the file was read with one.
	Preserve Policy = "preserve"

	// Strip never writes a trailing newline.
	Strip Policy = "strip"
)

// ParsePolicy converts a configuration value into a Policy.
// The empty string selects Preserve.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", Preserve:
		return Preserve, nil
	case Strip:
		return Strip, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// DefaultPerm is the permission used for newly created files.
const DefaultPerm fs.FileMode = 0o644

// File is the content of a document on disk.
type File struct {
	Lines           []string
	TrailingNewline bool
	LineEnding      LineEnding
	BOM             bool
}

// NewFile creates a File from lines with LF endings and no trailing newline.
// An empty slice yields a single empty line.
func NewFile(lines []string) File {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return File{Lines: lines, LineEnding: LineEndingLF}
}

// Storage reads and writes documents.
type Storage interface {
	Read(path string) (File, error)
	Write(path string, f File) error
}

// Store implements Storage on top of an FS.
type Store struct {
	fs     FS
	policy Policy
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithPolicy sets the trailing newline policy.
func WithPolicy(p Policy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore creates a Store backed by fsys. A nil fsys uses the OS.
func NewStore(fsys FS, opts ...Option) *Store {
	if fsys == nil {
		fsys = NewOSFS()
	}
	s := &Store{
		fs:     fsys,
		policy: Preserve,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.OrDiscard(s.logger)
	return s
}

var _ Storage = (*Store)(nil)

// Policy returns the trailing newline policy.
func (s *Store) Policy() Policy {
	return s.policy
}

// Exists reports whether path exists.
func (s *Store) Exists(path string) bool {
	return s.fs.Exists(path)
}

// Read loads path and splits it into lines.
func (s *Store) Read(path string) (File, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return File{}, &IOError{Op: "read", Path: path, Err: classify(err)}
	}

	f := Decode(data)
	s.logger.Debug("read file",
		logging.FieldPath, path,
		logging.FieldLines, len(f.Lines),
	)
	return f, nil
}

// Write joins f's lines and stores them at path.
func (s *Store) Write(path string, f File) error {
	if s.policy == Strip {
		f.TrailingNewline = false
	}
	if err := s.fs.WriteFile(path, Encode(f), DefaultPerm); err != nil {
		return &IOError{Op: "write", Path: path, Err: classify(err)}
	}

	s.logger.Debug("wrote file",
		logging.FieldPath, path,
		logging.FieldLines, len(f.Lines),
	)
	return nil
}

// Decode splits raw file content into a File.
func Decode(data []byte) File {
	data, bom := StripBOM(data)
	f := File{
		LineEnding: DetectLineEnding(data),
		BOM:        bom,
	}

	text := string(data)
	if strings.HasSuffix(text, "\n") {
		f.TrailingNewline = true
		text = strings.TrimSuffix(text, "\n")
	}

	f.Lines = strings.Split(text, "\n")
	for i, line := range f.Lines {
		f.Lines[i] = strings.TrimSuffix(line, "\r")
	}
	return f
}

// Encode joins a File into raw file content.
func Encode(f File) []byte {
	lines := f.Lines
	if len(lines) == 0 {
		lines = []string{""}
	}
	eol := f.LineEnding.String()

	var b strings.Builder
	if f.BOM {
		b.Write(bomUTF8)
	}
	b.WriteString(strings.Join(lines, eol))
	if f.TrailingNewline {
		b.WriteString(eol)
	}
	return []byte(b.String())
}
