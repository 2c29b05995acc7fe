// Package filetype describes per-language editing rules and finds the rules
// that apply to a file.
//
// A FileType carries the comment token, auto-pair map, indentation rules
// and span classifier for one language. Built-in types are loaded from an
// embedded YAML file; users may add more with Lua scripts. When nothing
// matches, the plain-text Default type is used.
package filetype

import (
	"maps"
	"regexp"

	"github.com/dshills/vedit/internal/renderer/highlight"
)

// DefaultName is the name of the plain-text file type.
const DefaultName = "text"

// DefaultShiftWidth is the indent width used when a type sets none.
const DefaultShiftWidth = 4

// FileType holds the editing rules for one language.
type FileType struct {
	// Name identifies the type, e.g. "go".
	Name string

	// Match is tested against the base file name.
	Match *regexp.Regexp

	// Comment is the line comment token, or "" if the language has none.
	Comment string

	// ShiftWidth is the display width of one indent level.
	ShiftWidth int

	// AutoIndent enables indent computation on line breaks.
	AutoIndent bool

	// ExpandTab is informational; indentation is always stored as tabs.
	ExpandTab bool

	// IndentForward matches a line after which the indent increases.
	IndentForward *regexp.Regexp

	// IndentBackward matches a line that closes an indent level.
	IndentBackward *regexp.Regexp

	// Pairs maps an opening delimiter to its closer.
	Pairs map[rune]rune

	// Classifier labels lines for display; nil renders plain text.
	Classifier highlight.Classifier
}

// Default returns the plain-text file type: no comment token, no pairs and
// no classifier.
func Default() *FileType {
	return &FileType{
		Name:       DefaultName,
		ShiftWidth: DefaultShiftWidth,
		AutoIndent: true,
		Pairs:      map[rune]rune{},
	}
}

// Closer returns the closing delimiter paired with open.
func (ft *FileType) Closer(open rune) (rune, bool) {
	c, ok := ft.Pairs[open]
	return c, ok
}

// HasComment reports whether the type defines a line comment token.
func (ft *FileType) HasComment() bool {
	return ft.Comment != ""
}

// Matches reports whether the type's file name pattern matches name.
func (ft *FileType) Matches(name string) bool {
	return ft.Match != nil && ft.Match.MatchString(name)
}

// ForwardIndent reports whether line opens an indent level.
func (ft *FileType) ForwardIndent(line string) bool {
	return ft.IndentForward != nil && ft.IndentForward.MatchString(line)
}

// BackwardIndent reports whether line closes an indent level.
func (ft *FileType) BackwardIndent(line string) bool {
	return ft.IndentBackward != nil && ft.IndentBackward.MatchString(line)
}

// Clone returns a copy of ft with its own pair map.
func (ft *FileType) Clone() *FileType {
	c := *ft
	c.Pairs = maps.Clone(ft.Pairs)
	if c.Pairs == nil {
		c.Pairs = map[rune]rune{}
	}
	return &c
}
