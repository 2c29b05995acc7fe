package mode

import (
	"slices"

	"github.com/dshills/vedit/internal/engine/buffer"
)

// Kind identifies one of the editor modes.
type Kind uint8

const (
	// Normal is the navigation and command mode.
	Normal Kind = iota

	// Insert is the text input mode.
	Insert

	// Command is the command-line mode.
	Command

	// Search is the search-target input mode.
	Search

	// Select is the range selection mode.
	Select
)

// Standard mode names.
const (
	NameNormal  = "normal"
	NameInsert  = "insert"
	NameCommand = "command"
	NameSearch  = "search"
	NameSelect  = "select"
)

// String returns the mode identifier.
func (k Kind) String() string {
	switch k {
	case Normal:
		return NameNormal
	case Insert:
		return NameInsert
	case Command:
		return NameCommand
	case Search:
		return NameSearch
	case Select:
		return NameSelect
	default:
		return "unknown"
	}
}

// DisplayName returns the name shown on the status line.
func (k Kind) DisplayName() string {
	switch k {
	case Normal:
		return "NORMAL"
	case Insert:
		return "INSERT"
	case Command:
		return "COMMAND"
	case Search:
		return "SEARCH"
	case Select:
		return "SELECT"
	default:
		return ""
	}
}

// CursorStyle returns the cursor style used in this mode.
func (k Kind) CursorStyle() CursorStyle {
	switch k {
	case Insert, Command, Search:
		return CursorBar
	default:
		return CursorBlock
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor.
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor.
	CursorBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	default:
		return "unknown"
	}
}

// Mode is the current mode together with its payload.
// Search and Command modes carry the text typed so far; Select mode
// carries the selected ranges.
type Mode struct {
	kind   Kind
	text   string
	ranges []buffer.Range
}

// NormalMode returns the Normal mode.
func NormalMode() Mode { return Mode{kind: Normal} }

// InsertMode returns the Insert mode.
func InsertMode() Mode { return Mode{kind: Insert} }

// CommandMode returns the Command mode with an empty command line.
func CommandMode() Mode { return Mode{kind: Command} }

// SearchMode returns the Search mode holding text.
func SearchMode(text string) Mode { return Mode{kind: Search, text: text} }

// SelectMode returns the Select mode holding a copy of ranges.
func SelectMode(ranges []buffer.Range) Mode {
	return Mode{kind: Select, ranges: slices.Clone(ranges)}
}

// Kind returns the mode kind.
func (m Mode) Kind() Kind { return m.kind }

// Is reports whether the mode is of kind k.
func (m Mode) Is(k Kind) bool { return m.kind == k }

// String returns the mode identifier.
func (m Mode) String() string { return m.kind.String() }

// AllowsLineEnd reports whether the cursor may sit one past the last
// column of a line.
func (m Mode) AllowsLineEnd() bool { return m.kind == Insert }

// Text returns the command or search text. Other modes return "".
func (m Mode) Text() string { return m.text }

// WithText returns a copy of a Command or Search mode holding text.
// Other modes are returned unchanged.
func (m Mode) WithText(text string) Mode {
	if m.kind == Command || m.kind == Search {
		m.text = text
	}
	return m
}

// Ranges returns a copy of the selected ranges.
func (m Mode) Ranges() []buffer.Range {
	return slices.Clone(m.ranges)
}

// Equal reports whether two modes have the same kind and payload.
func (m Mode) Equal(other Mode) bool {
	return m.kind == other.kind &&
		m.text == other.text &&
		slices.Equal(m.ranges, other.ranges)
}
