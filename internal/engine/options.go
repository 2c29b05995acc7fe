package engine

import (
	"github.com/charmbracelet/log"

	"github.com/dshills/vedit/internal/clipboard"
	"github.com/dshills/vedit/internal/engine/history"
	"github.com/dshills/vedit/internal/engine/scan"
	"github.com/dshills/vedit/internal/filetype"
)

// DefaultMaxUndoEntries is the undo depth used when none is configured.
const DefaultMaxUndoEntries = history.DefaultMaxEntries

// Option configures a Document during creation.
type Option func(*Document)

// WithLines sets the initial content of the document.
func WithLines(lines []string) Option {
	return func(d *Document) {
		d.initLines = lines
	}
}

// WithFileType sets the file type rules: pairs, comment token and indent
// patterns.
func WithFileType(ft *filetype.FileType) Option {
	return func(d *Document) {
		if ft != nil {
			d.filetype = ft
		}
	}
}

// WithBreakChars sets the runes that end a word and trigger an undo
// checkpoint on insertion.
func WithBreakChars(breaks scan.BreakSet) Option {
	return func(d *Document) {
		if len(breaks) > 0 {
			d.breaks = breaks
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo snapshots.
func WithMaxUndoEntries(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.maxUndoEntries = max
		}
	}
}

// WithClipboard sets the clipboard used by CopyLine and Paste.
func WithClipboard(cb clipboard.Clipboard) Option {
	return func(d *Document) {
		if cb != nil {
			d.clipboard = cb
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}
