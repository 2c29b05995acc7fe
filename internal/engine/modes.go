package engine

import (
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/mode"
	"github.com/dshills/vedit/internal/logging"
)

// Mode returns the current mode.
func (d *Document) Mode() mode.Mode {
	return d.modes.Current()
}

// OnModeChange registers a callback for mode changes.
func (d *Document) OnModeChange(cb mode.ChangeCallback) {
	d.modes.OnChange(cb)
}

// StartNormal returns to Normal mode and moves the cursor left one column.
// It reports whether the mode changed.
func (d *Document) StartNormal() bool {
	if !d.modes.Cancel() {
		return false
	}
	d.MoveLeft()
	d.logMode()
	return true
}

// Cancel leaves any non-Normal mode. It is the cancel trigger of every mode
// and behaves like StartNormal.
func (d *Document) Cancel() bool {
	return d.StartNormal()
}

// StartInsert enters Insert mode and moves the cursor right one column,
// between the character under the cursor and the next one.
func (d *Document) StartInsert() error {
	if d.modes.Current().Is(mode.Insert) {
		return nil
	}
	if err := d.modes.Switch(mode.InsertMode()); err != nil {
		return err
	}
	d.MoveRight()
	d.logMode()
	return nil
}

// StartCommand enters Command mode.
func (d *Document) StartCommand() error {
	return d.enter(mode.CommandMode())
}

// StartSearch enters Search mode with empty text.
func (d *Document) StartSearch() error {
	return d.enter(mode.SearchMode(""))
}

// StartSelect enters Select mode over ranges.
func (d *Document) StartSelect(ranges []buffer.Range) error {
	return d.enter(mode.SelectMode(ranges))
}

// SetModeText replaces the text of the current Command or Search mode.
// It reports false in any other mode.
func (d *Document) SetModeText(text string) bool {
	cur := d.modes.Current()
	if !cur.Is(mode.Command) && !cur.Is(mode.Search) {
		return false
	}
	return d.modes.Update(cur.WithText(text)) == nil
}

// Reset clears secondary cursors and forces Normal mode without moving the
// cursor.
func (d *Document) Reset() {
	d.children.Clear()
	d.modes.Reset()
	d.cursor = d.bound(d.cursor)
}

func (d *Document) enter(m mode.Mode) error {
	if d.modes.Current().Is(m.Kind()) {
		return nil
	}
	if err := d.modes.Switch(m); err != nil {
		return err
	}
	d.cursor = d.bound(d.cursor)
	d.logMode()
	return nil
}

func (d *Document) logMode() {
	d.logger.Debug("mode changed", logging.FieldMode, d.modes.Current().String())
}
