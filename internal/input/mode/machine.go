package mode

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a mode change is not allowed.
var ErrInvalidTransition = errors.New("invalid mode transition")

// Allowed reports whether a document may go from one mode kind to another.
// Normal may enter any other mode; every other mode may only return to
// Normal.
func Allowed(from, to Kind) bool {
	if from == Normal {
		return to != Normal
	}
	return to == Normal
}

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Machine holds the current mode and enforces the transition rules.
// It is not safe for concurrent use.
type Machine struct {
	current   Mode
	previous  Mode
	callbacks []ChangeCallback
}

// NewMachine creates a machine in Normal mode.
func NewMachine() *Machine {
	return &Machine{
		current:  NormalMode(),
		previous: NormalMode(),
	}
}

// Current returns the current mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Previous returns the mode before the last transition.
func (m *Machine) Previous() Mode {
	return m.previous
}

// Switch changes to next if the transition is allowed.
func (m *Machine) Switch(next Mode) error {
	if !Allowed(m.current.kind, next.kind) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.current, next)
	}
	m.set(next)
	return nil
}

// Cancel returns to Normal mode. It reports whether the mode changed.
func (m *Machine) Cancel() bool {
	if m.current.kind == Normal {
		return false
	}
	m.set(NormalMode())
	return true
}

// Update replaces the payload of the current mode without a transition.
// It fails if next is of a different kind.
func (m *Machine) Update(next Mode) error {
	if next.kind != m.current.kind {
		return fmt.Errorf("%w: update %s with %s", ErrInvalidTransition, m.current, next)
	}
	m.current = next
	return nil
}

// Reset forces Normal mode without notifying listeners.
func (m *Machine) Reset() {
	m.previous = m.current
	m.current = NormalMode()
}

// OnChange registers a callback for mode changes.
func (m *Machine) OnChange(cb ChangeCallback) {
	m.callbacks = append(m.callbacks, cb)
}

func (m *Machine) set(next Mode) {
	from := m.current
	m.previous = from
	m.current = next
	for _, cb := range m.callbacks {
		cb(from, next)
	}
}
