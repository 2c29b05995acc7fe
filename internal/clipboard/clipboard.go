// Package clipboard moves plain text across the editor boundary.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard stores and returns plain text.
type Clipboard interface {
	Set(text string) error
	Get() (string, error)
}

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether the platform has a usable clipboard tool.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// Set writes text to the system clipboard.
func (s *System) Set(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// Get reads text from the system clipboard.
func (s *System) Get() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return text, nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Set stores text.
func (m *Memory) Set(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.set = true
	return nil
}

// Get returns the stored text. It fails with ErrUnavailable until Set has
// been called.
func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrUnavailable
	}
	return m.text, nil
}

// Fallback uses Primary and falls back to Secondary whenever Primary fails.
// Text written is always kept in Secondary as well.
type Fallback struct {
	Primary   Clipboard
	Secondary Clipboard
}

// Set writes text to both clipboards. It fails only if both fail.
func (f *Fallback) Set(text string) error {
	errSecondary := f.Secondary.Set(text)
	if err := f.Primary.Set(text); err != nil {
		return errSecondary
	}
	return nil
}

// Get reads from Primary, then Secondary.
func (f *Fallback) Get() (string, error) {
	if text, err := f.Primary.Get(); err == nil {
		return text, nil
	}
	return f.Secondary.Get()
}

// Default returns the system clipboard backed by an in-process one, or only
// the in-process one when system is false.
func Default(system bool) Clipboard {
	if !system {
		return NewMemory()
	}
	return &Fallback{Primary: NewSystem(), Secondary: NewMemory()}
}
