package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/vedit/internal/input/mode"
	"github.com/dshills/vedit/internal/logging"
)

// Terminal draws a Session on a tcell screen and feeds it key events.
type Terminal struct {
	screen  tcell.Screen
	session *Session
	theme   Theme
	watcher *Watcher
	logger  *log.Logger

	running atomic.Bool
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithScreen draws on screen instead of the controlling terminal.
func WithScreen(screen tcell.Screen) TerminalOption {
	return func(t *Terminal) {
		t.screen = screen
	}
}

// WithTheme sets the color theme.
func WithTheme(theme Theme) TerminalOption {
	return func(t *Terminal) {
		t.theme = theme
	}
}

// WithWatcher reloads the session when the watcher reports a change.
func WithWatcher(w *Watcher) TerminalOption {
	return func(t *Terminal) {
		t.watcher = w
	}
}

// WithLogger sets the terminal logger.
func WithLogger(logger *log.Logger) TerminalOption {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// NewTerminal creates a terminal front end for session.
func NewTerminal(session *Session, opts ...TerminalOption) (*Terminal, error) {
	t := &Terminal{
		session: session,
		theme:   DefaultTheme(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = logging.OrDiscard(t.logger)

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		t.screen = screen
	}
	return t, nil
}

// Run initializes the screen and processes events until the session quits
// or ctx is done. The screen is restored before Run returns.
func (t *Terminal) Run(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer t.running.Store(false)

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer t.screen.Fini()
	t.screen.EnablePaste()

	t.session.Resize(t.screen.Size())

	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	var changes <-chan string
	if t.watcher != nil {
		changes = t.watcher.Changes()
	}

	t.logger.Info("terminal started", logging.FieldSession, t.session.ID())
	t.draw(true)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			full, err := t.handle(ev)
			if errors.Is(err, ErrQuit) {
				t.logger.Info("terminal stopped", logging.FieldSession, t.session.ID())
				return nil
			}
			t.draw(full)

		case path := <-changes:
			t.logger.Debug("external change", logging.FieldPath, path)
			_ = t.session.Reload()
			t.draw(false)
		}
	}
}

// handle applies one screen event. It reports whether the whole screen
// must be redrawn.
func (t *Terminal) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		t.session.Resize(ev.Size())
		return true, nil
	case *tcell.EventKey:
		return false, t.session.HandleKey(ev)
	}
	return false, nil
}

// draw paints the next frame. Only dirty rows are repainted unless full
// is set or the window scrolled.
func (t *Terminal) draw(full bool) {
	f := t.session.Frame()
	width, _ := t.screen.Size()
	full = full || f.Scrolled || f.Dirty.Full

	for y := 0; y < f.Height; y++ {
		if !full && !f.Dirty.Contains(f.Top+y) {
			continue
		}
		t.clearRow(y, width, t.theme.Text)
		if y < len(f.Rows) {
			t.drawRow(y, width, f.Rows[y], f)
		} else {
			t.screen.SetContent(0, y, '~', nil, t.theme.Filler)
		}
	}

	style := t.theme.Status
	if f.Failed {
		style = t.theme.Error
	}
	t.clearRow(f.Height, width, style)
	t.drawText(0, f.Height, width, f.Status, style)

	switch f.Mode.Kind() {
	case mode.Command, mode.Search:
		t.screen.ShowCursor(uniseg.StringWidth(f.Status), f.Height)
	default:
		t.screen.ShowCursor(f.CursorX, f.CursorY)
	}
	t.screen.SetCursorStyle(cursorStyle(f.Mode.Kind()))
	t.screen.Show()
}

func (t *Terminal) drawRow(y, width int, row Row, f Frame) {
	x := -f.Left
	for _, c := range row.Chunks {
		if c.Shift {
			x += f.TabWidth
			continue
		}
		x = t.drawText(x, y, width, c.Text, t.theme.Style(c.Kind))
		if x >= width {
			return
		}
	}
}

// drawText draws text from cell x, clipping to [0, width), and returns the
// cell after it.
func (t *Terminal) drawText(x, y, width int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() && x < width {
		w := g.Width()
		if w == 0 {
			continue
		}
		if x >= 0 {
			runes := g.Runes()
			t.screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}

func (t *Terminal) clearRow(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}
