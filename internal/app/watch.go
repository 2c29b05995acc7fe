package app

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/dshills/vedit/internal/logging"
)

// DefaultDebounce is how long a Watcher waits for a burst of file events to
// settle before reporting a change.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports changes to one file made outside the editor.
//
// The parent directory is watched rather than the file itself, so that
// editors and tools that replace a file by renaming a new one over it are
// still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *log.Logger

	fsw     *fsnotify.Watcher
	changes chan string

	closeOnce sync.Once
	closeCh   chan struct{}
	done      sync.WaitGroup
}

// Watch starts watching path. The file does not need to exist yet.
func Watch(path string, debounce time.Duration, logger *log.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logging.OrDiscard(logger),
		fsw:      fsw,
		changes:  make(chan string, 1),
		closeCh:  make(chan struct{}),
	}
	w.done.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Changes delivers the path after each settled burst of writes, creates,
// renames or removals. Changes are coalesced while the receiver is busy.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.done.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.done.Done()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("file event", logging.FieldPath, ev.Name, "op", ev.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", logging.FieldPath, w.path, logging.FieldError, err)

		case <-timer.C:
			select {
			case w.changes <- w.path:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}
