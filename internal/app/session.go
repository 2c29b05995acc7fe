// Package app ties a document to its collaborators and drives it from a
// terminal.
//
// A Session owns one engine.Document together with the storage it was read
// from, the file-type registry, the highlighting adapter and the viewport.
// It translates key events into document operations according to the
// current mode and renders Frames. A Terminal pumps tcell and file-watch
// events into a single loop that owns the Session, so the document itself
// is only ever touched from one goroutine.
package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/dshills/vedit/internal/clipboard"
	"github.com/dshills/vedit/internal/config"
	"github.com/dshills/vedit/internal/engine"
	"github.com/dshills/vedit/internal/filetype"
	"github.com/dshills/vedit/internal/logging"
	"github.com/dshills/vedit/internal/renderer/highlight"
	"github.com/dshills/vedit/internal/renderer/viewport"
	"github.com/dshills/vedit/internal/storage"
)

// Default screen size used until the terminal reports its own.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Options configures a Session. Zero values select the defaults.
type Options struct {
	// Config holds editor settings; nil means config.Defaults().
	Config *config.Config

	// Storage reads and writes files; nil means the OS file system with the
	// configured trailing-newline policy.
	Storage storage.Storage

	// Registry resolves file types; nil means the built-in registry plus
	// the configured Lua scripts.
	Registry *filetype.Registry

	// Clipboard backs copy and paste; nil means clipboard.Default.
	Clipboard clipboard.Clipboard

	// Logger receives session events; nil discards them.
	Logger *log.Logger

	// Width and Height are the initial screen size in cells.
	Width  int
	Height int
}

// Session is one open document and everything needed to edit and display
// it. It is not safe for concurrent use.
type Session struct {
	id     string
	path   string
	file   storage.File
	cfg    config.Config
	logger *log.Logger

	doc      *engine.Document
	store    storage.Storage
	registry *filetype.Registry
	adapter  *highlight.Adapter
	view     *viewport.Viewport

	search  string
	message string
	failed  bool
	width   int
	height  int

	// Window position of the last frame; zero before the first one.
	drawnTop  int
	drawnLeft int
}

// NewSession creates a session holding an empty scratch document.
func NewSession(opts Options) (*Session, error) {
	cfg := config.Defaults()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logger := logging.OrDiscard(opts.Logger)

	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		store:    opts.Storage,
		registry: opts.Registry,
		file:     storage.NewFile(nil),
	}
	s.logger = logger.With(logging.FieldSession, s.id[:8])

	if s.store == nil {
		s.store = storage.NewStore(nil,
			storage.WithPolicy(cfg.Policy()),
			storage.WithLogger(s.logger))
	}
	if s.registry == nil {
		reg, err := loadRegistry(cfg, s.logger)
		if err != nil {
			return nil, err
		}
		s.registry = reg
	}

	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.Default(cfg.Clipboard.System)
	}

	s.doc = engine.New(
		engine.WithBreakChars(cfg.BreakSet()),
		engine.WithMaxUndoEntries(cfg.Editor.MaxUndo),
		engine.WithClipboard(cb),
		engine.WithLogger(s.logger),
	)
	s.adapter = highlight.NewAdapter(nil, highlight.WithLogger(s.logger))

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	s.view = viewport.NewViewport(width, height-1)
	s.view.SetScrollOff(cfg.Editor.ScrollOff)
	s.width, s.height = width, height

	return s, nil
}

// loadRegistry builds the built-in registry and adds the file types defined
// by the configured Lua scripts.
func loadRegistry(cfg config.Config, logger *log.Logger) (*filetype.Registry, error) {
	reg, err := filetype.NewBuiltinRegistry(filetype.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("load file types: %w", err)
	}
	for _, script := range cfg.FileTypes.Scripts {
		types, err := filetype.LoadLua(script)
		if err != nil {
			return nil, fmt.Errorf("load file types: %w", err)
		}
		for _, ft := range types {
			reg.Add(ft)
		}
		logger.Debug("file type script loaded",
			logging.FieldScript, script,
			"types", len(types))
	}
	return reg, nil
}

// ID returns the unique session identifier.
func (s *Session) ID() string {
	return s.id
}

// Path returns the file path, or "" for a scratch document.
func (s *Session) Path() string {
	return s.path
}

// Name returns the base name shown on the status line.
func (s *Session) Name() string {
	if s.path == "" {
		return "[scratch]"
	}
	return filepath.Base(s.path)
}

// Document returns the edited document.
func (s *Session) Document() *engine.Document {
	return s.doc
}

// Viewport returns the visible window.
func (s *Session) Viewport() *viewport.Viewport {
	return s.view
}

// Message returns the status message and whether it reports a failure.
func (s *Session) Message() (string, bool) {
	return s.message, s.failed
}

// LastSearch returns the most recent search target.
func (s *Session) LastSearch() string {
	return s.search
}

// TabWidth returns the number of cells a tab occupies. Typed files use
// their own shift width; plain text uses the configured tab width.
func (s *Session) TabWidth() int {
	ft := s.doc.FileType()
	if ft.Name != filetype.DefaultName && ft.ShiftWidth > 0 {
		return ft.ShiftWidth
	}
	return s.cfg.Editor.TabWidth
}

// Open reads path into the document. A missing file opens an empty
// document that will be created on save. The file type is detected from
// the name and first line.
func (s *Session) Open(path string) error {
	f, err := s.store.Read(path)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		f = storage.NewFile(nil)
		f.TrailingNewline = true
		s.info("new file")
	case err != nil:
		s.fail(err)
		return err
	}

	s.path = path
	s.file = f
	s.doc.Load(f.Lines)

	var head []byte
	if len(f.Lines) > 0 {
		head = []byte(f.Lines[0])
	}
	s.setFileType(s.registry.Detect(filepath.Base(path), head))
	s.view.ScrollTo(1, s.doc.LineCount())

	s.logger.Info("file opened",
		logging.FieldPath, path,
		logging.FieldLines, s.doc.LineCount(),
		logging.FieldFileType, s.doc.FileType().Name)
	return nil
}

func (s *Session) setFileType(ft *filetype.FileType) {
	s.doc.SetFileType(ft)
	s.adapter.SetClassifier(ft.Classifier)
}

// Save writes the document to its path and marks it saved.
func (s *Session) Save() error {
	if s.path == "" {
		s.fail(ErrNoPath)
		return ErrNoPath
	}
	return s.SaveAs(s.path)
}

// SaveAs writes the document to path, which becomes the session path.
func (s *Session) SaveAs(path string) error {
	f := s.file
	f.Lines = s.doc.Content()
	if err := s.store.Write(path, f); err != nil {
		s.fail(err)
		return err
	}

	if path != s.path {
		s.path = path
		s.setFileType(s.registry.Find(filepath.Base(path)))
	}
	s.file = f
	s.doc.MarkSaved()
	s.info(fmt.Sprintf("%q %dL written", s.Name(), len(f.Lines)))
	s.logger.Info("file saved", logging.FieldPath, path, logging.FieldLines, len(f.Lines))
	return nil
}

// Reload re-reads the file after an external change. A modified document
// is left alone and a warning is shown instead. Content identical to the
// document, such as the echo of our own save, is ignored.
func (s *Session) Reload() error {
	if s.path == "" {
		return nil
	}
	f, err := s.store.Read(s.path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		s.fail(err)
		return err
	}
	if slices.Equal(f.Lines, s.doc.Content()) {
		return nil
	}
	if s.doc.Modified() {
		s.warn("file changed on disk; :w to overwrite, :e! to reload")
		return nil
	}
	s.load(f)
	s.info("file reloaded")
	return nil
}

// Revert discards all changes and reloads the file.
func (s *Session) Revert() error {
	if s.path == "" {
		return ErrNoPath
	}
	f, err := s.store.Read(s.path)
	if err != nil {
		s.fail(err)
		return err
	}
	s.load(f)
	s.info("file reloaded")
	return nil
}

// load replaces the content but keeps the cursor near where it was.
func (s *Session) load(f storage.File) {
	cur := s.doc.Cursor()
	s.file = f
	s.doc.Load(f.Lines)
	s.doc.MoveTo(cur)
	s.logger.Debug("file reloaded", logging.FieldPath, s.path)
}

// Resize updates the screen size. The bottom row is the status line.
func (s *Session) Resize(width, height int) {
	s.width, s.height = max(width, 1), max(height, 2)
	s.view.Resize(s.width, s.height-1)
	s.view.Follow(s.doc.Cursor().Line, s.doc.LineCount())
}

func (s *Session) info(msg string) {
	s.message, s.failed = msg, false
}

func (s *Session) warn(msg string) {
	s.message, s.failed = msg, true
	s.logger.Warn(msg, logging.FieldPath, s.path)
}

func (s *Session) fail(err error) {
	s.message, s.failed = err.Error(), true
	s.logger.Error("operation failed", logging.FieldError, err)
}

func (s *Session) clearMessage() {
	s.message, s.failed = "", false
}
