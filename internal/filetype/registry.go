package filetype

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-enry/go-enry/v2"

	"github.com/dshills/vedit/internal/logging"
	"github.com/dshills/vedit/internal/renderer/highlight"
)

// Registry holds the known file types in registration order.
// It is not safe for concurrent use.
type Registry struct {
	list   map[string]*FileType
	order  []string
	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{list: make(map[string]*FileType)}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.OrDiscard(r.logger)
	return r
}

// NewBuiltinRegistry creates a registry holding the built-in file types.
func NewBuiltinRegistry(opts ...Option) (*Registry, error) {
	r := NewRegistry(opts...)
	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, ft := range builtin {
		r.Add(ft)
	}
	return r, nil
}

// Add registers ft, replacing any type with the same name. A replaced type
// keeps its position in the match order.
func (r *Registry) Add(ft *FileType) {
	if _, ok := r.list[ft.Name]; !ok {
		r.order = append(r.order, ft.Name)
	}
	r.list[ft.Name] = ft
}

// Get returns the type registered under name.
func (r *Registry) Get(name string) (*FileType, bool) {
	ft, ok := r.list[name]
	return ft, ok
}

// Names returns the registered names in match order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.order)
}

// Find returns the file type for filename, or Default if nothing matches.
func (r *Registry) Find(filename string) *FileType {
	return r.Detect(filename, nil)
}

// Detect returns the file type for a file, trying in order:
//  1. each registered type's Match pattern against the base name
//  2. the language go-enry infers from the name, if registered
//  3. the language go-enry infers from a shebang in head, if registered
//  4. a chroma lexer matching the name, with default editing rules
//
// It returns Default when all of them fail.
func (r *Registry) Detect(filename string, head []byte) *FileType {
	base := filepath.Base(filename)

	for _, name := range r.order {
		if ft := r.list[name]; ft.Matches(base) {
			return ft
		}
	}

	if ft, ok := r.byLanguage(enry.GetLanguageByFilename(base)); ok {
		return ft
	}
	if ft, ok := r.byLanguage(enry.GetLanguageByExtension(base)); ok {
		return ft
	}
	if len(head) > 0 {
		if ft, ok := r.byLanguage(enry.GetLanguageByShebang(head)); ok {
			return ft
		}
	}

	if c, err := highlight.ChromaForFile(base); err == nil {
		ft := Default()
		ft.Name = strings.ToLower(c.Name())
		ft.Classifier = c
		r.logger.Debug("using chroma lexer", logging.FieldPath, filename, logging.FieldFileType, ft.Name)
		return ft
	}

	return Default()
}

// byLanguage looks up a go-enry language name. Unsafe guesses are ignored.
func (r *Registry) byLanguage(lang string, safe bool) (*FileType, bool) {
	if lang == "" || !safe {
		return nil, false
	}
	name := strings.ToLower(lang)
	if alias, ok := enryAliases[name]; ok {
		name = alias
	}
	ft, ok := r.list[name]
	return ft, ok
}

// enryAliases maps go-enry language names to registered type names.
var enryAliases = map[string]string{
	"c++":   "c",
	"tsx":   "typescript",
}
