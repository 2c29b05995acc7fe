package highlight

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	gocache "github.com/patrickmn/go-cache"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/logging"
)

const (
	// DefaultCacheSize is the number of classified lines kept by an Adapter.
	DefaultCacheSize = 2000

	cacheExpiration = 10 * time.Minute
)

// Adapter renders lines into chunks using a Classifier.
// It is not safe for concurrent use.
type Adapter struct {
	classifier Classifier
	cache      *gocache.Cache
	maxCache   int
	logger     *log.Logger
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithCacheSize limits the number of cached lines. Zero disables caching.
func WithCacheSize(n int) AdapterOption {
	return func(a *Adapter) {
		a.maxCache = n
	}
}

// WithLogger sets the logger used to report classifier failures.
func WithLogger(logger *log.Logger) AdapterOption {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// NewAdapter creates an adapter. A nil classifier renders plain text.
func NewAdapter(c Classifier, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		classifier: c,
		maxCache:   DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.OrDiscard(a.logger)
	// No janitor goroutine: expired entries are dropped on access.
	a.cache = gocache.New(cacheExpiration, 0)
	return a
}

// SetClassifier replaces the classifier and drops cached lines.
func (a *Adapter) SetClassifier(c Classifier) {
	a.classifier = c
	a.cache.Flush()
}

// Classifier returns the current classifier.
func (a *Adapter) Classifier() Classifier {
	return a.classifier
}

// Cached returns the number of cached lines.
func (a *Adapter) Cached() int {
	return a.cache.ItemCount()
}

// RenderWindow renders lines first through last of src. The window is
// clamped to the document, so only lines that exist are classified.
func (a *Adapter) RenderWindow(src buffer.LineSource, first, last int) [][]Chunk {
	first = max(first, 1)
	last = min(last, src.Len())
	if first > last {
		return nil
	}

	out := make([][]Chunk, 0, last-first+1)
	for n := first; n <= last; n++ {
		line, _ := src.Get(n)
		out = append(out, a.RenderLine(line))
	}
	return out
}

// RenderLine classifies a line and returns its chunks.
func (a *Adapter) RenderLine(line string) []Chunk {
	if a.maxCache > 0 {
		if v, ok := a.cache.Get(line); ok {
			return slices.Clone(v.([]Chunk))
		}
	}

	chunks := a.render(line)

	if a.maxCache > 0 {
		if a.cache.ItemCount() >= a.maxCache {
			a.cache.Flush()
		}
		a.cache.SetDefault(line, chunks)
		chunks = slices.Clone(chunks)
	}
	return chunks
}

func (a *Adapter) render(line string) []Chunk {
	if a.classifier == nil {
		return splitTabs([]Chunk{TextChunk(Normal, line)})
	}

	spans, err := a.classifier.Classify(line)
	if err != nil {
		a.logger.Debug("classify failed, rendering plain", logging.FieldError, err)
		return splitTabs([]Chunk{TextChunk(Normal, line)})
	}

	chunks, ok := assemble(line, spans)
	if !ok {
		a.logger.Debug("classifier returned malformed spans, rendering plain")
		return splitTabs([]Chunk{TextChunk(Normal, line)})
	}
	return splitTabs(chunks)
}

// assemble walks ordered spans, filling gaps with Normal text. It reports
// false if the spans overlap, run backwards, leave the line or cut a rune.
func assemble(line string, spans []Span) ([]Chunk, bool) {
	chunks := make([]Chunk, 0, len(spans)*2+1)
	pos := 0

	for _, s := range spans {
		if s.Start < pos || s.End < s.Start || s.End > len(line) {
			return nil, false
		}
		if !onBoundary(line, s.Start) || !onBoundary(line, s.End) {
			return nil, false
		}
		if s.Start == s.End {
			continue
		}
		if s.Start > pos {
			chunks = append(chunks, TextChunk(Normal, line[pos:s.Start]))
		}
		if s.Label == LabelTab {
			chunks = append(chunks, ShiftChunk())
		} else {
			chunks = append(chunks, TextChunk(KindForLabel(s.Label), line[s.Start:s.End]))
		}
		pos = s.End
	}

	if pos < len(line) || len(chunks) == 0 {
		chunks = append(chunks, TextChunk(Normal, line[pos:]))
	}
	return chunks, true
}

func onBoundary(line string, i int) bool {
	return i == len(line) || utf8.RuneStart(line[i])
}

// splitTabs moves every tab of every text chunk into its own Shift marker.
// A single empty text chunk is kept so that empty lines render as one chunk.
func splitTabs(chunks []Chunk) []Chunk {
	out := make([]Chunk, 0, len(chunks))
	for _, c := range chunks {
		if c.Shift || !strings.Contains(c.Text, "\t") {
			out = append(out, c)
			continue
		}
		for i, part := range strings.Split(c.Text, "\t") {
			if i > 0 {
				out = append(out, ShiftChunk())
			}
			if part != "" {
				out = append(out, TextChunk(c.Kind, part))
			}
		}
	}
	return out
}
