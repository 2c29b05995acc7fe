package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ChromaClassifier classifies lines with a chroma lexer.
type ChromaClassifier struct {
	lexer chroma.Lexer
}

// NewChromaClassifier returns a classifier for the named chroma lexer.
// The name may be a lexer name, alias or file extension.
func NewChromaClassifier(name string) (*ChromaClassifier, error) {
	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, fmt.Errorf("chroma lexer %q: %w", name, ErrNoGrammar)
	}
	return &ChromaClassifier{lexer: chroma.Coalesce(lexer)}, nil
}

// ChromaForFile returns a classifier for the lexer matching filename.
func ChromaForFile(filename string) (*ChromaClassifier, error) {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil, fmt.Errorf("chroma lexer for %q: %w", filename, ErrNoGrammar)
	}
	return &ChromaClassifier{lexer: chroma.Coalesce(lexer)}, nil
}

// Name returns the lexer name.
func (c *ChromaClassifier) Name() string {
	return c.lexer.Config().Name
}

// Classify tokenises line and labels each token.
func (c *ChromaClassifier) Classify(line string) ([]Span, error) {
	it, err := c.lexer.Tokenise(nil, line)
	if err != nil {
		return nil, err
	}

	var spans []Span
	pos := 0
	for _, tok := range it.Tokens() {
		start := pos
		pos += len(tok.Value)
		if start >= len(line) {
			// Lexers may append a trailing newline.
			break
		}
		end := min(pos, len(line))

		label := chromaLabel(tok.Type)
		if label == "" {
			continue
		}
		if n := len(spans); n > 0 && spans[n-1].Label == label && spans[n-1].End == start {
			spans[n-1].End = end
			continue
		}
		spans = append(spans, Span{Label: label, Start: start, End: end})
	}
	return spans, nil
}

// chromaLabel maps a chroma token type to a rule label. Text, whitespace,
// punctuation and operators map to "" and are left as gaps.
func chromaLabel(t chroma.TokenType) string {
	switch {
	case t.InSubCategory(chroma.CommentPreproc):
		return "preproc"
	case t.InCategory(chroma.Comment):
		return "comment"
	case t == chroma.KeywordType:
		return "type"
	case t == chroma.KeywordConstant:
		return "value"
	case t.InCategory(chroma.Keyword):
		return "keyword"
	case t.InSubCategory(chroma.LiteralString):
		return "string"
	case t.InSubCategory(chroma.LiteralNumber):
		return "number"
	case t == chroma.NameBuiltin, t == chroma.NameBuiltinPseudo, t == chroma.NameDecorator:
		return "special"
	case t == chroma.NameConstant:
		return "value"
	case t == chroma.NameAttribute, t == chroma.NameTag, t == chroma.NameProperty:
		return "opt"
	case t == chroma.NameClass, t == chroma.NameNamespace:
		return "type"
	case t.InCategory(chroma.Name):
		return "ident"
	default:
		return ""
	}
}
