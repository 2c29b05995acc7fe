package filetype

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/dshills/vedit/internal/renderer/highlight"
)

// Definition is the serialized form of a FileType.
type Definition struct {
	Name           string              `yaml:"name"`
	Match          string              `yaml:"match"`
	Comment        string              `yaml:"comment"`
	ShiftWidth     int                 `yaml:"shift_width"`
	AutoIndent     *bool               `yaml:"auto_indent"`
	ExpandTab      bool                `yaml:"expand_tab"`
	IndentForward  string              `yaml:"indent_forward"`
	IndentBackward string              `yaml:"indent_backward"`
	Pairs          map[string]string   `yaml:"pairs"`
	Lexer          string              `yaml:"lexer"`
	Rules          []RuleDefinition    `yaml:"rules"`
	Keywords       map[string][]string `yaml:"keywords"`
}

// RuleDefinition is one regex rule of a Definition.
type RuleDefinition struct {
	Pattern  string `yaml:"pattern"`
	Label    string `yaml:"label"`
	Submatch int    `yaml:"submatch"`
}

// Compile builds a FileType from the definition.
//
// Rules and keywords produce a highlight.RuleClassifier; otherwise a
// non-empty Lexer names a chroma lexer.
func (d Definition) Compile() (*FileType, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidDefinition)
	}

	ft := Default()
	ft.Name = d.Name
	ft.Comment = d.Comment
	ft.ExpandTab = d.ExpandTab
	if d.ShiftWidth > 0 {
		ft.ShiftWidth = d.ShiftWidth
	}
	if d.AutoIndent != nil {
		ft.AutoIndent = *d.AutoIndent
	}

	var err error
	if ft.Match, err = compileOptional(d.Name, "match", d.Match); err != nil {
		return nil, err
	}
	if ft.IndentForward, err = compileOptional(d.Name, "indent_forward", d.IndentForward); err != nil {
		return nil, err
	}
	if ft.IndentBackward, err = compileOptional(d.Name, "indent_backward", d.IndentBackward); err != nil {
		return nil, err
	}

	for open, closer := range d.Pairs {
		o, okOpen := singleRune(open)
		c, okClose := singleRune(closer)
		if !okOpen || !okClose {
			return nil, fmt.Errorf("%w: %s: pair %q:%q must be single characters", ErrInvalidDefinition, d.Name, open, closer)
		}
		ft.Pairs[o] = c
	}

	if ft.Classifier, err = d.classifier(); err != nil {
		return nil, err
	}
	return ft, nil
}

func (d Definition) classifier() (highlight.Classifier, error) {
	if len(d.Rules) > 0 || len(d.Keywords) > 0 {
		c := highlight.NewRuleClassifier(d.Name)
		for _, r := range d.Rules {
			if err := c.AddSubmatchRule(r.Pattern, r.Label, r.Submatch); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
			}
		}
		// Sorted for a deterministic keyword table when labels overlap.
		labels := slices.Sorted(maps.Keys(d.Keywords))
		for _, label := range labels {
			c.AddKeywords(label, d.Keywords[label]...)
		}
		return c, nil
	}

	if d.Lexer != "" {
		c, err := highlight.NewChromaClassifier(d.Lexer)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.Name, err)
		}
		return c, nil
	}
	return nil, nil
}

func compileOptional(name, field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s: %w", ErrInvalidDefinition, name, field, err)
	}
	return re, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	return r, size > 0 && size == len(s) && r != utf8.RuneError
}
