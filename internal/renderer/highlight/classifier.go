package highlight

import "errors"

// ErrNoGrammar is returned by classifiers that have nothing to classify with.
var ErrNoGrammar = errors.New("no grammar")

// Classifier labels the byte ranges of a single line.
//
// Spans must be ordered, non-overlapping and within the line. Text not
// covered by any span is rendered as Normal.
type Classifier interface {
	Classify(line string) ([]Span, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(line string) ([]Span, error)

// Classify calls f(line).
func (f ClassifierFunc) Classify(line string) ([]Span, error) {
	return f(line)
}
