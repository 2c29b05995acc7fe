package highlight

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label names produced by RuleClassifier for identifiers.
const (
	LabelIdent = "ident"
)

// Rule is a labeled regex pattern.
type Rule struct {
	// Pattern is the regex pattern to match.
	Pattern *regexp.Regexp

	// Label is assigned to every match.
	Label string

	// Submatch is the submatch index to use (0 for whole match).
	Submatch int
}

// RuleClassifier is a regex and keyword based classifier.
//
// All rules are joined into one alternation scanned left to right, so the
// leftmost match wins and, at equal starts, the rule added first. Identifiers
// not covered by any rule are labeled with their keyword label, or "ident".
type RuleClassifier struct {
	name     string
	rules    []Rule
	keywords map[string]string

	combined *regexp.Regexp
	groups   []int // group number wrapping each rule in combined
}

// NewRuleClassifier creates an empty classifier.
func NewRuleClassifier(name string) *RuleClassifier {
	return &RuleClassifier{
		name:     name,
		keywords: make(map[string]string),
	}
}

// Name returns the grammar name.
func (c *RuleClassifier) Name() string {
	return c.name
}

// AddRule compiles pattern and adds it with the given label.
func (c *RuleClassifier) AddRule(pattern, label string) error {
	return c.AddSubmatchRule(pattern, label, 0)
}

// AddSubmatchRule adds a rule that labels only submatch n of each match.
func (c *RuleClassifier) AddSubmatchRule(pattern, label string, n int) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("grammar %s: rule %q: %w", c.name, pattern, err)
	}
	if n < 0 || n > re.NumSubexp() {
		return fmt.Errorf("grammar %s: rule %q has no submatch %d", c.name, pattern, n)
	}
	c.rules = append(c.rules, Rule{Pattern: re, Label: label, Submatch: n})
	return c.compile()
}

func (c *RuleClassifier) compile() error {
	parts := make([]string, len(c.rules))
	groups := make([]int, len(c.rules))
	g := 1
	for i, rule := range c.rules {
		parts[i] = "(" + rule.Pattern.String() + ")"
		groups[i] = g
		g += 1 + rule.Pattern.NumSubexp()
	}

	combined, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		c.rules = c.rules[:len(c.rules)-1]
		return fmt.Errorf("grammar %s: %w", c.name, err)
	}
	c.combined = combined
	c.groups = groups
	return nil
}

// AddKeywords labels each keyword with label.
func (c *RuleClassifier) AddKeywords(label string, keywords ...string) {
	for _, kw := range keywords {
		c.keywords[kw] = label
	}
}

// Rules returns the number of rules.
func (c *RuleClassifier) Rules() int {
	return len(c.rules)
}

// Classify labels line.
func (c *RuleClassifier) Classify(line string) ([]Span, error) {
	covered := make([]bool, len(line))
	var spans []Span

	if c.combined != nil {
		for _, m := range c.combined.FindAllStringSubmatchIndex(line, -1) {
			if span, ok := c.matched(m); ok {
				spans = append(spans, span)
				markCovered(covered, span.Start, span.End)
			}
		}
	}

	spans = append(spans, c.identifiers(line, covered)...)

	slices.SortFunc(spans, func(a, b Span) int {
		return a.Start - b.Start
	})
	return spans, nil
}

// matched returns the span of the first rule taking part in match m.
func (c *RuleClassifier) matched(m []int) (Span, bool) {
	for i, rule := range c.rules {
		g := c.groups[i]
		if m[2*g] < 0 {
			continue
		}
		g += rule.Submatch
		start, end := m[2*g], m[2*g+1]
		if start < 0 || end <= start {
			return Span{}, false
		}
		return Span{Label: rule.Label, Start: start, End: end}, true
	}
	return Span{}, false
}

// identifiers finds identifier runs outside covered regions.
func (c *RuleClassifier) identifiers(line string, covered []bool) []Span {
	var spans []Span

	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if covered[i] || !(unicode.IsLetter(r) || r == '_') {
			i += size
			continue
		}

		start := i
		for i < len(line) {
			r, size = utf8.DecodeRuneInString(line[i:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			i += size
		}

		if isCovered(covered, start, i) {
			continue
		}
		label := LabelIdent
		if kw, ok := c.keywords[line[start:i]]; ok {
			label = kw
		}
		spans = append(spans, Span{Label: label, Start: start, End: i})
	}

	return spans
}

func isCovered(covered []bool, start, end int) bool {
	for i := max(start, 0); i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func markCovered(covered []bool, start, end int) {
	for i := max(start, 0); i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
