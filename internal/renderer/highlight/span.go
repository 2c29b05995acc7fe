// Package highlight turns classifier output into display chunks.
//
// A Classifier labels byte ranges of a single line. The Adapter maps those
// labels to a closed set of span kinds, fills unlabeled gaps with Normal
// text and splits tab characters into Shift markers so the renderer can
// align columns. Classification failures never surface as errors; the line
// is rendered as plain text instead.
package highlight

// SpanKind classifies a run of text for display coloring.
type SpanKind uint8

const (
	Normal SpanKind = iota
	Comment
	String
	Keyword
	Type
	Number
	Ident
	PreProc
	Value
	Option
	Special
)

var spanNames = [...]string{
	Normal:  "normal",
	Comment: "comment",
	String:  "string",
	Keyword: "keyword",
	Type:    "type",
	Number:  "number",
	Ident:   "ident",
	PreProc: "preproc",
	Value:   "value",
	Option:  "option",
	Special: "special",
}

// String returns the kind name.
func (k SpanKind) String() string {
	if int(k) < len(spanNames) {
		return spanNames[k]
	}
	return "unknown"
}

// labels maps grammar rule labels to span kinds.
var labels = map[string]SpanKind{
	"keyword": Keyword,
	"type":    Type,
	"types":   Type,
	"string":  String,
	"comment": Comment,
	"ident":   Ident,
	"preproc": PreProc,
	"special": Special,
	"value":   Value,
	"opt":     Option,
	"number":  Number,
}

// LabelTab marks a span rendered as a single Shift marker.
const LabelTab = "tab"

// KindForLabel maps a rule label to its span kind. Unknown labels are Normal.
func KindForLabel(label string) SpanKind {
	if k, ok := labels[label]; ok {
		return k
	}
	return Normal
}

// Span is a labeled byte range [Start, End) of a line.
type Span struct {
	Label string
	Start int
	End   int
}

// Chunk is one rendered piece of a line: either classified text or a Shift
// marker standing in for a tab character.
type Chunk struct {
	Kind  SpanKind
	Text  string
	Shift bool
}

// TextChunk returns a text chunk.
func TextChunk(kind SpanKind, text string) Chunk {
	return Chunk{Kind: kind, Text: text}
}

// ShiftChunk returns a tab marker.
func ShiftChunk() Chunk {
	return Chunk{Shift: true}
}

// Plain returns the text of chunks with Shift markers restored to tabs.
func Plain(chunks []Chunk) string {
	n := 0
	for _, c := range chunks {
		n += len(c.Text) + 1
	}
	buf := make([]byte, 0, n)
	for _, c := range chunks {
		if c.Shift {
			buf = append(buf, '\t')
			continue
		}
		buf = append(buf, c.Text...)
	}
	return string(buf)
}
