package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vedit/internal/input/mode"
	"github.com/dshills/vedit/internal/renderer/highlight"
)

// Theme maps span kinds and screen elements to terminal styles.
type Theme struct {
	Spans map[highlight.SpanKind]tcell.Style

	Text   tcell.Style
	Filler tcell.Style
	Status tcell.Style
	Error  tcell.Style
}

// DefaultTheme returns a theme using the terminal's palette colors.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Spans: map[highlight.SpanKind]tcell.Style{
			highlight.Comment: base.Foreground(tcell.ColorGray).Italic(true),
			highlight.String:  base.Foreground(tcell.ColorGreen),
			highlight.Keyword: base.Foreground(tcell.ColorPurple).Bold(true),
			highlight.Type:    base.Foreground(tcell.ColorTeal),
			highlight.Number:  base.Foreground(tcell.ColorOlive),
			highlight.PreProc: base.Foreground(tcell.ColorFuchsia),
			highlight.Value:   base.Foreground(tcell.ColorOlive),
			highlight.Option:  base.Foreground(tcell.ColorAqua),
			highlight.Special: base.Foreground(tcell.ColorRed),
		},
		Text:   base,
		Filler: base.Foreground(tcell.ColorNavy),
		Status: base.Reverse(true),
		Error:  base.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon),
	}
}

// Style returns the style for a span kind. Kinds without an entry, such as
// Normal and Ident, use the text style.
func (t Theme) Style(kind highlight.SpanKind) tcell.Style {
	if st, ok := t.Spans[kind]; ok {
		return st
	}
	return t.Text
}

// cursorStyle maps a mode's cursor shape to the terminal cursor style.
func cursorStyle(k mode.Kind) tcell.CursorStyle {
	if k.CursorStyle() == mode.CursorBar {
		return tcell.CursorStyleSteadyBar
	}
	return tcell.CursorStyleSteadyBlock
}
