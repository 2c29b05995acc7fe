package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dshills/vedit/internal/app"
	"github.com/dshills/vedit/internal/clipboard"
	"github.com/dshills/vedit/internal/renderer/highlight"
)

// spanStyles colors span kinds with ANSI palette colors.
var spanStyles = map[highlight.SpanKind]lipgloss.Style{
	highlight.Comment: lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
	highlight.String:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	highlight.Keyword: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	highlight.Type:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	highlight.Number:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	highlight.PreProc: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	highlight.Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	highlight.Option:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	highlight.Special: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

func newHighlightCommand(flags *globalFlags) *cobra.Command {
	var colorMode string

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Print a file with syntax classes",
		Long: `Print a file as the editor classifies it.

On a terminal each class is colored. Otherwise classified text is written
as [class:text] so the output can be inspected or diffed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			session, err := app.NewSession(app.Options{Config: &cfg, Clipboard: clipboard.NewMemory()})
			if err != nil {
				return err
			}
			if err := session.Open(args[0]); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return printHighlighted(out, session, colorEnabled(colorMode, out))
		},
	}

	cmd.Flags().StringVar(&colorMode, "color", "auto", "color output: auto, always, never")
	return cmd
}

// colorEnabled resolves the --color mode for w. In auto mode color is used
// only on a terminal and when NO_COLOR is unset.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

func printHighlighted(w io.Writer, session *app.Session, color bool) error {
	doc := session.Document()
	adapter := highlight.NewAdapter(doc.FileType().Classifier, highlight.WithCacheSize(0))
	tab := strings.Repeat(" ", session.TabWidth())

	bw := bufio.NewWriter(w)
	for _, chunks := range adapter.RenderWindow(doc.Lines(), 1, doc.LineCount()) {
		for _, c := range chunks {
			switch {
			case c.Shift && color:
				bw.WriteString(tab)
			case c.Shift:
				bw.WriteByte('\t')
			case c.Kind == highlight.Normal || c.Kind == highlight.Ident:
				bw.WriteString(c.Text)
			case color:
				bw.WriteString(spanStyles[c.Kind].Render(c.Text))
			default:
				fmt.Fprintf(bw, "[%s:%s]", c.Kind, c.Text)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
