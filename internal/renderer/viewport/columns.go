package viewport

import (
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the number of cells a tab occupies.
const DefaultTabWidth = 4

// VisualCol returns the 0-based screen cell where rune column col (1-based)
// of line starts. Each tab occupies tabWidth cells; other graphemes occupy
// their display width. Columns past the end continue one cell per column.
func VisualCol(line string, col, tabWidth int) int {
	tabWidth = max(tabWidth, 1)
	cells := 0
	c := 1

	g := uniseg.NewGraphemes(line)
	for c < col && g.Next() {
		cells += clusterWidth(g, tabWidth)
		c += len(g.Runes())
	}
	if c < col {
		cells += col - c
	}
	return cells
}

// ColumnAt is the inverse of VisualCol: it returns the 1-based rune column
// whose cell span contains screen cell visual. Cells past the end of the
// line map to the column after the last rune.
func ColumnAt(line string, visual, tabWidth int) int {
	tabWidth = max(tabWidth, 1)
	if visual < 0 {
		return 1
	}
	cells := 0
	c := 1

	g := uniseg.NewGraphemes(line)
	for g.Next() {
		w := clusterWidth(g, tabWidth)
		if visual < cells+w {
			return c
		}
		cells += w
		c += len(g.Runes())
	}
	return c
}

// Width returns the number of cells line occupies.
func Width(line string, tabWidth int) int {
	return VisualCol(line, len([]rune(line))+1, tabWidth)
}

func clusterWidth(g *uniseg.Graphemes, tabWidth int) int {
	if g.Str() == "\t" {
		return tabWidth
	}
	return g.Width()
}
