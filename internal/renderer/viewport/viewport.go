// Package viewport tracks the visible window of a document and maps rune
// columns to screen cells.
package viewport

// DefaultScrollOff is the number of lines kept between the cursor and the
// top or bottom edge.
const DefaultScrollOff = 3

// Viewport represents the visible portion of the document.
// Lines are 1-based; columns are 0-based screen cells.
type Viewport struct {
	topLine    int
	leftColumn int

	width  int
	height int

	scrollOff int
}

// NewViewport creates a viewport with the given size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		topLine:   1,
		width:     max(width, 1),
		height:    max(height, 1),
		scrollOff: DefaultScrollOff,
	}
}

// Width returns the viewport width.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible screen column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// ScrollOff returns the configured scroll-off.
func (v *Viewport) ScrollOff() int { return v.scrollOff }

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// SetScrollOff sets the cursor margin. Negative values are treated as zero.
func (v *Viewport) SetScrollOff(n int) {
	v.scrollOff = max(n, 0)
}

// effectiveScrollOff never lets the margins of both edges overlap.
func (v *Viewport) effectiveScrollOff() int {
	return min(v.scrollOff, (v.height-1)/2)
}

// VisibleLineRange returns the first and last visible lines of a document
// with total lines.
func (v *Viewport) VisibleLineRange(total int) (first, last int) {
	return v.topLine, max(min(v.topLine+v.height-1, total), v.topLine)
}

// IsLineVisible reports whether line is inside the window.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// LineToScreenRow returns the 0-based screen row of line, or -1 if it is
// not visible.
func (v *Viewport) LineToScreenRow(line int) int {
	if !v.IsLineVisible(line) {
		return -1
	}
	return line - v.topLine
}

// ScrollTo makes line the top line, clamped to [1, total].
func (v *Viewport) ScrollTo(line, total int) {
	v.topLine = max(min(line, total), 1)
}

// ScrollDown moves the window down one line, as long as the cursor stays at
// least scroll-off lines below the top. It reports whether it moved.
func (v *Viewport) ScrollDown(cursorLine, total int) bool {
	if v.topLine >= total {
		return false
	}
	if cursorLine-v.topLine < v.effectiveScrollOff() {
		return false
	}
	v.topLine++
	return true
}

// ScrollUp moves the window up one line, as long as the cursor stays at
// least scroll-off lines above the bottom. It reports whether it moved.
func (v *Viewport) ScrollUp(cursorLine int) bool {
	if v.topLine <= 1 {
		return false
	}
	if cursorLine >= v.topLine+v.height-1-v.effectiveScrollOff() {
		return false
	}
	v.topLine--
	return true
}

// Follow scrolls minimally so that cursorLine is visible with scroll-off
// lines of context. It reports whether the window moved.
func (v *Viewport) Follow(cursorLine, total int) bool {
	old := v.topLine
	off := v.effectiveScrollOff()

	if top := cursorLine - off; v.topLine > top {
		v.topLine = max(top, 1)
	}
	if bottom := cursorLine - v.height + off + 1; v.topLine < bottom {
		v.topLine = min(bottom, max(total-v.height+1, 1))
	}
	v.topLine = max(min(v.topLine, total), 1)

	return v.topLine != old
}

// FollowColumn scrolls horizontally so that screen column col is visible.
// It reports whether the window moved.
func (v *Viewport) FollowColumn(col int) bool {
	old := v.leftColumn
	if col < v.leftColumn {
		v.leftColumn = max(col, 0)
	} else if col >= v.leftColumn+v.width {
		v.leftColumn = col - v.width + 1
	}
	return v.leftColumn != old
}

// CenterOn puts line in the middle of the window.
func (v *Viewport) CenterOn(line, total int) {
	v.ScrollTo(line-v.height/2, total)
}
