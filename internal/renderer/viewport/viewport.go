// Package viewport holds the pixel geometry of the visible window into a
// document: scroll offsets, the top line, the client area and the cached
// content width.
package viewport

import "github.com/dshills/styledtext/internal/renderer/core"

// Viewport is the scroll and size state of one editor. All positions are
// in pixels; line indexes are zero based.
type Viewport struct {
	verticalOffset   int
	horizontalOffset int
	topIndex         int

	width  int
	height int

	lineHeight   int
	contentWidth int
}

// New creates a viewport with the given line height and an empty client
// area.
func New(lineHeight int) *Viewport {
	if lineHeight < 1 {
		lineHeight = 1
	}
	return &Viewport{lineHeight: lineHeight}
}

// Reset returns offsets, top line and content width to zero.
func (v *Viewport) Reset() {
	v.verticalOffset = 0
	v.horizontalOffset = 0
	v.topIndex = 0
	v.contentWidth = 0
}

// VerticalOffset returns the vertical scroll offset.
func (v *Viewport) VerticalOffset() int { return v.verticalOffset }

// SetVerticalOffset stores the vertical scroll offset and derives the top
// line from it. It returns the previous top line.
func (v *Viewport) SetVerticalOffset(px int) (oldTop int) {
	oldTop = v.topIndex
	v.verticalOffset = px
	v.topIndex = ceilDiv(px, v.lineHeight)
	return oldTop
}

// HorizontalOffset returns the horizontal scroll offset.
func (v *Viewport) HorizontalOffset() int { return v.horizontalOffset }

// ScrollHorizontal moves the horizontal offset by px.
func (v *Viewport) ScrollHorizontal(px int) {
	v.horizontalOffset += px
}

// TopIndex returns the first line whose top is visible.
func (v *Viewport) TopIndex() int { return v.topIndex }

// SetTopIndex sets the top line without touching the pixel offset. It is
// used while the client area is still unknown.
func (v *Viewport) SetTopIndex(line int) { v.topIndex = line }

// Width returns the client area width.
func (v *Viewport) Width() int { return v.width }

// Height returns the client area height.
func (v *Viewport) Height() int { return v.height }

// ClientArea returns the client rectangle at the origin.
func (v *Viewport) ClientArea() core.Rect {
	return core.NewRect(0, 0, v.width, v.height)
}

// SetSize changes the client area and returns the previous size.
func (v *Viewport) SetSize(width, height int) (oldWidth, oldHeight int) {
	oldWidth, oldHeight = v.width, v.height
	v.width = max(0, width)
	v.height = max(0, height)
	return oldWidth, oldHeight
}

// LineHeight returns the height of one line.
func (v *Viewport) LineHeight() int { return v.lineHeight }

// SetLineHeight changes the line height after a font change.
func (v *Viewport) SetLineHeight(h int) {
	v.lineHeight = max(1, h)
}

// ContentWidth returns the cached width of the widest measured line.
func (v *Viewport) ContentWidth() int { return v.contentWidth }

// GrowContentWidth raises the cached content width to at least w.
func (v *Viewport) GrowContentWidth(w int) {
	v.contentWidth = max(v.contentWidth, w)
}

// ResetContentWidth forgets the cached content width so it can be
// measured again after a font or tab change.
func (v *Viewport) ResetContentWidth() {
	v.contentWidth = 0
}

// LineCountWhole returns the number of lines that fit entirely.
func (v *Viewport) LineCountWhole() int {
	return v.height / v.lineHeight
}

// PartialLineCount returns the number of lines at least partly visible
// when the top line is aligned.
func (v *Viewport) PartialLineCount() int {
	return ceilDiv(v.height, v.lineHeight)
}

// BottomIndex returns the last fully visible line.
func (v *Viewport) BottomIndex(lineCount int) int {
	return min(lineCount, v.topIndex+v.LineCountWhole()) - 1
}

// PartialBottomIndex returns the last partially visible line.
func (v *Viewport) PartialBottomIndex(lineCount int) int {
	return min(lineCount, v.topIndex+v.PartialLineCount()) - 1
}

// PartialTopIndex returns the first partially visible line.
func (v *Viewport) PartialTopIndex() int {
	return v.verticalOffset / v.lineHeight
}

// LineY returns the client y of the top of line.
func (v *Viewport) LineY(line int) int {
	return line*v.lineHeight - v.verticalOffset
}

// LineAtY returns the line under client y. The result is not clamped.
func (v *Viewport) LineAtY(y int) int {
	return (y + v.verticalOffset) / v.lineHeight
}

// MaxHorizontalOffset returns the largest useful horizontal offset.
func (v *Viewport) MaxHorizontalOffset() int {
	return max(0, v.contentWidth-v.width)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	if a <= 0 {
		return -((-a) / b)
	}
	return (a + b - 1) / b
}
