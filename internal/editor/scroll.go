package editor

import (
	"github.com/dshills/styledtext/internal/renderer/core"
	"github.com/dshills/styledtext/internal/renderer/layout"
)

// setVerticalScrollOffset scrolls to px. Lines that scroll into view are
// measured; when the jump exceeds a page the whole client area is.
func (e *Editor) setVerticalScrollOffset(px int) {
	vOff := e.view.VerticalOffset()
	if px == vOff {
		return
	}
	e.damage.Scroll(0, 0, 0, px-vOff, e.view.Width(), e.view.Height())
	oldTop := e.view.SetVerticalOffset(px)
	newTop := e.view.TopIndex()
	if newTop != oldTop {
		n := e.doc.LineCount()
		visible := e.view.PartialLineCount()
		diff := newTop - oldTop
		switch {
		case abs(diff) > visible:
			e.calculateVisibleContentWidth()
		case diff > 0:
			oldBottom := min(oldTop+visible, n)
			e.calculateContentWidth(oldBottom, min(diff, n-oldBottom))
		default:
			e.calculateContentWidth(newTop, min(-diff, n-newTop))
		}
		e.setScrollBars()
	}
	e.setCaretLocation()
}

// scrollHorizontal moves the view px pixels to the right.
func (e *Editor) scrollHorizontal(px int) {
	if px == 0 {
		return
	}
	e.damage.Scroll(-px, 0, 0, 0, e.view.Width(), e.view.Height())
	e.view.ScrollHorizontal(px)
	e.setScrollBars()
	e.setCaretLocation()
}

// SetVerticalScrollOffset scrolls to px, as a scroll bar drag does.
func (e *Editor) SetVerticalScrollOffset(px int) {
	n := e.doc.LineCount()
	px = max(0, min(px, n*e.view.LineHeight()-e.view.Height()))
	e.setVerticalScrollOffset(px)
}

// VerticalScrollOffset returns the vertical scroll offset in pixels.
func (e *Editor) VerticalScrollOffset() int {
	return e.view.VerticalOffset()
}

// TopIndex returns the first line whose top is visible.
func (e *Editor) TopIndex() int {
	return e.view.TopIndex()
}

// SetTopIndex scrolls line to the top, as far as the document allows.
func (e *Editor) SetTopIndex(top int) {
	if e.doc.CharCount() == 0 {
		return
	}
	n := e.doc.LineCount()
	page := min(n, e.view.LineCountWhole())
	top = max(0, min(top, n-page))
	e.setVerticalScrollOffset(top * e.view.LineHeight())
	e.view.SetTopIndex(top)
}

// HorizontalIndex returns the horizontal scroll offset in characters.
func (e *Editor) HorizontalIndex() int {
	return e.view.HorizontalOffset() / e.avgCharWidth()
}

// SetHorizontalIndex scrolls offset characters to the left edge.
func (e *Editor) SetHorizontalIndex(offset int) {
	if e.doc.CharCount() == 0 {
		return
	}
	e.SetHorizontalPixel(max(0, offset) * e.avgCharWidth())
}

// HorizontalPixel returns the horizontal scroll offset in pixels.
func (e *Editor) HorizontalPixel() int {
	return e.view.HorizontalOffset()
}

// SetHorizontalPixel scrolls to px. The offset is limited to the content
// width once the client area is known.
func (e *Editor) SetHorizontalPixel(px int) {
	if e.doc.CharCount() == 0 {
		return
	}
	px = max(0, px)
	if e.view.Width() > 0 {
		px = min(px, e.view.MaxHorizontalOffset())
	}
	e.scrollHorizontal(px - e.view.HorizontalOffset())
}

func (e *Editor) avgCharWidth() int {
	return max(1, e.metrics.AverageCharWidth())
}

// showLocation scrolls so that x on line is visible. Horizontal reveals
// overshoot by a quarter of the client width. It reports whether the view
// scrolled.
func (e *Editor) showLocation(line, x int) bool {
	cw, ch := e.view.Width(), e.view.Height()
	if cw <= 0 || ch <= 0 {
		return false
	}
	// the line is about to become visible; its width bounds the reveal
	e.calculateContentWidth(line, 1)
	scrolled := false
	hOff := e.view.HorizontalOffset()
	inc := cw / 4
	switch {
	case x < 0:
		e.scrollHorizontal(max(-hOff, x-inc))
		scrolled = true
	case x+layout.CaretWidth > cw:
		if px := min(e.view.ContentWidth()-hOff, x+inc) - cw; px > 0 {
			e.scrollHorizontal(px)
			scrolled = true
		}
	}
	lh := e.view.LineHeight()
	if line < e.view.TopIndex() {
		e.setVerticalScrollOffset(line * lh)
		scrolled = true
	} else if bottom := e.view.BottomIndex(e.doc.LineCount()); line > bottom {
		e.setVerticalScrollOffset((line-bottom)*lh + e.view.VerticalOffset())
		scrolled = true
	}
	return scrolled
}

// ShowCaret scrolls the caret into view.
func (e *Editor) ShowCaret() {
	e.showCaret()
}

func (e *Editor) showCaret() {
	caret := e.sel.Caret()
	line := e.lineAt(caret)
	text, lineOffset := e.line(line)
	if !e.showLocation(line, e.xAtOffset(text, lineOffset, caret-lineOffset)) {
		e.setCaretLocation()
	}
}

// ShowOffset scrolls offset into view.
func (e *Editor) ShowOffset(offset int) {
	line := e.lineAt(offset)
	text, lineOffset := e.line(line)
	e.showLocation(line, e.xAtOffset(text, lineOffset, offset-lineOffset))
}

// ShowSelection scrolls the selection into view, its start first.
func (e *Editor) ShowSelection() {
	sel := e.sel.Selection()
	e.ShowOffset(sel.Start)
	e.ShowOffset(sel.End)
}

// setCaretLocation recomputes the client position of the caret.
func (e *Editor) setCaretLocation() {
	caret := e.sel.Caret()
	line := e.lineAt(caret)
	text, lineOffset := e.line(line)
	e.caret = core.Point{
		X: e.xAtOffset(text, lineOffset, caret-lineOffset),
		Y: e.view.LineY(line),
	}
}

// CaretLocation returns the client position of the caret.
func (e *Editor) CaretLocation() core.Point {
	return e.caret
}

// Resize changes the client area. Lines that come into view are measured
// and free space at the bottom and right is filled by scrolling back.
func (e *Editor) Resize(width, height int) {
	oldWidth, oldHeight := e.view.SetSize(width, height)
	e.damage.SetClientSize(e.view.Width(), e.view.Height())
	if h := e.view.Height(); h > oldHeight {
		n := e.doc.LineCount()
		lh := e.view.LineHeight()
		oldBottom := min(e.view.TopIndex()+oldHeight/lh, n)
		newItems := min((h-oldHeight+lh-1)/lh, n-oldBottom)
		e.calculateContentWidth(oldBottom, newItems)
	}
	e.setScrollBars()
	e.claimBottomFreeSpace()
	e.claimRightFreeSpace()
	e.setCaretLocation()
	if oldWidth != e.view.Width() || oldHeight != e.view.Height() {
		e.damage.RedrawAll()
	}
}

// claimBottomFreeSpace scrolls up when the last line is above the bottom
// of the client area while lines are hidden above the top.
func (e *Editor) claimBottomFreeSpace() {
	top := e.view.TopIndex()
	whole := e.view.LineCountWhole()
	last := e.doc.LineCount() - top
	if top > 0 && last > 0 && last < whole {
		e.SetTopIndex(max(0, top-(whole-last)))
	}
}

// claimRightFreeSpace scrolls left when the widest line ends before the
// right edge of the client area.
func (e *Editor) claimRightFreeSpace() {
	maxOffset := e.view.MaxHorizontalOffset()
	if hOff := e.view.HorizontalOffset(); maxOffset < hOff {
		e.scrollHorizontal(maxOffset - hOff)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
