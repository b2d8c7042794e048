package editor

import (
	"time"

	"github.com/dshills/styledtext/internal/engine/selection"
	"github.com/dshills/styledtext/internal/renderer/backend"
	"github.com/dshills/styledtext/internal/renderer/viewport"
)

// Scheduler runs fn once after d. fn must run on the goroutine that owns
// the editor.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// MouseDown places the caret at client (x, y). With extend the selection
// grows to the new caret; otherwise it is cleared. Only the left button
// acts.
func (e *Editor) MouseDown(x, y int, button backend.MouseButton, extend bool) {
	if button != backend.MouseLeft {
		return
	}
	e.dragging = true
	e.mouseDoubleClick = false
	e.doMouseLocationChange(x, y, extend)
}

// MouseMove extends the selection while the left button is held and
// starts autoscrolling when the pointer leaves the client area.
func (e *Editor) MouseMove(x, y int) {
	if !e.dragging || e.mouseDoubleClick {
		return
	}
	e.doMouseLocationChange(x, y, true)
	e.doAutoScroll(x, y)
}

// MouseUp ends a drag.
func (e *Editor) MouseUp() {
	e.dragging = false
	e.endAutoScroll()
}

// MouseDoubleClick selects the word at client (x, y). Further moves of
// the same press do not change the selection.
func (e *Editor) MouseDoubleClick(x, y int) {
	if !e.doubleClickEnabled {
		return
	}
	e.doMouseLocationChange(x, y, false)
	e.mouseDoubleClick = true
	e.sel.MoveCaret(selection.WordEndNoSpaces(e.doc, e.sel.Caret()))
	e.sel.Collapse()
	e.sel.MoveCaret(selection.WordStart(e.doc, e.sel.Caret()))
	e.showCaret()
	e.doMouseSelection()
}

// doMouseLocationChange moves the caret to the character nearest client
// (x, y). Dragging past the end of a line whose start anchors the
// selection takes the whole line including its break.
func (e *Editor) doMouseLocationChange(x, y int, extend bool) {
	n := e.doc.LineCount()
	line := max(0, min(e.view.LineAtY(y), n-1))
	text, lineOffset := e.line(line)
	var offset int
	if extend && e.sel.Selection().Start == lineOffset && line < n-1 &&
		x+e.view.HorizontalOffset() > e.measure.TextWidth(text, lineOffset, e.overlay.LineStyles(lineOffset, text), len([]rune(text))) {
		offset, _ = e.doc.OffsetAtLine(line + 1)
	} else {
		offset = lineOffset + e.offsetAtX(text, lineOffset, x)
	}
	if offset != e.sel.Caret() {
		e.sel.MoveCaret(offset)
		if extend {
			e.doMouseSelection()
		}
		e.showCaret()
	}
	if !extend {
		e.clearSelection(true)
	}
}

// AutoScrollDirection returns the direction of the running autoscroll.
func (e *Editor) AutoScrollDirection() viewport.ScrollDirection {
	return e.autoScroll
}

// doAutoScroll starts or retargets autoscrolling for a pointer at client
// (x, y).
func (e *Editor) doAutoScroll(x, y int) {
	dir := e.view.DirectionFor(x, y)
	if dir == viewport.ScrollNone {
		e.endAutoScroll()
		return
	}
	if dir == e.autoScroll {
		return
	}
	e.autoScroll = dir
	e.autoScrollGen++
	e.log.Debug().Stringer("direction", dir).Msg("autoscroll start")
	e.scheduleAutoScroll(dir, e.autoScrollGen)
}

// endAutoScroll cancels autoscrolling. A pending tick sees a newer
// generation and does not reschedule.
func (e *Editor) endAutoScroll() {
	if e.autoScroll != viewport.ScrollNone {
		e.log.Debug().Stringer("direction", e.autoScroll).Msg("autoscroll stop")
		e.autoScrollGen++
	}
	e.autoScroll = viewport.ScrollNone
}

// scheduleAutoScroll queues the next tick of chain gen.
func (e *Editor) scheduleAutoScroll(dir viewport.ScrollDirection, gen uint64) {
	if e.scheduler == nil {
		return
	}
	rate := verticalScrollRate
	if dir == viewport.ScrollLeft || dir == viewport.ScrollRight {
		rate = horizontalScrollRate
	}
	e.scheduler.After(rate, func() { e.autoScrollTick(dir, gen) })
}

// autoScrollTick is one step of the repeating autoscroll task for dir. Only
// the chain started by the latest retarget keeps running.
func (e *Editor) autoScrollTick(dir viewport.ScrollDirection, gen uint64) {
	if gen != e.autoScrollGen || e.autoScroll != dir {
		return
	}
	switch dir {
	case viewport.ScrollUp:
		e.doLineUp()
		e.doSelection(selection.TowardStart)
	case viewport.ScrollDown:
		e.doLineDown(false)
		e.doSelection(selection.TowardEnd)
		e.showCaret()
	case viewport.ScrollLeft:
		e.doColumnLeft()
		e.doSelection(selection.TowardStart)
	case viewport.ScrollRight:
		e.doColumnRight()
		e.doSelection(selection.TowardEnd)
	}
	e.scheduleAutoScroll(dir, gen)
}
