package editor

import "github.com/dshills/styledtext/internal/renderer/layout"

// redrawMultiLineChange blits everything below the edited line by the
// change in line count, then repaints the edited line from x and any newly
// inserted lines.
func (e *Editor) redrawMultiLineChange(x, y, newLines, replacedLines int) {
	lh := e.view.LineHeight()
	cw, ch := e.view.Width(), e.view.Height()
	delta := newLines - replacedLines
	var src, dest int
	if delta > 0 {
		src = y + lh
		dest = y + delta*lh + lh
	} else {
		src = y - delta*lh + lh
		dest = y + lh
	}
	e.damage.Scroll(0, dest, 0, src, cw, ch)
	e.damage.Redraw(x, y, cw, lh)
	if newLines > 0 {
		e.damage.Redraw(0, y+lh, cw, newLines*lh)
	}
}

// redrawSingleLineChange shifts the rest of a line horizontally after a
// pure insert or delete. A replace that ends where the old text ended
// repaints only [x, stopX); other changes repaint the line from x.
func (e *Editor) redrawSingleLineChange(x, y, newCount, replacedCount, stopX, oldStopX int) {
	lh := e.view.LineHeight()
	cw := e.view.Width()
	switch {
	case replacedCount > 0 && newCount == 0:
		e.damage.Scroll(x, y, stopX, y, cw, lh)
	case replacedCount == 0 && newCount > 0:
		e.damage.Scroll(stopX, y, x, y, cw, lh)
	case stopX == oldStopX:
		e.damage.Redraw(x, y, stopX-x, lh)
	default:
		e.damage.Redraw(x, y, cw, lh)
	}
}

// redrawSingleLineTabChange handles a single line edit followed by a tab.
// Text after the tab only moves when the tab stop it reaches changed.
func (e *Editor) redrawSingleLineTabChange(x, y, newTabX, oldTabX int) {
	lh := e.view.LineHeight()
	if newTabX == oldTabX {
		e.damage.Redraw(x, y, newTabX-x, lh)
		return
	}
	e.damage.Scroll(newTabX, y, oldTabX, y, e.view.Width(), lh)
	width := newTabX - x
	if newTabX > oldTabX {
		width = oldTabX - x
	}
	e.damage.Redraw(x, y, width, lh)
}

// redrawRange repaints the pixels of [start, start+length) that are
// visible. A range reaching past a line end includes the line break,
// drawn as the width of a space.
func (e *Editor) redrawRange(start, length int) {
	n := e.doc.LineCount()
	end := min(start+length, e.doc.CharCount())
	start = max(0, min(start, end))
	firstLine := e.lineAt(start)
	lastLine := e.lineAt(end)
	partialTop := e.view.PartialTopIndex()
	partialBottom := e.view.PartialBottomIndex(n)
	if firstLine > partialBottom || lastLine < partialTop {
		return
	}

	lh := e.view.LineHeight()
	cw := e.view.Width()
	if partialTop > firstLine {
		firstLine = partialTop
		_, start = e.line(firstLine)
	}
	if partialBottom+1 < lastLine {
		lastLine = partialBottom + 1
		_, end = e.line(lastLine)
	}

	text, lineOffset := e.line(firstLine)
	startX := e.xAtOffset(text, lineOffset, start-lineOffset)
	endX := e.xAtOffset(text, lineOffset, end-lineOffset)
	y := e.view.LineY(firstLine)
	e.damage.Redraw(startX, y, endX-startX, lh)
	if lastLine == firstLine {
		return
	}

	text, lineOffset = e.line(lastLine)
	if offsetInLast := end - lineOffset; offsetInLast > 0 {
		e.damage.Redraw(0, e.view.LineY(lastLine), e.xAtOffset(text, lineOffset, offsetInLast), lh)
	}
	if lastLine-firstLine > 1 {
		e.damage.Redraw(0, y+lh, cw, (lastLine-firstLine-1)*lh)
	}
}

// redrawLines repaints the visible part of count lines from startLine.
func (e *Editor) redrawLines(startLine, count int) {
	n := e.doc.LineCount()
	last := startLine + count - 1
	partialTop := e.view.PartialTopIndex()
	partialBottom := e.view.PartialBottomIndex(n)
	if count <= 0 || startLine > partialBottom || last < partialTop {
		return
	}
	startLine = max(startLine, partialTop)
	last = min(last, partialBottom)
	lh := e.view.LineHeight()
	e.damage.Redraw(0, e.view.LineY(startLine), e.view.Width(), (last-startLine+1)*lh)
}

// calculateContentWidth grows the content width to cover count lines from
// startLine. A negative count measures the lines before startLine.
func (e *Editor) calculateContentWidth(startLine, count int) {
	if count < 0 {
		startLine += count
		count = -count
	}
	stop := min(startLine+count, e.doc.LineCount())
	for i := max(0, startLine); i < stop; i++ {
		text, _ := e.line(i)
		e.view.GrowContentWidth(e.widths.Width(i, text) + layout.CaretWidth)
	}
}

// calculateVisibleContentWidth measures the lines in the client area.
func (e *Editor) calculateVisibleContentWidth() {
	top := e.view.TopIndex()
	e.calculateContentWidth(top, min(e.view.PartialLineCount(), e.doc.LineCount()-top))
}

func (e *Editor) setScrollBars() {
	e.vertical, e.horizontal = e.view.ScrollBars(e.doc.LineCount())
}
