package editor

import (
	"strings"

	"github.com/dshills/styledtext/internal/engine/document"
)

// handleTextChanged brings the overlay, content width, scroll bars, screen
// and selection up to date after the document replaced a range.
//
// Positions on the edited line are measured before the overlay moves its
// ranges, against the line as it was, so that the blit source matches the
// pixels still on screen.
func (e *Editor) handleTextChanged(ev document.ChangeEvent) {
	ev = ev.Normalize()
	lh := e.view.LineHeight()
	visible := e.view.PartialLineCount()
	firstLine := e.lineAt(ev.Start)
	newText, lineOffset := e.line(firstLine)
	offsetInLine := ev.Start - lineOffset
	multiLine := ev.IsMultiLine()

	changeX, stopX, oldStopX, oldTabX := -1, -1, -1, 0
	if !multiLine {
		oldText := oldLine(newText, offsetInLine, ev)
		oldTab := indexTab(oldText, offsetInLine+ev.ReplacedCharCount)
		oldTabX = e.xAtOffset(oldText, lineOffset, oldTab+1)
		switch {
		case ev.NewCharCount == 0:
			stopX = e.xAtOffset(oldText, lineOffset, offsetInLine+ev.ReplacedCharCount)
		case ev.ReplacedCharCount == 0:
			changeX = e.xAtOffset(oldText, lineOffset, offsetInLine)
		default:
			oldStopX = e.xAtOffset(oldText, lineOffset, offsetInLine+ev.ReplacedCharCount)
		}
	}

	e.overlay.TextChanged(ev, firstLine)
	e.widths.ShiftLines(firstLine+ev.ReplacedLineCount+1, ev.NewLineCount-ev.ReplacedLineCount)

	top := e.view.TopIndex()
	stopLine := firstLine + ev.NewLineCount + 1
	if stopLine > top && firstLine < top+visible {
		start := max(firstLine, top)
		e.calculateContentWidth(start, min(stopLine, top+visible)-start)
	}
	e.setScrollBars()

	changeY := firstLine*lh - e.view.VerticalOffset()
	if changeX == -1 {
		changeX = e.xAtOffset(newText, lineOffset, offsetInLine)
	}
	if multiLine {
		e.redrawMultiLineChange(changeX, changeY, ev.NewLineCount, ev.ReplacedLineCount)
	} else if newTab := indexTab(newText, offsetInLine+ev.NewCharCount); newTab != -1 {
		newTabX := e.xAtOffset(newText, lineOffset, newTab+1)
		e.redrawSingleLineTabChange(changeX, changeY, newTabX, oldTabX)
	} else {
		if stopX == -1 {
			stopX = e.xAtOffset(newText, lineOffset, offsetInLine+ev.NewCharCount)
		}
		e.redrawSingleLineChange(changeX, changeY, ev.NewCharCount, ev.ReplacedCharCount, stopX, oldStopX)
	}

	e.updateSelection(ev.Start, ev.ReplacedCharCount, ev.NewCharCount)
}

// oldLine rebuilds a single line as it was before ev.
func oldLine(text string, offsetInLine int, ev document.ChangeEvent) string {
	runes := []rune(text)
	var b strings.Builder
	b.WriteString(string(runes[:offsetInLine]))
	b.WriteString(ev.ReplacedText)
	b.WriteString(string(runes[offsetInLine+ev.NewCharCount:]))
	return b.String()
}

// indexTab returns the index of the first tab at or after from, or -1.
func indexTab(text string, from int) int {
	runes := []rune(text)
	for i := max(0, from); i < len(runes); i++ {
		if runes[i] == '\t' {
			return i
		}
	}
	return -1
}

// updateSelection moves or collapses the selection after an edit and
// repaints the selected spans whose position changed.
func (e *Editor) updateSelection(start, replaced, inserted int) {
	up := e.sel.AdjustForEdit(start, replaced, inserted)
	for _, r := range up.Redraw {
		e.redrawRange(r.Start, r.Len())
	}
	if up.Reselect {
		e.internalSetSelection(up.Start, up.Length, true)
		e.setCaretLocation()
	}
}
