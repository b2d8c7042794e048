package editor

import (
	"unicode/utf8"

	"github.com/dshills/styledtext/internal/engine/selection"
)

// moveCaret places the caret at to and scrolls it into view. It reports
// whether the caret moved.
func (e *Editor) moveCaret(to int) bool {
	if to == e.sel.Caret() {
		return false
	}
	e.sel.MoveCaret(to)
	e.showCaret()
	return true
}

func (e *Editor) doLineUp() {
	e.moveCaret(selection.LineUp(e.doc, e.sel.Caret()))
}

// doLineDown moves to the next line. Without show the caret is not
// scrolled into view, so that a selection can be extended first.
func (e *Editor) doLineDown(show bool) {
	to := selection.LineDown(e.doc, e.sel.Caret())
	if !show {
		e.sel.MoveCaret(to)
		return
	}
	e.moveCaret(to)
}

func (e *Editor) doLineStart(selStart int) {
	e.moveCaret(selection.LineStart(e.doc, e.sel.Caret(), selStart))
}

func (e *Editor) doLineEnd() {
	e.moveCaret(selection.LineEnd(e.doc, e.sel.Caret()))
}

func (e *Editor) doSelectionLineEnd() {
	e.moveCaret(selection.SelectionLineEnd(e.doc, e.sel.Caret(), e.sel.Selection().Start))
}

// doCursorPrevious moves to the selection start, or one character back
// when nothing is selected.
func (e *Editor) doCursorPrevious() {
	if sel := e.sel.Selection(); !sel.IsEmpty() {
		e.sel.MoveCaret(sel.Start)
		e.showCaret()
		return
	}
	e.doCharPrevious()
}

// doCursorNext moves to the selection end, or one character forward when
// nothing is selected.
func (e *Editor) doCursorNext() {
	if sel := e.sel.Selection(); !sel.IsEmpty() {
		e.sel.MoveCaret(sel.End)
		e.showCaret()
		return
	}
	e.doCharNext()
}

func (e *Editor) doCharPrevious() {
	e.moveCaret(selection.CharLeft(e.doc, e.sel.Caret()))
}

func (e *Editor) doCharNext() {
	e.moveCaret(selection.CharRight(e.doc, e.sel.Caret()))
}

func (e *Editor) doColumnLeft() {
	e.moveCaret(selection.ColumnLeft(e.doc, e.sel.Caret()))
}

func (e *Editor) doColumnRight() {
	e.moveCaret(selection.ColumnRight(e.doc, e.sel.Caret()))
}

func (e *Editor) doWordPrevious() {
	if sel := e.sel.Selection(); !sel.IsEmpty() {
		e.sel.MoveCaret(sel.Start)
		e.showCaret()
		return
	}
	e.doWordStart()
}

func (e *Editor) doWordNext() {
	if sel := e.sel.Selection(); !sel.IsEmpty() {
		e.sel.MoveCaret(sel.End)
		e.showCaret()
		return
	}
	e.doWordEnd()
}

func (e *Editor) doWordStart() {
	e.moveCaret(selection.WordStart(e.doc, e.sel.Caret()))
}

func (e *Editor) doWordEnd() {
	e.moveCaret(selection.WordEnd(e.doc, e.sel.Caret()))
}

func (e *Editor) doContentStart() {
	e.moveCaret(0)
}

func (e *Editor) doContentEnd() {
	e.moveCaret(e.doc.CharCount())
}

// doPageStart moves to the start of the top line.
func (e *Editor) doPageStart() {
	top := e.view.TopIndex()
	if e.lineAt(e.sel.Caret()) > top {
		_, offset := e.line(top)
		e.moveCaret(offset)
	}
}

// doPageEnd moves to the end of the last fully visible line.
func (e *Editor) doPageEnd() {
	bottom := e.view.BottomIndex(e.doc.LineCount())
	if bottom < 0 {
		return
	}
	text, offset := e.line(bottom)
	if end := offset + utf8.RuneCountInString(text); e.sel.Caret() < end {
		e.moveCaret(end)
	}
}

// doPageDown moves the caret one page down, keeping its column, and
// scrolls by the same number of lines. On the last line the caret moves
// to the end of the text.
func (e *Editor) doPageDown(extend bool) {
	n := e.doc.LineCount()
	caret := e.sel.Caret()
	line := e.lineAt(caret)
	if line >= n-1 {
		if e.moveCaret(e.doc.CharCount()) && extend {
			e.doSelection(selection.TowardEnd)
		}
		return
	}
	_, lineOffset := e.line(line)
	column := caret - lineOffset
	scrollLines := max(1, min(n-line-1, e.view.LineCountWhole()-1))
	line += scrollLines
	text, lineOffset := e.line(line)
	e.sel.MoveCaret(lineOffset + min(column, utf8.RuneCountInString(text)))
	if extend {
		e.doSelection(selection.TowardEnd)
	}

	lh := e.view.LineHeight()
	vOff := e.view.VerticalOffset()
	scrollOffset := vOff + scrollLines*lh
	if maxOffset := n*lh - e.view.Height(); scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset > vOff {
		e.setVerticalScrollOffset(scrollOffset)
	} else {
		e.showCaret()
	}
}

// doPageUp mirrors doPageDown. On the first line the caret moves to the
// start of the text.
func (e *Editor) doPageUp(extend bool) {
	caret := e.sel.Caret()
	line := e.lineAt(caret)
	if line == 0 {
		if e.moveCaret(0) && extend {
			e.doSelection(selection.TowardStart)
		}
		return
	}
	_, lineOffset := e.line(line)
	column := caret - lineOffset
	scrollLines := max(1, min(line, e.view.LineCountWhole()-1))
	line -= scrollLines
	text, lineOffset := e.line(line)
	e.sel.MoveCaret(lineOffset + min(column, utf8.RuneCountInString(text)))
	if extend {
		e.doSelection(selection.TowardStart)
	}

	vOff := e.view.VerticalOffset()
	scrollOffset := max(0, vOff-scrollLines*e.view.LineHeight())
	if scrollOffset < vOff {
		e.setVerticalScrollOffset(scrollOffset)
	} else {
		e.showCaret()
	}
}
