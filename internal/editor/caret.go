package editor

import (
	"fmt"

	"github.com/dshills/styledtext/internal/engine/selection"
)

// CaretOffset returns the caret offset.
func (e *Editor) CaretOffset() int {
	return e.sel.Caret()
}

// SetCaretOffset moves the caret, clamped to the document, and clears the
// selection without notifying listeners.
func (e *Editor) SetCaretOffset(offset int) {
	n := e.doc.CharCount()
	if n > 0 && offset != e.sel.Caret() {
		e.sel.MoveCaret(max(0, min(offset, n)))
		e.clearSelection(false)
	}
	e.setCaretLocation()
}

// Selection returns the selected range.
func (e *Editor) Selection() selection.Range {
	return e.sel.Selection()
}

// SelectionCount returns the number of selected characters.
func (e *Editor) SelectionCount() int {
	return e.sel.Selection().Len()
}

// SelectionText returns the selected text.
func (e *Editor) SelectionText() string {
	sel := e.sel.Selection()
	text, _ := e.doc.TextRange(sel.Start, sel.Len())
	return text
}

// SetSelection selects [start, end) and scrolls it into view.
func (e *Editor) SetSelection(start, end int) error {
	if start > end {
		return fmt.Errorf("selection [%d,%d): %w", start, end, ErrInvalidRange)
	}
	if err := e.SetSelectionRange(start, end-start); err != nil {
		return err
	}
	e.ShowSelection()
	return nil
}

// SetSelectionRange selects length characters from start. A negative
// length selects backwards, leaving the caret at the start.
func (e *Editor) SetSelectionRange(start, length int) error {
	lo, hi := start, start+length
	if length < 0 {
		lo, hi = hi, lo
	}
	if lo < 0 || hi > e.doc.CharCount() {
		return fmt.Errorf("selection range [%d,%+d): %w", start, length, ErrInvalidRange)
	}
	e.internalSetSelection(start, length, false)
	e.setCaretLocation()
	return nil
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	_ = e.SetSelection(0, e.doc.CharCount()) // always in range
}

// ClearSelection drops the selection, leaving the caret in place. With
// notify, selection listeners are told when something was selected.
func (e *Editor) ClearSelection(notify bool) {
	e.clearSelection(notify)
}

// selectionOrCaret returns the selection, or an empty range at the caret.
func (e *Editor) selectionOrCaret() selection.Range {
	if sel := e.sel.Selection(); !sel.IsEmpty() {
		return sel
	}
	caret := e.sel.Caret()
	return selection.Range{Start: caret, End: caret}
}

// internalSetSelection selects length characters from start and repaints
// the old and new selection when they differ.
func (e *Editor) internalSetSelection(start, length int, notify bool) {
	end := start + length
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	sel := e.sel.Selection()
	if sel.Start == lo && sel.End == hi && (length != 0 || e.sel.Caret() == lo) {
		return
	}
	e.clearSelection(notify)
	if length < 0 {
		e.sel.SelectBackward(lo, hi)
	} else {
		e.sel.Select(lo, hi-lo)
	}
	e.redrawRange(lo, hi-lo)
}

// clearSelection collapses the selection to the caret and repaints what
// was selected.
func (e *Editor) clearSelection(notify bool) {
	old := e.sel.Collapse()
	if old.IsEmpty() {
		return
	}
	n := e.doc.CharCount()
	start, end := min(old.Start, n), min(old.End, n)
	e.redrawRange(start, end-start)
	if notify {
		e.sendSelectionEvent()
	}
}

// doSelection extends the selection to the caret on the given side and
// repaints only the span whose selected state changed.
func (e *Editor) doSelection(dir selection.Direction) {
	changed, ok := e.sel.Extend(dir)
	if !ok {
		return
	}
	e.redrawRange(changed.Start, changed.Len())
	e.sendSelectionEvent()
}

// doMouseSelection extends the selection to the caret on the side the
// pointer moved to.
func (e *Editor) doMouseSelection() {
	e.doSelection(e.sel.MouseDirection())
}
