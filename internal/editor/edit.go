package editor

import (
	"fmt"
	"unicode/utf8"
)

// ReplaceTextRange replaces length characters at start with text. The
// change passes through the verify listeners; the caret is not moved
// unless the selection has to follow the edit.
func (e *Editor) ReplaceTextRange(start, length int, text string) error {
	end := start + length
	if start < 0 || length < 0 || end > e.doc.CharCount() {
		return fmt.Errorf("replace text range [%d,+%d): %w", start, length, ErrInvalidRange)
	}
	if _, err := e.modifyContent(start, end, text, false); err != nil {
		return fmt.Errorf("replace text range: %w", err)
	}
	return nil
}

// SetText replaces the whole document. Styles and the scroll position are
// reset.
func (e *Editor) SetText(text string) error {
	p := &pendingEdit{start: 0, end: e.doc.CharCount(), text: text}
	if _, err := e.runPipeline(p, e.setTextStages); err != nil {
		return fmt.Errorf("set text: %w", err)
	}
	return nil
}

// Insert replaces the selection with text.
func (e *Editor) Insert(text string) error {
	sel := e.sel.Selection()
	return e.ReplaceTextRange(sel.Start, sel.Len(), text)
}

// Append adds text at the end of the document.
func (e *Editor) Append(text string) error {
	return e.ReplaceTextRange(e.doc.CharCount(), 0, text)
}

// doContent types key over the selection. Line breaks insert the document
// delimiter; in overwrite mode a character replaces the one after the
// caret unless the caret is at a line end.
func (e *Editor) doContent(key rune) {
	sel := e.selectionOrCaret()
	if e.textLimit > 0 && e.doc.CharCount()-sel.Len() >= e.textLimit {
		e.log.Debug().Int("limit", e.textLimit).Msg("text limit reached")
		return
	}
	start, end := sel.Start, sel.End
	text := string(key)
	switch {
	case key == '\r' || key == '\n':
		text = e.doc.LineDelimiter()
	case sel.IsEmpty() && e.overwrite && key != '\t':
		line := e.lineAt(start)
		lineText, lineOffset := e.line(line)
		if start < lineOffset+utf8.RuneCountInString(lineText) {
			end++
		}
	}
	e.sendKeyEvent(start, end, text)
}

// sendKeyEvent applies a keyboard edit and moves the caret behind it.
func (e *Editor) sendKeyEvent(start, end int, text string) {
	if !e.editable {
		return
	}
	if _, err := e.modifyContent(start, end, text, true); err != nil {
		e.log.Error().Err(err).Int("start", start).Int("end", end).Msg("key edit failed")
	}
}

// doBackspace deletes the selection or the character before the caret.
// At a line start the whole line break is deleted.
func (e *Editor) doBackspace() {
	sel := e.sel.Selection()
	caret := e.sel.Caret()
	switch {
	case !sel.IsEmpty():
		e.sendKeyEvent(sel.Start, sel.End, "")
	case caret > 0:
		line := e.lineAt(caret)
		if _, lineOffset := e.line(line); caret == lineOffset {
			prev, prevOffset := e.line(line - 1)
			e.sendKeyEvent(prevOffset+utf8.RuneCountInString(prev), caret, "")
		} else {
			e.sendKeyEvent(caret-1, caret, "")
		}
	}
	e.claimBottomFreeSpace()
}

// doDelete deletes the selection or the character after the caret. At a
// line end the whole line break is deleted.
func (e *Editor) doDelete() {
	sel := e.sel.Selection()
	caret := e.sel.Caret()
	switch {
	case !sel.IsEmpty():
		e.sendKeyEvent(sel.Start, sel.End, "")
	case caret < e.doc.CharCount():
		line := e.lineAt(caret)
		text, lineOffset := e.line(line)
		if caret == lineOffset+utf8.RuneCountInString(text) {
			next, _ := e.doc.OffsetAtLine(line + 1)
			e.sendKeyEvent(caret, next, "")
		} else {
			e.sendKeyEvent(caret, caret+1, "")
		}
	}
	e.claimBottomFreeSpace()
}

// Cut copies the selection to the clipboard and deletes it.
func (e *Editor) Cut() error {
	if !e.sel.HasSelection() {
		return nil
	}
	if err := e.Copy(); err != nil {
		return err
	}
	e.doDelete()
	return nil
}

// Copy puts the selected text on the clipboard with the platform line
// delimiter.
func (e *Editor) Copy() error {
	sel := e.sel.Selection()
	if sel.IsEmpty() {
		return nil
	}
	text, err := e.PlainText(sel.Start, sel.Len(), e.delimiter)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := e.clipboard.Write(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Paste replaces the selection with the clipboard text, converted to the
// document delimiter. Text beyond the text limit is dropped.
func (e *Editor) Paste() error {
	text, err := e.clipboard.Read()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return nil
	}
	text = e.doc.DelimitedText(text)
	sel := e.selectionOrCaret()
	if e.textLimit > 0 {
		room := e.textLimit - (e.doc.CharCount() - sel.Len())
		if room <= 0 {
			e.log.Debug().Int("limit", e.textLimit).Msg("text limit reached")
			return nil
		}
		if runes := []rune(text); len(runes) > room {
			text = string(runes[:room])
		}
	}
	e.sendKeyEvent(sel.Start, sel.End, text)
	return nil
}
