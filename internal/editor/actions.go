package editor

import "github.com/dshills/styledtext/internal/engine/selection"

// Action is an editing command that can be bound to a key.
type Action int

// Navigation actions move the caret and drop the selection. Their Select
// variants extend the selection instead.
const (
	ActionNone Action = iota

	LineUp
	LineDown
	LineStart
	LineEnd
	ColumnPrevious
	ColumnNext
	PageUp
	PageDown
	WordPrevious
	WordNext
	TextStart
	TextEnd
	WindowStart
	WindowEnd

	SelectLineUp
	SelectLineDown
	SelectLineStart
	SelectLineEnd
	SelectColumnPrevious
	SelectColumnNext
	SelectPageUp
	SelectPageDown
	SelectWordPrevious
	SelectWordNext
	SelectTextStart
	SelectTextEnd
	SelectWindowStart
	SelectWindowEnd

	Cut
	Copy
	Paste
	DeletePrevious
	DeleteNext
	ToggleOverwrite
)

var actionNames = map[Action]string{
	LineUp:               "line.up",
	LineDown:             "line.down",
	LineStart:            "line.start",
	LineEnd:              "line.end",
	ColumnPrevious:       "column.previous",
	ColumnNext:           "column.next",
	PageUp:               "page.up",
	PageDown:             "page.down",
	WordPrevious:         "word.previous",
	WordNext:             "word.next",
	TextStart:            "text.start",
	TextEnd:              "text.end",
	WindowStart:          "window.start",
	WindowEnd:            "window.end",
	SelectLineUp:         "select.line.up",
	SelectLineDown:       "select.line.down",
	SelectLineStart:      "select.line.start",
	SelectLineEnd:        "select.line.end",
	SelectColumnPrevious: "select.column.previous",
	SelectColumnNext:     "select.column.next",
	SelectPageUp:         "select.page.up",
	SelectPageDown:       "select.page.down",
	SelectWordPrevious:   "select.word.previous",
	SelectWordNext:       "select.word.next",
	SelectTextStart:      "select.text.start",
	SelectTextEnd:        "select.text.end",
	SelectWindowStart:    "select.window.start",
	SelectWindowEnd:      "select.window.end",
	Cut:                  "edit.cut",
	Copy:                 "edit.copy",
	Paste:                "edit.paste",
	DeletePrevious:       "delete.previous",
	DeleteNext:           "delete.next",
	ToggleOverwrite:      "toggle.overwrite",
}

// String returns the action name, e.g. "select.word.next".
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InvokeAction runs an editing command.
func (e *Editor) InvokeAction(a Action) {
	switch a {
	case LineUp:
		e.doLineUp()
		e.clearSelection(true)
	case LineDown:
		e.doLineDown(true)
		e.clearSelection(true)
	case LineStart:
		e.doLineStart(e.sel.Caret())
		e.clearSelection(true)
	case LineEnd:
		e.doLineEnd()
		e.clearSelection(true)
	case ColumnPrevious:
		e.doCursorPrevious()
		e.clearSelection(true)
	case ColumnNext:
		e.doCursorNext()
		e.clearSelection(true)
	case PageUp:
		e.doPageUp(false)
		e.clearSelection(true)
	case PageDown:
		e.doPageDown(false)
		e.clearSelection(true)
	case WordPrevious:
		e.doWordPrevious()
		e.clearSelection(true)
	case WordNext:
		e.doWordNext()
		e.clearSelection(true)
	case TextStart:
		e.doContentStart()
		e.clearSelection(true)
	case TextEnd:
		e.doContentEnd()
		e.clearSelection(true)
	case WindowStart:
		e.doPageStart()
		e.clearSelection(true)
	case WindowEnd:
		e.doPageEnd()
		e.clearSelection(true)

	case SelectLineUp:
		e.doLineUp()
		e.doSelection(selection.TowardStart)
	case SelectLineDown:
		e.doLineDown(false)
		e.doSelection(selection.TowardEnd)
		e.showCaret()
	case SelectLineStart:
		e.doLineStart(e.sel.Selection().Start)
		e.doSelection(selection.TowardStart)
	case SelectLineEnd:
		e.doSelectionLineEnd()
		e.doSelection(selection.TowardEnd)
	case SelectColumnPrevious:
		e.doCharPrevious()
		e.doSelection(selection.TowardStart)
	case SelectColumnNext:
		e.doCharNext()
		e.doSelection(selection.TowardEnd)
	case SelectPageUp:
		e.doPageUp(true)
	case SelectPageDown:
		e.doPageDown(true)
	case SelectWordPrevious:
		e.doWordStart()
		e.doSelection(selection.TowardStart)
	case SelectWordNext:
		e.doWordEnd()
		e.doSelection(selection.TowardEnd)
	case SelectTextStart:
		e.doContentStart()
		e.doSelection(selection.TowardStart)
	case SelectTextEnd:
		e.doContentEnd()
		e.doSelection(selection.TowardEnd)
	case SelectWindowStart:
		e.doPageStart()
		e.doSelection(selection.TowardStart)
	case SelectWindowEnd:
		e.doPageEnd()
		e.doSelection(selection.TowardEnd)

	case Cut:
		e.logClipboardError(a, e.Cut())
	case Copy:
		e.logClipboardError(a, e.Copy())
	case Paste:
		e.logClipboardError(a, e.Paste())
	case DeletePrevious:
		e.doBackspace()
		e.clearSelection(true)
	case DeleteNext:
		e.doDelete()
		e.clearSelection(true)
	case ToggleOverwrite:
		e.overwrite = !e.overwrite
	}
}

func (e *Editor) logClipboardError(a Action, err error) {
	if err != nil {
		e.log.Warn().Err(err).Stringer("action", a).Msg("clipboard action failed")
	}
}
