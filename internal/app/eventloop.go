package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/dshills/styledtext/internal/editor"
	"github.com/dshills/styledtext/internal/renderer/backend"
	"github.com/dshills/styledtext/internal/renderer/core"
)

const (
	// doubleClickTime is the longest gap between the clicks of a double click.
	doubleClickTime = 400 * time.Millisecond

	// wheelLines is the number of lines one wheel notch scrolls.
	wheelLines = 3
)

// mouseState tracks the press state tcell leaves to the application.
type mouseState struct {
	pressed      bool
	lastClick    time.Time
	lastX, lastY int
}

// handleEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (a *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		a.layout(ev.Width, ev.Height)
	case backend.EventKey:
		return a.handleKey(ev)
	case backend.EventMouse:
		a.handleMouse(ev)
	case backend.EventInterrupt:
		runInterrupt(ev)
	}
	return nil
}

// handleKey runs the application commands and passes everything else to
// the editor.
func (a *Application) handleKey(ev backend.Event) error {
	k := editor.KeyStrokeFromEvent(ev)
	switch k {
	case editor.Ctrl('q'):
		return ErrQuit
	case editor.Ctrl('s'):
		a.report(a.save())
		return nil
	case editor.Ctrl('e'):
		a.report(a.exportRTF())
		return nil
	case editor.Ctrl('p'):
		a.report(a.snapshot())
		return nil
	}
	a.message = ""
	if !a.editor.HandleKey(k) {
		a.log.Trace().Stringer("key", k).Msg("unbound key")
	}
	return nil
}

// report puts the outcome of a command on the status line.
func (a *Application) report(msg string, err error) {
	if err != nil {
		a.log.Error().Err(err).Msg("command failed")
		a.setMessage(err.Error())
		return
	}
	a.log.Info().Msg(msg)
	a.setMessage(msg)
}

// handleMouse turns tcell's button state reports into press, drag and
// release calls. Coordinates are made relative to the editor area.
func (a *Application) handleMouse(ev backend.Event) {
	bounds := a.canvas.Bounds()
	x, y := ev.MouseX-bounds.X, ev.MouseY-bounds.Y
	switch ev.MouseButton {
	case backend.MouseLeft:
		if a.mouse.pressed {
			a.editor.MouseMove(x, y)
			return
		}
		a.mouse.pressed = true
		now := a.now()
		double := now.Sub(a.mouse.lastClick) <= doubleClickTime && x == a.mouse.lastX && y == a.mouse.lastY
		a.editor.MouseDown(x, y, backend.MouseLeft, ev.Mod.Has(backend.ModShift))
		if double {
			a.editor.MouseDoubleClick(x, y)
			a.mouse.lastClick = time.Time{}
		} else {
			a.mouse.lastClick = now
		}
		a.mouse.lastX, a.mouse.lastY = x, y
	case backend.MouseNone:
		if a.mouse.pressed {
			a.mouse.pressed = false
			a.editor.MouseUp()
		}
	case backend.MouseWheelUp:
		a.editor.SetTopIndex(a.editor.TopIndex() - wheelLines)
	case backend.MouseWheelDown:
		a.editor.SetTopIndex(a.editor.TopIndex() + wheelLines)
	default:
		a.editor.MouseDown(x, y, ev.MouseButton, false)
	}
}

// drawStatus paints the bottom row: file name, caret position, mode and
// the last message.
func (a *Application) drawStatus() {
	bounds := a.status.Bounds()
	if bounds.Height == 0 {
		return
	}
	style := core.Style{Foreground: core.ColorBlack, Background: core.ColorGray}
	a.status.FillRect(0, 0, bounds.Width, 1, style.Background)

	doc := a.editor.Content()
	caret := a.editor.CaretOffset()
	line, _ := doc.LineAtOffset(caret)
	lineStart, _ := doc.OffsetAtLine(line)

	var b strings.Builder
	fmt.Fprintf(&b, " %s  Ln %d, Col %d", a.displayName(), line+1, caret-lineStart+1)
	if a.editor.Overwrite() {
		b.WriteString("  OVR")
	}
	if !a.editor.Editable() {
		b.WriteString("  RO")
	}
	if a.highlighter != nil {
		fmt.Fprintf(&b, "  %s", a.highlighter.Language())
	}
	if a.message != "" {
		fmt.Fprintf(&b, "  | %s", a.message)
	}
	a.status.DrawText(0, 0, b.String(), style)
}
