package editor

import (
	"github.com/dshills/styledtext/internal/engine/overlay"
	"github.com/dshills/styledtext/internal/renderer/core"
)

// DrawContext is the paint target. Coordinates are client pixels.
type DrawContext interface {
	FillRect(x, y, width, height int, bg core.Color)
	DrawText(x, y int, text string, style core.Style)
	SetCaret(x, y int, visible bool)
}

// Draw paints the lines intersecting the client rectangle (x, y, width,
// height) and places the caret. With clearBackground the area below the
// last line is filled with the widget background.
func (e *Editor) Draw(x, y, width, height int, ctx DrawContext, clearBackground bool) {
	area := core.NewRect(x, y, width, height).Intersection(e.view.ClientArea())
	if area.IsEmpty() {
		ctx.SetCaret(e.caret.X, e.caret.Y, e.caretVisible())
		return
	}
	n := e.doc.LineCount()
	first := max(0, e.view.LineAtY(area.Y))
	last := min(n-1, e.view.LineAtY(area.Bottom()-1))
	for line := first; line <= last; line++ {
		e.drawLine(ctx, line)
	}
	if clearBackground {
		if bottom := e.view.LineY(last + 1); bottom < area.Bottom() {
			top := max(bottom, area.Y)
			ctx.FillRect(area.X, top, area.Width, area.Bottom()-top, e.colors.Background)
		}
	}
	ctx.SetCaret(e.caret.X, e.caret.Y, e.caretVisible())
}

// caretVisible reports whether the caret lies in the client area.
func (e *Editor) caretVisible() bool {
	return e.view.ClientArea().Contains(e.caret)
}

// drawLine paints one line: the line background, styled runs, the
// selection highlight and tab gaps. A selection that includes the line
// break is shown as a highlighted space after the text.
func (e *Editor) drawLine(ctx DrawContext, line int) {
	text, lineOffset := e.line(line)
	runes := []rune(text)
	y := e.view.LineY(line)
	lh := e.view.LineHeight()
	hOff := e.view.HorizontalOffset()
	bg := e.overlay.LineBackgroundFor(line, lineOffset, text).Or(e.colors.Background)
	ctx.FillRect(0, y, e.view.Width(), lh, bg)

	styles := e.overlay.LineStyles(lineOffset, text)
	sel := e.sel.Selection()
	selFrom := max(0, sel.Start-lineOffset)
	selTo := min(len(runes), sel.End-lineOffset)

	x := 0
	for i := 0; i < len(runes); {
		j := e.runEnd(runes, lineOffset, styles, i, selFrom, selTo)
		w := e.measure.Width(runes, lineOffset, styles, i, j-i, x)
		selected := i >= selFrom && i < selTo
		style := e.styleAt(styles, lineOffset+i).Resolve(e.colors.Foreground, bg)
		if selected {
			style.Foreground = e.colors.SelectionForeground
			style.Background = e.colors.SelectionBackground
		}
		if !style.Background.Equals(bg) {
			ctx.FillRect(x-hOff, y, w, lh, style.Background)
		}
		if runes[i] != '\t' {
			ctx.DrawText(x-hOff, y, string(runes[i:j]), style)
		}
		x += w
		i = j
	}

	lineEnd := lineOffset + len(runes)
	if sel.Start <= lineEnd && sel.End > lineEnd {
		w := e.metrics.StringWidth(" ", core.WeightNormal)
		ctx.FillRect(x-hOff, y, w, lh, e.colors.SelectionBackground)
	}
}

// runEnd returns the end of the run starting at i. A run has one style
// and one selection state, and a tab is always a run of its own.
func (e *Editor) runEnd(runes []rune, lineOffset int, styles []overlay.StyleRange, i, selFrom, selTo int) int {
	if runes[i] == '\t' {
		return i + 1
	}
	end := len(runes)
	for _, b := range []int{selFrom, selTo} {
		if b > i && b < end {
			end = b
		}
	}
	for _, s := range styles {
		for _, b := range []int{s.Start - lineOffset, s.End() - lineOffset} {
			if b > i && b < end {
				end = b
			}
		}
	}
	for k := i + 1; k < end; k++ {
		if runes[k] == '\t' {
			return k
		}
	}
	return end
}

// styleAt returns the style of the character at offset.
func (e *Editor) styleAt(styles []overlay.StyleRange, offset int) core.Style {
	for _, s := range styles {
		if s.Contains(offset) {
			return s.Style()
		}
	}
	return core.DefaultStyle()
}
