package editor

import (
	"fmt"

	"github.com/dshills/styledtext/internal/engine/overlay"
	"github.com/dshills/styledtext/internal/renderer/core"
)

// SetStyleRange applies r to the managed style table and repaints what
// changed. A nil r clears all styles. When a line style provider is
// registered the call does nothing.
func (e *Editor) SetStyleRange(r *overlay.StyleRange) error {
	if e.overlay.StyleMode() == overlay.ModeExternal {
		return nil
	}
	if r == nil {
		if err := e.overlay.SetStyleRange(nil); err != nil {
			return err
		}
		e.damage.RedrawAll()
		return nil
	}
	if r.Start < 0 || r.Length < 0 || r.End() > e.doc.CharCount() {
		return fmt.Errorf("set style range %v: %w", *r, ErrInvalidRange)
	}

	firstLine := e.lineAt(r.Start)
	lastLine := e.lineAt(r.End())
	firstText, firstOffset := e.line(firstLine)
	firstEnd := firstOffset + len([]rune(firstText))
	redrawFirst := e.overlay.IsStyleChanging(*r, r.Start, min(r.End(), firstEnd))
	redrawLast := false
	if lastLine != firstLine {
		_, lastOffset := e.line(lastLine)
		redrawLast = e.overlay.IsStyleChanging(*r, lastOffset, r.End())
	}
	// x of the old layout.
	x := e.xAtOffset(firstText, firstOffset, r.Start-firstOffset)

	if err := e.overlay.SetStyleRange(r); err != nil {
		return fmt.Errorf("set style range: %w", err)
	}

	lh := e.view.LineHeight()
	if redrawFirst {
		e.damage.Redraw(x, e.view.LineY(firstLine), e.view.Width(), lh)
	}
	if redrawLast {
		e.damage.Redraw(0, e.view.LineY(lastLine), e.view.Width(), lh)
	}
	e.redrawRange(r.Start, r.Length)
	return nil
}

// SetStyleRanges replaces the managed style table. Ranges must be sorted
// by start and must not overlap. When a line style provider is registered
// the call does nothing.
func (e *Editor) SetStyleRanges(ranges []overlay.StyleRange) error {
	if e.overlay.StyleMode() == overlay.ModeExternal {
		return nil
	}
	if err := e.overlay.SetStyleRanges(ranges); err != nil {
		return fmt.Errorf("set style ranges: %w", err)
	}
	e.damage.RedrawAll()
	return nil
}

// StyleRanges returns a copy of the managed style table.
func (e *Editor) StyleRanges() []overlay.StyleRange {
	return e.overlay.StyleRanges()
}

// StyleRangeAtOffset returns the managed style covering offset. The
// boolean is false for unstyled text.
func (e *Editor) StyleRangeAtOffset(offset int) (overlay.StyleRange, bool, error) {
	return e.overlay.StyleRangeAt(offset)
}

// SetLineBackground sets the background of count lines from startLine.
// The default color removes it. When a line background provider is
// registered the call does nothing.
func (e *Editor) SetLineBackground(startLine, count int, c core.Color) error {
	if e.overlay.BackgroundMode() == overlay.ModeExternal {
		return nil
	}
	if err := e.overlay.SetLineBackground(startLine, count, c); err != nil {
		return fmt.Errorf("set line background: %w", err)
	}
	e.redrawLines(startLine, count)
	return nil
}

// LineBackground returns the managed background of line.
func (e *Editor) LineBackground(line int) (core.Color, error) {
	return e.overlay.LineBackground(line)
}
