package overlay

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/styledtext/internal/engine/document"
	"github.com/dshills/styledtext/internal/renderer/core"
)

// Content is the read side of the document the overlay validates against.
type Content interface {
	CharCount() int
	LineCount() int
}

// Overlay holds the style and line background annotations of one editor.
type Overlay struct {
	content     Content
	styles      StyleSource
	backgrounds BackgroundSource
}

// New creates an overlay in managed mode for both concerns.
func New(content Content) *Overlay {
	return &Overlay{
		content:     content,
		styles:      StyleSource{table: NewStyleTable()},
		backgrounds: BackgroundSource{table: NewBackgroundTable()},
	}
}

// SetContent points the overlay at a different document and clears the
// managed tables.
func (o *Overlay) SetContent(content Content) {
	o.content = content
	o.styles.table.Clear()
	o.backgrounds.table.Clear()
}

// StyleMode returns the active mode of the style concern.
func (o *Overlay) StyleMode() Mode {
	return o.styles.Mode()
}

// BackgroundMode returns the active mode of the line background concern.
func (o *Overlay) BackgroundMode() Mode {
	return o.backgrounds.Mode()
}

// AddLineStyleProvider registers p. The first provider switches the style
// concern to external mode and clears the managed table.
func (o *Overlay) AddLineStyleProvider(p LineStyleProvider) error {
	if p == nil {
		return ErrNullArgument
	}
	o.styles.add(p)
	return nil
}

// RemoveLineStyleProvider unregisters p. Removing the last provider returns
// the style concern to managed mode. Reports whether p was registered.
func (o *Overlay) RemoveLineStyleProvider(p LineStyleProvider) (bool, error) {
	if p == nil {
		return false, ErrNullArgument
	}
	return o.styles.remove(p), nil
}

// AddLineBackgroundProvider registers p, switching the background concern
// to external mode on the first registration.
func (o *Overlay) AddLineBackgroundProvider(p LineBackgroundProvider) error {
	if p == nil {
		return ErrNullArgument
	}
	o.backgrounds.add(p)
	return nil
}

// RemoveLineBackgroundProvider unregisters p.
func (o *Overlay) RemoveLineBackgroundProvider(p LineBackgroundProvider) (bool, error) {
	if p == nil {
		return false, ErrNullArgument
	}
	return o.backgrounds.remove(p), nil
}

// SetStyleRange overwrites the span of r in the managed table. A nil r
// clears every style. In external mode the call does nothing.
func (o *Overlay) SetStyleRange(r *StyleRange) error {
	if o.styles.mode == ModeExternal {
		return nil
	}
	if r == nil {
		o.styles.table.Clear()
		return nil
	}
	if r.Start < 0 || r.Length < 0 || r.End() > o.content.CharCount() {
		return fmt.Errorf("style range %v: %w", *r, ErrInvalidRange)
	}
	o.styles.table.Set(*r)
	return nil
}

// SetStyleRanges replaces the managed table. Ranges must be ascending and
// non-overlapping; only the last one is checked against the document.
func (o *Overlay) SetStyleRanges(ranges []StyleRange) error {
	if o.styles.mode == ModeExternal {
		return nil
	}
	if ranges == nil {
		return ErrNullArgument
	}
	if n := len(ranges); n > 0 {
		last := ranges[n-1]
		if last.Start < 0 || last.End() > o.content.CharCount() {
			return fmt.Errorf("style range %v: %w", last, ErrInvalidRange)
		}
	}
	o.styles.table.Replace(ranges)
	return nil
}

// StyleRanges returns a copy of the managed table. It is empty in external
// mode.
func (o *Overlay) StyleRanges() []StyleRange {
	if o.styles.mode == ModeExternal {
		return nil
	}
	return o.styles.table.Ranges()
}

// StyleRangeAt returns the managed range covering offset. The boolean is
// false when no range covers it or the concern is external.
func (o *Overlay) StyleRangeAt(offset int) (StyleRange, bool, error) {
	if offset < 0 || offset >= o.content.CharCount() {
		return StyleRange{}, false, fmt.Errorf("offset %d: %w", offset, ErrInvalidArgument)
	}
	if o.styles.mode == ModeExternal {
		return StyleRange{}, false, nil
	}
	r, ok := o.styles.table.At(offset)
	return r, ok, nil
}

// LineStyles returns the ranges that apply to a line, clipped to it.
func (o *Overlay) LineStyles(lineOffset int, lineText string) []StyleRange {
	n := utf8.RuneCountInString(lineText)
	if o.styles.mode == ModeExternal {
		return ClipToLine(o.styles.lineStyles(lineOffset, lineText), lineOffset, n)
	}
	return o.styles.table.LineStyles(lineOffset, n)
}

// IsStyleChanging reports whether applying r to [start, end) changes the
// font weight of any character in that span.
func (o *Overlay) IsStyleChanging(r StyleRange, start, end int) bool {
	for i := start; i < end; i++ {
		cur, ok := o.styles.table.At(i)
		if (ok && cur.Weight != r.Weight) || (!ok && r.Weight != core.WeightNormal) {
			return true
		}
	}
	return false
}

// SetLineBackground assigns c to count lines starting at startLine in the
// managed table. In external mode the call does nothing.
func (o *Overlay) SetLineBackground(startLine, count int, c core.Color) error {
	if o.backgrounds.mode == ModeExternal {
		return nil
	}
	if startLine < 0 || count < 0 || startLine+count > o.content.LineCount() {
		return fmt.Errorf("lines %d+%d: %w", startLine, count, ErrInvalidArgument)
	}
	o.backgrounds.table.Set(startLine, count, c)
	return nil
}

// LineBackground returns the managed background of line.
func (o *Overlay) LineBackground(line int) (core.Color, error) {
	if line < 0 || line >= o.content.LineCount() {
		return core.ColorDefault, fmt.Errorf("line %d: %w", line, ErrInvalidArgument)
	}
	if o.backgrounds.mode == ModeExternal {
		return core.ColorDefault, nil
	}
	return o.backgrounds.table.Get(line), nil
}

// LineBackgroundFor resolves the background of a line for painting,
// consulting providers in external mode.
func (o *Overlay) LineBackgroundFor(line, lineOffset int, lineText string) core.Color {
	if o.backgrounds.mode == ModeExternal {
		return o.backgrounds.lineBackground(lineOffset, lineText)
	}
	return o.backgrounds.table.Get(line)
}

// TextChanged adjusts the managed tables for a document edit that began on
// firstLine. The tables are kept current in both modes.
func (o *Overlay) TextChanged(ev document.ChangeEvent, firstLine int) {
	ev = ev.Normalize()
	o.styles.table.TextChanged(ev.Start, ev.ReplacedCharCount, ev.NewCharCount)
	o.backgrounds.table.TextChanged(firstLine, ev.ReplacedLineCount, ev.NewLineCount)
}

// Reset discards the managed tables after a full text replacement. The
// mode of each concern is preserved.
func (o *Overlay) Reset() {
	o.styles.table.Clear()
	o.backgrounds.table.Clear()
}
