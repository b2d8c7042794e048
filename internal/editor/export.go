package editor

import (
	"fmt"

	"github.com/dshills/styledtext/internal/engine/overlay"
	"github.com/dshills/styledtext/internal/export"
	"github.com/dshills/styledtext/internal/renderer/core"
)

// lineStyler exposes the rendered annotations to the RTF writer.
type lineStyler struct {
	e *Editor
}

func (s lineStyler) LineStyles(lineOffset int, lineText string) []overlay.StyleRange {
	return s.e.overlay.LineStyles(lineOffset, lineText)
}

func (s lineStyler) LineBackground(lineOffset int, lineText string) core.Color {
	return s.e.overlay.LineBackgroundFor(s.e.lineAt(lineOffset), lineOffset, lineText)
}

func (e *Editor) checkWindow(start, length int) error {
	if start < 0 || length < 0 || start+length > e.doc.CharCount() {
		return fmt.Errorf("export [%d,%+d): %w", start, length, ErrInvalidRange)
	}
	return nil
}

// PlainText returns length characters from start with every line break
// written as delimiter.
func (e *Editor) PlainText(start, length int, delimiter string) (string, error) {
	if err := e.checkWindow(start, length); err != nil {
		return "", err
	}
	return export.Delimited(e.doc, export.NewTextWriter(start, length), delimiter)
}

// RTF returns length characters from start as RTF with the styles, line
// backgrounds and colors currently rendered. Unset colors in opts default
// to the widget colors.
func (e *Editor) RTF(start, length int, opts export.RTFOptions) (string, error) {
	if err := e.checkWindow(start, length); err != nil {
		return "", err
	}
	opts.Foreground = opts.Foreground.Or(e.colors.Foreground)
	opts.Background = opts.Background.Or(e.colors.Background)
	w := export.NewRTFWriter(start, length, lineStyler{e: e}, opts)
	return export.Delimited(e.doc, w, e.delimiter)
}
