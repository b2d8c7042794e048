package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dshills/styledtext/internal/editor"
	"github.com/dshills/styledtext/internal/export"
	"github.com/dshills/styledtext/internal/renderer/layout"
	"github.com/dshills/styledtext/internal/renderer/raster"
)

// Page size in characters used for snapshots taken before the first layout.
const (
	defaultPageColumns = 80
	defaultPageRows    = 24
)

// loadFile reads path. A missing file or empty path is an empty document.
func loadFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", NewOperationError("open", path, err)
	}
	return string(data), nil
}

// detectDelimiter returns the first line delimiter in text, or fallback
// when text has none.
func detectDelimiter(text, fallback string) string {
	i := strings.IndexAny(text, "\r\n")
	switch {
	case i < 0:
		return fallback
	case text[i] == '\n':
		return "\n"
	case i+1 < len(text) && text[i+1] == '\n':
		return "\r\n"
	default:
		return "\r"
	}
}

// save writes the document as plain text with the file's delimiter.
func (a *Application) save() (string, error) {
	if a.opts.Path == "" {
		return "", NewOperationError("save", "", ErrNoFile)
	}
	text, err := a.editor.PlainText(0, a.editor.CharCount(), a.delimiter)
	if err != nil {
		return "", NewOperationError("save", a.opts.Path, err)
	}
	if err := os.WriteFile(a.opts.Path, []byte(text), 0644); err != nil {
		return "", NewOperationError("save", a.opts.Path, err)
	}
	return fmt.Sprintf("wrote %s", a.opts.Path), nil
}

// exportRTF writes the styled document next to the file as <file>.rtf.
func (a *Application) exportRTF() (string, error) {
	if a.opts.Path == "" {
		return "", NewOperationError("export", "", ErrNoFile)
	}
	target := a.opts.Path + ".rtf"
	rtf, err := a.editor.RTF(0, a.editor.CharCount(), export.RTFOptions{
		FontName: a.config.Font.Name,
		FontSize: a.config.Font.Size,
	})
	if err != nil {
		return "", NewOperationError("export", target, err)
	}
	if err := os.WriteFile(target, []byte(rtf), 0644); err != nil {
		return "", NewOperationError("export", target, err)
	}
	return fmt.Sprintf("wrote %s", target), nil
}

// snapshot writes the visible page as an image next to the file as
// <file>.png.
func (a *Application) snapshot() (string, error) {
	if a.opts.Path == "" {
		return "", NewOperationError("snapshot", "", ErrNoFile)
	}
	target := a.opts.Path + ".png"
	f, err := os.Create(target)
	if err != nil {
		return "", NewOperationError("snapshot", target, err)
	}
	if err := a.renderPage(f); err != nil {
		f.Close()
		return "", NewOperationError("snapshot", target, err)
	}
	if err := f.Close(); err != nil {
		return "", NewOperationError("snapshot", target, err)
	}
	return fmt.Sprintf("wrote %s", target), nil
}

// renderPage lays the visible page out again with the Go font at the
// configured size and encodes it as PNG. The page keeps the terminal's
// rows and columns, the top line, the caret and the selection.
func (a *Application) renderPage(w io.Writer) error {
	metrics, err := layout.NewFaceMetrics(float64(a.config.Font.Size))
	if err != nil {
		return err
	}
	colors := a.editor.Colors()
	page := editor.New(
		editor.WithLogger(Component(a.opts.Logger, "page")),
		editor.WithMetrics(metrics),
		editor.WithTabs(a.editor.Tabs()),
		editor.WithColors(colors),
	)
	if err := page.SetText(a.editor.Text()); err != nil {
		return err
	}
	if a.highlighter != nil {
		if err := page.AddLineStyleProvider(a.highlighter); err != nil {
			return err
		}
	} else if err := page.SetStyleRanges(a.editor.StyleRanges()); err != nil {
		return err
	}
	for line := range a.editor.LineCount() {
		if c, err := a.editor.LineBackground(line); err == nil && !c.IsDefault() {
			if err := page.SetLineBackground(line, 1, c); err != nil {
				return err
			}
		}
	}

	cols, rows := a.canvas.Bounds().Width, a.canvas.Bounds().Height
	if cols <= 0 || rows <= 0 {
		cols, rows = defaultPageColumns, defaultPageRows
	}
	width, height := cols*metrics.AverageCharWidth(), rows*metrics.LineHeight()
	page.Resize(width, height)
	page.SetCaretOffset(a.editor.CaretOffset())
	if sel := a.editor.Selection(); !sel.IsEmpty() {
		if err := page.SetSelection(sel.Start, sel.End); err != nil {
			return err
		}
	}
	page.SetTopIndex(a.editor.TopIndex())

	canvas := raster.New(width, height, metrics, colors.Foreground, colors.Background)
	page.Draw(0, 0, width, height, canvas, true)
	return canvas.WritePNG(w)
}
