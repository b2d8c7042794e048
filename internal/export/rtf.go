package export

import (
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/dshills/styledtext/internal/engine/overlay"
	"github.com/dshills/styledtext/internal/renderer/core"
)

// Fixed color table slots.
const (
	defaultForeground = 0
	defaultBackground = 1
)

// LineStyler supplies the annotations of a line.
type LineStyler interface {
	// LineStyles returns the style ranges intersecting the line, in
	// document offsets and sorted by start.
	LineStyles(lineOffset int, lineText string) []overlay.StyleRange
	// LineBackground returns the line's background color, or the default
	// color when the line has none.
	LineBackground(lineOffset int, lineText string) core.Color
}

// RTFOptions configures the document-wide RTF attributes.
type RTFOptions struct {
	FontName   string
	FontSize   int // points
	Foreground core.Color
	Background core.Color
}

// RTFWriter writes the window as RTF 1.5 with colors, bold runs and line
// backgrounds as they are rendered.
type RTFWriter struct {
	TextWriter
	styler     LineStyler
	opts       RTFOptions
	colorTable []core.Color
	header     string
}

// NewRTFWriter creates an RTF writer for the window [start, start+length).
// A nil styler writes unstyled text.
func NewRTFWriter(start, length int, styler LineStyler, opts RTFOptions) *RTFWriter {
	if opts.FontName == "" {
		opts.FontName = "Go"
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 12
	}
	opts.Foreground = opts.Foreground.Or(core.ColorBlack)
	opts.Background = opts.Background.Or(core.ColorWhite)
	w := &RTFWriter{
		styler:     styler,
		opts:       opts,
		colorTable: []core.Color{opts.Foreground, opts.Background},
	}
	w.start = start
	w.end = start + length
	return w
}

// Close writes the header and the closing groups.
func (w *RTFWriter) Close() {
	if w.closed {
		return
	}
	w.header = w.buildHeader()
	w.write("\n}}")
	w.closed = true
}

// String returns the RTF document. It is valid only after Close.
func (w *RTFWriter) String() string {
	return w.header + w.buf.String()
}

// WriteLine appends the styled part of line inside the window.
func (w *RTFWriter) WriteLine(line string, lineOffset int) error {
	if w.closed {
		return ErrIOClosed
	}
	var styles []overlay.StyleRange
	background := w.opts.Background
	if w.styler != nil {
		styles = w.styler.LineStyles(lineOffset, line)
		background = w.styler.LineBackground(lineOffset, line).Or(background)
	}
	w.writeStyledLine([]rune(line), lineOffset, styles, background)
	return nil
}

// WriteLineDelimiter appends the delimiter followed by a paragraph mark.
func (w *RTFWriter) WriteLineDelimiter(delimiter string) error {
	if w.closed {
		return ErrIOClosed
	}
	w.writeEscaped([]rune(delimiter), 0, len([]rune(delimiter)))
	w.write("\\par ")
	return nil
}

// colorIndex returns the table index of c, adding it when new. Default
// colors map to fallback.
func (w *RTFWriter) colorIndex(c core.Color, fallback int) int {
	if c.IsDefault() {
		return fallback
	}
	for i, existing := range w.colorTable {
		if existing.Equals(c) {
			return i
		}
	}
	w.colorTable = append(w.colorTable, c)
	return len(w.colorTable) - 1
}

func (w *RTFWriter) buildHeader() string {
	var b strings.Builder
	b.WriteString("{\\rtf1\\ansi\\deff0{\\fonttbl{\\f0\\fnil ")
	b.WriteString(w.opts.FontName)
	b.WriteString(";}}\n{\\colortbl")
	for _, c := range w.colorTable {
		b.WriteString("\\red")
		b.WriteString(strconv.Itoa(int(c.R)))
		b.WriteString("\\green")
		b.WriteString(strconv.Itoa(int(c.G)))
		b.WriteString("\\blue")
		b.WriteString(strconv.Itoa(int(c.B)))
		b.WriteString(";")
	}
	// Some readers ignore \deff0, so the font is also set for the body.
	// Font size is in half points.
	b.WriteString("}\n{\\f0\\fs")
	b.WriteString(strconv.Itoa(w.opts.FontSize * 2))
	b.WriteString(" ")
	return b.String()
}

// writeStyledLine emits the line wrapped in its background group. Style
// backgrounds take precedence over the line background.
func (w *RTFWriter) writeStyledLine(line []rune, lineOffset int, styles []overlay.StyleRange, background core.Color) {
	lineLength := len(line)
	endOffset := w.end
	writeOffset := w.start - lineOffset
	if writeOffset >= lineLength {
		return
	}
	lineIndex := max(writeOffset, 0)

	w.write("{\\highlight")
	w.write(strconv.Itoa(w.colorIndex(background, defaultBackground)))
	w.write(" ")
	for _, style := range styles {
		start := style.Start - lineOffset
		end := start + style.Length
		if end <= writeOffset {
			continue
		}
		if style.Start > endOffset {
			break
		}
		if lineIndex < start {
			copyEnd := min(start, endOffset-lineOffset, lineLength)
			w.writeEscaped(line, lineIndex, copyEnd)
			lineIndex = copyEnd
			if copyEnd != start {
				break
			}
		}
		bgIndex := w.colorIndex(style.Background, defaultBackground)
		w.write("{\\cf")
		w.write(strconv.Itoa(w.colorIndex(style.Foreground, defaultForeground)))
		if bgIndex != defaultBackground {
			w.write("\\highlight")
			w.write(strconv.Itoa(bgIndex))
		}
		bold := style.Weight == core.WeightBold
		if bold {
			w.write("\\b")
		}
		w.write(" ")
		copyEnd := min(end, endOffset-lineOffset, lineLength)
		w.writeEscaped(line, lineIndex, copyEnd)
		if bold {
			w.write("\\b0")
		}
		w.write("}")
		lineIndex = max(lineIndex, copyEnd)
		if copyEnd != end {
			break
		}
	}
	copyEnd := min(lineLength, endOffset-lineOffset)
	if lineIndex < copyEnd {
		w.writeEscaped(line, lineIndex, copyEnd)
	}
	w.write("}")
}

// writeEscaped writes text[from:to] escaping RTF control characters.
// Non-ASCII runes are written as \uN? with UTF-16 code units.
func (w *RTFWriter) writeEscaped(text []rune, from, to int) {
	if from >= to {
		return
	}
	for _, r := range text[from:to] {
		switch {
		case r == '{' || r == '}' || r == '\\':
			w.buf.WriteByte('\\')
			w.buf.WriteRune(r)
		case r > 0x7f:
			for _, unit := range utf16.Encode([]rune{r}) {
				w.write("\\u")
				w.write(strconv.Itoa(int(int16(unit))))
				w.write("?")
			}
		default:
			w.buf.WriteRune(r)
		}
	}
}
