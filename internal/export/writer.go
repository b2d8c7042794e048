package export

import (
	"strings"
	"unicode/utf8"
)

// Writer receives document lines and produces a serialized string.
type Writer interface {
	// Start returns the document offset of the first character written.
	Start() int
	// CharCount returns the length of the write window.
	CharCount() int
	// WriteLine appends the part of line that falls inside the window.
	// lineOffset is the document offset of the first character of line.
	WriteLine(line string, lineOffset int) error
	// WriteLineDelimiter appends a line break.
	WriteLineDelimiter(delimiter string) error
	// Close finishes the output. Closing twice is a no-op.
	Close()
	// IsClosed reports whether Close was called.
	IsClosed() bool
	// String returns the output. It is complete only after Close.
	String() string
}

// TextWriter writes the window as plain text.
type TextWriter struct {
	buf    strings.Builder
	start  int
	end    int
	closed bool
}

// NewTextWriter creates a writer for the window [start, start+length).
func NewTextWriter(start, length int) *TextWriter {
	w := &TextWriter{start: start, end: start + length}
	w.buf.Grow(max(length, 0))
	return w
}

func (w *TextWriter) Start() int     { return w.start }
func (w *TextWriter) CharCount() int { return w.end - w.start }
func (w *TextWriter) IsClosed() bool { return w.closed }
func (w *TextWriter) String() string { return w.buf.String() }

func (w *TextWriter) Close() {
	w.closed = true
}

func (w *TextWriter) WriteLine(line string, lineOffset int) error {
	if w.closed {
		return ErrIOClosed
	}
	runes := []rune(line)
	from, to, ok := w.window(len(runes), lineOffset)
	if ok {
		w.buf.WriteString(string(runes[from:to]))
	}
	return nil
}

func (w *TextWriter) WriteLineDelimiter(delimiter string) error {
	if w.closed {
		return ErrIOClosed
	}
	w.buf.WriteString(delimiter)
	return nil
}

// window returns the rune span of a line that lies inside the write window.
func (w *TextWriter) window(lineLength, lineOffset int) (from, to int, ok bool) {
	writeOffset := w.start - lineOffset
	if writeOffset >= lineLength {
		return 0, 0, false
	}
	from = max(writeOffset, 0)
	to = min(lineLength, w.end-lineOffset)
	return from, to, from < to
}

func (w *TextWriter) write(s string) {
	w.buf.WriteString(s)
}

// Lines is the line-oriented view of a document that Delimited reads.
type Lines interface {
	LineAtOffset(offset int) (int, error)
	OffsetAtLine(line int) (int, error)
	Line(line int) (string, error)
}

// Delimited writes every line intersecting the writer's window, separating
// lines with delimiter, then closes the writer and returns its output. A
// window ending past the last line's text gets a trailing delimiter.
func Delimited(doc Lines, w Writer, delimiter string) (string, error) {
	end := w.Start() + w.CharCount()
	startLine, err := doc.LineAtOffset(w.Start())
	if err != nil {
		return "", err
	}
	endLine, err := doc.LineAtOffset(end)
	if err != nil {
		return "", err
	}
	for i := startLine; i <= endLine; i++ {
		text, err := doc.Line(i)
		if err != nil {
			return "", err
		}
		offset, err := doc.OffsetAtLine(i)
		if err != nil {
			return "", err
		}
		if err := w.WriteLine(text, offset); err != nil {
			return "", err
		}
		if i < endLine {
			if err := w.WriteLineDelimiter(delimiter); err != nil {
				return "", err
			}
		}
		if i == endLine && end > offset+utf8.RuneCountInString(text) {
			if err := w.WriteLineDelimiter(delimiter); err != nil {
				return "", err
			}
		}
	}
	w.Close()
	return w.String(), nil
}
