package document

import (
	"fmt"
	"unicode/utf8"
)

// Document is an editable sequence of characters with a line index.
type Document struct {
	buf        []rune
	gapStart   int
	gapEnd     int
	lines      lineIndex
	lineEnding LineEnding
	listeners  []Listener
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		lines:      newLineIndex(),
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewFromString creates a document holding s. No listeners are notified.
func NewFromString(s string, opts ...Option) *Document {
	d := New(opts...)
	d.load(s)
	return d
}

// load replaces the buffer contents and rebuilds the line index.
func (d *Document) load(s string) {
	runes := []rune(s)
	gap := minGap
	if cap(d.buf) > len(runes)+gap {
		gap = cap(d.buf) - len(runes)
	}
	d.buf = make([]rune, len(runes)+gap)
	copy(d.buf, runes)
	d.gapStart = len(runes)
	d.gapEnd = len(d.buf)
	d.lines.reset(scanLineStarts(runes, 0, []int{0}))
}

// scanLineStarts appends base+i for every line start found after a
// delimiter in runes.
func scanLineStarts(runes []rune, base int, starts []int) []int {
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			starts = append(starts, base+i+1)
		case '\n':
			starts = append(starts, base+i+1)
		}
	}
	return starts
}

// CharCount returns the number of characters in the document.
func (d *Document) CharCount() int {
	return len(d.buf) - d.gapLen()
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int {
	return d.lines.count()
}

// LineDelimiter returns the delimiter used for new line breaks.
func (d *Document) LineDelimiter() string {
	return d.lineEnding.Sequence()
}

// LineEnding returns the configured line ending.
func (d *Document) LineEnding() LineEnding {
	return d.lineEnding
}

// Text returns the whole document.
func (d *Document) Text() string {
	return d.slice(0, d.CharCount())
}

// TextRange returns length characters starting at start.
func (d *Document) TextRange(start, length int) (string, error) {
	if err := d.checkRange(start, length); err != nil {
		return "", fmt.Errorf("text range [%d,+%d): %w", start, length, err)
	}
	return d.slice(start, start+length), nil
}

// RuneAt returns the character at offset, or utf8.RuneError and false if
// offset does not address a character.
func (d *Document) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= d.CharCount() {
		return utf8.RuneError, false
	}
	return d.runeAt(offset), true
}

// LineAtOffset returns the line containing offset. The offset equal to
// CharCount belongs to the last line.
func (d *Document) LineAtOffset(offset int) (int, error) {
	if offset < 0 || offset > d.CharCount() {
		return 0, fmt.Errorf("line at offset %d: %w", offset, ErrInvalidRange)
	}
	return d.lines.lineAt(offset), nil
}

// OffsetAtLine returns the offset of the first character of line.
func (d *Document) OffsetAtLine(line int) (int, error) {
	if line < 0 || line >= d.lines.count() {
		return 0, fmt.Errorf("offset at line %d: %w", line, ErrInvalidRange)
	}
	return d.lines.start(line), nil
}

// Line returns the text of line without its delimiter.
func (d *Document) Line(line int) (string, error) {
	if line < 0 || line >= d.lines.count() {
		return "", fmt.Errorf("line %d: %w", line, ErrInvalidRange)
	}
	start, end := d.lineBounds(line)
	return d.slice(start, end), nil
}

// LineLength returns the number of characters in line, excluding the
// delimiter.
func (d *Document) LineLength(line int) (int, error) {
	if line < 0 || line >= d.lines.count() {
		return 0, fmt.Errorf("line length %d: %w", line, ErrInvalidRange)
	}
	start, end := d.lineBounds(line)
	return end - start, nil
}

// lineBounds returns the [start, end) span of a line's text.
func (d *Document) lineBounds(line int) (int, int) {
	start := d.lines.start(line)
	if line+1 >= d.lines.count() {
		return start, d.CharCount()
	}
	end := d.lines.start(line + 1)
	if end > start && d.runeAt(end-1) == '\n' {
		end--
	}
	if end > start && d.runeAt(end-1) == '\r' {
		end--
	}
	return start, end
}

// DelimitedText converts any line breaks in text to the document delimiter.
func (d *Document) DelimitedText(text string) string {
	return ConvertDelimiters(text, d.LineDelimiter())
}

func (d *Document) checkRange(start, length int) error {
	if start < 0 || length < 0 || start+length > d.CharCount() {
		return ErrInvalidRange
	}
	return nil
}

// AddListener registers l for change notifications.
func (d *Document) AddListener(l Listener) error {
	if l == nil {
		return fmt.Errorf("add listener: %w", ErrNullArgument)
	}
	d.listeners = append(d.listeners, l)
	return nil
}

// RemoveListener unregisters l. It reports whether l was registered.
func (d *Document) RemoveListener(l Listener) bool {
	for i, existing := range d.listeners {
		if existing == l {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return true
		}
	}
	return false
}
