package selection

import "unicode"

// Text is the read side of a document used for word and line navigation.
type Text interface {
	CharCount() int
	LineCount() int
	LineAtOffset(offset int) (int, error)
	OffsetAtLine(line int) (int, error)
	Line(line int) (string, error)
}

// lineAt returns the line holding offset, its start offset and its
// characters. Offsets outside the text are clamped.
func lineAt(t Text, offset int) (int, int, []rune) {
	offset = max(0, min(offset, t.CharCount()))
	line, _ := t.LineAtOffset(offset)
	start, _ := t.OffsetAtLine(line)
	text, _ := t.Line(line)
	return line, start, []rune(text)
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isSpace matches space separators only; tabs are not spaces here.
func isSpace(r rune) bool {
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// WordEnd returns the offset after the word at offset, including any
// spaces that follow it. At a line end it returns the start of the next
// line.
func WordEnd(t Text, offset int) int {
	if offset >= t.CharCount() {
		return offset
	}
	line, lineOffset, text := lineAt(t, offset)
	n := len(text)
	if offset == lineOffset+n {
		next, _ := t.OffsetAtLine(line + 1)
		return next
	}
	i := offset - lineOffset
	ch := text[i]
	class := isLetterOrDigit(ch)
	for i < n-1 && isLetterOrDigit(ch) == class {
		i++
		ch = text[i]
	}
	for i < n-1 && isSpace(ch) {
		i++
		ch = text[i]
	}
	if i == n-1 && (isLetterOrDigit(ch) == class || isSpace(ch)) {
		i++
	}
	return lineOffset + i
}

// WordEndNoSpaces is WordEnd without absorbing trailing spaces.
func WordEndNoSpaces(t Text, offset int) int {
	if offset >= t.CharCount() {
		return offset
	}
	line, lineOffset, text := lineAt(t, offset)
	n := len(text)
	if offset == lineOffset+n {
		next, _ := t.OffsetAtLine(line + 1)
		return next
	}
	i := offset - lineOffset
	ch := text[i]
	class := isLetterOrDigit(ch)
	for i < n-1 && isLetterOrDigit(ch) == class && !isSpace(ch) {
		i++
		ch = text[i]
	}
	if i == n-1 && isLetterOrDigit(ch) == class && !isSpace(ch) {
		i++
	}
	return lineOffset + i
}

// WordStart returns the start of the word before offset. Spaces between
// offset and the word are skipped. At a line start it returns the end of
// the previous line.
func WordStart(t Text, offset int) int {
	if offset <= 0 {
		return offset
	}
	line, lineOffset, text := lineAt(t, offset)
	if offset == lineOffset {
		prev, _ := t.OffsetAtLine(line - 1)
		prevText, _ := t.Line(line - 1)
		return prev + len([]rune(prevText))
	}
	i := offset - lineOffset
	var ch rune
	for {
		i--
		ch = text[i]
		if i <= 0 || !isSpace(ch) {
			break
		}
	}
	class := isLetterOrDigit(ch)
	for i > 0 && isLetterOrDigit(ch) == class && !isSpace(ch) {
		i--
		ch = text[i]
	}
	if i > 0 || isLetterOrDigit(ch) != class {
		i++
	}
	return lineOffset + i
}
