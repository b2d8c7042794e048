package selection

// Caret movement targets. Each function returns the offset the caret moves
// to from offset; an unchanged result means the caret cannot move.

// CharLeft steps one character back, wrapping to the end of the previous
// line at a line start.
func CharLeft(t Text, offset int) int {
	line, lineOffset, _ := lineAt(t, offset)
	if offset > lineOffset {
		return offset - 1
	}
	if line > 0 {
		return lineEnd(t, line-1)
	}
	return offset
}

// CharRight steps one character forward, wrapping to the start of the next
// line at a line end.
func CharRight(t Text, offset int) int {
	line, lineOffset, text := lineAt(t, offset)
	if offset < lineOffset+len(text) {
		return offset + 1
	}
	if line < t.LineCount()-1 {
		next, _ := t.OffsetAtLine(line + 1)
		return next
	}
	return offset
}

// ColumnLeft steps one character back without leaving the line.
func ColumnLeft(t Text, offset int) int {
	_, lineOffset, _ := lineAt(t, offset)
	if offset > lineOffset {
		return offset - 1
	}
	return offset
}

// ColumnRight steps one character forward without leaving the line.
func ColumnRight(t Text, offset int) int {
	_, lineOffset, text := lineAt(t, offset)
	if offset < lineOffset+len(text) {
		return offset + 1
	}
	return offset
}

// LineUp moves to the same column of the previous line, or its end when the
// line is shorter.
func LineUp(t Text, offset int) int {
	line, lineOffset, _ := lineAt(t, offset)
	if line == 0 {
		return offset
	}
	return columnIn(t, line-1, offset-lineOffset)
}

// LineDown moves to the same column of the next line, or its end when the
// line is shorter.
func LineDown(t Text, offset int) int {
	line, lineOffset, _ := lineAt(t, offset)
	if line >= t.LineCount()-1 {
		return offset
	}
	return columnIn(t, line+1, offset-lineOffset)
}

// LineStart moves to the start of the line. When already there and the
// selection starts before offset, it moves to the start of the previous
// line so that a selected line break is released.
func LineStart(t Text, offset, selStart int) int {
	line, lineOffset, _ := lineAt(t, offset)
	if offset > lineOffset {
		return lineOffset
	}
	if line > 0 && selStart < offset {
		prev, _ := t.OffsetAtLine(line - 1)
		return prev
	}
	return offset
}

// LineEnd moves to the end of the line.
func LineEnd(t Text, offset int) int {
	line, _, _ := lineAt(t, offset)
	return max(offset, lineEnd(t, line))
}

// SelectionLineEnd extends a selection that starts at the line start over
// the line break to the next line start. Otherwise it behaves as LineEnd.
func SelectionLineEnd(t Text, offset, selStart int) int {
	line, lineOffset, _ := lineAt(t, offset)
	if selStart == lineOffset && line < t.LineCount()-1 {
		next, _ := t.OffsetAtLine(line + 1)
		return next
	}
	return LineEnd(t, offset)
}

func lineEnd(t Text, line int) int {
	start, _ := t.OffsetAtLine(line)
	text, _ := t.Line(line)
	return start + len([]rune(text))
}

// columnIn returns the offset of column in line, clamped to the line end.
func columnIn(t Text, line, column int) int {
	start, _ := t.OffsetAtLine(line)
	text, _ := t.Line(line)
	return start + min(column, len([]rune(text)))
}
