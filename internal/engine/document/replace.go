package document

import "fmt"

// ReplaceRange replaces length characters at start with text.
//
// Listeners receive TextChanging before the mutation and TextChanged after
// it. The line index is recomputed only for the lines touched by the edit.
func (d *Document) ReplaceRange(start, length int, text string) error {
	if err := d.checkRange(start, length); err != nil {
		return fmt.Errorf("replace range [%d,+%d): %w", start, length, err)
	}
	if length == 0 && text == "" {
		return nil
	}
	newRunes := []rune(text)
	if d.breaksPair(start, length, newRunes) {
		return fmt.Errorf("replace range [%d,+%d): splits or joins a CR LF pair: %w", start, length, ErrInvalidArgument)
	}

	replaced := d.slice(start, start+length)
	ev := ChangeEvent{
		Start:             start,
		ReplacedCharCount: length,
		NewCharCount:      len(newRunes),
		ReplacedLineCount: CountDelimiters(replaced),
		NewLineCount:      CountDelimiters(text),
		ReplacedText:      replaced,
		NewText:           text,
	}
	for _, l := range d.listeners {
		l.TextChanging(ev)
	}

	// Lines whose starts may move: from the line holding start (or the one
	// before, when a "\r" there could pair with an inserted "\n") through
	// the line holding the old end of the edit.
	first := d.lines.lineAt(start)
	if first > 0 && start == d.lines.start(first) && d.runeAt(start-1) == '\r' {
		first--
	}
	last := d.lines.lineAt(start + length)
	lastIsFinal := last+1 >= d.lines.count()
	oldStop := 0
	if !lastIsFinal {
		oldStop = d.lines.start(last + 1)
	}

	d.moveGap(start)
	d.gapEnd += length
	d.growGap(len(newRunes))
	copy(d.buf[d.gapStart:], newRunes)
	d.gapStart += len(newRunes)

	delta := len(newRunes) - length
	scanFrom := d.lines.start(first)
	scanTo := d.CharCount()
	if !lastIsFinal {
		scanTo = oldStop + delta
	}
	inserted := make([]int, 0, ev.NewLineCount+1)
	for i := scanFrom; i < scanTo; i++ {
		var next int
		switch d.runeAt(i) {
		case '\r':
			if i+1 < d.CharCount() && d.runeAt(i+1) == '\n' {
				i++
			}
			next = i + 1
		case '\n':
			next = i + 1
		default:
			continue
		}
		if next < scanTo || (lastIsFinal && next == scanTo) {
			inserted = append(inserted, next)
		}
	}
	d.lines.splice(first, last, inserted, delta)

	for _, l := range d.listeners {
		l.TextChanged(ev)
	}
	return nil
}

// breaksPair reports whether replacing [start, start+length) with text
// would cut a "\r\n" pair apart or make a new one from a "\r" and a "\n"
// that meet at the edges of the edit. Either changes the line count by a
// different amount than the delimiters in the replaced and new text.
func (d *Document) breaksPair(start, length int, text []rune) bool {
	end := start + length
	if d.pairAt(start-1) || d.pairAt(end-1) {
		return true
	}
	var before, after rune
	if start > 0 {
		before = d.runeAt(start - 1)
	}
	if end < d.CharCount() {
		after = d.runeAt(end)
	}
	head, tail := after, before
	if len(text) > 0 {
		head, tail = text[0], text[len(text)-1]
	}
	return (before == '\r' && head == '\n') || (tail == '\r' && after == '\n')
}

// pairAt reports whether a "\r\n" pair starts at offset i.
func (d *Document) pairAt(i int) bool {
	return i >= 0 && i+1 < d.CharCount() && d.runeAt(i) == '\r' && d.runeAt(i+1) == '\n'
}

// SetText replaces the whole document. Listeners receive TextSet.
func (d *Document) SetText(text string) {
	ev := SetEvent{OldCharCount: d.CharCount()}
	d.load(text)
	ev.NewCharCount = d.CharCount()
	for _, l := range d.listeners {
		l.TextSet(ev)
	}
}
