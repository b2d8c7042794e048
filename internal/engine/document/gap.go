package document

// minGap is the smallest gap allocated when the buffer grows.
const minGap = 64

// gapLen returns the size of the gap.
func (d *Document) gapLen() int {
	return d.gapEnd - d.gapStart
}

// runeAt returns the character at a logical offset.
func (d *Document) runeAt(i int) rune {
	if i < d.gapStart {
		return d.buf[i]
	}
	return d.buf[i+d.gapLen()]
}

// moveGap positions the gap so it starts at logical offset pos.
func (d *Document) moveGap(pos int) {
	switch {
	case pos < d.gapStart:
		n := d.gapStart - pos
		copy(d.buf[d.gapEnd-n:d.gapEnd], d.buf[pos:d.gapStart])
		d.gapStart -= n
		d.gapEnd -= n
	case pos > d.gapStart:
		n := pos - d.gapStart
		copy(d.buf[d.gapStart:d.gapStart+n], d.buf[d.gapEnd:d.gapEnd+n])
		d.gapStart += n
		d.gapEnd += n
	}
}

// growGap guarantees the gap holds at least needed characters.
func (d *Document) growGap(needed int) {
	if d.gapLen() >= needed {
		return
	}
	size := len(d.buf) - d.gapLen()
	newGap := needed + size/2
	if newGap < minGap {
		newGap = minGap
	}
	buf := make([]rune, size+newGap)
	copy(buf, d.buf[:d.gapStart])
	tail := len(d.buf) - d.gapEnd
	copy(buf[len(buf)-tail:], d.buf[d.gapEnd:])
	d.gapEnd = len(buf) - tail
	d.buf = buf
}

// slice copies the characters in [start, end) into a string.
func (d *Document) slice(start, end int) string {
	if start >= end {
		return ""
	}
	out := make([]rune, 0, end-start)
	if start < d.gapStart {
		stop := end
		if stop > d.gapStart {
			stop = d.gapStart
		}
		out = append(out, d.buf[start:stop]...)
		start = stop
	}
	if start < end {
		g := d.gapLen()
		out = append(out, d.buf[start+g:end+g]...)
	}
	return string(out)
}
