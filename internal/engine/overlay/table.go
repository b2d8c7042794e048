package overlay

import "sort"

// StyleTable is the managed store of style ranges, ordered by start offset.
// Ranges are expected not to overlap; rendering of overlapping input is
// unspecified.
type StyleTable struct {
	ranges []StyleRange
}

// NewStyleTable creates an empty table.
func NewStyleTable() *StyleTable {
	return &StyleTable{}
}

// Len returns the number of stored ranges.
func (t *StyleTable) Len() int {
	return len(t.ranges)
}

// Ranges returns a copy of the stored ranges.
func (t *StyleTable) Ranges() []StyleRange {
	out := make([]StyleRange, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// Clear removes every range.
func (t *StyleTable) Clear() {
	t.ranges = nil
}

// Replace installs ranges as the whole table.
func (t *StyleTable) Replace(ranges []StyleRange) {
	t.ranges = t.ranges[:0]
	for _, r := range ranges {
		if r.Length > 0 {
			t.ranges = append(t.ranges, r)
		}
	}
}

// Set overwrites the span covered by r. Existing ranges that straddle the
// span boundaries are split; an unstyled r just clears the span.
func (t *StyleTable) Set(r StyleRange) {
	if r.Length <= 0 {
		return
	}
	end := r.End()
	out := make([]StyleRange, 0, len(t.ranges)+2)
	var tail *StyleRange
	placed := false
	place := func() {
		if !r.IsUnstyled() {
			out = append(out, r)
		}
		if tail != nil {
			out = append(out, *tail)
		}
		placed = true
	}
	for _, s := range t.ranges {
		switch {
		case s.End() <= r.Start:
			out = append(out, s)
		case s.Start >= end:
			if !placed {
				place()
			}
			out = append(out, s)
		default:
			if s.Start < r.Start {
				head := s
				head.Length = r.Start - s.Start
				out = append(out, head)
			}
			if s.End() > end {
				rest := s
				rest.Start = end
				rest.Length = s.End() - end
				tail = &rest
			}
		}
	}
	if !placed {
		place()
	}
	t.ranges = mergeSimilar(out)
}

// mergeSimilar joins touching ranges with identical attributes.
func mergeSimilar(ranges []StyleRange) []StyleRange {
	if len(ranges) < 2 {
		return ranges
	}
	out := ranges[:1]
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if last.End() == r.Start && last.SimilarTo(r) {
			last.Length += r.Length
			continue
		}
		out = append(out, r)
	}
	return out
}

// At returns the range covering offset.
func (t *StyleTable) At(offset int) (StyleRange, bool) {
	i := t.firstEndingAfter(offset)
	if i < len(t.ranges) && t.ranges[i].Contains(offset) {
		return t.ranges[i], true
	}
	return StyleRange{}, false
}

// firstEndingAfter returns the index of the first range whose end lies
// beyond offset.
func (t *StyleTable) firstEndingAfter(offset int) int {
	return sort.Search(len(t.ranges), func(i int) bool {
		return t.ranges[i].End() > offset
	})
}

// LineStyles returns the ranges intersecting [lineOffset,
// lineOffset+lineLength), clipped to the line.
func (t *StyleTable) LineStyles(lineOffset, lineLength int) []StyleRange {
	lineEnd := lineOffset + lineLength
	var out []StyleRange
	for i := t.firstEndingAfter(lineOffset); i < len(t.ranges); i++ {
		r := t.ranges[i]
		if r.Start >= lineEnd {
			break
		}
		out = append(out, r)
	}
	return ClipToLine(out, lineOffset, lineLength)
}

// TextChanged adjusts the table for replacing replaced characters at start
// with inserted characters. Ranges before the edit are untouched, ranges
// after it shift, ranges inside a deleted span are truncated or dropped and
// a range strictly containing an insertion point grows.
func (t *StyleTable) TextChanged(start, replaced, inserted int) {
	if replaced > 0 {
		t.deleted(start, replaced)
	}
	if inserted > 0 {
		t.inserted(start, inserted)
	}
}

func (t *StyleTable) deleted(start, length int) {
	end := start + length
	out := t.ranges[:0]
	for _, r := range t.ranges {
		switch {
		case r.End() <= start:
		case r.Start >= end:
			r.Start -= length
		default:
			before := max(0, start-r.Start)
			after := max(0, r.End()-end)
			r.Start = min(r.Start, start)
			r.Length = before + after
			if r.Length == 0 {
				continue
			}
		}
		out = append(out, r)
	}
	t.ranges = mergeSimilar(out)
}

func (t *StyleTable) inserted(at, length int) {
	for i := range t.ranges {
		r := &t.ranges[i]
		switch {
		case r.Start >= at:
			r.Start += length
		case r.End() > at:
			r.Length += length
		}
	}
}
