package document

import "sort"

// lineIndex holds line start offsets. Entries at or after shiftFrom carry a
// pending shiftDelta that has not been written back yet, so consecutive
// edits near each other only touch the entries between them.
type lineIndex struct {
	starts     []int
	shiftFrom  int
	shiftDelta int
}

func newLineIndex() lineIndex {
	return lineIndex{starts: []int{0}, shiftFrom: 1}
}

func (ix *lineIndex) count() int {
	return len(ix.starts)
}

// start returns the true start offset of line i.
func (ix *lineIndex) start(i int) int {
	s := ix.starts[i]
	if i >= ix.shiftFrom {
		s += ix.shiftDelta
	}
	return s
}

// lineAt returns the line containing offset.
func (ix *lineIndex) lineAt(offset int) int {
	n := sort.Search(len(ix.starts), func(i int) bool {
		return ix.start(i) > offset
	})
	return n - 1
}

// moveShift relocates the pending shift boundary to entry to.
func (ix *lineIndex) moveShift(to int) {
	if ix.shiftDelta == 0 {
		ix.shiftFrom = to
		return
	}
	for i := ix.shiftFrom; i < to; i++ {
		ix.starts[i] += ix.shiftDelta
	}
	for i := to; i < ix.shiftFrom; i++ {
		ix.starts[i] -= ix.shiftDelta
	}
	ix.shiftFrom = to
}

// splice replaces entries first+1..last with inserted and shifts every
// following entry by delta.
func (ix *lineIndex) splice(first, last int, inserted []int, delta int) {
	ix.moveShift(last + 1)
	ix.shiftDelta += delta

	tail := ix.starts[last+1:]
	removed := last - first
	switch {
	case len(inserted) <= removed:
		copy(ix.starts[first+1:], inserted)
		n := copy(ix.starts[first+1+len(inserted):], tail)
		ix.starts = ix.starts[:first+1+len(inserted)+n]
	default:
		grow := len(inserted) - removed
		ix.starts = append(ix.starts, make([]int, grow)...)
		copy(ix.starts[first+1+len(inserted):], ix.starts[last+1:len(ix.starts)-grow])
		copy(ix.starts[first+1:], inserted)
	}
	ix.shiftFrom = first + 1 + len(inserted)
}

// reset rebuilds the index from scratch.
func (ix *lineIndex) reset(starts []int) {
	ix.starts = starts
	ix.shiftFrom = len(starts)
	ix.shiftDelta = 0
}
