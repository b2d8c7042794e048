package selection

import "fmt"

// Range is a half-open [Start, End) span of document offsets.
type Range struct {
	Start int
	End   int
}

// Len returns the number of characters in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range holds no characters.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Direction selects which side of the selection an extend acts on.
type Direction uint8

const (
	// TowardStart extends or shrinks the start side.
	TowardStart Direction = iota
	// TowardEnd extends or shrinks the end side.
	TowardEnd
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == TowardEnd {
		return "toward-end"
	}
	return "toward-start"
}

// NoAnchor marks that no extend is in progress.
const NoAnchor = -1

// State is the caret, anchor and selection of one editor.
type State struct {
	caret  int
	anchor int
	sel    Range
}

// New returns a state with the caret at 0 and no selection.
func New() *State {
	return &State{anchor: NoAnchor}
}

// Caret returns the caret offset.
func (s *State) Caret() int {
	return s.caret
}

// MoveCaret places the caret without touching the selection. Callers
// follow it with Extend or Collapse.
func (s *State) MoveCaret(offset int) {
	s.caret = offset
}

// Anchor returns the extend anchor, or NoAnchor.
func (s *State) Anchor() int {
	return s.anchor
}

// Selection returns the selected range. It is empty when nothing is
// selected and then sits at the caret.
func (s *State) Selection() Range {
	return s.sel
}

// HasSelection reports whether any characters are selected.
func (s *State) HasSelection() bool {
	return !s.sel.IsEmpty()
}

// Collapse drops the selection to an empty range at the caret and clears
// the anchor. It returns the range that was selected before.
func (s *State) Collapse() Range {
	old := s.sel
	s.sel = Range{Start: s.caret, End: s.caret}
	s.anchor = NoAnchor
	return old
}

// Select sets the selection to length characters from start, anchored at
// start with the caret at the end. A negative length selects backwards.
func (s *State) Select(start, length int) {
	end := start + length
	if length < 0 {
		start, end = end, start
	}
	s.anchor = start
	s.sel = Range{Start: start, End: end}
	s.caret = end
}

// SelectBackward selects [start, end) with the caret at start and the anchor
// at end.
func (s *State) SelectBackward(start, end int) {
	s.sel = Range{Start: start, End: end}
	s.anchor = end
	s.caret = start
}

// Extend updates the selection after the caret moved with shift held. The
// returned range covers the offsets whose selected state changed; ok is
// false when nothing changed.
func (s *State) Extend(dir Direction) (changed Range, ok bool) {
	redrawStart, redrawEnd := -1, -1
	if s.anchor == NoAnchor {
		s.anchor = s.sel.Start
	}
	if dir == TowardStart {
		switch {
		case s.caret < s.sel.Start:
			redrawEnd = s.sel.Start
			redrawStart = s.caret
			s.sel.Start = s.caret
			if s.sel.End != s.anchor {
				redrawEnd = s.sel.End
				s.sel.End = s.anchor
			}
		case s.anchor == s.sel.Start && s.caret < s.sel.End:
			redrawEnd = s.sel.End
			redrawStart = s.caret
			s.sel.End = s.caret
		}
	} else {
		switch {
		case s.caret > s.sel.End:
			redrawStart = s.sel.End
			redrawEnd = s.caret
			s.sel.End = s.caret
			if s.sel.Start != s.anchor {
				redrawStart = s.sel.Start
				s.sel.Start = s.anchor
			}
		case s.anchor == s.sel.End && s.caret > s.sel.Start:
			redrawStart = s.sel.Start
			redrawEnd = s.caret
			s.sel.Start = s.caret
		}
	}
	if redrawStart == -1 || redrawEnd == -1 {
		return Range{}, false
	}
	return Range{Start: redrawStart, End: redrawEnd}, true
}

// MouseDirection returns the side a mouse drag to the current caret
// extends.
func (s *State) MouseDirection() Direction {
	if s.caret <= s.sel.Start ||
		(s.caret > s.sel.Start && s.caret < s.sel.End && s.anchor == s.sel.Start) {
		return TowardStart
	}
	return TowardEnd
}

// Clamp pulls the caret and selection inside [0, max].
func (s *State) Clamp(max int) {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}
	s.caret = clamp(s.caret)
	s.sel = Range{Start: clamp(s.sel.Start), End: clamp(s.sel.End)}
	if s.anchor != NoAnchor {
		s.anchor = clamp(s.anchor)
	}
}
