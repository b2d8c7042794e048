package selection

// EditUpdate describes how an edit affects the selection. Redraw lists
// spans, in post-edit offsets, whose rendering went stale. When Reselect is
// set the caller replaces the selection with Select(Start, Length).
type EditUpdate struct {
	Redraw   []Range
	Reselect bool
	Start    int
	Length   int
}

// AdjustForEdit computes the selection change caused by replacing replaced
// characters at start with inserted characters. An edit that intersects the
// selection collapses it to a caret after the inserted text; an edit before
// it shifts both ends by the net delta; an edit after it changes nothing.
func (s *State) AdjustForEdit(start, replaced, inserted int) EditUpdate {
	var up EditUpdate
	sel := s.sel
	if sel.End <= start {
		return up
	}
	if sel.Start < start {
		up.Redraw = append(up.Redraw, Range{Start: sel.Start, End: start})
	}
	if sel.End > start+replaced {
		netNewLength := inserted - replaced
		up.Redraw = append(up.Redraw, Range{Start: start + inserted, End: sel.End + netNewLength})
	}
	up.Reselect = true
	if sel.End > start && sel.Start < start+replaced {
		up.Start = start + inserted
		up.Length = 0
	} else {
		up.Start = sel.Start + inserted - replaced
		up.Length = sel.Len()
	}
	return up
}
