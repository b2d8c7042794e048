package dirty

import "github.com/dshills/styledtext/internal/renderer/core"

// Sink receives clipped damage operations.
type Sink interface {
	// Scroll copies src to dest. Both lie inside the client area.
	Scroll(src core.Rect, dest core.Point)
	// Redraw marks area as needing a repaint.
	Redraw(area core.Rect)
}

// Tracker clips damage requests to the client area and forwards them.
type Tracker struct {
	client core.Rect
	sink   Sink
	ops    []Op
	damage core.Rect
}

// NewTracker creates a tracker forwarding to sink. A nil sink only records.
func NewTracker(sink Sink) *Tracker {
	return &Tracker{sink: sink}
}

// SetSink replaces the sink.
func (t *Tracker) SetSink(sink Sink) {
	t.sink = sink
}

// SetClientSize updates the client area. Negative sizes are treated as zero.
func (t *Tracker) SetClientSize(width, height int) {
	t.client = core.NewRect(0, 0, width, height)
}

// Client returns the client area.
func (t *Tracker) Client() core.Rect {
	return t.client
}

// Scroll copies the width x height area at (srcX, srcY) to (destX, destY)
// and marks the pixels left stale by the move for redraw. Requests with no
// visible effect do nothing.
func (t *Tracker) Scroll(destX, destY, srcX, srcY, width, height int) {
	dx, dy := destX-srcX, destY-srcY
	src := core.NewRect(srcX, srcY, width, height)
	if src.IsEmpty() || (dx == 0 && dy == 0) {
		return
	}
	dest := src.Translate(dx, dy)
	region := src.Union(dest).Intersection(t.client)
	if region.IsEmpty() {
		return
	}
	covered := src.Intersection(t.client).Translate(dx, dy).Intersection(t.client)
	if !covered.IsEmpty() {
		t.emit(Scroll(covered.Translate(-dx, -dy), core.Point{X: covered.X, Y: covered.Y}))
	}
	for _, r := range exposed(region, covered) {
		t.Redraw(r.X, r.Y, r.Width, r.Height)
	}
}

// Redraw marks an area for repaint. Only the part inside the client area
// is kept.
func (t *Tracker) Redraw(x, y, width, height int) {
	area := core.NewRect(x, y, width, height).Intersection(t.client)
	if area.IsEmpty() {
		return
	}
	t.emit(Redraw(area))
}

// RedrawAll marks the whole client area for repaint.
func (t *Tracker) RedrawAll() {
	t.Redraw(t.client.X, t.client.Y, t.client.Width, t.client.Height)
}

func (t *Tracker) emit(op Op) {
	t.ops = append(t.ops, op)
	if op.Kind == OpRedraw {
		t.damage = t.damage.Union(op.Area)
	} else {
		t.damage = t.damage.Union(core.NewRect(op.Dest.X, op.Dest.Y, op.Area.Width, op.Area.Height))
	}
	if t.sink != nil {
		if op.Kind == OpScroll {
			t.sink.Scroll(op.Area, op.Dest)
		} else {
			t.sink.Redraw(op.Area)
		}
	}
}

// Ops returns the operations recorded since the last Reset.
func (t *Tracker) Ops() []Op {
	return t.ops
}

// IsDirty reports whether anything was recorded since the last Reset.
func (t *Tracker) IsDirty() bool {
	return len(t.ops) > 0
}

// Damage returns the bounding box of everything touched since the last
// Reset.
func (t *Tracker) Damage() core.Rect {
	return t.damage
}

// Reset forgets recorded operations.
func (t *Tracker) Reset() {
	t.ops = t.ops[:0]
	t.damage = core.Rect{}
}

// Recorder is a Sink that keeps every operation it receives.
type Recorder struct {
	Ops []Op
}

// Scroll records a blit.
func (r *Recorder) Scroll(src core.Rect, dest core.Point) {
	r.Ops = append(r.Ops, Scroll(src, dest))
}

// Redraw records a repaint.
func (r *Recorder) Redraw(area core.Rect) {
	r.Ops = append(r.Ops, Redraw(area))
}

// Redraws returns only the recorded repaint areas.
func (r *Recorder) Redraws() []core.Rect {
	var out []core.Rect
	for _, op := range r.Ops {
		if op.Kind == OpRedraw {
			out = append(out, op.Area)
		}
	}
	return out
}

// Reset forgets recorded operations.
func (r *Recorder) Reset() {
	r.Ops = nil
}
