// Package dirty turns scroll and repaint requests into damage operations
// clipped to the client area.
//
// Edits, scrolls and selection changes are expressed as a short list of
// operations: blits that move already painted pixels and redraws of the
// rectangles whose content is stale. A Tracker clips every request to the
// client area, drops requests that fall outside it, derives the strips a
// blit leaves exposed and forwards the result to a Sink.
package dirty

import "github.com/dshills/styledtext/internal/renderer/core"

// OpKind identifies a damage operation.
type OpKind uint8

const (
	// OpRedraw repaints an area.
	OpRedraw OpKind = iota
	// OpScroll copies an area to a new position.
	OpScroll
)

// String returns the string representation of the kind.
func (k OpKind) String() string {
	if k == OpScroll {
		return "scroll"
	}
	return "redraw"
}

// Op is one damage operation. For OpRedraw, Area is the rectangle to
// repaint. For OpScroll, Area is the source rectangle and Dest the top-left
// corner it is copied to.
type Op struct {
	Kind OpKind
	Area core.Rect
	Dest core.Point
}

// Redraw returns a redraw operation.
func Redraw(area core.Rect) Op {
	return Op{Kind: OpRedraw, Area: area}
}

// Scroll returns a blit operation.
func Scroll(src core.Rect, dest core.Point) Op {
	return Op{Kind: OpScroll, Area: src, Dest: dest}
}

// exposed returns the parts of region not covered by covered, for two
// rectangles that share their extent on one axis. Diagonal cases return
// region whole.
func exposed(region, covered core.Rect) []core.Rect {
	if covered.IsEmpty() {
		return []core.Rect{region}
	}
	var out []core.Rect
	switch {
	case covered.X == region.X && covered.Width == region.Width:
		if covered.Y > region.Y {
			out = append(out, core.NewRect(region.X, region.Y, region.Width, covered.Y-region.Y))
		}
		if covered.Bottom() < region.Bottom() {
			out = append(out, core.NewRect(region.X, covered.Bottom(), region.Width, region.Bottom()-covered.Bottom()))
		}
	case covered.Y == region.Y && covered.Height == region.Height:
		if covered.X > region.X {
			out = append(out, core.NewRect(region.X, region.Y, covered.X-region.X, region.Height))
		}
		if covered.Right() < region.Right() {
			out = append(out, core.NewRect(covered.Right(), region.Y, region.Right()-covered.Right(), region.Height))
		}
	default:
		out = append(out, region)
	}
	return out
}
