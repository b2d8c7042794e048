package viewport

// ScrollDirection is the direction of an autoscroll.
type ScrollDirection uint8

const (
	ScrollNone ScrollDirection = iota
	ScrollUp
	ScrollDown
	ScrollLeft
	ScrollRight
)

// String returns a human-readable name for the direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionFor returns the autoscroll direction for a pointer at (x, y)
// relative to the client area. Vertical overflow wins over horizontal.
func (v *Viewport) DirectionFor(x, y int) ScrollDirection {
	switch {
	case y > v.height:
		return ScrollDown
	case y < 0:
		return ScrollUp
	case x < 0:
		return ScrollLeft
	case x > v.width:
		return ScrollRight
	default:
		return ScrollNone
	}
}

// ScrollBar describes the range and thumb of one scroll bar. A bar whose
// content fits the client area is inactive.
type ScrollBar struct {
	Maximum   int
	Thumb     int
	Selection int
	Increment int
	Active    bool
}

// ScrollBars returns the vertical and horizontal bar state for a document
// of lineCount lines.
func (v *Viewport) ScrollBars(lineCount int) (vertical, horizontal ScrollBar) {
	vmax := lineCount * v.lineHeight
	vertical = ScrollBar{Maximum: 1, Thumb: 1, Selection: v.verticalOffset, Increment: v.lineHeight}
	if v.height < vmax {
		vertical.Maximum = vmax
		vertical.Thumb = v.height
		vertical.Active = true
	}
	horizontal = ScrollBar{Maximum: 1, Thumb: 1, Selection: v.horizontalOffset, Increment: 1}
	if v.width < v.contentWidth {
		horizontal.Maximum = v.contentWidth
		horizontal.Thumb = v.width
		horizontal.Active = true
	}
	return vertical, horizontal
}
