package backend

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/styledtext/internal/renderer/core"
)

// Canvas maps an editor client area onto a region of a Backend.
// It is the paint target for the editor and the damage sink for its
// scroll tracker: Scroll copies cells inside the backend and Redraw
// accumulates the area that must be repainted.
type Canvas struct {
	backend Backend
	bounds  core.Rect
	damage  core.Rect
	caret   core.Point
	showing bool
}

// NewCanvas creates a canvas over bounds in backend coordinates.
func NewCanvas(b Backend, bounds core.Rect) *Canvas {
	return &Canvas{backend: b, bounds: bounds}
}

// Bounds returns the canvas region in backend coordinates.
func (c *Canvas) Bounds() core.Rect { return c.bounds }

// SetBounds moves or resizes the canvas. Pending damage is kept but
// clipped to the new size.
func (c *Canvas) SetBounds(bounds core.Rect) {
	c.bounds = bounds
	c.damage = c.damage.Intersection(core.NewRect(0, 0, bounds.Width, bounds.Height))
}

// FillRect paints a rectangle with the background color.
func (c *Canvas) FillRect(x, y, width, height int, bg core.Color) {
	area := core.NewRect(x, y, width, height).Intersection(c.local())
	style := core.Style{Background: bg}
	for row := area.Y; row < area.Bottom(); row++ {
		for col := area.X; col < area.Right(); col++ {
			c.backend.SetCell(c.bounds.X+col, c.bounds.Y+row, core.NewStyledCell(' ', style))
		}
	}
}

// DrawText writes text starting at x on row y. Cells left of zero or past
// the right edge are clipped. Grapheme clusters keep their display width.
func (c *Canvas) DrawText(x, y int, text string, style core.Style) {
	if y < 0 || y >= c.bounds.Height {
		return
	}
	col := x
	g := uniseg.NewGraphemes(text)
	for g.Next() && col < c.bounds.Width {
		runes := g.Runes()
		width := g.Width()
		if width <= 0 {
			continue
		}
		if col >= 0 {
			c.backend.SetCell(c.bounds.X+col, c.bounds.Y+y, core.Cell{Rune: runes[0], Width: width, Style: style})
			for i := 1; i < width && col+i < c.bounds.Width; i++ {
				c.backend.SetCell(c.bounds.X+col+i, c.bounds.Y+y, core.ContinuationCell(style))
			}
		}
		col += width
	}
}

// SetCaret positions the terminal cursor. A caret outside the canvas is
// hidden.
func (c *Canvas) SetCaret(x, y int, visible bool) {
	c.caret = core.Point{X: x, Y: y}
	c.showing = visible && c.local().Contains(c.caret)
	if c.showing {
		c.backend.ShowCursor(c.bounds.X+x, c.bounds.Y+y)
	} else {
		c.backend.HideCursor()
	}
}

// Caret returns the last caret position and whether it is shown.
func (c *Canvas) Caret() (core.Point, bool) { return c.caret, c.showing }

// Scroll copies the cells of src so that its origin lands on dest.
func (c *Canvas) Scroll(src core.Rect, dest core.Point) {
	dx, dy := dest.X-src.X, dest.Y-src.Y
	src = src.Intersection(c.local())
	if src.IsEmpty() {
		return
	}
	rows := make([]int, 0, src.Height)
	for row := src.Y; row < src.Bottom(); row++ {
		rows = append(rows, row)
	}
	// Copy away from the direction of travel so overlapping cells are read
	// before they are overwritten.
	if dy > 0 {
		reverse(rows)
	}
	cols := make([]int, 0, src.Width)
	for col := src.X; col < src.Right(); col++ {
		cols = append(cols, col)
	}
	if dx > 0 {
		reverse(cols)
	}
	for _, row := range rows {
		for _, col := range cols {
			tx, ty := col+dx, row+dy
			if tx < 0 || ty < 0 || tx >= c.bounds.Width || ty >= c.bounds.Height {
				continue
			}
			cell := c.backend.GetCell(c.bounds.X+col, c.bounds.Y+row)
			c.backend.SetCell(c.bounds.X+tx, c.bounds.Y+ty, cell)
		}
	}
}

// Redraw records area as needing a repaint.
func (c *Canvas) Redraw(area core.Rect) {
	c.damage = c.damage.Union(area.Intersection(c.local()))
}

// Damage returns the accumulated repaint area.
func (c *Canvas) Damage() core.Rect { return c.damage }

// TakeDamage returns the accumulated repaint area and clears it.
func (c *Canvas) TakeDamage() core.Rect {
	d := c.damage
	c.damage = core.Rect{}
	return d
}

// Beep rings the backend bell.
func (c *Canvas) Beep() { c.backend.Beep() }

func (c *Canvas) local() core.Rect {
	return core.NewRect(0, 0, c.bounds.Width, c.bounds.Height)
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
