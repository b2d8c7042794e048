// Package core provides shared value types for the engine and renderer.
// This package breaks import cycles between the editor, layout and backend.
package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Weight is the font weight used to draw and measure a run of text.
type Weight uint8

const (
	WeightNormal Weight = iota
	WeightBold
)

// String returns the string representation of the weight.
func (w Weight) String() string {
	switch w {
	case WeightBold:
		return "bold"
	default:
		return "normal"
	}
}

// Color is a 24-bit color. The zero value is unset, meaning the widget
// color applies; style ranges and line backgrounds rely on that.
type Color struct {
	R, G, B uint8
	// Valid is false for an unset color.
	Valid bool
}

// ColorDefault represents an unset color.
var ColorDefault = Color{}

// Common colors.
var (
	ColorBlack = Color{R: 0, G: 0, B: 0, Valid: true}
	ColorWhite = Color{R: 255, G: 255, B: 255, Valid: true}
	ColorRed   = Color{R: 255, G: 0, B: 0, Valid: true}
	ColorGreen = Color{R: 0, G: 255, B: 0, Valid: true}
	ColorBlue  = Color{R: 0, G: 0, B: 255, Valid: true}
	ColorGray  = Color{R: 128, G: 128, B: 128, Valid: true}
)

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// ColorFromHex parses "#rgb" or "#rrggbb". An empty string or "default"
// yields ColorDefault.
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" || strings.EqualFold(hex, "default") {
		return ColorDefault, nil
	}
	hex = "#" + strings.TrimPrefix(hex, "#")
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return FromColorful(c), nil
}

// FromColorful converts a go-colorful color.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return ColorFromRGB(r, g, b)
}

// Colorful returns the go-colorful representation of c.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// IsDefault returns true if the color is unset.
func (c Color) IsDefault() bool {
	return !c.Valid
}

// Or returns c, or fallback when c is unset.
func (c Color) Or(fallback Color) Color {
	if !c.Valid {
		return fallback
	}
	return c
}

// Equals returns true if two colors are equal.
func (c Color) Equals(other Color) bool {
	if !c.Valid || !other.Valid {
		return c.Valid == other.Valid
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Blend mixes c toward other in Lab space by amount in [0,1].
func (c Color) Blend(other Color, amount float64) Color {
	if !c.Valid || !other.Valid {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return FromColorful(c.Colorful().BlendLab(other.Colorful(), amount))
}

// String returns a string representation of the color.
func (c Color) String() string {
	if !c.Valid {
		return "default"
	}
	return c.ToHex()
}

// ToHex returns the "#RRGGBB" representation.
func (c Color) ToHex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style is the rendering attribute set of a run of text.
type Style struct {
	Foreground Color
	Background Color
	Weight     Weight
}

// DefaultStyle returns a style that inherits every attribute.
func DefaultStyle() Style {
	return Style{}
}

// Bold returns a copy of s with bold weight.
func (s Style) Bold() Style {
	s.Weight = WeightBold
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Weight == other.Weight
}

// Resolve fills unset colors from fg and bg.
func (s Style) Resolve(fg, bg Color) Style {
	s.Foreground = s.Foreground.Or(fg)
	s.Background = s.Background.Or(bg)
	return s
}

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Rect is a pixel rectangle. Width and Height are never negative for a
// rectangle produced by this package.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a rectangle, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// IsEmpty returns true if the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if the rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersection returns the overlapping part of two rectangles.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Right(), other.Right()) - x,
		Height: max(r.Bottom(), other.Bottom()) - y,
	}
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// String returns a human-readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Cell represents a single terminal cell.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// IsContinuation returns true if this cell is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// ContinuationCell returns a continuation cell for wide characters.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// RuneWidth returns the display width of a rune in terminal cells.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}
