// Package raster paints the editor into an image with the same faces its
// pixel metrics measure with, so text lands where the layout put it.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/dshills/styledtext/internal/renderer/core"
	"github.com/dshills/styledtext/internal/renderer/layout"
)

// Canvas is an editor paint target backed by an RGBA image. Unset colors
// take the canvas defaults.
type Canvas struct {
	img     *image.RGBA
	metrics *layout.FaceMetrics
	fg, bg  core.Color

	caret      core.Point
	caretShown bool
}

// New returns a width by height canvas filled with bg.
func New(width, height int, metrics *layout.FaceMetrics, fg, bg core.Color) *Canvas {
	c := &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, max(0, width), max(0, height))),
		metrics: metrics,
		fg:      fg.Or(core.ColorBlack),
		bg:      bg.Or(core.ColorWhite),
	}
	c.FillRect(0, 0, width, height, c.bg)
	return c
}

// FillRect paints a rectangle.
func (c *Canvas) FillRect(x, y, width, height int, bg core.Color) {
	r := image.Rect(x, y, x+width, y+height).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(bg.Or(c.bg).Colorful()), image.Point{}, draw.Src)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, text string, style core.Style) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(style.Foreground.Or(c.fg).Colorful()),
		Face: c.metrics.Face(style.Weight),
		Dot:  fixed.P(x, y+c.metrics.Ascent()),
	}
	d.DrawString(text)
}

// SetCaret records the caret. It is painted by Image.
func (c *Canvas) SetCaret(x, y int, visible bool) {
	c.caret = core.Point{X: x, Y: y}
	c.caretShown = visible
}

// Image returns the painted image with the caret drawn on top.
func (c *Canvas) Image() *image.RGBA {
	if c.caretShown {
		r := image.Rect(c.caret.X, c.caret.Y, c.caret.X+layout.CaretWidth, c.caret.Y+c.metrics.LineHeight())
		draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(c.fg.Colorful()), image.Point{}, draw.Src)
	}
	return c.img
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
