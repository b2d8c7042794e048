package layout

import (
	"fmt"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/dshills/styledtext/internal/renderer/core"
)

// Metrics measures text for the two supported font weights.
type Metrics interface {
	// StringWidth returns the advance of s in pixels. s holds no tabs.
	StringWidth(s string, w core.Weight) int
	// LineHeight returns the height of one line in pixels.
	LineHeight() int
	// AverageCharWidth returns the width used to convert columns to pixels.
	AverageCharWidth() int
}

// CellMetrics measures in terminal cells.
type CellMetrics struct{}

// StringWidth returns the number of cells s occupies.
func (CellMetrics) StringWidth(s string, _ core.Weight) int {
	return uniseg.StringWidth(s)
}

// LineHeight returns 1.
func (CellMetrics) LineHeight() int { return 1 }

// AverageCharWidth returns 1.
func (CellMetrics) AverageCharWidth() int { return 1 }

// FaceMetrics measures with a regular and a bold font face.
type FaceMetrics struct {
	regular    font.Face
	bold       font.Face
	lineHeight int
	ascent     int
	avgWidth   int
}

// NewFaceMetrics loads the Go regular and bold faces at size points.
func NewFaceMetrics(size float64) (*FaceMetrics, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", size)
	}
	regular, err := loadFace(goregular.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("load regular face: %w", err)
	}
	bold, err := loadFace(gobold.TTF, size)
	if err != nil {
		return nil, fmt.Errorf("load bold face: %w", err)
	}
	return newFaceMetrics(regular, bold), nil
}

// NewBasicMetrics uses the built-in 7x13 bitmap face for both weights.
func NewBasicMetrics() *FaceMetrics {
	return newFaceMetrics(basicfont.Face7x13, basicfont.Face7x13)
}

func newFaceMetrics(regular, bold font.Face) *FaceMetrics {
	m := &FaceMetrics{regular: regular, bold: bold}
	m.lineHeight = regular.Metrics().Height.Ceil()
	if m.lineHeight < 1 {
		m.lineHeight = 1
	}
	m.ascent = regular.Metrics().Ascent.Ceil()
	m.avgWidth = max(1, font.MeasureString(regular, "x").Round())
	return m
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// StringWidth returns the advance of s rounded to whole pixels.
func (m *FaceMetrics) StringWidth(s string, w core.Weight) int {
	return font.MeasureString(m.Face(w), s).Round()
}

// LineHeight returns the face height in pixels.
func (m *FaceMetrics) LineHeight() int { return m.lineHeight }

// Ascent returns the distance from the top of a line to its baseline.
func (m *FaceMetrics) Ascent() int { return m.ascent }

// Face returns the face used for weight w.
func (m *FaceMetrics) Face(w core.Weight) font.Face {
	if w == core.WeightBold {
		return m.bold
	}
	return m.regular
}

// AverageCharWidth returns the advance of "x".
func (m *FaceMetrics) AverageCharWidth() int { return m.avgWidth }
