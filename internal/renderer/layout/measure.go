package layout

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/styledtext/internal/engine/overlay"
	"github.com/dshills/styledtext/internal/renderer/core"
)

// CaretWidth is added to the widest line so the caret fits after it.
const CaretWidth = 1

// Measurer converts between character offsets and pixel positions on a line.
type Measurer struct {
	metrics   Metrics
	tabLength int
	tabWidth  int
}

// NewMeasurer creates a measurer expanding tabs to tabLength spaces.
func NewMeasurer(m Metrics, tabLength int) *Measurer {
	ms := &Measurer{metrics: m, tabLength: tabLength}
	ms.calculateTabWidth()
	return ms
}

// Metrics returns the font metrics in use.
func (m *Measurer) Metrics() Metrics {
	return m.metrics
}

// SetMetrics changes the font metrics and recomputes the tab width.
func (m *Measurer) SetMetrics(metrics Metrics) {
	m.metrics = metrics
	m.calculateTabWidth()
}

// TabLength returns the tab size in characters.
func (m *Measurer) TabLength() int {
	return m.tabLength
}

// SetTabLength changes the tab size in characters.
func (m *Measurer) SetTabLength(n int) {
	m.tabLength = n
	m.calculateTabWidth()
}

// TabWidth returns the tab stop distance in pixels.
func (m *Measurer) TabWidth() int {
	return m.tabWidth
}

// LineHeight returns the line height in pixels.
func (m *Measurer) LineHeight() int {
	return m.metrics.LineHeight()
}

func (m *Measurer) calculateTabWidth() {
	if m.tabLength <= 0 {
		m.tabWidth = 0
		return
	}
	m.tabWidth = m.metrics.StringWidth(strings.Repeat(" ", m.tabLength), core.WeightNormal)
}

// Width returns the width of length characters of line starting at start.
// Tab stops are computed as if start were drawn at startX. styles use
// document offsets, with lineOffset the offset of the line's first
// character. The result is 0 when the span does not lie inside the line.
func (m *Measurer) Width(line []rune, lineOffset int, styles []overlay.StyleRange, start, length, startX int) int {
	end := start + length
	if start < 0 || start >= len(line) || end > len(line) {
		return 0
	}
	x := 0
	for i := start; i < end; i++ {
		tab := indexTab(line, i, end)
		if tab != i {
			x += m.segmentWidth(line[i:tab], lineOffset+i, styles)
			if tab != end {
				x = m.nextTabStop(x, startX)
			}
			i = tab
		} else {
			x = m.nextTabStop(x, startX)
		}
	}
	return x
}

// TextWidth returns the width of the first length characters of line.
func (m *Measurer) TextWidth(line string, lineOffset int, styles []overlay.StyleRange, length int) int {
	return m.Width([]rune(line), lineOffset, styles, 0, length, 0)
}

// ContentWidth returns the width of the whole line measured in the bold
// face, the widest rendering any style could produce.
func (m *Measurer) ContentWidth(line string) int {
	text := []rune(line)
	x := 0
	for i := 0; i < len(text); i++ {
		tab := indexTab(text, i, len(text))
		if tab != i {
			x += m.metrics.StringWidth(string(text[i:tab]), core.WeightBold)
			if tab != len(text) {
				x = m.nextTabStop(x, 0)
			}
			i = tab
		} else {
			x = m.nextTabStop(x, 0)
		}
	}
	return x
}

// XAtOffset returns the x position of the character at offset within the
// line. An offset past the line end yields the position after a virtual
// trailing space that stands for the line break.
func (m *Measurer) XAtOffset(line string, lineOffset int, styles []overlay.StyleRange, offset int) int {
	if offset == 0 {
		return 0
	}
	text := []rune(line)
	if offset > len(text) {
		text = append(text, ' ')
		offset = len(text)
	}
	return m.Width(text, lineOffset, styles, 0, offset, 0)
}

// OffsetAtX returns the offset within the line of the character boundary
// nearest to x. Positions past the middle of a character resolve to the
// following boundary. The result is never inside a grapheme cluster, so
// zero-width combining marks stay with their base character.
func (m *Measurer) OffsetAtX(line string, lineOffset int, styles []overlay.StyleRange, x int) int {
	text := []rune(line)
	low, high := -1, len(text)
	for high-low > 1 {
		mid := (high + low) / 2
		px := m.Width(text, lineOffset, styles, 0, mid, 0)
		charWidth := m.Width(text, lineOffset, styles, 0, mid+1, 0) - px
		if x <= px+charWidth/2 {
			high = mid
		} else {
			low = mid
		}
	}
	return clusterEnd(line, high)
}

// clusterEnd moves offset to the end of the grapheme cluster it splits.
func clusterEnd(line string, offset int) int {
	if offset == 0 {
		return 0
	}
	start := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		end := start + len(g.Runes())
		if offset < end {
			if offset > start {
				return end
			}
			return offset
		}
		start = end
	}
	return offset
}

func (m *Measurer) nextTabStop(x, startX int) int {
	if m.tabWidth <= 0 {
		return x
	}
	x += m.tabWidth
	return x - (startX+x)%m.tabWidth
}

// segmentWidth measures a tab-free segment, switching faces at style
// boundaries. segOffset is the document offset of seg[0].
func (m *Measurer) segmentWidth(seg []rune, segOffset int, styles []overlay.StyleRange) int {
	if len(styles) == 0 {
		return m.metrics.StringWidth(string(seg), core.WeightNormal)
	}
	w, i := 0, 0
	for _, s := range styles {
		a := s.Start - segOffset
		b := a + s.Length
		if b <= i {
			continue
		}
		if a >= len(seg) {
			break
		}
		a = max(a, i)
		b = min(b, len(seg))
		if a > i {
			w += m.metrics.StringWidth(string(seg[i:a]), core.WeightNormal)
		}
		w += m.metrics.StringWidth(string(seg[a:b]), s.Weight)
		i = b
	}
	if i < len(seg) {
		w += m.metrics.StringWidth(string(seg[i:]), core.WeightNormal)
	}
	return w
}

func indexTab(text []rune, from, end int) int {
	for i := from; i < end; i++ {
		if text[i] == '\t' {
			return i
		}
	}
	return end
}
