package overlay

import (
	"fmt"

	"github.com/dshills/styledtext/internal/renderer/core"
)

// StyleRange annotates a contiguous span of characters.
type StyleRange struct {
	Start      int
	Length     int
	Foreground core.Color
	Background core.Color
	Weight     core.Weight
}

// NewStyleRange creates a range with unset colors and normal weight.
func NewStyleRange(start, length int) StyleRange {
	return StyleRange{
		Start:      start,
		Length:     length,
		Foreground: core.ColorDefault,
		Background: core.ColorDefault,
	}
}

// End returns the exclusive end offset.
func (r StyleRange) End() int {
	return r.Start + r.Length
}

// Style returns the rendering attributes of the range.
func (r StyleRange) Style() core.Style {
	return core.Style{Foreground: r.Foreground, Background: r.Background, Weight: r.Weight}
}

// WithStyle returns a copy of r carrying the attributes of s.
func (r StyleRange) WithStyle(s core.Style) StyleRange {
	r.Foreground = s.Foreground
	r.Background = s.Background
	r.Weight = s.Weight
	return r
}

// IsUnstyled reports whether the range changes nothing.
func (r StyleRange) IsUnstyled() bool {
	return r.Foreground.IsDefault() && r.Background.IsDefault() && r.Weight == core.WeightNormal
}

// SimilarTo reports whether both ranges carry the same attributes.
func (r StyleRange) SimilarTo(other StyleRange) bool {
	return r.Style().Equals(other.Style())
}

// Contains reports whether offset falls inside the range.
func (r StyleRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End()
}

// String returns a human-readable representation of the range.
func (r StyleRange) String() string {
	return fmt.Sprintf("{%d,+%d fg=%v bg=%v %v}", r.Start, r.Length, r.Foreground, r.Background, r.Weight)
}

// ClipToLine returns the parts of ranges that intersect the line
// [lineOffset, lineOffset+lineLength), in input order.
func ClipToLine(ranges []StyleRange, lineOffset, lineLength int) []StyleRange {
	lineEnd := lineOffset + lineLength
	var out []StyleRange
	for _, r := range ranges {
		if r.Length <= 0 || r.End() <= lineOffset || r.Start >= lineEnd {
			continue
		}
		if r.Start < lineOffset {
			r.Length -= lineOffset - r.Start
			r.Start = lineOffset
		}
		if r.End() > lineEnd {
			r.Length = lineEnd - r.Start
		}
		out = append(out, r)
	}
	return out
}
