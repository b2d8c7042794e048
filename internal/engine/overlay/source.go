package overlay

import "github.com/dshills/styledtext/internal/renderer/core"

// Mode selects who answers style or background queries.
type Mode uint8

const (
	// ModeManaged answers from the overlay's own table.
	ModeManaged Mode = iota
	// ModeExternal answers from registered providers.
	ModeExternal
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeExternal {
		return "external"
	}
	return "managed"
}

// LineStyleProvider supplies style ranges for one line on demand.
// Returned ranges use document offsets.
type LineStyleProvider interface {
	LineStyles(lineOffset int, lineText string) []StyleRange
}

// LineBackgroundProvider supplies the background color for one line on
// demand. An unset color means the widget background.
type LineBackgroundProvider interface {
	LineBackground(lineOffset int, lineText string) core.Color
}

// StyleSource is the tagged variant for the style concern.
type StyleSource struct {
	mode      Mode
	table     *StyleTable
	providers []LineStyleProvider
}

// Mode returns the active mode.
func (s *StyleSource) Mode() Mode {
	return s.mode
}

func (s *StyleSource) add(p LineStyleProvider) {
	if len(s.providers) == 0 {
		s.table.Clear()
		s.mode = ModeExternal
	}
	s.providers = append(s.providers, p)
}

func (s *StyleSource) remove(p LineStyleProvider) bool {
	for i, q := range s.providers {
		if q == p {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			if len(s.providers) == 0 {
				s.mode = ModeManaged
			}
			return true
		}
	}
	return false
}

// lineStyles asks each provider in registration order; the last non-nil
// answer wins.
func (s *StyleSource) lineStyles(lineOffset int, lineText string) []StyleRange {
	var out []StyleRange
	for _, p := range s.providers {
		if got := p.LineStyles(lineOffset, lineText); got != nil {
			out = got
		}
	}
	return out
}

// BackgroundSource is the tagged variant for the line background concern.
type BackgroundSource struct {
	mode      Mode
	table     *BackgroundTable
	providers []LineBackgroundProvider
}

// Mode returns the active mode.
func (s *BackgroundSource) Mode() Mode {
	return s.mode
}

func (s *BackgroundSource) add(p LineBackgroundProvider) {
	if len(s.providers) == 0 {
		s.table.Clear()
		s.mode = ModeExternal
	}
	s.providers = append(s.providers, p)
}

func (s *BackgroundSource) remove(p LineBackgroundProvider) bool {
	for i, q := range s.providers {
		if q == p {
			s.providers = append(s.providers[:i], s.providers[i+1:]...)
			if len(s.providers) == 0 {
				s.mode = ModeManaged
			}
			return true
		}
	}
	return false
}

func (s *BackgroundSource) lineBackground(lineOffset int, lineText string) core.Color {
	c := core.ColorDefault
	for _, p := range s.providers {
		if got := p.LineBackground(lineOffset, lineText); !got.IsDefault() {
			c = got
		}
	}
	return c
}
