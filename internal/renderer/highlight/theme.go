package highlight

import (
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/dshills/styledtext/internal/renderer/core"
)

// DefaultThemeName is used when no theme is configured.
const DefaultThemeName = "monokai"

// Theme maps chroma token types to text styles.
type Theme struct {
	// Name is the chroma style name.
	Name string

	// Background is the editor background color of the style.
	Background core.Color

	// Foreground is the default text color of the style.
	Foreground core.Color

	style *chroma.Style
}

// LoadTheme returns the theme for a chroma style name. Unknown names fall
// back to chroma's fallback style.
func LoadTheme(name string) *Theme {
	sty := styles.Get(name)
	base := sty.Get(chroma.Background)
	return &Theme{
		Name:       sty.Name,
		Background: colour(base.Background),
		Foreground: colour(base.Colour),
		style:      sty,
	}
}

// DefaultTheme returns the monokai theme.
func DefaultTheme() *Theme {
	return LoadTheme(DefaultThemeName)
}

// StyleForToken returns the style for a token type. Attributes equal to
// the theme defaults are left unset so the widget colors apply.
func (t *Theme) StyleForToken(tt chroma.TokenType) core.Style {
	entry := t.style.Get(tt)
	var s core.Style
	if fg := colour(entry.Colour); !fg.Equals(t.Foreground) {
		s.Foreground = fg
	}
	if bg := colour(entry.Background); !bg.Equals(t.Background) {
		s.Background = bg
	}
	if entry.Bold == chroma.Yes {
		s.Weight = core.WeightBold
	}
	return s
}

// ThemeNames returns the names of the registered chroma styles.
func ThemeNames() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}

func colour(c chroma.Colour) core.Color {
	if !c.IsSet() {
		return core.ColorDefault
	}
	return core.ColorFromRGB(c.Red(), c.Green(), c.Blue())
}
