package editor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/styledtext/internal/renderer/core"
	"github.com/dshills/styledtext/internal/renderer/dirty"
	"github.com/dshills/styledtext/internal/renderer/layout"
)

// Default configuration values.
const (
	DefaultTabLength  = 4
	DefaultCacheLines = 4096

	// Unlimited disables the text limit.
	Unlimited = -1

	verticalScrollRate   = 5 * time.Millisecond
	horizontalScrollRate = 10 * time.Millisecond
)

// Colors are the widget colors. Unset colors fall back to the backend
// default.
type Colors struct {
	Foreground          core.Color
	Background          core.Color
	SelectionForeground core.Color
	SelectionBackground core.Color
}

// DefaultColors returns the terminal defaults with a blue selection.
func DefaultColors() Colors {
	return Colors{
		SelectionForeground: core.ColorWhite,
		SelectionBackground: core.ColorFromRGB(0x26, 0x4F, 0x78),
	}
}

// Option configures an Editor during creation.
type Option func(*Editor)

// WithLogger sets the logger. The editor adds its id to every entry.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Editor) {
		e.log = l
	}
}

// WithTabs sets the tab length in characters.
func WithTabs(n int) Option {
	return func(e *Editor) {
		if n >= 0 {
			e.tabLength = n
		}
	}
}

// WithTextLimit caps the number of characters typed text may grow the
// document to. Unlimited or any negative value disables the cap; zero is
// ignored.
func WithTextLimit(n int) Option {
	return func(e *Editor) {
		if n != 0 {
			e.textLimit = n
		}
	}
}

// WithEditable sets whether keyboard edits are accepted.
func WithEditable(editable bool) Option {
	return func(e *Editor) {
		e.editable = editable
	}
}

// WithDoubleClick sets whether a double click selects a word.
func WithDoubleClick(enabled bool) Option {
	return func(e *Editor) {
		e.doubleClickEnabled = enabled
	}
}

// WithOverwrite starts the editor in overwrite mode.
func WithOverwrite(overwrite bool) Option {
	return func(e *Editor) {
		e.overwrite = overwrite
	}
}

// WithColors sets the widget colors.
func WithColors(c Colors) Option {
	return func(e *Editor) {
		e.colors = c
	}
}

// WithClipboard sets the clipboard used by Cut, Copy and Paste.
func WithClipboard(c Clipboard) Option {
	return func(e *Editor) {
		if c != nil {
			e.clipboard = c
		}
	}
}

// WithMetrics sets the font metrics.
func WithMetrics(m layout.Metrics) Option {
	return func(e *Editor) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSink sets the receiver of scroll and redraw operations.
func WithSink(s dirty.Sink) Option {
	return func(e *Editor) {
		e.sink = s
	}
}

// WithScheduler sets the scheduler that drives autoscroll.
func WithScheduler(s Scheduler) Option {
	return func(e *Editor) {
		e.scheduler = s
	}
}

// WithDelimiter sets the platform line delimiter used for copied text.
func WithDelimiter(d string) Option {
	return func(e *Editor) {
		if d != "" {
			e.delimiter = d
		}
	}
}
