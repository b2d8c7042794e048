package app

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLogLevel parses a level name. An empty name means info.
func ParseLogLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(s)
}

// NewLogger creates a timestamped logger writing to w at level. A nil
// writer yields a disabled logger.
func NewLogger(level string, w io.Writer) (zerolog.Logger, error) {
	if w == nil {
		return zerolog.Nop(), nil
	}
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
