package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/styledtext/internal/renderer/core"
)

// Options is the contents of an options file.
type Options struct {
	Editor    EditorSection    `toml:"editor" yaml:"editor"`
	Font      FontSection      `toml:"font" yaml:"font"`
	Colors    ColorSection     `toml:"colors" yaml:"colors"`
	Highlight HighlightSection `toml:"highlight" yaml:"highlight"`
	Log       LogSection       `toml:"log" yaml:"log"`
}

// EditorSection holds the widget behavior options.
type EditorSection struct {
	TabWidth      int    `toml:"tab_width" yaml:"tab_width"`
	TextLimit     int    `toml:"text_limit" yaml:"text_limit"`
	DoubleClick   bool   `toml:"double_click" yaml:"double_click"`
	Overwrite     bool   `toml:"overwrite" yaml:"overwrite"`
	Editable      bool   `toml:"editable" yaml:"editable"`
	LineDelimiter string `toml:"line_delimiter" yaml:"line_delimiter"`
}

// FontSection names the font used for export headers.
type FontSection struct {
	Name string `toml:"name" yaml:"name"`
	Size int    `toml:"size" yaml:"size"`
}

// ColorSection holds widget colors as hex strings. Empty means the
// terminal default.
type ColorSection struct {
	Foreground          string `toml:"foreground" yaml:"foreground"`
	Background          string `toml:"background" yaml:"background"`
	SelectionForeground string `toml:"selection_foreground" yaml:"selection_foreground"`
	SelectionBackground string `toml:"selection_background" yaml:"selection_background"`
}

// HighlightSection selects syntax coloring. An empty language turns it
// off unless a file name picks a lexer.
type HighlightSection struct {
	Language string `toml:"language" yaml:"language"`
	Style    string `toml:"style" yaml:"style"`
}

// LogSection configures logging.
type LogSection struct {
	Level string `toml:"level" yaml:"level"`
}

// Defaults returns the built-in options.
func Defaults() Options {
	return Options{
		Editor: EditorSection{
			TabWidth:      4,
			TextLimit:     -1,
			DoubleClick:   true,
			Editable:      true,
			LineDelimiter: "\n",
		},
		Font: FontSection{
			Name: "Go",
			Size: 12,
		},
		Colors: ColorSection{
			SelectionForeground: "#ffffff",
			SelectionBackground: "#264f78",
		},
		Highlight: HighlightSection{
			Style: "monokai",
		},
		Log: LogSection{
			Level: "info",
		},
	}
}

// Format is an options file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFor returns the format of path by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads options from path. A missing file returns the defaults.
func Load(path string) (Options, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Options{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Options{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, format, data)
}

// Parse decodes data over the defaults and validates the result. source
// names the data in errors.
func Parse(source string, format Format, data []byte) (Options, error) {
	opts := Defaults()
	var err error
	switch format {
	case FormatYAML:
		if len(bytes.TrimSpace(data)) > 0 {
			err = yaml.Unmarshal(data, &opts)
		}
	default:
		err = toml.Unmarshal(data, &opts)
	}
	if err != nil {
		return Options{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks option ranges.
func (o Options) Validate() error {
	switch {
	case o.Editor.TabWidth < 1:
		return &ValidationError{Path: "editor.tab_width", Message: "must be at least 1", Value: o.Editor.TabWidth}
	case o.Editor.TextLimit == 0:
		return &ValidationError{Path: "editor.text_limit", Message: "cannot be zero", Value: o.Editor.TextLimit}
	case o.Editor.TextLimit < -1:
		return &ValidationError{Path: "editor.text_limit", Message: "must be -1 or positive", Value: o.Editor.TextLimit}
	case o.Font.Size < 1:
		return &ValidationError{Path: "font.size", Message: "must be at least 1", Value: o.Font.Size}
	}
	switch o.Editor.LineDelimiter {
	case "\n", "\r\n", "\r":
	default:
		return &ValidationError{Path: "editor.line_delimiter", Message: "must be LF, CRLF or CR", Value: fmt.Sprintf("%q", o.Editor.LineDelimiter)}
	}
	colors := []struct {
		path, value string
	}{
		{"colors.foreground", o.Colors.Foreground},
		{"colors.background", o.Colors.Background},
		{"colors.selection_foreground", o.Colors.SelectionForeground},
		{"colors.selection_background", o.Colors.SelectionBackground},
	}
	for _, c := range colors {
		if _, err := core.ColorFromHex(c.value); err != nil {
			return &ValidationError{Path: c.path, Message: err.Error(), Value: c.value}
		}
	}
	switch strings.ToLower(o.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		return &ValidationError{Path: "log.level", Message: "unknown level", Value: o.Log.Level}
	}
	return nil
}

// Color parses one of the hex color options. Invalid values were rejected
// by Validate, so errors map to the default color.
func Color(hex string) core.Color {
	c, err := core.ColorFromHex(hex)
	if err != nil {
		return core.ColorDefault
	}
	return c
}
