package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/styledtext/internal/renderer/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
	d := Defaults()
	if d.Editor.TabWidth != 4 || d.Editor.TextLimit != -1 || !d.Editor.Editable {
		t.Errorf("editor defaults = %+v", d.Editor)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "styledit.toml", `
[editor]
tab_width = 2
text_limit = 100
overwrite = true

[colors]
background = "#101010"

[highlight]
language = "go"
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.Editor.TabWidth != 2 {
		t.Errorf("TabWidth = %d, want 2", opts.Editor.TabWidth)
	}
	if opts.Editor.TextLimit != 100 {
		t.Errorf("TextLimit = %d, want 100", opts.Editor.TextLimit)
	}
	if !opts.Editor.Overwrite {
		t.Error("Overwrite = false, want true")
	}
	// Keys missing from the file keep their defaults.
	if !opts.Editor.DoubleClick {
		t.Error("DoubleClick = false, want default true")
	}
	if opts.Highlight.Style != "monokai" {
		t.Errorf("Style = %q, want monokai", opts.Highlight.Style)
	}
	if got := Color(opts.Colors.Background); !got.Equals(core.ColorFromRGB(16, 16, 16)) {
		t.Errorf("background = %v, want #101010", got)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"styledit.yaml", "styledit.yml"} {
		path := writeFile(t, dir, name, `
editor:
  tab_width: 8
  line_delimiter: "\r\n"
log:
  level: debug
`)
		opts, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if opts.Editor.TabWidth != 8 {
			t.Errorf("%s: TabWidth = %d, want 8", name, opts.Editor.TabWidth)
		}
		if opts.Editor.LineDelimiter != "\r\n" {
			t.Errorf("%s: LineDelimiter = %q, want CRLF", name, opts.Editor.LineDelimiter)
		}
		if opts.Log.Level != "debug" {
			t.Errorf("%s: Level = %q, want debug", name, opts.Log.Level)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts != Defaults() {
		t.Errorf("Load() = %+v, want defaults", opts)
	}
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Load() error = %v, want ErrUnknownFormat", err)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("bad.toml", FormatTOML, []byte("[editor\ntab_width = "))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if pe.Path != "bad.toml" {
		t.Errorf("ParseError.Path = %q, want bad.toml", pe.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		path   string
	}{
		{"zero text limit", func(o *Options) { o.Editor.TextLimit = 0 }, "editor.text_limit"},
		{"negative text limit", func(o *Options) { o.Editor.TextLimit = -5 }, "editor.text_limit"},
		{"zero tab width", func(o *Options) { o.Editor.TabWidth = 0 }, "editor.tab_width"},
		{"zero font size", func(o *Options) { o.Font.Size = 0 }, "font.size"},
		{"bad delimiter", func(o *Options) { o.Editor.LineDelimiter = ";" }, "editor.line_delimiter"},
		{"bad color", func(o *Options) { o.Colors.Foreground = "#12" }, "colors.foreground"},
		{"bad level", func(o *Options) { o.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Defaults()
			tt.modify(&opts)
			err := opts.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("Validate() path = %v, want %s", err, tt.path)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.toml", FormatTOML, true},
		{"a.TOML", FormatTOML, true},
		{"a.yaml", FormatYAML, true},
		{"a.yml", FormatYAML, true},
		{"a.ini", 0, false},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if (err == nil) != tt.ok {
			t.Errorf("FormatFor(%q) error = %v", tt.path, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("FormatFor(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "styledit.toml", "[editor]\ntab_width = 2\n")

	reloaded := make(chan Options, 4)
	w, err := NewWatcher(path, func(opts Options, err error) {
		if err == nil {
			reloaded <- opts
		}
	}, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "styledit.toml", "[editor]\ntab_width = 6\n")

	select {
	case opts := <-reloaded:
		if opts.Editor.TabWidth != 6 {
			t.Errorf("reloaded TabWidth = %d, want 6", opts.Editor.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing the file")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "styledit.toml", "")

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(path, func(Options, error) {
		reloaded <- struct{}{}
	}, WithDebounce(0))
	if err != nil {
		t.Fatal(err)
	}

	writeFile(t, dir, "other.toml", "x = 1")
	select {
	case <-reloaded:
		t.Error("reload for a sibling file")
	case <-time.After(200 * time.Millisecond):
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestNewWatcherUnknownFormat(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "x.conf"), func(Options, error) {})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("NewWatcher() error = %v, want ErrUnknownFormat", err)
	}
}
