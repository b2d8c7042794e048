package app

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/styledtext/internal/config"
	"github.com/dshills/styledtext/internal/editor"
	"github.com/dshills/styledtext/internal/renderer/backend"
	"github.com/dshills/styledtext/internal/renderer/core"
	"github.com/dshills/styledtext/internal/renderer/layout"
)

func newTestApp(t *testing.T, path string, cfg config.Options) (*Application, *backend.NullBackend) {
	t.Helper()
	nb := backend.NewNullBackend(40, 6)
	a, err := New(Options{
		Path:      path,
		Config:    cfg,
		Logger:    zerolog.Nop(),
		Backend:   nb,
		Clipboard: &editor.MemoryClipboard{},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, nb
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func keyRune(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func ctrlKey(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r, Mod: backend.ModCtrl}
}

func TestRunTypeSaveQuit(t *testing.T) {
	path := writeTemp(t, "notes.txt", "hello\nworld\n")
	a, nb := newTestApp(t, path, config.Defaults())

	nb.PostEvent(keyRune('x'))
	nb.PostEvent(ctrlKey('s'))
	nb.PostEvent(ctrlKey('q'))
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "xhello\nworld\n" {
		t.Errorf("saved file = %q, want %q", got, "xhello\nworld\n")
	}
	if got := strings.TrimRight(nb.Row(0), " "); got != "xhello" {
		t.Errorf("row 0 = %q, want %q", got, "xhello")
	}
	status := nb.Row(5)
	if !strings.Contains(status, "notes.txt") || !strings.Contains(status, "Ln 1, Col 2") {
		t.Errorf("status row = %q", status)
	}
	if !strings.Contains(a.Message(), "wrote") {
		t.Errorf("Message() = %q, want a write report", a.Message())
	}
}

func TestSaveKeepsCRLF(t *testing.T) {
	path := writeTemp(t, "dos.txt", "a\r\nb")
	a, _ := newTestApp(t, path, config.Defaults())
	if err := a.Editor().Append("\nc"); err != nil {
		t.Fatal(err)
	}
	if _, err := a.save(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if got := string(data); got != "a\r\nb\r\nc" {
		t.Errorf("saved file = %q, want CRLF delimiters", got)
	}
}

func TestSaveWithoutPath(t *testing.T) {
	a, _ := newTestApp(t, "", config.Defaults())
	_, err := a.save()
	if !errors.Is(err, ErrNoFile) {
		t.Errorf("save() error = %v, want ErrNoFile", err)
	}
	var op *OperationError
	if !errors.As(err, &op) || op.Op != "save" {
		t.Errorf("save() error = %v, want a save OperationError", err)
	}
}

func TestExportRTF(t *testing.T) {
	path := writeTemp(t, "main.go", "package main\n")
	a, _ := newTestApp(t, path, config.Defaults())
	if _, err := a.exportRTF(); err != nil {
		t.Fatalf("exportRTF() error = %v", err)
	}
	data, err := os.ReadFile(path + ".rtf")
	if err != nil {
		t.Fatal(err)
	}
	rtf := string(data)
	for _, want := range []string{`{\rtf1`, `\fs24`, "package", `\colortbl`} {
		if !strings.Contains(rtf, want) {
			t.Errorf("RTF output missing %q", want)
		}
	}
}

func TestSnapshotUsesFontMetrics(t *testing.T) {
	path := writeTemp(t, "main.go", "package main\n\nfunc main() {}\n")
	cfg := config.Defaults()
	cfg.Font.Size = 16
	a, nb := newTestApp(t, path, cfg)
	a.layout(nb.Size())
	if err := a.Editor().SetLineBackground(1, 1, core.ColorBlue); err != nil {
		t.Fatal(err)
	}

	nb.PostEvent(ctrlKey('p'))
	if err := a.handleEvent(nb.PollEvent()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(a.Message(), "main.go.png") {
		t.Errorf("Message() = %q, want a snapshot report", a.Message())
	}
	f, err := os.Open(path + ".png")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}

	m, err := layout.NewFaceMetrics(16)
	if err != nil {
		t.Fatal(err)
	}
	// The editor area is 40x5 cells; the status row is not part of the page.
	if got, want := img.Bounds().Dx(), 40*m.AverageCharWidth(); got != want {
		t.Errorf("snapshot width = %d, want %d", got, want)
	}
	if got, want := img.Bounds().Dy(), 5*m.LineHeight(); got != want {
		t.Errorf("snapshot height = %d, want %d", got, want)
	}
	r, g, b, _ := img.At(img.Bounds().Dx()-1, m.LineHeight()+m.LineHeight()/2).RGBA()
	if r != 0 || g != 0 || b>>8 != 255 {
		t.Errorf("line 1 right edge = (%d,%d,%d), want the blue line background", r>>8, g>>8, b>>8)
	}
}

func TestSnapshotWithoutPath(t *testing.T) {
	a, _ := newTestApp(t, "", config.Defaults())
	if _, err := a.snapshot(); !errors.Is(err, ErrNoFile) {
		t.Errorf("snapshot() error = %v, want ErrNoFile", err)
	}
}

func TestHighlightingFromFileName(t *testing.T) {
	path := writeTemp(t, "main.go", "package main\n")
	a, _ := newTestApp(t, path, config.Defaults())
	if a.highlighter == nil {
		t.Fatal("no highlighter for a .go file")
	}
	if got := a.highlighter.Language(); got != "Go" {
		t.Errorf("Language() = %q, want Go", got)
	}
	bg := a.Editor().Colors().Background
	if !bg.Equals(a.highlighter.Theme().Background) {
		t.Errorf("background = %v, want the theme background", bg)
	}

	plain, _ := newTestApp(t, writeTemp(t, "notes.txt", "x"), config.Defaults())
	if plain.highlighter != nil {
		t.Error("highlighter installed for a text file")
	}
}

func TestApplyConfig(t *testing.T) {
	a, _ := newTestApp(t, writeTemp(t, "main.go", "package main\n"), config.Defaults())
	next := config.Defaults()
	next.Editor.TabWidth = 8
	next.Editor.Editable = false
	next.Editor.TextLimit = 50
	next.Highlight.Language = "none-such"
	a.opts.Path = ""

	a.applyConfig(next)
	e := a.Editor()
	if e.Tabs() != 8 {
		t.Errorf("Tabs() = %d, want 8", e.Tabs())
	}
	if e.Editable() {
		t.Error("Editable() = true, want false")
	}
	if e.TextLimit() != 50 {
		t.Errorf("TextLimit() = %d, want 50", e.TextLimit())
	}
	if a.highlighter != nil {
		t.Error("highlighter kept after the language was cleared")
	}
	if a.Message() != "configuration reloaded" {
		t.Errorf("Message() = %q", a.Message())
	}
}

func TestDoubleClick(t *testing.T) {
	a, nb := newTestApp(t, writeTemp(t, "w.txt", "hello world"), config.Defaults())
	if err := a.backend.Init(); err != nil {
		t.Fatal(err)
	}
	a.layout(nb.Size())
	clock := time.Unix(100, 0)
	a.now = func() time.Time { return clock }

	press := backend.Event{Type: backend.EventMouse, MouseX: 7, MouseY: 0, MouseButton: backend.MouseLeft}
	release := backend.Event{Type: backend.EventMouse, MouseX: 7, MouseY: 0, MouseButton: backend.MouseNone}
	a.handleMouse(press)
	a.handleMouse(release)
	clock = clock.Add(100 * time.Millisecond)
	a.handleMouse(press)
	a.handleMouse(release)

	if got := a.Editor().SelectionText(); got != "world" {
		t.Errorf("SelectionText() = %q, want %q", got, "world")
	}

	// A slow second click only places the caret.
	clock = clock.Add(time.Second)
	a.handleMouse(press)
	a.handleMouse(release)
	clock = clock.Add(time.Second)
	a.handleMouse(press)
	a.handleMouse(release)
	if got := a.Editor().SelectionCount(); got != 0 {
		t.Errorf("SelectionCount() = %d after slow clicks, want 0", got)
	}
}

func TestMouseWheelScrolls(t *testing.T) {
	lines := strings.Repeat("line\n", 30)
	a, nb := newTestApp(t, writeTemp(t, "l.txt", lines), config.Defaults())
	a.layout(nb.Size())
	a.handleMouse(backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseWheelDown})
	if got := a.Editor().TopIndex(); got != wheelLines {
		t.Errorf("TopIndex() = %d, want %d", got, wheelLines)
	}
	a.handleMouse(backend.Event{Type: backend.EventMouse, MouseButton: backend.MouseWheelUp})
	if got := a.Editor().TopIndex(); got != 0 {
		t.Errorf("TopIndex() = %d, want 0", got)
	}
}

func TestSchedulerPostsInterrupt(t *testing.T) {
	nb := backend.NewNullBackend(10, 2)
	ran := false
	loopScheduler{poster: nb}.After(time.Millisecond, func() { ran = true })
	ev := nb.PollEvent()
	if ev.Type != backend.EventInterrupt {
		t.Fatalf("event type = %v, want interrupt", ev.Type)
	}
	runInterrupt(ev)
	if !ran {
		t.Error("interrupt task did not run")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, "", config.Defaults())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		text, fallback, want string
	}{
		{"a\nb", "\r\n", "\n"},
		{"a\r\nb", "\n", "\r\n"},
		{"a\rb", "\n", "\r"},
		{"abc", "\r\n", "\r\n"},
		{"a\r", "\n", "\r"},
	}
	for _, tt := range tests {
		if got := detectDelimiter(tt.text, tt.fallback); got != tt.want {
			t.Errorf("detectDelimiter(%q, %q) = %q, want %q", tt.text, tt.fallback, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger("debug", &buf)
	if err != nil {
		t.Fatal(err)
	}
	Component(l, "editor").Debug().Msg("hello")
	out := buf.String()
	if !strings.Contains(out, `"component":"editor"`) || !strings.Contains(out, `"level":"debug"`) {
		t.Errorf("log output = %q", out)
	}

	buf.Reset()
	l, _ = NewLogger("warning", &buf)
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}

	if _, err := NewLogger("loud", &buf); err == nil {
		t.Error("NewLogger() accepted an unknown level")
	}
	if l, err := NewLogger("debug", nil); err != nil || l.GetLevel() != zerolog.Disabled {
		t.Errorf("NewLogger(nil writer) = level %v, err %v; want disabled", l.GetLevel(), err)
	}
}

func TestOperationError(t *testing.T) {
	err := NewOperationError("save", "/tmp/x", os.ErrPermission)
	if got := err.Error(); got != "save /tmp/x: permission denied" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is did not unwrap")
	}
	if got := NewOperationError("quit", "", nil).Error(); got != "quit" {
		t.Errorf("Error() = %q, want quit", got)
	}
}
