package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/styledtext/internal/engine/overlay"
	"github.com/dshills/styledtext/internal/export"
	"github.com/dshills/styledtext/internal/renderer/core"
)

func TestPlainTextNormalizesDelimiters(t *testing.T) {
	e, _ := newTestEditor(t, "line1\r\nline2", 80, 24)
	got, err := e.PlainText(0, e.CharCount(), "\n")
	if err != nil {
		t.Fatal(err)
	}
	if got != "line1\nline2" {
		t.Errorf("PlainText() = %q, want %q", got, "line1\nline2")
	}
}

func TestPlainTextWindow(t *testing.T) {
	e, _ := newTestEditor(t, "abc\ndef\nghi", 80, 24)
	tests := []struct {
		start, length int
		want          string
	}{
		{0, 3, "abc"},
		{1, 4, "bc\r\nd"},
		{2, 2, "c\r\n"},
		{8, 3, "ghi"},
		{5, 0, ""},
	}
	for _, tt := range tests {
		got, err := e.PlainText(tt.start, tt.length, "\r\n")
		if err != nil {
			t.Fatalf("PlainText(%d, %d) failed: %v", tt.start, tt.length, err)
		}
		if got != tt.want {
			t.Errorf("PlainText(%d, %d) = %q, want %q", tt.start, tt.length, got, tt.want)
		}
	}
	if _, err := e.PlainText(5, 20, "\n"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestRTFCarriesStyles(t *testing.T) {
	e, _ := newTestEditor(t, "plain bold", 80, 24)
	r := overlay.StyleRange{Start: 6, Length: 4, Foreground: core.ColorRed, Weight: core.WeightBold}
	if err := e.SetStyleRange(&r); err != nil {
		t.Fatal(err)
	}
	got, err := e.RTF(0, e.CharCount(), export.RTFOptions{FontName: "Go Mono", FontSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`{\rtf1`, `Go Mono`, `\fs20`, `\red255\green0\blue0`, `\b bold\b0`} {
		if !strings.Contains(got, want) {
			t.Errorf("RTF output missing %q:\n%s", want, got)
		}
	}
	if _, err := e.RTF(-1, 2, export.RTFOptions{}); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}
