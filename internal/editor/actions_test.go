package editor

import (
	"errors"
	"testing"

	"github.com/dshills/styledtext/internal/renderer/backend"
	"github.com/dshills/styledtext/internal/renderer/core"
)

func repeat(e *Editor, a Action, n int) {
	for i := 0; i < n; i++ {
		e.InvokeAction(a)
	}
}

func TestSelectionGrowAndShrink(t *testing.T) {
	e, _ := newTestEditor(t, "0123456789", 80, 24)
	e.SetCaretOffset(2)

	repeat(e, SelectColumnNext, 5)
	if sel := e.Selection(); sel.Start != 2 || sel.End != 7 {
		t.Fatalf("selection = %v, want [2,7)", sel)
	}
	repeat(e, SelectColumnPrevious, 3)
	if sel := e.Selection(); sel.Start != 2 || sel.End != 4 {
		t.Errorf("selection = %v, want [2,4)", sel)
	}
	// Crossing the anchor flips the selection.
	repeat(e, SelectColumnPrevious, 3)
	if sel := e.Selection(); sel.Start != 1 || sel.End != 2 {
		t.Errorf("selection = %v, want [1,2)", sel)
	}
}

func TestSelectionRedrawsOnlyChangedSpan(t *testing.T) {
	e, rec := newTestEditor(t, "0123456789", 80, 24)
	e.SetCaretOffset(2)
	e.InvokeAction(SelectColumnNext)
	rec.Reset()
	e.InvokeAction(SelectColumnNext)
	want := []core.Rect{core.NewRect(3, 0, 1, 1)}
	if got := rec.Redraws(); len(got) != 1 || got[0] != want[0] {
		t.Errorf("redraws = %v, want %v", got, want)
	}
}

func TestNavigationActions(t *testing.T) {
	const text = "hello world\nfoo\nbar baz"
	tests := []struct {
		name   string
		caret  int
		action Action
		want   int
	}{
		{"line down keeps column", 2, LineDown, 14},
		{"line down clamps column", 9, LineDown, 15},
		{"line up", 14, LineUp, 2},
		{"line start", 4, LineStart, 0},
		{"line end", 4, LineEnd, 11},
		{"column next", 4, ColumnNext, 5},
		{"column previous", 4, ColumnPrevious, 3},
		{"column next wraps line", 11, ColumnNext, 12},
		{"word next", 0, WordNext, 6},
		{"word previous", 8, WordPrevious, 6},
		{"text start", 13, TextStart, 0},
		{"text end", 3, TextEnd, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEditor(t, text, 80, 24)
			e.SetCaretOffset(tt.caret)
			e.InvokeAction(tt.action)
			if got := e.CaretOffset(); got != tt.want {
				t.Errorf("CaretOffset() = %d, want %d", got, tt.want)
			}
			if e.SelectionCount() != 0 {
				t.Errorf("SelectionCount() = %d, want 0", e.SelectionCount())
			}
		})
	}
}

func TestColumnPreviousCollapsesSelection(t *testing.T) {
	e, _ := newTestEditor(t, "hello world", 80, 24)
	if err := e.SetSelection(2, 7); err != nil {
		t.Fatal(err)
	}
	e.InvokeAction(ColumnPrevious)
	if e.CaretOffset() != 2 || e.SelectionCount() != 0 {
		t.Errorf("caret = %d, count = %d, want 2 and 0", e.CaretOffset(), e.SelectionCount())
	}
}

func TestPageDownScrolls(t *testing.T) {
	text := "0\n1\n2\n3\n4\n5\n6\n7\n8\n9"
	e, _ := newTestEditor(t, text, 10, 4)
	e.InvokeAction(PageDown)
	if got := e.TopIndex(); got != 3 {
		t.Errorf("TopIndex() = %d, want 3", got)
	}
	if line := e.lineAt(e.CaretOffset()); line != 3 {
		t.Errorf("caret line = %d, want 3", line)
	}
	e.InvokeAction(PageUp)
	if got := e.TopIndex(); got != 0 {
		t.Errorf("TopIndex() = %d after page up, want 0", got)
	}
}

func TestPageDownOnLastLine(t *testing.T) {
	e, _ := newTestEditor(t, "ab\ncd", 10, 4)
	e.SetCaretOffset(3)
	e.InvokeAction(PageDown)
	if e.CaretOffset() != 5 {
		t.Errorf("CaretOffset() = %d, want 5", e.CaretOffset())
	}
	e.InvokeAction(SelectPageUp)
	e.InvokeAction(SelectPageUp)
	if sel := e.Selection(); sel.Start != 0 || sel.End != 5 {
		t.Errorf("selection = %v, want [0,5)", sel)
	}
}

func TestDeleteActions(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		caret  int
		action Action
		want   string
	}{
		{"backspace", "abc", 2, DeletePrevious, "ac"},
		{"backspace at start", "abc", 0, DeletePrevious, "abc"},
		{"backspace joins lines", "ab\ncd", 3, DeletePrevious, "abcd"},
		{"backspace joins crlf", "ab\r\ncd", 4, DeletePrevious, "abcd"},
		{"delete", "abc", 1, DeleteNext, "ac"},
		{"delete at end", "abc", 3, DeleteNext, "abc"},
		{"delete joins lines", "ab\ncd", 2, DeleteNext, "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEditor(t, tt.text, 80, 24)
			e.SetCaretOffset(tt.caret)
			e.InvokeAction(tt.action)
			if got := e.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCutCopyPaste(t *testing.T) {
	clip := &MemoryClipboard{}
	e := New(WithClipboard(clip))
	e.Resize(80, 24)
	if err := e.SetText("one\ntwo"); err != nil {
		t.Fatal(err)
	}
	if err := e.SetSelection(2, 5); err != nil {
		t.Fatal(err)
	}
	e.InvokeAction(Copy)
	if got, _ := clip.Read(); got != "e\nt" {
		t.Errorf("clipboard = %q, want %q", got, "e\nt")
	}
	e.InvokeAction(Cut)
	if got := e.Text(); got != "onwo" {
		t.Errorf("Text() after cut = %q, want %q", got, "onwo")
	}
	e.InvokeAction(TextEnd)
	e.InvokeAction(Paste)
	if got := e.Text(); got != "onwoe\nt" {
		t.Errorf("Text() after paste = %q, want %q", got, "onwoe\nt")
	}
	if e.CaretOffset() != e.CharCount() {
		t.Errorf("CaretOffset() = %d, want %d", e.CaretOffset(), e.CharCount())
	}
}

func TestPasteConvertsDelimiters(t *testing.T) {
	clip := &MemoryClipboard{}
	if err := clip.Write("a\r\nb\rc"); err != nil {
		t.Fatal(err)
	}
	e := New(WithClipboard(clip))
	if err := e.Paste(); err != nil {
		t.Fatal(err)
	}
	if got := e.Text(); got != "a\nb\nc" {
		t.Errorf("Text() = %q, want %q", got, "a\nb\nc")
	}
}

func TestPasteHonorsTextLimit(t *testing.T) {
	clip := &MemoryClipboard{}
	if err := clip.Write("abcdef"); err != nil {
		t.Fatal(err)
	}
	e := New(WithClipboard(clip), WithTextLimit(4))
	if err := e.SetText("x"); err != nil {
		t.Fatal(err)
	}
	if err := e.Paste(); err != nil {
		t.Fatal(err)
	}
	if got := e.Text(); got != "abcx" {
		t.Errorf("Text() = %q, want %q", got, "abcx")
	}
}

type failingClipboard struct{}

var errClipboard = errors.New("clipboard unavailable")

func (failingClipboard) Read() (string, error) { return "", errClipboard }
func (failingClipboard) Write(string) error    { return errClipboard }

func TestClipboardErrors(t *testing.T) {
	e := New(WithClipboard(failingClipboard{}))
	if err := e.SetText("abc"); err != nil {
		t.Fatal(err)
	}
	e.SelectAll()
	if err := e.Copy(); !errors.Is(err, errClipboard) {
		t.Errorf("Copy() = %v, want clipboard error", err)
	}
	if err := e.Cut(); !errors.Is(err, errClipboard) {
		t.Errorf("Cut() = %v, want clipboard error", err)
	}
	if e.Text() != "abc" {
		t.Errorf("Text() = %q, want failed cut to keep the text", e.Text())
	}
	if err := e.Paste(); !errors.Is(err, errClipboard) {
		t.Errorf("Paste() = %v, want clipboard error", err)
	}
}

func TestSelectionListener(t *testing.T) {
	e, _ := newTestEditor(t, "hello", 80, 24)
	var events []SelectionEvent
	if _, err := e.AddSelectionListener(func(ev SelectionEvent) { events = append(events, ev) }); err != nil {
		t.Fatal(err)
	}
	e.InvokeAction(SelectLineEnd)
	e.InvokeAction(LineStart)
	want := []SelectionEvent{{Start: 0, End: 5}, {Start: 0, End: 0}}
	if len(events) != len(want) {
		t.Fatalf("events = %+v, want %+v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestSetSelectionValidation(t *testing.T) {
	e, _ := newTestEditor(t, "hello", 80, 24)
	if err := e.SetSelection(3, 1); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetSelection(3, 1) = %v, want ErrInvalidRange", err)
	}
	if err := e.SetSelectionRange(2, 10); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("SetSelectionRange(2, 10) = %v, want ErrInvalidRange", err)
	}
	if err := e.SetSelectionRange(4, -3); err != nil {
		t.Fatal(err)
	}
	if sel := e.Selection(); sel.Start != 1 || sel.End != 4 {
		t.Errorf("selection = %v, want [1,4)", sel)
	}
	if e.CaretOffset() != 1 {
		t.Errorf("CaretOffset() = %d, want 1 for a backward selection", e.CaretOffset())
	}
	if got := e.SelectionText(); got != "ell" {
		t.Errorf("SelectionText() = %q, want %q", got, "ell")
	}
}

func TestKeyBindings(t *testing.T) {
	e, _ := newTestEditor(t, "hello world", 80, 24)
	if got := e.KeyBinding(Key(backend.KeyRight, backend.ModCtrl|backend.ModShift)); got != SelectWordNext {
		t.Errorf("Ctrl+Shift+Right bound to %v, want %v", got, SelectWordNext)
	}
	if !e.HandleKey(Key(backend.KeyEnd, backend.ModShift)) {
		t.Fatal("HandleKey(Shift+End) = false")
	}
	if e.SelectionCount() != 11 {
		t.Errorf("SelectionCount() = %d, want 11", e.SelectionCount())
	}

	e.SetKeyBinding(Ctrl('a'), SelectTextEnd)
	e.SetCaretOffset(0)
	e.HandleKey(Ctrl('a'))
	if e.SelectionCount() != 11 {
		t.Errorf("SelectionCount() = %d after custom binding, want 11", e.SelectionCount())
	}
	e.SetKeyBinding(Ctrl('a'), ActionNone)
	if e.HandleKey(Ctrl('a')) {
		t.Error("HandleKey(Ctrl+a) = true after unbinding")
	}
}

func TestKeyStrokeCharacter(t *testing.T) {
	tests := []struct {
		stroke KeyStroke
		want   rune
		ok     bool
	}{
		{KeyStroke{Key: backend.KeyRune, Rune: 'a'}, 'a', true},
		{KeyStroke{Key: backend.KeyRune, Rune: 'A', Mod: backend.ModShift}, 'A', true},
		{Key(backend.KeyEnter, backend.ModNone), '\r', true},
		{Key(backend.KeyTab, backend.ModNone), '\t', true},
		{Ctrl('x'), 0, false},
		{KeyStroke{Key: backend.KeyRune, Rune: 'q', Mod: backend.ModAlt}, 0, false},
		{KeyStroke{Key: backend.KeyRune, Rune: 0x7F}, 0, false},
		{Key(backend.KeyEscape, backend.ModNone), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.stroke.character()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.character() = %q, %v, want %q, %v", tt.stroke, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyStrokeString(t *testing.T) {
	if got := Ctrl('s').String(); got != "Ctrl+s" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+s")
	}
	if got := Key(backend.KeyLeft, backend.ModCtrl|backend.ModShift).String(); got != "Ctrl+Shift+Left" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+Shift+Left")
	}
}

func TestParseAction(t *testing.T) {
	for a, name := range actionNames {
		got, ok := ParseAction(name)
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v, want %v", name, got, ok, a)
		}
		if a.String() != name {
			t.Errorf("%d.String() = %q, want %q", a, a.String(), name)
		}
	}
	if _, ok := ParseAction("no.such.action"); ok {
		t.Error("ParseAction accepted an unknown name")
	}
}
