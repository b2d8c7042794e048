package backend

import (
	"testing"

	"github.com/dshills/styledtext/internal/renderer/core"
)

func fillRows(c *Canvas, rows ...string) {
	for y, r := range rows {
		c.DrawText(0, y, r, core.DefaultStyle())
	}
}

func TestCanvasDrawTextClips(t *testing.T) {
	b := NewNullBackend(6, 2)
	c := NewCanvas(b, core.NewRect(1, 0, 4, 2))

	c.DrawText(-1, 0, "abcdef", core.DefaultStyle())
	if got := b.Row(0); got != " bcde " {
		t.Errorf("row 0 = %q, want %q", got, " bcde ")
	}

	c.DrawText(0, 5, "zz", core.DefaultStyle())
	if got := b.Row(1); got != "      " {
		t.Errorf("row 1 = %q, want blank", got)
	}
}

func TestCanvasDrawTextWide(t *testing.T) {
	b := NewNullBackend(6, 1)
	c := NewCanvas(b, core.NewRect(0, 0, 6, 1))
	c.DrawText(0, 0, "a世b", core.DefaultStyle())

	if got := b.GetCell(1, 0); got.Rune != '世' || got.Width != 2 {
		t.Errorf("cell 1 = %+v, want wide rune", got)
	}
	if !b.GetCell(2, 0).IsContinuation() {
		t.Error("cell 2 should be a continuation")
	}
	if got := b.GetCell(3, 0).Rune; got != 'b' {
		t.Errorf("cell 3 = %q, want 'b'", got)
	}
}

func TestCanvasFillRect(t *testing.T) {
	b := NewNullBackend(4, 3)
	c := NewCanvas(b, core.NewRect(0, 0, 4, 3))
	fillRows(c, "abcd", "efgh", "ijkl")

	c.FillRect(1, 1, 10, 1, core.ColorBlue)
	if got := b.Row(1); got != "e   " {
		t.Errorf("row 1 = %q, want %q", got, "e   ")
	}
	if got := b.GetCell(3, 1).Style.Background; !got.Equals(core.ColorBlue) {
		t.Errorf("background = %v, want blue", got)
	}
}

func TestCanvasScroll(t *testing.T) {
	tests := []struct {
		name string
		src  core.Rect
		dest core.Point
		want []string
	}{
		{"up", core.NewRect(0, 1, 4, 2), core.Point{X: 0, Y: 0}, []string{"efgh", "ijkl", "ijkl"}},
		{"down", core.NewRect(0, 0, 4, 2), core.Point{X: 0, Y: 1}, []string{"abcd", "abcd", "efgh"}},
		{"left", core.NewRect(1, 0, 3, 3), core.Point{X: 0, Y: 0}, []string{"bcdd", "fghh", "jkll"}},
		{"right", core.NewRect(0, 0, 3, 3), core.Point{X: 1, Y: 0}, []string{"aabc", "eefg", "iijk"}},
		{"partly outside", core.NewRect(0, 2, 4, 5), core.Point{X: 0, Y: 1}, []string{"abcd", "ijkl", "ijkl"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewNullBackend(4, 3)
			c := NewCanvas(b, core.NewRect(0, 0, 4, 3))
			fillRows(c, "abcd", "efgh", "ijkl")

			c.Scroll(tt.src, tt.dest)
			for y, want := range tt.want {
				if got := b.Row(y); got != want {
					t.Errorf("row %d = %q, want %q", y, got, want)
				}
			}
		})
	}
}

func TestCanvasDamage(t *testing.T) {
	c := NewCanvas(NewNullBackend(10, 10), core.NewRect(0, 0, 10, 10))
	c.Redraw(core.NewRect(1, 1, 2, 2))
	c.Redraw(core.NewRect(5, 5, 20, 1))

	want := core.NewRect(1, 1, 9, 5)
	if got := c.TakeDamage(); got != want {
		t.Errorf("damage = %v, want %v", got, want)
	}
	if got := c.Damage(); !got.IsEmpty() {
		t.Errorf("damage after take = %v, want empty", got)
	}
}

func TestCanvasCaret(t *testing.T) {
	b := NewNullBackend(10, 10)
	c := NewCanvas(b, core.NewRect(2, 3, 5, 5))

	c.SetCaret(1, 1, true)
	x, y, visible := b.CursorPosition()
	if x != 3 || y != 4 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (3, 4, true)", x, y, visible)
	}

	c.SetCaret(6, 1, true)
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("caret outside the canvas should hide the cursor")
	}
}
