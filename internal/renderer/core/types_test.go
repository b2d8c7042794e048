package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"00ff00", ColorGreen, false},
		{"#fff", ColorWhite, false},
		{"", ColorDefault, false},
		{"default", ColorDefault, false},
		{"#12345", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ColorFromHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ColorFromHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equals(tt.want) {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{R: 9}) {
		t.Error("default colors should compare equal")
	}
	if ColorDefault.Equals(ColorBlack) {
		t.Error("default should not equal black")
	}
	if ColorRed.Or(ColorBlue) != ColorRed {
		t.Error("Or() replaced a set color")
	}
	if ColorDefault.Or(ColorBlue) != ColorBlue {
		t.Error("Or() did not replace an unset color")
	}
}

func TestColorBlendEndpoints(t *testing.T) {
	if got := ColorBlack.Blend(ColorWhite, 0); !got.Equals(ColorBlack) {
		t.Errorf("Blend(0) = %v, want black", got)
	}
	if got := ColorBlack.Blend(ColorWhite, 1); !got.Equals(ColorWhite) {
		t.Errorf("Blend(1) = %v, want white", got)
	}
	if got := hexRoundTrip(ColorFromRGB(1, 2, 3)); got != "#010203" {
		t.Errorf("ToHex() = %q, want #010203", got)
	}
}

func hexRoundTrip(c Color) string {
	parsed, err := ColorFromHex(c.ToHex())
	if err != nil {
		return err.Error()
	}
	return parsed.ToHex()
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	got := a.Intersection(b)
	if got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("Intersection() = %v, want (5,5 5x5)", got)
	}
	if !a.Intersection(NewRect(20, 20, 1, 1)).IsEmpty() {
		t.Error("disjoint intersection should be empty")
	}
	if u := a.Union(b); u != (Rect{Width: 15, Height: 15}) {
		t.Errorf("Union() = %v, want (0,0 15x15)", u)
	}
	if NewRect(0, 0, -3, 4).Width != 0 {
		t.Error("NewRect should clamp negative width")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 0},
		{'中', 2},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}
