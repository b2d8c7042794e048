package selection

import (
	"reflect"
	"testing"
)

func TestExtendGrowAndShrink(t *testing.T) {
	s := New()
	s.MoveCaret(2)
	s.Collapse()

	s.MoveCaret(7)
	changed, ok := s.Extend(TowardEnd)
	if !ok || changed != (Range{2, 7}) {
		t.Errorf("Extend grow changed = %v, %v; want [2,7), true", changed, ok)
	}
	if s.Selection() != (Range{2, 7}) {
		t.Errorf("Selection() = %v, want [2,7)", s.Selection())
	}
	if s.Anchor() != 2 {
		t.Errorf("Anchor() = %d, want 2", s.Anchor())
	}

	s.MoveCaret(4)
	changed, ok = s.Extend(TowardStart)
	if !ok || changed != (Range{4, 7}) {
		t.Errorf("Extend shrink changed = %v, %v; want [4,7), true", changed, ok)
	}
	if s.Selection() != (Range{2, 4}) {
		t.Errorf("Selection() = %v, want [2,4)", s.Selection())
	}
}

func TestExtendFlip(t *testing.T) {
	s := New()
	s.MoveCaret(2)
	s.Collapse()
	s.MoveCaret(4)
	s.Extend(TowardEnd)

	s.MoveCaret(0)
	changed, ok := s.Extend(TowardStart)
	if !ok || changed != (Range{0, 4}) {
		t.Errorf("Extend flip changed = %v, %v; want [0,4), true", changed, ok)
	}
	if s.Selection() != (Range{0, 2}) {
		t.Errorf("Selection() = %v, want [0,2)", s.Selection())
	}

	s.MoveCaret(6)
	changed, ok = s.Extend(TowardEnd)
	if !ok || changed != (Range{0, 6}) {
		t.Errorf("Extend flip back changed = %v, %v; want [0,6), true", changed, ok)
	}
	if s.Selection() != (Range{2, 6}) {
		t.Errorf("Selection() = %v, want [2,6)", s.Selection())
	}
}

func TestExtendNoChange(t *testing.T) {
	s := New()
	s.MoveCaret(3)
	s.Collapse()
	if _, ok := s.Extend(TowardStart); ok {
		t.Error("Extend without caret movement reported a change")
	}
}

func TestCollapse(t *testing.T) {
	s := New()
	s.Select(2, 5)
	old := s.Collapse()
	if old != (Range{2, 7}) {
		t.Errorf("Collapse() = %v, want [2,7)", old)
	}
	if s.Selection() != (Range{7, 7}) || s.Anchor() != NoAnchor {
		t.Errorf("after Collapse: sel %v anchor %d", s.Selection(), s.Anchor())
	}
}

func TestMouseDirection(t *testing.T) {
	tests := []struct {
		caret int
		want  Direction
	}{
		{1, TowardStart},
		{2, TowardStart},
		{5, TowardStart},
		{8, TowardEnd},
	}
	for _, tt := range tests {
		s := New()
		s.Select(2, 5)
		s.MoveCaret(tt.caret)
		if got := s.MouseDirection(); got != tt.want {
			t.Errorf("caret %d: MouseDirection() = %v, want %v", tt.caret, got, tt.want)
		}
	}
}

func TestAdjustForEdit(t *testing.T) {
	tests := []struct {
		name                      string
		start, replaced, inserted int
		want                      EditUpdate
	}{
		{
			name:  "before shifts",
			start: 0, replaced: 1, inserted: 3,
			want: EditUpdate{Redraw: []Range{{3, 10}}, Reselect: true, Start: 6, Length: 4},
		},
		{
			name:  "insert at selection start shifts",
			start: 4, replaced: 0, inserted: 2,
			want: EditUpdate{Redraw: []Range{{6, 10}}, Reselect: true, Start: 6, Length: 4},
		},
		{
			name:  "after leaves alone",
			start: 8, replaced: 2, inserted: 5,
			want: EditUpdate{},
		},
		{
			name:  "intersecting collapses",
			start: 6, replaced: 4, inserted: 1,
			want: EditUpdate{Redraw: []Range{{4, 6}}, Reselect: true, Start: 7, Length: 0},
		},
		{
			name:  "insert inside collapses",
			start: 5, replaced: 0, inserted: 3,
			want: EditUpdate{Redraw: []Range{{4, 5}, {8, 11}}, Reselect: true, Start: 8, Length: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Select(4, 4)
			got := s.AdjustForEdit(tt.start, tt.replaced, tt.inserted)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AdjustForEdit(%d, %d, %d) = %+v, want %+v",
					tt.start, tt.replaced, tt.inserted, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	s := New()
	s.Select(3, 9)
	s.Clamp(5)
	if s.Caret() != 5 || s.Selection() != (Range{3, 5}) || s.Anchor() != 3 {
		t.Errorf("after Clamp: caret %d sel %v anchor %d", s.Caret(), s.Selection(), s.Anchor())
	}
}
