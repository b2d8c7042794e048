package layout

import "testing"

func countingCache(maxSize int) (*WidthCache, *int) {
	calls := 0
	c := NewWidthCache(func(s string) int {
		calls++
		return len(s)
	}, maxSize)
	return c, &calls
}

func TestWidthCacheHit(t *testing.T) {
	c, calls := countingCache(0)
	if w := c.Width(0, "hello"); w != 5 {
		t.Errorf("Width() = %d, want 5", w)
	}
	c.Width(0, "hello")
	if *calls != 1 {
		t.Errorf("measure called %d times, want 1", *calls)
	}
	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Stats() hits=%d misses=%d, want 1 and 1", stats.Hits, stats.Misses)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", stats.HitRate)
	}
}

func TestWidthCacheTextChange(t *testing.T) {
	c, calls := countingCache(0)
	c.Width(0, "hello")
	if w := c.Width(0, "hello world"); w != 11 {
		t.Errorf("Width() after change = %d, want 11", w)
	}
	if *calls != 2 {
		t.Errorf("measure called %d times, want 2", *calls)
	}
}

func TestWidthCacheInvalidate(t *testing.T) {
	c, calls := countingCache(0)
	c.Width(0, "a")
	c.Width(1, "b")
	c.Invalidate(0)
	c.Width(0, "a")
	c.Width(1, "b")
	if *calls != 3 {
		t.Errorf("measure called %d times, want 3", *calls)
	}
	c.InvalidateAll()
	if c.Size() != 0 {
		t.Errorf("Size() after InvalidateAll = %d, want 0", c.Size())
	}
}

func TestWidthCacheShiftLines(t *testing.T) {
	c, calls := countingCache(0)
	for i, s := range []string{"a", "bb", "ccc", "dddd"} {
		c.Width(i, s)
	}
	c.ShiftLines(2, 3)
	c.Width(5, "ccc")
	c.Width(6, "dddd")
	c.Width(0, "a")
	if *calls != 4 {
		t.Errorf("measure called %d times after shift, want 4", *calls)
	}

	c.ShiftLines(6, -1)
	c.Width(5, "dddd")
	if *calls != 4 {
		t.Errorf("measure called %d times after negative shift, want 4", *calls)
	}
}

func TestWidthCacheEviction(t *testing.T) {
	c, calls := countingCache(2)
	c.Width(0, "a")
	c.Width(1, "b")
	c.Width(0, "a")
	c.Width(2, "c")
	if c.Size() != 2 {
		t.Errorf("Size() = %d, want 2", c.Size())
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.Stats().Evictions)
	}
	c.Width(0, "a")
	if *calls != 3 {
		t.Errorf("line 0 should have survived eviction; measure called %d times", *calls)
	}
}
