package layout

import "hash/fnv"

// WidthCache caches measured line widths keyed by line index. Entries are
// validated against a hash of the line text so that stale widths are never
// returned after an edit.
type WidthCache struct {
	entries   map[int]*cacheEntry
	measure   func(string) int
	maxSize   int
	clock     uint64
	hits      uint64
	misses    uint64
	evictions uint64
}

type cacheEntry struct {
	width      int
	lineHash   uint64
	lastAccess uint64
}

// NewWidthCache creates a cache that measures misses with measure. maxSize
// bounds the number of entries (0 = unlimited).
func NewWidthCache(measure func(string) int, maxSize int) *WidthCache {
	if maxSize < 0 {
		maxSize = 0
	}
	return &WidthCache{
		entries: make(map[int]*cacheEntry),
		measure: measure,
		maxSize: maxSize,
	}
}

// Width returns the width of line, measuring text on a miss.
func (c *WidthCache) Width(line int, text string) int {
	hash := hashLine(text)
	c.clock++
	if e, ok := c.entries[line]; ok && e.lineHash == hash {
		e.lastAccess = c.clock
		c.hits++
		return e.width
	}
	c.misses++
	w := c.measure(text)
	c.entries[line] = &cacheEntry{width: w, lineHash: hash, lastAccess: c.clock}
	if c.maxSize > 0 && len(c.entries) > c.maxSize {
		c.evict()
	}
	return w
}

// Invalidate drops the entry of one line.
func (c *WidthCache) Invalidate(line int) {
	delete(c.entries, line)
}

// InvalidateAll clears the cache, e.g. after a font or tab change.
func (c *WidthCache) InvalidateAll() {
	c.entries = make(map[int]*cacheEntry)
}

// ShiftLines renumbers entries at or after fromLine by delta. A negative
// delta also drops the entries of the deleted lines just before fromLine.
func (c *WidthCache) ShiftLines(fromLine, delta int) {
	if delta == 0 {
		return
	}
	for line := max(0, fromLine+delta); line < fromLine; line++ {
		delete(c.entries, line)
	}
	moved := make(map[int]*cacheEntry)
	for line, e := range c.entries {
		if line < fromLine {
			continue
		}
		delete(c.entries, line)
		if n := line + delta; n >= 0 {
			moved[n] = e
		}
	}
	for line, e := range moved {
		c.entries[line] = e
	}
}

// evict removes the least recently used entries until under maxSize.
func (c *WidthCache) evict() {
	for len(c.entries) > c.maxSize {
		oldest, oldestTick := 0, ^uint64(0)
		for line, e := range c.entries {
			if e.lastAccess < oldestTick {
				oldest, oldestTick = line, e.lastAccess
			}
		}
		delete(c.entries, oldest)
		c.evictions++
	}
}

// Size returns the number of cached entries.
func (c *WidthCache) Size() int {
	return len(c.entries)
}

// Stats returns cache statistics.
func (c *WidthCache) Stats() CacheStats {
	total := c.hits + c.misses
	var hitRate float64
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return CacheStats{
		Size:      len(c.entries),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}

// CacheStats holds cache statistics.
type CacheStats struct {
	Size      int     // Current number of entries
	MaxSize   int     // Maximum entries allowed
	Hits      uint64  // Number of cache hits
	Misses    uint64  // Number of cache misses
	Evictions uint64  // Number of evicted entries
	HitRate   float64 // Hit rate (0.0 - 1.0)
}

// hashLine computes an FNV-1a hash of the line, length first.
func hashLine(s string) uint64 {
	h := fnv.New64a()
	length := uint64(len(s))
	h.Write([]byte{
		byte(length), byte(length >> 8), byte(length >> 16), byte(length >> 24),
		byte(length >> 32), byte(length >> 40), byte(length >> 48), byte(length >> 56),
	})
	h.Write([]byte(s))
	return h.Sum64()
}
