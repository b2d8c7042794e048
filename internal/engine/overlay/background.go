package overlay

import "github.com/dshills/styledtext/internal/renderer/core"

// BackgroundTable is the managed store of per-line background colors.
// Lines without an entry use the widget background.
type BackgroundTable struct {
	colors []core.Color
}

// NewBackgroundTable creates an empty table.
func NewBackgroundTable() *BackgroundTable {
	return &BackgroundTable{}
}

// Set assigns c to count lines starting at startLine. An unset color
// clears the lines.
func (t *BackgroundTable) Set(startLine, count int, c core.Color) {
	if count <= 0 {
		return
	}
	if need := startLine + count; need > len(t.colors) {
		if c.IsDefault() {
			count = max(0, len(t.colors)-startLine)
		} else {
			t.colors = append(t.colors, make([]core.Color, need-len(t.colors))...)
		}
	}
	for i := startLine; i < startLine+count; i++ {
		t.colors[i] = c
	}
}

// Get returns the background of line, or ColorDefault.
func (t *BackgroundTable) Get(line int) core.Color {
	if line < 0 || line >= len(t.colors) {
		return core.ColorDefault
	}
	return t.colors[line]
}

// Clear removes every entry.
func (t *BackgroundTable) Clear() {
	t.colors = nil
}

// TextChanged removes the entries of deleted lines after firstLine and
// inserts unset entries for new lines. Same-line edits change nothing.
func (t *BackgroundTable) TextChanged(firstLine, replacedLines, newLines int) {
	if firstLine+1 >= len(t.colors) {
		return
	}
	if replacedLines > 0 {
		from := firstLine + 1
		to := min(from+replacedLines, len(t.colors))
		t.colors = append(t.colors[:from], t.colors[to:]...)
	}
	if newLines > 0 && firstLine+1 <= len(t.colors) {
		at := firstLine + 1
		grown := make([]core.Color, 0, len(t.colors)+newLines)
		grown = append(grown, t.colors[:at]...)
		grown = append(grown, make([]core.Color, newLines)...)
		grown = append(grown, t.colors[at:]...)
		t.colors = grown
	}
}
