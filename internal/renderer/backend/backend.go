// Package backend provides the display surface abstraction for the editor.
// One terminal cell is one pixel: line height is 1 and every coordinate the
// editor computes maps directly onto a cell.
package backend

import "github.com/dshills/styledtext/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventPaste
	EventFocus
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Focus event fields
	Focused bool

	// Paste event fields; PasteStart marks the opening bracket.
	PasteStart bool

	// Interrupt payload, posted from another goroutine to wake the loop.
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys. Control chords arrive as KeyRune with
// ModCtrl set and the lowercase letter in Rune.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

var keyNames = [...]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "None"
	}
	return keyNames[k]
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Backend is the cell surface the editor paints on and the source of its
// input events. Coordinates outside the surface are ignored on write and
// read back as empty cells.
type Backend interface {
	Init() error
	Shutdown()

	// Size is the surface in cells.
	Size() (width, height int)

	SetCell(x, y int, cell core.Cell)
	GetCell(x, y int) core.Cell

	// Show flushes pending changes.
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent blocks for the next event. PostEvent may be called from any
	// goroutine.
	PollEvent() Event
	PostEvent(event Event)

	Beep()
}

// queueSize bounds the NullBackend event queue.
const queueSize = 128

// NullBackend is a Backend held in memory. Tests post events to it and read
// back painted rows.
type NullBackend struct {
	width, height int
	grid          []core.Cell
	caret         core.Point
	caretShown    bool
	beeps         int
	queue         chan Event
}

// NewNullBackend returns a blank surface of width by height cells.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{queue: make(chan Event, queueSize)}
	b.reset(width, height)
	return b
}

func (b *NullBackend) reset(width, height int) {
	b.width, b.height = width, height
	b.grid = make([]core.Cell, width*height)
	for i := range b.grid {
		b.grid[i] = core.EmptyCell()
	}
}

// index returns the grid slot of (x, y), or -1 off the surface.
func (b *NullBackend) index(x, y int) int {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return -1
	}
	return y*b.width + x
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) { return b.width, b.height }

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if i := b.index(x, y); i >= 0 {
		b.grid[i] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	if i := b.index(x, y); i >= 0 {
		return b.grid[i]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Show() {}

func (b *NullBackend) ShowCursor(x, y int) {
	b.caret = core.Point{X: x, Y: y}
	b.caretShown = true
}

func (b *NullBackend) HideCursor() { b.caretShown = false }

func (b *NullBackend) PollEvent() Event { return <-b.queue }

// PostEvent queues event. A full queue drops it rather than block the caller.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.queue <- event:
	default:
	}
}

func (b *NullBackend) Beep() { b.beeps++ }

// CursorPosition reports the caret last shown.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.caret.X, b.caret.Y, b.caretShown
}

// Beeps returns how many times Beep was called.
func (b *NullBackend) Beeps() int { return b.beeps }

// Row returns row y as text, skipping the trailing halves of wide cells.
func (b *NullBackend) Row(y int) string {
	start := b.index(0, y)
	if start < 0 {
		return ""
	}
	out := make([]rune, 0, b.width)
	for _, c := range b.grid[start : start+b.width] {
		if !c.IsContinuation() {
			out = append(out, c.Rune)
		}
	}
	return string(out)
}

// Resize clears the surface to the new size and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.reset(width, height)
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
