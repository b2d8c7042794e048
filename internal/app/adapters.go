package app

import (
	"time"

	"github.com/atotto/clipboard"

	"github.com/dshills/styledtext/internal/renderer/backend"
)

// SystemClipboard is the platform clipboard.
type SystemClipboard struct{}

// Read returns the clipboard text.
func (SystemClipboard) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the clipboard text.
func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Poster queues an event on the loop goroutine. backend.Backend satisfies
// it.
type Poster interface {
	PostEvent(event backend.Event)
}

// loopScheduler runs delayed tasks on the event loop by posting them as
// interrupt events.
type loopScheduler struct {
	poster Poster
}

// After posts fn to the loop once d has elapsed.
func (s loopScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		s.poster.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: fn})
	})
}

// runInterrupt runs the task carried by an interrupt event.
func runInterrupt(ev backend.Event) {
	if fn, ok := ev.Data.(func()); ok && fn != nil {
		fn()
	}
}
