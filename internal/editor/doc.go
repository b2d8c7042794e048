// Package editor ties the document, overlay, selection, layout and viewport
// packages into a single editing widget.
//
// An Editor owns all of its state and is driven synchronously by the caller:
// key, mouse, resize and paint requests are applied in the order they are
// delivered, and none of them block. Nothing in the package is safe for
// concurrent use.
//
// # Edit Pipeline
//
// Every text change runs through an ordered list of named stages:
//
//	verify → capture → replace → caret → modify → extended-modify
//
// A verify listener may veto the change or rewrite its range and text. Once
// the document reports the change, the editor shifts the overlay, measures
// only the affected lines and emits the smallest set of scroll and redraw
// operations that bring the screen up to date.
//
// # Damage
//
// Screen updates are expressed as dirty.Tracker operations: a Scroll blits
// pixels that are still valid and a Redraw marks pixels that must be painted
// again with Draw. Operations are clipped to the client area.
//
// # Input
//
// HandleKey routes key strokes through a binding table to an Action or
// inserts them as text. Mouse drags outside the client area start an
// autoscroll task that repeats through a Scheduler until the drag ends or
// changes direction.
package editor
