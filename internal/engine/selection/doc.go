// Package selection tracks the caret, the selection and the extend anchor
// of one editor.
//
// Selection Model:
//
// The selection is a [Start, End) range whose endpoints always include the
// caret. The anchor records the endpoint that stays fixed while the user
// extends with shift held; -1 means no extend has started since the last
// collapse.
//
// Extending follows a grow/shrink/flip rule:
//   - moving the caret away from the anchor grows that side
//   - moving back toward the anchor shrinks it
//   - crossing the anchor flips which endpoint is fixed
//
// The package performs no drawing. Operations that change what is selected
// report the offset span whose rendering is now stale so the caller can
// repaint just that span.
//
// Word navigation classifies characters as letter-or-digit or other; a line
// break always counts as one word.
package selection
