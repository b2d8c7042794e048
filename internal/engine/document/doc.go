// Package document provides the editable character store behind the styled
// text engine.
//
// A Document owns the text as a rune gap buffer together with an index of
// line start offsets. All content changes funnel through ReplaceRange (or
// SetText for wholesale replacement), and every change is announced to
// registered listeners so that overlays, layout caches and the caret can
// follow the edit incrementally.
//
// Offsets are character (rune) indexes in the range [0, CharCount()].
// Lines are separated by "\n", "\r\n" or "\r"; a line's text never
// includes its delimiter.
//
// Basic usage:
//
//	doc := document.New()
//	doc.SetText("ab\ncd")
//	_ = doc.ReplaceRange(1, 1, "X\nY") // "aX\nYcd"
//	line, _ := doc.Line(1)             // "Ycd"
//
// Thread Safety:
//
// A Document is owned by a single editor and is not safe for concurrent
// use. Consistency relies on edits being applied in delivery order.
package document
