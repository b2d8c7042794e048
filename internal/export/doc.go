// Package export serializes a range of styled text as plain text or RTF.
//
// A writer covers a window [start, start+length) of the document. Callers
// feed it whole lines with their document offsets and the writer keeps
// only the part inside the window. Writers are single-owner accumulators:
// once closed, further writes fail with ErrIOClosed.
package export
