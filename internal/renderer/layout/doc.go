// Package layout measures styled line text in pixels.
//
// A Measurer turns characters into horizontal positions and back. It expands
// tab characters to the next multiple of the tab pixel width and measures
// each style segment with the face of that segment's weight. Faces come from
// a Metrics implementation:
//
//   - CellMetrics treats every terminal cell as one pixel, using display
//     widths so that wide runes take two cells
//   - FaceMetrics measures with the Go fonts from golang.org/x/image
//
// WidthCache remembers per-line content widths so that scrolling does not
// re-measure lines whose text has not changed.
package layout
