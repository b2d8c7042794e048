package editor

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/styledtext/internal/engine/document"
	"github.com/dshills/styledtext/internal/engine/overlay"
	"github.com/dshills/styledtext/internal/engine/selection"
	"github.com/dshills/styledtext/internal/renderer/core"
	"github.com/dshills/styledtext/internal/renderer/dirty"
	"github.com/dshills/styledtext/internal/renderer/layout"
	"github.com/dshills/styledtext/internal/renderer/viewport"
)

// Editor is the state of one styled text widget: the document, its
// annotations, the caret and selection, the viewport and the pending
// damage. All components are owned by the editor and only reached
// through it.
type Editor struct {
	id  string
	log zerolog.Logger

	doc         *document.Document
	docListener *docListener
	overlay     *overlay.Overlay
	sel         *selection.State
	metrics     layout.Metrics
	measure     *layout.Measurer
	widths      *layout.WidthCache
	view        *viewport.Viewport
	damage      *dirty.Tracker
	sink        dirty.Sink

	// Configuration
	tabLength          int
	textLimit          int
	editable           bool
	overwrite          bool
	doubleClickEnabled bool
	delimiter          string
	colors             Colors
	clipboard          Clipboard
	scheduler          Scheduler

	listeners     listeners
	bindings      map[KeyStroke]Action
	editStages    []stage
	setTextStages []stage

	caret            core.Point
	vertical         viewport.ScrollBar
	horizontal       viewport.ScrollBar
	dragging         bool
	mouseDoubleClick bool
	autoScroll       viewport.ScrollDirection
	autoScrollGen    uint64
}

// New creates an editor over an empty document.
func New(opts ...Option) *Editor {
	e := &Editor{
		id:                 uuid.New().String(),
		log:                zerolog.Nop(),
		sel:                selection.New(),
		metrics:            layout.CellMetrics{},
		tabLength:          DefaultTabLength,
		textLimit:          Unlimited,
		editable:           true,
		doubleClickEnabled: true,
		delimiter:          "\n",
		colors:             DefaultColors(),
		clipboard:          &MemoryClipboard{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.With().Str("editor", e.id).Logger()

	e.measure = layout.NewMeasurer(e.metrics, e.tabLength)
	e.widths = layout.NewWidthCache(e.measure.ContentWidth, DefaultCacheLines)
	e.view = viewport.New(e.measure.LineHeight())
	e.damage = dirty.NewTracker(e.sink)
	e.bindings = defaultBindings()
	e.editStages = e.replaceStages()
	e.setTextStages = e.fullTextStages()
	e.docListener = &docListener{e: e}

	e.doc = document.New()
	_ = e.doc.AddListener(e.docListener) // listener is never nil
	e.overlay = overlay.New(e.doc)
	e.reset()
	return e
}

// ID returns the instance id used in log entries.
func (e *Editor) ID() string {
	return e.id
}

// Content returns the document being edited.
func (e *Editor) Content() *document.Document {
	return e.doc
}

// SetContent replaces the document. Styles, line backgrounds, the caret
// and the scroll position are reset.
func (e *Editor) SetContent(doc *document.Document) error {
	if doc == nil {
		return fmt.Errorf("set content: %w", ErrNullArgument)
	}
	e.doc.RemoveListener(e.docListener)
	e.doc = doc
	if err := doc.AddListener(e.docListener); err != nil {
		return fmt.Errorf("set content: %w", err)
	}
	e.overlay.SetContent(doc)
	e.reset()
	return nil
}

// reset returns caret, selection and viewport to the document start,
// reinstalls empty managed annotations and repaints everything.
func (e *Editor) reset() {
	e.sel.MoveCaret(0)
	e.sel.Collapse()
	e.view.Reset()
	e.widths.InvalidateAll()
	e.overlay.Reset()
	e.calculateVisibleContentWidth()
	e.setScrollBars()
	e.setCaretLocation()
	e.damage.RedrawAll()
	e.log.Debug().Int("chars", e.doc.CharCount()).Int("lines", e.doc.LineCount()).Msg("text reset")
}

// docListener receives document notifications for the editor.
type docListener struct {
	e *Editor
}

func (l *docListener) TextChanging(document.ChangeEvent) {}

func (l *docListener) TextChanged(ev document.ChangeEvent) {
	l.e.handleTextChanged(ev)
}

func (l *docListener) TextSet(document.SetEvent) {
	l.e.reset()
}

// Text returns the whole document text.
func (e *Editor) Text() string {
	return e.doc.Text()
}

// TextRange returns length characters starting at start.
func (e *Editor) TextRange(start, length int) (string, error) {
	return e.doc.TextRange(start, length)
}

// CharCount returns the number of characters in the document.
func (e *Editor) CharCount() int {
	return e.doc.CharCount()
}

// LineCount returns the number of lines in the document.
func (e *Editor) LineCount() int {
	return e.doc.LineCount()
}

// LineDelimiter returns the delimiter inserted for new lines.
func (e *Editor) LineDelimiter() string {
	return e.doc.LineDelimiter()
}

// Editable reports whether keyboard edits are accepted.
func (e *Editor) Editable() bool {
	return e.editable
}

// SetEditable sets whether keyboard edits are accepted. Programmatic
// changes through ReplaceTextRange and SetText are always accepted.
func (e *Editor) SetEditable(editable bool) {
	e.editable = editable
}

// Overwrite reports whether typed characters replace the next character.
func (e *Editor) Overwrite() bool {
	return e.overwrite
}

// SetOverwrite sets overwrite mode.
func (e *Editor) SetOverwrite(overwrite bool) {
	e.overwrite = overwrite
}

// DoubleClickEnabled reports whether a double click selects a word.
func (e *Editor) DoubleClickEnabled() bool {
	return e.doubleClickEnabled
}

// SetDoubleClickEnabled sets whether a double click selects a word.
func (e *Editor) SetDoubleClickEnabled(enabled bool) {
	e.doubleClickEnabled = enabled
}

// TextLimit returns the maximum character count typing may reach, or
// Unlimited.
func (e *Editor) TextLimit() int {
	return e.textLimit
}

// SetTextLimit sets the maximum character count. A negative limit removes
// the cap.
func (e *Editor) SetTextLimit(limit int) error {
	if limit == 0 {
		return fmt.Errorf("text limit: %w", ErrCannotBeZero)
	}
	e.textLimit = limit
	return nil
}

// Tabs returns the tab length in characters.
func (e *Editor) Tabs() int {
	return e.measure.TabLength()
}

// SetTabs changes the tab length. The caret moves to the document start.
func (e *Editor) SetTabs(n int) {
	e.tabLength = max(0, n)
	e.measure.SetTabLength(e.tabLength)
	e.remeasure()
	if e.sel.Caret() > 0 {
		e.sel.MoveCaret(0)
		e.showCaret()
		e.clearSelection(false)
	}
	e.damage.RedrawAll()
}

// SetMetrics changes the font metrics. The top line is kept.
func (e *Editor) SetMetrics(m layout.Metrics) error {
	if m == nil {
		return fmt.Errorf("set metrics: %w", ErrNullArgument)
	}
	top := e.view.TopIndex()
	e.metrics = m
	e.measure.SetMetrics(m)
	e.view.SetLineHeight(e.measure.LineHeight())
	e.view.SetVerticalOffset(top * e.view.LineHeight())
	e.remeasure()
	e.claimBottomFreeSpace()
	e.claimRightFreeSpace()
	e.setCaretLocation()
	e.damage.RedrawAll()
	return nil
}

// remeasure drops every cached width and measures the visible lines again.
func (e *Editor) remeasure() {
	e.widths.InvalidateAll()
	e.view.ResetContentWidth()
	e.calculateVisibleContentWidth()
	e.setScrollBars()
}

// Colors returns the widget colors.
func (e *Editor) Colors() Colors {
	return e.colors
}

// SetColors changes the widget colors and repaints.
func (e *Editor) SetColors(c Colors) {
	e.colors = c
	e.damage.RedrawAll()
}

// Damage returns the tracker recording scroll and redraw operations.
func (e *Editor) Damage() *dirty.Tracker {
	return e.damage
}

// SetSink replaces the receiver of scroll and redraw operations.
func (e *Editor) SetSink(s dirty.Sink) {
	e.sink = s
	e.damage.SetSink(s)
}

// ScrollBars returns the vertical and horizontal scroll bar state.
func (e *Editor) ScrollBars() (vertical, horizontal viewport.ScrollBar) {
	return e.vertical, e.horizontal
}

// ClientArea returns the client rectangle.
func (e *Editor) ClientArea() core.Rect {
	return e.view.ClientArea()
}

// line returns the text and start offset of line. The line must exist.
func (e *Editor) line(line int) (string, int) {
	text, _ := e.doc.Line(line)
	offset, _ := e.doc.OffsetAtLine(line)
	return text, offset
}

// lineAt returns the line holding offset, clamped to the document.
func (e *Editor) lineAt(offset int) int {
	offset = max(0, min(offset, e.doc.CharCount()))
	line, _ := e.doc.LineAtOffset(offset)
	return line
}

// xAtOffset returns the client x of offset within a line.
func (e *Editor) xAtOffset(text string, lineOffset, offset int) int {
	styles := e.overlay.LineStyles(lineOffset, text)
	return e.measure.XAtOffset(text, lineOffset, styles, offset) - e.view.HorizontalOffset()
}

// offsetAtX returns the offset within a line nearest to client x.
func (e *Editor) offsetAtX(text string, lineOffset, x int) int {
	styles := e.overlay.LineStyles(lineOffset, text)
	return e.measure.OffsetAtX(text, lineOffset, styles, x+e.view.HorizontalOffset())
}
