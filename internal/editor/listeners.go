package editor

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/styledtext/internal/engine/overlay"
)

// VerifyEvent is sent before a change is applied. Listeners may clear Doit
// to veto the change or rewrite Start, End and Text.
type VerifyEvent struct {
	Start int
	End   int
	Text  string
	Doit  bool
}

// ModifyEvent is sent after a change was applied.
type ModifyEvent struct {
	Start int
	End   int
	Text  string
}

// ExtendedModifyEvent is sent after a range replacement. Length is the
// length of the inserted text.
type ExtendedModifyEvent struct {
	Start        int
	Length       int
	ReplacedText string
}

// SelectionEvent is sent when the user changes the selection.
type SelectionEvent struct {
	Start int
	End   int
}

// ListenerID identifies a registered listener.
type ListenerID string

type entry[T any] struct {
	id ListenerID
	fn T
}

type registry[T any] struct {
	entries []entry[T]
}

func (r *registry[T]) add(fn T) ListenerID {
	id := ListenerID(uuid.New().String())
	r.entries = append(r.entries, entry[T]{id: id, fn: fn})
	return id
}

func (r *registry[T]) remove(id ListenerID) bool {
	i := slices.IndexFunc(r.entries, func(en entry[T]) bool { return en.id == id })
	if i < 0 {
		return false
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	return true
}

func (r *registry[T]) count() int {
	return len(r.entries)
}

// each calls visit for every listener registered at the time of the call.
func (r *registry[T]) each(visit func(T)) {
	for _, en := range slices.Clone(r.entries) {
		visit(en.fn)
	}
}

type listeners struct {
	verify         registry[func(*VerifyEvent)]
	modify         registry[func(ModifyEvent)]
	extendedModify registry[func(ExtendedModifyEvent)]
	selection      registry[func(SelectionEvent)]
}

// AddVerifyListener registers fn to approve, rewrite or veto changes.
func (e *Editor) AddVerifyListener(fn func(*VerifyEvent)) (ListenerID, error) {
	if fn == nil {
		return "", fmt.Errorf("add verify listener: %w", ErrNullArgument)
	}
	return e.listeners.verify.add(fn), nil
}

// AddModifyListener registers fn to observe applied changes.
func (e *Editor) AddModifyListener(fn func(ModifyEvent)) (ListenerID, error) {
	if fn == nil {
		return "", fmt.Errorf("add modify listener: %w", ErrNullArgument)
	}
	return e.listeners.modify.add(fn), nil
}

// AddExtendedModifyListener registers fn to observe range replacements
// together with the replaced text.
func (e *Editor) AddExtendedModifyListener(fn func(ExtendedModifyEvent)) (ListenerID, error) {
	if fn == nil {
		return "", fmt.Errorf("add extended modify listener: %w", ErrNullArgument)
	}
	return e.listeners.extendedModify.add(fn), nil
}

// AddSelectionListener registers fn to observe selection changes made by
// the user.
func (e *Editor) AddSelectionListener(fn func(SelectionEvent)) (ListenerID, error) {
	if fn == nil {
		return "", fmt.Errorf("add selection listener: %w", ErrNullArgument)
	}
	return e.listeners.selection.add(fn), nil
}

// RemoveListener unregisters the listener with the given id. It reports
// whether one was found.
func (e *Editor) RemoveListener(id ListenerID) bool {
	return e.listeners.verify.remove(id) ||
		e.listeners.modify.remove(id) ||
		e.listeners.extendedModify.remove(id) ||
		e.listeners.selection.remove(id)
}

// AddLineStyleProvider registers p. Styles then come from the providers
// and SetStyleRange does nothing until the last one is removed.
func (e *Editor) AddLineStyleProvider(p overlay.LineStyleProvider) error {
	if err := e.overlay.AddLineStyleProvider(p); err != nil {
		return fmt.Errorf("add line style provider: %w", err)
	}
	e.remeasure()
	e.damage.RedrawAll()
	return nil
}

// RemoveLineStyleProvider unregisters p.
func (e *Editor) RemoveLineStyleProvider(p overlay.LineStyleProvider) (bool, error) {
	ok, err := e.overlay.RemoveLineStyleProvider(p)
	if err != nil {
		return false, fmt.Errorf("remove line style provider: %w", err)
	}
	if ok {
		e.remeasure()
		e.damage.RedrawAll()
	}
	return ok, nil
}

// AddLineBackgroundProvider registers p. Line backgrounds then come from
// the providers and SetLineBackground does nothing.
func (e *Editor) AddLineBackgroundProvider(p overlay.LineBackgroundProvider) error {
	if err := e.overlay.AddLineBackgroundProvider(p); err != nil {
		return fmt.Errorf("add line background provider: %w", err)
	}
	e.damage.RedrawAll()
	return nil
}

// RemoveLineBackgroundProvider unregisters p.
func (e *Editor) RemoveLineBackgroundProvider(p overlay.LineBackgroundProvider) (bool, error) {
	ok, err := e.overlay.RemoveLineBackgroundProvider(p)
	if err != nil {
		return false, fmt.Errorf("remove line background provider: %w", err)
	}
	if ok {
		e.damage.RedrawAll()
	}
	return ok, nil
}

func (e *Editor) sendSelectionEvent() {
	sel := e.sel.Selection()
	ev := SelectionEvent{Start: sel.Start, End: sel.End}
	e.listeners.selection.each(func(fn func(SelectionEvent)) { fn(ev) })
}
