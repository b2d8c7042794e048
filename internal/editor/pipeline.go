package editor

import (
	"fmt"
	"unicode/utf8"
)

// pendingEdit is the change carried through the stages of the edit
// pipeline. Verify listeners may rewrite start, end and text.
type pendingEdit struct {
	start       int
	end         int
	text        string
	replaced    string
	updateCaret bool
}

// stage is one named step of the edit pipeline. It returns false to abort
// the remaining stages; an abort is not an error.
type stage struct {
	name string
	run  func(*pendingEdit) (bool, error)
}

// replaceStages are the stages of a range replacement.
func (e *Editor) replaceStages() []stage {
	return []stage{
		{name: "verify", run: e.verifyStage},
		{name: "capture", run: e.captureStage},
		{name: "replace", run: e.replaceStage},
		{name: "caret", run: e.caretStage},
		{name: "modify", run: e.modifyStage},
		{name: "extended-modify", run: e.extendedModifyStage},
	}
}

// fullTextStages are the stages of a whole-document replacement. The
// replaced text is not reported, so there is no extended-modify stage.
func (e *Editor) fullTextStages() []stage {
	return []stage{
		{name: "verify", run: e.verifyStage},
		{name: "set", run: e.setStage},
		{name: "modify", run: e.modifyStage},
	}
}

// runPipeline runs stages in order. It reports whether every stage ran.
func (e *Editor) runPipeline(p *pendingEdit, stages []stage) (bool, error) {
	for _, s := range stages {
		ok, err := s.run(p)
		if err != nil {
			return false, fmt.Errorf("%s: %w", s.name, err)
		}
		if !ok {
			e.log.Debug().Str("stage", s.name).Int("start", p.start).Int("end", p.end).Msg("edit aborted")
			return false, nil
		}
	}
	return true, nil
}

// modifyContent replaces [start, end) with text through the edit pipeline.
// With updateCaret the caret moves behind the inserted text and is
// scrolled into view.
func (e *Editor) modifyContent(start, end int, text string, updateCaret bool) (bool, error) {
	p := &pendingEdit{start: start, end: end, text: text, updateCaret: updateCaret}
	return e.runPipeline(p, e.editStages)
}

func (e *Editor) verifyStage(p *pendingEdit) (bool, error) {
	if e.listeners.verify.count() == 0 {
		return true, nil
	}
	ev := &VerifyEvent{Start: p.start, End: p.end, Text: p.text, Doit: true}
	e.listeners.verify.each(func(fn func(*VerifyEvent)) { fn(ev) })
	if !ev.Doit {
		return false, nil
	}
	if ev.Start < 0 || ev.Start > ev.End || ev.End > e.doc.CharCount() {
		return false, fmt.Errorf("rewritten range [%d,%d): %w", ev.Start, ev.End, ErrInvalidRange)
	}
	p.start, p.end, p.text = ev.Start, ev.End, ev.Text
	return true, nil
}

func (e *Editor) captureStage(p *pendingEdit) (bool, error) {
	replaced, err := e.doc.TextRange(p.start, p.end-p.start)
	if err != nil {
		return false, err
	}
	p.replaced = replaced
	return true, nil
}

func (e *Editor) replaceStage(p *pendingEdit) (bool, error) {
	if err := e.doc.ReplaceRange(p.start, p.end-p.start, p.text); err != nil {
		return false, err
	}
	return true, nil
}

func (e *Editor) caretStage(p *pendingEdit) (bool, error) {
	if p.updateCaret {
		e.internalSetSelection(p.start+utf8.RuneCountInString(p.text), 0, false)
		e.showCaret()
	}
	return true, nil
}

func (e *Editor) setStage(p *pendingEdit) (bool, error) {
	e.doc.SetText(p.text)
	p.start, p.end = 0, utf8.RuneCountInString(p.text)
	return true, nil
}

func (e *Editor) modifyStage(p *pendingEdit) (bool, error) {
	ev := ModifyEvent{Start: p.start, End: p.end, Text: p.text}
	e.listeners.modify.each(func(fn func(ModifyEvent)) { fn(ev) })
	return true, nil
}

func (e *Editor) extendedModifyStage(p *pendingEdit) (bool, error) {
	ev := ExtendedModifyEvent{
		Start:        p.start,
		Length:       utf8.RuneCountInString(p.text),
		ReplacedText: p.replaced,
	}
	e.listeners.extendedModify.each(func(fn func(ExtendedModifyEvent)) { fn(ev) })
	return true, nil
}
