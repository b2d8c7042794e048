package editor

import (
	"strings"
	"testing"
	"time"

	"github.com/dshills/styledtext/internal/renderer/backend"
	"github.com/dshills/styledtext/internal/renderer/viewport"
)

// manualScheduler queues tasks until the test runs them.
type manualScheduler struct {
	delays []time.Duration
	tasks  []func()
}

func (s *manualScheduler) After(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.tasks = append(s.tasks, fn)
}

// runNext runs the oldest queued task.
func (s *manualScheduler) runNext() {
	fn := s.tasks[0]
	s.tasks = s.tasks[1:]
	fn()
}

func TestMouseDragSelects(t *testing.T) {
	e, _ := newTestEditor(t, "hello world\nsecond line", 40, 5)
	e.MouseDown(3, 0, backend.MouseLeft, false)
	if e.CaretOffset() != 3 {
		t.Fatalf("CaretOffset() = %d, want 3", e.CaretOffset())
	}
	e.MouseMove(7, 1)
	if sel := e.Selection(); sel.Start != 3 || sel.End != 19 {
		t.Errorf("selection = %v, want [3,19)", sel)
	}
	e.MouseUp()
	e.MouseMove(0, 0)
	if sel := e.Selection(); sel.Start != 3 || sel.End != 19 {
		t.Errorf("selection = %v after release, want [3,19)", sel)
	}
}

func TestMouseDownExtend(t *testing.T) {
	e, _ := newTestEditor(t, "hello world", 40, 5)
	e.SetCaretOffset(2)
	e.MouseDown(8, 0, backend.MouseLeft, true)
	if sel := e.Selection(); sel.Start != 2 || sel.End != 8 {
		t.Errorf("selection = %v, want [2,8)", sel)
	}
	e.MouseUp()
	e.MouseDown(5, 0, backend.MouseLeft, false)
	if e.SelectionCount() != 0 || e.CaretOffset() != 5 {
		t.Errorf("caret = %d, count = %d, want 5 and 0", e.CaretOffset(), e.SelectionCount())
	}
}

func TestMouseIgnoresOtherButtons(t *testing.T) {
	e, _ := newTestEditor(t, "hello", 40, 5)
	e.MouseDown(3, 0, backend.MouseRight, false)
	if e.CaretOffset() != 0 {
		t.Errorf("CaretOffset() = %d, want 0", e.CaretOffset())
	}
	e.MouseMove(4, 0)
	if e.SelectionCount() != 0 {
		t.Error("right button drag selected text")
	}
}

func TestMouseBelowLastLine(t *testing.T) {
	e, _ := newTestEditor(t, "ab\ncd", 40, 5)
	e.MouseDown(30, 4, backend.MouseLeft, false)
	if e.CaretOffset() != 5 {
		t.Errorf("CaretOffset() = %d, want 5", e.CaretOffset())
	}
}

func TestDragPastLineEndTakesLineBreak(t *testing.T) {
	e, _ := newTestEditor(t, "ab\ncd", 40, 5)
	e.MouseDown(0, 0, backend.MouseLeft, false)
	e.MouseMove(20, 0)
	if sel := e.Selection(); sel.Start != 0 || sel.End != 3 {
		t.Errorf("selection = %v, want [0,3)", sel)
	}
}

func TestDoubleClickSelectsWord(t *testing.T) {
	e, _ := newTestEditor(t, "hello world", 40, 5)
	e.MouseDown(1, 0, backend.MouseLeft, false)
	e.MouseDoubleClick(1, 0)
	if got := e.SelectionText(); got != "hello" {
		t.Errorf("SelectionText() = %q, want %q", got, "hello")
	}
	// The rest of the press does not change the word selection.
	e.MouseMove(9, 0)
	if got := e.SelectionText(); got != "hello" {
		t.Errorf("SelectionText() = %q after move, want %q", got, "hello")
	}

	e.SetDoubleClickEnabled(false)
	e.MouseUp()
	e.MouseDoubleClick(8, 0)
	if got := e.SelectionText(); got != "hello" {
		t.Errorf("SelectionText() = %q with double click disabled", got)
	}
}

func TestAutoScrollDown(t *testing.T) {
	sched := &manualScheduler{}
	e := New(WithScheduler(sched))
	e.Resize(20, 3)
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	if err := e.SetText(strings.Join(lines, "\n")); err != nil {
		t.Fatal(err)
	}

	e.MouseDown(0, 0, backend.MouseLeft, false)
	e.MouseMove(0, 5)
	if got := e.AutoScrollDirection(); got != viewport.ScrollDown {
		t.Fatalf("AutoScrollDirection() = %v, want down", got)
	}
	if len(sched.tasks) != 1 || sched.delays[0] != verticalScrollRate {
		t.Fatalf("scheduled %d tasks with delays %v, want one at %v", len(sched.tasks), sched.delays, verticalScrollRate)
	}

	// Moving further down keeps the running task.
	e.MouseMove(0, 6)
	if len(sched.tasks) != 1 {
		t.Fatalf("scheduled %d tasks after a second move, want 1", len(sched.tasks))
	}
	caret := e.CaretOffset()

	sched.runNext()
	if e.CaretOffset() <= caret {
		t.Errorf("CaretOffset() = %d after a tick, want past %d", e.CaretOffset(), caret)
	}
	if e.Selection().Start != 0 {
		t.Errorf("selection start = %d, want 0", e.Selection().Start)
	}
	if len(sched.tasks) != 1 {
		t.Fatalf("tick rescheduled %d tasks, want 1", len(sched.tasks))
	}

	e.MouseUp()
	if got := e.AutoScrollDirection(); got != viewport.ScrollNone {
		t.Errorf("AutoScrollDirection() = %v after release, want none", got)
	}
	caret = e.CaretOffset()
	sched.runNext()
	if len(sched.tasks) != 0 {
		t.Errorf("%d tasks queued after cancel, want 0", len(sched.tasks))
	}
	if e.CaretOffset() != caret {
		t.Errorf("cancelled tick moved the caret to %d", e.CaretOffset())
	}
}

func TestAutoScrollRetargetRunsOneChain(t *testing.T) {
	sched := &manualScheduler{}
	e := New(WithScheduler(sched))
	e.Resize(20, 3)
	if err := e.SetText(strings.Repeat("line\n", 30)); err != nil {
		t.Fatal(err)
	}

	e.MouseDown(0, 0, backend.MouseLeft, false)
	e.MouseMove(0, 5)
	e.MouseMove(0, 1)
	e.MouseMove(0, 5)
	if got := e.AutoScrollDirection(); got != viewport.ScrollDown {
		t.Fatalf("AutoScrollDirection() = %v, want down", got)
	}
	if len(sched.tasks) != 2 {
		t.Fatalf("queued %d tasks, want 2", len(sched.tasks))
	}
	startLine, _ := e.Content().LineAtOffset(e.CaretOffset())

	sched.runNext()
	sched.runNext()
	if len(sched.tasks) != 1 {
		t.Errorf("queued %d tasks after one round of ticks, want 1", len(sched.tasks))
	}
	line, _ := e.Content().LineAtOffset(e.CaretOffset())
	if line != startLine+1 {
		t.Errorf("caret line = %d after one round, want %d", line, startLine+1)
	}

	// Reversing direction leaves only the upward chain.
	e.MouseMove(0, -1)
	if got := e.AutoScrollDirection(); got != viewport.ScrollUp {
		t.Fatalf("AutoScrollDirection() = %v, want up", got)
	}
	sched.runNext()
	sched.runNext()
	if len(sched.tasks) != 1 {
		t.Errorf("queued %d tasks after reversing, want 1", len(sched.tasks))
	}

	e.MouseUp()
	sched.runNext()
	if len(sched.tasks) != 0 {
		t.Errorf("%d tasks queued after release, want 0", len(sched.tasks))
	}
}

func TestAutoScrollHorizontalRate(t *testing.T) {
	sched := &manualScheduler{}
	e := New(WithScheduler(sched))
	e.Resize(5, 3)
	if err := e.SetText("a long line of text"); err != nil {
		t.Fatal(err)
	}
	e.MouseDown(0, 0, backend.MouseLeft, false)
	e.MouseMove(9, 1)
	if got := e.AutoScrollDirection(); got != viewport.ScrollRight {
		t.Fatalf("AutoScrollDirection() = %v, want right", got)
	}
	if len(sched.delays) != 1 || sched.delays[0] != horizontalScrollRate {
		t.Errorf("delays = %v, want [%v]", sched.delays, horizontalScrollRate)
	}
	// Returning inside the client area stops the task.
	e.MouseMove(2, 1)
	if got := e.AutoScrollDirection(); got != viewport.ScrollNone {
		t.Errorf("AutoScrollDirection() = %v, want none", got)
	}
}
