package document

// ChangeEvent describes a replace-range edit. It is delivered twice: once
// before the text is mutated (TextChanging) and once after (TextChanged).
type ChangeEvent struct {
	Start             int    // offset of the first replaced character
	ReplacedCharCount int    // characters removed
	NewCharCount      int    // characters inserted
	ReplacedLineCount int    // delimiters removed
	NewLineCount      int    // delimiters inserted
	ReplacedText      string // text that was removed
	NewText           string // text that was inserted
}

// Delta returns the change in character count.
func (e ChangeEvent) Delta() int {
	return e.NewCharCount - e.ReplacedCharCount
}

// IsMultiLine reports whether the edit removed or inserted a line break.
func (e ChangeEvent) IsMultiLine() bool {
	return e.ReplacedLineCount > 0 || e.NewLineCount > 0
}

// Normalize converts a negative ReplacedCharCount, meaning "delete
// backwards from Start", into the canonical forward form.
func (e ChangeEvent) Normalize() ChangeEvent {
	if e.ReplacedCharCount < 0 {
		e.Start += e.ReplacedCharCount
		e.ReplacedCharCount = -e.ReplacedCharCount
	}
	return e
}

// SetEvent describes a wholesale text replacement.
type SetEvent struct {
	OldCharCount int
	NewCharCount int
}

// Listener receives document change notifications.
type Listener interface {
	TextChanging(ev ChangeEvent)
	TextChanged(ev ChangeEvent)
	TextSet(ev SetEvent)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Changing func(ChangeEvent)
	Changed  func(ChangeEvent)
	Set      func(SetEvent)
}

func (l *ListenerFuncs) TextChanging(ev ChangeEvent) {
	if l.Changing != nil {
		l.Changing(ev)
	}
}

func (l *ListenerFuncs) TextChanged(ev ChangeEvent) {
	if l.Changed != nil {
		l.Changed(ev)
	}
}

func (l *ListenerFuncs) TextSet(ev SetEvent) {
	if l.Set != nil {
		l.Set(ev)
	}
}
