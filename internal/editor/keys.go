package editor

import (
	"strings"

	"github.com/dshills/styledtext/internal/renderer/backend"
)

// KeyStroke is a key with its modifiers. Rune is only meaningful for
// backend.KeyRune; control chords carry the lowercase letter.
type KeyStroke struct {
	Key  backend.Key
	Rune rune
	Mod  backend.ModMask
}

// Key returns the stroke for a special key.
func Key(k backend.Key, mod backend.ModMask) KeyStroke {
	return KeyStroke{Key: k, Mod: mod}
}

// Ctrl returns the stroke for Ctrl plus a letter.
func Ctrl(r rune) KeyStroke {
	return KeyStroke{Key: backend.KeyRune, Rune: r, Mod: backend.ModCtrl}
}

// KeyStrokeFromEvent converts a backend key event.
func KeyStrokeFromEvent(ev backend.Event) KeyStroke {
	return KeyStroke{Key: ev.Key, Rune: ev.Rune, Mod: ev.Mod}
}

// String returns a readable form such as "Ctrl+Shift+Left".
func (k KeyStroke) String() string {
	var b strings.Builder
	for _, m := range []struct {
		mask backend.ModMask
		name string
	}{
		{backend.ModCtrl, "Ctrl+"},
		{backend.ModAlt, "Alt+"},
		{backend.ModMeta, "Meta+"},
		{backend.ModShift, "Shift+"},
	} {
		if k.Mod.Has(m.mask) {
			b.WriteString(m.name)
		}
	}
	if k.Key == backend.KeyRune {
		b.WriteRune(k.Rune)
	} else {
		b.WriteString(k.Key.String())
	}
	return b.String()
}

// normalized drops the rune of special keys so that lookups ignore it.
func (k KeyStroke) normalized() KeyStroke {
	if k.Key != backend.KeyRune {
		k.Rune = 0
	}
	return k
}

func defaultBindings() map[KeyStroke]Action {
	const (
		none  = backend.ModNone
		shift = backend.ModShift
		ctrl  = backend.ModCtrl
	)
	return map[KeyStroke]Action{
		Key(backend.KeyUp, none):       LineUp,
		Key(backend.KeyDown, none):     LineDown,
		Key(backend.KeyHome, none):     LineStart,
		Key(backend.KeyEnd, none):      LineEnd,
		Key(backend.KeyLeft, none):     ColumnPrevious,
		Key(backend.KeyRight, none):    ColumnNext,
		Key(backend.KeyPageUp, none):   PageUp,
		Key(backend.KeyPageDown, none): PageDown,
		Key(backend.KeyLeft, ctrl):     WordPrevious,
		Key(backend.KeyRight, ctrl):    WordNext,
		Key(backend.KeyHome, ctrl):     TextStart,
		Key(backend.KeyEnd, ctrl):      TextEnd,
		Key(backend.KeyPageUp, ctrl):   WindowStart,
		Key(backend.KeyPageDown, ctrl): WindowEnd,

		Key(backend.KeyUp, shift):            SelectLineUp,
		Key(backend.KeyDown, shift):          SelectLineDown,
		Key(backend.KeyHome, shift):          SelectLineStart,
		Key(backend.KeyEnd, shift):           SelectLineEnd,
		Key(backend.KeyLeft, shift):          SelectColumnPrevious,
		Key(backend.KeyRight, shift):         SelectColumnNext,
		Key(backend.KeyPageUp, shift):        SelectPageUp,
		Key(backend.KeyPageDown, shift):      SelectPageDown,
		Key(backend.KeyLeft, ctrl|shift):     SelectWordPrevious,
		Key(backend.KeyRight, ctrl|shift):    SelectWordNext,
		Key(backend.KeyHome, ctrl|shift):     SelectTextStart,
		Key(backend.KeyEnd, ctrl|shift):      SelectTextEnd,
		Key(backend.KeyPageUp, ctrl|shift):   SelectWindowStart,
		Key(backend.KeyPageDown, ctrl|shift): SelectWindowEnd,

		Ctrl('x'):                        Cut,
		Ctrl('c'):                        Copy,
		Ctrl('v'):                        Paste,
		Key(backend.KeyDelete, shift):    Cut,
		Key(backend.KeyInsert, ctrl):     Copy,
		Key(backend.KeyInsert, shift):    Paste,
		Key(backend.KeyBackspace, none):  DeletePrevious,
		Key(backend.KeyBackspace, shift): DeletePrevious,
		Key(backend.KeyDelete, none):     DeleteNext,
		Key(backend.KeyInsert, none):     ToggleOverwrite,
	}
}

// KeyBinding returns the action bound to k, or ActionNone.
func (e *Editor) KeyBinding(k KeyStroke) Action {
	return e.bindings[k.normalized()]
}

// SetKeyBinding binds k to a. ActionNone removes the binding.
func (e *Editor) SetKeyBinding(k KeyStroke, a Action) {
	k = k.normalized()
	if a == ActionNone {
		delete(e.bindings, k)
		return
	}
	e.bindings[k] = a
}

// HandleKey runs the action bound to k or types its character. It reports
// whether the key was used.
func (e *Editor) HandleKey(k KeyStroke) bool {
	if a, ok := e.bindings[k.normalized()]; ok {
		e.InvokeAction(a)
		return true
	}
	r, ok := k.character()
	if !ok {
		return false
	}
	e.doContent(r)
	return true
}

// character returns the text a stroke types, if any. Printable runes,
// Enter and Tab type; chords with Ctrl, Alt or Meta do not.
func (k KeyStroke) character() (rune, bool) {
	if k.Mod.Has(backend.ModCtrl) || k.Mod.Has(backend.ModAlt) || k.Mod.Has(backend.ModMeta) {
		return 0, false
	}
	switch k.Key {
	case backend.KeyEnter:
		return '\r', true
	case backend.KeyTab:
		return '\t', true
	case backend.KeyRune:
		if k.Rune > 31 && k.Rune != 127 {
			return k.Rune, true
		}
		if k.Rune == '\r' || k.Rune == '\n' || k.Rune == '\t' {
			return k.Rune, true
		}
	}
	return 0, false
}
