package app

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/styledtext/internal/config"
	"github.com/dshills/styledtext/internal/editor"
	"github.com/dshills/styledtext/internal/renderer/backend"
	"github.com/dshills/styledtext/internal/renderer/core"
	"github.com/dshills/styledtext/internal/renderer/highlight"
)

// Options configures the application.
type Options struct {
	// Path is the file to edit. It need not exist yet.
	Path string

	// ConfigPath is the options file watched for live reload. Empty
	// disables reloading.
	ConfigPath string

	// Language overrides the highlight language of the options file.
	Language string

	// Config holds the loaded options.
	Config config.Options

	// Logger receives application and editor logs.
	Logger zerolog.Logger

	// Backend is the display. Nil selects the tcell terminal.
	Backend backend.Backend

	// Clipboard is the editor clipboard. Nil selects the system clipboard.
	Clipboard editor.Clipboard
}

// Application is one editor window on a terminal.
type Application struct {
	opts    Options
	config  config.Options
	log     zerolog.Logger
	backend backend.Backend

	// canvas is the editor client area; status is the bottom row
	canvas *backend.Canvas
	status *backend.Canvas

	editor      *editor.Editor
	highlighter *highlight.Provider
	watcher     *config.Watcher

	delimiter string
	message   string
	mouse     mouseState
	now       func() time.Time
	quitting  bool
}

// New creates the application and loads the file. The terminal is not
// touched until Run.
func New(opts Options) (*Application, error) {
	b := opts.Backend
	if b == nil {
		t, err := backend.NewTerminal()
		if err != nil {
			return nil, NewOperationError("open", "terminal", err)
		}
		b = t
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard{}
	}

	a := &Application{
		opts:    opts,
		config:  opts.Config,
		log:     Component(opts.Logger, "app"),
		backend: b,
		canvas:  backend.NewCanvas(b, core.Rect{}),
		status:  backend.NewCanvas(b, core.Rect{}),
		now:     time.Now,
	}

	text, err := loadFile(opts.Path)
	if err != nil {
		return nil, err
	}
	a.delimiter = detectDelimiter(text, a.config.Editor.LineDelimiter)

	a.editor = editor.New(a.editorOptions()...)
	a.setLanguage(a.language())
	a.editor.SetColors(a.colors())
	if err := a.editor.SetText(text); err != nil {
		return nil, NewOperationError("load", opts.Path, err)
	}
	a.log.Info().Str("file", opts.Path).Int("chars", a.editor.CharCount()).Msg("file loaded")
	return a, nil
}

// Editor returns the editor widget.
func (a *Application) Editor() *editor.Editor {
	return a.editor
}

// Message returns the status line message.
func (a *Application) Message() string {
	return a.message
}

func (a *Application) editorOptions() []editor.Option {
	e := a.config.Editor
	return []editor.Option{
		editor.WithLogger(Component(a.opts.Logger, "editor")),
		editor.WithTabs(e.TabWidth),
		editor.WithTextLimit(e.TextLimit),
		editor.WithEditable(e.Editable),
		editor.WithDoubleClick(e.DoubleClick),
		editor.WithOverwrite(e.Overwrite),
		editor.WithDelimiter(a.delimiter),
		editor.WithClipboard(a.opts.Clipboard),
		editor.WithScheduler(loopScheduler{poster: a.backend}),
		editor.WithSink(a.canvas),
	}
}

// language returns the highlight language, the flag taking precedence.
func (a *Application) language() string {
	if a.opts.Language != "" {
		return a.opts.Language
	}
	return a.config.Highlight.Language
}

// setLanguage installs, replaces or removes the highlighter.
func (a *Application) setLanguage(language string) {
	lexer := highlight.LexerFor(language, a.opts.Path)
	switch {
	case lexer == nil && a.highlighter != nil:
		if _, err := a.editor.RemoveLineStyleProvider(a.highlighter); err != nil {
			a.log.Warn().Err(err).Msg("remove highlighter")
		}
		a.highlighter = nil
	case lexer != nil && a.highlighter == nil:
		a.highlighter = highlight.NewProvider(lexer, highlight.LoadTheme(a.config.Highlight.Style), 0)
		if err := a.editor.AddLineStyleProvider(a.highlighter); err != nil {
			a.log.Warn().Err(err).Msg("add highlighter")
			a.highlighter = nil
			return
		}
	case lexer != nil:
		a.highlighter.SetLexer(lexer)
		a.highlighter.SetTheme(highlight.LoadTheme(a.config.Highlight.Style))
	}
	if a.highlighter != nil {
		a.log.Debug().Str("language", a.highlighter.Language()).Msg("highlighting")
	}
}

// colors resolves the widget colors. Unset colors take the highlight
// theme's defaults.
func (a *Application) colors() editor.Colors {
	c := a.config.Colors
	colors := editor.Colors{
		Foreground:          config.Color(c.Foreground),
		Background:          config.Color(c.Background),
		SelectionForeground: config.Color(c.SelectionForeground),
		SelectionBackground: config.Color(c.SelectionBackground),
	}
	if a.highlighter != nil {
		theme := a.highlighter.Theme()
		colors.Foreground = colors.Foreground.Or(theme.Foreground)
		colors.Background = colors.Background.Or(theme.Background)
	}
	return colors
}

// applyConfig applies reloaded options to the running editor.
func (a *Application) applyConfig(next config.Options) {
	prev := a.config
	a.config = next
	e := next.Editor
	if e.TabWidth != prev.Editor.TabWidth {
		a.editor.SetTabs(e.TabWidth)
	}
	if err := a.editor.SetTextLimit(e.TextLimit); err != nil {
		a.log.Warn().Err(err).Msg("text limit")
	}
	a.editor.SetEditable(e.Editable)
	a.editor.SetDoubleClickEnabled(e.DoubleClick)
	a.editor.SetOverwrite(e.Overwrite)
	if lvl, err := ParseLogLevel(next.Log.Level); err == nil {
		a.log = a.log.Level(lvl)
	}
	a.setLanguage(a.language())
	a.editor.SetColors(a.colors())
	a.setMessage("configuration reloaded")
}

// Run shows the editor and processes events until quit or ctx ends.
func (a *Application) Run(ctx context.Context) error {
	if err := a.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer a.backend.Shutdown()

	if a.opts.ConfigPath != "" {
		w, err := config.NewWatcher(a.opts.ConfigPath, a.onReload)
		if err != nil {
			a.log.Warn().Err(err).Str("path", a.opts.ConfigPath).Msg("config watch")
		} else {
			a.watcher = w
			defer w.Close()
		}
	}

	stop := context.AfterFunc(ctx, func() {
		a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: func() { a.quitting = true }})
	})
	defer stop()

	a.layout(a.backend.Size())
	a.paint()
	for !a.quitting {
		ev := a.backend.PollEvent()
		if err := a.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		a.paint()
	}
	return ctx.Err()
}

// onReload runs on the watcher goroutine and hands the result to the loop.
func (a *Application) onReload(opts config.Options, err error) {
	a.backend.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: func() {
		if err != nil {
			a.log.Warn().Err(err).Msg("config reload")
			a.setMessage(err.Error())
			return
		}
		a.applyConfig(opts)
	}})
}

// layout gives the editor all rows but the last.
func (a *Application) layout(width, height int) {
	editorHeight := max(0, height-1)
	a.canvas.SetBounds(core.NewRect(0, 0, width, editorHeight))
	a.status.SetBounds(core.NewRect(0, editorHeight, width, min(1, height)))
	a.editor.Resize(width, editorHeight)
	a.canvas.Redraw(a.editor.ClientArea())
}

// paint redraws the damaged part of the editor and the status line.
func (a *Application) paint() {
	if d := a.canvas.TakeDamage(); !d.IsEmpty() {
		a.editor.Draw(d.X, d.Y, d.Width, d.Height, a.canvas, true)
	}
	caret := a.editor.CaretLocation()
	a.canvas.SetCaret(caret.X, caret.Y, true)
	a.drawStatus()
	a.backend.Show()
}

func (a *Application) setMessage(msg string) {
	a.message = msg
}

func (a *Application) displayName() string {
	if a.opts.Path == "" {
		return "[no name]"
	}
	return filepath.Base(a.opts.Path)
}
