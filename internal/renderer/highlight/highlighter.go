// Package highlight supplies syntax coloring to the editor as a line
// style provider backed by chroma lexers and styles.
package highlight

import (
	"path/filepath"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/styledtext/internal/engine/overlay"
)

// span is a styled run relative to the start of its line.
type span struct {
	start, length int
	token         chroma.TokenType
}

// Provider implements overlay.LineStyleProvider. Lines are lexed on their
// own, so constructs spanning several lines are colored line by line.
type Provider struct {
	mu sync.Mutex

	lexer chroma.Lexer
	theme *Theme

	// lineCache maps line text to its spans
	lineCache    map[string][]span
	maxCacheSize int
}

// NewProvider creates a provider for lexer. A nil lexer disables
// highlighting and a nil theme selects the default theme.
func NewProvider(lexer chroma.Lexer, theme *Theme, maxCache int) *Provider {
	if theme == nil {
		theme = DefaultTheme()
	}
	if maxCache <= 0 {
		maxCache = 1000
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return &Provider{
		lexer:        lexer,
		theme:        theme,
		lineCache:    make(map[string][]span),
		maxCacheSize: maxCache,
	}
}

// SetLexer replaces the lexer and clears the cache.
func (p *Provider) SetLexer(lexer chroma.Lexer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	p.lexer = lexer
	p.lineCache = make(map[string][]span)
}

// Language returns the lexer name, or "" when highlighting is off.
func (p *Provider) Language() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lexer == nil {
		return ""
	}
	return p.lexer.Config().Name
}

// SetTheme sets the active theme. Cached spans hold token types, so the
// cache stays valid.
func (p *Provider) SetTheme(theme *Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
}

// Theme returns the current theme.
func (p *Provider) Theme() *Theme {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// LineStyles returns style ranges for one line in document offsets.
// Tokens that inherit every attribute produce no range.
func (p *Provider) LineStyles(lineOffset int, lineText string) []overlay.StyleRange {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.lexer == nil || lineText == "" {
		return nil
	}
	spans := p.spansForLine(lineText)
	var out []overlay.StyleRange
	for _, s := range spans {
		style := p.theme.StyleForToken(s.token)
		if style.Foreground.IsDefault() && style.Background.IsDefault() && style.Weight == 0 {
			continue
		}
		r := overlay.NewStyleRange(lineOffset+s.start, s.length)
		out = append(out, r.WithStyle(style))
	}
	return out
}

func (p *Provider) spansForLine(text string) []span {
	if cached, ok := p.lineCache[text]; ok {
		return cached
	}
	spans := p.tokenise(text)
	if len(p.lineCache) >= p.maxCacheSize {
		p.evictCache()
	}
	p.lineCache[text] = spans
	return spans
}

// tokenise lexes text and converts token values to rune spans clipped to
// the line.
func (p *Provider) tokenise(text string) []span {
	it, err := p.lexer.Tokenise(nil, text)
	if err != nil {
		return nil
	}
	limit := utf8.RuneCountInString(text)
	var spans []span
	pos := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		n := utf8.RuneCountInString(tok.Value)
		if pos+n > limit {
			n = limit - pos
		}
		if n > 0 {
			spans = append(spans, span{start: pos, length: n, token: tok.Type})
		}
		pos += n
		if pos >= limit {
			break
		}
	}
	return spans
}

// evictCache removes about a quarter of the entries.
func (p *Provider) evictCache() {
	toRemove := max(len(p.lineCache)/4, 10)
	removed := 0
	for text := range p.lineCache {
		delete(p.lineCache, text)
		removed++
		if removed >= toRemove {
			break
		}
	}
}

// InvalidateAll clears the cache.
func (p *Provider) InvalidateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lineCache = make(map[string][]span)
}

// LexerFor returns the lexer for an explicit language name or, when
// language is empty, for the file name. It returns nil when neither
// matches.
func LexerFor(language, filename string) chroma.Lexer {
	if language != "" {
		return lexers.Get(language)
	}
	if filename == "" {
		return nil
	}
	return lexers.Match(filepath.Base(filename))
}

// Languages returns the names of the registered lexers.
func Languages() []string {
	names := lexers.Names(false)
	sort.Strings(names)
	return names
}
