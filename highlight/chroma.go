package highlight

import (
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used when no theme is configured or the configured one is
// unknown.
const DefaultTheme = "catppuccin-mocha"

// Chroma highlights documents with a chroma lexer and style.
type Chroma struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewChroma returns a plain-text highlighter using the named chroma style.
func NewChroma(theme string) *Chroma {
	return &Chroma{
		style: resolveStyle(theme),
		lexer: lexers.Fallback,
	}
}

func resolveStyle(name string) *chroma.Style {
	if name == "" {
		name = DefaultTheme
	}
	if s, ok := styles.Registry[name]; ok {
		return s
	}
	log.Printf("Highlight: unknown theme %q, using %q", name, DefaultTheme)
	return styles.Get(DefaultTheme)
}

// SetSyntaxForFile picks the lexer for a file from its name and content.
func (c *Chroma) SetSyntaxForFile(path, content string) {
	c.lexer = lexerFor(path, content)
}

// Language reports the name of the active lexer.
func (c *Chroma) Language() string {
	if c.lexer == nil || c.lexer == lexers.Fallback {
		return "plaintext"
	}
	return c.lexer.Config().Name
}

// Highlight tokenizes the whole document. Tokenizer failures degrade to
// unstyled lines.
func (c *Chroma) Highlight(text string) [][]Run {
	want := lineCount(text)
	if text == "" {
		return make([][]Run, want)
	}

	it, err := chroma.Coalesce(c.lexer).Tokenise(nil, text)
	if err != nil {
		log.Printf("Highlight: tokenise failed: %v", err)
		return PlainLines(text)
	}

	out := make([][]Run, 1, want)
	for _, tok := range it.Tokens() {
		if tok.Type == chroma.EOFType {
			break
		}
		st := c.tokenStyle(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, p := range parts {
			if i > 0 {
				out = append(out, nil)
			}
			if p == "" {
				continue
			}
			last := len(out) - 1
			out[last] = append(out[last], Run{Text: p, Style: st})
		}
	}

	// Lexers may append a trailing newline of their own.
	for len(out) < want {
		out = append(out, nil)
	}
	return out[:want]
}

func (c *Chroma) tokenStyle(tt chroma.TokenType) lipgloss.Style {
	entry := c.style.Get(tt)
	st := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}
