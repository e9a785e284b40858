package buffer

import "strings"

// Buffer is the pure document state: text, line index, and modified flag.
//
// The line index is rebuilt from the text after every mutation, so line
// queries never observe a stale boundary.
type Buffer struct {
	text       []rune
	lineStarts []int
	version    uint64
	modified   bool
}

// New creates a buffer holding text. Carriage returns are folded into '\n'
// ("\r\n" and a lone "\r" both become a single newline).
func New(text string) *Buffer {
	b := &Buffer{text: []rune(NormalizeNewlines(text))}
	b.reindex()
	return b
}

// NormalizeNewlines converts "\r\n" and "\r" line endings to "\n".
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the document length in runes.
func (b *Buffer) Len() int { return len(b.text) }

// Version increases on every content mutation.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Modified() bool { return b.modified }

// LineCount returns the number of logical lines. It is always at least 1.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// OffsetOfLine returns the absolute rune offset where line n begins.
//
// OffsetOfLine(LineCount()) is the sentinel end of the document and returns
// Len(); so does any larger n. Negative n is treated as 0.
func (b *Buffer) OffsetOfLine(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(b.lineStarts) {
		return len(b.text)
	}
	return b.lineStarts[n]
}

// LineLen returns the rune length of line n, excluding its newline.
// Out-of-range lines have length 0.
func (b *Buffer) LineLen(n int) int {
	if n < 0 || n >= len(b.lineStarts) {
		return 0
	}
	start := b.lineStarts[n]
	end := b.OffsetOfLine(n + 1)
	if n < len(b.lineStarts)-1 {
		// Every line but the last ends in '\n'.
		end--
	}
	return end - start
}

// Line returns the text of line n without its newline.
func (b *Buffer) Line(n int) string {
	return string(b.LineRunes(n))
}

// LineRunes returns a copy of line n without its newline.
func (b *Buffer) LineRunes(n int) []rune {
	if n < 0 || n >= len(b.lineStarts) {
		return nil
	}
	start := b.lineStarts[n]
	out := make([]rune, b.LineLen(n))
	copy(out, b.text[start:start+len(out)])
	return out
}

// Lines returns every line of the document without newlines.
func (b *Buffer) Lines() []string {
	out := make([]string, 0, len(b.lineStarts))
	for n := range b.lineStarts {
		out = append(out, b.Line(n))
	}
	return out
}

func (b *Buffer) reindex() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	for i, r := range b.text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	b.lineStarts = starts
}
