// Package grapheme holds the text measurement and character classification
// helpers shared by the editing engine and the renderer.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Class groups runes for word motions.
type Class uint8

const (
	ClassBlank Class = iota
	ClassWord
	ClassPunct
)

// ClassOf classifies r: letters, digits and '_' are word runes, whitespace is
// blank, and everything else is punctuation.
func ClassOf(r rune) Class {
	switch {
	case IsWord(r):
		return ClassWord
	case unicode.IsSpace(r):
		return ClassBlank
	default:
		return ClassPunct
	}
}

// IsWord reports whether r belongs to an identifier-like word.
func IsWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Clip returns the longest grapheme-safe prefix of text that fits in width
// terminal cells.
func Clip(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}

	g := uniseg.NewGraphemes(text)
	used := 0
	var sb strings.Builder
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		used += w
		sb.WriteString(g.Str())
	}
	return sb.String()
}

// PadRight clips text to width cells and pads it with spaces to exactly
// width cells.
func PadRight(text string, width int) string {
	text = Clip(text, width)
	if pad := width - Width(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

// RuneCells is the number of terminal cells r takes when drawn. A tab is
// drawn as one blank.
func RuneCells(r rune) int {
	if r == '\t' {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// ColumnCells returns the cell offset at which rune column col of line
// starts. Columns past the end continue one cell per column.
func ColumnCells(line []rune, col int) int {
	cells := 0
	for i := 0; i < col; i++ {
		if i < len(line) {
			cells += RuneCells(line[i])
		} else {
			cells++
		}
	}
	return cells
}
