// Package highlight turns document text into per-line styled runs.
//
// A highlighted document always has exactly one entry per logical line (the
// number of '\n' in the text plus one). Run text never contains a newline.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Run is a span of line text rendered with a single style.
type Run struct {
	Text  string
	Style lipgloss.Style
}

// Highlighter produces styled runs for a whole document.
type Highlighter interface {
	Highlight(text string) [][]Run
}

// Plain is a Highlighter that emits unstyled text.
type Plain struct{}

func (Plain) Highlight(text string) [][]Run {
	return PlainLines(text)
}

// PlainLines splits text into lines of a single unstyled run each. Empty
// lines have no runs.
func PlainLines(text string) [][]Run {
	parts := strings.Split(text, "\n")
	out := make([][]Run, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		out[i] = []Run{{Text: p, Style: lipgloss.NewStyle()}}
	}
	return out
}

// LineText joins the text of runs.
func LineText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func lineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
