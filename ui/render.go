package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/cim/editor"
	"github.com/iw2rmb/cim/highlight"
	"github.com/iw2rmb/cim/internal/grapheme"
)

func (m Model) renderStatusBar(snap editor.Snapshot) string {
	name := "[No Name]"
	if snap.Path != "" {
		name = filepath.Base(snap.Path)
	}
	if snap.Modified {
		name += " [+]"
	}

	left := m.styles.Mode.Render(" "+snap.Mode.String()+" ") + m.styles.StatusBar.Render(" "+name+" ")
	right := fmt.Sprintf(" %d:%d ", snap.Cursor.Row+1, snap.Cursor.Col+1)
	if snap.Language != "" {
		right = " " + snap.Language + " " + right
	}

	gap := m.width - lipgloss.Width(left) - grapheme.Width(right)
	if gap < 0 {
		return ansi.Truncate(left, m.width, "")
	}
	return left + m.styles.StatusBar.Render(strings.Repeat(" ", gap)+right)
}

func (m Model) renderText(snap editor.Snapshot) []string {
	v := snap.Viewport
	rows := make([]string, 0, max(v.Height, 0))
	cursorVisible := snap.Mode != editor.ModeCommand

	for i := 0; i < v.Height; i++ {
		row := v.ScrollOffset + i
		var sb strings.Builder
		if m.lineNumbers {
			sb.WriteString(m.renderGutter(row, snap.LineCount, row == snap.Cursor.Row))
		}
		switch {
		case row >= snap.LineCount:
			sb.WriteString(m.styles.EmptyLine.Render("~"))
		default:
			cursorCol := -1
			if cursorVisible && row == snap.Cursor.Row {
				cursorCol = snap.Cursor.Col
			}
			sb.WriteString(renderLine(snap.Lines[row], v.HorizontalOffset, v.Width, cursorCol, m.styles.Cursor))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// renderLine draws runs starting at terminal cell hoff, clipped to width
// cells. The rune at cursorCol (or a blank past the line end) is drawn with
// cursor. A negative cursorCol draws no cursor. A wide rune cut by the left
// edge leaves blanks in the cells that remain visible.
func renderLine(runs []highlight.Run, hoff, width, cursorCol int, cursor lipgloss.Style) string {
	var sb strings.Builder
	col, cell, used := 0, 0, 0
	full := false

	for _, run := range runs {
		if full {
			break
		}
		var seg []rune
		flush := func(style lipgloss.Style) {
			if len(seg) > 0 {
				sb.WriteString(style.Render(string(seg)))
				seg = seg[:0]
			}
		}
		for _, r := range run.Text {
			w := grapheme.RuneCells(r)
			switch {
			case cell+w <= hoff:
			case cell < hoff:
				seg = append(seg, []rune(strings.Repeat(" ", cell+w-hoff))...)
				used += cell + w - hoff
			case used+w > width:
				full = true
			default:
				if r == '\t' {
					r = ' '
				}
				if col == cursorCol {
					flush(run.Style)
					sb.WriteString(cursor.Render(string(r)))
				} else {
					seg = append(seg, r)
				}
				used += w
			}
			if full {
				break
			}
			cell += w
			col++
		}
		flush(run.Style)
	}

	if !full && cursorCol >= col && cell >= hoff && used < width {
		sb.WriteString(cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) renderCommandLine(snap editor.Snapshot) string {
	text := snap.Status
	if snap.Mode == editor.ModeCommand {
		text = ":" + snap.CommandLine
	}
	return m.styles.CommandLine.Render(grapheme.PadRight(text, m.width))
}
