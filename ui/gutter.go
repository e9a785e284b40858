package ui

import (
	"fmt"
	"strconv"
)

// minLineNumberDigits keeps the gutter steady for short files.
const minLineNumberDigits = 4

// LineNumberWidth returns the gutter width for lineCount lines, including
// the separating space.
func LineNumberWidth(lineCount int) int {
	return gutterDigits(lineCount) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return max(len(strconv.Itoa(lineCount)), minLineNumberDigits)
}

// renderGutter draws the 1-based number of row, or a blank gutter for rows
// past the end of the document.
func (m Model) renderGutter(row, lineCount int, active bool) string {
	digits := gutterDigits(lineCount)
	if row >= lineCount {
		return m.styles.Gutter.Render(fmt.Sprintf("%*s ", digits, ""))
	}
	num := m.styles.LineNum
	if active {
		num = m.styles.LineNumActive
	}
	return num.Render(fmt.Sprintf("%*d", digits, row+1)) + m.styles.Gutter.Render(" ")
}
