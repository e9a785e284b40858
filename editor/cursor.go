package editor

import (
	"github.com/iw2rmb/cim/buffer"
	"github.com/iw2rmb/cim/internal/grapheme"
)

// Cursor is the logical edit position: Col runes into line Row.
//
// In Normal mode on a non-empty line the cursor rests on a rune
// (Col <= len-1). In Insert and Command mode, or on an empty line, it may
// rest after the last rune (Col <= len).
type Cursor struct {
	Col int
	Row int
}

// Pos converts c to a buffer position.
func (c Cursor) Pos() buffer.Pos { return buffer.Pos{Row: c.Row, Col: c.Col} }

// maxCol is the largest valid column of row in mode.
func maxCol(b *buffer.Buffer, row int, mode Mode) int {
	n := b.LineLen(row)
	if mode == ModeNormal && n > 0 {
		return n - 1
	}
	return n
}

// Normalize clamps c into the document. A row past the end snaps to the
// start of the last line.
func (c Cursor) Normalize(b *buffer.Buffer, mode Mode) Cursor {
	last := b.LineCount() - 1
	row := clampInt(c.Row, 0, last)
	col := c.Col
	if row != c.Row {
		col = 0
	}
	return Cursor{Col: clampInt(col, 0, maxCol(b, row, mode)), Row: row}
}

// Move applies (dx, dy) with saturation: motions stop at the document and
// line edges and never wrap onto another line.
func (c Cursor) Move(b *buffer.Buffer, mode Mode, dx, dy int) Cursor {
	row := clampInt(saturatingAdd(c.Row, dy), 0, b.LineCount()-1)
	col := clampInt(saturatingAdd(c.Col, dx), 0, maxCol(b, row, mode))
	return Cursor{Col: col, Row: row}
}

// MoveWord moves to the next (dir > 0) or previous (dir < 0) word start on
// the current line.
//
// Runes are word, blank or punctuation. Forward skips the run under the
// cursor and any blanks after it. Backward skips blanks to the left, then
// the run before them.
func (c Cursor) MoveWord(b *buffer.Buffer, mode Mode, dir int) Cursor {
	c = c.Normalize(b, mode)
	line := b.LineRunes(c.Row)

	switch {
	case dir > 0:
		c.Col = nextWordStart(line, c.Col)
	case dir < 0:
		c.Col = prevWordStart(line, c.Col)
	}
	return c.Normalize(b, mode)
}

// LineStart moves to column 0.
func (c Cursor) LineStart() Cursor {
	c.Col = 0
	return c
}

// LineEnd moves to the last valid column of the line for mode.
func (c Cursor) LineEnd(b *buffer.Buffer, mode Mode) Cursor {
	c = c.Normalize(b, mode)
	c.Col = maxCol(b, c.Row, mode)
	return c
}

func nextWordStart(line []rune, col int) int {
	n := len(line)
	if col >= n {
		return col
	}
	i := col
	if cls := grapheme.ClassOf(line[i]); cls != grapheme.ClassBlank {
		for i < n && grapheme.ClassOf(line[i]) == cls {
			i++
		}
	}
	for i < n && grapheme.ClassOf(line[i]) == grapheme.ClassBlank {
		i++
	}
	return i
}

func prevWordStart(line []rune, col int) int {
	if col <= 0 {
		return 0
	}
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i > 0 && grapheme.ClassOf(line[i-1]) == grapheme.ClassBlank {
		i--
	}
	if i == 0 {
		return 0
	}
	cls := grapheme.ClassOf(line[i-1])
	for i > 0 && grapheme.ClassOf(line[i-1]) == cls {
		i--
	}
	return i
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

const (
	maxIntVal = int(^uint(0) >> 1)
	minIntVal = -maxIntVal - 1
)

func saturatingAdd(a, b int) int {
	switch {
	case b > 0 && a > maxIntVal-b:
		return maxIntVal
	case b < 0 && a < minIntVal-b:
		return minIntVal
	default:
		return a + b
	}
}
