package editor

// insertChar splices r at the cursor. A newline splits the line and moves
// the cursor to the start of the new one.
func (s *Session) insertChar(r rune) {
	s.buf.InsertChar(s.buf.Offset(s.cursor.Pos()), r)
	if r == '\n' {
		s.cursor = Cursor{Col: 0, Row: s.cursor.Row + 1}
	} else {
		s.cursor.Col++
	}
	s.afterEdit()
}

// backspace removes the rune before the cursor, joining with the previous
// line at column 0.
func (s *Session) backspace() {
	c := s.cursor.Normalize(s.buf, s.mode)
	switch {
	case c.Col > 0:
		s.buf.RemoveChar(s.buf.Offset(c.Pos()) - 1)
		c.Col--
	case c.Row > 0:
		prevLen := s.buf.LineLen(c.Row - 1)
		s.buf.RemoveChar(s.buf.OffsetOfLine(c.Row) - 1)
		c = Cursor{Col: prevLen, Row: c.Row - 1}
	default:
		return
	}
	s.cursor = c
	s.afterEdit()
}

// deleteForward removes the rune under the cursor.
func (s *Session) deleteForward() {
	off := s.buf.Offset(s.cursor.Pos())
	if off >= s.buf.Len() {
		return
	}
	s.buf.RemoveChar(off)
	s.afterEdit()
}

func (s *Session) pageUp() {
	amount := minInt(s.view.Height, s.cursor.Row)
	if amount < 0 {
		amount = 0
	}
	s.cursor.Row -= amount
	s.view.ScrollOffset = maxInt(s.view.ScrollOffset-amount, 0)
	s.afterEdit()
}

func (s *Session) pageDown() {
	last := s.buf.LineCount() - 1
	row := minInt(saturatingAdd(s.cursor.Row, maxInt(s.view.Height, 0)), last)
	if moved := row - s.cursor.Row; moved > 0 {
		s.view.ScrollOffset += moved
	}
	s.cursor.Row = row
	s.afterEdit()
}

func (s *Session) afterEdit() {
	s.cursor = s.cursor.Normalize(s.buf, s.mode)
	s.follow()
}
