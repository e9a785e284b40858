package buffer

// Pos is a 0-based (row, col) position in runes.
type Pos struct {
	Row int
	Col int
}

// ClampPos moves p into a document of rowCount lines (at least one), where
// lineLen reports the rune length of each line. A nil lineLen treats every
// line as empty.
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	row := bound(p.Row, 0, max(rowCount, 1)-1)
	last := 0
	if lineLen != nil {
		last = max(lineLen(row), 0)
	}
	return Pos{Row: row, Col: bound(p.Col, 0, last)}
}

// bound limits v to [lo, hi]; hi below lo yields lo.
func bound(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
