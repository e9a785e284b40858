package buffer

// Offset resolves p to an absolute rune offset.
//
// Row is clamped to the document and Col to the row's length, so the result
// always lies in [0, Len()]. Multi-byte characters count as one column.
func (b *Buffer) Offset(p Pos) int {
	p = ClampPos(p, len(b.lineStarts), b.LineLen)
	return b.lineStarts[p.Row] + p.Col
}
