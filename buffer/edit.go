package buffer

import "fmt"

// InsertChar inserts r at the absolute rune offset pos and marks the buffer
// modified.
//
// pos must lie in [0, Len()]; anything else is a caller bug and panics.
func (b *Buffer) InsertChar(pos int, r rune) {
	if pos < 0 || pos > len(b.text) {
		panic(fmt.Sprintf("buffer: insert offset %d out of range [0,%d]", pos, len(b.text)))
	}

	b.text = append(b.text, 0)
	copy(b.text[pos+1:], b.text[pos:])
	b.text[pos] = r
	b.changed()
}

// RemoveChar removes the rune at the absolute offset pos. Removing at or
// past the end of the document is a no-op.
func (b *Buffer) RemoveChar(pos int) {
	if pos < 0 || pos >= len(b.text) {
		return
	}

	b.text = append(b.text[:pos], b.text[pos+1:]...)
	b.changed()
}

func (b *Buffer) changed() {
	b.reindex()
	b.version++
	b.modified = true
}
