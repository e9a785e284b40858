package buffer

// Writer persists whole-document text. It is the file I/O collaborator the
// buffer saves through.
type Writer interface {
	WriteFile(path, text string) error
}

// Save writes the full text verbatim to path through w. The modified flag is
// cleared only when the write succeeds.
func (b *Buffer) Save(w Writer, path string) error {
	if err := w.WriteFile(path, b.Text()); err != nil {
		return err
	}
	b.modified = false
	return nil
}
