package editor

import "github.com/iw2rmb/cim/highlight"

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	Mode   Mode
	Cursor Cursor
	// CursorCell is the cursor's terminal cell within its line.
	CursorCell int
	Viewport   Viewport

	// Lines holds the styled runs of every buffer line.
	Lines     [][]highlight.Run
	LineCount int
	Version   uint64

	Modified    bool
	Path        string
	Language    string
	CommandLine string
	Status      string
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Mode:        s.mode,
		Cursor:      s.cursor,
		CursorCell:  s.CursorCell(),
		Viewport:    s.view,
		Lines:       s.Lines(),
		LineCount:   s.buf.LineCount(),
		Version:     s.buf.Version(),
		Modified:    s.buf.Modified(),
		Path:        s.path,
		Language:    s.Language(),
		CommandLine: string(s.cmdline),
		Status:      s.status,
	}
}
