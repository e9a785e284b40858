package editor

import (
	"github.com/iw2rmb/cim/highlight"
	"github.com/iw2rmb/cim/internal/fileio"
)

// DefaultTabWidth is the number of spaces Tab inserts.
const DefaultTabWidth = 4

// Storage reads and writes whole documents.
type Storage interface {
	ReadFile(path string) (string, error)
	WriteFile(path, text string) error
}

// Config configures a Session. Zero fields select defaults.
type Config struct {
	// TabWidth is the number of spaces Tab inserts (default 4).
	TabWidth int

	// ScrollMargin and HorizontalScrollMargin cap the soft scroll margins
	// (defaults 2 and 5). A negative value disables the margin.
	ScrollMargin           int
	HorizontalScrollMargin int

	KeyMap KeyMap

	// Storage defaults to the local file system.
	Storage Storage

	// Highlighter defaults to highlight.Plain.
	Highlighter highlight.Highlighter
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = DefaultTabWidth
	}
	if c.ScrollMargin == 0 {
		c.ScrollMargin = DefaultScrollMargin
	}
	if c.HorizontalScrollMargin == 0 {
		c.HorizontalScrollMargin = DefaultHorizontalScrollMargin
	}
	if len(c.KeyMap.Normal.Quit.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Storage == nil {
		c.Storage = fileio.OS{}
	}
	if c.Highlighter == nil {
		c.Highlighter = highlight.Plain{}
	}
	return c
}
