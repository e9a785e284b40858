package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/iw2rmb/cim/buffer"
	"github.com/iw2rmb/cim/highlight"
	"github.com/iw2rmb/cim/internal/grapheme"
)

// ErrNoFileName is returned when saving a buffer that has no path.
var ErrNoFileName = errors.New("no file name")

// syntaxSetter is implemented by highlighters that pick a grammar per file.
type syntaxSetter interface {
	SetSyntaxForFile(path, content string)
}

// languager is implemented by highlighters that know the active language.
type languager interface {
	Language() string
}

// Session is a single editing session: one buffer and the cursor,
// viewport, mode and command line acting on it.
type Session struct {
	cfg  Config
	buf  *buffer.Buffer
	path string

	mode    Mode
	cursor  Cursor
	view    Viewport
	cmdline []rune
	status  string

	lines        [][]highlight.Run
	linesVersion uint64
	linesValid   bool
}

// New returns a session editing text that is not bound to a file.
func New(text string, cfg Config) *Session {
	cfg = cfg.withDefaults()
	view := NewViewport()
	view.MaxMargin = cfg.ScrollMargin
	view.MaxHMargin = cfg.HorizontalScrollMargin
	return &Session{
		cfg:  cfg,
		buf:  buffer.New(text),
		mode: ModeNormal,
		view: view,
	}
}

// Open returns a session editing the file at path.
//
// A file that cannot be read opens as an empty buffer still bound to path;
// the reason is left in the status line.
func Open(path string, cfg Config) *Session {
	cfg = cfg.withDefaults()
	if path == "" {
		return New("", cfg)
	}

	text, err := cfg.Storage.ReadFile(path)
	s := New(text, cfg)
	s.path = path
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		s.status = fmt.Sprintf("%q [New]", path)
	default:
		log.Printf("Session: read %q failed: %v", path, err)
		s.status = fmt.Sprintf("cannot read %q: %v", path, err)
	}
	s.setSyntax()
	return s
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Cursor() Cursor { return s.cursor }

func (s *Session) Viewport() Viewport { return s.view }

// Path is the file the session saves to, or "" when unbound.
func (s *Session) Path() string { return s.path }

func (s *Session) Modified() bool { return s.buf.Modified() }

// CommandLine is the text typed after ':' in Command mode.
func (s *Session) CommandLine() string { return string(s.cmdline) }

// Status is the last message for the user (save results, errors).
func (s *Session) Status() string { return s.status }

// Language is the highlighter's language name, if it reports one.
func (s *Session) Language() string {
	if l, ok := s.cfg.Highlighter.(languager); ok {
		return l.Language()
	}
	return ""
}

// CursorCell is the terminal cell at which the cursor starts on its line.
func (s *Session) CursorCell() int {
	return grapheme.ColumnCells(s.buf.LineRunes(s.cursor.Row), s.cursor.Col)
}

// SetCursor moves the cursor to c, clamped to the document.
func (s *Session) SetCursor(c Cursor) {
	s.cursor = c.Normalize(s.buf, s.mode)
	s.follow()
}

// SetViewportSize records the text area size supplied by the host.
func (s *Session) SetViewportSize(width, height int) {
	s.view.Width = maxInt(width, 0)
	s.view.Height = maxInt(height, 0)
	s.follow()
}

// HandleKey dispatches k for the current mode and applies the result.
func (s *Session) HandleKey(k Key) (Action, bool) {
	a, ok := Dispatch(s.cfg.KeyMap, s.mode, k)
	if !ok {
		return Action{}, false
	}
	return s.Apply(a)
}

// Lines returns the styled runs of every line. The whole document is
// highlighted again whenever its text changed since the last call.
func (s *Session) Lines() [][]highlight.Run {
	if s.linesValid && s.linesVersion == s.buf.Version() {
		return s.lines
	}

	lines := s.cfg.Highlighter.Highlight(s.buf.Text())
	n := s.buf.LineCount()
	for len(lines) < n {
		lines = append(lines, nil)
	}
	s.lines = lines[:n]
	s.linesVersion = s.buf.Version()
	s.linesValid = true
	return s.lines
}

// Save writes the buffer to its file.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoFileName
	}
	if err := s.buf.Save(s.cfg.Storage, s.path); err != nil {
		return fmt.Errorf("write %q: %w", s.path, err)
	}
	return nil
}

func (s *Session) setSyntax() {
	if ss, ok := s.cfg.Highlighter.(syntaxSetter); ok {
		ss.SetSyntaxForFile(s.path, s.buf.Text())
		s.linesValid = false
	}
}

func (s *Session) setMode(m Mode) {
	if s.mode == ModeCommand && m != ModeCommand {
		s.cmdline = nil
	}
	s.mode = m
	s.cursor = s.cursor.Normalize(s.buf, s.mode)
	s.follow()
}

func (s *Session) follow() {
	line := s.buf.LineRunes(s.cursor.Row)
	width := 1
	if s.cursor.Col < len(line) {
		width = maxInt(grapheme.RuneCells(line[s.cursor.Col]), 1)
	}
	s.view = s.view.FollowCell(s.cursor.Row, s.CursorCell(), width, s.buf.LineCount())
}
