package ui

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/cim/buffer"
	"github.com/iw2rmb/cim/editor"
)

// Options configures a Model.
type Options struct {
	LineNumbers bool
	Styles      *Styles
}

// Model is the Bubble Tea model driving one editor session. The top row is
// the status bar and the bottom row the command line; the text area fills
// the rest.
type Model struct {
	session     *editor.Session
	styles      Styles
	lineNumbers bool

	width  int
	height int
}

var _ tea.Model = Model{}

func New(s *editor.Session, opts Options) Model {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	return Model{
		session:     s,
		styles:      styles,
		lineNumbers: opts.LineNumbers,
	}
}

func (m Model) Session() *editor.Session { return m.session }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Paste {
			m.paste(msg.Runes)
			m.resize()
			return m, nil
		}
		for _, k := range KeysFromMsg(msg) {
			follow, ok := m.session.HandleKey(k)
			if ok && follow.Kind == editor.ActionExit {
				return m, tea.Quit
			}
		}
		// The gutter grows with the line count.
		m.resize()
		return m, nil
	}
	return m, nil
}

// paste delivers pasted text as typed characters: into the buffer in Insert
// mode, onto the command line in Command mode. Normal mode drops it so the
// text is never run as commands.
func (m Model) paste(text []rune) {
	switch m.session.Mode() {
	case editor.ModeInsert:
		for _, r := range buffer.NormalizeNewlines(string(text)) {
			m.session.Apply(editor.InsertChar(r))
		}
	case editor.ModeCommand:
		for _, r := range text {
			if r == '\r' || r == '\n' {
				continue
			}
			m.session.Apply(editor.CommandInput(r))
		}
	default:
		log.Printf("UI: dropped %d pasted runes in %s mode", len(text), m.session.Mode())
	}
}

func (m Model) gutterWidth() int {
	if !m.lineNumbers {
		return 0
	}
	return LineNumberWidth(m.session.Buffer().LineCount())
}

func (m Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.session.SetViewportSize(max(m.width-m.gutterWidth(), 0), max(m.height-2, 0))
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	snap := m.session.Snapshot()
	rows := make([]string, 0, m.height)
	rows = append(rows, m.renderStatusBar(snap))
	rows = append(rows, m.renderText(snap)...)
	if m.height > 1 {
		rows = append(rows, m.renderCommandLine(snap))
	}
	return strings.Join(rows, "\n")
}
