package ui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/cim/editor"
	"github.com/iw2rmb/cim/highlight"
	"github.com/iw2rmb/cim/internal/fileio"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newModel(t *testing.T, files map[string]string, path string, w, h int) Model {
	t.Helper()
	s := editor.Open(path, editor.Config{Storage: fileio.NewMem(files)})
	m := New(s, Options{LineNumbers: true})
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(Model)
}

func viewLines(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
}

func press(m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysFromMsg(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want []editor.Key
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlW}, []editor.Key{editor.CtrlKey('w')}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, []editor.Key{editor.CtrlKey('c')}},
		{tea.KeyMsg{Type: tea.KeyEnter}, []editor.Key{editor.SpecialKey(editor.KeyEnter)}},
		{tea.KeyMsg{Type: tea.KeyTab}, []editor.Key{editor.SpecialKey(editor.KeyTab)}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, []editor.Key{editor.SpecialKey(editor.KeyBackspace)}},
		{tea.KeyMsg{Type: tea.KeyEsc}, []editor.Key{editor.SpecialKey(editor.KeyEsc)}},
		{tea.KeyMsg{Type: tea.KeyPgDown}, []editor.Key{editor.SpecialKey(editor.KeyPgDown)}},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []editor.Key{editor.RuneKey(' ')}},
		{tea.KeyMsg{Type: tea.KeyShiftUp}, []editor.Key{{Code: editor.KeyUp, Mod: editor.ModShift}}},
		{runes("ab"), []editor.Key{editor.RuneKey('a'), editor.RuneKey('b')}},
		{runes("a\nb"), []editor.Key{editor.RuneKey('a'), editor.SpecialKey(editor.KeyEnter), editor.RuneKey('b')}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, KeysFromMsg(tc.msg), "msg %v", tc.msg)
	}

	require.Empty(t, KeysFromMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}))
}

func TestKeysFromMsg_MatchesBubbleTeaNames(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlS},
		{Type: tea.KeyHome},
		{Type: tea.KeyPgUp},
		{Type: tea.KeyDelete},
		runes("q"),
	} {
		keys := KeysFromMsg(msg)
		require.Len(t, keys, 1)
		require.Equal(t, msg.String(), keys[0].String())
	}
}

func TestView_EmptyBeforeSize(t *testing.T) {
	s := editor.New("abc", editor.Config{})
	require.Equal(t, "", New(s, Options{}).View())
}

func TestView_Layout(t *testing.T) {
	m := newModel(t, map[string]string{"notes.txt": "hello\nworld"}, "notes.txt", 30, 6)

	lines := viewLines(m)
	require.Len(t, lines, 6)
	require.True(t, strings.HasPrefix(lines[0], " NORMAL  notes.txt "), lines[0])
	require.True(t, strings.HasSuffix(lines[0], " 1:1 "), lines[0])
	require.Equal(t, "   1 hello", lines[1])
	require.Equal(t, "   2 world", lines[2])
	require.Equal(t, "     ~", lines[3])
	require.Equal(t, strings.Repeat(" ", 30), lines[5])
	for _, l := range lines {
		require.LessOrEqual(t, ansi.StringWidth(l), 30, l)
	}

	require.Equal(t, 25, m.Session().Viewport().Width)
	require.Equal(t, 4, m.Session().Viewport().Height)
}

func TestView_NoLineNumbers(t *testing.T) {
	s := editor.New("hi", editor.Config{})
	next, _ := New(s, Options{}).Update(tea.WindowSizeMsg{Width: 10, Height: 3})

	lines := viewLines(next.(Model))
	require.Equal(t, "hi", lines[1])
	require.Equal(t, 10, s.Viewport().Width)
}

func TestView_StatusShowsModifiedAndPosition(t *testing.T) {
	m := newModel(t, nil, "", 40, 5)

	m, _ = press(m, runes("i"), runes("ab"), tea.KeyMsg{Type: tea.KeyEnter}, runes("c"))

	lines := viewLines(m)
	require.Contains(t, lines[0], "INSERT")
	require.Contains(t, lines[0], "[No Name] [+]")
	require.True(t, strings.HasSuffix(lines[0], " 2:2 "), lines[0])
	require.Equal(t, "   1 ab", lines[1])
	require.Equal(t, "   2 c ", lines[2])
}

func TestView_CommandLine(t *testing.T) {
	m := newModel(t, nil, "", 20, 4)

	m, _ = press(m, runes(":"), runes("wq"))
	lines := viewLines(m)
	require.Equal(t, ":wq"+strings.Repeat(" ", 17), lines[3])

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	lines = viewLines(m)
	require.Equal(t, "No file name", strings.TrimRight(lines[3], " "))
}

func TestView_HorizontalScroll(t *testing.T) {
	s := editor.New(strings.Repeat("abcdefghij", 3), editor.Config{})
	next, _ := New(s, Options{}).Update(tea.WindowSizeMsg{Width: 10, Height: 3})
	m := next.(Model)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnd})

	require.Equal(t, 21, s.Viewport().HorizontalOffset)
	require.Equal(t, "bcdefghij", viewLines(m)[1])
}

func TestUpdate_QuitOnExit(t *testing.T) {
	m := newModel(t, nil, "", 20, 4)

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_SaveAndQuitCommand(t *testing.T) {
	mem := fileio.NewMem(map[string]string{"a.txt": "x"})
	s := editor.Open("a.txt", editor.Config{Storage: mem})
	var m tea.Model = New(s, Options{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})

	var cmd tea.Cmd
	for _, msg := range []tea.KeyMsg{runes("i"), runes("y"), {Type: tea.KeyEsc}, runes(":"), runes("x")} {
		m, cmd = m.Update(msg)
		require.Nil(t, cmd)
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	got, _ := mem.File("a.txt")
	require.Equal(t, "yx", got)
}

func paste(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

func TestUpdate_PasteInNormalModeIsDropped(t *testing.T) {
	m := newModel(t, nil, "", 20, 4)

	m, cmd := press(m, paste("quit"))

	require.Nil(t, cmd)
	require.Equal(t, "", m.Session().Buffer().Text())
	require.Equal(t, editor.ModeNormal, m.Session().Mode())
}

func TestUpdate_PasteInsertsText(t *testing.T) {
	m := newModel(t, nil, "", 20, 4)

	m, cmd := press(m, runes("i"), paste("q:\r\nx"))

	require.Nil(t, cmd)
	require.Equal(t, "q:\nx", m.Session().Buffer().Text())
	require.Equal(t, editor.ModeInsert, m.Session().Mode())
}

func TestUpdate_PasteOntoCommandLine(t *testing.T) {
	m := newModel(t, nil, "", 20, 4)

	m, _ = press(m, runes(":"), paste("w a.txt\n"))

	require.Equal(t, "w a.txt", m.Session().CommandLine())
	require.Equal(t, editor.ModeCommand, m.Session().Mode())
}

func wideModel(t *testing.T) Model {
	t.Helper()
	styles := DefaultStyles()
	styles.Cursor = lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" })
	s := editor.New(strings.Repeat("漢", 60), editor.Config{})
	next, _ := New(s, Options{Styles: &styles}).Update(tea.WindowSizeMsg{Width: 40, Height: 3})
	return next.(Model)
}

func TestView_WideRunesKeepCursorDrawn(t *testing.T) {
	m := wideModel(t)

	m, _ = press(m, runes("0"))
	for i := 0; i < 30; i++ {
		m, _ = press(m, runes("l"))
	}
	row := viewLines(m)[1]
	require.Equal(t, 25, m.Session().Viewport().HorizontalOffset)
	require.Equal(t, " "+strings.Repeat("漢", 17)+"[漢]漢", row)

	m, _ = press(m, runes("$"))
	row = viewLines(m)[1]
	require.Equal(t, 83, m.Session().Viewport().HorizontalOffset)
	require.True(t, strings.HasSuffix(row, "[漢]"), row)
	require.Equal(t, 37, ansi.StringWidth(strings.NewReplacer("[", "", "]", "").Replace(row)))
}

func TestRenderLine(t *testing.T) {
	plain := lipgloss.NewStyle()
	runs := []highlight.Run{{Text: "ab\tc", Style: plain}, {Text: "def", Style: plain}}

	require.Equal(t, "ab cdef", ansi.Strip(renderLine(runs, 0, 20, -1, plain)))
	require.Equal(t, " cde", ansi.Strip(renderLine(runs, 2, 4, -1, plain)))
	require.Equal(t, "ab cdef ", ansi.Strip(renderLine(runs, 0, 20, 7, plain)))
	require.Equal(t, "ab cdef", ansi.Strip(renderLine(runs, 0, 7, 7, plain)))
}

func TestRenderLine_WideRunes(t *testing.T) {
	plain := lipgloss.NewStyle()
	runs := []highlight.Run{{Text: "日本語", Style: plain}}

	require.Equal(t, "日本", ansi.Strip(renderLine(runs, 0, 5, -1, plain)))
	require.Equal(t, " 本語", ansi.Strip(renderLine(runs, 1, 6, -1, plain)))
	require.Equal(t, "本", ansi.Strip(renderLine(runs, 2, 3, -1, plain)))
}

func TestLineNumberWidth(t *testing.T) {
	require.Equal(t, 5, LineNumberWidth(1))
	require.Equal(t, 5, LineNumberWidth(9999))
	require.Equal(t, 6, LineNumberWidth(10000))
}
