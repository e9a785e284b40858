package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func joinLines(lines [][]Run) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = LineText(l)
	}
	return strings.Join(out, "\n")
}

func TestPlain_OneEntryPerLine(t *testing.T) {
	lines := Plain{}.Highlight("a\n\nbc\n")

	require.Len(t, lines, 4)
	require.Empty(t, lines[1])
	require.Empty(t, lines[3])
	require.Equal(t, "bc", LineText(lines[2]))
}

func TestChroma_PreservesTextAndLineCount(t *testing.T) {
	src := "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"
	c := NewChroma("")
	c.SetSyntaxForFile("main.go", src)

	lines := c.Highlight(src)

	require.Len(t, lines, strings.Count(src, "\n")+1)
	require.Equal(t, src, joinLines(lines))
	for _, l := range lines {
		for _, r := range l {
			require.NotContains(t, r.Text, "\n")
		}
	}
}

func TestChroma_UnterminatedLastLine(t *testing.T) {
	src := "x := 1\ny := 2"
	c := NewChroma("monokai")
	c.SetSyntaxForFile("a.go", src)

	lines := c.Highlight(src)

	require.Len(t, lines, 2)
	require.Equal(t, src, joinLines(lines))
}

func TestChroma_EmptyDocument(t *testing.T) {
	lines := NewChroma("").Highlight("")

	require.Len(t, lines, 1)
	require.Empty(t, lines[0])
}

func TestChroma_Language(t *testing.T) {
	c := NewChroma("")
	require.Equal(t, "plaintext", c.Language())

	c.SetSyntaxForFile("main.go", "package main\n")
	require.Equal(t, "Go", c.Language())

	c.SetSyntaxForFile("notes", "")
	require.Equal(t, "plaintext", c.Language())
}

func TestChroma_UnknownThemeFallsBack(t *testing.T) {
	c := NewChroma("no-such-theme")

	require.NotNil(t, c.style)
	require.Equal(t, DefaultTheme, c.style.Name)
}

func TestDetectLanguage(t *testing.T) {
	require.Equal(t, "Go", DetectLanguage("/tmp/x/main.go", nil))
	require.Equal(t, "Python", DetectLanguage("script", []byte("#!/usr/bin/env python3\nprint(1)\n")))
	require.Equal(t, "", DetectLanguage("", nil))
}
