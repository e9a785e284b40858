package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("tab_width = 2\nline_numbers = false\ntheme = \"monokai\"\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, 2, cfg.TabWidth)
	require.False(t, cfg.LineNumbers)
	require.Equal(t, "monokai", cfg.Theme)
	require.Equal(t, 2, cfg.ScrollMargin)
	require.Equal(t, 5, cfg.HorizontalScrollMargin)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("tab_width = \n"), 0o644))

	_, err := Load(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), path)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("tabwidth = 2\n"), 0o644))

	_, err := Load(path)

	require.ErrorContains(t, err, `unknown key "tabwidth"`)
}

func TestParse_Validation(t *testing.T) {
	cases := []string{
		"tab_width = 0",
		"tab_width = 17",
		"scroll_margin = -1",
		"horizontal_scroll_margin = -3",
		"tabwidth = 2",
	}
	for _, text := range cases {
		_, err := Parse(text)
		require.Error(t, err, text)
	}

	cfg, err := Parse("scroll_margin = 0\nlog_file = \"/tmp/cim.log\"")
	require.NoError(t, err)
	require.Equal(t, 0, cfg.ScrollMargin)
	require.Equal(t, "/tmp/cim.log", cfg.LogFile)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/someone")

	path, err := DefaultPath()

	require.NoError(t, err)
	require.Equal(t, "cim", filepath.Base(filepath.Dir(path)))
	require.Equal(t, "config.toml", filepath.Base(path))
}
