// Package config loads the editor's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the user configuration. Unset keys keep their defaults.
type Config struct {
	TabWidth               int    `toml:"tab_width"`
	Theme                  string `toml:"theme"`
	LineNumbers            bool   `toml:"line_numbers"`
	ScrollMargin           int    `toml:"scroll_margin"`
	HorizontalScrollMargin int    `toml:"horizontal_scroll_margin"`
	LogFile                string `toml:"log_file"`
}

const maxTabWidth = 16

func Default() Config {
	return Config{
		TabWidth:               4,
		Theme:                  "catppuccin-mocha",
		LineNumbers:            true,
		ScrollMargin:           2,
		HorizontalScrollMargin: 5,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/cim/config.toml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cim", "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults. Unknown keys and out-of-range
// values are errors.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > maxTabWidth {
		return fmt.Errorf("tab_width must be between 1 and %d, got %d", maxTabWidth, c.TabWidth)
	}
	if c.ScrollMargin < 0 {
		return fmt.Errorf("scroll_margin must not be negative, got %d", c.ScrollMargin)
	}
	if c.HorizontalScrollMargin < 0 {
		return fmt.Errorf("horizontal_scroll_margin must not be negative, got %d", c.HorizontalScrollMargin)
	}
	return nil
}
