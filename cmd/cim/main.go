// Command cim is a modal terminal text editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/cim"
	"github.com/iw2rmb/cim/editor"
	"github.com/iw2rmb/cim/highlight"
	"github.com/iw2rmb/cim/internal/config"
	"github.com/iw2rmb/cim/ui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "cim: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	logPath     string
	showVersion bool
	file        string
}

func parseArgs(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("cim", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to config.toml")
	fs.StringVar(&opts.logPath, "log", "", "write debug log to this file")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: cim [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 1 {
		return options{}, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "cim %s\n", cim.VersionTag())
		return nil
	}

	configPath := opts.configPath
	if configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logPath := opts.logPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "cim")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	session := editor.Open(opts.file, editorConfig(cfg))
	log.Printf("cim %s: editing %q", cim.VersionTag(), opts.file)

	p := tea.NewProgram(ui.New(session, ui.Options{LineNumbers: cfg.LineNumbers}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func editorConfig(cfg config.Config) editor.Config {
	return editor.Config{
		TabWidth:               cfg.TabWidth,
		ScrollMargin:           marginOrDisabled(cfg.ScrollMargin),
		HorizontalScrollMargin: marginOrDisabled(cfg.HorizontalScrollMargin),
		Highlighter:            highlight.NewChroma(cfg.Theme),
	}
}

// marginOrDisabled maps a configured margin of 0 to the engine's "no
// margin" value; the engine reads 0 as "use the default".
func marginOrDisabled(n int) int {
	if n == 0 {
		return -1
	}
	return n
}
