// Command griddemo shows a settings form laid out by a grid. Every setting
// of the grid can be changed while it runs.
//
// Usage:
//
//	griddemo [-config settings.yaml] [-watch] [-debug-log file]
//	griddemo -once [-width n] [-height n]
//
// Keys: up/down select a setting, left/right change it, q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-grid/internal/debug"
)

type options struct {
	config   string
	once     bool
	watch    bool
	width    int
	height   int
	debugLog string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("griddemo", flag.ContinueOnError)
	fs.StringVar(&opts.config, "config", "", "YAML settings file")
	fs.BoolVar(&opts.once, "once", false, "print a single frame and exit")
	fs.BoolVar(&opts.watch, "watch", false, "reload the settings file when it changes")
	fs.IntVar(&opts.width, "width", 0, "frame width for -once (default: terminal width)")
	fs.IntVar(&opts.height, "height", 0, "frame height for -once (default: terminal height)")
	fs.StringVar(&opts.debugLog, "debug-log", "", "write layout debug logs to `file`")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if opts.watch && opts.config == "" {
		return options{}, errors.New("-watch requires -config")
	}
	if opts.watch && opts.once {
		return options{}, errors.New("-watch cannot be used with -once")
	}
	if opts.width < 0 || opts.height < 0 {
		return options{}, fmt.Errorf("invalid frame size %dx%d", opts.width, opts.height)
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if opts.debugLog != "" {
		if err := debug.Init(opts.debugLog); err != nil {
			return err
		}
		defer debug.Close()
	}

	settings, err := LoadSettings(opts.config)
	if err != nil {
		return err
	}

	width, height := terminalSize(int(os.Stdout.Fd()))
	if opts.width > 0 {
		width = opts.width
	}
	if opts.height > 0 {
		height = opts.height
	}

	if opts.once {
		out, err := render(settings, -1, width, height)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}
	return interactive(settings, width, height, opts)
}

// interactive runs the demo until the user quits. With -watch, a settings
// watcher runs alongside the program; either failing stops both.
func interactive(settings Settings, width, height int, opts options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	p := tea.NewProgram(newModel(settings, width, height), tea.WithAltScreen(), tea.WithContext(ctx))

	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return err
		}
		return nil
	})
	if opts.watch {
		g.Go(func() error {
			return watchSettings(ctx, opts.config, p.Send)
		})
	}
	return g.Wait()
}
