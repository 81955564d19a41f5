package app

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/five82/skim/internal/pager"
	"github.com/five82/skim/internal/prefs"
	"github.com/five82/skim/internal/source"
	"github.com/five82/skim/internal/ui"
)

// Options configure the skim application.
type Options struct {
	Paths     []string // files to open; empty means page standard input
	PrefsPath string   // empty uses default ~/.config/skim/prefs.toml
	DebugLog  string   // when set, Bubble Tea logs to this file
	Follow    bool     // start in follow mode
}

// Run boots the pager and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.DebugLog != "" {
		f, err := tea.LogToFile(opts.DebugLog, "skim")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	if opts.Follow {
		userPrefs.Follow = true
	}

	reg := pager.NewRegistry()
	defer reg.Close()

	var initialMessage string
	if len(opts.Paths) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("missing filename (and standard input is a terminal)")
		}
		reg.Add(source.NewPipe("<stdin>", os.Stdin))
	} else {
		// Open every named file; the last successfully opened one gets
		// focus. A session only fails to start when nothing opened;
		// otherwise open errors show as a status message.
		var openErrs []error
		for _, path := range opts.Paths {
			if err := reg.OpenFile(path); err != nil {
				openErrs = append(openErrs, err)
			}
		}
		if len(openErrs) > 0 {
			if reg.Len() == 0 {
				return openErrs[0]
			}
			initialMessage = openErrs[0].Error()
		}
	}

	return ui.Run(ctx, ui.Options{
		Registry:       reg,
		Prefs:          userPrefs,
		PrefsPath:      opts.PrefsPath,
		InitialMessage: initialMessage,
	})
}
