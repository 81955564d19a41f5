// Package ui binds the pager engine to a Bubble Tea front end. The
// Update loop is the single place where registry and view state
// mutate; prefetch workers only ever reach it through chunk messages.
package ui

import (
	"context"
	"errors"
	"regexp"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/skim/internal/pager"
	"github.com/five82/skim/internal/prefs"
	"github.com/five82/skim/internal/source"
)

// Mode is the modal input state. Help is not a mode: it is a flag
// layered over whichever mode is active.
type Mode int

const (
	ModeNormal Mode = iota
	ModeColon
	ModeExamine
	ModeSearch
)

// Options configures the UI.
type Options struct {
	Registry  *pager.Registry
	Prefs     prefs.Prefs
	PrefsPath string

	// InitialMessage is shown in the status area until the first
	// keypress, used for errors that happened before the UI started.
	InitialMessage string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	reg   *pager.Registry
	fetch *pager.Prefetcher
	keys  keyMap

	theme     Theme
	prefsPath string
	userPrefs prefs.Prefs

	// Modal state
	mode        Mode
	showingHelp bool
	message     string
	arg         string // accumulated numeric repeat, consumed by the next motion
	pendingMark byte   // 'm' or '\'' while awaiting a mark name

	// Streaming state
	follow bool

	// Search state
	highlightSearch bool
	searchQuery     string
	searchRegex     *regexp.Regexp
	searchInput     textinput.Model
	examineInput    textinput.Model

	width  int
	height int
	ready  bool
}

// New creates the pager model.
func New(opts Options) Model {
	reg := opts.Registry
	if reg == nil {
		reg = pager.NewRegistry()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	si := textinput.New()
	si.Prompt = "/"
	si.CharLimit = 256

	ei := textinput.New()
	ei.Prompt = " Examine: "
	ei.CharLimit = 1024

	m := Model{
		reg:             reg,
		fetch:           pager.NewPrefetcher(),
		keys:            defaultKeyMap(),
		theme:           GetTheme(opts.Prefs.Theme),
		prefsPath:       prefsPath,
		userPrefs:       opts.Prefs,
		follow:          opts.Prefs.Follow,
		message:         opts.InitialMessage,
		highlightSearch: true,
		searchInput:     si,
		examineInput:    ei,
	}

	// Sources opened before the UI started still need the preference
	// defaults applied to their views.
	for _, e := range reg.Entries() {
		e.View.Wrap = opts.Prefs.Wrap
	}
	return m
}

// chunkMsg delivers one prefetch hand-off to the Update loop.
type chunkMsg pager.Chunk

// waitChunkCmd blocks on the prefetcher's event queue and re-arms
// after every delivery, keeping the hand-off ordered.
func waitChunkCmd(p *pager.Prefetcher) tea.Cmd {
	return func() tea.Msg {
		return chunkMsg(<-p.Events())
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		waitChunkCmd(m.fetch),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.schedulePrefetch()
		return m, nil

	case chunkMsg:
		if status := m.reg.Apply(pager.Chunk(msg), m.follow); status != "" {
			m.message = status
		}
		if m.follow {
			m.reg.CurrentView().SyncScroll(m.bodyHeight())
		}
		m.schedulePrefetch()
		return m, waitChunkCmd(m.fetch)
	}

	return m, nil
}

// schedulePrefetch is the render tick: it inspects the viewport
// geometry and asks the prefetcher whether the active source needs
// more content. Never blocks.
func (m *Model) schedulePrefetch() {
	if !m.ready {
		return
	}
	e := m.reg.CurrentEntry()
	height := m.bodyHeight()
	last := e.View.Scroll + height
	if count := e.View.LineCount(); last > count {
		last = count
	}
	m.fetch.Tick(e, pager.Geometry{Height: height, LastVisibleLine: last}, m.follow)
}

// bodyHeight is the viewport height minus the bottom bar.
func (m Model) bodyHeight() int {
	if m.height <= 1 {
		return 0
	}
	return m.height - 1
}

// addSource pushes a source through the registry and applies the view
// defaults the UI owns.
func (m *Model) addSource(src source.Source) {
	v := m.reg.Add(src)
	v.Wrap = m.userPrefs.Wrap
	m.schedulePrefetch()
}

// openFile opens path as a new source. Failures become a transient
// status message and leave the registry untouched.
func (m *Model) openFile(path string) {
	if err := m.reg.OpenFile(path); err != nil {
		m.message = err.Error()
		return
	}
	m.reg.CurrentView().Wrap = m.userPrefs.Wrap
	m.schedulePrefetch()
}

// displayHelp pushes the help screen as an ephemeral source.
func (m *Model) displayHelp() {
	if m.showingHelp {
		return
	}
	m.addSource(source.NewFormattedText(helpName, helpFragments()))
	m.showingHelp = true
}

// quitHelp closes the help screen, restoring the previous source.
func (m *Model) quitHelp() {
	if !m.showingHelp {
		return
	}
	if err := m.reg.RemoveCurrent(); err != nil {
		m.message = err.Error()
	}
	m.showingHelp = false
}

// Run starts the Bubble Tea program and blocks until the user quits
// or ctx is cancelled. Cancellation counts as a normal shutdown.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
