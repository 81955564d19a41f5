package ui

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/skim/internal/prefs"
)

// handleKey dispatches a keystroke through the modal state machine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress hides the previous transient message.
	m.message = ""

	switch m.mode {
	case ModeColon:
		return m.handleColonKey(msg)
	case ModeExamine:
		return m.handleExamineKey(msg)
	case ModeSearch:
		return m.handleSearchKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleNormalKey handles normal-mode input, including the two-key
// mark chords and numeric repeat accumulation.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Second key of an m<letter> or '<letter> chord.
	if m.pendingMark != 0 {
		return m.finishMarkChord(msg)
	}

	s := msg.String()

	// Digits build a repeat count for the next motion.
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		if len(m.arg) < 6 {
			m.arg += s
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.showingHelp {
			m.quitHelp()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Colon):
		if !m.showingHelp {
			m.mode = ModeColon
		}
		m.arg = ""
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.displayHelp()
		m.schedulePrefetch()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursorLines(m.takeRepeat())
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursorLines(-m.takeRepeat())
		return m, nil

	// A count is merged with line-at-a-time scrolling only; page and
	// half-page motions discard it.
	case key.Matches(msg, m.keys.PageDown):
		m.takeRepeat()
		m.moveCursorLines(m.bodyHeight())
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.takeRepeat()
		m.moveCursorLines(-m.bodyHeight())
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.takeRepeat()
		m.moveCursorLines(m.bodyHeight() / 2)
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.takeRepeat()
		m.moveCursorLines(-m.bodyHeight() / 2)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.takeRepeat()
		v := m.reg.CurrentView()
		v.MoveCursorToLine(0)
		v.Scroll = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.takeRepeat()
		v := m.reg.CurrentView()
		v.MoveCursorToEnd()
		v.SyncScroll(m.bodyHeight())
		m.schedulePrefetch()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.reg.CurrentView().ScrollHorizontal(-m.hscrollStep())
		m.arg = ""
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.reg.CurrentView().ScrollHorizontal(m.hscrollStep())
		m.arg = ""
		return m, nil

	case key.Matches(msg, m.keys.SetMark):
		m.pendingMark = 'm'
		return m, nil

	case key.Matches(msg, m.keys.GotoMark):
		m.pendingMark = '\''
		return m, nil

	case key.Matches(msg, m.keys.ToggleWrap):
		v := m.reg.CurrentView()
		v.Wrap = !v.Wrap
		if v.Wrap {
			v.HScroll = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleHighlight):
		m.highlightSearch = !m.highlightSearch
		return m, nil

	case key.Matches(msg, m.keys.Follow):
		m.follow = true
		m.reg.CurrentView().MoveCursorToEnd()
		m.reg.CurrentView().SyncScroll(m.bodyHeight())
		m.schedulePrefetch()
		return m, nil

	case key.Matches(msg, m.keys.PrintName):
		m.message = m.reg.Current().Name()
		return m, nil

	case key.Matches(msg, m.keys.Repaint):
		return m, tea.ClearScreen

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.userPrefs.Theme = m.theme.Name
		_ = prefs.Save(m.prefsPath, m.userPrefs)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.arg = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.NextMatch):
		m.jumpToMatch(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevMatch):
		m.jumpToMatch(-1)
		return m, nil
	}

	m.arg = ""
	return m, nil
}

// finishMarkChord consumes the letter following m or ' in normal mode.
func (m Model) finishMarkChord(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chord := m.pendingMark
	m.pendingMark = 0

	s := msg.String()
	if len([]rune(s)) != 1 {
		// Escape or any non-letter key abandons the chord.
		return m, nil
	}
	name := []rune(s)[0]

	v := m.reg.CurrentView()
	switch chord {
	case 'm':
		v.SetMark(name)
	case '\'':
		// An unset mark is silently ignored.
		if v.GotoMark(name) {
			v.SyncScroll(m.bodyHeight())
			m.schedulePrefetch()
		}
	}
	return m, nil
}

// handleColonKey dispatches the single-letter colon commands.
func (m Model) handleColonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal

	switch msg.String() {
	case "e":
		m.mode = ModeExamine
		m.examineInput.SetValue("")
		m.examineInput.Focus()
		return m, textinput.Blink
	case "n":
		m.reg.FocusNext()
		m.schedulePrefetch()
	case "p":
		m.reg.FocusPrevious()
		m.schedulePrefetch()
	case "d":
		if err := m.reg.RemoveCurrent(); err != nil {
			m.message = err.Error()
		}
		m.schedulePrefetch()
	case "q", "backspace", "esc":
		// Leave colon mode without a command.
	default:
		m.message = "No command."
	}
	return m, nil
}

// handleExamineKey feeds the path prompt.
func (m Model) handleExamineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(m.examineInput.Value())
		m.mode = ModeNormal
		m.examineInput.Blur()
		if path != "" {
			m.openFile(path)
		}
		return m, nil
	case "esc", "ctrl+c":
		m.mode = ModeNormal
		m.examineInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.examineInput, cmd = m.examineInput.Update(msg)
	return m, cmd
}

// handleSearchKey feeds the search prompt.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		query := m.searchInput.Value()
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.applySearch(query)
		return m, nil
	case "esc", "ctrl+c":
		m.mode = ModeNormal
		m.searchInput.Blur()
		return m, nil
	case "backspace":
		// Backspace on an empty query clears the search entirely.
		if m.searchInput.Value() == "" {
			m.clearSearch()
			m.mode = ModeNormal
			m.searchInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// applySearch compiles the query case-insensitively and jumps to the
// first match at or after the cursor.
func (m *Model) applySearch(query string) {
	if strings.TrimSpace(query) == "" {
		m.clearSearch()
		return
	}
	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		m.message = "Invalid pattern: " + query
		return
	}
	m.searchQuery = query
	m.searchRegex = re
	m.jumpToMatch(1)
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchRegex = nil
}

// jumpToMatch moves the cursor to the next (dir > 0) or previous
// (dir < 0) line matching the current search pattern.
func (m *Model) jumpToMatch(dir int) {
	if m.searchRegex == nil {
		return
	}
	v := m.reg.CurrentView()
	row := v.CursorRow()
	for i := row + dir; i >= 0 && i < v.LineCount(); i += dir {
		if m.searchRegex.MatchString(v.Line(i)) {
			v.MoveCursorToLine(i)
			v.SyncScroll(m.bodyHeight())
			m.schedulePrefetch()
			return
		}
	}
	m.message = "Pattern not found: " + m.searchQuery
}

// moveCursorLines applies a vertical motion and keeps the cursor in
// the viewport.
func (m *Model) moveCursorLines(delta int) {
	v := m.reg.CurrentView()
	v.MoveCursorLines(delta)
	v.SyncScroll(m.bodyHeight())
	m.schedulePrefetch()
}

// takeRepeat consumes the accumulated numeric argument.
func (m *Model) takeRepeat() int {
	if m.arg == "" {
		return 1
	}
	n, err := strconv.Atoi(m.arg)
	m.arg = ""
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// hscrollStep scrolls horizontally by half the window width.
func (m Model) hscrollStep() int {
	step := m.width / 2
	if step < 1 {
		step = 1
	}
	return step
}
