package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderBottomBar renders the single chrome line under the body. Its
// content depends on the input mode: the colon indicator, the examine
// or search prompt, a transient message, or the status bar.
func (m Model) renderBottomBar() string {
	styles := m.theme.Styles()

	switch m.mode {
	case ModeColon:
		return m.padBar(styles.Prompt.Render(" :"), styles.Prompt)
	case ModeExamine:
		return m.padBar(styles.Prompt.Render(m.examineInput.View()), styles.Prompt)
	case ModeSearch:
		return m.padBar(styles.Prompt.Render(m.searchInput.View()), styles.Prompt)
	}

	if m.message != "" {
		return m.padBar(styles.Message.Render(" "+m.message+" "), styles.StatusBar)
	}

	left := m.statusLeft()
	right := m.statusRight()
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return m.padBar(left, styles.StatusBar)
	}
	return left + styles.StatusBar.Render(strings.Repeat(" ", gap)) + right
}

// padBar extends a bar fragment to the full terminal width.
func (m Model) padBar(bar string, style lipgloss.Style) string {
	if gap := m.width - lipgloss.Width(bar); gap > 0 {
		return bar + style.Render(strings.Repeat(" ", gap))
	}
	return bar
}

// statusLeft is the hint text shown at the bottom left.
func (m Model) statusLeft() string {
	styles := m.theme.Styles()
	if m.showingHelp {
		return styles.StatusBar.Render(" HELP -- Press ") +
			styles.StatusKey.Render("[q]") +
			styles.StatusBar.Render(" when done")
	}
	return styles.StatusBar.Render(" (press ") +
		styles.StatusKey.Render("[h]") +
		styles.StatusBar.Render(" for help or ") +
		styles.StatusKey.Render("[q]") +
		styles.StatusBar.Render(" to quit)")
}

// statusRight shows the loading indicator, any pending repeat count,
// and the cursor position.
func (m Model) statusRight() string {
	styles := m.theme.Styles()
	var parts []string

	if m.reg.CurrentView().Loading {
		parts = append(parts, styles.Loading.Render(" Loading... "))
	}
	if m.arg != "" {
		parts = append(parts, styles.Arg.Render(" "+m.arg+" "))
	}
	parts = append(parts, styles.StatusBar.Render(m.cursorPosition()))
	return strings.Join(parts, "")
}

// cursorPosition formats the (row,col) indicator, with the percentage
// through the source once its full length is known.
func (m Model) cursorPosition() string {
	v := m.reg.CurrentView()
	row := v.CursorRow() + 1

	col := fmt.Sprintf("%d", v.CursorCol()+1)
	if v.Wrap {
		col = "WRAP"
	}

	if m.reg.CurrentEntry().AtEnd() {
		pct := 100 * row / v.LineCount()
		return fmt.Sprintf(" (%d,%s) %d%% ", row, col, pct)
	}
	return fmt.Sprintf(" (%d,%s) ", row, col)
}
