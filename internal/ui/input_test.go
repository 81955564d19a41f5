package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/skim/internal/pager"
	"github.com/five82/skim/internal/source"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, keyRune(r))
	}
	return m
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

// newTestModel builds a sized model whose sources are fully loaded, so
// no prefetch workers interfere with the assertions.
func newTestModel(t *testing.T, texts ...string) Model {
	t.Helper()
	reg := pager.NewRegistry()
	for i, txt := range texts {
		src := source.NewString(fmt.Sprintf("source-%d", i), txt)
		v := reg.Add(src)
		frags, err := src.ReadChunk()
		if err != nil {
			t.Fatal(err)
		}
		v.Append(frags)
	}
	m := New(Options{Registry: reg})
	return press(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
}

func manyLines(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestColonUnknownKeyRevertsWithNoCommand(t *testing.T) {
	m := newTestModel(t, "text\n")
	m = press(t, m, keyRune(':'))
	if m.mode != ModeColon {
		t.Fatalf("mode = %v after colon, want ModeColon", m.mode)
	}
	m = press(t, m, keyRune('x'))
	if m.mode != ModeNormal {
		t.Errorf("mode = %v after unmapped key, want ModeNormal", m.mode)
	}
	if m.message != "No command." {
		t.Errorf("message = %q, want %q", m.message, "No command.")
	}
}

func TestColonBackspaceLeavesColonMode(t *testing.T) {
	m := newTestModel(t, "text\n")
	m = press(t, m, keyRune(':'), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.message != "" {
		t.Errorf("message = %q, want empty", m.message)
	}
}

func TestColonFileSwitchingWrapsAround(t *testing.T) {
	m := newTestModel(t, "a\nb\nc\n", "x\ny\n")
	if m.reg.Index() != 1 {
		t.Fatalf("setup: Index() = %d, want 1", m.reg.Index())
	}

	m = press(t, m, keyRune(':'), keyRune('p'))
	if m.reg.Index() != 0 {
		t.Errorf("after :p Index() = %d, want 0", m.reg.Index())
	}
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal (colon cleared by focus switch)", m.mode)
	}

	m = press(t, m, keyRune(':'), keyRune('p'))
	if m.reg.Index() != 1 {
		t.Errorf("after second :p Index() = %d, want 1 (wrapped)", m.reg.Index())
	}

	m = press(t, m, keyRune(':'), keyRune('n'))
	if m.reg.Index() != 0 {
		t.Errorf("after :n Index() = %d, want 0 (wrapped)", m.reg.Index())
	}
}

func TestColonRemoveLastBufferRejected(t *testing.T) {
	m := newTestModel(t, "only\n")
	m = press(t, m, keyRune(':'), keyRune('d'))
	if m.reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.reg.Len())
	}
	if m.message != "Can't remove the last buffer." {
		t.Errorf("message = %q", m.message)
	}
}

func TestHelpIsEphemeralSource(t *testing.T) {
	m := newTestModel(t, "body\n")
	m = press(t, m, keyRune('h'))
	if !m.showingHelp {
		t.Fatal("showingHelp = false after h")
	}
	if m.reg.Len() != 2 || m.reg.Current().Name() != helpName {
		t.Fatalf("help not pushed as a source: len %d, current %q", m.reg.Len(), m.reg.Current().Name())
	}

	// Pressing h again must not stack another help screen.
	m = press(t, m, keyRune('h'))
	if m.reg.Len() != 2 {
		t.Errorf("Len() = %d after second h, want 2", m.reg.Len())
	}

	// q closes help instead of quitting.
	m = press(t, m, keyRune('q'))
	if m.showingHelp {
		t.Error("showingHelp = true after q")
	}
	if m.reg.Len() != 1 || m.reg.Current().Name() != "source-0" {
		t.Errorf("original source not restored: len %d, current %q", m.reg.Len(), m.reg.Current().Name())
	}
}

func TestQuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t, "body\n")
	next, cmd := m.Update(keyRune('q'))
	if _, ok := next.(Model); !ok {
		t.Fatalf("Update returned %T", next)
	}
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce tea.Quit")
	}
}

func TestRepeatCountMergesOnlyWithLineScroll(t *testing.T) {
	m := newTestModel(t, manyLines(100))

	m = press(t, m, keyRune('5'), keyRune('j'))
	if row := m.reg.CurrentView().CursorRow(); row != 5 {
		t.Errorf("after 5j: CursorRow() = %d, want 5", row)
	}

	// Page motions discard the count: a full window is 9 lines here.
	m = press(t, m, keyRune('3'), keyRune(' '))
	if row := m.reg.CurrentView().CursorRow(); row != 14 {
		t.Errorf("after 3<space>: CursorRow() = %d, want 14 (one window, count ignored)", row)
	}
	if m.arg != "" {
		t.Errorf("arg = %q after page motion, want consumed", m.arg)
	}

	m = press(t, m, keyRune('2'), keyRune('k'))
	if row := m.reg.CurrentView().CursorRow(); row != 12 {
		t.Errorf("after 2k: CursorRow() = %d, want 12", row)
	}
}

func TestDigitsAccumulate(t *testing.T) {
	m := newTestModel(t, manyLines(100))
	m = press(t, m, keyRune('1'), keyRune('2'))
	if m.arg != "12" {
		t.Fatalf("arg = %q, want %q", m.arg, "12")
	}
	m = press(t, m, keyRune('j'))
	if row := m.reg.CurrentView().CursorRow(); row != 12 {
		t.Errorf("after 12j: CursorRow() = %d, want 12", row)
	}
}

func TestMarkSetAndRecallThroughKeys(t *testing.T) {
	m := newTestModel(t, manyLines(50))

	m = press(t, m, keyRune('8'), keyRune('j'))
	wantCursor := m.reg.CurrentView().Cursor
	wantScroll := m.reg.CurrentView().Scroll

	m = press(t, m, keyRune('m'), keyRune('a'))
	m = press(t, m, keyRune('G'))
	if m.reg.CurrentView().Cursor == wantCursor {
		t.Fatal("setup: cursor did not move away from mark")
	}

	m = press(t, m, keyRune('\''), keyRune('a'))
	v := m.reg.CurrentView()
	if v.Cursor != wantCursor || v.Scroll != wantScroll {
		t.Errorf("after 'a: cursor/scroll = %d/%d, want %d/%d", v.Cursor, v.Scroll, wantCursor, wantScroll)
	}
}

func TestUnsetMarkRecallIsSilent(t *testing.T) {
	m := newTestModel(t, manyLines(50))
	m = press(t, m, keyRune('5'), keyRune('j'))
	before := m.reg.CurrentView().Cursor

	m = press(t, m, keyRune('\''), keyRune('z'))
	if m.reg.CurrentView().Cursor != before {
		t.Error("cursor moved by recalling an unset mark")
	}
	if m.message != "" {
		t.Errorf("message = %q, want silence", m.message)
	}
}

func TestReservedMarksJumpToEnds(t *testing.T) {
	m := newTestModel(t, manyLines(50))
	m = press(t, m, keyRune('\''), keyRune('$'))
	v := m.reg.CurrentView()
	if v.Cursor != v.Len() {
		t.Errorf("'$: cursor = %d, want %d", v.Cursor, v.Len())
	}
	m = press(t, m, keyRune('\''), keyRune('^'))
	v = m.reg.CurrentView()
	if v.Cursor != 0 || v.Scroll != 0 {
		t.Errorf("'^: cursor/scroll = %d/%d, want 0/0", v.Cursor, v.Scroll)
	}
}

func TestExamineOpensFileAndFocusesIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opened.txt")
	if err := os.WriteFile(path, []byte("fresh content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := newTestModel(t, "original\n")
	m = press(t, m, keyRune(':'), keyRune('e'))
	if m.mode != ModeExamine {
		t.Fatalf("mode = %v, want ModeExamine", m.mode)
	}

	m = typeString(t, m, path)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeNormal {
		t.Errorf("mode = %v after accept, want ModeNormal", m.mode)
	}
	if m.reg.Len() != 2 || m.reg.Current().Name() != path {
		t.Errorf("opened file not focused: len %d, current %q", m.reg.Len(), m.reg.Current().Name())
	}
}

func TestExamineCancelOpensNothing(t *testing.T) {
	m := newTestModel(t, "original\n")
	m = press(t, m, keyRune(':'), keyRune('e'))
	m = typeString(t, m, "/some/path")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (nothing opened)", m.reg.Len())
	}
}

func TestExamineMissingFileBecomesMessage(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	m := newTestModel(t, "original\n")
	m = press(t, m, keyRune(':'), keyRune('e'))
	m = typeString(t, m, missing)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (registry unchanged)", m.reg.Len())
	}
	if m.message == "" || !strings.Contains(m.message, missing) {
		t.Errorf("message = %q, want the underlying open error", m.message)
	}
}

func TestSearchJumpsToMatchingLine(t *testing.T) {
	text := "zero\none\ntwo\nthree\nneedle here\nfive\n"
	m := newTestModel(t, text)

	m = press(t, m, keyRune('/'))
	if m.mode != ModeSearch {
		t.Fatalf("mode = %v, want ModeSearch", m.mode)
	}
	m = typeString(t, m, "needle")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if row := m.reg.CurrentView().CursorRow(); row != 4 {
		t.Errorf("CursorRow() = %d, want 4", row)
	}
}

func TestSearchBackspaceOnEmptyQueryClearsSearch(t *testing.T) {
	m := newTestModel(t, "alpha\nbeta\n")
	m = press(t, m, keyRune('/'))
	m = typeString(t, m, "alpha")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searchRegex == nil {
		t.Fatal("search not active after accepted query")
	}

	m = press(t, m, keyRune('/'), tea.KeyMsg{Type: tea.KeyBackspace})
	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.searchRegex != nil {
		t.Error("search still active after backspace on empty query")
	}
}

func TestToggleHighlightIsGlobal(t *testing.T) {
	m := newTestModel(t, "text\n")
	if !m.highlightSearch {
		t.Fatal("highlight should default on")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}, Alt: true})
	if m.highlightSearch {
		t.Error("highlight still on after alt+u")
	}
}

func TestWrapToggleDisablesHorizontalScroll(t *testing.T) {
	m := newTestModel(t, strings.Repeat("x", 500)+"\n")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.reg.CurrentView().HScroll == 0 {
		t.Fatal("right arrow did not scroll horizontally")
	}

	m = press(t, m, keyRune('w'))
	v := m.reg.CurrentView()
	if !v.Wrap {
		t.Fatal("w did not enable wrapping")
	}
	if v.HScroll != 0 {
		t.Errorf("HScroll = %d after enabling wrap, want 0", v.HScroll)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.reg.CurrentView().HScroll != 0 {
		t.Error("horizontal scroll moved while wrapping")
	}
}

func TestPrintNameShowsCurrentSource(t *testing.T) {
	m := newTestModel(t, "text\n")
	m = press(t, m, keyRune('='))
	if m.message != "source-0" {
		t.Errorf("message = %q, want %q", m.message, "source-0")
	}
}

func TestMessageClearedByNextKeypress(t *testing.T) {
	m := newTestModel(t, "text\n")
	m = press(t, m, keyRune('='))
	if m.message == "" {
		t.Fatal("setup: no message to clear")
	}
	m = press(t, m, keyRune('j'))
	if m.message != "" {
		t.Errorf("message = %q after keypress, want cleared", m.message)
	}
}

func TestCycleThemePersistsToDefaultPrefsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, "text\n")
	if m.theme.Name != "Dracula" {
		t.Fatalf("initial theme = %q, want Dracula", m.theme.Name)
	}

	m = press(t, m, keyRune('T'))
	if m.theme.Name != "Slate" {
		t.Errorf("theme = %q after T, want Slate", m.theme.Name)
	}

	saved, err := os.ReadFile(filepath.Join(home, ".config", "skim", "prefs.toml"))
	if err != nil {
		t.Fatalf("prefs not written to the default path: %v", err)
	}
	if !strings.Contains(string(saved), "Slate") {
		t.Errorf("saved prefs %q do not record the new theme", saved)
	}
}

func TestFollowPinsCursorToEnd(t *testing.T) {
	m := newTestModel(t, manyLines(30))
	m = press(t, m, keyRune('F'))
	if !m.follow {
		t.Fatal("F did not enable follow mode")
	}
	v := m.reg.CurrentView()
	if v.Cursor != v.Len() {
		t.Errorf("cursor = %d, want end %d", v.Cursor, v.Len())
	}
}
