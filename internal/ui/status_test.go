package ui

import (
	"strings"
	"testing"

	"github.com/five82/skim/internal/pager"
)

func TestCursorPositionShowsPercentOnceExhausted(t *testing.T) {
	m := newTestModel(t, "a\nb\nc\nd\n")

	got := m.cursorPosition()
	if got != " (1,1) 20% " {
		t.Errorf("cursorPosition() = %q, want %q", got, " (1,1) 20% ")
	}

	m = press(t, m, keyRune('G'))
	got = m.cursorPosition()
	if !strings.Contains(got, "100%") {
		t.Errorf("cursorPosition() at bottom = %q, want 100%%", got)
	}
}

func TestCursorPositionWrapReplacesColumn(t *testing.T) {
	m := newTestModel(t, "hello\n")
	m = press(t, m, keyRune('w'))
	if got := m.cursorPosition(); !strings.Contains(got, "WRAP") {
		t.Errorf("cursorPosition() = %q, want WRAP column", got)
	}
}

func TestBottomBarShowsPendingRepeatCount(t *testing.T) {
	m := newTestModel(t, manyLines(20))
	m = press(t, m, keyRune('4'), keyRune('2'))
	bar := m.renderBottomBar()
	if !strings.Contains(bar, " 42 ") {
		t.Errorf("bottom bar %q does not show the pending count", bar)
	}
}

func TestBottomBarColonIndicator(t *testing.T) {
	m := newTestModel(t, "text\n")
	m = press(t, m, keyRune(':'))
	if bar := m.renderBottomBar(); !strings.Contains(bar, ":") {
		t.Errorf("bottom bar %q missing colon indicator", bar)
	}
}

func TestBottomBarMessageWinsOverStatus(t *testing.T) {
	m := newTestModel(t, "text\n")
	m = press(t, m, keyRune('='))
	if bar := m.renderBottomBar(); !strings.Contains(bar, "source-0") {
		t.Errorf("bottom bar %q does not show the message", bar)
	}
}

func TestViewRendersExactRowCount(t *testing.T) {
	m := newTestModel(t, "one\ntwo\n")
	out := m.View()
	if got := strings.Count(out, "\n") + 1; got != 10 {
		t.Errorf("View() renders %d rows, want 10", got)
	}
}

func TestViewBeforeFirstResizeIsPlaceholder(t *testing.T) {
	m := New(Options{Registry: pager.NewRegistry()})
	if out := m.View(); out != "Loading..." {
		t.Errorf("View() = %q before the first resize", out)
	}
}
