// Package pager implements the streaming pager engine: per-source view
// state, the source registry, and the prefetcher that pulls content
// ahead of the viewport. The package is independent of any particular
// terminal toolkit; all mutation is expected to happen on one logical
// main loop.
package pager

import (
	"strings"

	"github.com/five82/skim/internal/source"
)

// Reserved mark names.
const (
	MarkStart = '^' // start of file
	MarkEnd   = '$' // end of file
)

// Mark is a recallable cursor/scroll pair within a source.
type Mark struct {
	Cursor int
	Scroll int
}

// View holds the mutable per-source display state: the accumulated
// text, its line index, cursor and scroll positions, marks, and the
// loading flag used to keep at most one read in flight.
type View struct {
	text      []rune
	lines     []int               // rune offset of each line start; always at least one entry
	lineFrags [][]source.Fragment // styled runs per line, newlines stripped

	Cursor  int // rune offset into text
	Scroll  int // first visible line
	HScroll int // first visible column, ignored while wrapping
	Wrap    bool

	// Loading is true while a prefetch task is outstanding for this
	// view. While set, no second read may be started.
	Loading bool

	marks map[rune]Mark
}

// NewView returns an empty view.
func NewView() *View {
	return &View{
		lines:     []int{0},
		lineFrags: make([][]source.Fragment, 1),
		marks:     make(map[rune]Mark),
	}
}

// Append merges freshly read fragments into the accumulated text and
// extends the line index. Returns the number of newline boundaries
// added. Must only be called from the main loop.
func (v *View) Append(frags []source.Fragment) int {
	newlines := 0
	for _, f := range frags {
		rest := f.Text
		for rest != "" {
			i := strings.IndexByte(rest, '\n')
			var run string
			if i < 0 {
				run, rest = rest, ""
			} else {
				run, rest = rest[:i], rest[i+1:]
			}
			if run != "" {
				last := len(v.lineFrags) - 1
				v.lineFrags[last] = append(v.lineFrags[last], source.Fragment{Style: f.Style, Text: run})
				v.text = append(v.text, []rune(run)...)
			}
			if i >= 0 {
				v.text = append(v.text, '\n')
				v.lines = append(v.lines, len(v.text))
				v.lineFrags = append(v.lineFrags, nil)
				newlines++
			}
		}
	}
	return newlines
}

// Len returns the accumulated text length in runes.
func (v *View) Len() int { return len(v.text) }

// Text returns the accumulated text.
func (v *View) Text() string { return string(v.text) }

// LineCount returns the number of lines, counting a trailing
// unterminated line.
func (v *View) LineCount() int { return len(v.lines) }

// LineStart returns the rune offset at which line i begins.
func (v *View) LineStart(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(v.lines) {
		return len(v.text)
	}
	return v.lines[i]
}

// Line returns the text of line i without its trailing newline.
func (v *View) Line(i int) string {
	if i < 0 || i >= len(v.lines) {
		return ""
	}
	start := v.lines[i]
	end := len(v.text)
	if i+1 < len(v.lines) {
		end = v.lines[i+1] - 1 // drop the newline
	}
	if start > end {
		start = end
	}
	return string(v.text[start:end])
}

// LineFragments returns the styled runs making up line i, without the
// trailing newline. The slice is owned by the view; callers must not
// modify it.
func (v *View) LineFragments(i int) []source.Fragment {
	if i < 0 || i >= len(v.lineFrags) {
		return nil
	}
	return v.lineFrags[i]
}

// CursorRow returns the line the cursor is on.
func (v *View) CursorRow() int {
	// Binary search over line starts.
	lo, hi := 0, len(v.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if v.lines[mid] <= v.Cursor {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// CursorCol returns the cursor's column within its line.
func (v *View) CursorCol() int {
	return v.Cursor - v.lines[v.CursorRow()]
}

// MoveCursorLines moves the cursor delta lines down (negative is up),
// clamping to the available content and snapping to line starts.
func (v *View) MoveCursorLines(delta int) {
	v.MoveCursorToLine(v.CursorRow() + delta)
}

// MoveCursorToLine places the cursor at the start of the given line,
// clamped to the valid range.
func (v *View) MoveCursorToLine(row int) {
	if row < 0 {
		row = 0
	}
	if last := len(v.lines) - 1; row > last {
		row = last
	}
	v.Cursor = v.lines[row]
}

// MoveCursorToEnd pins the cursor to the end of the accumulated text,
// as follow mode requires after every delivery.
func (v *View) MoveCursorToEnd() {
	v.Cursor = len(v.text)
}

// SetMark records the current cursor and scroll under name.
func (v *View) SetMark(name rune) {
	v.marks[name] = Mark{Cursor: v.Cursor, Scroll: v.Scroll}
}

// GotoMark restores a previously stored mark. The reserved marks '^'
// and '$' jump to the start and end of the text. Returns false when
// the mark is unset; the caller is expected to ignore that silently.
func (v *View) GotoMark(name rune) bool {
	switch name {
	case MarkStart:
		v.Cursor = 0
		v.Scroll = 0
		return true
	case MarkEnd:
		v.MoveCursorToEnd()
		return true
	}
	m, ok := v.marks[name]
	if !ok {
		return false
	}
	v.Cursor = m.Cursor
	v.Scroll = m.Scroll
	v.clamp()
	return true
}

// ScrollHorizontal shifts the horizontal offset, a no-op while line
// wrapping is on.
func (v *View) ScrollHorizontal(delta int) {
	if v.Wrap {
		return
	}
	v.HScroll += delta
	if v.HScroll < 0 {
		v.HScroll = 0
	}
}

// SyncScroll adjusts the vertical scroll so the cursor row is inside a
// viewport of the given height.
func (v *View) SyncScroll(height int) {
	if height <= 0 {
		return
	}
	row := v.CursorRow()
	if row < v.Scroll {
		v.Scroll = row
	}
	if row >= v.Scroll+height {
		v.Scroll = row - height + 1
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
}

func (v *View) clamp() {
	if v.Cursor > len(v.text) {
		v.Cursor = len(v.text)
	}
	if v.Cursor < 0 {
		v.Cursor = 0
	}
	if last := len(v.lines) - 1; v.Scroll > last {
		v.Scroll = last
	}
	if v.Scroll < 0 {
		v.Scroll = 0
	}
}
