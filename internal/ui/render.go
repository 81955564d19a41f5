package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/skim/internal/source"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderBottomBar())
	return b.String()
}

// renderBody renders exactly bodyHeight screen lines of the active
// view, honoring wrap mode, horizontal scroll, and search highlights.
func (m Model) renderBody() string {
	v := m.reg.CurrentView()
	height := m.bodyHeight()
	if height <= 0 {
		return ""
	}

	rows := make([]string, 0, height)
	for i := v.Scroll; len(rows) < height && i < v.LineCount(); i++ {
		if v.Wrap {
			for _, seg := range m.wrapLine(i) {
				if len(rows) == height {
					break
				}
				rows = append(rows, seg)
			}
			continue
		}
		rows = append(rows, m.renderLine(i, v.HScroll, m.width))
	}
	for len(rows) < height {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// renderLine renders one logical line clipped to a column window.
func (m Model) renderLine(i, from, width int) string {
	v := m.reg.CurrentView()
	if m.highlightSearch && m.searchRegex != nil {
		if plain := v.Line(i); m.searchRegex.MatchString(plain) {
			return m.renderMatchedLine(plain, from, width, i == v.CursorRow())
		}
	}
	return renderFragments(v.LineFragments(i), from, width, m.theme)
}

// wrapLine soft-wraps one logical line into width-sized segments.
func (m Model) wrapLine(i int) []string {
	if m.width <= 0 {
		return nil
	}
	var segs []string
	for from := 0; ; from += m.width {
		seg := m.renderLine(i, from, m.width)
		if seg == "" && from > 0 {
			break
		}
		segs = append(segs, seg)
	}
	return segs
}

// renderMatchedLine paints search matches over a line, dropping the
// source's own styling for that line. The match under the cursor uses
// the stronger highlight.
func (m Model) renderMatchedLine(plain string, from, width int, onCursorLine bool) string {
	styles := m.theme.Styles()
	match := styles.Match
	if onCursorLine {
		match = styles.CurrentMatch
	}

	var frags []source.Fragment
	last := 0
	for _, loc := range m.searchRegex.FindAllStringIndex(plain, -1) {
		if loc[0] > last {
			frags = append(frags, source.Fragment{Text: plain[last:loc[0]]})
		}
		frags = append(frags, source.Fragment{Style: "match", Text: plain[loc[0]:loc[1]]})
		last = loc[1]
	}
	if last < len(plain) {
		frags = append(frags, source.Fragment{Text: plain[last:]})
	}

	return clipFragments(frags, from, width, func(tag string) func(...string) string {
		if tag == "match" {
			return match.Render
		}
		return m.theme.Styles().Text.Render
	})
}

// renderFragments renders styled runs clipped to a column window.
func renderFragments(frags []source.Fragment, from, width int, theme Theme) string {
	return clipFragments(frags, from, width, func(tag string) func(...string) string {
		return theme.Tag(tag).Render
	})
}

// clipFragments walks the runs of a line, skipping the first from
// display columns and emitting at most width columns, styling each
// kept run.
func clipFragments(frags []source.Fragment, from, width int, style func(tag string) func(...string) string) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	limit := from + width
	for _, f := range frags {
		if col >= limit {
			break
		}
		var run strings.Builder
		for _, r := range f.Text {
			w := runewidth.RuneWidth(r)
			if col+w > limit {
				col = limit
				break
			}
			if col >= from {
				run.WriteRune(r)
			}
			col += w
		}
		if run.Len() > 0 {
			b.WriteString(style(f.Style)(run.String()))
		}
	}
	return b.String()
}
