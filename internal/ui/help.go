package ui

import "github.com/five82/skim/internal/source"

// helpName is the display name of the ephemeral help source.
const helpName = "<help>"

// helpFragments builds the help screen as styled text. Help is shown
// by pushing this through the regular registry Add, so it behaves like
// any other source until closed with q.
func helpFragments() []source.Fragment {
	type row struct{ keys, what string }

	section := func(frags []source.Fragment, title string, rows []row) []source.Fragment {
		frags = append(frags,
			source.Fragment{Style: "title", Text: title + "\n"},
			source.Fragment{Text: "\n"},
		)
		for _, r := range rows {
			frags = append(frags,
				source.Fragment{Style: "key", Text: "  " + pad(r.keys, 18)},
				source.Fragment{Text: r.what + "\n"},
			)
		}
		return append(frags, source.Fragment{Text: "\n"})
	}

	frags := []source.Fragment{
		{Style: "title", Text: "SUMMARY OF COMMANDS\n"},
		{Style: "comment", Text: "Press q to leave this screen.\n\n"},
	}
	frags = section(frags, "MOVING", []row{
		{"e j RET ↓", "Forward one line (N lines with a count)"},
		{"y k ↑", "Backward one line (N lines with a count)"},
		{"f SPACE C-v", "Forward one window"},
		{"b C-b", "Backward one window"},
		{"d C-d", "Forward one half-window"},
		{"u C-u", "Backward one half-window"},
		{"g <", "Go to first line"},
		{"G >", "Go to last line"},
		{"← →", "Scroll horizontally (unless wrapping)"},
		{"F", "Forward forever; like \"tail -f\""},
	})
	frags = section(frags, "SEARCHING", []row{
		{"/pattern", "Search forward for pattern"},
		{"n", "Repeat search"},
		{"N", "Repeat search in reverse direction"},
		{"ESC-u", "Toggle search highlighting"},
	})
	frags = section(frags, "JUMPING", []row{
		{"m<letter>", "Mark the current position with <letter>"},
		{"'<letter>", "Go to a previously marked position"},
		{"'^ '$", "Go to the beginning / end of the file"},
	})
	frags = section(frags, "CHANGING FILES", []row{
		{":e", "Examine a new file"},
		{":n", "Examine the next file"},
		{":p", "Examine the previous file"},
		{":d", "Remove the current file from the list of files"},
		{"=", "Print the name of the current file"},
	})
	frags = section(frags, "MISCELLANEOUS", []row{
		{"w", "Toggle line wrapping"},
		{"T", "Cycle color theme"},
		{"r R C-l", "Repaint the screen"},
		{"q", "Quit"},
	})
	return frags
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
