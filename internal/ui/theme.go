package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the pager chrome and content.
type Theme struct {
	Name string

	// Text colors
	Text   string
	Muted  string
	Accent string
	Danger string

	// Chrome
	StatusBg  string
	StatusFg  string
	PromptBg  string
	PromptFg  string
	MessageBg string
	MessageFg string
	LoadingBg string
	LoadingFg string
	ArgBg     string
	ArgFg     string

	// Search highlighting
	MatchBg        string
	MatchFg        string
	CurrentMatchBg string
	CurrentMatchFg string

	// Content style tags (help screen and styled sources)
	TagColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.StatusBg)).
			Foreground(lipgloss.Color(t.StatusFg)),

		StatusKey: lipgloss.NewStyle().
			Background(lipgloss.Color(t.StatusBg)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.PromptBg)).
			Foreground(lipgloss.Color(t.PromptFg)),

		Message: lipgloss.NewStyle().
			Background(lipgloss.Color(t.MessageBg)).
			Foreground(lipgloss.Color(t.MessageFg)).
			Bold(true),

		Loading: lipgloss.NewStyle().
			Background(lipgloss.Color(t.LoadingBg)).
			Foreground(lipgloss.Color(t.LoadingFg)).
			Bold(true),

		Arg: lipgloss.NewStyle().
			Background(lipgloss.Color(t.ArgBg)).
			Foreground(lipgloss.Color(t.ArgFg)),

		Match: lipgloss.NewStyle().
			Background(lipgloss.Color(t.MatchBg)).
			Foreground(lipgloss.Color(t.MatchFg)),

		CurrentMatch: lipgloss.NewStyle().
			Background(lipgloss.Color(t.CurrentMatchBg)).
			Foreground(lipgloss.Color(t.CurrentMatchFg)).
			Bold(true),
	}
}

// Styles holds resolved Lipgloss styles.
type Styles struct {
	Text         lipgloss.Style
	MutedText    lipgloss.Style
	StatusBar    lipgloss.Style
	StatusKey    lipgloss.Style
	Prompt       lipgloss.Style
	Message      lipgloss.Style
	Loading      lipgloss.Style
	Arg          lipgloss.Style
	Match        lipgloss.Style
	CurrentMatch lipgloss.Style
}

// Tag resolves a content style tag to a Lipgloss style. Unknown tags
// render as plain text.
func (t Theme) Tag(tag string) lipgloss.Style {
	if c, ok := t.TagColors[tag]; ok {
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		if tag == "title" || tag == "key" {
			s = s.Bold(true)
		}
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
}

var themes = map[string]Theme{
	"Dracula": draculaTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Dracula", "Slate"}

// GetTheme returns the named theme, falling back to the first theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[themeOrder[0]]
}

// NextTheme returns the theme name following current in cycle order.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com/contribute
	return Theme{
		Name: "Dracula",

		Text:   "#f8f8f2", // foreground
		Muted:  "#6272a4", // comment
		Accent: "#8be9fd", // cyan
		Danger: "#ff5555", // red

		StatusBg:  "#44475a", // current line
		StatusFg:  "#f8f8f2",
		PromptBg:  "#282a36", // background
		PromptFg:  "#50fa7b", // green
		MessageBg: "#ff5555",
		MessageFg: "#f8f8f2",
		LoadingBg: "#ffb86c", // orange
		LoadingFg: "#282a36",
		ArgBg:     "#bd93f9", // purple
		ArgFg:     "#282a36",

		MatchBg:        "#6272a4",
		MatchFg:        "#f8f8f2",
		CurrentMatchBg: "#f1fa8c", // yellow
		CurrentMatchFg: "#282a36",

		TagColors: map[string]string{
			"title":    "#bd93f9", // purple
			"key":      "#50fa7b", // green
			"comment":  "#6272a4",
			"standout": "#ffb86c",
		},
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Text:   "#f1f5f9", // slate-100
		Muted:  "#94a3b8", // slate-400
		Accent: "#38bdf8", // sky-400
		Danger: "#ef4444", // red-500

		StatusBg:  "#1e293b", // slate-800
		StatusFg:  "#f1f5f9",
		PromptBg:  "#0f172a", // slate-900
		PromptFg:  "#38bdf8",
		MessageBg: "#dc2626", // red-600
		MessageFg: "#f8fafc",
		LoadingBg: "#f59e0b", // amber-500
		LoadingFg: "#020617",
		ArgBg:     "#0284c7", // sky-600
		ArgFg:     "#f8fafc",

		MatchBg:        "#334155", // slate-700
		MatchFg:        "#f1f5f9",
		CurrentMatchBg: "#facc15", // yellow-400
		CurrentMatchFg: "#020617",

		TagColors: map[string]string{
			"title":    "#38bdf8",
			"key":      "#22c55e",
			"comment":  "#64748b",
			"standout": "#f59e0b",
		},
	}
}
