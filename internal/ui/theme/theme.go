package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — calm, high contrast for long drill sessions
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Article colors follow the common der/die/das mnemonic.
var (
	Masculine = lipgloss.Color("#3B82F6") // der — blue
	Feminine  = lipgloss.Color("#F43F5E") // die — rose
	Neuter    = lipgloss.Color("#22C55E") // das — green
)

// ArticleColor returns the mnemonic color for a definite article,
// falling back to the plain text color for anything else.
func ArticleColor(article string) color.Color {
	switch article {
	case "der":
		return Masculine
	case "die":
		return Feminine
	case "das":
		return Neuter
	}
	return Text
}

// ArticleStyle renders text in the article's mnemonic color.
func ArticleStyle(article string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ArticleColor(article)).Bold(true)
}

// Verdict styles
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
