package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wortlaut/internal/drill"
	"wortlaut/internal/router"
	"wortlaut/internal/screen"
	"wortlaut/internal/ui/layout"
	"wortlaut/internal/ui/theme"
)

// SummaryScreen displays the closing report of a mastered session.
type SummaryScreen struct {
	summary *drill.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *drill.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Quit"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, tea.Quit
		case "esc":
			// No-op when the session was started straight from the CLI.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Deck mastered!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Words: %d        Prompts: %d", sum.DeckSize, sum.Presented)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if len(sum.Missed) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Perfect round — nothing missed."))
		b.WriteString("\n")
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Missed at least once")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, it := range sum.Missed {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderMissedLine(it)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderMissedLine shows a missed item with its full answer. Article items
// carry the definite article in its mnemonic color.
func renderMissedLine(it *drill.Item) string {
	if it.Category != "" {
		return theme.ArticleStyle(it.Category).Render(it.Category) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(" "+it.PromptText)
	}
	answer := it.PromptText
	if len(it.AcceptedAnswers) > 0 {
		answer = fmt.Sprintf("%s — %s", it.PromptText, it.AcceptedAnswers[0])
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(answer)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
