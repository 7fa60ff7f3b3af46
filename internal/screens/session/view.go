package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"wortlaut/internal/drill"
	"wortlaut/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.empty {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No items available for this mode.\n\n  Press any key to go back.")
	}
	if s.engine == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading deck...")
	}

	it := s.engine.Current()
	if it == nil {
		return ""
	}

	var b strings.Builder

	// The remaining count lives in the header, via screen.ProgressProvider.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.deps.Mode.Title())))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt.
	prompt := s.presenter.PromptLine(it, s.engine.GlossShown())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n")

	if len(it.ClosedSet) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(strings.Join(it.ClosedSet, " / ") + "?"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View()))
	b.WriteString("\n\n")

	if s.feedback != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.feedback))
		b.WriteString("\n")
	}

	if s.usage != "" {
		usage := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(s.usage)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, usage))
		b.WriteString("\n")
	}

	if s.audioWarn != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("audio unavailable: " + s.audioWarn))
		b.WriteString("\n")
	}

	return b.String()
}

// renderVerdict formats the result of an advancing turn. Article answers are
// confirmed in the article's mnemonic color.
func renderVerdict(turn drill.Turn) string {
	it := turn.Item
	answer := fullAnswer(it)

	if turn.Action == drill.ActionCorrect {
		return theme.Correct.Render("✓ ") + answer
	}
	return theme.Incorrect.Render("✗ ") + answer
}

// fullAnswer shows the complete correct form for an item.
func fullAnswer(it *drill.Item) string {
	if it.Category != "" {
		return theme.ArticleStyle(it.Category).Render(it.Category) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(" "+it.PromptText)
	}
	if len(it.AcceptedAnswers) > 0 {
		return lipgloss.NewStyle().Foreground(theme.Text).Render(it.AcceptedAnswers[0])
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(it.PromptText)
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
