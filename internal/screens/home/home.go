package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wortlaut/internal/deck"
	"wortlaut/internal/router"
	"wortlaut/internal/screen"
	"wortlaut/internal/ui/components"
	"wortlaut/internal/ui/theme"
)

// SessionFactory builds the drill screen for a chosen mode. Injected so the
// menu does not carry the session wiring itself.
type SessionFactory func(mode deck.Mode) screen.Screen

// HomeScreen is the mode selection menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(newSession SessionFactory) *HomeScreen {
	items := make([]components.MenuItem, 0, len(deck.Modes)+1)
	for _, mode := range deck.Modes {
		mode := mode
		items = append(items, components.MenuItem{
			Label: mode.Title(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: newSession(mode)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Wortlaut"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("German vocabulary, drilled until it sticks"))
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
