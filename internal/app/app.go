package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wortlaut/internal/audio"
	"wortlaut/internal/config"
	"wortlaut/internal/deck"
	"wortlaut/internal/drill"
	"wortlaut/internal/router"
	"wortlaut/internal/screen"
	"wortlaut/internal/screens/home"
	sessionscreen "wortlaut/internal/screens/session"
	"wortlaut/internal/ui/layout"
)

// Options selects what the program starts into.
type Options struct {
	Config config.Config

	// Mode, when non-empty, starts directly in a drill session for that
	// mode instead of the menu.
	Mode deck.Mode

	// Items preloads the deck for Mode. The CLI loads decks before the UI
	// starts so file errors abort the run with a plain message.
	Items []*drill.Item
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the audio pipeline and the initial screen.
func newAppModel(opts Options) (AppModel, error) {
	cfg := opts.Config

	resolver, sounds, err := buildAudio(cfg)
	if err != nil {
		return AppModel{}, err
	}

	newSession := func(mode deck.Mode, items []*drill.Item, standalone bool) screen.Screen {
		return sessionscreen.New(sessionscreen.Deps{
			Mode:       mode,
			Config:     cfg,
			Resolver:   resolver,
			Items:      items,
			Standalone: standalone,
			Build: func() ([]*drill.Item, error) {
				return deck.Build(mode, deck.BuildOptions{
					DeckDir:      cfg.DeckDir,
					PluralChance: cfg.PluralChance,
					RNG:          cfg.RNG(),
					Sounds:       sounds,
				})
			},
		})
	}

	var initial screen.Screen
	if opts.Mode != "" {
		initial = newSession(opts.Mode, opts.Items, true)
	} else {
		initial = home.New(func(mode deck.Mode) screen.Screen {
			return newSession(mode, nil, false)
		})
	}

	return AppModel{router: router.New(initial)}, nil
}

// buildAudio assembles the cache-fetch-play pipeline. With audio disabled
// the session runs silently, but cached recordings are still listed so the
// listen-and-type decks keep working.
func buildAudio(cfg config.Config) (drill.AudioResolver, audio.Lister, error) {
	store, err := audio.NewFileStore(cfg.CacheDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open audio cache: %w", err)
	}
	if !cfg.Audio {
		return audio.NopResolver{}, store, nil
	}
	provider := audio.NewVerbformen(cfg.RemoteBaseURL)
	player := audio.NewSpeakerPlayer(cfg.MinPlay)
	return audio.NewResolver(store, provider, player), store, nil
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	remaining := 0
	if active != nil {
		title = active.Title()
		if pp, ok := active.(screen.ProgressProvider); ok {
			remaining = pp.Remaining()
		}
	}

	header := layout.RenderHeader(title, remaining, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
