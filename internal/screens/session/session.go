package session

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"wortlaut/internal/config"
	"wortlaut/internal/deck"
	"wortlaut/internal/drill"
	"wortlaut/internal/router"
	"wortlaut/internal/screen"
	summaryscreen "wortlaut/internal/screens/summary"
	"wortlaut/internal/ui/components"
	"wortlaut/internal/ui/layout"
)

// Deps carries the collaborators one drill session needs.
type Deps struct {
	Mode     deck.Mode
	Config   config.Config
	Resolver drill.AudioResolver

	// Build loads the deck when Items is nil. Separated out so tests and
	// the CLI (which preloads fatally) can skip the lazy path.
	Build func() ([]*drill.Item, error)

	// Items, when non-nil, is the preloaded deck.
	Items []*drill.Item

	// Standalone marks a session launched straight from the CLI, where
	// this screen is the root of the stack and leaving it means exiting
	// the program rather than returning to a menu.
	Standalone bool
}

// SessionScreen runs one drill session for a single mode.
type SessionScreen struct {
	deps      Deps
	engine    *drill.Engine
	presenter *drill.Presenter
	input     components.TextInput

	feedback  string // verdict of the previous turn
	usage     string // reminder after out-of-vocabulary input
	audioWarn string
	errMsg    string
	empty     bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.ProgressProvider = (*SessionScreen)(nil)

// New creates a session screen. When deps.Items is set the engine starts
// immediately; otherwise the deck is loaded on Init.
func New(deps Deps) *SessionScreen {
	s := &SessionScreen{
		deps:      deps,
		presenter: drill.NewPresenter(deps.Resolver),
		input:     components.NewTextInput("der, die, das, a word...", 40),
	}
	if deps.Items != nil {
		s.startEngine(deps.Items)
	}
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	if s.engine == nil && !s.empty && s.errMsg == "" {
		cmds = append(cmds, s.loadDeck())
	} else if it := s.currentItem(); it != nil {
		cmds = append(cmds, s.presentCmd(it))
	}
	return tea.Batch(cmds...)
}

func (s *SessionScreen) Title() string {
	return s.deps.Mode.Title()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "blank", Description: "Replay"},
		{Key: "en", Description: "Translate"},
		{Key: "quit", Description: "End session"},
	}
}

// loadDeck builds the deck for the mode in a command, so a slow CSV read or
// cache listing never blocks the UI loop.
func (s *SessionScreen) loadDeck() tea.Cmd {
	build := s.deps.Build
	return func() tea.Msg {
		if build == nil {
			return deckReadyMsg{}
		}
		items, err := build()
		return deckReadyMsg{Items: items, Err: err}
	}
}

// startEngine shuffles and caps the deck, then draws the first item.
func (s *SessionScreen) startEngine(items []*drill.Item) {
	q := drill.NewQueue(items, s.deps.Config.RNG())
	q.Shuffle()
	if s.deps.Mode == deck.ModeArticles {
		q.Truncate(s.deps.Config.DeckSize)
	}
	s.engine = drill.NewEngine(q)
	if s.engine.Start() == nil {
		s.empty = true
	}
}

// Remaining reports how many items are still unmastered, for the header.
func (s *SessionScreen) Remaining() int {
	if s.engine == nil {
		return 0
	}
	return s.engine.Remaining()
}

func (s *SessionScreen) currentItem() *drill.Item {
	if s.engine == nil {
		return nil
	}
	return s.engine.Current()
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case deckReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.startEngine(msg.Items)
		if it := s.currentItem(); it != nil {
			return s, s.presentCmd(it)
		}
		return s, nil

	case audioPlayedMsg:
		if msg.Err != nil {
			s.audioWarn = msg.Err.Error()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Fatal load error or empty deck: any key leaves the session. With no
	// menu underneath there is nothing to pop back to, so quit instead.
	if s.errMsg != "" || s.empty {
		if s.deps.Standalone {
			return s, tea.Quit
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.engine == nil || s.engine.State() != drill.StateAwaitingAnswer {
		return s, nil
	}

	if key == "enter" {
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit hands the typed line to the engine and maps the turn to UI effects.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	raw := s.input.Value()
	turn := s.engine.Submit(raw)
	s.input.Reset()
	s.audioWarn = ""

	switch turn.Action {
	case drill.ActionReplay:
		return s, s.presentCmd(turn.Item)

	case drill.ActionGloss:
		s.usage = ""
		return s, nil

	case drill.ActionUsage:
		s.usage = drill.UsageReminder(turn.Item)
		return s, nil

	case drill.ActionQuit:
		// Explicit quit: no summary is reported.
		return s, tea.Quit
	}

	// The turn advanced: show the verdict, confirm the answer aloud, then
	// present what comes next.
	s.usage = ""
	s.feedback = renderVerdict(turn)

	reveal := s.revealCmd(turn.Item)
	if turn.Finished {
		summary := s.engine.Summary()
		return s, tea.Sequence(reveal, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summaryscreen.New(summary)}
		})
	}
	return s, tea.Sequence(reveal, s.presentCmd(turn.Next))
}

// presentCmd plays the prompt audio for an item.
func (s *SessionScreen) presentCmd(it *drill.Item) tea.Cmd {
	p := s.presenter
	return func() tea.Msg {
		return audioPlayedMsg{Err: p.Present(context.Background(), it)}
	}
}

// revealCmd plays the corrective audio confirming the full answer.
func (s *SessionScreen) revealCmd(it *drill.Item) tea.Cmd {
	p := s.presenter
	return func() tea.Msg {
		return audioPlayedMsg{Err: p.Reveal(context.Background(), it)}
	}
}
