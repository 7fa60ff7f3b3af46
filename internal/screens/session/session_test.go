package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"wortlaut/internal/config"
	"wortlaut/internal/deck"
	"wortlaut/internal/drill"
	"wortlaut/internal/router"
	"wortlaut/internal/screen"
)

// fakeResolver records every audio id it is asked to play.
type fakeResolver struct {
	played []string
	err    error
}

func (f *fakeResolver) ResolveAndPlay(_ context.Context, id string) error {
	f.played = append(f.played, id)
	return f.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func articleItem(t *testing.T, noun, article string) *drill.Item {
	t.Helper()
	it, err := drill.New(noun, "nouns/"+noun+".mp3", []string{article})
	if err != nil {
		t.Fatal(err)
	}
	it.Category = article
	it.CorrectiveAudioID = "nouns/" + article + " " + noun + ".mp3"
	it.ClosedSet = drill.Articles
	return it
}

func testScreen(t *testing.T, items []*drill.Item) (*SessionScreen, *fakeResolver) {
	t.Helper()
	resolver := &fakeResolver{}
	s := New(Deps{
		Mode:     deck.ModeArticles,
		Config:   config.Config{Seed: 1},
		Resolver: resolver,
		Items:    items,
	})
	return s, resolver
}

// submitLine types a word and presses Enter, returning the resulting command.
func submitLine(t *testing.T, s *SessionScreen, word string) (*SessionScreen, tea.Cmd) {
	t.Helper()
	var scr interface{} = s
	for _, r := range word {
		next, _ := scr.(*SessionScreen).Update(keyPress(r))
		scr = next
	}
	next, cmd := scr.(*SessionScreen).Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return next.(*SessionScreen), cmd
}

func TestSession_EmptyDeck(t *testing.T) {
	s, _ := testScreen(t, []*drill.Item{})
	if !s.empty {
		t.Fatal("expected empty-deck state")
	}
	if !strings.Contains(s.View(80, 24), "No items available") {
		t.Error("empty deck should be reported in the view")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("any key should navigate back from an empty deck")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("leaving an empty deck under a menu should pop back to it")
	}
}

func TestSession_StandaloneEmptyDeckQuits(t *testing.T) {
	// Launched straight from the CLI there is no menu underneath, so a pop
	// would be a no-op and the user would be stuck.
	s := New(Deps{
		Mode:       deck.ModeArticles,
		Config:     config.Config{Seed: 1},
		Resolver:   &fakeResolver{},
		Items:      []*drill.Item{},
		Standalone: true,
	})
	if !s.empty {
		t.Fatal("expected empty-deck state")
	}

	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("any key should leave the empty session")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("a root session with an empty deck should quit the program")
	}
}

func TestSession_ReportsRemaining(t *testing.T) {
	items := []*drill.Item{
		articleItem(t, "Apfel", "der"),
		articleItem(t, "Ente", "die"),
	}
	s, _ := testScreen(t, items)

	var p screen.ProgressProvider = s
	if p.Remaining() != 2 {
		t.Fatalf("Remaining() = %d, want 2", p.Remaining())
	}

	current := s.engine.Current()
	s, _ = submitLine(t, s, current.Category)
	if s.Remaining() != 1 {
		t.Errorf("Remaining() = %d after a correct answer, want 1", s.Remaining())
	}

	empty, _ := testScreen(t, []*drill.Item{})
	if empty.Remaining() != 0 {
		t.Errorf("Remaining() = %d with an empty deck, want 0", empty.Remaining())
	}
}

func TestSession_CorrectAnswerAdvances(t *testing.T) {
	items := []*drill.Item{
		articleItem(t, "Apfel", "der"),
		articleItem(t, "Ente", "die"),
	}
	s, _ := testScreen(t, items)

	if s.engine.Remaining() != 2 {
		t.Fatalf("remaining = %d, want 2", s.engine.Remaining())
	}

	current := s.engine.Current()
	s, cmd := submitLine(t, s, current.Category)
	if cmd == nil {
		t.Error("advancing should schedule audio commands")
	}
	if !strings.Contains(s.feedback, "✓") {
		t.Errorf("feedback = %q, want a check mark", s.feedback)
	}
	if s.engine.Remaining() != 1 {
		t.Errorf("remaining = %d, want 1", s.engine.Remaining())
	}
}

func TestSession_WrongAnswerRequeues(t *testing.T) {
	s, _ := testScreen(t, []*drill.Item{articleItem(t, "Apfel", "der")})

	s, _ = submitLine(t, s, "die")
	if !strings.Contains(s.feedback, "✗") {
		t.Errorf("feedback = %q, want a cross", s.feedback)
	}
	if s.engine.State() == drill.StateFinished {
		t.Error("a missed item must return to the queue, not end the session")
	}
	if s.engine.Remaining() != 1 {
		t.Errorf("remaining = %d, want 1", s.engine.Remaining())
	}
}

func TestSession_FinishAfterLastItem(t *testing.T) {
	s, _ := testScreen(t, []*drill.Item{articleItem(t, "Apfel", "der")})

	s, cmd := submitLine(t, s, "der")
	if s.engine.State() != drill.StateFinished {
		t.Error("answering the only item should finish the session")
	}
	if cmd == nil {
		t.Error("finishing should schedule the reveal and the summary handover")
	}
}

func TestSession_QuitCommand(t *testing.T) {
	s, _ := testScreen(t, []*drill.Item{articleItem(t, "Apfel", "der")})

	_, cmd := submitLine(t, s, "quit")
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("typed quit should end the program")
	}
}

func TestSession_UsageReminderDoesNotConsumeTurn(t *testing.T) {
	s, _ := testScreen(t, []*drill.Item{articleItem(t, "Apfel", "der")})
	before := s.engine.Current()

	s, _ = submitLine(t, s, "dunno")
	if s.usage == "" {
		t.Error("out-of-vocabulary input should show the usage reminder")
	}
	if s.engine.Current() != before {
		t.Error("the item in hand must not change")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "quit") {
		t.Error("the reminder should list the session commands")
	}
}

func TestSession_ReplayPlaysCurrentAudio(t *testing.T) {
	s, resolver := testScreen(t, []*drill.Item{articleItem(t, "Apfel", "der")})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // blank line
	if cmd == nil {
		t.Fatal("expected a replay command")
	}
	cmd()
	if len(resolver.played) != 1 || resolver.played[0] != "nouns/Apfel.mp3" {
		t.Errorf("played = %v, want the prompt audio", resolver.played)
	}
}

func TestSession_DeckLoadErrorShown(t *testing.T) {
	s, _ := testScreen(t, nil)

	next, _ := s.Update(deckReadyMsg{Err: errors.New("nouns.csv: no such file")})
	s = next.(*SessionScreen)
	if !strings.Contains(s.View(80, 24), "nouns.csv") {
		t.Error("load errors should be shown in the view")
	}

	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Error("any key should navigate back after a load error")
	}
}

func TestSession_AudioFailureIsRecoverable(t *testing.T) {
	s, _ := testScreen(t, []*drill.Item{articleItem(t, "Apfel", "der")})

	next, _ := s.Update(audioPlayedMsg{Err: errors.New("speaker init failed")})
	s = next.(*SessionScreen)
	if !strings.Contains(s.View(80, 24), "audio unavailable") {
		t.Error("a playback failure should surface as a warning, not end the session")
	}
	if s.engine.State() != drill.StateAwaitingAnswer {
		t.Error("the session must keep running after an audio failure")
	}
}
