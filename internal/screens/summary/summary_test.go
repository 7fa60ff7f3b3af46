package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"wortlaut/internal/drill"
)

func testSummary(t *testing.T) *drill.Summary {
	t.Helper()
	apfel, err := drill.New("Apfel", "nouns/Apfel.mp3", []string{"der"})
	if err != nil {
		t.Fatal(err)
	}
	apfel.Category = "der"
	ente, err := drill.New("Ente", "nouns/Ente.mp3", []string{"Enten"})
	if err != nil {
		t.Fatal(err)
	}
	return &drill.Summary{
		Duration:  3 * time.Minute,
		DeckSize:  10,
		Presented: 12,
		Missed:    []*drill.Item{apfel, ente},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(t))
	if s.Title() != "Summary" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(t))
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Apfel") || !strings.Contains(view, "Ente") {
		t.Error("missed items should be listed")
	}
	if !strings.Contains(view, "der") {
		t.Error("article items should show their article")
	}
}

func TestSummaryScreen_PerfectRound(t *testing.T) {
	s := New(&drill.Summary{DeckSize: 5, Presented: 5})
	view := s.View(80, 24)
	if !strings.Contains(view, "Perfect round") {
		t.Error("expected the perfect-round line when nothing was missed")
	}
}

func TestSummaryScreen_EnterQuits(t *testing.T) {
	s := New(testSummary(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (quit)")
	}
}

func TestSummaryScreen_EscPops(t *testing.T) {
	s := New(testSummary(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}
