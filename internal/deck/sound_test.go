package deck

import (
	"testing"
)

type fakeLister struct {
	ids map[string][]string
}

func (f fakeLister) List(prefix string) ([]string, error) {
	return f.ids[prefix], nil
}

func TestSoundDeck(t *testing.T) {
	sounds := fakeLister{ids: map[string][]string{
		"letters": {"letters/a.mp3", "letters/b.mp3", "letters/ö.mp3"},
	}}

	items, err := SoundDeck(sounds, "letters")
	if err != nil {
		t.Fatalf("SoundDeck: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].AudioID != "letters/a.mp3" {
		t.Errorf("audio id = %q", items[0].AudioID)
	}
	if !items[0].Accepts("a") {
		t.Errorf("accepted answers = %v, want the file stem", items[0].AcceptedAnswers)
	}
	if !items[2].Accepts("ö") {
		t.Errorf("accepted answers = %v, want the umlaut stem", items[2].AcceptedAnswers)
	}
}

func TestSoundDeck_EmptyPrefix(t *testing.T) {
	items, err := SoundDeck(fakeLister{}, "numbers")
	if err != nil {
		t.Fatalf("SoundDeck: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want an empty deck (engine reports no items available)", len(items))
	}
}
