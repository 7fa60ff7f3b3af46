package drill

import "testing"

func testItem(t *testing.T, answers ...string) *Item {
	t.Helper()
	it, err := New("Apfel", "nouns/Apfel.mp3", answers)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return it
}

func TestJudge_Correct(t *testing.T) {
	it := testItem(t, "der")

	for _, in := range []string{"der", " der ", "DER", "\tDer\n"} {
		if v := Judge(in, it); v != VerdictCorrect {
			t.Errorf("Judge(%q) = %v, want VerdictCorrect", in, v)
		}
	}
	for _, in := range []string{"die", "das", "derr", "d er"} {
		if v := Judge(in, it); v != VerdictIncorrect {
			t.Errorf("Judge(%q) = %v, want VerdictIncorrect", in, v)
		}
	}
}

func TestJudge_GermanCasing(t *testing.T) {
	it := testItem(t, "Äpfel")

	if v := Judge("ÄPFEL", it); v != VerdictCorrect {
		t.Errorf("Judge(ÄPFEL) = %v, want VerdictCorrect", v)
	}
	if got := Normalize("  GRÜSSE "); got != "grüsse" {
		t.Errorf("Normalize = %q, want %q", got, "grüsse")
	}
}

func TestJudge_CommandPriority(t *testing.T) {
	// Commands win even when the item would accept them as answers.
	it := testItem(t, "quit", "repeat", "der")

	cases := []struct {
		in   string
		want Verdict
	}{
		{"", VerdictReplay},
		{"   ", VerdictReplay},
		{"repeat", VerdictReplay},
		{"QUIT", VerdictQuit},
		{"exit", VerdictQuit},
		{"en", VerdictGloss},
		{"eng", VerdictGloss},
		{"English", VerdictGloss},
		{"der", VerdictCorrect},
	}
	for _, c := range cases {
		if v := Judge(c.in, it); v != c.want {
			t.Errorf("Judge(%q) = %v, want %v", c.in, v, c.want)
		}
	}
}

func TestNew_RequiresAnswers(t *testing.T) {
	if _, err := New("Apfel", "nouns/Apfel.mp3", nil); err == nil {
		t.Error("expected error for item without accepted answers")
	}
	if _, err := New("Apfel", "nouns/Apfel.mp3", []string{"  "}); err == nil {
		t.Error("expected error for item with blank answers only")
	}
}

func TestItem_ClosedSet(t *testing.T) {
	it := testItem(t, "der")
	it.ClosedSet = Articles

	if !it.InClosedSet("die") {
		t.Error("die should be in the article set")
	}
	if it.InClosedSet("apfel") {
		t.Error("apfel should be outside the article set")
	}

	open := testItem(t, "äpfel")
	if !open.InClosedSet("anything") {
		t.Error("open items accept any input as an attempt")
	}
}
