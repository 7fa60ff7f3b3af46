package drill

import (
	"errors"
	"slices"
)

// Articles is the closed answer set for noun-article items.
var Articles = []string{"der", "die", "das"}

// Item is a single thing to be practiced: a prompt with a known set of
// accepted answers and the audio that pronounces it.
type Item struct {
	// PromptText is shown before the answer is known. It may omit the
	// information the learner has to supply (e.g. the article).
	PromptText string

	// AudioID resolves the primary pronunciation audio.
	AudioID string

	// CorrectiveAudioID, when set, resolves audio that confirms the full
	// correct form (e.g. article + noun) after the answer is judged.
	CorrectiveAudioID string

	// AcceptedAnswers holds the normalized answers considered correct.
	// Never empty.
	AcceptedAnswers []string

	// Gloss is the English translation, shown on demand and in summaries.
	Gloss string

	// Category is the item's distinguishing attribute (the article for
	// noun items), used for colored rendering. May be empty.
	Category string

	// ClosedSet, when non-nil, is the small closed answer vocabulary for
	// this item. Input outside the set gets a usage reminder instead of
	// being scored.
	ClosedSet []string
}

// New builds an item from a prompt, an audio id and its accepted answers.
// Answers are normalized; an item with no accepted answers is a
// construction error.
func New(prompt, audioID string, accepted []string) (*Item, error) {
	answers := make([]string, 0, len(accepted))
	for _, a := range accepted {
		if n := Normalize(a); n != "" {
			answers = append(answers, n)
		}
	}
	if len(answers) == 0 {
		return nil, errors.New("item has no accepted answers")
	}
	return &Item{
		PromptText:      prompt,
		AudioID:         audioID,
		AcceptedAnswers: answers,
	}, nil
}

// Accepts reports whether the already-normalized input is a correct answer.
func (i *Item) Accepts(normalized string) bool {
	return slices.Contains(i.AcceptedAnswers, normalized)
}

// InClosedSet reports whether the normalized input belongs to the item's
// closed answer vocabulary. Items with an open answer space accept any input
// as a scoreable attempt.
func (i *Item) InClosedSet(normalized string) bool {
	if i.ClosedSet == nil {
		return true
	}
	return slices.Contains(i.ClosedSet, normalized)
}
