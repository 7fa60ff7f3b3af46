// Package deck turns mode-specific records (CSV rows, cached recordings)
// into the drill items one session practices. Each mode has a thin adapter;
// the session engine never knows which mode it is running.
package deck

import (
	"math/rand"
	"path/filepath"

	"wortlaut/internal/audio"
	"wortlaut/internal/drill"
)

// BuildOptions carries the collaborators the adapters need.
type BuildOptions struct {
	// DeckDir holds nouns.csv and verbs.csv.
	DeckDir string

	// PluralChance is the per-record probability that an articles item
	// drills the plural form instead of the singular.
	PluralChance float64

	// RNG drives the construction-time form choice.
	RNG *rand.Rand

	// Sounds lists cached recordings for the listen-and-type decks.
	Sounds audio.Lister
}

// Build loads the deck for a mode. Errors here are fatal: they abort the
// run before the session state machine starts.
func Build(mode Mode, opts BuildOptions) ([]*drill.Item, error) {
	switch mode {
	case ModeArticles:
		nouns, err := ReadNouns(filepath.Join(opts.DeckDir, "nouns.csv"))
		if err != nil {
			return nil, err
		}
		return ArticlesDeck(nouns, opts.PluralChance, opts.RNG)

	case ModePlural:
		nouns, err := ReadNouns(filepath.Join(opts.DeckDir, "nouns.csv"))
		if err != nil {
			return nil, err
		}
		return PluralDeck(nouns)

	case ModeVerbs:
		verbs, err := ReadVerbs(filepath.Join(opts.DeckDir, "verbs.csv"))
		if err != nil {
			return nil, err
		}
		return VerbsDeck(verbs)

	case ModeLetters:
		return SoundDeck(opts.Sounds, "letters")

	case ModeNumbers:
		return SoundDeck(opts.Sounds, "numbers")

	default:
		_, err := Parse(string(mode))
		return nil, err
	}
}

// AudioIDs collects every audio id a deck references, prompt and corrective,
// for prefetching.
func AudioIDs(items []*drill.Item) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, it := range items {
		for _, id := range []string{it.AudioID, it.CorrectiveAudioID} {
			if id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
