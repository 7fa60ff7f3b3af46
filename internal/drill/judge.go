package drill

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Verdict is the outcome of judging one line of input against an item.
type Verdict int

const (
	// VerdictCorrect means the normalized input matched an accepted answer.
	VerdictCorrect Verdict = iota

	// VerdictIncorrect means the input was an attempt but did not match.
	VerdictIncorrect

	// VerdictQuit ends the session immediately ("quit"/"exit").
	VerdictQuit

	// VerdictReplay replays the current item's audio (empty line/"repeat").
	VerdictReplay

	// VerdictGloss shows the English gloss for the current item
	// ("en"/"eng"/"english").
	VerdictGloss
)

// Normalize trims surrounding whitespace and lower-cases the input with a
// German-aware caser, so Ä/Ö/Ü and ß survive the round trip.
func Normalize(s string) string {
	return cases.Lower(language.German).String(strings.TrimSpace(s))
}

// Judge compares one line of raw input against an item. Session commands are
// recognized before content matching, so "quit" quits even when an item
// would accept it as an answer. Pure; no side effects.
func Judge(raw string, item *Item) Verdict {
	in := Normalize(raw)

	switch in {
	case "", "repeat":
		return VerdictReplay
	case "quit", "exit":
		return VerdictQuit
	case "en", "eng", "english":
		return VerdictGloss
	}

	if item.Accepts(in) {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
