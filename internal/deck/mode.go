package deck

import "fmt"

// Mode is one practice category.
type Mode string

const (
	ModeArticles Mode = "articles"
	ModePlural   Mode = "plural"
	ModeVerbs    Mode = "verbs"
	ModeLetters  Mode = "letters"
	ModeNumbers  Mode = "numbers"
)

// Modes lists every drill mode in menu order.
var Modes = []Mode{ModeArticles, ModePlural, ModeVerbs, ModeLetters, ModeNumbers}

// Parse validates a mode name from the command line.
func Parse(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown drill mode %q", s)
}

// Title returns the human-readable name shown in headers and menus.
func (m Mode) Title() string {
	switch m {
	case ModeArticles:
		return "Articles (der/die/das)"
	case ModePlural:
		return "Plurals"
	case ModeVerbs:
		return "Verb conjugation"
	case ModeLetters:
		return "Letters"
	case ModeNumbers:
		return "Numbers"
	default:
		return string(m)
	}
}
