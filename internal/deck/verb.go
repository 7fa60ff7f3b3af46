package deck

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"wortlaut/internal/drill"
)

// VerbRecord is one row of verbs.csv: the infinitive, its translation and
// the present-tense conjugation columns.
type VerbRecord struct {
	English string `csv:"english"`
	German  string `csv:"german"`
	Ich     string `csv:"ich"`
	Du      string `csv:"du"`
	Er      string `csv:"er"`
	Wir     string `csv:"wir"`
	Ihr     string `csv:"ihr"`
	Sie     string `csv:"sie"`
}

// Conjugation pairs a pronoun with the verb form it takes.
type Conjugation struct {
	Pronoun string
	Form    string
}

// Conjugations returns the pronoun/form pairs of a verb in drill order.
// "er" stands in for er/sie/es/man, "sie" for the plural and formal forms,
// matching the deck file's six columns.
func (v VerbRecord) Conjugations() []Conjugation {
	return []Conjugation{
		{"ich", v.Ich},
		{"du", v.Du},
		{"er", v.Er},
		{"wir", v.Wir},
		{"ihr", v.Ihr},
		{"sie", v.Sie},
	}
}

// ReadVerbs loads and validates the verb deck file.
func ReadVerbs(path string) ([]VerbRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open verb deck: %w", err)
	}
	defer f.Close()

	var verbs []VerbRecord
	if err := gocsv.UnmarshalFile(f, &verbs); err != nil {
		return nil, fmt.Errorf("parse verb deck %s: %w", path, err)
	}
	for i, v := range verbs {
		if v.German == "" {
			return nil, fmt.Errorf("verb deck %s row %d: german infinitive is required", path, i+1)
		}
		for _, c := range v.Conjugations() {
			if c.Form == "" {
				return nil, fmt.Errorf("verb deck %s row %d: missing %q form for %s", path, i+1, c.Pronoun, v.German)
			}
		}
	}
	return verbs, nil
}

func verbAudioID(name string) string {
	return "verbs/" + name + ".mp3"
}

// VerbsDeck builds one item per verb and pronoun. The bare conjugated form
// and the "pronoun form" spelling are both accepted.
func VerbsDeck(verbs []VerbRecord) ([]*drill.Item, error) {
	var items []*drill.Item
	for _, v := range verbs {
		for _, c := range v.Conjugations() {
			prompt := fmt.Sprintf("%s — %s", v.German, c.Pronoun)
			it, err := drill.New(prompt, verbAudioID(v.German), []string{c.Form, c.Pronoun + " " + c.Form})
			if err != nil {
				return nil, fmt.Errorf("verb %s (%s): %w", v.German, c.Pronoun, err)
			}
			it.Gloss = v.English
			it.CorrectiveAudioID = verbAudioID(c.Pronoun + " " + c.Form)
			items = append(items, it)
		}
	}
	return items, nil
}
