package deck

import (
	"fmt"
	"math/rand"
	"os"
	"slices"

	"github.com/gocarina/gocsv"

	"wortlaut/internal/drill"
)

// NounRecord is one row of nouns.csv.
type NounRecord struct {
	English  string `csv:"english"`
	Article  string `csv:"article"`
	Singular string `csv:"singular"`
	Plural   string `csv:"plural"`
}

// ReadNouns loads and validates the noun deck file. Any unreadable row or
// missing required field is fatal: the session must not start on a broken deck.
func ReadNouns(path string) ([]NounRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open noun deck: %w", err)
	}
	defer f.Close()

	var nouns []NounRecord
	if err := gocsv.UnmarshalFile(f, &nouns); err != nil {
		return nil, fmt.Errorf("parse noun deck %s: %w", path, err)
	}
	for i, n := range nouns {
		if n.Singular == "" || n.Article == "" {
			return nil, fmt.Errorf("noun deck %s row %d: singular and article are required", path, i+1)
		}
		if !slices.Contains(drill.Articles, n.Article) {
			return nil, fmt.Errorf("noun deck %s row %d: unknown article %q", path, i+1, n.Article)
		}
	}
	return nouns, nil
}

func nounAudioID(name string) string {
	return "nouns/" + name + ".mp3"
}

// ArticlesDeck builds one article item per noun record. Whether a record is
// drilled in its singular or plural form is decided here, at construction
// time, with the configured probability — never by a runtime branch.
func ArticlesDeck(nouns []NounRecord, pluralChance float64, rng *rand.Rand) ([]*drill.Item, error) {
	items := make([]*drill.Item, 0, len(nouns))
	for _, n := range nouns {
		var (
			it  *drill.Item
			err error
		)
		if n.Plural != "" && rng.Float64() < pluralChance {
			it, err = n.pluralArticleItem()
		} else {
			it, err = n.singularArticleItem()
		}
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func (n NounRecord) singularArticleItem() (*drill.Item, error) {
	it, err := drill.New(n.Singular, nounAudioID(n.Singular), []string{n.Article})
	if err != nil {
		return nil, fmt.Errorf("noun %s: %w", n.Singular, err)
	}
	it.Gloss = n.English
	it.Category = n.Article
	it.ClosedSet = drill.Articles
	it.CorrectiveAudioID = nounAudioID(n.Article + " " + n.Singular)
	return it, nil
}

func (n NounRecord) pluralArticleItem() (*drill.Item, error) {
	// Plurals take "die"; when the plural form is spelled like the
	// singular, the singular's article stays acceptable too.
	answers := []string{"die"}
	if n.Article != "die" && n.Plural == n.Singular {
		answers = append(answers, n.Article)
	}

	it, err := drill.New(n.Plural, nounAudioID(n.Singular), answers)
	if err != nil {
		return nil, fmt.Errorf("noun %s: %w", n.Singular, err)
	}
	it.Gloss = n.English
	it.Category = "die"
	it.ClosedSet = drill.Articles
	it.CorrectiveAudioID = nounAudioID(n.Article + " " + n.Singular)
	return it, nil
}

// shortSingularMax filters the plural deck down to short, typeable nouns.
const shortSingularMax = 4

// PluralDeck builds spelling items for nouns that have a recorded plural.
func PluralDeck(nouns []NounRecord) ([]*drill.Item, error) {
	var items []*drill.Item
	for _, n := range nouns {
		if n.Plural == "" || len([]rune(n.Singular)) > shortSingularMax {
			continue
		}
		it, err := drill.New(n.Singular+" [ÄÖÜäöüß]", nounAudioID(n.Singular), []string{n.Plural})
		if err != nil {
			return nil, fmt.Errorf("noun %s: %w", n.Singular, err)
		}
		it.Gloss = n.English
		it.Category = n.Article
		it.CorrectiveAudioID = nounAudioID(n.Article + " " + n.Singular)
		items = append(items, it)
	}
	return items, nil
}
