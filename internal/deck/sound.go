package deck

import (
	"fmt"
	"path"
	"strings"

	"wortlaut/internal/audio"
	"wortlaut/internal/drill"
)

// SoundDeck builds a listen-and-type deck from the recordings cached under a
// store prefix ("letters", "numbers"). The accepted answer is the file stem,
// so the deck is entirely data-driven: record a clip, gain an item.
func SoundDeck(sounds audio.Lister, prefix string) ([]*drill.Item, error) {
	ids, err := sounds.List(prefix)
	if err != nil {
		return nil, fmt.Errorf("load %s deck: %w", prefix, err)
	}

	var items []*drill.Item
	for _, id := range ids {
		name := path.Base(id)
		stem := strings.TrimSuffix(name, path.Ext(name))
		if stem == "" {
			continue
		}
		it, err := drill.New("♪ type what you hear", id, []string{stem})
		if err != nil {
			return nil, fmt.Errorf("%s deck: %w", prefix, err)
		}
		items = append(items, it)
	}
	return items, nil
}
