package cmd

import (
	"github.com/spf13/cobra"

	"wortlaut/internal/app"
	"wortlaut/internal/audio"
	"wortlaut/internal/config"
	"wortlaut/internal/deck"
	"wortlaut/internal/drill"
)

// modeCommands builds one subcommand per drill mode. Decks load before the
// UI starts, so a missing or malformed CSV aborts with a plain error instead
// of an in-screen message.
func modeCommands() []*cobra.Command {
	shorts := map[deck.Mode]string{
		deck.ModeArticles: "Drill der/die/das for nouns",
		deck.ModePlural:   "Drill plural forms of short nouns",
		deck.ModeVerbs:    "Drill present-tense verb conjugation",
		deck.ModeLetters:  "Type the letter you hear",
		deck.ModeNumbers:  "Type the number you hear",
	}

	cmds := make([]*cobra.Command, 0, len(deck.Modes))
	for _, mode := range deck.Modes {
		mode := mode
		cmds = append(cmds, &cobra.Command{
			Use:   string(mode),
			Short: shorts[mode],
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				items, err := loadDeck(cfg, mode)
				if err != nil {
					return err
				}
				return app.Run(app.Options{Config: cfg, Mode: mode, Items: items})
			},
		})
	}
	return cmds
}

func loadDeck(cfg config.Config, mode deck.Mode) ([]*drill.Item, error) {
	sounds, err := audio.NewFileStore(cfg.CacheDir)
	if err != nil {
		return nil, err
	}
	return deck.Build(mode, deck.BuildOptions{
		DeckDir:      cfg.DeckDir,
		PluralChance: cfg.PluralChance,
		RNG:          cfg.RNG(),
		Sounds:       sounds,
	})
}
