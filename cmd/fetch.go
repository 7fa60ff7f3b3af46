package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wortlaut/internal/audio"
	"wortlaut/internal/config"
	"wortlaut/internal/deck"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <mode>",
	Short: "Download pronunciation audio for a mode ahead of time",
	Long: "Fetch resolves every recording a mode's deck references and stores it\n" +
		"in the audio cache, so the drill itself runs without network delays.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := deck.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := audio.NewFileStore(cfg.CacheDir)
		if err != nil {
			return err
		}

		items, err := deck.Build(mode, deck.BuildOptions{
			DeckDir:      cfg.DeckDir,
			PluralChance: cfg.PluralChance,
			RNG:          cfg.RNG(),
			Sounds:       store,
		})
		if err != nil {
			return err
		}

		provider := audio.NewVerbformen(cfg.RemoteBaseURL)
		ctx := cmd.Context()

		var fetched, cached, failed int
		for _, id := range deck.AudioIDs(items) {
			if store.Has(id) {
				cached++
				continue
			}
			data, err := provider.Fetch(ctx, id)
			if err != nil {
				if errors.Is(err, audio.ErrNoRemoteSource) {
					continue
				}
				fmt.Printf("  skip %s: %v\n", id, err)
				failed++
				continue
			}
			if err := store.Put(id, data); err != nil {
				fmt.Printf("  skip %s: %v\n", id, err)
				failed++
				continue
			}
			fmt.Printf("  got  %s\n", id)
			fetched++
		}

		fmt.Printf("%d fetched, %d already cached, %d failed\n", fetched, cached, failed)
		return nil
	},
}
