package cmd

import (
	"github.com/spf13/cobra"

	"wortlaut/internal/app"
	"wortlaut/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "wortlaut",
	Short: "German vocabulary drills in the terminal",
	Long: "Wortlaut — terminal drills for German articles, plurals, verb forms,\n" +
		"letters and numbers, with native pronunciation audio.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return app.Run(app.Options{Config: cfg})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	for _, c := range modeCommands() {
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
