package main

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var parseDeckTextOnly bool

var parseDeckCmd = &cobra.Command{
	Use:   "parse-deck <file>",
	Short: "Extract slide text from a .pdf or .pptx deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "read deck")
		}

		svcs, err := buildServices(cfg)
		if err != nil {
			return err
		}

		parsed, err := svcs.deck.ParseDeck(cmd.Context(), filepath.Base(args[0]), data)
		if err != nil {
			return eris.Wrap(err, "parse deck")
		}

		if parseDeckTextOnly {
			_, err := cmd.OutOrStdout().Write([]byte(parsed.RawText + "\n"))
			return err
		}
		return printJSON(cmd.OutOrStdout(), parsed)
	},
}

func init() {
	parseDeckCmd.Flags().BoolVar(&parseDeckTextOnly, "text", false, "print only the raw text")
	rootCmd.AddCommand(parseDeckCmd)
}
