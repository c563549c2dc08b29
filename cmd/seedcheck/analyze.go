package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/bryanwahyu/seedcheck/internal/domain/questionnaire"
	"github.com/bryanwahyu/seedcheck/internal/middleware"
)

var (
	analyzeAnswers  string
	analyzeDeck     string
	analyzeDeckText string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a questionnaire (and optional deck) and print the report as JSON",
	Example: "  seedcheck analyze --answers answers.json --deck pitch.pdf\n" +
		"  cat answers.json | seedcheck analyze --answers -",
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeDeck != "" && analyzeDeckText != "" {
			return eris.New("--deck and --deck-text are mutually exclusive")
		}

		answers, err := readAnswers(cmd.InOrStdin(), analyzeAnswers)
		if err != nil {
			return err
		}

		svcs, err := buildServices(cfg)
		if err != nil {
			return err
		}

		var deckText string
		if analyzeDeckText != "" {
			data, err := os.ReadFile(analyzeDeckText)
			if err != nil {
				return eris.Wrap(err, "read deck text")
			}
			deckText = string(data)
		}
		if analyzeDeck != "" {
			data, err := os.ReadFile(analyzeDeck)
			if err != nil {
				return eris.Wrap(err, "read deck")
			}
			parsed, err := svcs.deck.ParseDeck(cmd.Context(), filepath.Base(analyzeDeck), data)
			if err != nil {
				return eris.Wrap(err, "parse deck")
			}
			deckText = parsed.RawText
		}

		res, err := svcs.analysis.Analyze(cmd.Context(), answers, deckText)
		if err != nil {
			return eris.Wrap(err, "analyze")
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

// readAnswers loads a flat {"id": value} JSON object from path, or stdin for "-".
// An empty path means no answers.
func readAnswers(stdin io.Reader, path string) (questionnaire.Answers, error) {
	if path == "" {
		return questionnaire.Answers{}, nil
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, eris.Wrap(err, "read answers")
	}

	var answers questionnaire.Answers
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, eris.Wrap(err, "decode answers")
	}

	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	if err := middleware.ValidateAnswerIDs(ids); err != nil {
		return nil, eris.Wrap(err, "validate answers")
	}
	return answers, nil
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeAnswers, "answers", "", `answers JSON file ("-" for stdin)`)
	analyzeCmd.Flags().StringVar(&analyzeDeck, "deck", "", "pitch deck file (.pdf or .pptx)")
	analyzeCmd.Flags().StringVar(&analyzeDeckText, "deck-text", "", "file holding already extracted deck text")
	rootCmd.AddCommand(analyzeCmd)
}
