package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/bryanwahyu/seedcheck/internal/domain/questionnaire"
)

var (
	questionsSection string
	questionsJSON    bool
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questionnaire",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := questionnaire.Default()

		sections := catalog.Sections()
		if key := strings.ToUpper(strings.TrimSpace(questionsSection)); key != "" {
			var picked []questionnaire.Section
			for _, s := range sections {
				if string(s.Key) == key {
					picked = append(picked, s)
				}
			}
			if len(picked) == 0 {
				return eris.Errorf("unknown section %q", questionsSection)
			}
			sections = picked
		}

		if questionsJSON {
			var qs []questionnaire.Question
			for _, s := range sections {
				qs = append(qs, catalog.QuestionsFor(s.Key)...)
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"sections": sections, "questions": qs})
		}
		return printQuestions(cmd.OutOrStdout(), catalog, sections)
	},
}

func printQuestions(w io.Writer, catalog *questionnaire.Catalog, sections []questionnaire.Section) error {
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s. %s\n   %s\n", s.Key, s.Title, s.Subtitle)
		for _, q := range catalog.QuestionsFor(s.Key) {
			req := ""
			if q.Required {
				req = " *"
			}
			fmt.Fprintf(w, "  %-4s %s [%s]%s\n", q.ID, q.Label, q.Kind, req)
			for _, sf := range q.SubFields {
				fmt.Fprintf(w, "    %-12s %s [%s]\n", sf.ID, sf.Label, sf.Kind)
			}
		}
	}
	return nil
}

func init() {
	questionsCmd.Flags().StringVar(&questionsSection, "section", "", "only this section (A-E)")
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "print JSON instead of a listing")
	rootCmd.AddCommand(questionsCmd)
}
