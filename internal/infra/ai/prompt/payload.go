package prompt

import (
	"sort"
	"strings"

	"github.com/bryanwahyu/seedcheck/internal/domain/questionnaire"
)

const (
	payloadHeading = "## Startup Questionnaire Responses\n\n"
	deckHeading    = "\n## Pitch Deck Content (extracted text)\n\n"
	// NoDeckNotice is written instead of the deck section when no deck was supplied.
	NoDeckNotice = "\n## Pitch Deck\nNo deck was uploaded. Evaluate based on questionnaire answers only.\n"
	closingAsk   = "\n\nPlease analyze this startup's seed round readiness and return your assessment as JSON."

	missingField      = "?"
	missingBackground = "N/A"
)

// UserMessage renders answers and optional deck text into the request payload.
// Questions are rendered in catalog order, each followed by its sub-fields;
// blank answers are skipped. Ids unknown to the catalog come last, sorted,
// labelled with the id itself. A blank deckText means no deck was supplied.
func UserMessage(cat *questionnaire.Catalog, answers questionnaire.Answers, deckText string) string {
	var b strings.Builder
	b.WriteString(payloadHeading)

	seen := make(map[string]bool, len(answers))
	for _, q := range cat.Questions() {
		writeAnswer(&b, cat, q.ID, answers, seen)
		for _, sf := range q.SubFields {
			writeAnswer(&b, cat, sf.ID, answers, seen)
		}
	}

	var extra []string
	for id := range answers {
		if !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		writeAnswer(&b, cat, id, answers, seen)
	}

	if strings.TrimSpace(deckText) != "" {
		b.WriteString(deckHeading)
		b.WriteString(deckText)
	} else {
		b.WriteString(NoDeckNotice)
	}

	b.WriteString(closingAsk)
	return b.String()
}

func writeAnswer(b *strings.Builder, cat *questionnaire.Catalog, id string, answers questionnaire.Answers, seen map[string]bool) {
	seen[id] = true
	a, ok := answers[id]
	if !ok || a.Blank() {
		return
	}

	b.WriteString("**")
	b.WriteString(cat.Label(id))
	b.WriteString("**\n")
	if a.IsList() {
		b.WriteString(FounderLines(a.Founders))
	} else {
		b.WriteString(a.Text)
	}
	b.WriteString("\n\n")
}

// FounderLines renders one "- name (role): background" line per founder.
func FounderLines(founders []questionnaire.Founder) string {
	lines := make([]string, len(founders))
	for i, f := range founders {
		lines[i] = "- " + orDefault(f.Name, missingField) +
			" (" + orDefault(f.Role, missingField) + "): " +
			orDefault(f.Background, missingBackground)
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
