package analysis

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
	"github.com/bryanwahyu/seedcheck/internal/domain/report"
)

// Validate checks a decoded result against the result contract. It
// canonicalises dimension names that differ only in case or surrounding
// space and fills a missing maxScore. Violations wrap domai.ErrSchemaViolation.
// With strictTotals the dimension sum must equal the overall score and the
// label must match the score band.
func Validate(res *report.AnalysisResult, strictTotals bool) error {
	return validate(res, strictTotals, nil)
}

// validate starts from problems already found while decoding.
func validate(res *report.AnalysisResult, strictTotals bool, decoded []string) error {
	problems := append([]string(nil), decoded...)
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if res.OverallScore < 0 || res.OverallScore > report.MaxOverallScore {
		addf("overallScore %d out of range 0-%d", res.OverallScore, report.MaxOverallScore)
	}
	if !res.Label.Valid() {
		addf("unknown label %q", res.Label)
	}

	if len(res.Dimensions) != report.DimensionCount {
		addf("expected %d dimensions, got %d", report.DimensionCount, len(res.Dimensions))
	}
	canonical := make(map[string]string, report.DimensionCount)
	for _, name := range report.Dimensions() {
		canonical[strings.ToLower(name)] = name
	}
	seen := make(map[string]bool, len(res.Dimensions))
	for i := range res.Dimensions {
		d := &res.Dimensions[i]
		name, ok := canonical[strings.ToLower(strings.TrimSpace(d.Name))]
		switch {
		case !ok:
			addf("dimension %d has unknown name %q", i, d.Name)
		case seen[name]:
			addf("dimension %q appears twice", name)
		default:
			d.Name = name
			seen[name] = true
		}
		if d.MaxScore == 0 {
			d.MaxScore = report.MaxDimensionScore
		}
		if d.MaxScore != report.MaxDimensionScore {
			addf("dimension %q maxScore %d, want %d", d.Name, d.MaxScore, report.MaxDimensionScore)
		}
		if d.Score < 0 || d.Score > d.MaxScore {
			addf("dimension %q score %d out of range 0-%d", d.Name, d.Score, d.MaxScore)
		}
		if strings.TrimSpace(d.Summary) == "" {
			addf("dimension %q has no summary", d.Name)
		}
		if strings.TrimSpace(d.PriorityFix) == "" {
			addf("dimension %q has no priorityFix", d.Name)
		}
	}

	if strings.TrimSpace(res.Narrative) == "" {
		addf("narrative is empty")
	}
	if len(res.TopRecommendations) != report.RecommendationCount {
		addf("expected %d topRecommendations, got %d", report.RecommendationCount, len(res.TopRecommendations))
	}
	for i, r := range res.TopRecommendations {
		if strings.TrimSpace(r) == "" {
			addf("topRecommendations[%d] is empty", i)
		}
	}

	if strictTotals && len(problems) == 0 {
		if sum := res.DimensionTotal(); sum != res.OverallScore {
			addf("dimension scores sum to %d, overallScore is %d", sum, res.OverallScore)
		}
		if want := report.LabelFor(res.OverallScore); res.Label != want {
			addf("label %q doesn't match score %d (want %q)", res.Label, res.OverallScore, want)
		}
	}

	if len(problems) > 0 {
		return eris.Wrapf(domai.ErrSchemaViolation, "analysis: %s", strings.Join(problems, "; "))
	}
	return nil
}
