package report

// Label is the qualitative band of an overall score.
type Label string

const (
	LabelInvestorReady Label = "Investor Ready"
	LabelAlmostThere   Label = "Almost There"
	LabelNeedsWork     Label = "Needs Work"
	LabelEarlyStage    Label = "Early Stage"
	LabelTooEarly      Label = "Too Early"
)

// Band is a contiguous, inclusive score range mapped to a label.
type Band struct {
	Min, Max    int
	Label       Label
	Description string
}

// bands are ordered from best to worst and cover 0..100 without gaps.
var bands = []Band{
	{85, 100, LabelInvestorReady, "Strong across all dimensions"},
	{70, 84, LabelAlmostThere, "Strong foundation with 1-2 areas to sharpen"},
	{50, 69, LabelNeedsWork, "Good elements but significant gaps"},
	{30, 49, LabelEarlyStage, "More building needed before fundraising"},
	{0, 29, LabelTooEarly, "Focus on product and traction first"},
}

// Bands returns the score bands, best first.
func Bands() []Band {
	return append([]Band(nil), bands...)
}

// LabelFor maps an overall score to its band label.
// Scores outside 0..100 clamp to the nearest band.
func LabelFor(score int) Label {
	for _, b := range bands {
		if score >= b.Min {
			return b.Label
		}
	}
	return LabelTooEarly
}

// Valid reports whether l is one of the five band labels.
func (l Label) Valid() bool {
	for _, b := range bands {
		if b.Label == l {
			return true
		}
	}
	return false
}
