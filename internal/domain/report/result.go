package report

// Mode tells whether a result came from a live model call or the canned fallback.
type Mode string

const (
	ModeDemo Mode = "demo"
	ModeLive Mode = "live"
)

// MaxDimensionScore is the ceiling of every rubric dimension.
const MaxDimensionScore = 25

// MaxOverallScore is the ceiling of the overall score (4 x 25).
const MaxOverallScore = 100

const (
	DimensionCount      = 4
	RecommendationCount = 3
)

// Rubric dimension names, in rubric order.
const (
	DimensionNarrative = "Narrative Clarity & Vision"
	DimensionTraction  = "Traction & Metrics"
	DimensionMarket    = "Market & Timing"
	DimensionTeam      = "Team & Execution Readiness"
)

// Dimensions lists the rubric dimensions in order.
func Dimensions() []string {
	return []string{DimensionNarrative, DimensionTraction, DimensionMarket, DimensionTeam}
}

// DimensionScore is the evaluation of one rubric dimension.
type DimensionScore struct {
	Name         string   `json:"name"`
	Score        int      `json:"score"`
	MaxScore     int      `json:"maxScore"`
	Summary      string   `json:"summary"`
	WhatsWorking []string `json:"whatsWorking"`
	WhatsMissing []string `json:"whatsMissing"`
	PriorityFix  string   `json:"priorityFix"`
	InvestorLens string   `json:"investorLens"`
}

// AnalysisResult is the scored fundraising readiness report.
type AnalysisResult struct {
	OverallScore       int              `json:"overallScore"`
	Label              Label            `json:"label"`
	Dimensions         []DimensionScore `json:"dimensions"`
	Narrative          string           `json:"narrative"`
	TopRecommendations []string         `json:"topRecommendations"`
	Mode               Mode             `json:"mode"`
}

// DimensionTotal sums the dimension scores.
func (r *AnalysisResult) DimensionTotal() int {
	total := 0
	for _, d := range r.Dimensions {
		total += d.Score
	}
	return total
}

// Clone returns a deep copy.
func (r *AnalysisResult) Clone() *AnalysisResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Dimensions = make([]DimensionScore, len(r.Dimensions))
	for i, d := range r.Dimensions {
		d.WhatsWorking = append([]string(nil), d.WhatsWorking...)
		d.WhatsMissing = append([]string(nil), d.WhatsMissing...)
		c.Dimensions[i] = d
	}
	c.TopRecommendations = append([]string(nil), r.TopRecommendations...)
	return &c
}
