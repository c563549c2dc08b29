package analysis

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"

	domai "github.com/bryanwahyu/seedcheck/internal/domain/ai"
	"github.com/bryanwahyu/seedcheck/internal/domain/report"
)

// Branch names which extraction heuristic matched.
type Branch string

const (
	BranchFenced Branch = "fenced"
	BranchBare   Branch = "bare"
)

var fencedJSON = regexp.MustCompile("(?s)```(?i:json)[ \\t]*\\r?\\n?(.*?)\\r?\\n?```")

// ExtractJSON finds the JSON span in a model reply: a ```json fenced block
// first, else the first top-level {...} object. It returns domai.ErrParseMiss
// when neither is present.
func ExtractJSON(text string) (string, Branch, error) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1], BranchFenced, nil
	}
	if span, ok := firstObject(text); ok {
		return span, BranchBare, nil
	}
	return "", "", domai.ErrParseMiss
}

// firstObject returns the first balanced {...} span, skipping braces inside
// string literals. If the first object never closes, it falls back to the
// span from the first '{' to the last '}' so the decoder reports the damage.
func firstObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	end := strings.LastIndexByte(text, '}')
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// Score fields are read as plain JSON numbers so "18.0" decodes like "18".
// The shallower fields shadow the embedded int ones.
type wireDimension struct {
	report.DimensionScore
	Score    json.Number `json:"score"`
	MaxScore json.Number `json:"maxScore"`
}

type wireResult struct {
	report.AnalysisResult
	OverallScore json.Number     `json:"overallScore"`
	Dimensions   []wireDimension `json:"dimensions"`
}

// Decode parses an extracted span into a result. Syntax errors wrap
// domai.ErrDecode. Scores must be whole numbers; any that aren't come back
// as problems for validation rather than as a decode error.
func Decode(span string) (*report.AnalysisResult, []string, error) {
	var w wireResult
	if err := json.Unmarshal([]byte(span), &w); err != nil {
		return nil, nil, eris.Wrapf(domai.ErrDecode, "analysis: decode model json: %v", err)
	}

	var problems []string
	whole := func(field string, n json.Number) int {
		v, ok := wholeNumber(n)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s %s is not a whole number", field, n))
		}
		return v
	}

	res := w.AnalysisResult
	res.OverallScore = whole("overallScore", w.OverallScore)
	res.Dimensions = nil
	if w.Dimensions != nil {
		res.Dimensions = make([]report.DimensionScore, len(w.Dimensions))
	}
	for i, d := range w.Dimensions {
		dim := d.DimensionScore
		dim.Score = whole(fmt.Sprintf("dimension %d score", i), d.Score)
		dim.MaxScore = whole(fmt.Sprintf("dimension %d maxScore", i), d.MaxScore)
		res.Dimensions[i] = dim
	}
	return &res, problems, nil
}

// wholeNumber converts an integral JSON number. Absent means 0. Values past
// the int32 range are clamped; range checks reject them later.
func wholeNumber(n json.Number) (int, bool) {
	if n == "" {
		return 0, true
	}
	if i, err := n.Int64(); err == nil && i >= math.MinInt32 && i <= math.MaxInt32 {
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	return int(math.Max(math.MinInt32, math.Min(math.MaxInt32, f))), true
}
