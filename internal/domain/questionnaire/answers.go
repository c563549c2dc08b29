package questionnaire

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
)

// Founder is one entry of the founders group answer.
type Founder struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Background string `json:"background"`
}

// Answer is a single answer value: absent, text (numbers are kept as their
// literal text) or an ordered list of founders.
type Answer struct {
	Text     string
	Founders []Founder
	isList   bool
}

// Text builds a text answer.
func Text(s string) Answer { return Answer{Text: s} }

// Founders builds a founders list answer.
func Founders(f ...Founder) Answer { return Answer{Founders: f, isList: true} }

// IsList reports whether the answer is a founders list.
func (a Answer) IsList() bool { return a.isList }

// Blank reports whether the answer counts as "not answered".
func (a Answer) Blank() bool {
	if a.isList {
		return len(a.Founders) == 0
	}
	return strings.TrimSpace(a.Text) == ""
}

// UnmarshalJSON accepts a string, a number, a boolean, null or an array of founders.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*a = Answer{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		return json.Unmarshal(data, &a.Text)
	case '[':
		var fs []Founder
		if err := json.Unmarshal(data, &fs); err != nil {
			return eris.Wrap(err, "answer: decode founders")
		}
		a.Founders = fs
		a.isList = true
		return nil
	case '{':
		return eris.New("answer: objects are not a valid answer value")
	default:
		// numbers and booleans keep their literal spelling
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			a.Text = n.String()
			return nil
		}
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return eris.Wrap(err, "answer: decode scalar")
		}
		if b {
			a.Text = "true"
		} else {
			a.Text = "false"
		}
		return nil
	}
}

// MarshalJSON writes the answer back in the shape UnmarshalJSON accepts.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.isList {
		if a.Founders == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.Founders)
	}
	if a.Text == "" {
		return []byte("null"), nil
	}
	return json.Marshal(a.Text)
}

// Answers maps question or sub-field ids to answer values. The core only reads it.
type Answers map[string]Answer
