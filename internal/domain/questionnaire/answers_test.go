package questionnaire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswers_UnmarshalJSON(t *testing.T) {
	var got Answers
	require.NoError(t, json.Unmarshal([]byte(`{
		"a1": "A world without invoices",
		"d3": 1200,
		"d4": 1.5,
		"b4": null,
		"x": true,
		"e1": [{"name": "Ana", "role": "CEO", "background": "ex-Stripe"}, {"name": "", "role": "CTO"}]
	}`), &got))

	assert.Equal(t, Text("A world without invoices"), got["a1"])
	assert.Equal(t, "1200", got["d3"].Text)
	assert.Equal(t, "1.5", got["d4"].Text)
	assert.True(t, got["b4"].Blank())
	assert.Equal(t, "true", got["x"].Text)

	e1 := got["e1"]
	require.True(t, e1.IsList())
	require.Len(t, e1.Founders, 2)
	assert.Equal(t, Founder{Name: "Ana", Role: "CEO", Background: "ex-Stripe"}, e1.Founders[0])
	assert.Equal(t, "CTO", e1.Founders[1].Role)
}

func TestAnswer_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var a Answer
	assert.Error(t, json.Unmarshal([]byte(`{"name": "Ana"}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &a))
}

func TestAnswer_Blank(t *testing.T) {
	assert.True(t, Answer{}.Blank())
	assert.True(t, Text("   \n\t").Blank())
	assert.False(t, Text("0").Blank())
	assert.True(t, Founders().Blank())
	assert.False(t, Founders(Founder{}).Blank())
}

func TestAnswer_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Answers{
		"a1": Text("hi"),
		"b1": {},
		"e1": Founders(Founder{Name: "Ana"}),
		"e9": Founders(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a1":"hi","b1":null,"e1":[{"name":"Ana","role":"","background":""}],"e9":[]}`, string(out))
}
