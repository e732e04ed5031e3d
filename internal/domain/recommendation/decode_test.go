package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeProfile(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Profile
	}{
		{"empty body", "", Profile{}},
		{"whitespace", "  \n", Profile{}},
		{"not an object", `[1,2]`, Profile{}},
		{"broken json", `{"interests":`, Profile{}},
		{"string work style", `{"workStyle":"Solo","interests":{"logic":true}}`,
			Profile{Interests: Interests{Logic: true}}},
		{"quoted rating", `{"confidence":{"math":"8"},"intent":{"nature":"research"}}`,
			Profile{Intent: Intent{Nature: "research"}}},
		{"fractional rating", `{"confidence":{"math":7.5}}`, Profile{}},
		{"null part", `{"interests":null,"confidence":{"coding":6}}`,
			Profile{Confidence: Confidence{Coding: 6}}},
		{"full", `{"interests":{"numbers":true},"workStyle":{"environment":"Solo"},"intent":{"afterEdu":"job"},"confidence":{"math":9}}`,
			Profile{
				Interests:  Interests{Numbers: true},
				WorkStyle:  WorkStyle{Environment: "Solo"},
				Intent:     Intent{AfterEdu: "job"},
				Confidence: Confidence{Math: 9},
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeProfile([]byte(tt.body)))
		})
	}
}

func TestMalformedProfileStillRanks(t *testing.T) {
	p := DecodeProfile([]byte(`{"workStyle":"Solo"}`))
	assert.Len(t, DefaultEngine().Recommend(p, DefaultTopN), DefaultTopN)
}
