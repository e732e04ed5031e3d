package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticalProfile(nature string) Profile {
	return Profile{
		Interests:  Interests{Numbers: true, Logic: true, Explaining: true},
		Confidence: Confidence{Math: 10, Coding: 8, Communication: 6},
		Intent:     Intent{AfterEdu: "job", Workplace: "corporate", Nature: nature},
		WorkStyle:  WorkStyle{Environment: "Solo", Structure: "Structured", RoleType: "Desk"},
	}
}

func scoreOf(t *testing.T, scores []CareerScore, c Career) (int, int) {
	t.Helper()
	for i, s := range scores {
		if s.Career == c {
			return s.Score, i
		}
	}
	t.Fatalf("career %s not ranked", c)
	return 0, 0
}

func TestRecommendEmptyProfile(t *testing.T) {
	got := DefaultEngine().Recommend(Profile{}, 3)
	assert.Equal(t, []Career{DataScientist, BackendDeveloper, UIUXDesigner}, got)
}

func TestRecommendDefaultsAndClampsTopN(t *testing.T) {
	e := DefaultEngine()
	assert.Len(t, e.Recommend(Profile{}, 0), DefaultTopN)
	assert.Len(t, e.Recommend(Profile{}, -4), DefaultTopN)
	assert.Len(t, e.Recommend(Profile{}, 20), len(Careers))
}

func TestRecommendAnalyticalProfileIncludesDataScientist(t *testing.T) {
	got := DefaultEngine().Recommend(analyticalProfile("research"), 3)
	assert.Contains(t, got, DataScientist)
}

func TestResearchAndAppliedDiverge(t *testing.T) {
	e := DefaultEngine()
	research := e.Recommend(analyticalProfile("research"), 1)[0]
	applied := e.Recommend(analyticalProfile("applied"), 1)[0]

	assert.NotEqual(t, research, applied)
	assert.Contains(t, []Career{AIMLEngineer, DataScientist}, research)
	assert.Equal(t, BackendDeveloper, applied)
}

func TestCommunicationMonotonicForProductManager(t *testing.T) {
	e := DefaultEngine()
	withComm := func(v int) Profile {
		p := analyticalProfile("research")
		p.Confidence.Communication = v
		return p
	}

	low, _ := scoreOf(t, e.Scores(withComm(3)), ProductManager)
	_, baseRank := scoreOf(t, e.Scores(withComm(5)), ProductManager)
	high, highRank := scoreOf(t, e.Scores(withComm(9)), ProductManager)

	assert.Greater(t, high, low)
	assert.LessOrEqual(t, highRank, baseRank)
}

func TestScoresMayGoNegative(t *testing.T) {
	p := Profile{Confidence: Confidence{Math: 2, Coding: 2, Communication: 2}}
	scores := DefaultEngine().Scores(p)

	ds, _ := scoreOf(t, scores, DataScientist)
	be, _ := scoreOf(t, scores, BackendDeveloper)
	pm, _ := scoreOf(t, scores, ProductManager)
	assert.Equal(t, -5, ds)
	assert.Equal(t, -5, be)
	assert.Equal(t, -3, pm)
}

func TestConfidenceDeadZone(t *testing.T) {
	e := DefaultEngine()
	for v := 5; v <= 7; v++ {
		p := Profile{Confidence: Confidence{Math: v, Coding: v, Communication: v}}
		for _, s := range e.Scores(p) {
			assert.Zero(t, s.Score, "value %d career %s", v, s.Career)
		}
	}
	// coding 4 is between the coding thresholds
	for _, s := range e.Scores(Profile{Confidence: Confidence{Coding: 4}}) {
		assert.Zero(t, s.Score)
	}
}

func TestScoresDeterministic(t *testing.T) {
	e := DefaultEngine()
	p := analyticalProfile("applied")
	assert.Equal(t, e.Scores(p), e.Scores(p))
}

func TestRoleTypeVariants(t *testing.T) {
	e := DefaultEngine()
	desk := e.Scores(Profile{WorkStyle: WorkStyle{RoleType: "Desk"}})
	deskJob := e.Scores(Profile{WorkStyle: WorkStyle{RoleType: "Desk Job"}})
	spaced := e.Scores(Profile{WorkStyle: WorkStyle{RoleType: "  desk   job "}})

	assert.Equal(t, desk, deskJob)
	assert.Equal(t, desk, spaced)

	be, _ := scoreOf(t, desk, BackendDeveloper)
	assert.Equal(t, 3, be)
}

func TestUnknownValuesFireNothing(t *testing.T) {
	p := Profile{
		WorkStyle: WorkStyle{Environment: "Hybrid", Structure: "?", RoleType: "Remote"},
		Intent:    Intent{Nature: "both", Workplace: "government"},
	}
	assert.Empty(t, Signals(p))
	for _, s := range DefaultEngine().Scores(p) {
		assert.Zero(t, s.Score)
	}
}

func TestDesignProfileFavorsDesigner(t *testing.T) {
	p := Profile{
		WorkStyle:  WorkStyle{Environment: "Team", Structure: "Flexible", RoleType: "Desk"},
		Interests:  Interests{Design: true, Explaining: true},
		Confidence: Confidence{Math: 3, Coding: 3, Communication: 8},
	}
	assert.Contains(t, DefaultEngine().Recommend(p, 3), UIUXDesigner)
}

func TestBuilderProfileFavorsBackend(t *testing.T) {
	p := Profile{
		WorkStyle:  WorkStyle{Environment: "Solo", Structure: "Structured", RoleType: "Desk"},
		Interests:  Interests{Building: true, Logic: true},
		Confidence: Confidence{Math: 5, Coding: 10, Communication: 3},
	}
	got := DefaultEngine().Recommend(p, 3)
	require.Len(t, got, 3)
	assert.Equal(t, BackendDeveloper, got[0])
}

func TestEachRuleRow(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		career  Career
		want    int
	}{
		{"solo cyber", Profile{WorkStyle: WorkStyle{Environment: "Solo"}}, CybersecurityAnalyst, 4},
		{"team pm", Profile{WorkStyle: WorkStyle{Environment: "team"}}, ProductManager, 5},
		{"flexible ux", Profile{WorkStyle: WorkStyle{Structure: "Flexible"}}, UIUXDesigner, 4},
		{"dynamic pm", Profile{WorkStyle: WorkStyle{RoleType: "Dynamic"}}, ProductManager, 4},
		{"numbers ds", Profile{Interests: Interests{Numbers: true}}, DataScientist, 5},
		{"building cloud", Profile{Interests: Interests{Building: true}}, CloudEngineer, 4},
		{"research ai", Profile{Intent: Intent{Nature: "research"}}, AIMLEngineer, 5},
		{"startup pm", Profile{Intent: Intent{Workplace: "startup"}}, ProductManager, 3},
		{"math high", Profile{Confidence: Confidence{Math: 8}}, AIMLEngineer, 4},
		{"coding low ba", Profile{Confidence: Confidence{Coding: 3}}, BusinessAnalyst, 2},
		{"comm high ba", Profile{Confidence: Confidence{Communication: 10}}, BusinessAnalyst, 4},
		{"after edu ignored", Profile{Intent: Intent{AfterEdu: "higherStudies"}}, DataScientist, 0},
	}

	e := DefaultEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := scoreOf(t, e.Scores(tt.profile), tt.career)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewEngineIgnoresUnlistedCareers(t *testing.T) {
	e := NewEngine(
		[]Career{BackendDeveloper, CloudEngineer},
		[]Rule{{Signal: SignalBuilding, Weights: Weights{CloudEngineer: 2, DataScientist: 9}}},
		nil,
	)
	got := e.Scores(Profile{Interests: Interests{Building: true}})
	assert.Equal(t, []CareerScore{{CloudEngineer, 2}, {BackendDeveloper, 0}}, got)
}
