package recommendation

// Weights is one row of an affinity table: career -> score delta.
type Weights map[Career]int

type Rule struct {
	Signal  Signal
	Weights Weights
}

type Dimension string

const (
	Math          Dimension = "math"
	Coding        Dimension = "coding"
	Communication Dimension = "communication"
)

type Bound int

const (
	AtLeast Bound = iota
	AtMost
)

// ThresholdRule fires when a rated confidence dimension is >= or <= Limit.
type ThresholdRule struct {
	Dimension Dimension
	Bound     Bound
	Limit     int
	Weights   Weights
}

func (t ThresholdRule) matches(v int) bool {
	if v <= 0 {
		return false
	}
	switch t.Bound {
	case AtLeast:
		return v >= t.Limit
	case AtMost:
		return v <= t.Limit
	default:
		return false
	}
}

var DefaultRules = []Rule{
	// work style
	{SignalSolo, Weights{BackendDeveloper: 3, CybersecurityAnalyst: 4, CloudEngineer: 3, DataScientist: 2}},
	{SignalTeam, Weights{ProductManager: 5, BusinessAnalyst: 4, UIUXDesigner: 3}},
	{SignalStructured, Weights{CybersecurityAnalyst: 3, BusinessAnalyst: 3, BackendDeveloper: 2, DataScientist: 2}},
	{SignalFlexible, Weights{UIUXDesigner: 4, ProductManager: 3, AIMLEngineer: 2}},
	{SignalDesk, Weights{BackendDeveloper: 3, DataScientist: 2, AIMLEngineer: 2, CloudEngineer: 2}},
	{SignalDynamic, Weights{ProductManager: 4, BusinessAnalyst: 3, CybersecurityAnalyst: 2}},

	// interests
	{SignalNumbers, Weights{DataScientist: 5, AIMLEngineer: 4, BusinessAnalyst: 3, CybersecurityAnalyst: 2}},
	{SignalBuilding, Weights{BackendDeveloper: 5, CloudEngineer: 4, AIMLEngineer: 3}},
	{SignalDesign, Weights{UIUXDesigner: 5, ProductManager: 2}},
	{SignalExplaining, Weights{ProductManager: 4, BusinessAnalyst: 3, UIUXDesigner: 2}},
	{SignalLogic, Weights{BackendDeveloper: 3, CybersecurityAnalyst: 3, AIMLEngineer: 3, DataScientist: 2}},

	// intent
	{SignalResearch, Weights{AIMLEngineer: 5, DataScientist: 4}},
	{SignalApplied, Weights{BackendDeveloper: 5, CloudEngineer: 4, ProductManager: 2}},
	{SignalCorporate, Weights{BusinessAnalyst: 3, CybersecurityAnalyst: 2, DataScientist: 2}},
	{SignalStartup, Weights{ProductManager: 3, BackendDeveloper: 2, UIUXDesigner: 2}},
}

var DefaultThresholds = []ThresholdRule{
	{Math, AtLeast, 8, Weights{DataScientist: 4, AIMLEngineer: 4}},
	{Math, AtMost, 4, Weights{DataScientist: -5, AIMLEngineer: -3}},
	{Coding, AtLeast, 8, Weights{BackendDeveloper: 4, CloudEngineer: 4, AIMLEngineer: 3}},
	{Coding, AtMost, 3, Weights{BackendDeveloper: -5, ProductManager: 2, BusinessAnalyst: 2, UIUXDesigner: 1}},
	{Communication, AtLeast, 8, Weights{ProductManager: 5, BusinessAnalyst: 4, UIUXDesigner: 2}},
	{Communication, AtMost, 4, Weights{ProductManager: -5}},
}
