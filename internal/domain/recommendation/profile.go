package recommendation

import "strings"

type Career string

const (
	DataScientist        Career = "Data Scientist"
	BackendDeveloper     Career = "Backend Developer"
	UIUXDesigner         Career = "UI/UX Designer"
	CybersecurityAnalyst Career = "Cybersecurity Analyst"
	ProductManager       Career = "Product Manager"
	CloudEngineer        Career = "Cloud Engineer"
	AIMLEngineer         Career = "AI/ML Engineer"
	BusinessAnalyst      Career = "Business Analyst"
)

// Careers is the enumeration order. Ties in score keep this order.
var Careers = []Career{
	DataScientist,
	BackendDeveloper,
	UIUXDesigner,
	CybersecurityAnalyst,
	ProductManager,
	CloudEngineer,
	AIMLEngineer,
	BusinessAnalyst,
}

func IsCareer(s string) bool {
	for _, c := range Careers {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Profile is the survey answer set. Every field is optional.
type Profile struct {
	Interests  Interests  `json:"interests"`
	WorkStyle  WorkStyle  `json:"workStyle"`
	Intent     Intent     `json:"intent"`
	Confidence Confidence `json:"confidence"`
}

type Interests struct {
	Numbers    bool `json:"numbers"`
	Building   bool `json:"building"`
	Design     bool `json:"design"`
	Explaining bool `json:"explaining"`
	Logic      bool `json:"logic"`
}

// WorkStyle values are free text. RoleType accepts "Desk Job" and "Desk".
type WorkStyle struct {
	Environment string `json:"environment,omitempty"`
	Structure   string `json:"structure,omitempty"`
	RoleType    string `json:"roleType,omitempty"`
}

type Intent struct {
	AfterEdu  string `json:"afterEdu,omitempty"`
	Workplace string `json:"workplace,omitempty"`
	Nature    string `json:"nature,omitempty"`
}

// Confidence ratings run 1 to 10. Zero means not rated.
type Confidence struct {
	Math          int `json:"math,omitempty"`
	Coding        int `json:"coding,omitempty"`
	Communication int `json:"communication,omitempty"`
}

func (c Confidence) value(d Dimension) int {
	switch d {
	case Math:
		return c.Math
	case Coding:
		return c.Coding
	case Communication:
		return c.Communication
	default:
		return 0
	}
}

type Signal string

const (
	SignalSolo       Signal = "environment:solo"
	SignalTeam       Signal = "environment:team"
	SignalStructured Signal = "structure:structured"
	SignalFlexible   Signal = "structure:flexible"
	SignalDesk       Signal = "role:desk"
	SignalDynamic    Signal = "role:dynamic"

	SignalNumbers    Signal = "interest:numbers"
	SignalBuilding   Signal = "interest:building"
	SignalDesign     Signal = "interest:design"
	SignalExplaining Signal = "interest:explaining"
	SignalLogic      Signal = "interest:logic"

	SignalResearch  Signal = "nature:research"
	SignalApplied   Signal = "nature:applied"
	SignalCorporate Signal = "workplace:corporate"
	SignalStartup   Signal = "workplace:startup"
)

// Signals maps a profile to the categorical signals the weight tables are
// keyed on. Each work-style and intent field yields at most one signal.
func Signals(p Profile) []Signal {
	out := make([]Signal, 0, 10)

	switch norm(p.WorkStyle.Environment) {
	case "solo":
		out = append(out, SignalSolo)
	case "team":
		out = append(out, SignalTeam)
	}
	switch norm(p.WorkStyle.Structure) {
	case "structured":
		out = append(out, SignalStructured)
	case "flexible":
		out = append(out, SignalFlexible)
	}
	switch norm(p.WorkStyle.RoleType) {
	case "desk job", "desk", "deskjob", "desk-job":
		out = append(out, SignalDesk)
	case "dynamic":
		out = append(out, SignalDynamic)
	}

	if p.Interests.Numbers {
		out = append(out, SignalNumbers)
	}
	if p.Interests.Building {
		out = append(out, SignalBuilding)
	}
	if p.Interests.Design {
		out = append(out, SignalDesign)
	}
	if p.Interests.Explaining {
		out = append(out, SignalExplaining)
	}
	if p.Interests.Logic {
		out = append(out, SignalLogic)
	}

	switch norm(p.Intent.Nature) {
	case "research":
		out = append(out, SignalResearch)
	case "applied":
		out = append(out, SignalApplied)
	}
	switch norm(p.Intent.Workplace) {
	case "corporate":
		out = append(out, SignalCorporate)
	case "startup":
		out = append(out, SignalStartup)
	}

	return out
}

func norm(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
