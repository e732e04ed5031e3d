package matching

type Level string

const (
	LevelBeginner             Level = "beginner"
	LevelBeginnerIntermediate Level = "beginner-intermediate"
	LevelIntermediate         Level = "intermediate"
	LevelAdvanced             Level = "advanced"
)

type Readiness struct {
	Level                    Level
	Message                  string
	Color                    string
	EssentialMatchPercentage int
	OverallMatchPercentage   int
}

type tier struct {
	min     int
	level   Level
	message string
	color   string
}

// tiers is ordered from the highest threshold down.
var tiers = []tier{
	{80, LevelAdvanced, "You are well-prepared! Consider advanced topics to excel.", "#10b981"},
	{50, LevelIntermediate, "You have a solid foundation. Keep building your expertise.", "#f59e0b"},
	{25, LevelBeginnerIntermediate, "You have started your journey. Focus on core competencies.", "#f97316"},
}

var beginnerTier = tier{0, LevelBeginner, "You are just getting started. Focus on building essential skills.", "#ef4444"}

// ReadinessAssessment classifies a match by its essential-skill percentage.
func ReadinessAssessment(r Result) Readiness {
	t := beginnerTier
	for _, candidate := range tiers {
		if r.EssentialMatchPercentage >= candidate.min {
			t = candidate
			break
		}
	}
	return Readiness{
		Level:                    t.level,
		Message:                  t.message,
		Color:                    t.color,
		EssentialMatchPercentage: r.EssentialMatchPercentage,
		OverallMatchPercentage:   r.MatchPercentage,
	}
}
