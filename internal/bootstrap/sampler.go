package bootstrap

import "careergps/internal/domain/recommendation"

var (
	environments = []string{"Solo", "Team"}
	structures   = []string{"Structured", "Flexible"}
	roleTypes    = []string{"Desk Job", "Dynamic"}

	afterEdu   = []string{"job", "higherStudies"}
	workplaces = []string{"startup", "corporate"}
	natures    = []string{"research", "applied"}

	confidenceValues = []int{1, 3, 5, 7, 9}
)

type Sampler struct {
	rng *LCG
}

func NewSampler(seed uint32) *Sampler {
	return &Sampler{rng: NewLCG(seed)}
}

func (s *Sampler) flag() bool {
	return s.rng.Float64() > 0.5
}

func (s *Sampler) pick(options []string) string {
	return options[int(s.rng.Float64()*float64(len(options)))]
}

func (s *Sampler) confidence() int {
	return confidenceValues[int(s.rng.Float64()*float64(len(confidenceValues)))]
}

// Profile draws the next profile. Field order is part of the sequence and
// must not change.
func (s *Sampler) Profile() recommendation.Profile {
	var p recommendation.Profile

	p.Interests.Numbers = s.flag()
	p.Interests.Building = s.flag()
	p.Interests.Design = s.flag()
	p.Interests.Explaining = s.flag()
	p.Interests.Logic = s.flag()

	p.WorkStyle.Environment = s.pick(environments)
	p.WorkStyle.Structure = s.pick(structures)
	p.WorkStyle.RoleType = s.pick(roleTypes)

	p.Intent.AfterEdu = s.pick(afterEdu)
	p.Intent.Workplace = s.pick(workplaces)
	p.Intent.Nature = s.pick(natures)

	p.Confidence.Math = s.confidence()
	p.Confidence.Coding = s.confidence()
	p.Confidence.Communication = s.confidence()

	return p
}
