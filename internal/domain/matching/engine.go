package matching

import (
	"math"
	"sort"
	"strings"

	"careergps/internal/catalog"
)

// CareerNotFound is the marker set on results for careers missing from the
// skill catalog.
const CareerNotFound = "Career not found"

type SkillSource interface {
	CanonicalName(career string) (string, bool)
	AllRequiredSkills(career string) []string
	EssentialSkills(career string) []string
}

type CourseSource interface {
	Courses(career string) catalog.CourseLevels
}

type Result struct {
	Career                   string
	MatchedSkills            []string
	MissingSkills            []string
	EssentialMatched         []string
	EssentialMissing         []string
	MatchPercentage          int
	EssentialMatchPercentage int
	TotalRequired            int
	TotalMatched             int
	Error                    string
}

func (r Result) Found() bool {
	return r.Error == ""
}

type Matcher struct {
	skills  SkillSource
	courses CourseSource
}

func NewMatcher(skills SkillSource, courses CourseSource) *Matcher {
	return &Matcher{skills: skills, courses: courses}
}

// MatchSkills compares resume skills against every skill the career
// requires. A skill counts as present when either string contains the other,
// case-insensitively. The caller's slice is not modified.
func (m *Matcher) MatchSkills(resumeSkills []string, career string) Result {
	if _, ok := m.skills.CanonicalName(career); !ok {
		return Result{
			Career:           career,
			MatchedSkills:    []string{},
			MissingSkills:    []string{},
			EssentialMatched: []string{},
			EssentialMissing: []string{},
			Error:            CareerNotFound,
		}
	}

	have := normalize(resumeSkills)
	required := m.skills.AllRequiredSkills(career)

	essential := make(map[string]struct{})
	for _, s := range m.skills.EssentialSkills(career) {
		essential[strings.ToLower(s)] = struct{}{}
	}

	res := Result{
		Career:           career,
		MatchedSkills:    make([]string, 0, len(required)),
		MissingSkills:    make([]string, 0, len(required)),
		EssentialMatched: make([]string, 0, len(essential)),
		EssentialMissing: make([]string, 0, len(essential)),
		TotalRequired:    len(required),
	}

	for _, req := range required {
		lower := strings.ToLower(req)
		_, isEssential := essential[lower]

		if containsEither(have, lower) {
			res.MatchedSkills = append(res.MatchedSkills, req)
			if isEssential {
				res.EssentialMatched = append(res.EssentialMatched, req)
			}
			continue
		}
		res.MissingSkills = append(res.MissingSkills, req)
		if isEssential {
			res.EssentialMissing = append(res.EssentialMissing, req)
		}
	}

	res.TotalMatched = len(res.MatchedSkills)
	res.MatchPercentage = percent(res.TotalMatched, res.TotalRequired)
	res.EssentialMatchPercentage = percent(len(res.EssentialMatched), len(essential))
	return res
}

// AnalyzeMultipleCareers runs MatchSkills per career and orders the results
// by overall match, best first. Ties keep the input order.
func (m *Matcher) AnalyzeMultipleCareers(resumeSkills []string, careers []string) []Result {
	out := make([]Result, 0, len(careers))
	for _, c := range careers {
		out = append(out, m.MatchSkills(resumeSkills, c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

// normalize lowercases and trims, dropping blank entries. An empty string
// would otherwise be a substring of every requirement.
func normalize(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func containsEither(have []string, required string) bool {
	for _, h := range have {
		if strings.Contains(h, required) || strings.Contains(required, h) {
			return true
		}
	}
	return false
}

func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
