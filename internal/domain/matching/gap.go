package matching

import (
	"strings"

	"careergps/internal/catalog"
)

const maxCoursesPerSkill = 3

type SkillGap struct {
	Skill   string
	Courses []catalog.Course
}

// SkillGapRecommendations finds up to three courses per missing skill whose
// title, outcome or platform mentions it. Blank skills and skills with no
// course are left out.
func (m *Matcher) SkillGapRecommendations(missing []string, career string) []SkillGap {
	all := m.courses.Courses(career).All()
	if len(all) == 0 {
		return []SkillGap{}
	}

	haystacks := make([]string, len(all))
	for i, c := range all {
		haystacks[i] = strings.ToLower(c.Title + " " + c.Outcome + " " + c.Platform)
	}

	out := make([]SkillGap, 0, len(missing))
	seen := make(map[string]struct{}, len(missing))
	for _, skill := range missing {
		needle := strings.ToLower(skill)
		if strings.TrimSpace(needle) == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}

		var courses []catalog.Course
		for i, h := range haystacks {
			if !strings.Contains(h, needle) {
				continue
			}
			courses = append(courses, all[i])
			if len(courses) == maxCoursesPerSkill {
				break
			}
		}
		if len(courses) > 0 {
			out = append(out, SkillGap{Skill: skill, Courses: courses})
		}
	}
	return out
}
