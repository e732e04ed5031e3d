package catalog

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// DefaultCourseKey names the course entry used for careers without their own.
const DefaultCourseKey = "default"

var (
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

type Tiered struct {
	Essential   []string `yaml:"essential" json:"essential"`
	Recommended []string `yaml:"recommended" json:"recommended"`
	Advanced    []string `yaml:"advanced" json:"advanced"`
}

type SkillSet struct {
	Technical Tiered   `yaml:"technical" json:"technical"`
	Tools     Tiered   `yaml:"tools" json:"tools"`
	Soft      []string `yaml:"soft" json:"soft"`
}

type Course struct {
	Title    string  `yaml:"title" json:"title"`
	Platform string  `yaml:"platform" json:"platform"`
	Duration string  `yaml:"duration" json:"duration"`
	Rating   float64 `yaml:"rating" json:"rating"`
	Outcome  string  `yaml:"outcome" json:"outcome"`
}

type CourseLevels struct {
	Beginner     []Course `yaml:"beginner" json:"beginner"`
	Intermediate []Course `yaml:"intermediate" json:"intermediate"`
	Advanced     []Course `yaml:"advanced" json:"advanced"`
}

// All flattens beginner, intermediate and advanced in that order.
func (l CourseLevels) All() []Course {
	out := make([]Course, 0, len(l.Beginner)+len(l.Intermediate)+len(l.Advanced))
	out = append(out, l.Beginner...)
	out = append(out, l.Intermediate...)
	return append(out, l.Advanced...)
}

type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Skills      []string `yaml:"skills" json:"skills"`
	Duration    string   `yaml:"duration" json:"duration"`
	Outcomes    []string `yaml:"outcomes" json:"outcomes"`
}

type ProjectLevels struct {
	Beginner     []Project `yaml:"beginner" json:"beginner"`
	Intermediate []Project `yaml:"intermediate" json:"intermediate"`
	Advanced     []Project `yaml:"advanced" json:"advanced"`
}

type InterviewQuestion struct {
	Question    string `yaml:"question" json:"question"`
	Answer      string `yaml:"answer" json:"answer"`
	Explanation string `yaml:"explanation" json:"explanation"`
}

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Beginner, Intermediate, Advanced:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Catalog is read-only after Load and safe for concurrent use.
type Catalog struct {
	careers   []string
	skills    map[string]SkillSet
	courses   map[string]CourseLevels
	projects  map[string]ProjectLevels
	questions map[string][]InterviewQuestion
}

type skillsDoc struct {
	Careers []struct {
		Name     string `yaml:"name"`
		SkillSet `yaml:",inline"`
	} `yaml:"careers"`
}

type coursesDoc struct {
	Careers []struct {
		Name         string `yaml:"name"`
		CourseLevels `yaml:",inline"`
	} `yaml:"careers"`
}

type projectsDoc struct {
	Careers []struct {
		Name          string `yaml:"name"`
		ProjectLevels `yaml:",inline"`
	} `yaml:"careers"`
}

type questionsDoc struct {
	Careers []struct {
		Name      string              `yaml:"name"`
		Questions []InterviewQuestion `yaml:"questions"`
	} `yaml:"careers"`
}

// Load parses and validates the embedded content files.
func Load() (*Catalog, error) {
	var sd skillsDoc
	if err := decode("skills.yaml", skillsSchema, &sd); err != nil {
		return nil, err
	}
	var cd coursesDoc
	if err := decode("courses.yaml", coursesSchema, &cd); err != nil {
		return nil, err
	}
	var pd projectsDoc
	if err := decode("projects.yaml", projectsSchema, &pd); err != nil {
		return nil, err
	}
	var qd questionsDoc
	if err := decode("interview_questions.yaml", questionsSchema, &qd); err != nil {
		return nil, err
	}

	c := &Catalog{
		careers:   make([]string, 0, len(sd.Careers)),
		skills:    make(map[string]SkillSet, len(sd.Careers)),
		courses:   make(map[string]CourseLevels, len(cd.Careers)),
		projects:  make(map[string]ProjectLevels, len(pd.Careers)),
		questions: make(map[string][]InterviewQuestion, len(qd.Careers)),
	}
	for _, e := range sd.Careers {
		if _, dup := c.skills[e.Name]; dup {
			return nil, fmt.Errorf("%w: skills.yaml: duplicate career %q", ErrInvalidCatalog, e.Name)
		}
		c.careers = append(c.careers, e.Name)
		c.skills[e.Name] = e.SkillSet
	}
	for _, e := range cd.Careers {
		c.courses[e.Name] = e.CourseLevels
	}
	if _, ok := c.courses[DefaultCourseKey]; !ok {
		return nil, fmt.Errorf("%w: courses.yaml: missing %q entry", ErrInvalidCatalog, DefaultCourseKey)
	}
	for _, e := range pd.Careers {
		c.projects[e.Name] = e.ProjectLevels
	}
	for _, e := range qd.Careers {
		c.questions[e.Name] = e.Questions
	}
	return c, nil
}

func decode(name, schema string, out interface{}) error {
	b, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, name, err)
	}
	if err := validateDocument(name, schema, raw); err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, name, err)
	}
	return nil
}

// Careers lists the careers of the skill catalog in file order.
func (c *Catalog) Careers() []string {
	return slices.Clone(c.careers)
}

// resolve finds the stored key for name: exact first, then case-insensitive.
func resolve[V any](m map[string]V, name string) (string, bool) {
	if _, ok := m[name]; ok {
		return name, true
	}
	name = strings.TrimSpace(name)
	for k := range m {
		if strings.EqualFold(k, name) {
			return k, true
		}
	}
	return "", false
}

// CanonicalName returns the catalog spelling of a career name.
func (c *Catalog) CanonicalName(career string) (string, bool) {
	return resolve(c.skills, career)
}

func (c *Catalog) Skills(career string) (SkillSet, bool) {
	key, ok := resolve(c.skills, career)
	if !ok {
		return SkillSet{}, false
	}
	s := c.skills[key]
	return SkillSet{
		Technical: cloneTiered(s.Technical),
		Tools:     cloneTiered(s.Tools),
		Soft:      slices.Clone(s.Soft),
	}, true
}

// AllRequiredSkills flattens technical, tools and soft skills, dropping
// case-insensitive duplicates. The first spelling wins.
func (c *Catalog) AllRequiredSkills(career string) []string {
	key, ok := resolve(c.skills, career)
	if !ok {
		return []string{}
	}
	s := c.skills[key]
	return dedupeFold(
		s.Technical.Essential, s.Technical.Recommended, s.Technical.Advanced,
		s.Tools.Essential, s.Tools.Recommended, s.Tools.Advanced,
		s.Soft,
	)
}

// EssentialSkills is technical.essential united with tools.essential.
func (c *Catalog) EssentialSkills(career string) []string {
	key, ok := resolve(c.skills, career)
	if !ok {
		return []string{}
	}
	s := c.skills[key]
	return dedupeFold(s.Technical.Essential, s.Tools.Essential)
}

// Courses falls back to the default entry for careers without courses.
func (c *Catalog) Courses(career string) CourseLevels {
	key, ok := resolve(c.courses, career)
	if !ok {
		key = DefaultCourseKey
	}
	l := c.courses[key]
	return CourseLevels{
		Beginner:     slices.Clone(l.Beginner),
		Intermediate: slices.Clone(l.Intermediate),
		Advanced:     slices.Clone(l.Advanced),
	}
}

func (c *Catalog) Projects(career string) (ProjectLevels, bool) {
	key, ok := resolve(c.projects, career)
	if !ok {
		return ProjectLevels{Beginner: []Project{}, Intermediate: []Project{}, Advanced: []Project{}}, false
	}
	l := c.projects[key]
	return ProjectLevels{
		Beginner:     slices.Clone(l.Beginner),
		Intermediate: slices.Clone(l.Intermediate),
		Advanced:     slices.Clone(l.Advanced),
	}, true
}

func (c *Catalog) AllProjects(career string) []Project {
	l, _ := c.Projects(career)
	out := make([]Project, 0, len(l.Beginner)+len(l.Intermediate)+len(l.Advanced))
	out = append(out, l.Beginner...)
	out = append(out, l.Intermediate...)
	return append(out, l.Advanced...)
}

func (c *Catalog) ProjectsByDifficulty(career string, difficulty Difficulty) ([]Project, error) {
	l, _ := c.Projects(career)
	switch difficulty {
	case Beginner:
		return l.Beginner, nil
	case Intermediate:
		return l.Intermediate, nil
	case Advanced:
		return l.Advanced, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	}
}

func (c *Catalog) InterviewQuestions(career string) []InterviewQuestion {
	key, ok := resolve(c.questions, career)
	if !ok {
		return []InterviewQuestion{}
	}
	return slices.Clone(c.questions[key])
}

func cloneTiered(t Tiered) Tiered {
	return Tiered{
		Essential:   slices.Clone(t.Essential),
		Recommended: slices.Clone(t.Recommended),
		Advanced:    slices.Clone(t.Advanced),
	}
}

func dedupeFold(lists ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, l := range lists {
		for _, s := range l {
			k := strings.ToLower(s)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
