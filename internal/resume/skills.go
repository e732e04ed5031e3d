package resume

import (
	"regexp"
	"strings"
)

type Category string

const (
	Programming Category = "programming"
	Frameworks  Category = "frameworks"
	Databases   Category = "databases"
	Cloud       Category = "cloud"
	Tools       Category = "tools"
	Methods     Category = "methods"
	Design      Category = "design"
	Soft        Category = "soft"
)

var Categories = []Category{Programming, Frameworks, Databases, Cloud, Tools, Methods, Design, Soft}

var patterns = map[Category][]string{
	Programming: {
		"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "php", "swift", "kotlin",
		"go", "rust", "scala", "r", "matlab", "sql", "html", "css", "shell", "bash",
	},
	Frameworks: {
		"react", "vue", "angular", "node.js", "express", "django", "flask", "spring", "spring boot",
		"laravel", ".net", "tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
		"next.js", "nest.js", "fastapi", "rails",
	},
	Databases: {
		"mysql", "postgresql", "mongodb", "redis", "cassandra", "oracle", "sql server", "sqlite",
		"dynamodb", "elasticsearch", "bigquery", "snowflake",
	},
	Cloud: {
		"aws", "azure", "gcp", "google cloud", "cloud computing", "serverless", "lambda", "ec2",
		"s3", "cloudformation", "terraform", "kubernetes", "docker", "container",
	},
	Tools: {
		"git", "github", "gitlab", "jenkins", "ci/cd", "jira", "confluence", "docker", "kubernetes",
		"figma", "sketch", "adobe xd", "photoshop", "illustrator", "vs code", "jupyter",
		"postman", "tableau", "power bi", "excel", "slack", "trello",
	},
	Methods: {
		"agile", "scrum", "kanban", "devops", "tdd", "bdd", "microservices", "rest api", "graphql",
		"machine learning", "deep learning", "nlp", "computer vision", "data analysis", "statistics",
		"ux research", "user testing", "wireframing", "prototyping", "a/b testing",
	},
	Design: {
		"ui design", "ux design", "user experience", "user interface", "responsive design",
		"design systems", "accessibility", "wireframing", "prototyping", "figma", "sketch",
		"adobe xd", "invision", "material design", "css", "html5",
	},
	Soft: {
		"leadership", "communication", "teamwork", "problem solving", "critical thinking",
		"time management", "collaboration", "adaptability", "creativity", "analytical",
		"attention to detail", "project management", "stakeholder management",
	},
}

// aliases maps common shorthand to the canonical pattern it implies.
var aliases = map[string][]string{
	"go":               {"golang"},
	"javascript":       {"ecmascript"},
	"node.js":          {"nodejs"},
	"react":            {"reactjs"},
	"postgresql":       {"postgres"},
	"kubernetes":       {"k8s"},
	"gcp":              {"google cloud platform"},
	"ci/cd":            {"continuous integration"},
	"machine learning": {"ml"},
}

type matcher struct {
	skill    string
	category Category
	res      []*regexp.Regexp
}

var matchers = buildMatchers()

func buildMatchers() []matcher {
	seen := make(map[string]struct{})
	out := make([]matcher, 0, 128)
	for _, cat := range Categories {
		for _, skill := range patterns[cat] {
			if _, dup := seen[skill]; dup {
				continue
			}
			seen[skill] = struct{}{}

			terms := append([]string{skill}, aliases[skill]...)
			res := make([]*regexp.Regexp, 0, len(terms))
			for _, t := range terms {
				res = append(res, wordPattern(t))
			}
			out = append(out, matcher{skill: skill, category: cat, res: res})
		}
	}
	return out
}

// wordPattern matches term when it is not glued to other letters or digits.
// Terms like "c++" and ".net" start or end with punctuation, so \b is not
// usable.
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^\pL\pN])` + regexp.QuoteMeta(term) + `(?:$|[^\pL\pN])`)
}

type Extraction struct {
	Skills     []string
	Categories map[Category][]string
}

// ExtractSkills finds known skills in free text. Each skill is reported once,
// under the first category that lists it.
func ExtractSkills(text string) Extraction {
	out := Extraction{
		Skills:     []string{},
		Categories: make(map[Category][]string, len(Categories)),
	}
	for _, c := range Categories {
		out.Categories[c] = []string{}
	}
	if strings.TrimSpace(text) == "" {
		return out
	}

	for _, m := range matchers {
		for _, re := range m.res {
			if re.MatchString(text) {
				out.Skills = append(out.Skills, m.skill)
				out.Categories[m.category] = append(out.Categories[m.category], m.skill)
				break
			}
		}
	}
	return out
}
