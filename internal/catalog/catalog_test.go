package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	require.NoError(t, err)
	return c
}

func TestLoadCareers(t *testing.T) {
	c := mustLoad(t)

	careers := c.Careers()
	require.Len(t, careers, 9)
	assert.Equal(t, "Data Scientist", careers[0])
	assert.Contains(t, careers, "Data Analyst")
	assert.Contains(t, careers, "Cybersecurity Analyst")
}

func TestEssentialSkills(t *testing.T) {
	c := mustLoad(t)

	got := c.EssentialSkills("Data Scientist")
	assert.Equal(t, []string{
		"Python", "SQL", "Statistics", "Machine Learning", "Data Analysis", "Pandas", "NumPy",
		"Excel", "Git", "Jupyter Notebook",
	}, got)

	// Git appears in both technical and tools essentials.
	be := c.EssentialSkills("Backend Developer")
	count := 0
	for _, s := range be {
		if s == "Git" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAllRequiredSkillsOrderAndDedupe(t *testing.T) {
	c := mustLoad(t)

	all := c.AllRequiredSkills("Backend Developer")
	require.NotEmpty(t, all)
	assert.Equal(t, "JavaScript", all[0])
	assert.Equal(t, "System Thinking", all[len(all)-1])

	seen := map[string]bool{}
	for _, s := range all {
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
	}
	assert.True(t, seen["Kubernetes"])
}

func TestUnknownCareerLookups(t *testing.T) {
	c := mustLoad(t)

	_, ok := c.Skills("Astronaut")
	assert.False(t, ok)
	assert.Empty(t, c.AllRequiredSkills("Astronaut"))
	assert.Empty(t, c.EssentialSkills("Astronaut"))
	assert.Empty(t, c.InterviewQuestions("Astronaut"))
	assert.Empty(t, c.AllProjects("Astronaut"))
}

func TestCaseInsensitiveLookup(t *testing.T) {
	c := mustLoad(t)

	name, ok := c.CanonicalName("ui/ux designer")
	require.True(t, ok)
	assert.Equal(t, "UI/UX Designer", name)
}

func TestCoursesFallBackToDefault(t *testing.T) {
	c := mustLoad(t)

	ds := c.Courses("Data Scientist")
	assert.Equal(t, "Python for Data Science", ds.Beginner[0].Title)
	assert.Len(t, ds.All(), 7)

	other := c.Courses("Cloud Engineer")
	require.Len(t, other.Beginner, 1)
	assert.Equal(t, "Domain Fundamentals", other.Beginner[0].Title)
}

func TestProjectsByDifficulty(t *testing.T) {
	c := mustLoad(t)

	p, err := c.ProjectsByDifficulty("Data Scientist", Beginner)
	require.NoError(t, err)
	assert.Equal(t, "Customer Churn Prediction", p[0].Title)

	_, err = c.ProjectsByDifficulty("Data Scientist", Difficulty("expert"))
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	d, err := ParseDifficulty(" Advanced ")
	require.NoError(t, err)
	assert.Equal(t, Advanced, d)
}

func TestSkillsReturnsCopy(t *testing.T) {
	c := mustLoad(t)

	s, ok := c.Skills("Data Scientist")
	require.True(t, ok)
	s.Technical.Essential[0] = "Cobol"

	again, _ := c.Skills("Data Scientist")
	assert.Equal(t, "Python", again.Technical.Essential[0])
}

func TestValidateDocumentRejectsBadShape(t *testing.T) {
	doc := map[string]interface{}{
		"careers": []interface{}{map[string]interface{}{"name": "X"}},
	}
	err := validateDocument("skills.yaml", skillsSchema, doc)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
