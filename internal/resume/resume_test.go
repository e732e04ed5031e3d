package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsFindsDottedNames(t *testing.T) {
	got := ExtractSkills("Built services with React.js, Node.js and PostgreSQL.")

	assert.Subset(t, got.Skills, []string{"react", "node.js", "postgresql"})
	assert.NotContains(t, got.Skills, "sql")
	assert.NotContains(t, got.Skills, "java")
}

func TestExtractSkillsPunctuatedTerms(t *testing.T) {
	got := ExtractSkills("Languages: C++, C# and .NET. Pipelines on CI/CD.")

	assert.Equal(t, []string{"c++", "c#"}, got.Categories[Programming])
	assert.Contains(t, got.Categories[Frameworks], ".net")
	assert.Contains(t, got.Categories[Tools], "ci/cd")
}

func TestExtractSkillsWordBoundaries(t *testing.T) {
	got := ExtractSkills("JavaScript developer, ASP.NET experience, gossip")

	assert.Contains(t, got.Skills, "javascript")
	assert.NotContains(t, got.Skills, "java")
	assert.NotContains(t, got.Skills, ".net")
	assert.NotContains(t, got.Skills, "go")
}

func TestExtractSkillsFirstCategoryWins(t *testing.T) {
	got := ExtractSkills("Docker, Kubernetes, Figma and wireframing")

	assert.Equal(t, []string{"kubernetes", "docker"}, got.Categories[Cloud])
	assert.Equal(t, []string{"figma"}, got.Categories[Tools])
	assert.Equal(t, []string{"wireframing"}, got.Categories[Methods])
	assert.Empty(t, got.Categories[Design])

	counts := map[string]int{}
	for _, s := range got.Skills {
		counts[s]++
	}
	for s, n := range counts {
		assert.Equal(t, 1, n, s)
	}
}

func TestExtractSkillsAliases(t *testing.T) {
	got := ExtractSkills("Golang microservices on k8s backed by Postgres")

	assert.Contains(t, got.Skills, "go")
	assert.Contains(t, got.Skills, "kubernetes")
	assert.Contains(t, got.Skills, "postgresql")
	assert.Contains(t, got.Skills, "microservices")
}

func TestExtractSkillsEmpty(t *testing.T) {
	got := ExtractSkills("   ")

	assert.Empty(t, got.Skills)
	require.Len(t, got.Categories, len(Categories))
	for _, c := range Categories {
		assert.NotNil(t, got.Categories[c])
	}
}

func TestDetectMIME(t *testing.T) {
	tests := []struct {
		declared string
		name     string
		want     string
	}{
		{"application/pdf", "cv.bin", MIMEPDF},
		{"text/plain; charset=utf-8", "cv", MIMEText},
		{"application/octet-stream", "CV.PDF", MIMEPDF},
		{"", "resume.docx", MIMEDOCX},
		{"", "notes.txt", MIMEText},
		{"image/png", "photo.png", "image/png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectMIME(tt.declared, tt.name), "%s %s", tt.declared, tt.name)
	}
}

func TestExtractText(t *testing.T) {
	text, err := ExtractText(MIMEText, []byte("Python and SQL"))
	require.NoError(t, err)
	assert.Equal(t, "Python and SQL", text)

	_, err = ExtractText("image/png", []byte{0x89})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ExtractText(MIMEPDF, []byte("not a pdf"))
	assert.Error(t, err)

	_, err = ExtractText(MIMEDOCX, []byte("not a zip"))
	assert.Error(t, err)
}
