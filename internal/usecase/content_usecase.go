package usecase

import (
	"context"
	"fmt"
	"strings"

	"careergps/internal/catalog"
)

type SkillsView struct {
	Career      string
	Skills      catalog.SkillSet
	AllRequired []string
	Essential   []string
}

type CoursesView struct {
	Career string
	Levels catalog.CourseLevels
}

type ProjectsView struct {
	Career     string
	Difficulty catalog.Difficulty
	Projects   []catalog.Project
}

// ContentUsecase serves the static catalog. Every lookup resolves the career
// name against the skill catalog first.
type ContentUsecase struct {
	catalog *catalog.Catalog
}

func NewContentUsecase(c *catalog.Catalog) *ContentUsecase {
	return &ContentUsecase{catalog: c}
}

func (u *ContentUsecase) Careers(context.Context) []string {
	return u.catalog.Careers()
}

func (u *ContentUsecase) resolve(career string) (string, error) {
	name, ok := u.catalog.CanonicalName(career)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrCareerNotFound, career)
	}
	return name, nil
}

func (u *ContentUsecase) Skills(_ context.Context, career string) (SkillsView, error) {
	name, err := u.resolve(career)
	if err != nil {
		return SkillsView{}, err
	}
	set, _ := u.catalog.Skills(name)
	return SkillsView{
		Career:      name,
		Skills:      set,
		AllRequired: u.catalog.AllRequiredSkills(name),
		Essential:   u.catalog.EssentialSkills(name),
	}, nil
}

// Courses falls back to the default course list for careers without their
// own.
func (u *ContentUsecase) Courses(_ context.Context, career string) (CoursesView, error) {
	name, err := u.resolve(career)
	if err != nil {
		return CoursesView{}, err
	}
	return CoursesView{Career: name, Levels: u.catalog.Courses(name)}, nil
}

// Projects returns every project for an empty difficulty.
func (u *ContentUsecase) Projects(_ context.Context, career, difficulty string) (ProjectsView, error) {
	name, err := u.resolve(career)
	if err != nil {
		return ProjectsView{}, err
	}

	if strings.TrimSpace(difficulty) == "" {
		return ProjectsView{Career: name, Projects: u.catalog.AllProjects(name)}, nil
	}

	d, err := catalog.ParseDifficulty(difficulty)
	if err != nil {
		return ProjectsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	projects, err := u.catalog.ProjectsByDifficulty(name, d)
	if err != nil {
		return ProjectsView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if projects == nil {
		projects = []catalog.Project{}
	}
	return ProjectsView{Career: name, Difficulty: d, Projects: projects}, nil
}

func (u *ContentUsecase) InterviewQuestions(_ context.Context, career string) (string, []catalog.InterviewQuestion, error) {
	name, err := u.resolve(career)
	if err != nil {
		return "", nil, err
	}
	return name, u.catalog.InterviewQuestions(name), nil
}
