package usecase

import (
	"context"
	"errors"
	"fmt"

	"careergps/internal/catalog"
	"careergps/internal/domain/matching"
	"careergps/internal/logger"
	"careergps/internal/metrics"
)

const maxAnalyzeCareers = 20

var ErrCareerNotFound = errors.New("career not found")

// MatchReport bundles a match result with the readiness banner and the
// courses that cover its missing essential skills.
type MatchReport struct {
	Result    matching.Result
	Readiness matching.Readiness
	Gaps      []matching.SkillGap
}

type SkillsUsecase struct {
	catalog *catalog.Catalog
	matcher *matching.Matcher
	log     logger.Logger
}

func NewSkillsUsecase(c *catalog.Catalog, log logger.Logger) *SkillsUsecase {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &SkillsUsecase{catalog: c, matcher: matching.NewMatcher(c, c), log: log}
}

// Match degrades an unknown career to the marker result (Result.Error set,
// no readiness, no gaps) instead of failing.
func (u *SkillsUsecase) Match(ctx context.Context, skills []string, career string) (MatchReport, error) {
	if err := ctx.Err(); err != nil {
		return MatchReport{}, err
	}

	if name, ok := u.catalog.CanonicalName(career); ok {
		career = name
	}
	res := u.matcher.MatchSkills(skills, career)
	if !res.Found() {
		u.log.Debug("skills match for unknown career", map[string]interface{}{"career": career})
		return MatchReport{Result: res, Gaps: []matching.SkillGap{}}, nil
	}

	readiness := matching.ReadinessAssessment(res)
	gaps := u.matcher.SkillGapRecommendations(res.EssentialMissing, res.Career)

	metrics.SkillMatches.WithLabelValues(res.Career, string(readiness.Level)).Inc()
	u.log.Debug("skills matched", map[string]interface{}{
		"career":    res.Career,
		"matched":   res.TotalMatched,
		"required":  res.TotalRequired,
		"readiness": readiness.Level,
	})

	return MatchReport{Result: res, Readiness: readiness, Gaps: gaps}, nil
}

// Analyze compares skills against several careers. An empty list means every
// career in the catalog.
func (u *SkillsUsecase) Analyze(ctx context.Context, skills []string, careers []string) ([]matching.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(careers) == 0 {
		careers = u.catalog.Careers()
	}
	if len(careers) > maxAnalyzeCareers {
		return nil, fmt.Errorf("%w: at most %d careers", ErrInvalidInput, maxAnalyzeCareers)
	}
	return u.matcher.AnalyzeMultipleCareers(skills, careers), nil
}
