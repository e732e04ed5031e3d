package dto

import (
	"careergps/internal/catalog"
	"careergps/internal/domain/matching"
	"careergps/internal/usecase"
)

type MatchResultResponse struct {
	Career                   string   `json:"career"`
	MatchedSkills            []string `json:"matched_skills"`
	MissingSkills            []string `json:"missing_skills"`
	EssentialMatched         []string `json:"essential_matched"`
	EssentialMissing         []string `json:"essential_missing"`
	MatchPercentage          int      `json:"match_percentage"`
	EssentialMatchPercentage int      `json:"essential_match_percentage"`
	TotalRequired            int      `json:"total_required"`
	TotalMatched             int      `json:"total_matched"`
	Error                    string   `json:"error,omitempty"`
}

type ReadinessResponse struct {
	Level                    string `json:"level"`
	Message                  string `json:"message"`
	Color                    string `json:"color"`
	EssentialMatchPercentage int    `json:"essential_match_percentage"`
	OverallMatchPercentage   int    `json:"overall_match_percentage"`
}

type SkillGapResponse struct {
	Skill   string           `json:"skill"`
	Courses []catalog.Course `json:"courses"`
}

type MatchReportResponse struct {
	Result    MatchResultResponse `json:"result"`
	Readiness *ReadinessResponse  `json:"readiness,omitempty"`
	Gaps      []SkillGapResponse  `json:"gaps"`
}

type AnalyzeResponse struct {
	Results []MatchResultResponse `json:"results"`
}

func NewMatchResult(r matching.Result) MatchResultResponse {
	return MatchResultResponse{
		Career:                   r.Career,
		MatchedSkills:            nonNil(r.MatchedSkills),
		MissingSkills:            nonNil(r.MissingSkills),
		EssentialMatched:         nonNil(r.EssentialMatched),
		EssentialMissing:         nonNil(r.EssentialMissing),
		MatchPercentage:          r.MatchPercentage,
		EssentialMatchPercentage: r.EssentialMatchPercentage,
		TotalRequired:            r.TotalRequired,
		TotalMatched:             r.TotalMatched,
		Error:                    r.Error,
	}
}

// NewMatchReport omits readiness for careers that were not found.
func NewMatchReport(rep usecase.MatchReport) MatchReportResponse {
	out := MatchReportResponse{
		Result: NewMatchResult(rep.Result),
		Gaps:   make([]SkillGapResponse, 0, len(rep.Gaps)),
	}
	if rep.Result.Found() {
		out.Readiness = &ReadinessResponse{
			Level:                    string(rep.Readiness.Level),
			Message:                  rep.Readiness.Message,
			Color:                    rep.Readiness.Color,
			EssentialMatchPercentage: rep.Readiness.EssentialMatchPercentage,
			OverallMatchPercentage:   rep.Readiness.OverallMatchPercentage,
		}
	}
	for _, g := range rep.Gaps {
		out.Gaps = append(out.Gaps, SkillGapResponse{Skill: g.Skill, Courses: g.Courses})
	}
	return out
}

func NewAnalyzeResponse(results []matching.Result) AnalyzeResponse {
	out := make([]MatchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, NewMatchResult(r))
	}
	return AnalyzeResponse{Results: out}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
