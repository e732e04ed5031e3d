package dto

import "careergps/internal/usecase"

type ResumeResponse struct {
	FileName   string              `json:"file_name"`
	ArchiveKey string              `json:"archive_key,omitempty"`
	Skills     []string            `json:"skills"`
	Categories map[string][]string `json:"categories"`
	Match      MatchReportResponse `json:"match"`
}

func NewResumeResponse(rep usecase.ResumeReport) ResumeResponse {
	cats := make(map[string][]string, len(rep.Extraction.Categories))
	for k, v := range rep.Extraction.Categories {
		cats[string(k)] = nonNil(v)
	}
	return ResumeResponse{
		FileName:   rep.FileName,
		ArchiveKey: rep.ArchiveKey,
		Skills:     nonNil(rep.Extraction.Skills),
		Categories: cats,
		Match:      NewMatchReport(rep.Match),
	}
}
