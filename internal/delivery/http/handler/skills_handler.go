package handler

import (
	"strings"

	"careergps/internal/delivery/http/dto"
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillsHandler struct {
	uc *usecase.SkillsUsecase
}

type matchRequest struct {
	Skills []string `json:"skills"`
	Career string   `json:"career"`
}

type analyzeRequest struct {
	Skills  []string `json:"skills"`
	Careers []string `json:"careers"`
}

func NewSkillsHandler(uc *usecase.SkillsUsecase) *SkillsHandler {
	return &SkillsHandler{uc: uc}
}

func (h *SkillsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/match", h.Match)
	r.Post("/analyze", h.Analyze)
}

func (h *SkillsHandler) Match(c fiber.Ctx) error {
	var req matchRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request payload", err)
	}
	if strings.TrimSpace(req.Career) == "" {
		return badRequest("career is required", nil)
	}

	rep, err := h.uc.Match(c.Context(), req.Skills, req.Career)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchReport(rep))
}

func (h *SkillsHandler) Analyze(c fiber.Ctx) error {
	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request payload", err)
	}

	results, err := h.uc.Analyze(c.Context(), req.Skills, req.Careers)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalyzeResponse(results))
}
