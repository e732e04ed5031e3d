package handler

import (
	"strconv"
	"strings"

	"careergps/internal/delivery/http/dto"
	"careergps/internal/delivery/http/middleware"
	"careergps/internal/domain/recommendation"
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Save)
	r.Get("/", h.List)
}

func (h *AssessmentHandler) Save(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p := recommendation.DecodeProfile(c.Body())

	a, err := h.uc.Save(c.Context(), userID, p)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusCreated, "created", dto.NewAssessmentResponse(a))
}

func (h *AssessmentHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return badRequest("limit must be a positive integer", err)
		}
		limit = n
	}

	items, err := h.uc.List(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAssessmentList(items))
}
