package handler

import (
	"careergps/internal/delivery/http/dto"
	"careergps/internal/delivery/http/middleware"
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProgressHandler struct {
	uc *usecase.ProgressUsecase
}

type courseRequest struct {
	Career      string `json:"career"`
	CourseTitle string `json:"course_title"`
}

func NewProgressHandler(uc *usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/enroll", h.Enroll)
	r.Post("/complete", h.Complete)
}

func (h *ProgressHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.List(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProgressList(items))
}

func (h *ProgressHandler) Enroll(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req courseRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request payload", err)
	}

	p, err := h.uc.Enroll(c.Context(), userID, req.Career, req.CourseTitle)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProgressResponse(p))
}

func (h *ProgressHandler) Complete(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req courseRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest("Invalid request payload", err)
	}

	p, err := h.uc.Complete(c.Context(), userID, req.Career, req.CourseTitle)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProgressResponse(p))
}
