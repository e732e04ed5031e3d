package handler

import (
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type VisitorHandler struct {
	uc *usecase.VisitorUsecase
}

func NewVisitorHandler(uc *usecase.VisitorUsecase) *VisitorHandler {
	return &VisitorHandler{uc: uc}
}

func (h *VisitorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/visitor-count", h.Hit)
}

func (h *VisitorHandler) Hit(c fiber.Ctx) error {
	n := h.uc.Hit(c.Context())
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]int64{"count": n})
}
