package handler

import (
	"strconv"
	"strings"

	"careergps/internal/delivery/http/dto"
	"careergps/internal/domain/recommendation"
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc *usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc *usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/recommendations", h.Recommend)
	r.Post("/predict", h.Predict)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	topN := 0
	if raw := strings.TrimSpace(c.Query("top_n")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return badRequest("top_n must be a positive integer", err)
		}
		topN = n
	}

	p := recommendation.DecodeProfile(c.Body())

	scores, err := h.uc.Recommend(c.Context(), p, topN)
	if err != nil {
		return mapUsecaseError(err, nil)
	}

	res := dto.RecommendationResponse{Recommendations: dto.NewCareerScores(scores)}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *RecommendationHandler) Predict(c fiber.Ctx) error {
	p := recommendation.DecodeProfile(c.Body())

	preds, err := h.uc.Predict(c.Context(), p)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPredictResponse(preds))
}
