package handler

import (
	"net/url"
	"strings"

	"careergps/internal/delivery/http/dto"
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ContentHandler struct {
	uc *usecase.ContentUsecase
}

func NewContentHandler(uc *usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

func (h *ContentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Careers)
	r.Get("/:career/skills", h.Skills)
	r.Get("/:career/courses", h.Courses)
	r.Get("/:career/projects", h.Projects)
	r.Get("/:career/interview-questions", h.InterviewQuestions)
}

// careerParam decodes the path segment so "UI%2FUX%20Designer" resolves.
func careerParam(c fiber.Ctx) (string, error) {
	raw := c.Params("career")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", badRequest("Invalid career", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", badRequest("career is required", nil)
	}
	return name, nil
}

func (h *ContentHandler) Careers(c fiber.Ctx) error {
	res := dto.CareersResponse{Careers: h.uc.Careers(c.Context())}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ContentHandler) Skills(c fiber.Ctx) error {
	career, err := careerParam(c)
	if err != nil {
		return err
	}

	v, err := h.uc.Skills(c.Context(), career)
	if err != nil {
		return mapUsecaseError(err, nil)
	}

	res := dto.CareerSkillsResponse{
		Career:      v.Career,
		Skills:      v.Skills,
		AllRequired: v.AllRequired,
		Essential:   v.Essential,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ContentHandler) Courses(c fiber.Ctx) error {
	career, err := careerParam(c)
	if err != nil {
		return err
	}

	v, err := h.uc.Courses(c.Context(), career)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.CareerCoursesResponse{Career: v.Career, Courses: v.Levels})
}

func (h *ContentHandler) Projects(c fiber.Ctx) error {
	career, err := careerParam(c)
	if err != nil {
		return err
	}

	v, err := h.uc.Projects(c.Context(), career, c.Query("difficulty"))
	if err != nil {
		return mapUsecaseError(err, nil)
	}

	res := dto.CareerProjectsResponse{
		Career:     v.Career,
		Difficulty: string(v.Difficulty),
		Projects:   v.Projects,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *ContentHandler) InterviewQuestions(c fiber.Ctx) error {
	career, err := careerParam(c)
	if err != nil {
		return err
	}

	name, qs, err := h.uc.InterviewQuestions(c.Context(), career)
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.InterviewQuestionsResponse{Career: name, Questions: qs})
}
