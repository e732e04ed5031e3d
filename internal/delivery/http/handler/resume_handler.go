package handler

import (
	"io"

	"careergps/internal/delivery/http/dto"
	"careergps/internal/pkg/response"
	"careergps/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc       *usecase.ResumeUsecase
	maxBytes int64
}

func NewResumeHandler(uc *usecase.ResumeUsecase, maxBytes int64) *ResumeHandler {
	return &ResumeHandler{uc: uc, maxBytes: maxBytes}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/analyze", h.Analyze)
}

// Analyze expects multipart fields "file" and "career".
func (h *ResumeHandler) Analyze(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest("file is required", err)
	}

	f, err := fh.Open()
	if err != nil {
		return badRequest("file could not be opened", err)
	}
	defer f.Close()

	var src io.Reader = f
	if h.maxBytes > 0 {
		// one byte over the limit is enough for the usecase to reject it
		src = io.LimitReader(f, h.maxBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return badRequest("file could not be read", err)
	}

	rep, err := h.uc.Analyze(c.Context(), usecase.ResumeFile{
		Name: fh.Filename,
		MIME: fh.Header.Get(fiber.HeaderContentType),
		Data: data,
	}, c.FormValue("career"))
	if err != nil {
		return mapUsecaseError(err, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeResponse(rep))
}
