package v1

import (
	"careergps/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterMe(r fiber.Router, userHandler *handler.UserHandler, assessmentHandler *handler.AssessmentHandler, progressHandler *handler.ProgressHandler) {
	if r == nil {
		return
	}

	if userHandler != nil {
		userHandler.RegisterRoutes(r)
	}
	if assessmentHandler != nil {
		assessmentHandler.RegisterRoutes(r.Group("/assessments"))
	}
	if progressHandler != nil {
		progressHandler.RegisterRoutes(r.Group("/progress"))
	}
}
