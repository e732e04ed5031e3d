package v1

import (
	"careergps/internal/delivery/http/handler"
	"careergps/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Handlers groups the /api/v1 handlers. The account handlers and Auth are
// nil when persistence is disabled.
type Handlers struct {
	Recommendation *handler.RecommendationHandler
	Skills         *handler.SkillsHandler
	Resume         *handler.ResumeHandler
	Content        *handler.ContentHandler

	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Assessment *handler.AssessmentHandler
	Progress   *handler.ProgressHandler
	AuthMw     *middleware.AuthMiddleware
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	RegisterContent(r, h)

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if h.AuthMw != nil {
		RegisterMe(r.Group("/me", h.AuthMw.Middleware()), h.User, h.Assessment, h.Progress)
	}
}
