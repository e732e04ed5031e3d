package v1

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterContent mounts the routes that need neither a database nor a user.
func RegisterContent(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r)
	}
	if h.Skills != nil {
		h.Skills.RegisterRoutes(r.Group("/skills"))
	}
	if h.Resume != nil {
		h.Resume.RegisterRoutes(r.Group("/resume"))
	}
	if h.Content != nil {
		h.Content.RegisterRoutes(r.Group("/careers"))
	}
}
