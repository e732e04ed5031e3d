package handler

import (
	"context"
	"time"

	"careergps/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const healthCheckTimeout = 2 * time.Second

// Check reports whether an optional dependency is reachable.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]Check
}

func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

// Health always answers 200 while the process serves traffic. Dependency
// state is reported per check.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	deps := make(map[string]string, len(h.checks))
	if len(h.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Context(), healthCheckTimeout)
		defer cancel()
		for name, check := range h.checks {
			if err := check(ctx); err != nil {
				deps[name] = "down"
				continue
			}
			deps[name] = "up"
		}
	}

	data := map[string]any{
		"status":       "ok",
		"dependencies": deps,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
