package routes

import (
	"careergps/internal/delivery/http/handler"
	"careergps/internal/delivery/http/middleware"
	v1 "careergps/internal/delivery/http/routes/v1"
	"careergps/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	health  *handler.HealthHandler
	visitor *handler.VisitorHandler
	ws      *ws.Handler
	api     v1.Handlers
	limiter *middleware.RateLimiter
}

// NewRegistry takes optional handlers. Nil ones are not mounted.
func NewRegistry(health *handler.HealthHandler, visitor *handler.VisitorHandler, wsHandler *ws.Handler, api v1.Handlers, limiter *middleware.RateLimiter) *Registry {
	if health == nil {
		health = handler.NewHealthHandler(nil)
	}
	return &Registry{health: health, visitor: visitor, ws: wsHandler, api: api, limiter: limiter}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerPublic(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (r *Registry) registerPublic(app *fiber.App) {
	if r.visitor != nil {
		r.visitor.RegisterRoutes(app)
	}
	if r.ws != nil {
		app.Get("/ws/visitors", r.ws.HandleVisitors)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	if r.limiter != nil {
		RegisterV1(api.Group("/v1", r.limiter.Middleware()), r.api)
		return
	}
	RegisterV1(api.Group("/v1"), r.api)
}
