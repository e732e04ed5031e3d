package app

import (
	"context"
	"fmt"
	"strings"

	"careergps/internal/config"
	"careergps/internal/delivery/http/handler"
	"careergps/internal/delivery/http/middleware"
	"careergps/internal/delivery/http/routes"
	v1 "careergps/internal/delivery/http/routes/v1"
	"careergps/internal/logger"
	"careergps/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP app over an initialised container.
func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	registerGlobalMiddleware(f, c.Log)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container and the app and starts the websocket hub.
// The returned cleanup stops the hub and closes connections.
func Bootstrap(ctx context.Context, cfg config.Config, log logger.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return New(c), cleanup, nil
}

// registerGlobalMiddleware installs the error renderer innermost so the
// access log and metrics see the final status.
func registerGlobalMiddleware(app *fiber.App, log logger.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.Metrics())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	checks := map[string]handler.Check{}
	if c.DB != nil {
		checks["database"] = c.DB.Ping
	}
	if c.Cache != nil && c.Cache.Available() {
		checks["redis"] = c.Cache.Ping
	}

	api := v1.Handlers{
		Recommendation: handler.NewRecommendationHandler(c.Recommendation),
		Skills:         handler.NewSkillsHandler(c.Skills),
		Resume:         handler.NewResumeHandler(c.Resume, c.Config.Resume.MaxBytes),
		Content:        handler.NewContentHandler(c.Content),
	}
	if c.Auth != nil {
		api.Auth = handler.NewAuthHandler(c.Auth)
		api.User = handler.NewUserHandler(c.User)
		api.Assessment = handler.NewAssessmentHandler(c.Assessment)
		api.Progress = handler.NewProgressHandler(c.Progress)
		api.AuthMw = middleware.NewAuthMiddleware(c.JWT)
	}

	routes.NewRegistry(
		handler.NewHealthHandler(checks),
		handler.NewVisitorHandler(c.Visitor),
		ws.NewHandler(c.Hub, c.Visitor, c.Log),
		api,
		middleware.NewRateLimiter(c.Config.Server.RateLimitRPS, c.Config.Server.RateLimitBurst),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
