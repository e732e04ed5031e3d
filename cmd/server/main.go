package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careergps/internal/app"
	"careergps/internal/config"
	"careergps/internal/logger"

	"github.com/gofiber/fiber/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logger.NewStructured(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = lg.Sync() }()

	bootstrap, cleanup, err := app.Bootstrap(context.Background(), cfg, lg)
	if err != nil {
		lg.Error("failed to bootstrap app", map[string]interface{}{"error": err})
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			lg.Warn("cleanup error", map[string]interface{}{"error": err})
		}
	}()

	addr, err := app.ListenAddr(cfg.Server.Port)
	if err != nil {
		lg.Error("invalid HTTP port", map[string]interface{}{"error": err})
		return
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("http server listening", map[string]interface{}{"addr": addr})
		errCh <- bootstrap.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			lg.Error("server error", map[string]interface{}{"error": err})
		}
	case sig := <-sigCh:
		lg.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			lg.Warn("shutdown error", map[string]interface{}{"error": err})
		}
	}
}
