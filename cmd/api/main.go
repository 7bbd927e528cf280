package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"questgen/interfaces/api/handlers"
	"questgen/interfaces/api/middleware"
	"questgen/interfaces/api/routes"
	"questgen/pkg/di"
	"questgen/pkg/logger"
)

func main() {
	// Initialize DI container
	container := di.NewContainer()
	if err := container.Initialize(); err != nil {
		// logger อาจยังไม่ init
		panic("Failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	cfg := container.GetConfig()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      cfg.App.Name,
	})

	// Setup middleware (order matters!)
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.SecurityHeadersMiddleware())
	app.Use(middleware.CorsMiddleware(cfg.CORS.AllowOrigins))

	h := handlers.NewHandlers(container.GetHandlerServices())

	var rateLimiter fiber.Handler
	if container.RedisClient != nil {
		rateLimiter = middleware.RateLimitMiddleware(container.RedisClient, cfg.RateLimit)
	}

	routes.SetupRoutes(app, h, routes.Options{RateLimiter: rateLimiter})

	logger.Info("Server starting",
		"port", cfg.App.Port,
		"env", cfg.App.Env,
		"app", cfg.App.Name,
	)

	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		logger.Info("Shutdown complete")
		os.Exit(0)
	}()
}
