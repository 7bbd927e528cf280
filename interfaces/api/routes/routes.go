package routes

import (
	"github.com/gofiber/fiber/v2"

	"questgen/interfaces/api/handlers"
	"questgen/pkg/utils"
)

// Options ของการ wiring routes
type Options struct {
	// RateLimiter ใส่หน้า endpoint ที่เรียก AI (nil = ปิด)
	RateLimiter fiber.Handler
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	SetupCategoryRoutes(api, h)
	SetupTaskRoutes(api, h, opts.RateLimiter)
	SetupUserRoutes(api, h)

	// unknown route → 404 เสมอ ต้องอยู่หลัง route อื่นทั้งหมด
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "Route not found")
	})
}
