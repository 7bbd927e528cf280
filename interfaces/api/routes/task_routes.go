package routes

import (
	"github.com/gofiber/fiber/v2"

	"questgen/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, rateLimiter fiber.Handler) {
	tasks := api.Group("/tasks")

	// workflow endpoints ต้องมาก่อน /:id ไม่งั้น "generate" โดน parse เป็น id
	if rateLimiter != nil {
		tasks.Post("/generate", rateLimiter, h.TaskHandler.Generate)
	} else {
		tasks.Post("/generate", h.TaskHandler.Generate)
	}
	tasks.Post("/get", h.TaskHandler.AssignExisting)

	tasks.Post("/", h.TaskHandler.Create)
	tasks.Get("/", h.TaskHandler.List)
	tasks.Get("/:id", h.TaskHandler.GetByID)
	tasks.Put("/:id", h.TaskHandler.Update)
	tasks.Delete("/:id", h.TaskHandler.Delete)
	tasks.Post("/:id/complete", h.TaskHandler.Complete)
}
