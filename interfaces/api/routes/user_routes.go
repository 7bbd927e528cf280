package routes

import (
	"github.com/gofiber/fiber/v2"

	"questgen/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users")

	users.Post("/", h.UserHandler.Create)
	users.Get("/", h.UserHandler.List)
	users.Get("/:id", h.UserHandler.GetByID)
	users.Put("/:id", h.UserHandler.Update)
	users.Delete("/:id", h.UserHandler.Delete)

	// lookup ด้วย telegram_id ไม่ใช่ internal id
	users.Get("/:telegram_id/tasks", h.UserHandler.GetTasks)
}
