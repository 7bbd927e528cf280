package routes

import (
	"github.com/gofiber/fiber/v2"

	"questgen/interfaces/api/handlers"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers) {
	categories := api.Group("/categories")

	categories.Post("/", h.CategoryHandler.Create)
	categories.Get("/", h.CategoryHandler.List)
	categories.Get("/:id", h.CategoryHandler.GetByID)
	categories.Put("/:id", h.CategoryHandler.Update)
	categories.Delete("/:id", h.CategoryHandler.Delete)
}
