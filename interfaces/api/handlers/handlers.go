package handlers

import (
	"questgen/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	CategoryService services.CategoryService
	TaskService     services.TaskService
	UserService     services.UserService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	CategoryHandler *CategoryHandler
	TaskHandler     *TaskHandler
	UserHandler     *UserHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		CategoryHandler: NewCategoryHandler(services.CategoryService),
		TaskHandler:     NewTaskHandler(services.TaskService),
		UserHandler:     NewUserHandler(services.UserService),
	}
}
