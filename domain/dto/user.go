package dto

import "time"

// === Requests ===

type CreateUserRequest struct {
	TelegramID int64  `json:"telegram_id" validate:"required"`
	Username   string `json:"username" validate:"omitempty,max=100"`
	FirstName  string `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string `json:"last_name" validate:"omitempty,max=100"`
}

type UpdateUserRequest struct {
	TelegramID *int64  `json:"telegram_id"`
	Username   *string `json:"username" validate:"omitempty,max=100"`
	FirstName  *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"last_name" validate:"omitempty,max=100"`
}

// UserFilter เงื่อนไขกรอง user list (query params)
type UserFilter struct {
	TelegramID *int64
	Username   *string
}

// === Responses ===

type UserResponse struct {
	ID         uint   `json:"id"`
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name,omitempty"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserTaskResponse หนึ่งแถวจาก join user_tasks × tasks × categories
type UserTaskResponse struct {
	TaskID       uint       `json:"task_id"`
	Description  string     `json:"description"`
	CategoryName string     `json:"category_name"`
	Status       string     `json:"status"`
	AssignedAt   time.Time  `json:"assigned_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

type UserTaskListResponse struct {
	Tasks []UserTaskResponse `json:"tasks"`
}
