package dto

// === Requests ===

type CreateTaskRequest struct {
	Description string `json:"description" validate:"required,min=1,max=500"`
	Category    string `json:"category" validate:"required,min=1,max=80"`
}

type UpdateTaskRequest struct {
	Description *string `json:"description" validate:"omitempty,min=1,max=500"`
	Category    *string `json:"category" validate:"omitempty,min=1,max=80"`
}

// GenerateTaskRequest สำหรับ /tasks/generate และ /tasks/get
// category ว่าง = สุ่ม category ให้
type GenerateTaskRequest struct {
	TelegramID int64  `json:"telegram_id" validate:"required"`
	Category   string `json:"category" validate:"omitempty,max=80"`
}

type CompleteTaskRequest struct {
	TelegramID int64 `json:"telegram_id" validate:"required"`
}

// === Responses ===

type TaskResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
