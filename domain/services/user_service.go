package services

import (
	"context"

	"questgen/domain/dto"
	"questgen/domain/models"
)

type UserService interface {
	// Create สร้าง user ใหม่, telegram_id ซ้ำคือ AlreadyExists
	Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)

	GetByID(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter *dto.UserFilter) ([]*models.User, error)

	// GetTasks ดึง assignments ของ user ตาม telegram_id
	// status ว่าง = เอาทุกสถานะ
	GetTasks(ctx context.Context, telegramID int64, status string) ([]*models.UserTask, error)
}
