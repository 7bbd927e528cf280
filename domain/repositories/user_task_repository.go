package repositories

import (
	"context"

	"questgen/domain/models"
)

type UserTaskRepository interface {
	Create(ctx context.Context, userTask *models.UserTask) error

	// GetByTaskAndUser หา assignment ล่าสุดของ (task, user)
	GetByTaskAndUser(ctx context.Context, taskID, userID uint) (*models.UserTask, error)

	Update(ctx context.Context, userTask *models.UserTask) error

	// ListByUser ดึง assignments ของ user พร้อม Task และ Category
	// status ว่าง = ไม่กรอง
	ListByUser(ctx context.Context, userID uint, status string) ([]*models.UserTask, error)
}
