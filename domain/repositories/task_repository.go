package repositories

import (
	"context"

	"questgen/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error

	// CreateWithAssignment สร้าง task และ assignment ใน transaction เดียว
	// ใช้โดย generation workflow เพื่อไม่ให้เหลือ task กำพร้าเมื่อ assignment fail
	CreateWithAssignment(ctx context.Context, task *models.Task, userID uint) error

	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.Task, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]*models.Task, error)
}
