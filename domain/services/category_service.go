package services

import (
	"context"

	"questgen/domain/dto"
	"questgen/domain/models"
)

type CategoryService interface {
	// Create สร้าง category ใหม่, ชื่อซ้ำคือ AlreadyExists
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)

	// GetByID ดึง category ตาม ID
	GetByID(ctx context.Context, id uint) (*models.Category, error)

	// Update อัปเดตเฉพาะ field ที่ส่งมา
	Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*models.Category, error)

	// Delete ลบ category พร้อม cascade ไปยัง tasks ของมัน
	Delete(ctx context.Context, id uint) error

	// List ดึง categories ทั้งหมด
	List(ctx context.Context) ([]*models.Category, error)
}
