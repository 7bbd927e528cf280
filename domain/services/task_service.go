package services

import (
	"context"

	"questgen/domain/dto"
)

type TaskService interface {
	// Create สร้าง task โดย resolve ชื่อ category เป็น category_id
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)

	GetByID(ctx context.Context, id uint) (*dto.TaskResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*dto.TaskResponse, error)

	// Generate เรียก external generation service แล้วสร้าง task ใหม่
	// พร้อม assign ให้ user (task + assignment commit ใน transaction เดียว)
	Generate(ctx context.Context, req *dto.GenerateTaskRequest) (*dto.TaskResponse, error)

	// AssignExisting สุ่ม task ที่มีอยู่แล้วใน category มา assign ให้ user
	// ไม่แตะ generation service
	AssignExisting(ctx context.Context, req *dto.GenerateTaskRequest) (*dto.TaskResponse, error)

	// Complete ปิด assignment ของ (task, user) เรียกซ้ำได้ แค่ stamp เวลาใหม่
	Complete(ctx context.Context, taskID uint, req *dto.CompleteTaskRequest) error
}
