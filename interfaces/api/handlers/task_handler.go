package handlers

import (
	"github.com/gofiber/fiber/v2"

	"questgen/domain/dto"
	"questgen/domain/services"
	"questgen/pkg/logger"
	"questgen/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create สร้าง task ใหม่ (category ระบุด้วยชื่อ)
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, task)
}

// List ดึง tasks ทั้งหมดพร้อมชื่อ category
func (h *TaskHandler) List(c *fiber.Ctx) error {
	tasks, err := h.taskService.List(c.UserContext())
	if err != nil {
		return err
	}

	responses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *task
	}
	return utils.SuccessResponse(c, dto.TaskListResponse{Tasks: responses})
}

// GetByID ดึง task ตาม ID
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	task, err := h.taskService.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, task)
}

// Update อัปเดต task (partial)
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, task)
}

// Delete ลบ task
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	if err := h.taskService.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return utils.NoContentResponse(c)
}

// Generate สร้าง task ใหม่ผ่าน AI แล้ว assign ให้ user
func (h *TaskHandler) Generate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.GenerateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.Generate(ctx, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, task)
}

// AssignExisting สุ่ม task ที่มีอยู่แล้วมา assign ไม่เรียก AI
func (h *TaskHandler) AssignExisting(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.GenerateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	task, err := h.taskService.AssignExisting(ctx, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, task)
}

// Complete ปิด assignment ของ (task, user)
func (h *TaskHandler) Complete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID")
	}

	var req dto.CompleteTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.taskService.Complete(ctx, id, &req); err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Task completed successfully"})
}
