package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"questgen/domain/dto"
	"questgen/domain/models"
	"questgen/domain/ports"
	"questgen/domain/repositories"
	"questgen/domain/services"
	"questgen/pkg/apperrors"
	"questgen/pkg/logger"
	"questgen/pkg/utils"
)

type TaskServiceImpl struct {
	taskRepo     repositories.TaskRepository
	categoryRepo repositories.CategoryRepository
	userRepo     repositories.UserRepository
	userTaskRepo repositories.UserTaskRepository
	generator    ports.TaskGeneratorPort
	genTimeout   time.Duration
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	categoryRepo repositories.CategoryRepository,
	userRepo repositories.UserRepository,
	userTaskRepo repositories.UserTaskRepository,
	generator ports.TaskGeneratorPort,
	genTimeout time.Duration,
) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		userTaskRepo: userTaskRepo,
		generator:    generator,
		genTimeout:   genTimeout,
	}
}

func (s *TaskServiceImpl) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	category, err := s.resolveCategoryByName(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Description: req.Description,
		CategoryID:  category.ID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "category", category.Name)
	return &dto.TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Category:    category.Name,
	}, nil
}

func (s *TaskServiceImpl) GetByID(ctx context.Context, id uint) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Task not found")
		}
		logger.ErrorContext(ctx, "Failed to get task", "task_id", id, "error", err)
		return nil, apperrors.Database(err)
	}

	response := dto.TaskToTaskResponse(task)
	return &response, nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Task not found for update", "task_id", id)
			return nil, apperrors.NotFound("Task not found")
		}
		return nil, apperrors.Database(err)
	}

	// อัปเดตเฉพาะ field ที่ส่งมา
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategoryByName(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		task.CategoryID = category.ID
	}

	// เคลียร์ association ที่ preload มา ให้ Save แตะเฉพาะ tasks row
	task.Category = models.Category{}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", id, "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Task updated", "task_id", id)
	return s.GetByID(ctx, id)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Task not found for deletion", "task_id", id)
			return apperrors.NotFound("Task not found")
		}
		return apperrors.Database(err)
	}

	if err := s.taskRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", id, "error", err)
		return apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", id)
	return nil
}

func (s *TaskServiceImpl) List(ctx context.Context) ([]*dto.TaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, apperrors.Database(err)
	}

	responses := dto.TasksToTaskResponses(tasks)
	result := make([]*dto.TaskResponse, len(responses))
	for i := range responses {
		result[i] = &responses[i]
	}
	return result, nil
}

// Generate: resolve user → resolve category → เรียก generation service →
// commit task + assignment ใน transaction เดียว
func (s *TaskServiceImpl) Generate(ctx context.Context, req *dto.GenerateTaskRequest) (*dto.TaskResponse, error) {
	user, err := s.resolveUserByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return nil, err
	}

	category, err := s.resolveCategoryForAssignment(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	description, err := s.generator.GenerateTaskDescription(genCtx, category.Name)
	if err != nil {
		logger.ErrorContext(ctx, "Task generation failed", "category", category.Name, "error", err)
		return nil, apperrors.AIGeneration(err)
	}
	description = strings.TrimSpace(description)

	task := &models.Task{
		Description: description,
		CategoryID:  category.ID,
	}
	if err := s.taskRepo.CreateWithAssignment(ctx, task, user.ID); err != nil {
		logger.ErrorContext(ctx, "Failed to persist generated task", "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Task generated and assigned",
		"task_id", task.ID,
		"user_id", user.ID,
		"category", category.Name,
	)
	return &dto.TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Category:    category.Name,
	}, nil
}

// AssignExisting: สุ่ม task ใน category มา assign ให้ user ไม่เรียก AI
func (s *TaskServiceImpl) AssignExisting(ctx context.Context, req *dto.GenerateTaskRequest) (*dto.TaskResponse, error) {
	user, err := s.resolveUserByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return nil, err
	}

	category, err := s.resolveCategoryForAssignment(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks for category", "category_id", category.ID, "error", err)
		return nil, apperrors.Database(err)
	}

	task, ok := utils.PickRandom(tasks)
	if !ok {
		logger.WarnContext(ctx, "Category has no tasks", "category", category.Name)
		return nil, apperrors.NotFound("Task not found")
	}

	userTask := &models.UserTask{
		UserID: user.ID,
		TaskID: task.ID,
		Status: models.UserTaskStatusAssigned,
	}
	if err := s.userTaskRepo.Create(ctx, userTask); err != nil {
		logger.ErrorContext(ctx, "Failed to assign task", "task_id", task.ID, "user_id", user.ID, "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Existing task assigned",
		"task_id", task.ID,
		"user_id", user.ID,
		"category", category.Name,
	)
	return &dto.TaskResponse{
		ID:          task.ID,
		Description: task.Description,
		Category:    category.Name,
	}, nil
}

// Complete: เรียกซ้ำบน assignment ที่ completed แล้วได้ แค่ stamp เวลาใหม่
func (s *TaskServiceImpl) Complete(ctx context.Context, taskID uint, req *dto.CompleteTaskRequest) error {
	user, err := s.resolveUserByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return err
	}

	userTask, err := s.userTaskRepo.GetByTaskAndUser(ctx, taskID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Assignment not found", "task_id", taskID, "user_id", user.ID)
			return apperrors.NotFound("User task not found")
		}
		return apperrors.Database(err)
	}

	now := time.Now()
	userTask.Status = models.UserTaskStatusCompleted
	userTask.CompletedAt = &now

	if err := s.userTaskRepo.Update(ctx, userTask); err != nil {
		logger.ErrorContext(ctx, "Failed to complete task", "user_task_id", userTask.ID, "error", err)
		return apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Task completed", "task_id", taskID, "user_id", user.ID)
	return nil
}

// ========== Resolution helpers ==========

func (s *TaskServiceImpl) resolveUserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "User not found", "telegram_id", telegramID)
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Database(err)
	}
	return user, nil
}

func (s *TaskServiceImpl) resolveCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Category not found", "name", name)
			return nil, apperrors.NotFound("Category not found")
		}
		return nil, apperrors.Database(err)
	}
	return category, nil
}

// resolveCategoryForAssignment: ชื่อว่าง = สุ่มจากทั้งหมด, ไม่ว่าง = ต้องมีตัวตรงชื่อ
func (s *TaskServiceImpl) resolveCategoryForAssignment(ctx context.Context, name string) (*models.Category, error) {
	if name != "" {
		return s.resolveCategoryByName(ctx, name)
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	category, ok := utils.PickRandom(categories)
	if !ok {
		logger.WarnContext(ctx, "No categories to pick from")
		return nil, apperrors.NotFound("Category not found")
	}
	return category, nil
}
