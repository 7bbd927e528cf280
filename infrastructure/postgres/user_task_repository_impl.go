package postgres

import (
	"context"

	"gorm.io/gorm"

	"questgen/domain/models"
	"questgen/domain/repositories"
)

type UserTaskRepositoryImpl struct {
	db *gorm.DB
}

func NewUserTaskRepository(db *gorm.DB) repositories.UserTaskRepository {
	return &UserTaskRepositoryImpl{db: db}
}

func (r *UserTaskRepositoryImpl) Create(ctx context.Context, userTask *models.UserTask) error {
	return r.db.WithContext(ctx).Create(userTask).Error
}

func (r *UserTaskRepositoryImpl) GetByTaskAndUser(ctx context.Context, taskID, userID uint) (*models.UserTask, error) {
	var userTask models.UserTask
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Order("id DESC").
		First(&userTask).Error
	if err != nil {
		return nil, err
	}
	return &userTask, nil
}

func (r *UserTaskRepositoryImpl) Update(ctx context.Context, userTask *models.UserTask) error {
	return r.db.WithContext(ctx).Save(userTask).Error
}

func (r *UserTaskRepositoryImpl) ListByUser(ctx context.Context, userID uint, status string) ([]*models.UserTask, error) {
	query := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Task.Category").
		Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var userTasks []*models.UserTask
	err := query.Order("id ASC").Find(&userTasks).Error
	return userTasks, err
}
