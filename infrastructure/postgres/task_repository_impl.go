package postgres

import (
	"context"

	"gorm.io/gorm"

	"questgen/domain/models"
	"questgen/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) CreateWithAssignment(ctx context.Context, task *models.Task, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		userTask := &models.UserTask{
			UserID: userID,
			TaskID: task.ID,
			Status: models.UserTaskStatusAssigned,
		}
		return tx.Create(userTask).Error
	})
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uint) error {
	// assignments ของ task หายตามด้วย FK cascade
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}

func (r *TaskRepositoryImpl) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("Category").Order("id ASC").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListByCategory(ctx context.Context, categoryID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Preload("Category").
		Where("category_id = ?", categoryID).
		Find(&tasks).Error
	return tasks, err
}
