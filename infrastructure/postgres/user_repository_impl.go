package postgres

import (
	"context"

	"gorm.io/gorm"

	"questgen/domain/dto"
	"questgen/domain/models"
	"questgen/domain/repositories"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	// assignments ของ user หายตามด้วย FK cascade
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}).Error
}

func (r *UserRepositoryImpl) List(ctx context.Context, filter *dto.UserFilter) ([]*models.User, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})
	if filter != nil {
		if filter.TelegramID != nil {
			query = query.Where("telegram_id = ?", *filter.TelegramID)
		}
		if filter.Username != nil {
			query = query.Where("username = ?", *filter.Username)
		}
	}

	var users []*models.User
	err := query.Order("id ASC").Find(&users).Error
	return users, err
}
