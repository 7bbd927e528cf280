package serviceimpl

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"questgen/domain/dto"
	"questgen/domain/models"
	"questgen/domain/repositories"
	"questgen/domain/services"
	"questgen/pkg/apperrors"
	"questgen/pkg/logger"
)

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	userTaskRepo repositories.UserTaskRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	userTaskRepo repositories.UserTaskRepository,
) services.UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		userTaskRepo: userTaskRepo,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		TelegramID: req.TelegramID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WarnContext(ctx, "Telegram ID already registered", "telegram_id", req.TelegramID)
			return nil, apperrors.AlreadyExists("User already exists")
		}
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "User created", "user_id", user.ID, "telegram_id", user.TelegramID)
	return user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User not found")
		}
		logger.ErrorContext(ctx, "Failed to get user", "user_id", id, "error", err)
		return nil, apperrors.Database(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "User not found for update", "user_id", id)
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Database(err)
	}

	// อัปเดตเฉพาะ field ที่ส่งมา
	if req.TelegramID != nil {
		user.TelegramID = *req.TelegramID
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WarnContext(ctx, "Telegram ID already registered", "telegram_id", user.TelegramID)
			return nil, apperrors.AlreadyExists("User already exists")
		}
		logger.ErrorContext(ctx, "Failed to update user", "user_id", id, "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "User updated", "user_id", id)
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "User not found for deletion", "user_id", id)
			return apperrors.NotFound("User not found")
		}
		return apperrors.Database(err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", id, "error", err)
		return apperrors.Database(err)
	}

	logger.InfoContext(ctx, "User deleted", "user_id", id)
	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, filter *dto.UserFilter) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, apperrors.Database(err)
	}
	return users, nil
}

func (s *UserServiceImpl) GetTasks(ctx context.Context, telegramID int64, status string) ([]*models.UserTask, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "User not found", "telegram_id", telegramID)
			return nil, apperrors.NotFound("User not found")
		}
		return nil, apperrors.Database(err)
	}

	userTasks, err := s.userTaskRepo.ListByUser(ctx, user.ID, status)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list user tasks", "user_id", user.ID, "error", err)
		return nil, apperrors.Database(err)
	}
	return userTasks, nil
}
