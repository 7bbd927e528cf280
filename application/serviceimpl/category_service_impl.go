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

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name: req.Name,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WarnContext(ctx, "Category name already exists", "name", req.Name)
			return nil, apperrors.AlreadyExists("Category already exists")
		}
		logger.ErrorContext(ctx, "Failed to create category", "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Category not found")
		}
		logger.ErrorContext(ctx, "Failed to get category", "category_id", id, "error", err)
		return nil, apperrors.Database(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, id uint, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Category not found for update", "category_id", id)
			return nil, apperrors.NotFound("Category not found")
		}
		return nil, apperrors.Database(err)
	}

	// อัปเดตเฉพาะ field ที่ส่งมา
	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.WarnContext(ctx, "Category name already exists", "name", category.Name)
			return nil, apperrors.AlreadyExists("Category already exists")
		}
		logger.ErrorContext(ctx, "Failed to update category", "category_id", id, "error", err)
		return nil, apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Category updated", "category_id", id)
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WarnContext(ctx, "Category not found for deletion", "category_id", id)
			return apperrors.NotFound("Category not found")
		}
		return apperrors.Database(err)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return apperrors.Database(err)
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, apperrors.Database(err)
	}
	return categories, nil
}
