package handlers

import (
	"github.com/gofiber/fiber/v2"

	"questgen/domain/dto"
	"questgen/domain/services"
	"questgen/pkg/logger"
	"questgen/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// Create สร้าง category ใหม่
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

// List ดึง categories ทั้งหมด
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.UserContext())
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryListResponse{
		Categories: dto.CategoriesToCategoryResponses(categories),
	})
}

// GetByID ดึง category ตาม ID
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	category, err := h.categoryService.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Update อัปเดต category (partial)
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

// Delete ลบ category, tasks ใต้มันหายตาม cascade
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return utils.NoContentResponse(c)
}

// parseIDParam อ่าน :id แบบ positive integer
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
