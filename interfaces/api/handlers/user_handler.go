package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"questgen/domain/dto"
	"questgen/domain/services"
	"questgen/pkg/logger"
	"questgen/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create ลงทะเบียน user ใหม่ด้วย telegram_id
func (h *UserHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Create(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.UserToUserResponse(user))
}

// List ดึง users ทั้งหมด รองรับกรองด้วย ?telegram_id= และ ?username=
func (h *UserHandler) List(c *fiber.Ctx) error {
	filter := &dto.UserFilter{}

	if raw := c.Query("telegram_id"); raw != "" {
		telegramID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid telegram_id filter")
		}
		filter.TelegramID = &telegramID
	}
	if username := c.Query("username"); username != "" {
		filter.Username = &username
	}

	users, err := h.userService.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.UserListResponse{
		Users: dto.UsersToUserResponses(users),
	})
}

// GetByID ดึง user ตาม ID
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userService.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// Update อัปเดต user (partial)
func (h *UserHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Update(ctx, id, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// Delete ลบ user, assignments ของเขาหายตาม cascade
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	if err := h.userService.Delete(c.UserContext(), id); err != nil {
		return err
	}

	return utils.NoContentResponse(c)
}

// GetTasks ดึง assignments ของ user ตาม telegram_id
// ?status=assigned|completed กรองได้ (optional)
func (h *UserHandler) GetTasks(c *fiber.Ctx) error {
	telegramID, err := strconv.ParseInt(c.Params("telegram_id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid telegram ID")
	}

	status := c.Query("status")

	userTasks, err := h.userService.GetTasks(c.UserContext(), telegramID, status)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.UserTaskListResponse{
		Tasks: dto.UserTasksToUserTaskResponses(userTasks),
	})
}
