package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ========== Response Structures ==========

type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ========== Error Code Constants ==========

const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeAIGeneration  = "AI_GENERATION_ERROR"
	ErrCodeRateLimited   = "RATE_LIMITED"
)

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Data:    data,
	})
}

func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Error Responses ==========

func ErrorResponse(c *fiber.Ctx, statusCode int, code, message string, details any) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func ValidationErrorResponse(c *fiber.Ctx, details any) error {
	return ErrorResponse(
		c,
		fiber.StatusBadRequest,
		ErrCodeValidation,
		"Validation failed",
		details,
	)
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(
		c,
		fiber.StatusBadRequest,
		ErrCodeBadRequest,
		message,
		nil,
	)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(
		c,
		fiber.StatusNotFound,
		ErrCodeNotFound,
		message,
		nil,
	)
}

func ConflictResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(
		c,
		fiber.StatusConflict,
		ErrCodeConflict,
		message,
		nil,
	)
}

func TooManyRequestsResponse(c *fiber.Ctx, details any) error {
	return ErrorResponse(
		c,
		fiber.StatusTooManyRequests,
		ErrCodeRateLimited,
		"Rate limit exceeded",
		details,
	)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(
		c,
		fiber.StatusInternalServerError,
		ErrCodeInternalError,
		"An unexpected error occurred. Please try again later.",
		nil,
	)
}
