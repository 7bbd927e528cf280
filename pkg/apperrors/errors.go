package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind ชนิดของ domain error ที่ layer บนสามารถ map เป็น HTTP status ได้
type Kind string

const (
	KindValidation    Kind = "validation"
	KindNotFound      Kind = "not_found"
	KindAlreadyExists Kind = "already_exists"
	KindDatabase      Kind = "database"
	KindAIGeneration  Kind = "ai_generation"
	KindInternal      Kind = "internal"
)

// Error คือ domain error เดียวที่ service layer ส่งออกมา
// ห้าม leak gorm/genai error ดิบออกไปนอก service
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause (ไม่ส่งให้ client)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status แปลง kind เป็น HTTP status code
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAlreadyExists:
		return fiber.StatusConflict
	default:
		// database, ai_generation, internal
		return fiber.StatusInternalServerError
	}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

func Database(err error) *Error {
	return &Error{Kind: KindDatabase, Message: "Database error", Err: err}
}

func AIGeneration(err error) *Error {
	return &Error{Kind: KindAIGeneration, Message: "Failed to generate task", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Unexpected error occurred", Err: err}
}

// As ดึง *Error ออกจาก error chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind ตรวจสอบว่า error เป็น kind ที่ระบุหรือไม่
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
