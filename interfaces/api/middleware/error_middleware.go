package middleware

import (
	"github.com/gofiber/fiber/v2"

	"questgen/pkg/apperrors"
	"questgen/pkg/logger"
	"questgen/pkg/utils"
)

// ErrorHandler แปลง error ทุกชนิดเป็น response เดียวกัน
// domain error (*apperrors.Error) map ตาม kind, ที่เหลือเป็น generic 500
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperrors.As(err); ok {
			return domainErrorResponse(c, appErr)
		}

		if e, ok := err.(*fiber.Error); ok {
			// fiber error เช่น 404 route, 405 method ส่ง message ตรงๆ ได้
			code := errCodeForStatus(e.Code)
			return utils.ErrorResponse(c, e.Code, code, e.Message, nil)
		}

		// unclassified, log รายละเอียดไว้ฝั่ง server เท่านั้น
		logger.ErrorContext(c.UserContext(), "Unexpected error", "error", err)
		return utils.InternalServerErrorResponse(c)
	}
}

func domainErrorResponse(c *fiber.Ctx, appErr *apperrors.Error) error {
	status := appErr.Status()

	// database / ai_generation / internal: ไม่ leak underlying cause ให้ client
	code := utils.ErrCodeInternalError
	message := appErr.Message
	switch appErr.Kind {
	case apperrors.KindValidation:
		code = utils.ErrCodeValidation
	case apperrors.KindNotFound:
		code = utils.ErrCodeNotFound
	case apperrors.KindAlreadyExists:
		code = utils.ErrCodeConflict
	case apperrors.KindAIGeneration:
		code = utils.ErrCodeAIGeneration
	case apperrors.KindDatabase, apperrors.KindInternal:
		logger.ErrorContext(c.UserContext(), "Internal error", "kind", appErr.Kind, "error", appErr)
	}

	return utils.ErrorResponse(c, status, code, message, nil)
}

func errCodeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return utils.ErrCodeBadRequest
	case fiber.StatusNotFound:
		return utils.ErrCodeNotFound
	case fiber.StatusConflict:
		return utils.ErrCodeConflict
	default:
		return utils.ErrCodeInternalError
	}
}
