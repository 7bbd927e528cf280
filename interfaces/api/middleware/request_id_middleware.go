package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"questgen/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware สร้าง request ID สำหรับทุก request
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// ใช้ request ID จาก client ถ้าส่งมา
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)

		// ใส่ request ID ใน context สำหรับ logging
		ctx := logger.ContextWithRequestID(c.Context(), requestID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}
