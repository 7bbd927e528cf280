package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
)

// SecurityHeadersMiddleware ใส่ security headers มาตรฐาน (nosniff, frame deny, ฯลฯ)
func SecurityHeadersMiddleware() fiber.Handler {
	return helmet.New(helmet.Config{
		XFrameOptions:      "DENY",
		ContentTypeNosniff: "nosniff",
		ReferrerPolicy:     "no-referrer",
	})
}
