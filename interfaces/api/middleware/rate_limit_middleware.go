package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"questgen/pkg/config"
	"questgen/pkg/logger"
	"questgen/pkg/utils"
)

const ClientIDHeader = "X-Client-ID"

// RateLimitStore คือ counter backend ของ rate limiter (production ใช้ Redis)
type RateLimitStore interface {
	// IncrWithWindow เพิ่ม counter ของ key และเริ่ม window เมื่อเป็น hit แรก
	IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	// TTL คืนเวลาที่เหลือก่อน window หมดอายุ
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// RateLimitMiddleware จำกัด request ต่อ key ต่อ window แบบ fixed window
// ใช้หน้า endpoint ที่เรียก external AI เพื่อคุมค่าใช้จ่าย
// key มาจาก X-Client-ID header (เช่น telegram_id ของ bot) fallback เป็น IP
func RateLimitMiddleware(store RateLimitStore, cfg config.RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(ClientIDHeader)
		if key == "" {
			key = c.IP()
		}
		storeKey := fmt.Sprintf("ratelimit:%s:%s", c.Route().Path, key)

		ctx := c.UserContext()
		count, err := store.IncrWithWindow(ctx, storeKey, cfg.Window)
		if err != nil {
			// store ล่มไม่ควรทำให้ service ล่ม, fail open
			logger.WarnContext(ctx, "Rate limiter unavailable, allowing request", "error", err)
			return c.Next()
		}

		if count > cfg.Max {
			ttl, _ := store.TTL(ctx, storeKey)
			logger.WarnContext(ctx, "Rate limit exceeded", "key", key, "count", count)
			return utils.TooManyRequestsResponse(c, fiber.Map{
				"limit":         cfg.Max,
				"window":        cfg.Window.String(),
				"retry_after_s": int(ttl.Seconds()),
			})
		}

		return c.Next()
	}
}
