package middleware

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// MpinRateLimit caps MPIN verification attempts per user per minute using
// Redis if available. Fail-open: cache errors never block the request.
func MpinRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without Redis
		}
		subject, _ := c.Locals("user_id").(string)
		if subject == "" {
			subject = c.IP()
		}
		key := "rl:mpin:" + subject
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many mpin attempts, try again later")
		}
		return c.Next()
	}
}
