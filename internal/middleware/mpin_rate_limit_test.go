package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func setupRateLimitApp(t *testing.T, maxPerMin int) (*fiber.App, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-1")
		return c.Next()
	})
	app.Use(MpinRateLimit(cache, maxPerMin))
	app.Post("/verify", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	return app, mr
}

func hitVerify(t *testing.T, app *fiber.App) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/verify", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestMpinRateLimitAllowsUnderLimit(t *testing.T) {
	app, _ := setupRateLimitApp(t, 3)

	for i := 0; i < 3; i++ {
		if status := hitVerify(t, app); status != fiber.StatusOK {
			t.Fatalf("attempt %d: expected %d got %d", i+1, fiber.StatusOK, status)
		}
	}
}

func TestMpinRateLimitBlocksBeyondLimit(t *testing.T) {
	app, _ := setupRateLimitApp(t, 3)

	for i := 0; i < 3; i++ {
		hitVerify(t, app)
	}
	if status := hitVerify(t, app); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected %d got %d", fiber.StatusTooManyRequests, status)
	}
}

func TestMpinRateLimitResetsAfterWindow(t *testing.T) {
	app, mr := setupRateLimitApp(t, 2)

	hitVerify(t, app)
	hitVerify(t, app)
	if status := hitVerify(t, app); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected %d got %d", fiber.StatusTooManyRequests, status)
	}

	mr.FastForward(61 * time.Second)

	if status := hitVerify(t, app); status != fiber.StatusOK {
		t.Fatalf("expected %d after window reset, got %d", fiber.StatusOK, status)
	}
}

func TestMpinRateLimitWithoutCacheIsNoop(t *testing.T) {
	app := fiber.New()
	app.Use(MpinRateLimit(nil, 1))
	app.Post("/verify", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/verify", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected %d got %d", fiber.StatusOK, resp.StatusCode)
		}
	}
}
