package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saarthi-bank/saarthi-assistant/internal/user"
)

// RegisterUserRoutes wires MPIN management endpoints.
func RegisterUserRoutes(r fiber.Router, h *user.Handler, mpinLimiter fiber.Handler) {
	r.Post("/users/mpin", h.SetMpin)
	r.Post("/users/verify-mpin", mpinLimiter, h.VerifyMpin)
}
