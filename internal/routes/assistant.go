package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saarthi-bank/saarthi-assistant/internal/assistant"
)

// RegisterAssistantRoutes wires the voice-assistant endpoints. Ask accepts the
// user id in the request body (the UI calls it before step-up); completion and
// history require an authenticated caller.
func RegisterAssistantRoutes(r fiber.Router, h *assistant.Handler, jwtmw fiber.Handler, mpinLimiter fiber.Handler) {
	r.Post("/assistant/ask", h.Ask)
	r.Post("/assistant/complete-sensitive", jwtmw, mpinLimiter, h.CompleteSensitive)
	r.Get("/assistant/history", jwtmw, h.History)
}
