package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saarthi-bank/saarthi-assistant/internal/faq"
)

// RegisterFaqRoutes wires the FAQ endpoint.
func RegisterFaqRoutes(r fiber.Router, h *faq.Handler) {
	r.Post("/faq/ask", h.Ask)
}
