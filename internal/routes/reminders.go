package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/saarthi-bank/saarthi-assistant/internal/reminder"
)

// RegisterReminderRoutes wires reminder endpoints.
func RegisterReminderRoutes(r fiber.Router, h *reminder.Handler) {
	r.Get("/reminders", h.List)
}
