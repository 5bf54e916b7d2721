package reminder

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes reminder endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a reminder handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the caller's reminders.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing user identity")
	}

	reminders, err := h.service.ListByUser(c.UserContext(), userID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "failed to fetch reminders")
	}
	if reminders == nil {
		reminders = []Reminder{}
	}

	return c.JSON(fiber.Map{"success": true, "reminders": reminders})
}
