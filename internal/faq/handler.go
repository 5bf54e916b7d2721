package faq

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/saarthi-bank/saarthi-assistant/internal/locale"
)

// Handler exposes the FAQ endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs a FAQ handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type askRequest struct {
	QueryText string `json:"queryText"`
	Language  string `json:"language"`
}

// Ask answers a free-form banking question via the FAQ engine.
func (h *Handler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.QueryText == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"answer":  "Please provide a question",
		})
	}

	answer, found := h.service.Ask(c.UserContext(), req.QueryText, locale.Parse(req.Language))

	payload := fiber.Map{"success": found, "answer": answer.Answer}
	if found {
		payload["confidence"] = answer.Confidence
	}
	return c.JSON(payload)
}
