package user

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes MPIN management endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a user handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type setMpinRequest struct {
	Mpin        string `json:"mpin"`
	ConfirmMpin string `json:"confirmMpin"`
}

// SetMpin validates and stores the caller's MPIN.
func (h *Handler) SetMpin(c *fiber.Ctx) error {
	var req setMpinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing user identity")
	}

	if err := h.service.SetMpin(c.UserContext(), userID, req.Mpin, req.ConfirmMpin); err != nil {
		switch {
		case errors.Is(err, ErrInvalidMpin):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "mPIN must be a 4-digit number",
			})
		case errors.Is(err, ErrMpinMismatch):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "mPIN and confirm mPIN do not match",
			})
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "user not found")
		default:
			return fiber.NewError(http.StatusInternalServerError, "failed to set mPIN")
		}
	}

	return c.JSON(fiber.Map{"success": true, "message": "mPIN set successfully!"})
}

type verifyMpinRequest struct {
	Mpin string `json:"mpin"`
}

// VerifyMpin checks the caller's MPIN without performing any action.
func (h *Handler) VerifyMpin(c *fiber.Ctx) error {
	var req verifyMpinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Mpin == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "mPIN is required",
		})
	}
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing user identity")
	}

	ok, err := h.service.VerifyMpin(c.UserContext(), userID, req.Mpin)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return fiber.NewError(http.StatusNotFound, "user not found")
		case errors.Is(err, ErrMpinNotSet):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "mPIN not set. Please set your mPIN first.",
			})
		default:
			return fiber.NewError(http.StatusInternalServerError, "failed to verify mPIN")
		}
	}
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"success":  false,
			"verified": false,
			"message":  "Incorrect mPIN",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"verified": true,
		"message":  "mPIN verified successfully",
	})
}
