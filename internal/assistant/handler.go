package assistant

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/saarthi-bank/saarthi-assistant/internal/history"
	"github.com/saarthi-bank/saarthi-assistant/internal/locale"
)

// Handler exposes the assistant endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs an assistant handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type askRequest struct {
	QueryText string `json:"queryText"`
	Language  string `json:"language"`
	UserID    string `json:"userId"`
}

// Ask processes one spoken or typed query.
func (h *Handler) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	userID := req.UserID
	if uid, _ := c.Locals("user_id").(string); uid != "" {
		userID = uid
	}

	res, err := h.service.Ask(c.UserContext(), AskInput{
		UserID:    userID,
		QueryText: req.QueryText,
		Language:  req.Language,
	})
	if err != nil {
		if errors.Is(err, ErrQueryRequired) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Query text is required",
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to process query",
		})
	}

	entities := res.Entities
	if entities == nil {
		entities = Entities{}
	}

	payload := fiber.Map{
		"success":      true,
		"intent":       res.Intent,
		"entities":     entities,
		"type":         res.Response.Type,
		"textResponse": res.Response.TextResponse,
		"requiresMpin": res.Response.RequiresMpin,
	}
	if res.Response.Target != "" {
		payload["target"] = res.Response.Target
	}
	if res.Response.Data != nil {
		payload["data"] = res.Response.Data
	}

	return c.JSON(payload)
}

type completeRequest struct {
	UserID   string `json:"userId"`
	Mpin     string `json:"mpin"`
	Language string `json:"language"`
	Token    string `json:"token"`
	Data     struct {
		Token string `json:"token"`
	} `json:"data"`
}

// CompleteSensitive finishes a deferred sensitive action after MPIN entry.
func (h *Handler) CompleteSensitive(c *fiber.Ctx) error {
	var req completeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		userID = req.UserID
	}

	token := req.Token
	if token == "" {
		token = req.Data.Token
	}

	lang := locale.Parse(req.Language)

	text, err := h.service.CompleteSensitive(c.UserContext(), CompleteInput{
		UserID:   userID,
		Token:    token,
		Mpin:     req.Mpin,
		Language: req.Language,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrMpinRequired):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"textResponse": locale.T(lang, locale.MsgMpinFailed),
				"message":      "mPIN is required",
			})
		case errors.Is(err, ErrMpinRejected), errors.Is(err, ErrTokenInvalid), errors.Is(err, ErrTokenExpired):
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"textResponse": locale.T(lang, locale.MsgMpinFailed),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"textResponse": "Failed to complete action.",
			})
		}
	}

	return c.JSON(fiber.Map{"textResponse": text})
}

// History returns the caller's bounded conversation log.
func (h *Handler) History(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return fiber.NewError(http.StatusUnauthorized, "missing user identity")
	}

	entries, err := h.service.History(c.UserContext(), userID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch chat history",
		})
	}
	if entries == nil {
		entries = []history.Entry{}
	}

	return c.JSON(fiber.Map{"success": true, "history": entries})
}
