package assistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/saarthi-bank/saarthi-assistant/internal/history"
	"github.com/saarthi-bank/saarthi-assistant/internal/logging"
	"github.com/saarthi-bank/saarthi-assistant/internal/ml"
	"github.com/saarthi-bank/saarthi-assistant/internal/reminder"
	"github.com/saarthi-bank/saarthi-assistant/internal/user"
)

func setupTestApp(t *testing.T, classifier ml.Classifier) *fiber.App {
	t.Helper()

	users := user.NewService(user.NewMemoryRepository())
	ctx := context.Background()
	if err := users.Register(ctx, user.User{ID: testUserID, AtmLinked: true}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := users.SetMpin(ctx, testUserID, testMpin, testMpin); err != nil {
		t.Fatalf("seed mpin: %v", err)
	}

	logger := logging.Discard()
	svc := NewService(
		NewResolver(classifier, logger),
		users,
		reminder.NewService(reminder.NewMemoryRepository()),
		history.NewRecorder(history.NewMemoryStore(50), logger),
		NewTokenSigner([]byte("test-secret"), 5*time.Minute),
		logger,
	)
	handler := NewHandler(svc)

	app := fiber.New()
	app.Post("/assistant/ask", handler.Ask)

	authed := app.Group("", func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		return c.Next()
	})
	authed.Post("/assistant/complete-sensitive", handler.CompleteSensitive)
	authed.Get("/assistant/history", handler.History)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("invalid json %q: %v", string(payload), err)
	}
	return resp.StatusCode, decoded
}

func TestAskEndpointRequiresQueryText(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "unknown"})

	status, body := postJSON(t, app, "/assistant/ask", `{"userId":"user-1","language":"en"}`)

	if status != fiber.StatusBadRequest {
		t.Fatalf("expected %d got %d", fiber.StatusBadRequest, status)
	}
	if body["message"] != "Query text is required" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestAskEndpointEnvelope(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "navigation"})

	status, body := postJSON(t, app, "/assistant/ask",
		`{"userId":"user-1","queryText":"open my profile","language":"en"}`)

	if status != fiber.StatusOK {
		t.Fatalf("expected %d got %d", fiber.StatusOK, status)
	}
	if body["success"] != true {
		t.Fatalf("expected success=true, body %v", body)
	}
	if body["intent"] != "navigation" {
		t.Fatalf("unexpected intent: %v", body["intent"])
	}
	if body["type"] != "navigation" {
		t.Fatalf("unexpected type: %v", body["type"])
	}
	if body["target"] != "/profile" {
		t.Fatalf("unexpected target: %v", body["target"])
	}
	if body["requiresMpin"] != false {
		t.Fatalf("navigation must not require mpin")
	}
	if _, ok := body["entities"].([]any); !ok {
		t.Fatalf("entities must always be a JSON array, got %T", body["entities"])
	}
}

func TestAskEndpointSensitiveEnvelope(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "balance_inquiry"})

	status, body := postJSON(t, app, "/assistant/ask",
		`{"userId":"user-1","queryText":"what is my balance","language":"en"}`)

	if status != fiber.StatusOK {
		t.Fatalf("expected %d got %d", fiber.StatusOK, status)
	}
	if body["type"] != "requires_mpin" {
		t.Fatalf("unexpected type: %v", body["type"])
	}
	if body["requiresMpin"] != true {
		t.Fatalf("expected requiresMpin=true")
	}
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected pending action data, got %v", body["data"])
	}
	if data["action"] != "balance_inquiry" {
		t.Fatalf("unexpected pending action: %v", data["action"])
	}
	if token, _ := data["token"].(string); token == "" {
		t.Fatalf("pending action must carry a token")
	}
}

func TestCompleteSensitiveEndpointFlow(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "balance_inquiry"})

	_, askBody := postJSON(t, app, "/assistant/ask",
		`{"userId":"user-1","queryText":"what is my balance","language":"en"}`)
	token := askBody["data"].(map[string]any)["token"].(string)

	status, body := postJSON(t, app, "/assistant/complete-sensitive",
		`{"mpin":"1234","language":"en","token":"`+token+`"}`)

	if status != fiber.StatusOK {
		t.Fatalf("expected %d got %d (%v)", fiber.StatusOK, status, body)
	}
	if body["textResponse"] != "Your account balance is ₹50,000." {
		t.Fatalf("unexpected textResponse: %v", body["textResponse"])
	}
}

func TestCompleteSensitiveEndpointNestedToken(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "balance_inquiry"})

	_, askBody := postJSON(t, app, "/assistant/ask",
		`{"userId":"user-1","queryText":"balance","language":"en"}`)
	token := askBody["data"].(map[string]any)["token"].(string)

	// Clients may echo the pending action back under data.
	status, body := postJSON(t, app, "/assistant/complete-sensitive",
		`{"mpin":"1234","data":{"token":"`+token+`"}}`)

	if status != fiber.StatusOK {
		t.Fatalf("expected %d got %d (%v)", fiber.StatusOK, status, body)
	}
}

func TestCompleteSensitiveEndpointWrongMpin(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "balance_inquiry"})

	_, askBody := postJSON(t, app, "/assistant/ask",
		`{"userId":"user-1","queryText":"balance","language":"en"}`)
	token := askBody["data"].(map[string]any)["token"].(string)

	status, body := postJSON(t, app, "/assistant/complete-sensitive",
		`{"mpin":"0000","language":"en","token":"`+token+`"}`)

	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected %d got %d", fiber.StatusUnauthorized, status)
	}
	if body["textResponse"] != "MPIN verification failed. Please try again." {
		t.Fatalf("unexpected textResponse: %v", body["textResponse"])
	}
}

func TestCompleteSensitiveEndpointMissingMpin(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "balance_inquiry"})

	status, _ := postJSON(t, app, "/assistant/complete-sensitive", `{"token":"junk"}`)

	if status != fiber.StatusBadRequest {
		t.Fatalf("expected %d got %d", fiber.StatusBadRequest, status)
	}
}

func TestCompleteSensitiveEndpointBadToken(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "balance_inquiry"})

	status, _ := postJSON(t, app, "/assistant/complete-sensitive",
		`{"mpin":"1234","token":"not-a-token"}`)

	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected %d got %d", fiber.StatusUnauthorized, status)
	}
}

func TestHistoryEndpoint(t *testing.T) {
	app := setupTestApp(t, ml.StaticClassifier{Intent: "navigation"})

	postJSON(t, app, "/assistant/ask", `{"userId":"user-1","queryText":"open history","language":"en"}`)

	req := httptest.NewRequest(fiber.MethodGet, "/assistant/history", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected %d got %d", fiber.StatusOK, resp.StatusCode)
	}

	var body struct {
		Success bool            `json:"success"`
		History []history.Entry `json:"history"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success=true")
	}
	if len(body.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(body.History))
	}
	if body.History[0].Query != "open history" {
		t.Fatalf("unexpected query: %q", body.History[0].Query)
	}
}
