package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/saarthi-bank/saarthi-assistant/internal/assistant"
	"github.com/saarthi-bank/saarthi-assistant/internal/config"
	"github.com/saarthi-bank/saarthi-assistant/internal/faq"
	"github.com/saarthi-bank/saarthi-assistant/internal/history"
	"github.com/saarthi-bank/saarthi-assistant/internal/middleware"
	"github.com/saarthi-bank/saarthi-assistant/internal/ml"
	"github.com/saarthi-bank/saarthi-assistant/internal/reminder"
	"github.com/saarthi-bank/saarthi-assistant/internal/user"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.Env)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories: Postgres/Redis when available, in-memory in dev.
	var userRepo user.Repository
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
	}
	var reminderRepo reminder.Repository
	if d.DB != nil {
		reminderRepo = reminder.NewPostgresRepository(d.DB)
	} else {
		reminderRepo = reminder.NewMemoryRepository()
	}
	var historyStore history.Store
	if d.Cache != nil {
		historyStore = history.NewRedisStore(d.Cache, d.Cfg.HistoryLimit)
	} else {
		historyStore = history.NewMemoryStore(d.Cfg.HistoryLimit)
	}

	// Services and handlers
	userSvc := user.NewService(userRepo)
	reminderSvc := reminder.NewService(reminderRepo)
	recorder := history.NewRecorder(historyStore, d.Logger)

	classifier := ml.NewHTTPClassifier(d.Cfg.MLSaarthiURL, d.Cfg.MLTimeout)
	faqEngine := ml.NewHTTPFaqEngine(d.Cfg.FaqEngineURL, d.Cfg.FaqTimeout)

	resolver := assistant.NewResolver(classifier, d.Logger)
	tokens := assistant.NewTokenSigner([]byte(d.Cfg.ActionTokenSecret), d.Cfg.ActionTokenTTL)
	assistantSvc := assistant.NewService(resolver, userSvc, reminderSvc, recorder, tokens, d.Logger)
	faqSvc := faq.NewService(faqEngine, d.Logger)

	assistantHandler := assistant.NewHandler(assistantSvc)
	faqHandler := faq.NewHandler(faqSvc)
	userHandler := user.NewHandler(userSvc)
	reminderHandler := reminder.NewHandler(reminderSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	jwtmw := middleware.JWTAuth(d.Cfg.JWTSecret)
	mpinLimiter := middleware.MpinRateLimit(d.Cache, 5)

	RegisterAssistantRoutes(api, assistantHandler, jwtmw, mpinLimiter)
	RegisterFaqRoutes(api, faqHandler)

	protected := api.Group("", jwtmw)
	RegisterUserRoutes(protected, userHandler, mpinLimiter)
	RegisterReminderRoutes(protected, reminderHandler)

	return nil
}
