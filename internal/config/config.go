package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName        = "SaarthiAssistant"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultShutdownDelay  = 10 * time.Second
	defaultMLTimeout      = 10 * time.Second
	defaultFaqTimeout     = 15 * time.Second
	defaultActionTokenTTL = 5 * time.Minute
	defaultHistoryLimit   = 50
	defaultMLSaarthiURL   = "http://localhost:5002"
	defaultFaqEngineURL   = "http://localhost:5001"

	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
	mlTimeoutEnvVar        = "ML_TIMEOUT"
	actionTokenTTLEnvVar   = "ACTION_TOKEN_TTL"
	historyLimitEnvVar     = "HISTORY_LIMIT"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName           string
	Env               string
	Port              string
	LogLevel          string
	DatabaseURL       string
	RedisURL          string
	MLSaarthiURL      string
	FaqEngineURL      string
	MLTimeout         time.Duration
	FaqTimeout        time.Duration
	JWTSecret         string
	ActionTokenSecret string
	ActionTokenTTL    time.Duration
	HistoryLimit      int
	ShutdownPeriod    time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:           getEnv("APP_NAME", defaultAppName),
		Env:               strings.ToLower(getEnv("APP_ENV", defaultAppEnv)),
		Port:              getEnv("PORT", defaultPort),
		LogLevel:          strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		MLSaarthiURL:      getEnv("ML_SAARTHI_URL", defaultMLSaarthiURL),
		FaqEngineURL:      getEnv("FAQ_ENGINE_URL", defaultFaqEngineURL),
		MLTimeout:         defaultMLTimeout,
		FaqTimeout:        defaultFaqTimeout,
		JWTSecret:         os.Getenv("JWT_SECRET"),
		ActionTokenSecret: os.Getenv("ACTION_TOKEN_SECRET"),
		ActionTokenTTL:    defaultActionTokenTTL,
		HistoryLimit:      defaultHistoryLimit,
		ShutdownPeriod:    defaultShutdownDelay,
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(mlTimeoutEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", mlTimeoutEnvVar, err)
		}
		cfg.MLTimeout = d
	}

	if v := os.Getenv(actionTokenTTLEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", actionTokenTTLEnvVar, err)
		}
		cfg.ActionTokenTTL = d
	}

	if v := os.Getenv(historyLimitEnvVar); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid %s: %q", historyLimitEnvVar, v)
		}
		cfg.HistoryLimit = n
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET must be set")
	}

	if cfg.ActionTokenSecret == "" {
		return Config{}, fmt.Errorf("ACTION_TOKEN_SECRET must be set")
	}

	// Postgres and Redis are optional in development; routes fall back to
	// in-memory stores when they are absent.
	if !cfg.IsDev() {
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.Env)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.Env)
		}
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a development environment.
func (c Config) IsDev() bool {
	switch c.Env {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
