package logger

import (
	"fmt"

	"asset-ledger/core/middleware/rayid"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil && cfg.Level != "" {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	base, err := config.Build()
	if err != nil {
		return nil, err
	}

	if cfg.SentryDSN == "" {
		return base, nil
	}

	return attachSentry(base, cfg)
}

// attachSentry tees error level entries into Sentry.
func attachSentry(base *zap.Logger, cfg *Config) (*zap.Logger, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Debug:       cfg.Level == "debug",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level:             zapcore.ErrorLevel,
		EnableBreadcrumbs: true,
		BreadcrumbLevel:   zapcore.InfoLevel,
		Tags:              map[string]string{"component": "asset-ledger"},
	}, zapsentry.NewSentryClientFromClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry core: %w", err)
	}

	return zapsentry.AttachCoreToLogger(core, base), nil
}

// WithRayID returns a logger with the ray_id field set from the Fiber context.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if id := rayid.Get(c); id != "" {
		return l.With(zap.String(rayid.LocalsKey, id))
	}
	return l
}
