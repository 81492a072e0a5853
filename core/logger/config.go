package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding (json, console).
	Format string `mapstructure:"format" default:"json"`
	// SentryDSN enables shipping error logs to Sentry when set.
	SentryDSN string `mapstructure:"sentry_dsn" default:""`
	// Environment is reported to Sentry as the event environment.
	Environment string `mapstructure:"environment" default:"development"`
}
