package config

import (
	"reflect"
	"strings"

	"asset-ledger/core/database"
	"asset-ledger/core/events"
	"asset-ledger/core/logger"
	"asset-ledger/core/reconcile"
	"asset-ledger/core/server"
	"asset-ledger/core/source"
	"asset-ledger/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage holding source sheets.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the canonical store.
	Database database.Config `mapstructure:"database"`
	// Source describes where the external tabular rows come from.
	Source source.Config `mapstructure:"source"`
	// Cache holds configuration for the reconciliation cache.
	Cache reconcile.Config `mapstructure:"cache"`
	// Sync holds tuning knobs for the synchronization run.
	Sync SyncConfig `mapstructure:"sync"`
	// Events holds configuration for movement event publishing.
	Events events.Config `mapstructure:"events"`
}

// SyncConfig tunes the sync orchestrator.
type SyncConfig struct {
	// BatchSize is the number of source rows written per transaction.
	BatchSize int `mapstructure:"batch_size" default:"500"`
	// FetchTimeoutSeconds bounds the external fetch of a run.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" default:"120"`
	// StaleMinutes is the age after which an in-progress run is considered stuck.
	StaleMinutes int `mapstructure:"stale_minutes" default:"10"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SYNC_BATCH_SIZE -> sync.batch_size)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
