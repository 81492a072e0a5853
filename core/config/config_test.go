package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 500, cfg.Sync.BatchSize)
	assert.Equal(t, 10, cfg.Sync.StaleMinutes)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	assert.Equal(t, 1, cfg.Source.HeaderRow)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SYNC_BATCH_SIZE", "50")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("SOURCE_PRIMARY_ID", "warehouse-a")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Sync.BatchSize)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "warehouse-a", cfg.Source.PrimaryID)
}
