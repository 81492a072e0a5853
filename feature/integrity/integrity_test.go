package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"asset-ledger/core/storage/mocks"
	"asset-ledger/feature/inventory/store"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoader(t *testing.T) {
	feature := NewFeature(new(mocks.Client), "ledger", nil, nil, zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandler(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(store.Models()...))

	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "ledger").Return(true, nil)
	client.On("StatObject", mock.Anything, "ledger", "sheets/inventory.csv", mock.Anything).
		Return(minio.ObjectInfo{Size: 1}, nil)
	client.On("ListObjects", mock.Anything, "ledger", mock.Anything).Return(nil)

	app := fiber.New()
	require.NoError(t, NewFeature(client, "ledger", []string{"sheets/inventory.csv"}, db, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var schema map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schema))
	assert.Equal(t, true, schema["matched"])

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/source", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	var all map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&all))
	assert.Contains(t, all, "schema")
	assert.Contains(t, all, "source")
}

func TestSchemaCheckWithoutDatabase(t *testing.T) {
	app := fiber.New()
	require.NoError(t, NewFeature(new(mocks.Client), "ledger", nil, nil, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
