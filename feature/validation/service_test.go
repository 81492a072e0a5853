package validation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"asset-ledger/core/clock"
	"asset-ledger/core/reconcile"
	"asset-ledger/core/source"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"
	"asset-ledger/feature/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSource struct {
	records []source.Record
	err     error
	calls   int
	ids     []string
}

func (s *countingSource) Fetch(_ context.Context, id string) (*source.Result, error) {
	s.calls++
	s.ids = append(s.ids, id)
	if s.err != nil {
		return nil, s.err
	}
	return &source.Result{Records: s.records, Total: len(s.records)}, nil
}

type fixture struct {
	clock   *clock.Fixed
	source  *countingSource
	service *validation.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.NewMemory()
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, st.Items().CreateBatch(context.Background(), []models.Item{
		{Key: "K1", Grade: "A", Model: "X1", Status: models.StatusInStock, FirstSeenAt: now, LastSeenAt: now},
	}))

	fx := &fixture{
		clock:  &clock.Fixed{T: now},
		source: &countingSource{records: []source.Record{{Key: "K9", Grade: "B", Model: "X9"}, {Key: "K1", Grade: "C"}}},
	}
	cache := reconcile.New(reconcile.NewMemoryStore(), time.Minute, fx.clock, zap.NewNop())
	secondary := source.NewBestEffort(fx.source, zap.NewNop())
	fx.service = validation.NewService(validation.Config{SecondaryID: "audit"}, st, secondary, cache, zap.NewNop())
	return fx
}

func TestValidateProvenance(t *testing.T) {
	fx := newFixture(t)

	report, err := fx.service.Validate(context.Background(), []string{"K1", "K9", "K404"})
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.Empty(t, report.Warning)

	assert.Equal(t, validation.SourcePrimary, report.Results[0].Source)
	assert.Equal(t, "A", report.Results[0].Attributes.Grade)
	assert.Equal(t, validation.SourceSecondary, report.Results[1].Source)
	assert.Equal(t, "X9", report.Results[1].Attributes.Model)
	assert.Equal(t, validation.SourceUnknown, report.Results[2].Source)
	assert.False(t, report.Results[2].Found)
	assert.Equal(t, validation.Summary{Total: 3, Found: 2, NotFound: 1}, report.Summary)
	assert.Equal(t, []string{"audit"}, fx.source.ids)
}

func TestValidateDeduplicates(t *testing.T) {
	fx := newFixture(t)

	report, err := fx.service.Validate(context.Background(), []string{"K9", " K1", "K9", "", "K1 "})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "K9", report.Results[0].Key)
	assert.Equal(t, "K1", report.Results[1].Key)

	_, err = fx.service.Validate(context.Background(), []string{" "})
	assert.ErrorIs(t, err, validation.ErrNoKeys)
}

func TestValidateSkipsSecondaryWhenAllPrimary(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.service.Validate(context.Background(), []string{"K1"})
	require.NoError(t, err)
	assert.Zero(t, fx.source.calls)
}

func TestValidateUsesCache(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	for range 3 {
		_, err := fx.service.Validate(ctx, []string{"K9"})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, fx.source.calls)

	fx.clock.Advance(2 * time.Minute)
	_, err := fx.service.Validate(ctx, []string{"K9"})
	require.NoError(t, err)
	assert.Equal(t, 2, fx.source.calls)

	require.NoError(t, fx.service.InvalidateSecondary(ctx))
	_, err = fx.service.Validate(ctx, []string{"K9"})
	require.NoError(t, err)
	assert.Equal(t, 3, fx.source.calls)
}

func TestValidateDegradesWhenSecondaryFails(t *testing.T) {
	fx := newFixture(t)
	fx.source.err = errors.New("permission denied")
	ctx := context.Background()

	report, err := fx.service.Validate(ctx, []string{"K9", "K1"})
	require.NoError(t, err)
	assert.Equal(t, validation.SourceUnknown, report.Results[0].Source)
	assert.False(t, report.Results[0].Found)
	assert.Equal(t, validation.SourcePrimary, report.Results[1].Source)
	assert.Contains(t, report.Warning, "permission denied")

	// The degraded result is not cached.
	fx.source.err = nil
	report, err = fx.service.Validate(ctx, []string{"K9"})
	require.NoError(t, err)
	assert.Equal(t, validation.SourceSecondary, report.Results[0].Source)
	assert.Empty(t, report.Warning)
	assert.Equal(t, 2, fx.source.calls)
}

func TestValidateWithoutSecondary(t *testing.T) {
	st := store.NewMemory()
	svc := validation.NewService(validation.Config{}, st, nil, nil, zap.NewNop())

	report, err := svc.Validate(context.Background(), []string{"K9"})
	require.NoError(t, err)
	assert.Equal(t, validation.SourceUnknown, report.Results[0].Source)
	assert.NotEmpty(t, report.Warning)
}

func TestFindByKeys(t *testing.T) {
	fx := newFixture(t)

	result, err := fx.service.FindByKeys(context.Background(), []string{"K1", "K9", "K1"})
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.True(t, result.Results[0].Found)
	assert.Equal(t, "X1", result.Results[0].Item.Model)
	assert.False(t, result.Results[1].Found)
	assert.Equal(t, validation.Summary{Total: 2, Found: 1, NotFound: 1}, result.Summary)
	assert.Zero(t, fx.source.calls)

	_, err = fx.service.FindByKey(context.Background(), "K9")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHandler(t *testing.T) {
	fx := newFixture(t)
	app := fiber.New()
	require.NoError(t, validation.NewFeature(fx.service).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/items/K1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var item models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.Equal(t, "K1", item.Key)

	resp, err = app.Test(httptest.NewRequest("GET", "/items/K404", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req := httptest.NewRequest("POST", "/validate", strings.NewReader(`{"keys":["K1","K9"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var report validation.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 2, report.Summary.Found)
	assert.Equal(t, 1, fx.source.calls)

	resp, err = app.Test(httptest.NewRequest("POST", "/validate/refresh", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("POST", "/validate", strings.NewReader(`{"keys":["K9"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, fx.source.calls)

	req = httptest.NewRequest("POST", "/items/search", strings.NewReader(`{"keys":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
