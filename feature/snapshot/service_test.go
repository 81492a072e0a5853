package snapshot_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"asset-ledger/core/clock"
	"asset-ledger/core/database"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"
	"asset-ledger/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var day = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func stores() map[string]func(t *testing.T) store.Store {
	return map[string]func(t *testing.T) store.Store{
		"sqlite": func(t *testing.T) store.Store {
			st, err := store.Open(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
			require.NoError(t, err)
			require.NoError(t, st.Migrate(context.Background()))
			t.Cleanup(func() { _ = st.Close() })
			return st
		},
		"memory": func(*testing.T) store.Store {
			return store.NewMemory()
		},
	}
}

func seed(t *testing.T, st store.Store) {
	t.Helper()
	ctx := context.Background()
	items := []models.Item{
		{Key: "K1", Model: "X1", Grade: "A", LockStatus: "unlocked", Location: "WH1", Status: models.StatusInStock},
		{Key: "K2", Model: "X1", Grade: "B", Location: "WH1", Status: models.StatusInStock},
		{Key: "K3", Model: "X2", Grade: "A", Location: "WH2", Status: models.StatusInStock},
		{Key: "K4", Model: "X2", Grade: "A", Location: "WH1", Status: models.StatusShipped},
	}
	for i := range items {
		items[i].FirstSeenAt = day
		items[i].LastSeenAt = day
	}
	require.NoError(t, st.Items().CreateBatch(ctx, items))

	snap := models.SnapshotOf(items[0])
	movements := []models.Movement{
		{ItemKey: "K1", Type: models.MovementAdded, Location: "WH1", CreatedAt: day.Add(time.Hour)},
		{ItemKey: "K3", Type: models.MovementAdded, Location: "WH2", CreatedAt: day.Add(2 * time.Hour)},
		{ItemKey: "K4", Type: models.MovementShipped, Location: "WH1", CreatedAt: day.Add(3 * time.Hour)},
		{ItemKey: "K2", Type: models.MovementGradeChanged, Location: "WH1", CreatedAt: day.Add(4 * time.Hour)},
		{ItemKey: "K1", Type: models.MovementStatusChanged, Location: "WH1", CreatedAt: day.Add(5 * time.Hour)},
		// Outside the day on both ends.
		{ItemKey: "K2", Type: models.MovementAdded, Location: "WH1", CreatedAt: day.Add(-time.Second)},
		{ItemKey: "K1", Type: models.MovementTransferred, Location: "WH1", CreatedAt: day.Add(24 * time.Hour)},
	}
	for i := range movements {
		movements[i].Source = models.SourceManual
		movements[i].Snapshot = snap
	}
	require.NoError(t, st.Movements().AppendBatch(ctx, movements))
}

func counts(t *testing.T, raw []byte) map[string]int {
	t.Helper()
	var out map[string]int
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestGenerate(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			st := open(t)
			seed(t, st)
			clk := &clock.Fixed{T: day.Add(23 * time.Hour)}
			svc := snapshot.NewService(st, clk, zap.NewNop())
			ctx := context.Background()

			snap, err := svc.Generate(ctx, "", "")
			require.NoError(t, err)
			assert.Equal(t, "2026-03-02", snap.SnapshotDate)
			assert.Equal(t, 3, snap.TotalCount)
			assert.Equal(t, map[string]int{"A": 2, "B": 1}, counts(t, snap.ByGrade))
			assert.Equal(t, map[string]int{"X1": 2, "X2": 1}, counts(t, snap.ByModel))
			assert.Equal(t, map[string]int{"unlocked": 1, "unknown": 2}, counts(t, snap.ByLockStatus))
			assert.Equal(t, 2, snap.Added)
			assert.Equal(t, 1, snap.Shipped)
			assert.Equal(t, 0, snap.Transferred)
			assert.Equal(t, 2, snap.StatusChanged)

			var listing []models.Attributes
			require.NoError(t, json.Unmarshal(snap.Items, &listing))
			assert.Len(t, listing, 3)

			local, err := svc.Generate(ctx, "2026-03-02", "WH2")
			require.NoError(t, err)
			assert.Equal(t, 1, local.TotalCount)
			assert.Equal(t, 1, local.Added)
			assert.Equal(t, 0, local.Shipped)
		})
	}
}

func TestGenerateCountsTransfersAtBothEnds(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			st := open(t)
			seed(t, st)
			ctx := context.Background()
			require.NoError(t, st.Movements().AppendBatch(ctx, []models.Movement{{
				ItemKey:      "K2",
				Type:         models.MovementTransferred,
				FromLocation: "WH1",
				ToLocation:   "WH2",
				Location:     "WH2",
				Source:       models.SourceManual,
				Snapshot:     models.SnapshotOf(models.Item{Key: "K2"}),
				CreatedAt:    day.Add(6 * time.Hour),
			}}))
			svc := snapshot.NewService(st, &clock.Fixed{T: day.Add(23 * time.Hour)}, zap.NewNop())

			origin, err := svc.Generate(ctx, "2026-03-02", "WH1")
			require.NoError(t, err)
			assert.Equal(t, 1, origin.Transferred)

			target, err := svc.Generate(ctx, "2026-03-02", "WH2")
			require.NoError(t, err)
			assert.Equal(t, 1, target.Transferred)

			all, err := svc.Generate(ctx, "2026-03-02", "")
			require.NoError(t, err)
			assert.Equal(t, 1, all.Transferred)
		})
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	for name, open := range stores() {
		t.Run(name, func(t *testing.T) {
			st := open(t)
			seed(t, st)
			svc := snapshot.NewService(st, &clock.Fixed{T: day.Add(time.Hour)}, zap.NewNop())
			ctx := context.Background()

			_, err := svc.Generate(ctx, "2026-03-02", "")
			require.NoError(t, err)

			k1, err := st.Items().FindByKey(ctx, "K1")
			require.NoError(t, err)
			k1.Status = models.StatusShipped
			require.NoError(t, st.Items().Update(ctx, k1))

			_, err = svc.Generate(ctx, "2026-03-02", "")
			require.NoError(t, err)

			snaps, err := svc.GetRange(ctx, "2026-03-01", "2026-03-03", "")
			require.NoError(t, err)
			require.Len(t, snaps, 1)
			assert.Equal(t, 2, snaps[0].TotalCount)
		})
	}
}

func TestGetByDate(t *testing.T) {
	st := store.NewMemory()
	svc := snapshot.NewService(st, &clock.Fixed{T: day}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.GetByDate(ctx, "2026-03-02", "")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.GetByDate(ctx, "03/02/2026", "")
	assert.ErrorIs(t, err, snapshot.ErrInvalidDate)

	_, err = svc.Generate(ctx, "2026-03-02", "WH1")
	require.NoError(t, err)
	snap, err := svc.GetByDate(ctx, "2026-03-02", "WH1")
	require.NoError(t, err)
	assert.Equal(t, "WH1", snap.LocationID)

	_, err = svc.GetByDate(ctx, "2026-03-02", "")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetRangeSummary(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	for i, total := range []int{10, 12, 9} {
		require.NoError(t, st.Snapshots().Upsert(ctx, &models.DailySnapshot{
			SnapshotDate:  day.AddDate(0, 0, i).Format(models.DateLayout),
			TotalCount:    total,
			Added:         i + 1,
			Shipped:       1,
			StatusChanged: 2,
			GeneratedAt:   day,
		}))
	}
	svc := snapshot.NewService(st, &clock.Fixed{T: day}, zap.NewNop())

	summary, err := svc.GetRangeSummary(ctx, "2026-03-01", "2026-03-04", "")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Days)
	assert.Equal(t, 10, summary.OpeningCount)
	assert.Equal(t, 9, summary.ClosingCount)
	assert.Equal(t, -1, summary.NetChange)
	assert.Equal(t, 6, summary.Added)
	assert.Equal(t, 3, summary.Shipped)
	assert.Equal(t, 6, summary.StatusChanged)

	empty, err := svc.GetRangeSummary(ctx, "2025-01-01", "2025-01-31", "")
	require.NoError(t, err)
	assert.Zero(t, empty.Days)

	_, err = svc.GetRange(ctx, "2026-03-04", "2026-03-01", "")
	assert.ErrorIs(t, err, snapshot.ErrInvalidDate)

	_, err = svc.GetRange(ctx, "2024-01-01", "2026-01-01", "")
	assert.ErrorIs(t, err, snapshot.ErrInvalidDate)
}

func TestHandler(t *testing.T) {
	st := store.NewMemory()
	seed(t, st)
	app := fiber.New()
	require.NoError(t, snapshot.NewFeature(snapshot.NewService(st, &clock.Fixed{T: day}, zap.NewNop())).Load(app))

	req := httptest.NewRequest("POST", "/snapshots", strings.NewReader(`{"date":"2026-03-02"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/snapshots/2026-03-02", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var snap models.DailySnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, 3, snap.TotalCount)

	resp, err = app.Test(httptest.NewRequest("GET", "/snapshots/summary?from=2026-03-01&to=2026-03-31", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var summary snapshot.RangeSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 1, summary.Days)

	resp, err = app.Test(httptest.NewRequest("GET", "/snapshots?from=bad&to=2026-03-31", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/snapshots/2026-04-01", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
