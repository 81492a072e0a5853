package sync

import (
	"testing"
	"time"

	"asset-ledger/core/source"
	"asset-ledger/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanBatch(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	earlier := now.Add(-24 * time.Hour)
	stored := func(key, grade, lock string) models.Item {
		return models.Item{
			Key: key, Model: "Phone", Grade: grade, LockStatus: lock, Location: "A-1",
			Status: models.StatusInStock, FirstSeenAt: earlier, LastSeenAt: earlier,
		}
	}

	t.Run("NewItemGetsAddedMovement", func(t *testing.T) {
		p := planBatch([]source.Record{{Key: "K1", Grade: "A", Location: "B-2"}}, nil, "run", now)

		require.Len(t, p.creates, 1)
		assert.Equal(t, models.StatusInStock, p.creates[0].Status)
		assert.Equal(t, now, p.creates[0].FirstSeenAt)
		require.Len(t, p.movements, 1)
		m := p.movements[0]
		assert.Equal(t, models.MovementAdded, m.Type)
		assert.Equal(t, "A", m.ToGrade)
		assert.Equal(t, "B-2", m.ToLocation)
		assert.Equal(t, "run", m.SyncRunID)
		assert.JSONEq(t, `{"key":"K1","grade":"A","location":"B-2","status":"in_stock"}`, string(m.Snapshot))
		assert.Equal(t, 1, p.added)
	})

	t.Run("EachTrackedFieldIsOneMovement", func(t *testing.T) {
		existing := map[string]models.Item{"K1": stored("K1", "A", "locked")}
		p := planBatch([]source.Record{{Key: "K1", Grade: "B", LockStatus: "unlocked"}}, existing, "run", now)

		assert.Equal(t, 1, p.updated)
		require.Len(t, p.updates, 1)
		assert.Equal(t, "B", p.updates[0].Grade)
		assert.Equal(t, "unlocked", p.updates[0].LockStatus)
		assert.Equal(t, now, p.updates[0].LastSeenAt)

		require.Len(t, p.movements, 2)
		assert.Equal(t, models.MovementGradeChanged, p.movements[0].Type)
		assert.Equal(t, "A", p.movements[0].FromGrade)
		assert.Equal(t, "B", p.movements[0].ToGrade)
		assert.Equal(t, models.MovementStatusChanged, p.movements[1].Type)
		assert.Equal(t, "locked", p.movements[1].FromLockStatus)
		assert.Equal(t, "unlocked", p.movements[1].ToLockStatus)
	})

	t.Run("BlankValuesNeverRegress", func(t *testing.T) {
		existing := map[string]models.Item{"K1": stored("K1", "A", "locked")}
		p := planBatch([]source.Record{{Key: "K1"}}, existing, "run", now)

		assert.Equal(t, 1, p.unchanged)
		assert.Empty(t, p.updates)
		assert.Empty(t, p.movements)
		assert.Equal(t, []string{"K1"}, p.touched)
	})

	t.Run("DescriptiveRefreshHasNoMovement", func(t *testing.T) {
		existing := map[string]models.Item{"K1": stored("K1", "A", "")}
		p := planBatch([]source.Record{{Key: "K1", Model: "Phone Pro", Grade: "A", Location: "Z-9"}}, existing, "run", now)

		assert.Equal(t, 1, p.unchanged)
		assert.Empty(t, p.movements)
		require.Len(t, p.updates, 1)
		assert.Equal(t, "Phone Pro", p.updates[0].Model)
		assert.Equal(t, "A-1", p.updates[0].Location)
	})
}

func TestDedupe(t *testing.T) {
	records, dups := dedupe([]source.Record{{Key: "A", Grade: "1"}, {Key: "A", Grade: "2"}, {Key: "B"}})
	assert.Equal(t, 1, dups)
	require.Len(t, records, 2)
	assert.Equal(t, "1", records[0].Grade)
	assert.Equal(t, "B", records[1].Key)
}
