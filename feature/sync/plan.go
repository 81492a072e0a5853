package sync

import (
	"time"

	"asset-ledger/core/source"
	"asset-ledger/feature/inventory/models"
)

// batchPlan holds the writes for one batch of source records.
type batchPlan struct {
	creates   []models.Item
	updates   []models.Item
	touched   []string
	movements []models.Movement

	added     int
	updated   int
	unchanged int
}

// planBatch partitions records into new, changed and unchanged against the
// stored items. Grade and lock status are tracked: each differing tracked field
// yields one movement. Descriptive fields are refreshed without a movement, and
// a blank source value never replaces a stored one.
func planBatch(records []source.Record, existing map[string]models.Item, runID string, now time.Time) batchPlan {
	var p batchPlan
	for _, rec := range records {
		current, ok := existing[rec.Key]
		if !ok {
			item := newItem(rec, now)
			p.creates = append(p.creates, item)
			p.movements = append(p.movements, models.Movement{
				ItemKey:      item.Key,
				Type:         models.MovementAdded,
				ToGrade:      item.Grade,
				ToLockStatus: item.LockStatus,
				ToStatus:     item.Status,
				ToLocation:   item.Location,
				Location:     item.Location,
				Source:       models.SourceExternalSync,
				SyncRunID:    runID,
				Snapshot:     models.SnapshotOf(item),
				CreatedAt:    now,
			})
			p.added++
			continue
		}

		next := current
		refreshed := refreshDescriptive(&next, rec)
		next.Seen(now)

		var changes []models.Movement
		if rec.Grade != "" && rec.Grade != current.Grade {
			next.Grade = rec.Grade
			changes = append(changes, models.Movement{
				Type:      models.MovementGradeChanged,
				FromGrade: current.Grade,
				ToGrade:   rec.Grade,
			})
		}
		if rec.LockStatus != "" && rec.LockStatus != current.LockStatus {
			next.LockStatus = rec.LockStatus
			changes = append(changes, models.Movement{
				Type:           models.MovementStatusChanged,
				FromLockStatus: current.LockStatus,
				ToLockStatus:   rec.LockStatus,
			})
		}

		switch {
		case len(changes) > 0:
			snapshot := models.SnapshotOf(next)
			for _, m := range changes {
				m.ItemKey = next.Key
				m.Location = next.Location
				m.Source = models.SourceExternalSync
				m.SyncRunID = runID
				m.Snapshot = snapshot
				m.CreatedAt = now
				p.movements = append(p.movements, m)
			}
			p.updates = append(p.updates, next)
			p.updated++
		case refreshed:
			p.updates = append(p.updates, next)
			p.unchanged++
		default:
			p.touched = append(p.touched, next.Key)
			p.unchanged++
		}
	}
	return p
}

func newItem(rec source.Record, now time.Time) models.Item {
	return models.Item{
		Key:         rec.Key,
		Model:       rec.Model,
		Capacity:    rec.Capacity,
		Color:       rec.Color,
		SKU:         rec.SKU,
		Grade:       rec.Grade,
		LockStatus:  rec.LockStatus,
		Location:    rec.Location,
		Status:      models.StatusInStock,
		FirstSeenAt: now,
		LastSeenAt:  now,
	}
}

// refreshDescriptive copies non-blank descriptive values onto item and reports
// whether anything changed. Location is only filled when unknown; moving an
// item is the job of a transfer.
func refreshDescriptive(item *models.Item, rec source.Record) bool {
	changed := false
	set := func(dst *string, v string) {
		if v != "" && *dst != v {
			*dst = v
			changed = true
		}
	}
	set(&item.Model, rec.Model)
	set(&item.Capacity, rec.Capacity)
	set(&item.Color, rec.Color)
	set(&item.SKU, rec.SKU)
	if item.Location == "" {
		set(&item.Location, rec.Location)
	}
	return changed
}

// dedupe keeps the first record of every key, preserving order.
func dedupe(records []source.Record) ([]source.Record, int) {
	seen := make(map[string]struct{}, len(records))
	out := make([]source.Record, 0, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.Key]; dup {
			continue
		}
		seen[rec.Key] = struct{}{}
		out = append(out, rec)
	}
	return out, len(records) - len(out)
}
