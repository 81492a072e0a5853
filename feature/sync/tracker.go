package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"
	stdsync "sync"
	"time"

	"asset-ledger/core/clock"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ErrSyncInProgress rejects a run while another live run holds the same target.
var ErrSyncInProgress = errors.New("sync already in progress")

// Tracker owns the lifecycle of sync runs.
type Tracker struct {
	store      store.Store
	clock      clock.Clock
	staleAfter time.Duration
	logger     *zap.Logger
	mu         stdsync.Mutex
}

// NewTracker creates a tracker. Runs in progress for longer than staleAfter no
// longer block new runs and are eligible for FixStale.
func NewTracker(st store.Store, clk clock.Clock, staleAfter time.Duration, logger *zap.Logger) *Tracker {
	return &Tracker{store: st, clock: clk, staleAfter: staleAfter, logger: logger}
}

// Begin records a new in-progress run for target. The check for a live run and
// the insert happen in one transaction, with the in-progress rows locked where
// the database supports it.
func (t *Tracker) Begin(ctx context.Context, target string) (*models.SyncRun, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	run := &models.SyncRun{
		ID:        uuid.NewString(),
		Target:    target,
		Status:    models.RunInProgress,
		StartedAt: now,
	}

	err := t.store.Transaction(ctx, func(tx store.Tx) error {
		running, err := tx.Runs().InProgress(ctx, target)
		if err != nil {
			return err
		}
		for _, r := range running {
			if t.clock.Since(r.StartedAt) < t.staleAfter {
				return fmt.Errorf("%w: run %s started at %s", ErrSyncInProgress, r.ID, r.StartedAt.Format(time.RFC3339))
			}
		}
		for i := range running {
			if err := t.supersede(ctx, tx, &running[i], run.ID, now); err != nil {
				return err
			}
		}
		return tx.Runs().Create(ctx, run)
	})
	if err != nil {
		return nil, err
	}
	return run, nil
}

// supersede closes a stale run that a new run replaces.
func (t *Tracker) supersede(ctx context.Context, tx store.Tx, stale *models.SyncRun, by string, now time.Time) error {
	details, _ := json.Marshal(map[string]any{
		"repaired":      true,
		"superseded_by": by,
	})
	stale.Status = models.RunFailed
	stale.ErrorMessage = fmt.Sprintf("sync run went stale and was superseded by %s", by)
	stale.ErrorDetails = datatypes.JSON(details)
	stale.CompletedAt = &now
	if err := tx.Runs().Update(ctx, stale); err != nil {
		return fmt.Errorf("failed to close stale run %s: %w", stale.ID, err)
	}
	t.logger.Warn("Closed stale sync run",
		zap.String("run_id", stale.ID),
		zap.String("superseded_by", by),
		zap.Time("started_at", stale.StartedAt))
	return nil
}

// Progress persists the running counters.
func (t *Tracker) Progress(ctx context.Context, run *models.SyncRun) error {
	return t.store.Runs().Update(ctx, run)
}

// Complete closes the run successfully, recording the store size for drift.
func (t *Tracker) Complete(ctx context.Context, run *models.SyncRun, storeCount int) error {
	now := t.clock.Now()
	run.Status = models.RunCompleted
	run.StoreCount = storeCount
	run.CompletedAt = &now
	return t.store.Runs().Update(ctx, run)
}

// Fail closes the run as failed with the error and the stack as details. It
// writes even when ctx is already cancelled.
func (t *Tracker) Fail(ctx context.Context, run *models.SyncRun, stage string, cause error) {
	now := t.clock.Now()
	details, _ := json.Marshal(map[string]any{
		"stage": stage,
		"error": cause.Error(),
		"stack": string(debug.Stack()),
	})

	run.Status = models.RunFailed
	run.ErrorMessage = fmt.Sprintf("sync failed while %s: %v", stage, cause)
	run.ErrorDetails = datatypes.JSON(details)
	run.CompletedAt = &now

	if err := t.store.Runs().Update(context.WithoutCancel(ctx), run); err != nil {
		t.logger.Error("Failed to record failed sync run",
			zap.String("run_id", run.ID),
			zap.Error(err))
	}
}

// FixStale completes every run stuck in progress for longer than threshold
// minutes. The store's item count becomes the processed figure.
func (t *Tracker) FixStale(ctx context.Context, thresholdMinutes int) (int, error) {
	now := t.clock.Now()
	cutoff := now.Add(-time.Duration(thresholdMinutes) * time.Minute)

	stale, err := t.store.Runs().StartedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	count, err := t.store.Items().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	details, _ := json.Marshal(map[string]any{
		"repaired":          true,
		"threshold_minutes": thresholdMinutes,
	})

	fixed := 0
	for i := range stale {
		run := &stale[i]
		run.Status = models.RunCompleted
		run.Processed = int(count)
		run.StoreCount = int(count)
		run.ErrorDetails = datatypes.JSON(details)
		run.CompletedAt = &now
		if err := t.store.Runs().Update(ctx, run); err != nil {
			return fixed, fmt.Errorf("failed to repair run %s: %w", run.ID, err)
		}
		t.logger.Warn("Repaired stale sync run",
			zap.String("run_id", run.ID),
			zap.String("target", run.Target),
			zap.Time("started_at", run.StartedAt),
			zap.Int64("store_count", count))
		fixed++
	}
	return fixed, nil
}
