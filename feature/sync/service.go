package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-ledger/core/clock"
	"asset-ledger/core/events"
	"asset-ledger/core/source"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"

	"go.uber.org/zap"
)

// Config tunes a Service.
type Config struct {
	// Target is the source id synchronized into the store.
	Target       string
	BatchSize    int
	FetchTimeout time.Duration
	// StaleAfter is how long a run may stay in progress before it is stuck.
	StaleAfter time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 500
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 2 * time.Minute
	}
	if c.StaleAfter <= 0 {
		c.StaleAfter = 10 * time.Minute
	}
	return c
}

// Result summarizes a completed run.
type Result struct {
	RunID     string `json:"run_id"`
	Processed int    `json:"processed"`
	Added     int    `json:"added"`
	Updated   int    `json:"updated"`
	Unchanged int    `json:"unchanged"`
	Malformed int    `json:"malformed"`
}

// Service reconciles the primary source into the store.
type Service struct {
	cfg       Config
	store     store.Store
	source    source.Source
	tracker   *Tracker
	publisher events.Publisher
	clock     clock.Clock
	logger    *zap.Logger
}

// NewService creates a sync service.
func NewService(cfg Config, st store.Store, src source.Source, publisher events.Publisher, clk clock.Clock, logger *zap.Logger) *Service {
	cfg = cfg.withDefaults()
	return &Service{
		cfg:       cfg,
		store:     st,
		source:    src,
		tracker:   NewTracker(st, clk, cfg.StaleAfter, logger),
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// Tracker exposes the run tracker.
func (s *Service) Tracker() *Tracker {
	return s.tracker
}

// Run fetches the source, diffs it against the store and writes the difference
// in batches. Each batch commits on its own; a failure marks the run failed and
// keeps earlier batches.
func (s *Service) Run(ctx context.Context) (result *Result, err error) {
	run, err := s.tracker.Begin(ctx, s.cfg.Target)
	if err != nil {
		return nil, err
	}

	log := s.logger.With(zap.String("run_id", run.ID), zap.String("target", run.Target))
	log.Info("Sync started")

	stage := "fetching"
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			s.tracker.Fail(ctx, run, stage, err)
			log.Error("Sync panicked", zap.String("stage", stage), zap.Error(err))
			result = nil
		}
	}()

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	fetched, err := s.source.Fetch(fetchCtx, s.cfg.Target)
	cancel()
	if err != nil {
		s.tracker.Fail(ctx, run, stage, err)
		log.Error("Sync fetch failed", zap.Error(err))
		return nil, fmt.Errorf("fetch %s: %w", s.cfg.Target, err)
	}

	run.SourceRowCount = fetched.Total
	run.Malformed = fetched.Malformed
	if err := s.tracker.Progress(ctx, run); err != nil {
		log.Warn("Failed to record sync progress", zap.Error(err))
	}

	stage = "diffing"
	records, duplicates := dedupe(fetched.Records)
	if duplicates > 0 {
		log.Warn("Source contains duplicate keys, first occurrence kept", zap.Int("duplicates", duplicates))
	}

	stage = "writing"
	for start := 0; start < len(records); start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(records))
		plan, err := s.writeBatch(ctx, run.ID, records[start:end])
		if err != nil {
			err = fmt.Errorf("batch %d-%d: %w", start, end, err)
			s.tracker.Fail(ctx, run, stage, err)
			log.Error("Sync batch failed", zap.Int("offset", start), zap.Error(err))
			return nil, err
		}

		run.Added += plan.added
		run.Updated += plan.updated
		run.Unchanged += plan.unchanged
		run.Processed = run.Added + run.Updated + run.Unchanged
		if err := s.tracker.Progress(ctx, run); err != nil {
			log.Warn("Failed to record sync progress", zap.Error(err))
		}
		s.publish(ctx, plan.movements)
	}

	count, err := s.store.Items().Count(ctx)
	if err != nil {
		s.tracker.Fail(ctx, run, "completing", err)
		return nil, fmt.Errorf("count items: %w", err)
	}
	if err := s.tracker.Complete(ctx, run, int(count)); err != nil {
		return nil, fmt.Errorf("complete run %s: %w", run.ID, err)
	}

	log.Info("Sync completed",
		zap.Int("processed", run.Processed),
		zap.Int("added", run.Added),
		zap.Int("updated", run.Updated),
		zap.Int("unchanged", run.Unchanged),
		zap.Int("malformed", run.Malformed),
		zap.Int("drift", run.Drift()))

	return &Result{
		RunID:     run.ID,
		Processed: run.Processed,
		Added:     run.Added,
		Updated:   run.Updated,
		Unchanged: run.Unchanged,
		Malformed: run.Malformed,
	}, nil
}

// writeBatch loads the batch's stored items, plans and applies the writes in a
// single transaction.
func (s *Service) writeBatch(ctx context.Context, runID string, records []source.Record) (batchPlan, error) {
	keys := make([]string, len(records))
	for i, rec := range records {
		keys[i] = rec.Key
	}

	var plan batchPlan
	err := s.store.Transaction(ctx, func(tx store.Tx) error {
		existing, err := tx.Items().FindByKeys(ctx, keys)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		plan = planBatch(records, existing, runID, now)

		if err := tx.Items().CreateBatch(ctx, plan.creates); err != nil {
			return err
		}
		for i := range plan.updates {
			if err := tx.Items().Update(ctx, &plan.updates[i]); err != nil {
				return err
			}
		}
		if len(plan.touched) > 0 {
			if err := tx.Items().TouchSeen(ctx, plan.touched, now); err != nil {
				return err
			}
		}
		return tx.Movements().AppendBatch(ctx, plan.movements)
	})
	return plan, err
}

func (s *Service) publish(ctx context.Context, movements []models.Movement) {
	for i := range movements {
		m := &movements[i]
		if err := s.publisher.Publish(ctx, string(m.Type), m); err != nil {
			s.logger.Warn("Failed to publish movement",
				zap.String("movement_id", m.ID),
				zap.Error(err))
		}
	}
}

// LatestRun returns the most recent run of the target, or nil when none exists.
func (s *Service) LatestRun(ctx context.Context) (*models.SyncRun, error) {
	run, err := s.store.Runs().Latest(ctx, s.cfg.Target)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return run, err
}

// FixStale repairs runs stuck in progress for longer than thresholdMinutes.
func (s *Service) FixStale(ctx context.Context, thresholdMinutes int) (int, error) {
	if thresholdMinutes <= 0 {
		thresholdMinutes = int(s.cfg.StaleAfter / time.Minute)
	}
	return s.tracker.FixStale(ctx, thresholdMinutes)
}
