package movement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"asset-ledger/core/clock"
	"asset-ledger/core/events"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"
	"asset-ledger/feature/ledger"

	"go.uber.org/zap"
)

// Meta is attached to every movement an operation appends.
type Meta struct {
	Note  string `json:"note"`
	Actor string `json:"actor"`
}

// StatusChange lists the state fields to set. Nil fields are left alone.
type StatusChange struct {
	Grade      *string `json:"grade"`
	LockStatus *string `json:"lock_status"`
}

// mutation applies one operation to a locked item and describes the movements
// it caused. Returning no movements leaves the item untouched.
type mutation func(item *models.Item) ([]models.Movement, error)

// Service runs explicit item operations. Every key runs in its own transaction.
type Service struct {
	store     store.Store
	publisher events.Publisher
	clock     clock.Clock
	logger    *zap.Logger
}

// NewService creates a movement service.
func NewService(st store.Store, publisher events.Publisher, clk clock.Clock, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{store: st, publisher: publisher, clock: clk, logger: logger}
}

// Ship marks in-stock items as shipped.
func (s *Service) Ship(ctx context.Context, keys []string, meta Meta) (*BatchResult, error) {
	return s.each(ctx, keys, meta, func(item *models.Item) ([]models.Movement, error) {
		switch item.Status {
		case models.StatusShipped:
			return nil, violated(item.Key, ErrAlreadyShipped)
		case models.StatusRemoved:
			return nil, violated(item.Key, ErrItemRemoved)
		}

		m := models.Movement{
			Type:         models.MovementShipped,
			FromStatus:   item.Status,
			ToStatus:     models.StatusShipped,
			FromLocation: item.Location,
		}
		item.Status = models.StatusShipped
		return []models.Movement{m}, nil
	})
}

// Transfer moves in-stock items to another location. The status is unchanged.
func (s *Service) Transfer(ctx context.Context, keys []string, toLocation string, meta Meta) (*BatchResult, error) {
	toLocation = strings.TrimSpace(toLocation)
	if toLocation == "" {
		return nil, fmt.Errorf("%w: target location is required", ErrInvalidRequest)
	}

	return s.each(ctx, keys, meta, func(item *models.Item) ([]models.Movement, error) {
		switch {
		case item.Status == models.StatusRemoved:
			return nil, violated(item.Key, ErrItemRemoved)
		case item.Status == models.StatusShipped:
			return nil, violated(item.Key, ErrAlreadyShipped)
		case item.Location == toLocation:
			return nil, violated(item.Key, ErrSameLocation)
		}

		m := models.Movement{
			Type:         models.MovementTransferred,
			FromLocation: item.Location,
			ToLocation:   toLocation,
		}
		item.Location = toLocation
		return []models.Movement{m}, nil
	})
}

// UpdateStatus sets the grade and lock status of one item. Each field that
// actually differs appends its own movement; no difference is a successful no-op.
func (s *Service) UpdateStatus(ctx context.Context, key string, change StatusChange, meta Meta) (*BatchResult, error) {
	if change.Grade == nil && change.LockStatus == nil {
		return nil, fmt.Errorf("%w: grade or lock_status is required", ErrInvalidRequest)
	}

	return s.each(ctx, []string{key}, meta, func(item *models.Item) ([]models.Movement, error) {
		if item.Status == models.StatusRemoved {
			return nil, violated(item.Key, ErrItemRemoved)
		}

		var out []models.Movement
		if change.Grade != nil {
			grade := strings.ToUpper(strings.TrimSpace(*change.Grade))
			if grade != item.Grade {
				out = append(out, models.Movement{
					Type:      models.MovementGradeChanged,
					FromGrade: item.Grade,
					ToGrade:   grade,
				})
				item.Grade = grade
			}
		}
		if change.LockStatus != nil {
			lock := strings.ToLower(strings.TrimSpace(*change.LockStatus))
			if lock != item.LockStatus {
				out = append(out, models.Movement{
					Type:           models.MovementStatusChanged,
					FromLockStatus: item.LockStatus,
					ToLockStatus:   lock,
				})
				item.LockStatus = lock
			}
		}
		return out, nil
	})
}

// Remove retires items from the inventory. Items are never deleted.
func (s *Service) Remove(ctx context.Context, keys []string, meta Meta) (*BatchResult, error) {
	return s.each(ctx, keys, meta, func(item *models.Item) ([]models.Movement, error) {
		if item.Status == models.StatusRemoved {
			return nil, violated(item.Key, ErrItemRemoved)
		}

		m := models.Movement{
			Type:         models.MovementRemoved,
			FromStatus:   item.Status,
			ToStatus:     models.StatusRemoved,
			FromLocation: item.Location,
		}
		item.Status = models.StatusRemoved
		return []models.Movement{m}, nil
	})
}

func (s *Service) each(ctx context.Context, keys []string, meta Meta, fn mutation) (*BatchResult, error) {
	keys = uniqueKeys(keys)
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	result := &BatchResult{Results: make([]KeyResult, 0, len(keys))}
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		ids, err := s.apply(ctx, key, meta, fn)
		var pe *PreconditionError
		if err != nil && !errors.As(err, &pe) {
			s.logger.Error("Movement operation failed",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		result.add(key, ids, err)
	}
	return result, nil
}

func (s *Service) apply(ctx context.Context, key string, meta Meta, fn mutation) ([]string, error) {
	var appended []models.Movement

	err := s.store.Transaction(ctx, func(tx store.Tx) error {
		item, err := tx.Items().FindForUpdate(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			return violated(key, ErrItemNotFound)
		}
		if err != nil {
			return err
		}

		movements, err := fn(item)
		if err != nil || len(movements) == 0 {
			return err
		}

		now := s.clock.Now().UTC()
		item.UpdatedAt = now
		if err := tx.Items().Update(ctx, item); err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		snapshot := models.SnapshotOf(*item)
		for i := range movements {
			m := &movements[i]
			m.ItemKey = item.Key
			m.Location = item.Location
			m.Source = models.SourceManual
			m.Actor = meta.Actor
			m.Note = meta.Note
			m.Snapshot = snapshot
			m.CreatedAt = now
			if _, err := ledger.Append(ctx, tx, m); err != nil {
				return fmt.Errorf("failed to append movement: %w", err)
			}
		}
		appended = movements
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(appended))
	for _, m := range appended {
		ids = append(ids, m.ID)
		if err := s.publisher.Publish(ctx, string(m.Type), m); err != nil {
			s.logger.Warn("Failed to publish movement",
				zap.String("movement_id", m.ID),
				zap.Error(err),
			)
		}
	}
	return ids, nil
}

// uniqueKeys trims keys and drops blanks and repeats, keeping first-seen order.
func uniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
