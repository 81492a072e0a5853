package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-ledger/core/clock"
	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"

	"go.uber.org/zap"
)

// maxRangeDays bounds range queries.
const maxRangeDays = 366

const unknownBucket = "unknown"

// ErrInvalidDate reports a malformed date or an inverted range.
var ErrInvalidDate = errors.New("invalid date")

// RangeSummary aggregates the snapshots of a date range.
type RangeSummary struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Location      string `json:"location"`
	Days          int    `json:"days"`
	OpeningCount  int    `json:"opening_count"`
	ClosingCount  int    `json:"closing_count"`
	NetChange     int    `json:"net_change"`
	Added         int    `json:"added"`
	Shipped       int    `json:"shipped"`
	Transferred   int    `json:"transferred"`
	StatusChanged int    `json:"status_changed"`
	Removed       int    `json:"removed"`
}

// Service generates and reads daily snapshots.
type Service struct {
	store  store.Store
	clock  clock.Clock
	logger *zap.Logger
}

// NewService creates a snapshot service.
func NewService(st store.Store, clk clock.Clock, logger *zap.Logger) *Service {
	return &Service{store: st, clock: clk, logger: logger}
}

// Generate computes the snapshot of date (today when empty) for location (all
// locations when empty) and replaces any earlier snapshot of the same day.
func (s *Service) Generate(ctx context.Context, date, location string) (*models.DailySnapshot, error) {
	if date == "" {
		date = s.clock.Now().UTC().Format(models.DateLayout)
	}
	start, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	location = strings.TrimSpace(location)

	snapshot := &models.DailySnapshot{SnapshotDate: date, LocationID: location}
	err = s.store.Transaction(ctx, func(tx store.Tx) error {
		items, err := tx.Items().ListInStock(ctx, location)
		if err != nil {
			return err
		}

		counts, err := tx.Movements().CountByType(ctx, store.MovementFilter{
			Location: location,
			From:     start,
			To:       start.AddDate(0, 0, 1),
		})
		if err != nil {
			return err
		}

		if err := fill(snapshot, items, counts); err != nil {
			return err
		}
		snapshot.GeneratedAt = s.clock.Now().UTC()
		return tx.Snapshots().Upsert(ctx, snapshot)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate snapshot for %s: %w", date, err)
	}

	s.logger.Info("Generated daily snapshot",
		zap.String("date", date),
		zap.String("location", location),
		zap.Int("total", snapshot.TotalCount),
	)
	return snapshot, nil
}

// GetByDate returns the snapshot of one day.
func (s *Service) GetByDate(ctx context.Context, date, location string) (*models.DailySnapshot, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	return s.store.Snapshots().Get(ctx, date, strings.TrimSpace(location))
}

// GetRange returns the snapshots between from and to inclusive, oldest first.
func (s *Service) GetRange(ctx context.Context, from, to, location string) ([]models.DailySnapshot, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	snapshots, err := s.store.Snapshots().Range(ctx, from, to, strings.TrimSpace(location))
	if err != nil {
		return nil, err
	}
	if snapshots == nil {
		snapshots = []models.DailySnapshot{}
	}
	return snapshots, nil
}

// GetRangeSummary totals the movement counts of a range and reports the
// in-stock count of its first and last snapshot.
func (s *Service) GetRangeSummary(ctx context.Context, from, to, location string) (*RangeSummary, error) {
	snapshots, err := s.GetRange(ctx, from, to, location)
	if err != nil {
		return nil, err
	}

	summary := &RangeSummary{From: from, To: to, Location: strings.TrimSpace(location), Days: len(snapshots)}
	if len(snapshots) == 0 {
		return summary, nil
	}

	for _, snap := range snapshots {
		summary.Added += snap.Added
		summary.Shipped += snap.Shipped
		summary.Transferred += snap.Transferred
		summary.StatusChanged += snap.StatusChanged
		summary.Removed += snap.Removed
	}
	summary.OpeningCount = snapshots[0].TotalCount
	summary.ClosingCount = snapshots[len(snapshots)-1].TotalCount
	summary.NetChange = summary.ClosingCount - summary.OpeningCount
	return summary, nil
}

func fill(snap *models.DailySnapshot, items []models.Item, counts map[models.MovementType]int64) error {
	byGrade := map[string]int{}
	byModel := map[string]int{}
	byLock := map[string]int{}
	listing := make([]models.Attributes, 0, len(items))
	for _, item := range items {
		byGrade[bucket(item.Grade)]++
		byModel[bucket(item.Model)]++
		byLock[bucket(item.LockStatus)]++
		listing = append(listing, item.Attributes())
	}

	var err error
	snap.TotalCount = len(items)
	if snap.ByGrade, err = json.Marshal(byGrade); err != nil {
		return err
	}
	if snap.ByModel, err = json.Marshal(byModel); err != nil {
		return err
	}
	if snap.ByLockStatus, err = json.Marshal(byLock); err != nil {
		return err
	}
	if snap.Items, err = json.Marshal(listing); err != nil {
		return err
	}

	snap.Added = int(counts[models.MovementAdded])
	snap.Shipped = int(counts[models.MovementShipped])
	snap.Transferred = int(counts[models.MovementTransferred])
	snap.StatusChanged = int(counts[models.MovementGradeChanged] + counts[models.MovementStatusChanged])
	snap.Removed = int(counts[models.MovementRemoved])
	return nil
}

func bucket(v string) string {
	if v == "" {
		return unknownBucket
	}
	return v
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, date)
	}
	return t, nil
}

func checkRange(from, to string) error {
	start, err := parseDate(from)
	if err != nil {
		return err
	}
	end, err := parseDate(to)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return fmt.Errorf("%w: %s is after %s", ErrInvalidDate, from, to)
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidDate, maxRangeDays)
	}
	return nil
}
