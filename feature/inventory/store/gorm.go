package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-ledger/feature/inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keyChunk keeps IN lists below the SQLite bound parameter limit.
const keyChunk = 500

// GormStore implements Store on a SQL database.
type GormStore struct {
	db *gorm.DB
}

// NewGorm wraps an open connection.
func NewGorm(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB exposes the underlying connection for schema inspection.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Items() ItemRepository         { return &gormItems{db: s.db} }
func (s *GormStore) Movements() MovementRepository { return &gormMovements{db: s.db} }
func (s *GormStore) Runs() RunRepository           { return &gormRuns{db: s.db, locking: false} }
func (s *GormStore) Snapshots() SnapshotRepository { return &gormSnapshots{db: s.db} }

// Transaction runs fn inside a database transaction.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

// Migrate creates or updates the tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate store: %w", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) Items() ItemRepository         { return &gormItems{db: t.db, locking: true} }
func (t *gormTx) Movements() MovementRepository { return &gormMovements{db: t.db} }
func (t *gormTx) Runs() RunRepository           { return &gormRuns{db: t.db, locking: true} }
func (t *gormTx) Snapshots() SnapshotRepository { return &gormSnapshots{db: t.db} }

type gormItems struct {
	db      *gorm.DB
	locking bool
}

func (r *gormItems) FindByKey(ctx context.Context, key string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Where("item_key = ?", key).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *gormItems) FindByKeys(ctx context.Context, keys []string) (map[string]models.Item, error) {
	found := make(map[string]models.Item, len(keys))
	for start := 0; start < len(keys); start += keyChunk {
		end := min(start+keyChunk, len(keys))
		var items []models.Item
		if err := r.db.WithContext(ctx).Where("item_key IN ?", keys[start:end]).Find(&items).Error; err != nil {
			return nil, fmt.Errorf("failed to load items: %w", err)
		}
		for _, item := range items {
			found[item.Key] = item
		}
	}
	return found, nil
}

func (r *gormItems) FindForUpdate(ctx context.Context, key string) (*models.Item, error) {
	q := r.db.WithContext(ctx)
	if r.locking {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var item models.Item
	if err := q.Where("item_key = ?", key).First(&item).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *gormItems) ListInStock(ctx context.Context, location string) ([]models.Item, error) {
	q := r.db.WithContext(ctx).Where("status = ?", models.StatusInStock)
	if location != "" {
		q = q.Where("location = ?", location)
	}
	var items []models.Item
	if err := q.Order("item_key").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list in-stock items: %w", err)
	}
	return items, nil
}

func (r *gormItems) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).Count(&n).Error
	return n, err
}

func (r *gormItems) CreateBatch(ctx context.Context, items []models.Item) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(items, 200).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create items: %w", err)
	}
	return nil
}

func (r *gormItems) Update(ctx context.Context, item *models.Item) error {
	err := r.db.WithContext(ctx).Model(item).
		Select("*").Omit("item_key", "created_at", "first_seen_at").
		Updates(item).Error
	if err != nil {
		return fmt.Errorf("failed to update item %s: %w", item.Key, err)
	}
	return nil
}

func (r *gormItems) TouchSeen(ctx context.Context, keys []string, at time.Time) error {
	for start := 0; start < len(keys); start += keyChunk {
		end := min(start+keyChunk, len(keys))
		err := r.db.WithContext(ctx).Model(&models.Item{}).
			Where("item_key IN ? AND last_seen_at < ?", keys[start:end], at).
			UpdateColumn("last_seen_at", at).Error
		if err != nil {
			return fmt.Errorf("failed to touch items: %w", err)
		}
	}
	return nil
}

type gormMovements struct {
	db *gorm.DB
}

func (r *gormMovements) Append(ctx context.Context, movement *models.Movement) error {
	prepareMovement(movement)
	if err := r.db.WithContext(ctx).Create(movement).Error; err != nil {
		return fmt.Errorf("failed to append movement: %w", err)
	}
	return nil
}

func (r *gormMovements) AppendBatch(ctx context.Context, movements []models.Movement) error {
	if len(movements) == 0 {
		return nil
	}
	for i := range movements {
		prepareMovement(&movements[i])
	}
	if err := r.db.WithContext(ctx).CreateInBatches(movements, 200).Error; err != nil {
		return fmt.Errorf("failed to append movements: %w", err)
	}
	return nil
}

func (r *gormMovements) HistoryFor(ctx context.Context, key string, limit int) ([]models.Movement, error) {
	q := r.db.WithContext(ctx).Where("item_key = ?", key).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var movements []models.Movement
	if err := q.Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", key, err)
	}
	return movements, nil
}

func (r *gormMovements) filtered(ctx context.Context, f MovementFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Movement{})
	if f.ItemKey != "" {
		q = q.Where("item_key = ?", f.ItemKey)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Location != "" {
		q = q.Where("(location = ? OR from_location = ?)", f.Location, f.Location)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}
	return q
}

func (r *gormMovements) Query(ctx context.Context, f MovementFilter) (*MovementPage, error) {
	f = f.normalized()
	page := &MovementPage{Limit: f.Limit, Offset: f.Offset}
	if err := r.filtered(ctx, f).Count(&page.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count movements: %w", err)
	}
	err := r.filtered(ctx, f).
		Order("created_at DESC").Order("id DESC").
		Limit(f.Limit).Offset(f.Offset).
		Find(&page.Movements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	return page, nil
}

func (r *gormMovements) CountByType(ctx context.Context, f MovementFilter) (map[models.MovementType]int64, error) {
	var rows []struct {
		Type  models.MovementType
		Total int64
	}
	err := r.filtered(ctx, f).
		Select("type, COUNT(*) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count movements by type: %w", err)
	}
	counts := make(map[models.MovementType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Total
	}
	return counts, nil
}

func (r *gormMovements) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Movement{}).Count(&n).Error
	return n, err
}

type gormRuns struct {
	db      *gorm.DB
	locking bool
}

func (r *gormRuns) Create(ctx context.Context, run *models.SyncRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create sync run: %w", err)
	}
	return nil
}

func (r *gormRuns) Update(ctx context.Context, run *models.SyncRun) error {
	if err := r.db.WithContext(ctx).Save(run).Error; err != nil {
		return fmt.Errorf("failed to update sync run %s: %w", run.ID, err)
	}
	return nil
}

func (r *gormRuns) Get(ctx context.Context, id string) (*models.SyncRun, error) {
	var run models.SyncRun
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error; err != nil {
		return nil, notFound(err)
	}
	return &run, nil
}

func (r *gormRuns) Latest(ctx context.Context, target string) (*models.SyncRun, error) {
	q := r.db.WithContext(ctx)
	if target != "" {
		q = q.Where("target = ?", target)
	}
	var run models.SyncRun
	if err := q.Order("started_at DESC").First(&run).Error; err != nil {
		return nil, notFound(err)
	}
	return &run, nil
}

func (r *gormRuns) InProgress(ctx context.Context, target string) ([]models.SyncRun, error) {
	q := r.db.WithContext(ctx)
	if r.locking {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var runs []models.SyncRun
	err := q.Where("target = ? AND status = ?", target, models.RunInProgress).
		Order("started_at").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load in-progress runs: %w", err)
	}
	return runs, nil
}

func (r *gormRuns) StartedBefore(ctx context.Context, cutoff time.Time) ([]models.SyncRun, error) {
	var runs []models.SyncRun
	err := r.db.WithContext(ctx).
		Where("status = ? AND started_at < ?", models.RunInProgress, cutoff).
		Order("started_at").
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load stale runs: %w", err)
	}
	return runs, nil
}

type gormSnapshots struct {
	db *gorm.DB
}

func (r *gormSnapshots) Upsert(ctx context.Context, snapshot *models.DailySnapshot) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "snapshot_date"}, {Name: "location_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_count", "by_grade", "by_model", "by_lock_status",
			"added", "shipped", "transferred", "status_changed", "removed",
			"items", "generated_at",
		}),
	}).Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot %s: %w", snapshot.SnapshotDate, err)
	}
	return nil
}

func (r *gormSnapshots) Get(ctx context.Context, date, location string) (*models.DailySnapshot, error) {
	var snapshot models.DailySnapshot
	err := r.db.WithContext(ctx).
		Where("snapshot_date = ? AND location_id = ?", date, location).
		First(&snapshot).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &snapshot, nil
}

func (r *gormSnapshots) Range(ctx context.Context, from, to, location string) ([]models.DailySnapshot, error) {
	var snapshots []models.DailySnapshot
	err := r.db.WithContext(ctx).
		Where("snapshot_date >= ? AND snapshot_date <= ? AND location_id = ?", from, to, location).
		Order("snapshot_date").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}
	return snapshots, nil
}
