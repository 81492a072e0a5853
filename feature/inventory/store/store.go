package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-ledger/core/database"
	"asset-ledger/feature/inventory/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an item key already exists.
	ErrDuplicateKey = errors.New("duplicate item key")
)

// ItemRepository reads and writes the current state of items.
type ItemRepository interface {
	FindByKey(ctx context.Context, key string) (*models.Item, error)
	// FindByKeys loads every listed item in one logical query.
	FindByKeys(ctx context.Context, keys []string) (map[string]models.Item, error)
	// FindForUpdate loads an item and locks its row until the transaction ends.
	FindForUpdate(ctx context.Context, key string) (*models.Item, error)
	ListInStock(ctx context.Context, location string) ([]models.Item, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []models.Item) error
	Update(ctx context.Context, item *models.Item) error
	// TouchSeen advances last_seen_at for the keys without moving it backwards.
	TouchSeen(ctx context.Context, keys []string, at time.Time) error
}

// MovementFilter narrows a ledger query. Zero values match everything.
type MovementFilter struct {
	ItemKey  string
	Type     models.MovementType
	// Location matches movements at the location or leaving it.
	Location string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// MovementPage is one page of a ledger query, newest first.
type MovementPage struct {
	Movements []models.Movement `json:"movements"`
	Total     int64             `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// MovementRepository is the append-only ledger. It exposes no update or delete.
type MovementRepository interface {
	Append(ctx context.Context, movement *models.Movement) error
	AppendBatch(ctx context.Context, movements []models.Movement) error
	HistoryFor(ctx context.Context, key string, limit int) ([]models.Movement, error)
	Query(ctx context.Context, filter MovementFilter) (*MovementPage, error)
	// CountByType groups the movements matching filter by type; paging is ignored.
	CountByType(ctx context.Context, filter MovementFilter) (map[models.MovementType]int64, error)
	Count(ctx context.Context) (int64, error)
}

// RunRepository persists sync runs.
type RunRepository interface {
	Create(ctx context.Context, run *models.SyncRun) error
	Update(ctx context.Context, run *models.SyncRun) error
	Get(ctx context.Context, id string) (*models.SyncRun, error)
	// Latest returns the most recently started run, for target or any target when empty.
	Latest(ctx context.Context, target string) (*models.SyncRun, error)
	// InProgress returns in-progress runs of target, locking them inside a transaction.
	InProgress(ctx context.Context, target string) ([]models.SyncRun, error)
	// StartedBefore returns in-progress runs started before the cutoff.
	StartedBefore(ctx context.Context, cutoff time.Time) ([]models.SyncRun, error)
}

// SnapshotRepository persists daily snapshots.
type SnapshotRepository interface {
	// Upsert inserts or replaces the snapshot for its (date, location).
	Upsert(ctx context.Context, snapshot *models.DailySnapshot) error
	Get(ctx context.Context, date, location string) (*models.DailySnapshot, error)
	// Range returns snapshots with from <= date <= to for location, oldest first.
	Range(ctx context.Context, from, to, location string) ([]models.DailySnapshot, error)
}

// Tx groups the repositories bound to one unit of work.
type Tx interface {
	Items() ItemRepository
	Movements() MovementRepository
	Runs() RunRepository
	Snapshots() SnapshotRepository
}

// Store is the canonical store. Its repositories run outside any transaction;
// Transaction runs fn atomically and rolls back when it returns an error.
type Store interface {
	Tx
	Transaction(ctx context.Context, fn func(tx Tx) error) error
	Migrate(ctx context.Context) error
	Close() error
}

// Open selects the backend once, from the database driver.
func Open(cfg database.Config) (Store, error) {
	if cfg.Driver == database.DriverMemory {
		return NewMemory(), nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return NewGorm(db), nil
}

// Models lists the tables owned by the store.
func Models() []any {
	return []any{&models.Item{}, &models.Movement{}, &models.SyncRun{}, &models.DailySnapshot{}}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
