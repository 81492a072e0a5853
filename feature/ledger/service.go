package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"asset-ledger/feature/inventory/models"
	"asset-ledger/feature/inventory/store"

	"go.uber.org/zap"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

var (
	// ErrInvalidMovement reports a movement that cannot enter the ledger.
	ErrInvalidMovement = errors.New("invalid movement")
	// ErrInvalidFilter reports a query filter that cannot be evaluated.
	ErrInvalidFilter = errors.New("invalid filter")
)

// Append validates a movement and adds it to the ledger within tx, returning
// the assigned id. The ledger has no update or delete.
func Append(ctx context.Context, tx store.Tx, m *models.Movement) (string, error) {
	if strings.TrimSpace(m.ItemKey) == "" {
		return "", fmt.Errorf("%w: item key is required", ErrInvalidMovement)
	}
	if !slices.Contains(models.MovementTypes, m.Type) {
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidMovement, m.Type)
	}
	if m.Source == "" {
		m.Source = models.SourceManual
	}
	if len(m.Snapshot) == 0 {
		return "", fmt.Errorf("%w: snapshot is required", ErrInvalidMovement)
	}
	if err := tx.Movements().Append(ctx, m); err != nil {
		return "", err
	}
	return m.ID, nil
}

// Filter is a ledger query as received from callers.
type Filter struct {
	ItemKey  string
	Type     string
	Location string
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

// Service answers history queries over the ledger.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates a ledger service.
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// HistoryFor returns the movements of an item, newest first.
func (s *Service) HistoryFor(ctx context.Context, key string, limit int) ([]models.Movement, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: item key is required", ErrInvalidFilter)
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	movements, err := s.store.Movements().HistoryFor(ctx, key, limit)
	if err != nil {
		return nil, err
	}
	if movements == nil {
		movements = []models.Movement{}
	}
	return movements, nil
}

// Query returns one page of movements matching the filter, newest first.
func (s *Service) Query(ctx context.Context, f Filter) (*store.MovementPage, error) {
	if f.Type != "" && !slices.Contains(models.MovementTypes, models.MovementType(f.Type)) {
		return nil, fmt.Errorf("%w: unknown movement type %q", ErrInvalidFilter, f.Type)
	}
	if !f.From.IsZero() && !f.To.IsZero() && !f.From.Before(f.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidFilter)
	}

	page, err := s.store.Movements().Query(ctx, store.MovementFilter{
		ItemKey:  strings.TrimSpace(f.ItemKey),
		Type:     models.MovementType(f.Type),
		Location: f.Location,
		From:     f.From,
		To:       f.To,
		Limit:    f.Limit,
		Offset:   f.Offset,
	})
	if err != nil {
		return nil, err
	}
	if page.Movements == nil {
		page.Movements = []models.Movement{}
	}
	return page, nil
}
