package store

import (
	"time"

	"asset-ledger/feature/inventory/models"

	"github.com/oklog/ulid/v2"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// prepareMovement assigns the server-side id and timestamp of a new movement.
func prepareMovement(m *models.Movement) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.ID == "" {
		m.ID = ulid.MustNewDefault(m.CreatedAt).String()
	}
}

func (f MovementFilter) normalized() MovementFilter {
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Limit > maxPageSize {
		f.Limit = maxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

func (f MovementFilter) matches(m models.Movement) bool {
	if f.ItemKey != "" && m.ItemKey != f.ItemKey {
		return false
	}
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.Location != "" && m.Location != f.Location && m.FromLocation != f.Location {
		return false
	}
	if !f.From.IsZero() && m.CreatedAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !m.CreatedAt.Before(f.To) {
		return false
	}
	return true
}

// newerFirst orders movements by time then id, newest first.
func newerFirst(a, b models.Movement) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	switch {
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}
