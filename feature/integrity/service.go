package integrity

import (
	"context"

	"asset-ledger/core/storage"
	"asset-ledger/feature/integrity/checks"
	"asset-ledger/feature/inventory/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	objects []string
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. objects are the source CSV
// object names that must exist in bucket; db is nil for the memory backend.
func NewService(client storage.Client, bucket string, objects []string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		objects: objects,
		db:      db,
		logger:  logger,
	}
}

// CheckSchema compares the live tables with the store models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, store.Models())
}

// CheckSource verifies the source objects exist.
func (s *Service) CheckSource(ctx context.Context) (*checks.SourceReport, error) {
	return checks.CheckSource(ctx, s.client, s.bucket, s.objects)
}
