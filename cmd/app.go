package cmd

import (
	"context"
	"fmt"
	"time"

	"asset-ledger/core/clock"
	"asset-ledger/core/config"
	"asset-ledger/core/events"
	"asset-ledger/core/logger"
	"asset-ledger/core/reconcile"
	"asset-ledger/core/source"
	"asset-ledger/core/storage"
	"asset-ledger/feature/inventory/store"
	"asset-ledger/feature/sync"
	"asset-ledger/feature/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	clock     clock.Clock
	store     store.Store
	storage   storage.Client
	publisher events.Publisher
}

// newApp loads the configuration, opens the store and migrates it.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publisher, err := events.New(cfg.Events, logg)
	if err != nil {
		logg.Warn("Event publishing disabled", zap.Error(err))
		publisher = events.Nop{}
	}

	return &app{
		cfg:       cfg,
		logger:    logg.With(zap.String("driver", cfg.Database.Driver)),
		clock:     clock.New(),
		store:     st,
		storage:   client,
		publisher: publisher,
	}, nil
}

func (a *app) close() {
	a.publisher.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warn("Failed to close store", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// db returns the gorm handle, or nil for the memory backend.
func (a *app) db() *gorm.DB {
	if gs, ok := a.store.(*store.GormStore); ok {
		return gs.DB()
	}
	return nil
}

func (a *app) primarySource() *source.ObjectSource {
	return source.NewObjectSource(a.storage, a.cfg.Storage.Bucket, a.cfg.Source, source.PrimarySchema(), a.logger)
}

func (a *app) secondarySource() *source.ObjectSource {
	return source.NewObjectSource(a.storage, a.cfg.Storage.Bucket, a.cfg.Source, source.SecondarySchema(), a.logger)
}

// sourceObjects lists the objects the sources read.
func (a *app) sourceObjects() []string {
	return []string{
		a.primarySource().ObjectName(a.cfg.Source.PrimaryID),
		a.secondarySource().ObjectName(a.cfg.Source.SecondaryID),
	}
}

func (a *app) syncService() *sync.Service {
	return sync.NewService(sync.Config{
		Target:       a.cfg.Source.PrimaryID,
		BatchSize:    a.cfg.Sync.BatchSize,
		FetchTimeout: time.Duration(a.cfg.Sync.FetchTimeoutSeconds) * time.Second,
		StaleAfter:   time.Duration(a.cfg.Sync.StaleMinutes) * time.Minute,
	}, a.store, a.primarySource(), a.publisher, a.clock, a.logger)
}

func (a *app) validationService(ctx context.Context) (*validation.Service, error) {
	cache, err := reconcile.Open(ctx, a.cfg.Cache, a.clock, a.logger)
	if err != nil {
		return nil, err
	}
	secondary := source.NewBestEffort(a.secondarySource(), a.logger)
	return validation.NewService(validation.Config{SecondaryID: a.cfg.Source.SecondaryID}, a.store, secondary, cache, a.logger), nil
}
