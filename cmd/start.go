package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"asset-ledger/core/loader"
	"asset-ledger/core/logger"
	"asset-ledger/core/middleware/auth"
	"asset-ledger/core/middleware/rayid"
	"asset-ledger/core/storage"

	"asset-ledger/feature/integrity"
	"asset-ledger/feature/ledger"
	"asset-ledger/feature/movement"
	"asset-ledger/feature/snapshot"
	"asset-ledger/feature/sync"
	"asset-ledger/feature/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-ledger/docs/swagger"
)

// @title Asset Ledger API
// @version 1.0
// @description Inventory synchronization and append-only movement ledger.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset ledger server",
	Long:  `Starts the HTTP server, repairs stale sync runs and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Configuration, logger, store, storage and events
		a, err := newApp(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer a.close()
		zap.ReplaceGlobals(a.logger)
		logg := a.logger

		if err := storage.Ping(ctx, a.storage, a.cfg.Storage.Bucket); err != nil {
			logg.Warn("Source bucket unavailable, syncs will fail until it is reachable", zap.Error(err))
		}

		// 2. Services
		syncService := a.syncService()
		if fixed, err := syncService.FixStale(ctx, a.cfg.Sync.StaleMinutes); err != nil {
			logg.Warn("Failed to repair stale sync runs", zap.Error(err))
		} else if fixed > 0 {
			logg.Info("Repaired stale sync runs", zap.Int("fixed", fixed))
		}

		validationService, err := a.validationService(ctx)
		if err != nil {
			logg.Fatal("Failed to open reconciliation cache", zap.Error(err))
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             a.cfg.Server.BodyLimitBytes(),
		})

		// 4. Register Features
		mgr := loader.NewManager()
		mgr.Register(sync.NewFeature(syncService))
		mgr.Register(validation.NewFeature(validationService))
		mgr.Register(ledger.NewFeature(a.store, logg))
		mgr.Register(movement.NewFeature(movement.NewService(a.store, a.publisher, a.clock, logg)))
		mgr.Register(snapshot.NewFeature(snapshot.NewService(a.store, a.clock, logg)))
		mgr.Register(integrity.NewFeature(a.storage, a.cfg.Storage.Bucket, a.sourceObjects(), a.db(), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
