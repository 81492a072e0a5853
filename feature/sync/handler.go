package sync

import (
	"errors"

	"asset-ledger/core/logger"
	"asset-ledger/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for synchronization.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleRun)
	group.Get("/latest", h.HandleLatest)
	group.Post("/fix-stale", h.HandleFixStale)
}

// HandleRun triggers a synchronization run.
// @Summary Run Sync
// @Description Reconcile the primary source into the store. Fails with 409 while another run is in progress.
// @Tags sync
// @Produce json
// @Success 200 {object} sync.Result
// @Failure 409 {object} map[string]string "Sync already in progress"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Run(c.Context())
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, ErrSyncInProgress):
			status = fiber.StatusConflict
		case errors.Is(err, source.ErrSourceUnavailable):
			status = fiber.StatusBadGateway
		}
		l.Error("Sync run failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleLatest returns the most recent sync run.
// @Summary Latest Sync Run
// @Tags sync
// @Produce json
// @Success 200 {object} models.SyncRun
// @Failure 404 {object} map[string]string "No run recorded"
// @Router /sync/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	run, err := h.service.LatestRun(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if run == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no sync run recorded"})
	}
	return c.JSON(run)
}

// HandleFixStale completes runs stuck in progress.
// @Summary Fix Stale Runs
// @Tags sync
// @Produce json
// @Param minutes query int false "Staleness threshold in minutes"
// @Success 200 {object} map[string]int
// @Router /sync/fix-stale [post]
func (h *Handler) HandleFixStale(c *fiber.Ctx) error {
	fixed, err := h.service.FixStale(c.Context(), c.QueryInt("minutes", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"fixed": fixed})
}
