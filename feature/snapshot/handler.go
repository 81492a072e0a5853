package snapshot

import (
	"errors"

	"asset-ledger/core/logger"
	"asset-ledger/feature/inventory/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerateRequest is the body of a generate call.
type GenerateRequest struct {
	Date     string `json:"date"`
	Location string `json:"location"`
}

// Handler handles HTTP requests for daily snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshots")
	group.Post("/", h.HandleGenerate)
	group.Get("/", h.HandleRange)
	group.Get("/summary", h.HandleSummary)
	group.Get("/:date", h.HandleGet)
}

// HandleGenerate generates or regenerates a daily snapshot.
// @Summary Generate Snapshot
// @Description Computes the snapshot of a day and replaces any earlier one for the same day and location.
// @Tags snapshots
// @Accept json
// @Produce json
// @Param request body GenerateRequest false "Date (default today) and location"
// @Success 200 {object} models.DailySnapshot
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /snapshots [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	var req GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
	}
	snap, err := h.service.Generate(c.Context(), req.Date, req.Location)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snap)
}

// HandleGet returns the snapshot of one day.
// @Summary Get Snapshot
// @Tags snapshots
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param location query string false "Location"
// @Success 200 {object} models.DailySnapshot
// @Failure 404 {object} map[string]string "Not Found"
// @Router /snapshots/{date} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	snap, err := h.service.GetByDate(c.Context(), c.Params("date"), c.Query("location"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snap)
}

// HandleRange lists the snapshots of a range.
// @Summary List Snapshots
// @Tags snapshots
// @Produce json
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Param location query string false "Location"
// @Success 200 {array} models.DailySnapshot
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /snapshots [get]
func (h *Handler) HandleRange(c *fiber.Ctx) error {
	snaps, err := h.service.GetRange(c.Context(), c.Query("from"), c.Query("to"), c.Query("location"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snaps)
}

// HandleSummary totals a range.
// @Summary Summarize Snapshots
// @Tags snapshots
// @Produce json
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Last date (YYYY-MM-DD)"
// @Param location query string false "Location"
// @Success 200 {object} RangeSummary
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /snapshots/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetRangeSummary(c.Context(), c.Query("from"), c.Query("to"), c.Query("location"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(summary)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "snapshot not found"})
	}
	logger.WithRayID(h.service.logger, c).Error("Snapshot request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
