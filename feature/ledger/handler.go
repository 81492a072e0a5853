package ledger

import (
	"errors"
	"fmt"
	"time"

	"asset-ledger/core/logger"
	"asset-ledger/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the movement ledger.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ledger routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/items/:key/history", h.HandleHistory)
	app.Get("/movements", h.HandleQuery)
}

// HandleHistory returns the movements of one item.
// @Summary Item History
// @Description Movements of an item, newest first.
// @Tags ledger
// @Produce json
// @Param key path string true "Asset key"
// @Param limit query int false "Maximum number of movements"
// @Success 200 {array} models.Movement
// @Router /items/{key}/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	movements, err := h.service.HistoryFor(c.Context(), c.Params("key"), c.QueryInt("limit", 0))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(movements)
}

// HandleQuery pages through the ledger.
// @Summary Query Movements
// @Tags ledger
// @Produce json
// @Param key query string false "Asset key"
// @Param type query string false "Movement type"
// @Param location query string false "Location"
// @Param from query string false "Start (RFC3339 or YYYY-MM-DD, inclusive)"
// @Param to query string false "End (RFC3339 or YYYY-MM-DD, exclusive)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} store.MovementPage
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /movements [get]
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	from, err := parseTime(c.Query("from"))
	if err != nil {
		return h.fail(c, err)
	}
	to, err := parseTime(c.Query("to"))
	if err != nil {
		return h.fail(c, err)
	}

	page, err := h.service.Query(c.Context(), Filter{
		ItemKey:  c.Query("key"),
		Type:     c.Query("type"),
		Location: c.Query("location"),
		From:     from,
		To:       to,
		Limit:    c.QueryInt("limit", 0),
		Offset:   c.QueryInt("offset", 0),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(page)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrInvalidFilter) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Ledger query failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(models.DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad time %q", ErrInvalidFilter, v)
	}
	return t, nil
}
