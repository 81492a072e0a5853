package validation

import (
	"errors"

	"asset-ledger/core/logger"
	"asset-ledger/feature/inventory/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// KeysRequest carries a list of asset keys.
type KeysRequest struct {
	Keys []string `json:"keys"`
}

// Handler handles HTTP requests for item lookups and validation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup and validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/items/:key", h.HandleGetItem)
	app.Post("/items/search", h.HandleSearch)
	app.Post("/validate", h.HandleValidate)
	app.Post("/validate/refresh", h.HandleRefresh)
}

// HandleGetItem returns one stored item.
// @Summary Get Item
// @Tags items
// @Produce json
// @Param key path string true "Asset key"
// @Success 200 {object} models.Item
// @Failure 404 {object} map[string]string "Not Found"
// @Router /items/{key} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	item, err := h.service.FindByKey(c.Context(), c.Params("key"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "item not found"})
	}
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

// HandleSearch looks up many keys in the store.
// @Summary Search Items
// @Tags items
// @Accept json
// @Produce json
// @Param request body KeysRequest true "Keys"
// @Success 200 {object} SearchResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /items/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	var req KeysRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.FindByKeys(c.Context(), req.Keys)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// HandleValidate classifies keys by provenance.
// @Summary Validate Keys
// @Description Classifies keys as primary, secondary or unknown. A secondary outage yields unknown results and a warning.
// @Tags items
// @Accept json
// @Produce json
// @Param request body KeysRequest true "Keys"
// @Success 200 {object} Report
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /validate [post]
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	var req KeysRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	report, err := h.service.Validate(c.Context(), req.Keys)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleRefresh drops the cached secondary inventory so the next validation
// fetches it again.
// @Summary Refresh Secondary Inventory
// @Tags items
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /validate/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	if err := h.service.InvalidateSecondary(c.Context()); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "refreshed"})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrNoKeys) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Validation request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
