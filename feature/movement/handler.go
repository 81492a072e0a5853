package movement

import (
	"errors"

	"asset-ledger/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BatchRequest names the items of a ship, transfer or remove call.
type BatchRequest struct {
	Keys       []string `json:"keys"`
	ToLocation string   `json:"to_location,omitempty"`
	Meta
}

// StatusRequest is the body of a status update.
type StatusRequest struct {
	Key string `json:"key"`
	StatusChange
	Meta
}

// Handler handles HTTP requests for explicit item operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the movement operation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/movements")
	group.Post("/ship", h.HandleShip)
	group.Post("/transfer", h.HandleTransfer)
	group.Post("/status", h.HandleStatus)
	group.Post("/remove", h.HandleRemove)
}

// HandleShip ships items.
// @Summary Ship Items
// @Description Ships every listed item in its own transaction and reports per-key outcomes.
// @Tags movements
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Keys to ship"
// @Success 200 {object} BatchResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /movements/ship [post]
func (h *Handler) HandleShip(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.Ship(c.Context(), req.Keys, req.Meta)
	return h.respond(c, result, err)
}

// HandleTransfer moves items to another location.
// @Summary Transfer Items
// @Tags movements
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Keys and target location"
// @Success 200 {object} BatchResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /movements/transfer [post]
func (h *Handler) HandleTransfer(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.Transfer(c.Context(), req.Keys, req.ToLocation, req.Meta)
	return h.respond(c, result, err)
}

// HandleStatus changes the grade or lock status of one item.
// @Summary Update Item Status
// @Tags movements
// @Accept json
// @Produce json
// @Param request body StatusRequest true "Fields to change"
// @Success 200 {object} BatchResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /movements/status [post]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.UpdateStatus(c.Context(), req.Key, req.StatusChange, req.Meta)
	return h.respond(c, result, err)
}

// HandleRemove retires items.
// @Summary Remove Items
// @Tags movements
// @Accept json
// @Produce json
// @Param request body BatchRequest true "Keys to remove"
// @Success 200 {object} BatchResult
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /movements/remove [post]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	result, err := h.service.Remove(c.Context(), req.Keys, req.Meta)
	return h.respond(c, result, err)
}

func (h *Handler) respond(c *fiber.Ctx, result *BatchResult, err error) error {
	switch {
	case err == nil:
		return c.JSON(result)
	case errors.Is(err, ErrNoKeys), errors.Is(err, ErrInvalidRequest):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Movement request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
