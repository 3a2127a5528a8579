package handlers

import (
	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type StatHandler struct {
	service services.StatService
	logger  *logrus.Logger
}

func NewStatHandler(service services.StatService, logger *logrus.Logger) *StatHandler {
	return &StatHandler{service: service, logger: logger}
}

// List godoc
// @Summary List homepage statistics
// @Tags stats
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "Admin all-languages view"
// @Success 200 {object} map[string]interface{}
// @Router /stats [get]
func (h *StatHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("allLangs") == "true" {
		if !middleware.IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		grouped, err := h.service.AllGrouped(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve stats")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"stats": grouped})
	}

	rows, err := h.service.List(ctx, c.Query("lang", "en"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve stats")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"stats": rows})
}

// Create godoc
// @Summary Create a statistic
// @Tags stats
// @Accept json
// @Produce json
// @Param stat body StatRequest true "Statistic payload (English)"
// @Success 201 {object} map[string]interface{}
// @Router /stats [post]
func (h *StatHandler) Create(c *fiber.Ctx) error {
	var req StatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Create(c.Context(), services.StatInput{
		Label:     req.Label,
		Value:     req.Value,
		Icon:      req.Icon,
		IsActive:  req.IsActive,
		SortOrder: req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create stat")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Stat created successfully", fiber.Map{"stats": rows})
}

// Update godoc
// @Summary Update a statistic
// @Tags stats
// @Accept json
// @Produce json
// @Param statId path string true "Stat logical id"
// @Param stat body StatUpdateRequest true "Changed fields (English)"
// @Success 200 {object} map[string]interface{}
// @Router /stats/{statId} [put]
func (h *StatHandler) Update(c *fiber.Ctx) error {
	var req StatUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Update(c.Context(), c.Params("statId"), services.StatUpdateInput{
		Label:     req.Label,
		Value:     req.Value,
		Icon:      req.Icon,
		IsActive:  req.IsActive,
		SortOrder: req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update stat")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Stat updated successfully", fiber.Map{"stats": rows})
}

// Delete godoc
// @Summary Delete a statistic in all languages
// @Tags stats
// @Produce json
// @Param statId path string true "Stat logical id"
// @Success 200 {object} map[string]interface{}
// @Router /stats/{statId} [delete]
func (h *StatHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("statId")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete stat")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Stat deleted successfully", nil)
}

// Reorder godoc
// @Summary Move a statistic to a new position
// @Tags stats
// @Accept json
// @Produce json
// @Param reorder body ReorderRequest true "Stat id and new order"
// @Success 200 {object} map[string]interface{}
// @Router /stats/reorder [post]
func (h *StatHandler) Reorder(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.Reorder(c.Context(), req.Key, req.Order); err != nil {
		return respondError(c, h.logger, err, "Failed to reorder stat")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Stat reordered successfully", nil)
}
