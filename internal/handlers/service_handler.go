package handlers

import (
	"strconv"

	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServiceHandler struct {
	service services.ServiceService
	logger  *logrus.Logger
}

func NewServiceHandler(service services.ServiceService, logger *logrus.Logger) *ServiceHandler {
	return &ServiceHandler{service: service, logger: logger}
}

// List godoc
// @Summary List services
// @Description Public: active services in one language, ordered. Admin: allLangs=true returns every service grouped by slug with all translations.
// @Tags services
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "Admin all-languages view"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("allLangs") == "true" {
		if !middleware.IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		grouped, err := h.service.AllGrouped(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve services")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"services": grouped})
	}

	lang := c.Query("lang", "en")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = utils.NormalizePaging(page, limit)

	rows, total, err := h.service.List(ctx, lang, page, limit)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve services")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"services":   rows,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

// Get godoc
// @Summary Get one service by slug
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Param lang query string false "Language code" default(en)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /services/{slug} [get]
func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	row, err := h.service.Get(c.Context(), c.Params("slug"), c.Query("lang", "en"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve service")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"service": row})
}

// Create godoc
// @Summary Create a service
// @Description Creates the service in every supported language via translation fan-out.
// @Tags services
// @Accept json
// @Produce json
// @Param service body ServiceRequest true "Service payload (English)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var req ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Create(c.Context(), services.ServiceInput{
		Name:             req.Name,
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		IsActive:         req.IsActive,
		SortOrder:        req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create service")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Service created successfully", fiber.Map{"services": rows})
}

// Update godoc
// @Summary Update a service
// @Tags services
// @Accept json
// @Produce json
// @Param slug path string true "Service slug"
// @Param service body ServiceUpdateRequest true "Changed fields (English)"
// @Success 200 {object} map[string]interface{}
// @Router /services/{slug} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var req ServiceUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Update(c.Context(), c.Params("slug"), services.ServiceUpdateInput{
		Name:             req.Name,
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		IsActive:         req.IsActive,
		SortOrder:        req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update service")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Service updated successfully", fiber.Map{"services": rows})
}

// Delete godoc
// @Summary Delete a service
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} map[string]interface{}
// @Router /services/{slug} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("slug")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete service")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Service deleted successfully", nil)
}

// Reorder godoc
// @Summary Move a service to a new position
// @Tags services
// @Accept json
// @Produce json
// @Param reorder body ReorderRequest true "Slug and new order"
// @Success 200 {object} map[string]interface{}
// @Router /services/reorder [post]
func (h *ServiceHandler) Reorder(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.Reorder(c.Context(), req.Key, req.Order); err != nil {
		return respondError(c, h.logger, err, "Failed to reorder service")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Service reordered successfully", nil)
}
