package handlers

import (
	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type FAQHandler struct {
	service services.FAQService
	logger  *logrus.Logger
}

func NewFAQHandler(service services.FAQService, logger *logrus.Logger) *FAQHandler {
	return &FAQHandler{service: service, logger: logger}
}

// List godoc
// @Summary List FAQs
// @Tags faqs
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "Admin all-languages view"
// @Success 200 {object} map[string]interface{}
// @Router /faqs [get]
func (h *FAQHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("allLangs") == "true" {
		if !middleware.IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		grouped, err := h.service.AllGrouped(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve FAQs")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"faqs": grouped})
	}

	rows, err := h.service.List(ctx, c.Query("lang", "en"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve FAQs")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"faqs": rows})
}

// Create godoc
// @Summary Create an FAQ
// @Tags faqs
// @Accept json
// @Produce json
// @Param faq body FAQRequest true "FAQ payload (English)"
// @Success 201 {object} map[string]interface{}
// @Router /faqs [post]
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var req FAQRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Create(c.Context(), services.FAQInput{
		Question:  req.Question,
		Answer:    req.Answer,
		IsActive:  req.IsActive,
		SortOrder: req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create FAQ")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "FAQ created successfully", fiber.Map{"faqs": rows})
}

// Update godoc
// @Summary Update an FAQ
// @Tags faqs
// @Accept json
// @Produce json
// @Param faqId path string true "FAQ logical id"
// @Param faq body FAQUpdateRequest true "Changed fields (English)"
// @Success 200 {object} map[string]interface{}
// @Router /faqs/{faqId} [put]
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	var req FAQUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Update(c.Context(), c.Params("faqId"), services.FAQUpdateInput{
		Question:  req.Question,
		Answer:    req.Answer,
		IsActive:  req.IsActive,
		SortOrder: req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update FAQ")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ updated successfully", fiber.Map{"faqs": rows})
}

// Delete godoc
// @Summary Delete an FAQ in all languages
// @Tags faqs
// @Produce json
// @Param faqId path string true "FAQ logical id"
// @Success 200 {object} map[string]interface{}
// @Router /faqs/{faqId} [delete]
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("faqId")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete FAQ")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ deleted successfully", nil)
}

// Reorder godoc
// @Summary Move an FAQ to a new position
// @Tags faqs
// @Accept json
// @Produce json
// @Param reorder body ReorderRequest true "FAQ id and new order"
// @Success 200 {object} map[string]interface{}
// @Router /faqs/reorder [post]
func (h *FAQHandler) Reorder(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.Reorder(c.Context(), req.Key, req.Order); err != nil {
		return respondError(c, h.logger, err, "Failed to reorder FAQ")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "FAQ reordered successfully", nil)
}
