package handlers

import (
	"strconv"

	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service services.ReviewService
	logger  *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, logger: logger}
}

// List godoc
// @Summary List customer reviews
// @Tags reviews
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "Admin all-languages view"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("allLangs") == "true" {
		if !middleware.IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		grouped, err := h.service.AllGrouped(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve reviews")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"reviews": grouped})
	}

	lang := c.Query("lang", "en")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = utils.NormalizePaging(page, limit)

	rows, total, err := h.service.List(ctx, lang, page, limit)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve reviews")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"reviews":    rows,
		"pagination": utils.NewPagination(page, limit, total),
	})
}

// Create godoc
// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body ReviewRequest true "Review payload (English)"
// @Success 201 {object} map[string]interface{}
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Create(c.Context(), services.ReviewInput{
		AuthorName: req.AuthorName,
		Text:       req.Text,
		Rating:     req.Rating,
		IsActive:   req.IsActive,
		SortOrder:  req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to create review")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Review created successfully", fiber.Map{"reviews": rows})
}

// Update godoc
// @Summary Update a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param reviewId path string true "Review logical id"
// @Param review body ReviewUpdateRequest true "Changed fields (English)"
// @Success 200 {object} map[string]interface{}
// @Router /reviews/{reviewId} [put]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	var req ReviewUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Update(c.Context(), c.Params("reviewId"), services.ReviewUpdateInput{
		AuthorName: req.AuthorName,
		Text:       req.Text,
		Rating:     req.Rating,
		IsActive:   req.IsActive,
		SortOrder:  req.Order,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to update review")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Review updated successfully", fiber.Map{"reviews": rows})
}

// Delete godoc
// @Summary Delete a review in all languages
// @Tags reviews
// @Produce json
// @Param reviewId path string true "Review logical id"
// @Success 200 {object} map[string]interface{}
// @Router /reviews/{reviewId} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("reviewId")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review deleted successfully", nil)
}

// Reorder godoc
// @Summary Move a review to a new position
// @Tags reviews
// @Accept json
// @Produce json
// @Param reorder body ReorderRequest true "Review id and new order"
// @Success 200 {object} map[string]interface{}
// @Router /reviews/reorder [post]
func (h *ReviewHandler) Reorder(c *fiber.Ctx) error {
	var req ReorderRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.Reorder(c.Context(), req.Key, req.Order); err != nil {
		return respondError(c, h.logger, err, "Failed to reorder review")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Review reordered successfully", nil)
}
