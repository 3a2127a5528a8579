package handlers

import (
	"strconv"

	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ContactHandler struct {
	service services.ContactService
	logger  *logrus.Logger
}

func NewContactHandler(service services.ContactService, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

// Create godoc
// @Summary Submit the contact form
// @Description Public endpoint. The submission is replicated across all languages for the dashboard.
// @Tags contact
// @Accept json
// @Produce json
// @Param contact body ContactRequest true "Contact payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /contact [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Create(c.Context(), services.ContactInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceSlug: req.ServiceSlug,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to submit contact form")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Thank you, we will get back to you shortly", fiber.Map{"submissions": rows})
}

// List godoc
// @Summary List contact submissions
// @Tags contact
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "All-languages view"
// @Param unread query bool false "Unread submissions only"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /contact [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("allLangs") == "true" {
		grouped, err := h.service.AllGrouped(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve submissions")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"submissions": grouped})
	}

	lang := c.Query("lang", "en")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = utils.NormalizePaging(page, limit)
	unreadOnly := c.Query("unread") == "true"

	rows, total, err := h.service.List(ctx, lang, page, limit, unreadOnly)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve submissions")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"submissions": rows,
		"pagination":  utils.NewPagination(page, limit, total),
	})
}

// MarkRead godoc
// @Summary Mark a submission read or unread in all languages
// @Tags contact
// @Accept json
// @Produce json
// @Param contactId path string true "Submission logical id"
// @Param read body MarkReadRequest true "Read flag"
// @Success 200 {object} map[string]interface{}
// @Router /contact/{contactId}/read [patch]
func (h *ContactHandler) MarkRead(c *fiber.Ctx) error {
	var req MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.service.MarkRead(c.Context(), c.Params("contactId"), req.IsRead); err != nil {
		return respondError(c, h.logger, err, "Failed to update submission")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Submission updated successfully", nil)
}

// Delete godoc
// @Summary Delete a submission in all languages
// @Tags contact
// @Produce json
// @Param contactId path string true "Submission logical id"
// @Success 200 {object} map[string]interface{}
// @Router /contact/{contactId} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("contactId")); err != nil {
		return respondError(c, h.logger, err, "Failed to delete submission")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Submission deleted successfully", nil)
}
