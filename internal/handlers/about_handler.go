package handlers

import (
	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AboutHandler struct {
	service services.AboutService
	logger  *logrus.Logger
}

func NewAboutHandler(service services.AboutService, logger *logrus.Logger) *AboutHandler {
	return &AboutHandler{service: service, logger: logger}
}

// Get godoc
// @Summary Get the about page
// @Tags about
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Param allLangs query bool false "Admin all-languages view"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /about [get]
func (h *AboutHandler) Get(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("allLangs") == "true" {
		if !middleware.IsAdmin(c) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}
		grouped, err := h.service.AllGrouped(ctx)
		if err != nil {
			return respondError(c, h.logger, err, "Failed to retrieve about page")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"about": grouped})
	}

	row, err := h.service.Get(ctx, c.Query("lang", "en"))
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve about page")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"about": row})
}

// Upsert godoc
// @Summary Create or update the about page
// @Description Saves the English source and fans the translation out across all languages.
// @Tags about
// @Accept json
// @Produce json
// @Param about body AboutRequest true "About payload (English)"
// @Success 200 {object} map[string]interface{}
// @Router /about [put]
func (h *AboutHandler) Upsert(c *fiber.Ctx) error {
	var req AboutRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rows, err := h.service.Upsert(c.Context(), services.AboutInput{
		Title:       req.Title,
		Description: req.Description,
		Mission:     req.Mission,
		Vision:      req.Vision,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return respondError(c, h.logger, err, "Failed to save about page")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "About page saved successfully", fiber.Map{"about": rows})
}
