package handlers

import (
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type LanguageHandler struct {
	registry *services.LanguageRegistry
}

func NewLanguageHandler(registry *services.LanguageRegistry) *LanguageHandler {
	return &LanguageHandler{registry: registry}
}

// List godoc
// @Summary List supported languages
// @Tags languages
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /languages [get]
func (h *LanguageHandler) List(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"languages": h.registry.All(),
	})
}
