package handlers

import (
	"errors"

	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto the HTTP taxonomy. Validation and
// not-found messages are safe to echo; anything else gets a generic 500 so
// internals never leak to the client.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, err.Error())
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error(fallback)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, fallback)
	}
}
