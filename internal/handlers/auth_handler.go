package handlers

import (
	"time"

	"homeservices-backend/internal/config"
	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	cfg     config.AuthConfig
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, cfg config.AuthConfig, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{service: service, cfg: cfg, logger: logger}
}

// Login godoc
// @Summary Authenticate a dashboard admin
// @Description Issues a JWT as an httpOnly cookie and in the response body.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Admin credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required")
	}

	token, admin, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.logger, err, "Login failed")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.TokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"admin": admin,
	})
}

// Logout godoc
// @Summary Clear the admin session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return utils.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary Get the authenticated admin profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	adminID, ok := c.Locals(middleware.AdminIDKey).(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	admin, err := h.service.GetAdmin(c.Context(), adminID)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load admin profile")
	}
	if admin == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Admin not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"admin": admin})
}
