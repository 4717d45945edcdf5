package handlers

import (
	"errors"

	"campaign-backend/internal/middleware"
	"campaign-backend/internal/services"
	"campaign-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Login godoc
// @Summary Authenticate an admin user
// @Description Exchanges email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} utils.StandardResponse "Token and user"
// @Failure 400 {object} utils.StandardResponse "Missing credentials"
// @Failure 401 {object} utils.StandardResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Email and password are required")
	}

	token, user, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		h.logger.WithError(err).WithField("email", req.Email).Error("Login failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Logged in successfully", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StandardResponse "Authenticated user"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx := c.Context()

	claims := middleware.GetClaims(c)
	if claims == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := h.service.GetUser(ctx, claims.UserID)
	if err != nil {
		h.logger.WithError(err).WithField("userId", claims.UserID).Error("Failed to load authenticated user")
		return respondServiceError(c, err, "Failed to load user")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "User retrieved successfully", user)
}
