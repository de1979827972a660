package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/internal/service"
	"go.uber.org/zap"
)

type Authenticator interface {
	Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
}

type AuthHandler struct {
	auth Authenticator
	log  *zap.Logger
}

func NewAuthHandler(auth Authenticator, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// Login handles POST /sessions.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, msgInvalidBody)
	}

	resp, err := h.auth.Authenticate(c.UserContext(), req)
	if err != nil {
		// An unknown email is an authentication failure on this route.
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(err.Error()))
		}
		return respondError(c, h.log, err)
	}

	return c.JSON(resp)
}
