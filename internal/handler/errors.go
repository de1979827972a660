package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/internal/service"
	"github.com/sefazor/mygallery-backend/pkg/jwt"
	"go.uber.org/zap"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgInternalError  = "Internal server error"
	msgMissingToken   = "Token was not provided"
	msgInvalidToken   = "Invalid token"
	msgStorageOffline = "Image storage is not configured"
	msgNoUser         = "User not authenticated"
)

// classify returns the HTTP status and client message for err.
func classify(err error) (int, string) {
	var verr *service.ValidationError
	var ferr *filter.Error

	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, verr.Message
	case errors.As(err, &ferr):
		return fiber.StatusBadRequest, ferr.Message
	case errors.Is(err, service.ErrDuplicateKey):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, jwt.ErrMissingToken):
		return fiber.StatusUnauthorized, msgMissingToken
	case errors.Is(err, jwt.ErrInvalidToken):
		return fiber.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrStorageDisabled):
		return fiber.StatusServiceUnavailable, msgStorageOffline
	default:
		return fiber.StatusInternalServerError, msgInternalError
	}
}

// respondError writes the error envelope. Unclassified errors are logged and
// never shown to the client.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status, message := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(status).JSON(models.ErrorResponse(message))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(message))
}
