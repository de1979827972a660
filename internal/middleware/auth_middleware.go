package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/pkg/jwt"
	"go.uber.org/zap"
)

// TokenVerifier resolves an Authorization header to a user id.
type TokenVerifier interface {
	VerifyToken(header string) (uint, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's id under the "userID" local.
func AuthMiddleware(verifier TokenVerifier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := verifier.VerifyToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, jwt.ErrMissingToken) {
				message = "Token was not provided"
			}
			log.Debug("request rejected", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(message))
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}
