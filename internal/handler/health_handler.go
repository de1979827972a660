package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/models"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log,
	}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn("database ping failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Database unavailable"))
	}
	return c.JSON(models.SuccessResponse(nil, "ok"))
}
