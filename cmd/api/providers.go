package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/config"
	"github.com/sefazor/mygallery-backend/pkg/jwt"
	"github.com/sefazor/mygallery-backend/pkg/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const storageInitTimeout = 10 * time.Second

type server struct {
	app *fiber.App
	db  *gorm.DB
}

func newServer(app *fiber.App, db *gorm.DB) *server {
	return &server{app: app, db: db}
}

func provideSQLDB(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB, nil
}

func provideTokenManager(cfg *config.Config) *jwt.TokenManager {
	return jwt.NewTokenManager(jwt.Config{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiry,
	})
}

// provideObjectStorage returns nil when R2 is not configured; uploads then
// answer 503 and deletes skip object cleanup.
func provideObjectStorage(cfg *config.Config, log *zap.Logger) (storage.ObjectStorage, error) {
	if !cfg.R2.Enabled() {
		log.Info("R2 storage not configured, uploads disabled")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), storageInitTimeout)
	defer cancel()

	r2, err := storage.NewCloudflareStorage(ctx, cfg.R2)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize R2 storage: %w", err)
	}
	log.Info("R2 storage enabled", zap.String("bucket", cfg.R2.Bucket))
	return r2, nil
}
