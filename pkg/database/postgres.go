package database

import (
	"fmt"
	"time"

	"github.com/sefazor/mygallery-backend/internal/config"
	"github.com/sefazor/mygallery-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const fotosUserForeignKey = "fk_users_fotos"

func NewDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}

	db, err := Open(postgres.Open(cfg.Database.DSN()), level)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info("connected to database")
	return db, nil
}

// Open wraps gorm.Open with the settings every caller relies on: driver
// errors translated into gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func Open(dialector gorm.Dialector, level gormlogger.LogLevel) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
}

// RunMigrations creates users and fotos. The cascading foreign key is added
// explicitly so deleting a user always removes that user's photos.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Photo{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if db.Migrator().HasConstraint(&models.Photo{}, fotosUserForeignKey) {
		return nil
	}

	err := db.Exec(`ALTER TABLE fotos ADD CONSTRAINT ` + fotosUserForeignKey + `
		FOREIGN KEY (user_id) REFERENCES users(id)
		ON UPDATE CASCADE ON DELETE CASCADE`).Error
	if err != nil {
		return fmt.Errorf("create %s: %w", fotosUserForeignKey, err)
	}
	return nil
}
