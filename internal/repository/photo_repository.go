package repository

import (
	"context"
	"fmt"

	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

func withOwner(db *gorm.DB) *gorm.DB {
	return db.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "user_name", "email")
	})
}

// ListByUser returns the photos of userID that match spec, each with its owner.
func (r *PhotoRepository) ListByUser(ctx context.Context, userID uint, spec filter.Spec) ([]models.Photo, error) {
	photos := []models.Photo{}
	query := withOwner(r.db.WithContext(ctx).Model(&models.Photo{})).
		Where("user_id = ?", userID)

	if err := applySpec(query, spec).Find(&photos).Error; err != nil {
		return nil, fmt.Errorf("list photos of user %d: %w", userID, err)
	}
	return photos, nil
}

func (r *PhotoRepository) GetByUser(ctx context.Context, userID, id uint) (*models.Photo, error) {
	var photo models.Photo
	err := withOwner(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&photo).Error
	if err != nil {
		return nil, fmt.Errorf("get photo %d of user %d: %w", id, userID, err)
	}
	return &photo, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.WithContext(ctx).First(&photo, id).Error; err != nil {
		return nil, fmt.Errorf("get photo %d: %w", id, err)
	}
	return &photo, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return fmt.Errorf("create photo: %w", err)
	}
	return nil
}

// Update writes changes to photo id. It reports gorm.ErrRecordNotFound when no row matched.
func (r *PhotoRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Photo{ID: id}).Updates(changes)
	if result.Error != nil {
		return fmt.Errorf("update photo %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update photo %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Photo{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete photo %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete photo %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteByUser removes every photo of userID in a single statement.
func (r *PhotoRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Photo{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete photos of user %d: %w", userID, result.Error)
	}
	return result.RowsAffected, nil
}

func (r *PhotoRepository) ImageURLsByUser(ctx context.Context, userID uint) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).
		Model(&models.Photo{}).
		Where("user_id = ?", userID).
		Pluck("image_url", &urls).Error
	if err != nil {
		return nil, fmt.Errorf("image urls of user %d: %w", userID, err)
	}
	return urls, nil
}
