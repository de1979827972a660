package service

import (
	"context"

	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
)

// UserStore is implemented by repository.UserRepository.
type UserStore interface {
	List(ctx context.Context, spec filter.Spec) ([]models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

// PhotoStore is implemented by repository.PhotoRepository.
type PhotoStore interface {
	ListByUser(ctx context.Context, userID uint, spec filter.Spec) ([]models.Photo, error)
	GetByUser(ctx context.Context, userID, id uint) (*models.Photo, error)
	GetByID(ctx context.Context, id uint) (*models.Photo, error)
	Create(ctx context.Context, photo *models.Photo) error
	Update(ctx context.Context, id uint, changes map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
	ImageURLsByUser(ctx context.Context, userID uint) ([]string, error)
}
