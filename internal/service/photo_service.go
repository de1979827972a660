package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/pkg/storage"
	"github.com/sefazor/mygallery-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MaxUploadSize = 10 * 1024 * 1024

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type PhotoService struct {
	photos    PhotoStore
	storage   storage.ObjectStorage
	validator *utils.Validator
	log       *zap.Logger
}

func NewPhotoService(
	photos PhotoStore,
	objects storage.ObjectStorage,
	validator *utils.Validator,
	log *zap.Logger,
) *PhotoService {
	return &PhotoService{
		photos:    photos,
		storage:   objects,
		validator: validator,
		log:       log,
	}
}

// List returns the photos of userID matching spec. An empty result is
// reported as ErrPhotoNotFound, which clients of this API rely on.
func (s *PhotoService) List(ctx context.Context, userID uint, spec filter.Spec) ([]models.Photo, error) {
	photos, err := s.photos.ListByUser(ctx, userID, spec)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return nil, ErrPhotoNotFound
	}
	return photos, nil
}

func (s *PhotoService) Show(ctx context.Context, userID, id uint) (*models.Photo, error) {
	photo, err := s.photos.GetByUser(ctx, userID, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPhotoNotFound)
	}
	return photo, nil
}

func (s *PhotoService) Create(ctx context.Context, req models.CreatePhotoRequest) (*models.CreatePhotoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.Message(err)}
	}

	photo := &models.Photo{
		Title:    req.Title,
		Category: req.Category,
		ImageURL: req.ImageURL,
		UserID:   uint(req.UserID),
	}

	if err := s.photos.Create(ctx, photo); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, validationError("User %d does not exist", req.UserID)
		}
		return nil, err
	}

	return &models.CreatePhotoResponse{
		Title:    photo.Title,
		Category: photo.Category,
		ImageURL: photo.ImageURL,
		UserID:   photo.UserID,
	}, nil
}

// Update changes only the supplied fields of photo id, which must belong to ownerID.
func (s *PhotoService) Update(ctx context.Context, ownerID, id uint, req models.UpdatePhotoRequest) (*models.Photo, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.Message(err)}
	}

	// Supplied empty strings were rejected by min=1 above.
	changes := map[string]interface{}{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Category != nil {
		changes["category"] = *req.Category
	}
	if req.ImageURL != nil {
		changes["image_url"] = *req.ImageURL
	}

	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		if err := s.photos.Update(ctx, id, changes); err != nil {
			return nil, notFoundAs(err, ErrPhotoNotFound)
		}
	}

	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPhotoNotFound)
	}
	return photo, nil
}

// Destroy deletes photo id, which must belong to ownerID.
func (s *PhotoService) Destroy(ctx context.Context, ownerID, id uint) (*models.Photo, error) {
	photo, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := s.photos.Delete(ctx, id); err != nil {
		return nil, notFoundAs(err, ErrPhotoNotFound)
	}

	removeObjects(ctx, s.storage, s.log, photo.ImageURL)
	return photo, nil
}

func (s *PhotoService) owned(ctx context.Context, ownerID, id uint) (*models.Photo, error) {
	photo, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrPhotoNotFound)
	}
	if photo.UserID != ownerID {
		return nil, ErrNotOwner
	}
	return photo, nil
}

// DestroyAll removes every photo of userID with one bulk delete.
func (s *PhotoService) DestroyAll(ctx context.Context, userID uint) (int64, error) {
	urls, err := s.photos.ImageURLsByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	n, err := s.photos.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	removeObjects(ctx, s.storage, s.log, urls...)
	s.log.Info("photos deleted", zap.Uint("user_id", userID), zap.Int64("count", n))
	return n, nil
}

// Upload stores an image file for userID and returns the URL to use as image_url.
func (s *PhotoService) Upload(ctx context.Context, userID uint, file *multipart.FileHeader) (*models.UploadResponse, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	contentType := strings.ToLower(file.Header.Get("Content-Type"))
	if err := s.validator.Var(contentType, "supported_image"); err != nil {
		return nil, validationError("Unsupported image type")
	}
	if file.Size > MaxUploadSize {
		return nil, validationError("File size too large")
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("users/%d/%s%s", userID, uuid.NewString(), imageExtensions[contentType])
	url, err := s.storage.Upload(ctx, key, src, file.Size, contentType)
	if err != nil {
		return nil, err
	}

	s.log.Info("image uploaded", zap.Uint("user_id", userID), zap.String("key", key))
	return &models.UploadResponse{ImageURL: url}, nil
}

func notFoundAs(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
