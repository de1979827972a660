package repository

import (
	"context"
	"fmt"

	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"gorm.io/gorm"
)

var userColumns = []string{"id", "user_name", "email", "created_at", "updated_at"}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns users matching spec without their password hash. Each user
// carries the ids of its photos.
func (r *UserRepository) List(ctx context.Context, spec filter.Spec) ([]models.User, error) {
	users := []models.User{}
	query := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select(userColumns).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_id").Order("id")
		})

	if err := applySpec(query, spec).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update writes changes to user id. It reports gorm.ErrRecordNotFound when no row matched.
func (r *UserRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{ID: id}).Updates(changes)
	if result.Error != nil {
		return fmt.Errorf("update user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update user %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes user id. Its photos go with it through the fotos foreign key.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete user %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete user %d: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
