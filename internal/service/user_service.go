package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/pkg/bcrypt"
	"github.com/sefazor/mygallery-backend/pkg/storage"
	"github.com/sefazor/mygallery-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	users     UserStore
	photos    PhotoStore
	storage   storage.ObjectStorage
	validator *utils.Validator
	log       *zap.Logger
}

func NewUserService(
	users UserStore,
	photos PhotoStore,
	objects storage.ObjectStorage,
	validator *utils.Validator,
	log *zap.Logger,
) *UserService {
	return &UserService{
		users:     users,
		photos:    photos,
		storage:   objects,
		validator: validator,
		log:       log,
	}
}

func (s *UserService) List(ctx context.Context, spec filter.Spec) ([]models.User, error) {
	return s.users.List(ctx, spec)
}

// Show looks a user up by email. When a password is given it must match.
func (s *UserService) Show(ctx context.Context, req models.ShowUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.Message(err)}
	}

	user, err := s.getByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if req.Password != "" && !user.CheckPassword(req.Password) {
		return nil, ErrWrongCredentials
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.CreateUserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.Message(err)}
	}
	if req.Password != req.PasswordConfirmation {
		return nil, validationError("Password and password confirmation do not match")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	// Uniqueness is left to the database constraint
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	s.log.Info("user created", zap.Uint("user_id", user.ID))

	return &models.CreateUserResponse{
		UserName:  user.UserName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Update applies the supplied fields. Changing the password needs the current
// one in OldPassword and a matching PasswordConfirmation.
func (s *UserService) Update(ctx context.Context, id uint, req models.UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.Message(err)}
	}
	if err := checkPasswordChange(req); err != nil {
		return nil, err
	}

	user, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OldPassword != nil && !user.CheckPassword(*req.OldPassword) {
		return nil, ErrIncorrectPassword
	}

	changes := map[string]interface{}{}
	if req.UserName != nil {
		changes["user_name"] = *req.UserName
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		changes["password_hash"] = hashedPassword
	}

	if len(changes) == 0 {
		return user, nil
	}

	if err := s.users.Update(ctx, id, changes); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, ErrUserExists
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.getByID(ctx, id)
}

// Destroy deletes the user. The database cascades the delete to the user's photos.
func (s *UserService) Destroy(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	urls, err := s.photos.ImageURLsByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	removeObjects(ctx, s.storage, s.log, urls...)
	s.log.Info("user deleted", zap.Uint("user_id", id), zap.Int("photos", len(urls)))

	return user, nil
}

func (s *UserService) getByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func (s *UserService) getByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

func checkPasswordChange(req models.UpdateUserRequest) error {
	if req.Password == nil {
		if req.PasswordConfirmation != nil {
			return validationError("Password and password confirmation do not match")
		}
		return nil
	}
	if req.OldPassword == nil {
		return validationError("oldPassword is required to change the password")
	}
	if req.PasswordConfirmation == nil || *req.Password != *req.PasswordConfirmation {
		return validationError("Password and password confirmation do not match")
	}
	return nil
}
