package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/pkg/jwt"
	"github.com/sefazor/mygallery-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	users     UserStore
	tokens    *jwt.TokenManager
	validator *utils.Validator
	log       *zap.Logger
}

func NewAuthService(users UserStore, tokens *jwt.TokenManager, validator *utils.Validator, log *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: validator,
		log:       log,
	}
}

// Authenticate checks email and password and issues a session token.
func (s *AuthService) Authenticate(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &ValidationError{Message: utils.Message(err)}
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		s.log.Debug("login rejected", zap.Uint("user_id", user.ID))
		return nil, ErrInvalidPassword
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("token generation failed: %w", err)
	}

	return &models.AuthResponse{
		User:  user.Public(),
		Token: token,
	}, nil
}

// VerifyToken validates the Authorization header value and returns the user id it carries.
func (s *AuthService) VerifyToken(header string) (uint, error) {
	token, err := jwt.ParseAuthorizationHeader(header)
	if err != nil {
		return 0, err
	}

	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
