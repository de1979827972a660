package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/filter"
	"github.com/sefazor/mygallery-backend/internal/service"
	"github.com/sefazor/mygallery-backend/pkg/jwt"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", &service.ValidationError{Message: "email is required"}, fiber.StatusBadRequest, "email is required"},
		{"filter", &filter.Error{Param: "sort", Message: "bad sort"}, fiber.StatusBadRequest, "bad sort"},
		{"duplicate", service.ErrUserExists, fiber.StatusBadRequest, "User name or email already exists"},
		{"missing token", jwt.ErrMissingToken, fiber.StatusUnauthorized, "Token was not provided"},
		{"invalid token", fmt.Errorf("%w: token is expired", jwt.ErrInvalidToken), fiber.StatusUnauthorized, "Invalid token"},
		{"credentials", service.ErrIncorrectPassword, fiber.StatusUnauthorized, "Password is incorrect"},
		{"forbidden", service.ErrNotOwner, fiber.StatusForbidden, "You can only change your own resources"},
		{"not found", service.ErrPhotoNotFound, fiber.StatusNotFound, "Photo not found"},
		{"storage", service.ErrStorageDisabled, fiber.StatusServiceUnavailable, "Image storage is not configured"},
		{"unknown", errors.New("pq: connection refused"), fiber.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := classify(tt.err)
			if status != tt.wantStatus || msg != tt.wantMsg {
				t.Errorf("classify(%v) = %d %q, want %d %q", tt.err, status, msg, tt.wantStatus, tt.wantMsg)
			}
		})
	}
}
