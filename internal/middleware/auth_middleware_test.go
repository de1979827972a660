package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/models"
	"github.com/sefazor/mygallery-backend/pkg/jwt"
	"go.uber.org/zap"
)

type managerVerifier struct{ m *jwt.TokenManager }

func (v managerVerifier) VerifyToken(header string) (uint, error) {
	token, err := jwt.ParseAuthorizationHeader(header)
	if err != nil {
		return 0, err
	}
	claims, err := v.m.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func TestAuthMiddleware(t *testing.T) {
	manager := jwt.NewTokenManager(jwt.Config{Secret: "test-secret", Expiry: time.Hour})
	valid, err := manager.GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	app := fiber.New()
	app.Use(AuthMiddleware(managerVerifier{manager}, zap.NewNop()))
	app.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals("userID")})
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{"valid", "Bearer " + valid, fiber.StatusOK, ""},
		{"missing", "", fiber.StatusUnauthorized, "Token was not provided"},
		{"no bearer prefix", valid, fiber.StatusUnauthorized, "Invalid token"},
		{"garbage", "Bearer abc.def.ghi", fiber.StatusUnauthorized, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			defer resp.Body.Close()
			raw, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, tt.wantStatus, raw)
			}

			if tt.wantError == "" {
				var body map[string]float64
				if err := json.Unmarshal(raw, &body); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if body["id"] != 42 {
					t.Errorf("userID local = %v, want 42", body["id"])
				}
				return
			}

			var body models.Response
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success || body.Error != tt.wantError {
				t.Errorf("body = %+v, want error %q", body, tt.wantError)
			}
		})
	}
}
