package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/mygallery-backend/internal/models"
	"go.uber.org/zap"
)

var testLogger = zap.NewNop()

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, raw
}

func decodeError(t *testing.T, raw []byte) models.Response {
	t.Helper()
	var resp models.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("decode error body %q: %v", raw, err)
	}
	if resp.Success {
		t.Errorf("error body reports success: %s", raw)
	}
	return resp
}

// withUser stands in for the auth middleware.
func withUser(id uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", id)
		return c.Next()
	}
}
