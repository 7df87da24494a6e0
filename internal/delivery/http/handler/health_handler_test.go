package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestHealthHandler_Root(t *testing.T) {
	app := fiber.New()
	h := NewHealthHandler()
	h.RegisterRoutes(app)
	app.Get("/api/", h.Root)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "WineStudy API v1.0" || body["status"] != "healthy" {
		t.Fatalf("unexpected body %v", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
