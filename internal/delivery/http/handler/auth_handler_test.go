package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/domain/user"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"
	ucauth "winestudy/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type stubAuthUsecase struct {
	usr   user.User
	token string
	err   error
}

func (s *stubAuthUsecase) Register(context.Context, ucauth.RegisterInput) (user.User, string, error) {
	return s.usr, s.token, s.err
}
func (s *stubAuthUsecase) Login(context.Context, ucauth.LoginInput) (user.User, string, error) {
	return s.usr, s.token, s.err
}
func (s *stubAuthUsecase) ExchangeOAuthSession(context.Context, string) (user.User, string, error) {
	return s.usr, s.token, s.err
}
func (s *stubAuthUsecase) Resolve(context.Context, string) (user.User, error) {
	return s.usr, s.err
}
func (s *stubAuthUsecase) Logout(context.Context, string) error                 { return s.err }
func (s *stubAuthUsecase) UpdateLanguage(context.Context, string, string) error { return s.err }

func newAuthApp(uc usecase.AuthUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	h := NewAuthHandler(uc)
	h.RegisterRoutes(app.Group("/api/auth"))
	h.RegisterProtectedRoutes(app.Group("/api/auth", middleware.NewAuthMiddleware(uc).Middleware()))
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			return ck
		}
	}
	t.Fatalf("session cookie not set")
	return nil
}

func TestAuthHandler_Register_SetsCookie(t *testing.T) {
	uc := &stubAuthUsecase{
		usr:   user.User{UserID: "user_abc", Email: "a@b.c", Name: "Ana", PreferredLanguage: "pt", CreatedAt: "2026-01-01T00:00:00Z"},
		token: "issued-jwt",
	}
	app := newAuthApp(uc)

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"email":"a@b.c","password":"x","name":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	ck := sessionCookie(t, resp)
	if ck.Value != "issued-jwt" || !ck.HttpOnly || !ck.Secure || ck.SameSite != http.SameSiteNoneMode || ck.Path != "/" {
		t.Fatalf("cookie attributes wrong: %+v", ck)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["user_id"] != "user_abc" {
		t.Fatalf("unexpected body %v", body)
	}
	if _, ok := body["token"]; ok {
		t.Fatalf("register body must not carry the token")
	}
	if _, ok := body["password_hash"]; ok {
		t.Fatalf("password hash leaked")
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	app := newAuthApp(&stubAuthUsecase{err: ucauth.ErrEmailAlreadyRegistered})

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"email":"a@b.c","password":"x","name":"Ana"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body response.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Detail != "Email already registered" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestAuthHandler_Login_TokenInBody(t *testing.T) {
	uc := &stubAuthUsecase{
		usr:   user.User{UserID: "user_abc", Email: "a@b.c", Name: "Ana", PreferredLanguage: "pt"},
		token: "issued-jwt",
	}
	app := newAuthApp(uc)

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["token"] != "issued-jwt" {
		t.Fatalf("login body must carry the token, got %v", body)
	}
	if _, ok := body["created_at"]; ok {
		t.Fatalf("login body should not carry created_at, got %v", body)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	app := newAuthApp(&stubAuthUsecase{err: ucauth.ErrInvalidCredentials})

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthHandler_ExchangeSession_MissingSessionID(t *testing.T) {
	app := newAuthApp(&stubAuthUsecase{})

	req := httptest.NewRequest("POST", "/api/auth/session", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body response.ErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Detail != "session_id required" {
		t.Fatalf("unexpected detail %q", body.Detail)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	app := newAuthApp(&stubAuthUsecase{usr: user.User{UserID: "user_abc"}})

	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok"})

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	ck := sessionCookie(t, resp)
	expired := ck.MaxAge < 0 || (!ck.Expires.IsZero() && ck.Expires.Before(time.Now()))
	if ck.Value != "" || !expired {
		t.Fatalf("cookie not cleared: %+v", ck)
	}
}
