package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"winestudy/internal/domain/user"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"
	ucauth "winestudy/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type stubAuth struct {
	wantCredential string
	usr            user.User
	err            error

	gotCredential string
}

func (s *stubAuth) Register(context.Context, ucauth.RegisterInput) (user.User, string, error) {
	return user.User{}, "", nil
}
func (s *stubAuth) Login(context.Context, ucauth.LoginInput) (user.User, string, error) {
	return user.User{}, "", nil
}
func (s *stubAuth) ExchangeOAuthSession(context.Context, string) (user.User, string, error) {
	return user.User{}, "", nil
}
func (s *stubAuth) Logout(context.Context, string) error                  { return nil }
func (s *stubAuth) UpdateLanguage(context.Context, string, string) error  { return nil }
func (s *stubAuth) Resolve(_ context.Context, credential string) (user.User, error) {
	s.gotCredential = credential
	if s.err != nil {
		return user.User{}, s.err
	}
	return s.usr, nil
}

func newGateApp(auth usecase.AuthUsecase) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/me", NewAuthMiddleware(auth).Middleware(), func(c fiber.Ctx) error {
		usr, ok := UserFromCtx(c)
		if !ok {
			return response.Detail(c, fiber.StatusInternalServerError, response.DetailInternalServerError)
		}
		return response.JSON(c, fiber.StatusOK, usr)
	})
	return app
}

func TestAuthMiddleware_CookieBeatsBearerHeader(t *testing.T) {
	stub := &stubAuth{usr: user.User{UserID: "user_abc"}}
	app := newGateApp(stub)

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-tok"})
	req.Header.Set("Authorization", "Bearer header-tok")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if stub.gotCredential != "cookie-tok" {
		t.Fatalf("expected cookie credential, got %q", stub.gotCredential)
	}
}

func TestAuthMiddleware_BearerFallback(t *testing.T) {
	stub := &stubAuth{usr: user.User{UserID: "user_abc"}}
	app := newGateApp(stub)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer header-tok")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if stub.gotCredential != "header-tok" {
		t.Fatalf("expected bearer credential, got %q", stub.gotCredential)
	}
}

func TestAuthMiddleware_FailureDetails(t *testing.T) {
	cases := []struct {
		err    error
		detail string
	}{
		{usecase.ErrNotAuthenticated, "Not authenticated"},
		{usecase.ErrSessionExpired, "Session expired"},
		{usecase.ErrTokenExpired, "Token expired"},
		{usecase.ErrInvalidToken, "Invalid token"},
		{usecase.ErrUserNotFound, "User not found"},
		{usecase.ErrInternal, "Not authenticated"},
	}

	for _, tc := range cases {
		app := newGateApp(&stubAuth{err: tc.err})

		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer whatever")

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%v: app.Test: %v", tc.err, err)
		}

		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%v: expected 401, got %d", tc.err, resp.StatusCode)
		}
		var body response.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("%v: decode: %v", tc.err, err)
		}
		resp.Body.Close()
		if body.Detail != tc.detail {
			t.Fatalf("%v: expected detail %q, got %q", tc.err, tc.detail, body.Detail)
		}
	}
}

func TestBearerTokenFromHeader(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"Bearer":            "",
		"Basic abc":         "",
		"Bearer tok":        "tok",
		"bearer tok":        "tok",
		"Bearer   spaced  ": "spaced",
	}
	for header, want := range cases {
		if got := bearerTokenFromHeader(header); got != want {
			t.Fatalf("header %q: expected %q, got %q", header, want, got)
		}
	}
}
