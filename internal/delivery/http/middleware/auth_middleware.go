package middleware

import (
	"errors"
	"strings"

	"winestudy/internal/domain/user"
	"winestudy/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	// SessionCookieName is the cookie the login endpoints set and the gate
	// reads first; the Authorization header is only a fallback.
	SessionCookieName = "session_token"

	CtxUserKey = "auth_user"
)

type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Middleware resolves the request credential to a user and stores it in the
// request locals. Every failure is a 401 with a specific detail string; no
// resolution failure is treated as a server fault.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		usr, err := m.auth.Resolve(c.Context(), CredentialFromRequest(c))
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, authDetail(err), err)
		}

		c.Locals(CtxUserKey, usr)
		return c.Next()
	}
}

// UserFromCtx returns the authenticated user stored by the middleware.
func UserFromCtx(c fiber.Ctx) (user.User, bool) {
	usr, ok := c.Locals(CtxUserKey).(user.User)
	return usr, ok
}

// CredentialFromRequest extracts the raw credential: session cookie first,
// then a Bearer authorization header.
func CredentialFromRequest(c fiber.Ctx) string {
	if tok := c.Cookies(SessionCookieName); tok != "" {
		return tok
	}
	return bearerTokenFromHeader(c.Get("Authorization"))
}

func authDetail(err error) string {
	switch {
	case errors.Is(err, usecase.ErrSessionExpired):
		return "Session expired"
	case errors.Is(err, usecase.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, usecase.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, usecase.ErrUserNotFound):
		return "User not found"
	default:
		return "Not authenticated"
	}
}

func bearerTokenFromHeader(authHeader string) string {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
