package handler

import (
	"errors"

	"winestudy/internal/delivery/http/dto"
	"winestudy/internal/delivery/http/middleware"
	"winestudy/internal/pkg/response"
	"winestudy/internal/usecase"
	ucauth "winestudy/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

// Browser sessions live as long as the token itself.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

type languageRequest struct {
	Language string `json:"language"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterRoutes mounts the public issuance endpoints. The authenticated
// endpoints (me, logout, language) are mounted separately behind the auth
// middleware by the route registry.
func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/session", h.ExchangeSession)
}

func (h *AuthHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.Me)
	r.Post("/logout", h.Logout)
	r.Put("/language", h.UpdateLanguage)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.DetailBadRequest, err)
	}

	usr, token, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	setSessionCookie(c, token)
	return response.JSON(c, fiber.StatusOK, dto.FromUser(usr))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.DetailBadRequest, err)
	}

	usr, token, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	setSessionCookie(c, token)
	return response.JSON(c, fiber.StatusOK, dto.LoginFromUser(usr, token))
}

func (h *AuthHandler) ExchangeSession(c fiber.Ctx) error {
	var req sessionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.DetailBadRequest, err)
	}
	if req.SessionID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "session_id required", nil)
	}

	usr, token, err := h.uc.ExchangeOAuthSession(c.Context(), req.SessionID)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	setSessionCookie(c, token)
	return response.JSON(c, fiber.StatusOK, dto.SessionFromUser(usr))
}

func (h *AuthHandler) Me(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}
	return response.JSON(c, fiber.StatusOK, dto.FromUser(usr))
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.uc.Logout(c.Context(), middleware.CredentialFromRequest(c)); err != nil {
		return mapAuthUsecaseError(err)
	}

	clearSessionCookie(c)
	return response.JSON(c, fiber.StatusOK, map[string]any{"message": "Logged out successfully"})
}

func (h *AuthHandler) UpdateLanguage(c fiber.Ctx) error {
	usr, ok := middleware.UserFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.DetailUnauthorized, nil)
	}

	var req languageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.DetailBadRequest, err)
	}

	if err := h.uc.UpdateLanguage(c.Context(), usr.UserID, req.Language); err != nil {
		return mapAuthUsecaseError(err)
	}
	return response.JSON(c, fiber.StatusOK, map[string]any{
		"message":  "Language updated",
		"language": req.Language,
	})
}

func setSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func clearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.DetailBadRequest, err)
	case errors.Is(err, usecase.ErrInvalidSession):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid session", err)
	case errors.Is(err, usecase.ErrAuthFailed):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Authentication failed", err)
	case errors.Is(err, usecase.ErrInvalidLanguage):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid language", err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusUnauthorized, "User not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.DetailInternalServerError, err)
	}
}
