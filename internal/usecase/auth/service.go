// Package auth holds the account-level logic shared by password login and the
// OAuth exchange: registration, credential verification, profile upserts.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"winestudy/internal/domain/progress"
	"winestudy/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	users    user.Repository
	progress progress.Repository

	newID func(prefix string) string
	now   func() time.Time
}

func NewService(users user.Repository, prog progress.Repository, newID func(string) string) *Service {
	return &Service{users: users, progress: prog, newID: newID, now: time.Now}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || strings.TrimSpace(in.Name) == "" || in.Password == "" {
		return user.User{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	now := s.now().UTC().Format(time.RFC3339Nano)
	u := user.User{
		UserID:            s.newID("user"),
		Email:             email,
		Name:              strings.TrimSpace(in.Name),
		PasswordHash:      string(hash),
		PreferredLanguage: user.LanguagePT,
		CreatedAt:         now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		return user.User{}, ErrInternal
	}
	if err := s.progress.Create(ctx, progress.Empty(u.UserID, now)); err != nil {
		return user.User{}, ErrInternal
	}

	return u, nil
}

// Login deliberately collapses unknown-email and wrong-password into one
// error so the endpoint cannot be used for email enumeration.
func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return u, nil
}

// UpsertOAuthUser finds the account by email and refreshes its name and
// avatar, or creates a fresh OAuth-only account with an empty progress record.
func (s *Service) UpsertOAuthUser(ctx context.Context, email, name string, picture *string) (user.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return user.User{}, ErrInvalidInput
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		if uerr := s.users.UpdateProfile(ctx, existing.UserID, name, picture); uerr != nil {
			return user.User{}, ErrInternal
		}
		existing.Name = name
		existing.Picture = picture
		return existing, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, ErrInternal
	}

	now := s.now().UTC().Format(time.RFC3339Nano)
	u := user.User{
		UserID:            s.newID("user"),
		Email:             email,
		Name:              name,
		Picture:           picture,
		PreferredLanguage: user.LanguagePT,
		CreatedAt:         now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return user.User{}, ErrInternal
	}
	if err := s.progress.Create(ctx, progress.Empty(u.UserID, now)); err != nil {
		return user.User{}, ErrInternal
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
