package usecase

import (
	"context"
	"errors"
	"time"

	"winestudy/internal/domain/session"
	"winestudy/internal/domain/user"
	"winestudy/internal/infrastructure/identity"
	"winestudy/internal/pkg/jwt"
	ucauth "winestudy/internal/usecase/auth"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidSession   = errors.New("invalid session")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrInvalidLanguage  = errors.New("invalid language")
	ErrInternal         = errors.New("internal error")
)

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error)
	ExchangeOAuthSession(ctx context.Context, sessionID string) (user.User, string, error)
	Resolve(ctx context.Context, credential string) (user.User, error)
	Logout(ctx context.Context, credential string) error
	UpdateLanguage(ctx context.Context, userID, language string) error
}

type Auth struct {
	accounts *ucauth.Service
	users    user.Repository
	sessions session.Repository
	jwt      jwt.Service
	provider identity.Client

	sessionTTL time.Duration
	now        func() time.Time
}

func NewAuthUsecase(
	accounts *ucauth.Service,
	users user.Repository,
	sessions session.Repository,
	jwtSvc jwt.Service,
	provider identity.Client,
	sessionTTL time.Duration,
) *Auth {
	return &Auth{
		accounts:   accounts,
		users:      users,
		sessions:   sessions,
		jwt:        jwtSvc,
		provider:   provider,
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, error) {
	usr, err := u.accounts.Register(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.Generate(usr.UserID)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, error) {
	usr, err := u.accounts.Login(ctx, in)
	if err != nil {
		return user.User{}, "", err
	}

	token, err := u.jwt.Generate(usr.UserID)
	if err != nil {
		return user.User{}, "", ErrInternal
	}
	return usr, token, nil
}

// ExchangeOAuthSession trades an opaque provider session id for identity
// claims, upserts the account, and persists a revocable session record keyed
// by the provider's own token. The cookie carries that provider token, not a
// self-issued one.
func (u *Auth) ExchangeOAuthSession(ctx context.Context, sessionID string) (user.User, string, error) {
	if u.provider == nil {
		return user.User{}, "", ErrAuthFailed
	}

	data, err := u.provider.ExchangeSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidSession) {
			return user.User{}, "", ErrInvalidSession
		}
		return user.User{}, "", ErrAuthFailed
	}

	var picture *string
	if data.Picture != "" {
		picture = &data.Picture
	}

	usr, err := u.accounts.UpsertOAuthUser(ctx, data.Email, data.Name, picture)
	if err != nil {
		return user.User{}, "", ErrAuthFailed
	}

	now := u.now().UTC()
	rec := session.Session{
		SessionToken: data.SessionToken,
		UserID:       usr.UserID,
		ExpiresAt:    now.Add(u.sessionTTL).Format(time.RFC3339Nano),
		CreatedAt:    now.Format(time.RFC3339Nano),
	}
	if err := u.sessions.Create(ctx, rec); err != nil {
		return user.User{}, "", ErrAuthFailed
	}

	return usr, data.SessionToken, nil
}

// Resolve authenticates a raw credential. The credential carries no type tag;
// disambiguation is lookup-then-fallback: a stored session record wins, and
// only a credential unknown to the session store is treated as a self-issued
// token. Read-only; failures are authentication errors, never server faults.
func (u *Auth) Resolve(ctx context.Context, credential string) (user.User, error) {
	if credential == "" {
		return user.User{}, ErrNotAuthenticated
	}

	sess, err := u.sessions.GetByToken(ctx, credential)
	switch {
	case err == nil:
		expired, perr := sess.Expired(u.now())
		if perr != nil || expired {
			return user.User{}, ErrSessionExpired
		}
		return u.resolveUser(ctx, sess.UserID)
	case errors.Is(err, session.ErrNotFound):
		// fall through to token verification
	default:
		return user.User{}, ErrInternal
	}

	claims, err := u.jwt.Validate(credential)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.User{}, ErrTokenExpired
		}
		return user.User{}, ErrInvalidToken
	}

	return u.resolveUser(ctx, claims.UserID)
}

func (u *Auth) resolveUser(ctx context.Context, userID string) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

// Logout revokes the session record behind the credential. Unknown
// credentials are a no-op; self-issued tokens have nothing to revoke.
func (u *Auth) Logout(ctx context.Context, credential string) error {
	if credential == "" {
		return nil
	}
	return u.sessions.DeleteByToken(ctx, credential)
}

func (u *Auth) UpdateLanguage(ctx context.Context, userID, language string) error {
	if !user.ValidLanguage(language) {
		return ErrInvalidLanguage
	}
	if err := u.users.UpdateLanguage(ctx, userID, language); err != nil {
		return ErrInternal
	}
	return nil
}
