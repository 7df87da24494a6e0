package dto

import "winestudy/internal/domain/user"

type UserResponse struct {
	UserID            string  `json:"user_id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	Picture           *string `json:"picture"`
	PreferredLanguage string  `json:"preferred_language"`
	CreatedAt         string  `json:"created_at"`
}

// LoginResponse carries the JWT in the body alongside the cookie so non-browser
// clients can authenticate with a Bearer header.
type LoginResponse struct {
	UserID            string  `json:"user_id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	Picture           *string `json:"picture"`
	PreferredLanguage string  `json:"preferred_language"`
	Token             string  `json:"token"`
}

// SessionResponse is the OAuth exchange profile. The session token travels
// only in the cookie.
type SessionResponse struct {
	UserID            string  `json:"user_id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	Picture           *string `json:"picture"`
	PreferredLanguage string  `json:"preferred_language"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		UserID:            u.UserID,
		Email:             u.Email,
		Name:              u.Name,
		Picture:           u.Picture,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}

func LoginFromUser(u user.User, token string) LoginResponse {
	return LoginResponse{
		UserID:            u.UserID,
		Email:             u.Email,
		Name:              u.Name,
		Picture:           u.Picture,
		PreferredLanguage: u.PreferredLanguage,
		Token:             token,
	}
}

func SessionFromUser(u user.User) SessionResponse {
	return SessionResponse{
		UserID:            u.UserID,
		Email:             u.Email,
		Name:              u.Name,
		Picture:           u.Picture,
		PreferredLanguage: u.PreferredLanguage,
	}
}
