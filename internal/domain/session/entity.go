package session

import (
	"fmt"
	"time"
)

// Session maps an externally issued credential to a user. Deleting the record
// revokes the credential immediately, unlike self-issued tokens.
type Session struct {
	SessionToken string `bson:"session_token" json:"session_token"`
	UserID       string `bson:"user_id" json:"user_id"`
	ExpiresAt    string `bson:"expires_at" json:"expires_at"`
	CreatedAt    string `bson:"created_at" json:"created_at"`
}

// Stored expiry timestamps may carry an offset or be naive; naive values are
// taken as UTC.
var expiryLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (s Session) Expiry() (time.Time, error) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s.ExpiresAt); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable expiry %q", s.ExpiresAt)
}

func (s Session) Expired(now time.Time) (bool, error) {
	exp, err := s.Expiry()
	if err != nil {
		return false, err
	}
	return exp.Before(now.UTC()), nil
}
