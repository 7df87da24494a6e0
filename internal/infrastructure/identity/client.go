// Package identity talks to the external OAuth identity provider. The exchange
// is all-or-nothing: one fixed endpoint, no retry, no fallback URL.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrInvalidSession is returned for any non-200 provider response.
	ErrInvalidSession = errors.New("invalid session")
	// ErrExchangeFailed covers transport-level failures.
	ErrExchangeFailed = errors.New("authentication failed")
)

// SessionData is the provider's identity claim set for a session id.
type SessionData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

type Client interface {
	ExchangeSession(ctx context.Context, sessionID string) (SessionData, error)
}

type httpClient struct {
	endpoint string
	client   *http.Client
	logger   *log.Logger
}

// NewClient builds the provider client. The original upstream call had no
// timeout; the bound here is a deliberate hardening so a hung provider cannot
// hang the request forever.
func NewClient(endpoint string, logger *log.Logger) Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &httpClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (c *httpClient) ExchangeSession(ctx context.Context, sessionID string) (SessionData, error) {
	if c == nil || c.client == nil {
		return SessionData{}, ErrExchangeFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return SessionData{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Identity] exchange failed: %v", err)
		}
		return SessionData{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		if c.logger != nil {
			c.logger.Printf("[Identity] provider returned status %d", resp.StatusCode)
		}
		return SessionData{}, ErrInvalidSession
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return SessionData{}, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}
	return data, nil
}
