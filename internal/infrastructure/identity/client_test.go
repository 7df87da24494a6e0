package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_ExchangeSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Session-ID"); got != "sess-123" {
			t.Errorf("expected X-Session-ID header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"a@b.c","name":"Ana","picture":"p","session_token":"tok-1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	data, err := c.ExchangeSession(context.Background(), "sess-123")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if data.Email != "a@b.c" || data.SessionToken != "tok-1" {
		t.Fatalf("unexpected payload %+v", data)
	}
}

func TestClient_ExchangeSession_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.ExchangeSession(context.Background(), "sess-123"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestClient_ExchangeSession_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, nil)
	if _, err := c.ExchangeSession(context.Background(), "sess-123"); !errors.Is(err, ErrExchangeFailed) {
		t.Fatalf("expected ErrExchangeFailed, got %v", err)
	}
}

func TestNewClient_EmptyEndpoint(t *testing.T) {
	if c := NewClient("   ", nil); c != nil {
		t.Fatalf("expected nil client for empty endpoint")
	}
}
