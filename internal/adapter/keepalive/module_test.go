package keepalive

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ecosystuz/tezkor-backend/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{SelfPingURL: "http://example.com/api/ping"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*HTTPClient); !ok {
		t.Fatalf("expected HTTP client, got %T", client)
	}
}

func TestNewClientDisabledWithoutURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: &config.Config{}, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.Ping(context.Background()); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected disabled client, got %v", err)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newClient(clientParams{Config: &config.Config{SelfPingURL: "/relative"}, Logger: logger}); err == nil {
		t.Fatal("expected error for relative url")
	}
}
