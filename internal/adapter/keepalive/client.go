package keepalive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrDisabled reports that no self-ping target is configured.
var ErrDisabled = errors.New("keep-alive disabled")

// Client pings the service's own public URL so free-tier hosting does not
// put the process to sleep between requests.
type Client interface {
	Ping(ctx context.Context) error
}

// HTTPClient implements Client over plain HTTP GET.
type HTTPClient struct {
	target     *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a keep-alive client for the given absolute URL.
func NewHTTPClient(target string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parse keep-alive url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("keep-alive url must be absolute")
	}
	return &HTTPClient{
		target: parsed,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Ping performs a single GET against the target and treats any non-2xx
// response as failure.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.target.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("keep-alive ping failed: %s", resp.Status)
	}
	return nil
}

// Disabled returns a client whose Ping always reports ErrDisabled.
func Disabled() Client {
	return disabledClient{}
}

type disabledClient struct{}

func (disabledClient) Ping(context.Context) error {
	return ErrDisabled
}
