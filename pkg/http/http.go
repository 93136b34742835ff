package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/glorpus-work/openhooks/pkg/auth"
	"github.com/glorpus-work/openhooks/pkg/errors"
)

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "openhooks/dev"

// maxBodySize bounds a single raw-content response.
const maxBodySize = 10 << 20

// HTTPClient fetches raw repository content over HTTP.
type HTTPClient struct {
	client    *http.Client
	userAgent string
	auth      auth.Authenticator
}

// NewHTTPClient creates a new HTTP client. A zero timeout means no timeout.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// SetAuthenticator authenticates every following request. nil disables it.
func (hc *HTTPClient) SetAuthenticator(a auth.Authenticator) {
	hc.auth = a
}

// UserAgent returns the User-Agent header value sent with every request.
func (hc *HTTPClient) UserAgent() string {
	return hc.userAgent
}

// Get downloads the body at u.
func (hc *HTTPClient) Get(ctx context.Context, u *url.URL) ([]byte, error) {
	if u == nil {
		return nil, fmt.Errorf("nil URL: %w", errors.ErrDownloadFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", hc.userAgent)
	if hc.auth != nil {
		if err := hc.auth.Apply(req); err != nil {
			return nil, errors.Wrap(err, "failed to authenticate request")
		}
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", u.Redacted())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, errors.ErrDownloadFailed)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("response from %s exceeds %d bytes: %w", u.Redacted(), maxBodySize, errors.ErrDownloadFailed)
	}
	return data, nil
}
