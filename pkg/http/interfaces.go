//go:generate mockgen -destination=mocks/http.go . Client
package http

import (
	"context"
	"net/url"
)

// Client defines the interface for raw-content HTTP operations.
type Client interface {
	// Get fetches the body of the given URL.
	// It returns an error for transport failures and any non-200 response.
	Get(ctx context.Context, u *url.URL) ([]byte, error)
}
