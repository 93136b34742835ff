package index

import (
	"context"
	"fmt"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/http"
	"github.com/glorpus-work/openhooks/pkg/repository"
)

// Manager fetches manifests according to a repository layout.
type Manager struct {
	client http.Client
	layout repository.Layout
}

// NewManager creates a new manifest manager.
func NewManager(client http.Client, layout repository.Layout) *Manager {
	return &Manager{
		client: client,
		layout: layout,
	}
}

// Fetch downloads and parses the manifest of the located repository.
// Every failure, whether transport, decoding or shape, wraps ErrManifestNotFound.
func (m *Manager) Fetch(ctx context.Context, loc repository.Locator) (*Index, error) {
	u, err := m.layout.ManifestURL(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrManifestNotFound, err)
	}

	logger.Debug("Fetching manifest", logger.Fields{
		"owner":  loc.Owner,
		"repo":   loc.Repo,
		"branch": loc.Branch,
		"url":    u.String(),
	})

	data, err := m.client.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrManifestNotFound, err)
	}

	idx, err := ParseIndex(data)
	if err != nil {
		return nil, err
	}

	logger.Debug("Manifest loaded", logger.Fields{"hooks": len(idx.Hooks)})
	return idx, nil
}
