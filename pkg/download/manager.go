package download

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/glorpus-work/openhooks/internal/logger"
	pkgerrors "github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/fsutil"
	"github.com/glorpus-work/openhooks/pkg/http"
)

// ManagerImpl downloads items through an http.Client and writes them to disk.
// There is no retry and no content verification; bodies are written as received.
type ManagerImpl struct {
	client http.Client
}

var _ Manager = (*ManagerImpl)(nil)

// NewManager creates a new download manager.
func NewManager(client http.Client) *ManagerImpl {
	return &ManagerImpl{client: client}
}

// FetchAll downloads multiple items concurrently. Every item runs to
// completion; the first failure is returned as an *ItemError and writes that
// already happened are kept.
func (m *ManagerImpl) FetchAll(ctx context.Context, items []Item, opts Options) ([]string, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	results := make([]string, len(items))

	// A plain Group: a failing item does not cancel its siblings.
	var g errgroup.Group
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	for i, it := range items {
		g.Go(func() error {
			path, err := m.fetchOne(ctx, it)
			if err != nil {
				logger.Error("Download failed", logger.Fields{"hook": it.ID, "path": it.Dest, "error": err.Error()})
				return &ItemError{ID: it.ID, Err: err}
			}
			results[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Fetch downloads a single item and returns the path it was written to.
func (m *ManagerImpl) Fetch(ctx context.Context, item Item) (string, error) {
	if err := validateItems([]Item{item}); err != nil {
		return "", err
	}
	path, err := m.fetchOne(ctx, item)
	if err != nil {
		return "", &ItemError{ID: item.ID, Err: err}
	}
	return path, nil
}

func validateItems(items []Item) error {
	ids := make(map[string]struct{}, len(items))
	dests := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.URL == nil {
			return fmt.Errorf("item %d has nil URL: %w", i, pkgerrors.ErrDownloadFailed)
		}
		if it.Dest == "" {
			return fmt.Errorf("item %d has no destination: %w", i, pkgerrors.ErrInvalidPath)
		}
		if _, dup := ids[it.ID]; dup {
			return fmt.Errorf("duplicate item id %q: %w", it.ID, pkgerrors.ErrDownloadFailed)
		}
		if _, dup := dests[it.Dest]; dup {
			return fmt.Errorf("duplicate destination %s: %w", it.Dest, pkgerrors.ErrInvalidPath)
		}
		ids[it.ID] = struct{}{}
		dests[it.Dest] = struct{}{}
	}
	return nil
}

func (m *ManagerImpl) fetchOne(ctx context.Context, item Item) (string, error) {
	logger.Debug("Downloading", logger.Fields{"hook": item.ID, "url": item.URL.String()})

	data, err := m.client.Get(ctx, item.URL)
	if err != nil {
		return "", err
	}
	if err := fsutil.WriteFile(item.Dest, data); err != nil {
		return "", err
	}

	logger.Debug("Written", logger.Fields{"hook": item.ID, "path": item.Dest, "bytes": len(data)})
	return item.Dest, nil
}
