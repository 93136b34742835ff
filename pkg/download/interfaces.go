package download

import (
	"context"
	"fmt"
	"net/url"
)

// Manager defines the interface for downloading hook sources to their
// destination paths.
type Manager interface {
	// FetchAll downloads all items concurrently and writes each body verbatim
	// to its Dest. It returns the written paths in item order.
	FetchAll(ctx context.Context, items []Item, opts Options) ([]string, error)

	// Fetch downloads a single item to its Dest.
	Fetch(ctx context.Context, item Item) (string, error)
}

// Item represents one remote file to download.
type Item struct {
	ID   string   // stable identifier (e.g., hook name). Must be unique within a batch.
	URL  *url.URL // source URL to download
	Dest string   // destination file path; existing files are overwritten
}

// Options control the behavior of the download manager.
type Options struct {
	Concurrency int // number of parallel downloads; if <=0, all items run at once
}

// ItemError reports which item of a batch failed.
type ItemError struct {
	ID  string
	Err error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %v", e.ID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ItemError) Unwrap() error { return e.Err }
