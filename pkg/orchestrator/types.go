//go:generate mockgen -destination=./mocks/orchestrator.go . IndexFetcher,Downloader

package orchestrator

import (
	"context"

	"github.com/glorpus-work/openhooks/pkg/conflict"
	"github.com/glorpus-work/openhooks/pkg/download"
	"github.com/glorpus-work/openhooks/pkg/index"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/prompt"
	"github.com/glorpus-work/openhooks/pkg/repository"
)

// IndexFetcher is the subset of the index manager used by the orchestrator.
type IndexFetcher interface {
	Fetch(ctx context.Context, loc repository.Locator) (*index.Index, error)
}

// Downloader handles hook source downloading.
type Downloader interface {
	FetchAll(ctx context.Context, items []download.Item, opts download.Options) ([]string, error)
}

// Orchestrator ties the manifest, conflict and download stages together for adds.
type Orchestrator struct {
	Index    IndexFetcher
	DL       Downloader
	Prompter prompt.Prompter // nil means non-interactive
	Layout   repository.Layout
	Options  Options
	Hooks    Hooks // Hooks for progress and event notifications
}

// Phases reported through Hooks.
const (
	PhaseLocating    = "locating"
	PhaseFetching    = "fetching"
	PhaseResolving   = "resolving"
	PhaseNegotiating = "negotiating"
	PhaseConflicts   = "conflicts"
	PhaseDownloading = "downloading"
	PhaseDone        = "done"
)

// Event represents a simple progress notification.
type Event struct {
	Phase string // locating|fetching|resolving|negotiating|conflicts|downloading|done
	ID    string // hook name, when the event concerns one hook
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options control orchestrator execution.
type Options struct {
	DefaultLanguage model.Language  // used when the request has no language
	DefaultDir      string          // used when the request has no target dir
	Policy          conflict.Policy // how existing files are handled
	Concurrency     int             // download limit; <=0 means unbounded
}
