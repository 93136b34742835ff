package orchestrator

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/pkg/conflict"
	"github.com/glorpus-work/openhooks/pkg/download"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/index"
	"github.com/glorpus-work/openhooks/pkg/language"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/prompt"
	"github.com/glorpus-work/openhooks/pkg/repository"
)

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

func (o *Orchestrator) prompter() prompt.Prompter {
	if o.Prompter == nil {
		return prompt.NonInteractive{}
	}
	return o.Prompter
}

// List fetches the manifest of the repository at repoURL.
func (o *Orchestrator) List(ctx context.Context, repoURL string) (*index.Index, error) {
	if o.Index == nil {
		return nil, fmt.Errorf("index fetcher is not configured")
	}
	_, idx, err := o.locateAndFetch(ctx, repoURL)
	return idx, err
}

// Add installs the requested hooks from the repository at repoURL into the
// request's target directory. Resolution, negotiation and conflict handling
// complete before anything is downloaded; a failure in any of them leaves the
// target directory untouched.
func (o *Orchestrator) Add(ctx context.Context, repoURL string, req model.InstallRequest) (model.InstallOutcome, error) {
	if o.Index == nil {
		return model.InstallOutcome{}, fmt.Errorf("index fetcher is not configured")
	}
	if o.DL == nil {
		return model.InstallOutcome{}, fmt.Errorf("download manager is not configured")
	}

	lang, targetDir, err := o.applyDefaults(req)
	if err != nil {
		return model.InstallOutcome{}, err
	}

	loc, idx, err := o.locateAndFetch(ctx, repoURL)
	if err != nil {
		return model.InstallOutcome{}, err
	}

	names := req.UniqueNames()
	if len(names) == 0 {
		names, err = o.selectHooks(ctx, idx)
		if err != nil {
			return model.InstallOutcome{}, err
		}
	}

	emit(o.Hooks, Event{Phase: PhaseResolving, Msg: fmt.Sprintf("%d hooks", len(names))})
	if err := index.ValidateNames(names); err != nil {
		return model.InstallOutcome{}, err
	}
	res, err := idx.Resolve(names)
	if err != nil {
		return model.InstallOutcome{}, err
	}

	emit(o.Hooks, Event{Phase: PhaseNegotiating, Msg: lang.String()})
	decisions, err := language.Negotiate(res.Resolved, lang)
	if err != nil {
		return model.InstallOutcome{}, err
	}

	emit(o.Hooks, Event{Phase: PhaseConflicts, Msg: targetDir})
	resolver := conflict.NewResolver(o.prompter(), o.Layout, o.Options.Policy)
	plan, err := resolver.Plan(ctx, decisions, targetDir)
	if err != nil {
		return model.InstallOutcome{}, err
	}

	outcome := model.InstallOutcome{Skipped: plan.Skipped}
	if len(plan.Targets) == 0 {
		emit(o.Hooks, Event{Phase: PhaseDone, Msg: "nothing to write"})
		return outcome, nil
	}

	items := make([]download.Item, 0, len(plan.Targets))
	for _, t := range plan.Targets {
		u, err := o.Layout.SourceURL(loc, t.Hook.Name, t.Language.String())
		if err != nil {
			return model.InstallOutcome{}, err
		}
		items = append(items, download.Item{ID: t.Hook.Name, URL: u, Dest: t.Path})
		emit(o.Hooks, Event{Phase: PhaseDownloading, ID: t.Hook.Name, Msg: t.Path})
	}

	written, err := o.DL.FetchAll(ctx, items, download.Options{Concurrency: o.Options.Concurrency})
	if err != nil {
		return model.InstallOutcome{}, toHookError(err)
	}

	outcome.Written = written
	emit(o.Hooks, Event{Phase: PhaseDone, Msg: fmt.Sprintf("%d written", len(written))})
	return outcome, nil
}

func (o *Orchestrator) applyDefaults(req model.InstallRequest) (model.Language, string, error) {
	lang := req.Language
	if lang == "" {
		lang = o.Options.DefaultLanguage
	}
	if !lang.Valid() {
		return "", "", fmt.Errorf("%q: %w", lang, errors.ErrInvalidLanguage)
	}

	dir := req.TargetDir
	if dir == "" {
		dir = o.Options.DefaultDir
	}
	if dir == "" {
		return "", "", fmt.Errorf("no target directory: %w", errors.ErrInvalidPath)
	}
	return lang, dir, nil
}

func (o *Orchestrator) locateAndFetch(ctx context.Context, repoURL string) (repository.Locator, *index.Index, error) {
	emit(o.Hooks, Event{Phase: PhaseLocating, Msg: repoURL})
	loc, err := repository.ParseURL(repoURL, o.Layout.DefaultBranch)
	if err != nil {
		return repository.Locator{}, nil, err
	}

	emit(o.Hooks, Event{Phase: PhaseFetching, Msg: loc.String()})
	idx, err := o.Index.Fetch(ctx, loc)
	if err != nil {
		return repository.Locator{}, nil, err
	}
	return loc, idx, nil
}

func (o *Orchestrator) selectHooks(ctx context.Context, idx *index.Index) ([]string, error) {
	hooks := idx.Installable()
	if len(hooks) == 0 {
		return nil, fmt.Errorf("repository publishes no hooks: %w", errors.ErrNoHooksSelected)
	}

	options := make([]prompt.Option, 0, len(hooks))
	for _, h := range hooks {
		options = append(options, prompt.Option{
			Label:       h.Name,
			Value:       h.Name,
			Description: h.Description,
		})
	}

	selected, err := o.prompter().AskMultiSelect(ctx, "Select hooks to add", options, 1)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, errors.ErrNoHooksSelected
	}
	logger.Debug("Hooks selected", logger.Fields{"hooks": selected})
	return selected, nil
}

// toHookError attributes a per-item failure to its hook. Batch-level errors
// such as duplicate destinations are returned unchanged.
func toHookError(err error) error {
	var itemErr *download.ItemError
	if stderrors.As(err, &itemErr) {
		return &errors.HookDownloadFailedError{Name: itemErr.ID, Err: itemErr.Err}
	}
	return err
}
