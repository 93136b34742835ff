// Package conflict decides what happens to hook files that already exist in
// the target directory.
package conflict

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/fsutil"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/prompt"
	"github.com/glorpus-work/openhooks/pkg/repository"
)

// Policy selects how existing files are handled.
type Policy int

const (
	// PolicyAsk prompts once per existing file.
	PolicyAsk Policy = iota
	// PolicyOverwrite replaces every existing file without asking.
	PolicyOverwrite
	// PolicySkip keeps every existing file without asking.
	PolicySkip
)

func (p Policy) String() string {
	switch p {
	case PolicyOverwrite:
		return "overwrite"
	case PolicySkip:
		return "skip"
	default:
		return "ask"
	}
}

// Plan lists the approved writes and the hooks left untouched.
type Plan struct {
	Targets []model.Target
	Skipped []string
}

// Resolver turns variant decisions into a write plan.
type Resolver struct {
	prompter prompt.Prompter
	layout   repository.Layout
	policy   Policy
}

// NewResolver creates a conflict resolver.
func NewResolver(p prompt.Prompter, layout repository.Layout, policy Policy) *Resolver {
	return &Resolver{
		prompter: p,
		layout:   layout,
		policy:   policy,
	}
}

// Choices offered for an existing file.
func Choices() []prompt.Choice {
	return []prompt.Choice{
		{Label: "Replace", Value: string(model.DecisionReplace)},
		{Label: "Skip", Value: string(model.DecisionSkip)},
		{Label: "Cancel all", Value: string(model.DecisionCancelAll)},
	}
}

// TargetPath returns where a hook variant is written inside targetDir.
func (r *Resolver) TargetPath(targetDir, name string, lang model.Language) string {
	return filepath.Join(targetDir, r.layout.FileName(name, lang.String()))
}

// Plan checks every decision's target path in order. Existing paths are
// resolved by the policy or by asking. Cancel all returns ErrCancelled and
// discards everything decided so far.
func (r *Resolver) Plan(ctx context.Context, decisions []model.VariantDecision, targetDir string) (Plan, error) {
	var plan Plan
	for _, d := range decisions {
		if !d.OK {
			return Plan{}, fmt.Errorf("hook %s has no %s variant: %w", d.Hook.Name, d.Chosen, errors.ErrLanguageUnavailable)
		}

		path := r.TargetPath(targetDir, d.Hook.Name, d.Chosen)
		exists, err := fsutil.Exists(path)
		if err != nil {
			return Plan{}, errors.Wrapf(err, "failed to check %s", path)
		}

		target := model.Target{Hook: d.Hook, Language: d.Chosen, Path: path, Existed: exists}
		if !exists {
			plan.Targets = append(plan.Targets, target)
			continue
		}

		decision, err := r.decide(ctx, path)
		if err != nil {
			return Plan{}, err
		}
		logger.Debug("Resolved existing file", logger.Fields{"hook": d.Hook.Name, "path": path, "decision": string(decision)})

		switch decision {
		case model.DecisionReplace:
			logger.Info("Replacing existing file", logger.Fields{"hook": d.Hook.Name, "path": path})
			plan.Targets = append(plan.Targets, target)
		case model.DecisionSkip:
			logger.Warn("Keeping existing file", logger.Fields{"hook": d.Hook.Name, "path": path})
			plan.Skipped = append(plan.Skipped, d.Hook.Name)
		default:
			return Plan{}, errors.ErrCancelled
		}
	}
	return plan, nil
}

func (r *Resolver) decide(ctx context.Context, path string) (model.ConflictDecision, error) {
	switch r.policy {
	case PolicyOverwrite:
		return model.DecisionReplace, nil
	case PolicySkip:
		return model.DecisionSkip, nil
	}

	answer, err := r.prompter.AskChoice(ctx, fmt.Sprintf("%s already exists. What do you want to do?", path), Choices())
	if err != nil {
		return "", err
	}
	switch d := model.ConflictDecision(answer); d {
	case model.DecisionReplace, model.DecisionSkip, model.DecisionCancelAll:
		return d, nil
	default:
		return "", fmt.Errorf("unexpected answer %q: %w", answer, errors.ErrCancelled)
	}
}
