//go:generate mockgen -destination=mocks/prompt.go . Prompter

// Package prompt defines the interactive input capability used by the
// installer pipeline. Implementations live outside the pipeline so tests and
// non-interactive runs can substitute their own.
package prompt

import (
	"context"

	"github.com/glorpus-work/openhooks/pkg/errors"
)

// Choice is one option of a single-choice question.
type Choice struct {
	Label string
	Value string
}

// Option is one entry of a multi-select question.
type Option struct {
	Label       string
	Value       string
	Description string
}

// Prompter asks the user questions.
type Prompter interface {
	// AskChoice returns the Value of the selected choice.
	AskChoice(ctx context.Context, message string, choices []Choice) (string, error)
	// AskMultiSelect returns the Values of the selected options in option order.
	// At least min options must be selected.
	AskMultiSelect(ctx context.Context, message string, options []Option, min int) ([]string, error)
	// AskText returns the entered text, or def when the input is empty.
	AskText(ctx context.Context, message string, def string) (string, error)
}

// NonInteractive is a Prompter for runs without a terminal. Every question
// fails with ErrNotInteractive.
type NonInteractive struct{}

var _ Prompter = NonInteractive{}

func (NonInteractive) AskChoice(context.Context, string, []Choice) (string, error) {
	return "", errors.ErrNotInteractive
}

func (NonInteractive) AskMultiSelect(context.Context, string, []Option, int) ([]string, error) {
	return nil, errors.ErrNotInteractive
}

func (NonInteractive) AskText(context.Context, string, string) (string, error) {
	return "", errors.ErrNotInteractive
}

// Defaults is a Prompter that answers every question with its default: the
// first choice and the given text default. Multi-select cannot be defaulted.
type Defaults struct{}

var _ Prompter = Defaults{}

func (Defaults) AskChoice(_ context.Context, _ string, choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", errors.ErrNotInteractive
	}
	return choices[0].Value, nil
}

func (Defaults) AskMultiSelect(context.Context, string, []Option, int) ([]string, error) {
	return nil, errors.ErrNotInteractive
}

func (Defaults) AskText(_ context.Context, _ string, def string) (string, error) {
	return def, nil
}
