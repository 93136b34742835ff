package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/prompt"
)

// Terminal asks questions through bubbletea programs. Prompts render on
// stderr so stdout stays clean for command output.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

var _ prompt.Prompter = (*Terminal)(nil)

// NewTerminal returns a prompter bound to stdin and stderr.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stderr}
}

// IsInteractive reports whether stdin and stderr are both terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// AskChoice shows a single-select list.
func (t *Terminal) AskChoice(ctx context.Context, message string, choices []prompt.Choice) (string, error) {
	if len(choices) == 0 {
		return "", errors.ErrCancelled
	}
	final, err := t.run(ctx, newChoiceModel(message, choices))
	if err != nil {
		return "", err
	}
	m := final.(choiceModel)
	if m.cancelled || m.selected < 0 || m.selected >= len(choices) {
		return "", errors.ErrCancelled
	}
	t.echo(message, choices[m.selected].Label)
	return choices[m.selected].Value, nil
}

// AskMultiSelect shows a filterable checklist.
func (t *Terminal) AskMultiSelect(ctx context.Context, message string, options []prompt.Option, min int) ([]string, error) {
	final, err := t.run(ctx, newMultiSelectModel(message, options, min))
	if err != nil {
		return nil, err
	}
	m := final.(multiSelectModel)
	if m.cancelled {
		return nil, errors.ErrCancelled
	}
	values := m.values()
	t.echo(message, strings.Join(m.labels(), ", "))
	return values, nil
}

// AskText shows a text input; an empty answer returns def.
func (t *Terminal) AskText(ctx context.Context, message string, def string) (string, error) {
	final, err := t.run(ctx, newTextModel(message, def))
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.cancelled {
		return "", errors.ErrCancelled
	}
	answer := m.value()
	t.echo(message, answer)
	return answer, nil
}

func (t *Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.ErrCancelled
		}
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return final, nil
}

// echo leaves the answered question on screen once the program has cleared its view.
func (t *Terminal) echo(message, answer string) {
	_, _ = fmt.Fprintf(t.out, "%s %s %s\n",
		styles.SuccessStyle.Render(styles.SymbolCheck),
		message,
		styles.AccentStyle.Render(answer))
}
