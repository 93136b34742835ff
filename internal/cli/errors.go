package cli

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/errors"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
)

const (
	cancelledMessage = "Operation cancelled by user"
	missingMessage   = `No configuration found. Please run "openhooks init" first.`
)

type suggester interface {
	Suggestion() string
}

// IsCancelled reports whether err means the user stopped the operation.
func IsCancelled(err error) bool {
	return stderrors.Is(err, errors.ErrCancelled) || stderrors.Is(err, context.Canceled)
}

// ExitCode maps a command error to the process exit code. Cancellation is
// not a failure.
func ExitCode(err error) int {
	if err == nil || IsCancelled(err) {
		return ExitOK
	}
	return ExitError
}

// FormatError renders err as the single message printed on stderr, followed
// by a suggestion when one is known.
func FormatError(err error) string {
	switch {
	case err == nil:
		return ""
	case IsCancelled(err):
		return styles.WarningStyle.Render(cancelledMessage)
	case stderrors.Is(err, errors.ErrConfigurationMissing):
		return styles.ErrorStyle.Render(missingMessage)
	}

	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("Error:"))
	b.WriteString(" ")
	b.WriteString(err.Error())

	if hint := suggestion(err); hint != "" {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(hint))
	}
	return b.String()
}

func suggestion(err error) string {
	var s suggester
	if stderrors.As(err, &s) {
		if hint := s.Suggestion(); hint != "" {
			return hint
		}
	}
	switch {
	case stderrors.Is(err, errors.ErrNotInteractive):
		return "Pass the hook names as arguments, e.g. openhooks add useDebounce"
	case stderrors.Is(err, errors.ErrInvalidRepoURL):
		return `Set "repoUrl" in ` + getProjectConfigPath() + " to a GitHub repository URL"
	}
	return ""
}
