package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/errors"
)

func TestFormatError(t *testing.T) {
	styles.SetColor(false)
	t.Cleanup(func() { styles.SetColor(true) })

	tests := []struct {
		name     string
		err      error
		contains []string
		exitCode int
	}{
		{
			name:     "nil",
			err:      nil,
			exitCode: ExitOK,
		},
		{
			name:     "cancelled",
			err:      fmt.Errorf("conflict: %w", errors.ErrCancelled),
			contains: []string{"Operation cancelled by user"},
			exitCode: ExitOK,
		},
		{
			name:     "interrupted",
			err:      context.Canceled,
			contains: []string{"Operation cancelled by user"},
			exitCode: ExitOK,
		},
		{
			name:     "missing configuration",
			err:      fmt.Errorf("x: %w", errors.ErrConfigurationMissing),
			contains: []string{`Please run "openhooks init" first.`},
			exitCode: ExitError,
		},
		{
			name:     "hooks not found",
			err:      &errors.HooksNotFoundError{Names: []string{"A", "B"}},
			contains: []string{"Error:", "A, B", `Run "openhooks list"`},
			exitCode: ExitError,
		},
		{
			name: "language unavailable",
			err: &errors.LanguageUnavailableError{
				Language:     "js",
				Names:        []string{"Debounce"},
				Alternatives: []errors.Alternative{{Name: "Debounce", Language: "ts"}},
			},
			contains: []string{"don't support JS: Debounce", "- Debounce: use --language ts"},
			exitCode: ExitError,
		},
		{
			name:     "download failure",
			err:      &errors.HookDownloadFailedError{Name: "Fetch", Err: fmt.Errorf("status 500")},
			contains: []string{"hook download failed: Fetch: status 500"},
			exitCode: ExitError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := FormatError(tt.err)
			for _, c := range tt.contains {
				assert.Contains(t, msg, c)
			}
			assert.Equal(t, tt.exitCode, ExitCode(tt.err))
		})
	}
}
