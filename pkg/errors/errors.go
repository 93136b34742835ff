package errors

import (
	"fmt"
	"strings"
)

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath      = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath    = fmt.Errorf("invalid config file path")
	ErrConfigParse          = fmt.Errorf("failed to parse config")
	ErrConfigValidation     = fmt.Errorf("invalid configuration")
	ErrConfigEncode         = fmt.Errorf("failed to encode config")
	ErrConfigDirectory      = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate     = fmt.Errorf("failed to create config file")
	ErrConfigFileRename     = fmt.Errorf("failed to rename temporary config file")
	ErrConfigExists         = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrConfigurationMissing = fmt.Errorf("configuration missing")

	// Repository errors.
	ErrInvalidRepoURL   = fmt.Errorf("invalid GitHub repository URL")
	ErrInvalidLayout    = fmt.Errorf("invalid repository layout")
	ErrManifestNotFound = fmt.Errorf("hook manifest not found")

	// Pipeline errors.
	ErrHooksNotFound       = fmt.Errorf("hooks not found in repository")
	ErrInvalidHookName     = fmt.Errorf("invalid hook name")
	ErrInvalidLanguage     = fmt.Errorf("invalid language")
	ErrLanguageUnavailable = fmt.Errorf("language variant unavailable")
	ErrHookDownloadFailed  = fmt.Errorf("hook download failed")
	ErrNoHooksSelected     = fmt.Errorf("you must choose at least one hook")
	ErrCancelled           = fmt.Errorf("operation cancelled by user")

	// Prompt errors.
	ErrNotInteractive = fmt.Errorf("interactive input required but no terminal is attached")

	// Download errors.
	ErrDownloadFailed = fmt.Errorf("download failed")
	ErrInvalidPath    = fmt.Errorf("invalid path")
)

// Error types carrying the offending hook names.
type (
	// HooksNotFoundError lists every requested name missing from the manifest.
	HooksNotFoundError struct {
		Names []string
	}

	// InvalidHookNameError lists every requested name that is not a valid identifier.
	InvalidHookNameError struct {
		Names []string
	}

	// LanguageUnavailableError is returned when at least one hook lacks the requested variant.
	LanguageUnavailableError struct {
		Language     string
		Names        []string
		Alternatives []Alternative
	}

	// Alternative pairs an unsupported hook with the language it is available in.
	Alternative struct {
		Name     string
		Language string
	}

	// HookDownloadFailedError is returned when fetching or writing a single hook fails.
	HookDownloadFailedError struct {
		Name string
		Err  error
	}
)

func (e *HooksNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrHooksNotFound, strings.Join(e.Names, ", "))
}

// Is reports whether target is ErrHooksNotFound.
func (e *HooksNotFoundError) Is(target error) bool { return target == ErrHooksNotFound }

// Suggestion returns a corrective hint for the user.
func (e *HooksNotFoundError) Suggestion() string {
	return `Run "openhooks list" to see the available hooks`
}

func (e *InvalidHookNameError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidHookName, strings.Join(e.Names, ", "))
}

// Is reports whether target is ErrInvalidHookName.
func (e *InvalidHookNameError) Is(target error) bool { return target == ErrInvalidHookName }

func (e *LanguageUnavailableError) Error() string {
	return fmt.Sprintf("the following hooks don't support %s: %s",
		strings.ToUpper(e.Language), strings.Join(e.Names, ", "))
}

// Is reports whether target is ErrLanguageUnavailable.
func (e *LanguageUnavailableError) Is(target error) bool { return target == ErrLanguageUnavailable }

// Suggestion lists the alternative language flag for every hook that has one.
// It is empty when no hook offers the other variant.
func (e *LanguageUnavailableError) Suggestion() string {
	if len(e.Alternatives) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Alternatives available:")
	for _, alt := range e.Alternatives {
		fmt.Fprintf(&b, "\n- %s: use --language %s", alt.Name, alt.Language)
	}
	return b.String()
}

func (e *HookDownloadFailedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrHookDownloadFailed, e.Name)
	}
	return fmt.Sprintf("%s: %s: %v", ErrHookDownloadFailed, e.Name, e.Err)
}

// Is reports whether target is ErrHookDownloadFailed.
func (e *HookDownloadFailedError) Is(target error) bool { return target == ErrHookDownloadFailed }

// Unwrap returns the underlying cause.
func (e *HookDownloadFailedError) Unwrap() error { return e.Err }

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
