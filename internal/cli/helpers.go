package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/glorpus-work/openhooks/internal/logger"
	uiprompt "github.com/glorpus-work/openhooks/internal/ui/prompt"
	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/auth"
	"github.com/glorpus-work/openhooks/pkg/config"
	"github.com/glorpus-work/openhooks/pkg/download"
	"github.com/glorpus-work/openhooks/pkg/http"
	"github.com/glorpus-work/openhooks/pkg/index"
	"github.com/glorpus-work/openhooks/pkg/orchestrator"
	"github.com/glorpus-work/openhooks/pkg/prompt"
)

// These variables will be set by the main package
var (
	ConfigPath        *string
	Verbose           *bool
	NoColor           *bool
	ProjectConfigPath *string
	LogFormat         *string
)

// newPrompter picks the terminal prompter when a terminal is attached.
// Tests replace it.
var newPrompter = func() prompt.Prompter {
	if uiprompt.IsInteractive() {
		return uiprompt.NewTerminal()
	}
	return prompt.NonInteractive{}
}

func stringFlag(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolFlag(p *bool) bool {
	return p != nil && *p
}

func getSettingsPath() (string, error) {
	if path := stringFlag(ConfigPath); path != "" {
		return path, nil
	}
	path, err := config.DefaultSettingsPath()
	if err != nil {
		return "", fmt.Errorf("failed to get default config path: %w", err)
	}
	return path, nil
}

func getProjectConfigPath() string {
	if path := stringFlag(ProjectConfigPath); path != "" {
		return path
	}
	return config.ProjectConfigFile
}

// loadSettings loads the user settings, applies the global flags and
// configures logging and output colors from the result.
func loadSettings() (*config.Settings, error) {
	path, err := getSettingsPath()
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if boolFlag(Verbose) {
		settings.LogLevel = "debug"
	}
	if boolFlag(NoColor) {
		settings.ColorOutput = false
	}

	logger.InitLogger(settings.LogLevel, logger.ParseFormat(stringFlag(LogFormat)))
	styles.SetColor(settings.ColorOutput && isatty.IsTerminal(os.Stdout.Fd()))

	logger.Debug("Settings loaded", logger.Fields{"path": path, "layout_host": settings.Layout.RawContentHost})
	return settings, nil
}

func loadProject() (*config.ProjectConfig, error) {
	path := getProjectConfigPath()
	project, err := config.LoadProject(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Project config loaded", logger.Fields{
		"path":     path,
		"hooksDir": project.HooksDir,
		"language": project.DefaultLanguage,
		"repoUrl":  project.RepoURL,
	})
	return project, nil
}

func userAgent(settings *config.Settings) string {
	if settings.UserAgent != "" {
		return settings.UserAgent
	}
	return "openhooks/" + Version
}

// newOrchestrator wires the pipeline stages from settings.
func newOrchestrator(settings *config.Settings, p prompt.Prompter, opts orchestrator.Options) *orchestrator.Orchestrator {
	client := http.NewHTTPClient(settings.HTTPTimeout, userAgent(settings))
	if a := auth.FromEnv(os.LookupEnv); a != nil {
		logger.Debug("Authenticating repository requests", logger.Fields{"type": string(a.Type())})
		client.SetAuthenticator(a)
	}
	if opts.Concurrency == 0 {
		opts.Concurrency = settings.MaxConcurrent
	}
	return &orchestrator.Orchestrator{
		Index:    index.NewManager(client, settings.Layout),
		DL:       download.NewManager(client),
		Prompter: p,
		Layout:   settings.Layout,
		Options:  opts,
		Hooks: orchestrator.Hooks{
			OnEvent: func(e orchestrator.Event) {
				logger.Debug("Pipeline event", logger.Fields{"phase": e.Phase, "hook": e.ID, "msg": e.Msg})
			},
		},
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func truncate(s string, maxLen int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= maxLen {
		return string(r)
	}
	return string(r[:maxLen-3]) + "..."
}
