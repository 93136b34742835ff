package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/pkg/config"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/prompt"
	"github.com/glorpus-work/openhooks/test/testutil"
)

const (
	debounceTS = "export function useDebounce<T>(value: T, delay: number): T {\n  return value;\n}\n"
	fetchTS    = "export function useFetch(url: string) {}\n"
	fetchJS    = "export function useFetch(url) {}\n"
)

type testEnv struct {
	repo        *testutil.HookRepoServer
	dir         string
	hooksDir    string
	settings    string
	projectPath string
}

// setupEnv points the global flags at a temp settings file whose layout
// targets an in-memory hook repository. The project config is not created.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := testutil.NewHookRepoServer(t, map[string]string{
		"hooks/manifest.json": testutil.Manifest(t,
			model.Hook{Name: "Debounce", TS: true, Description: "Debounce a changing value"},
			model.Hook{Name: "Fetch", TS: true, JS: true},
		),
		"hooks/ts/useDebounce.ts": debounceTS,
		"hooks/ts/useFetch.ts":    fetchTS,
		"hooks/js/useFetch.js":    fetchJS,
	})

	dir := t.TempDir()
	env := &testEnv{
		repo:        repo,
		dir:         dir,
		hooksDir:    filepath.Join(dir, "src", "hooks"),
		settings:    filepath.Join(dir, "settings.yaml"),
		projectPath: filepath.Join(dir, config.ProjectConfigFile),
	}

	settings := config.DefaultSettings()
	settings.Layout = repo.Layout()
	require.NoError(t, settings.SaveSettings(env.settings))

	configPath, projectPath, logFormat := env.settings, env.projectPath, "text"
	verbose, noColor := false, true
	ConfigPath = &configPath
	ProjectConfigPath = &projectPath
	LogFormat = &logFormat
	Verbose = &verbose
	NoColor = &noColor

	var logs bytes.Buffer
	logger.SetTestOutput(&logs)

	origPrompter := newPrompter
	t.Cleanup(func() {
		ConfigPath, ProjectConfigPath, LogFormat, Verbose, NoColor = nil, nil, nil, nil, nil
		newPrompter = origPrompter
		logger.UnsetTestOutput()
	})
	usePrompter(t, prompt.NonInteractive{})

	return env
}

func (e *testEnv) writeProject(t *testing.T, lang model.Language) {
	t.Helper()
	cfg := &config.ProjectConfig{
		HooksDir:        e.hooksDir,
		DefaultLanguage: lang,
		RepoURL:         e.repo.RepoURL(),
	}
	require.NoError(t, cfg.Save(e.projectPath))
}

func usePrompter(t *testing.T, p prompt.Prompter) {
	t.Helper()
	newPrompter = func() prompt.Prompter { return p }
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, NewVersionCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "openhooks version "+Version)
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 hook", pluralize(1, "hook"))
	assert.Equal(t, "3 hooks", pluralize(3, "hook"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short", input: " short ", maxLen: 10, want: "short"},
		{name: "ascii", input: "abcdefghijklmnop", maxLen: 10, want: "abcdefg..."},
		{name: "multibyte fits", input: "äöüäöüäöüä", maxLen: 10, want: "äöüäöüäöüä"},
		{name: "multibyte cut", input: "äöüäöüäöüäöü", maxLen: 10, want: "äöüäöüä..."},
		{name: "emoji", input: "hook 🪝🪝🪝🪝🪝🪝🪝", maxLen: 8, want: "hook ..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestUserAgent(t *testing.T) {
	s := config.DefaultSettings()
	assert.Equal(t, "openhooks/"+Version, userAgent(s))
	s.UserAgent = "custom/1"
	assert.Equal(t, "custom/1", userAgent(s))
}
