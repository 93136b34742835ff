package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glorpus-work/openhooks/pkg/config"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/model"
)

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConfigShow(t *testing.T) {
	env := setupEnv(t)

	out, err := execute(t, NewConfigCmd(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "not initialized")
	assert.Contains(t, out, "layout.default_branch")
	assert.Contains(t, out, env.settings)

	env.writeProject(t, model.LanguageJS)
	out, err = execute(t, NewConfigCmd(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "defaultLanguage")
	assert.Contains(t, out, env.hooksDir)
}

func TestConfigSetGet(t *testing.T) {
	env := setupEnv(t)

	_, err := execute(t, NewConfigCmd(), "set", "layout.default_branch", "develop")
	require.NoError(t, err)

	saved, err := config.LoadSettings(env.settings)
	require.NoError(t, err)
	assert.Equal(t, "develop", saved.Layout.DefaultBranch)
	assert.Equal(t, env.repo.URL, saved.Layout.RawContentHost)

	out, err := execute(t, NewConfigCmd(), "get", "layout.default_branch")
	require.NoError(t, err)
	assert.Equal(t, "develop\n", out)
}

func TestConfigSet_Invalid(t *testing.T) {
	env := setupEnv(t)

	_, err := execute(t, NewConfigCmd(), "set", "unknown_key", "x")
	require.Error(t, err)

	_, err = execute(t, NewConfigCmd(), "set", "log_level", "loud")
	require.ErrorIs(t, err, errors.ErrConfigValidation)

	saved, err := config.LoadSettings(env.settings)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, saved.LogLevel)
}

func TestConfigGet_UnknownKey(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, NewConfigCmd(), "get", "nope")
	require.Error(t, err)
}
