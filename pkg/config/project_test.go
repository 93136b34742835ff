package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/fsutil"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProjectConfig(t *testing.T) {
	cfg := DefaultProjectConfig()
	assert.Equal(t, "src/hooks", cfg.HooksDir)
	assert.Equal(t, model.LanguageTS, cfg.DefaultLanguage)
	assert.Equal(t, "https://github.com/Rajeshkumar02/OpenHooks", cfg.RepoURL)
	assert.NoError(t, cfg.Validate())
}

func TestProjectConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigFile)
	cfg := &ProjectConfig{HooksDir: "app/hooks", DefaultLanguage: model.LanguageJS, RepoURL: "acme/hooks"}

	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"hooksDir\": \"app/hooks\",\n  \"defaultLanguage\": \"js\",\n  \"repoUrl\": \"acme/hooks\"\n}\n", string(data))

	loaded, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadProject_Missing(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), ProjectConfigFile))
	assert.ErrorIs(t, err, errors.ErrConfigurationMissing)
}

func TestLoadProject_NormalisesLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"hooksDir":"src/hooks","defaultLanguage":" TS ","repoUrl":"https://github.com/acme/hooks"}`), fsutil.FileModeDefault))

	cfg, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, model.LanguageTS, cfg.DefaultLanguage)
}

func TestLoadProject_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     error
	}{
		{name: "not json", content: "hooksDir = src", err: errors.ErrConfigParse},
		{name: "empty dir", content: `{"hooksDir":"","defaultLanguage":"ts","repoUrl":"acme/hooks"}`, err: errors.ErrConfigValidation},
		{name: "bad language", content: `{"hooksDir":"src","defaultLanguage":"py","repoUrl":"acme/hooks"}`, err: errors.ErrConfigValidation},
		{name: "bad repo", content: `{"hooksDir":"src","defaultLanguage":"ts","repoUrl":"https://gitlab.com/acme/hooks"}`, err: errors.ErrConfigValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ProjectConfigFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), fsutil.FileModeDefault))

			_, err := LoadProject(path)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadProject_InvalidRepoURLKeepsCause(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigFile)
	content := `{"hooksDir":"src","defaultLanguage":"ts","repoUrl":"https://gitlab.com/acme/hooks"}`
	require.NoError(t, os.WriteFile(path, []byte(content), fsutil.FileModeDefault))

	_, err := LoadProject(path)
	assert.ErrorIs(t, err, errors.ErrConfigValidation)
	assert.ErrorIs(t, err, errors.ErrInvalidRepoURL)
}

func TestProjectConfig_SaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigFile)
	err := (&ProjectConfig{HooksDir: "src"}).Save(path)
	assert.ErrorIs(t, err, errors.ErrConfigValidation)
	assert.NoFileExists(t, path)
}

func TestProjectConfig_ToMap(t *testing.T) {
	m := DefaultProjectConfig().ToMap()
	assert.Equal(t, "src/hooks", m["hooksDir"])
	assert.Equal(t, "ts", m["defaultLanguage"])
	assert.Equal(t, "https://github.com/Rajeshkumar02/OpenHooks", m["repoUrl"])
}
