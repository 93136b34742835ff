package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/fsutil"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/repository"
)

// ProjectConfigFile is the project configuration file name.
const ProjectConfigFile = "open-hooks.config.json"

// DefaultHooksDir is where hooks are written when the project does not say otherwise.
const DefaultHooksDir = "src/hooks"

// JSONIndent is the indentation used for the project configuration.
const JSONIndent = "  "

// ProjectConfig is the per-project configuration read by the add command.
type ProjectConfig struct {
	HooksDir        string         `json:"hooksDir"`
	DefaultLanguage model.Language `json:"defaultLanguage"`
	RepoURL         string         `json:"repoUrl"`
}

// DefaultProjectConfig returns the values offered by init.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		HooksDir:        DefaultHooksDir,
		DefaultLanguage: model.LanguageTS,
		RepoURL:         repository.DefaultRepoURL,
	}
}

// LoadProject reads the project configuration at path. A missing file is
// reported as ErrConfigurationMissing.
func LoadProject(path string) (*ProjectConfig, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, errors.ErrConfigurationMissing)
		}
		return nil, errors.Wrapf(err, "failed to open project config: %s", path)
	}

	var cfg ProjectConfig
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}
	cfg.DefaultLanguage = model.Language(strings.ToLower(strings.TrimSpace(string(cfg.DefaultLanguage))))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConfigValidation, err)
	}
	return &cfg, nil
}

// Save writes the configuration to path as indented JSON, atomically.
func (c *ProjectConfig) Save(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrConfigValidation, err)
	}

	data, err := json.MarshalIndent(c, "", JSONIndent)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	data = append(data, '\n')

	if err := fsutil.WriteFileAtomic(filepath.Clean(path), data, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *ProjectConfig) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if strings.TrimSpace(c.HooksDir) == "" {
		return fmt.Errorf("hooksDir cannot be empty")
	}
	if !c.DefaultLanguage.Valid() {
		return fmt.Errorf("defaultLanguage %q must be ts or js", c.DefaultLanguage)
	}
	if _, err := repository.ParseURL(c.RepoURL, ""); err != nil {
		return fmt.Errorf("repoUrl: %w", err)
	}
	return nil
}

// ToMap returns the configuration as JSON key/value pairs for display.
func (c *ProjectConfig) ToMap() map[string]string {
	return map[string]string{
		"hooksDir":        c.HooksDir,
		"defaultLanguage": c.DefaultLanguage.String(),
		"repoUrl":         c.RepoURL,
	}
}
