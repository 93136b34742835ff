// Package config provides configuration management for openhooks.
// It handles two files: the per-project open-hooks.config.json that the
// add command reads, and the optional per-user settings.yaml that tunes
// logging, networking and the repository layout.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/fsutil"
	"github.com/glorpus-work/openhooks/pkg/repository"
	"gopkg.in/yaml.v3"
)

// Settings represents per-user application settings.
type Settings struct {
	// Output settings
	LogLevel    string `yaml:"log_level"` // debug, info, warn, error
	ColorOutput bool   `yaml:"color_output"`

	// Network settings
	HTTPTimeout   time.Duration `yaml:"http_timeout"` // 0 means no timeout
	UserAgent     string        `yaml:"user_agent,omitempty"`
	MaxConcurrent int           `yaml:"max_concurrent_downloads"` // 0 means unbounded

	// Repository layout
	Layout repository.Layout `yaml:"layout"`
}

// Default settings values.
const (
	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		LogLevel:    DefaultLogLevel,
		ColorOutput: true,
		Layout:      repository.DefaultLayout(),
	}
}

// DefaultSettingsPath returns the default settings file path.
func DefaultSettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "openhooks", "settings.yaml"), nil
}

// LoadSettings loads settings from a file. A missing file yields the defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, errors.Wrapf(err, "failed to open settings file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadSettingsFromReader(file)
}

// LoadSettingsFromReader loads settings from an io.Reader. Keys absent from
// the document keep their default values.
func LoadSettingsFromReader(reader io.Reader) (*Settings, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings data")
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}
	s.Layout = s.Layout.WithDefaults()

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}
	return s, nil
}

// SaveSettings writes settings to path atomically.
func (s *Settings) SaveSettings(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := fsutil.EnsureDir(filepath.Dir(absPath)); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := s.ToYAML()
	if err != nil {
		return err
	}

	if err := fsutil.WriteFileAtomic(absPath, data, fsutil.FileModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigFileRename, err.Error())
	}
	return nil
}

// ToYAML converts the settings to YAML bytes.
func (s *Settings) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(s); err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigEncode, err.Error())
	}
	return buf.Bytes(), nil
}

// Validate checks if the settings are valid.
func (s *Settings) Validate() error {
	if s == nil {
		return errors.ErrConfigValidation
	}
	if !validLogLevels[strings.ToLower(s.LogLevel)] {
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", s.LogLevel)
	}
	if s.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout cannot be negative")
	}
	if s.MaxConcurrent < 0 {
		return fmt.Errorf("max_concurrent_downloads cannot be negative")
	}
	return s.Layout.Validate()
}
