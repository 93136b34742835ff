package repository

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/glorpus-work/openhooks/pkg/errors"
)

// Defaults describing the upstream OpenHooks repository.
const (
	DefaultRawContentHost = "https://raw.githubusercontent.com"
	DefaultBranch         = "main"
	DefaultManifestPath   = "hooks/manifest.json"
	DefaultHooksBasePath  = "hooks"
	DefaultFilePrefix     = "use"
	DefaultRepoURL        = "https://github.com/Rajeshkumar02/OpenHooks"
)

// Layout describes where a hook repository keeps its manifest and sources.
// It is a plain value so alternate repository layouts can be passed into the
// pipeline without touching package state.
type Layout struct {
	RawContentHost string `yaml:"raw_content_host"`
	DefaultBranch  string `yaml:"default_branch"`
	ManifestPath   string `yaml:"manifest_path"`
	HooksBasePath  string `yaml:"hooks_base_path"`
	FilePrefix     string `yaml:"file_prefix"`
}

// DefaultLayout returns the layout used by the upstream repository.
func DefaultLayout() Layout {
	return Layout{
		RawContentHost: DefaultRawContentHost,
		DefaultBranch:  DefaultBranch,
		ManifestPath:   DefaultManifestPath,
		HooksBasePath:  DefaultHooksBasePath,
		FilePrefix:     DefaultFilePrefix,
	}
}

// WithDefaults fills empty fields from DefaultLayout.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()
	if l.RawContentHost == "" {
		l.RawContentHost = d.RawContentHost
	}
	if l.DefaultBranch == "" {
		l.DefaultBranch = d.DefaultBranch
	}
	if l.ManifestPath == "" {
		l.ManifestPath = d.ManifestPath
	}
	if l.HooksBasePath == "" {
		l.HooksBasePath = d.HooksBasePath
	}
	// An empty prefix is a valid layout, so FilePrefix is left alone.
	return l
}

// Validate checks that the layout can produce URLs.
func (l Layout) Validate() error {
	if l.RawContentHost == "" {
		return fmt.Errorf("raw content host cannot be empty: %w", errors.ErrInvalidLayout)
	}
	u, err := url.Parse(l.RawContentHost)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("raw content host %q must be an http(s) URL: %w", l.RawContentHost, errors.ErrInvalidLayout)
	}
	if l.DefaultBranch == "" {
		return fmt.Errorf("default branch cannot be empty: %w", errors.ErrInvalidLayout)
	}
	if l.ManifestPath == "" {
		return fmt.Errorf("manifest path cannot be empty: %w", errors.ErrInvalidLayout)
	}
	if strings.ContainsAny(l.FilePrefix, `/\`) {
		return fmt.Errorf("file prefix %q must not contain path separators: %w", l.FilePrefix, errors.ErrInvalidLayout)
	}
	return nil
}

// RawURL returns the raw-content URL of p inside the located branch.
func (l Layout) RawURL(loc Locator, p string) (*url.URL, error) {
	base, err := url.Parse(l.RawContentHost)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidLayout, err.Error())
	}
	elems := []string{loc.Owner, loc.Repo}
	elems = append(elems, strings.Split(loc.Branch, "/")...)
	elems = append(elems, strings.Split(strings.Trim(p, "/"), "/")...)
	return base.JoinPath(elems...), nil
}

// ManifestURL returns the raw-content URL of the manifest.
func (l Layout) ManifestURL(loc Locator) (*url.URL, error) {
	return l.RawURL(loc, l.ManifestPath)
}

// FileName returns the local file name for a hook, e.g. useDebounce.ts.
func (l Layout) FileName(name, lang string) string {
	return l.FilePrefix + name + "." + lang
}

// SourcePath returns the path of a hook inside the repository tree,
// e.g. hooks/ts/useDebounce.ts.
func (l Layout) SourcePath(name, lang string) string {
	return path.Join(l.HooksBasePath, lang, l.FileName(name, lang))
}

// SourceURL returns the raw-content URL of a hook source file.
func (l Layout) SourceURL(loc Locator, name, lang string) (*url.URL, error) {
	return l.RawURL(loc, l.SourcePath(name, lang))
}
