// Package index fetches and queries the hook manifest of a repository.
package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/model"
)

// Index is a parsed hook manifest.
type Index struct {
	Hooks []*model.Hook `json:"hooks"`

	byName map[string]*model.Hook
}

// NewIndex builds an index from hooks. Nameless entries are dropped and
// duplicate names keep the first entry.
func NewIndex(hooks []*model.Hook) *Index {
	idx := &Index{
		Hooks:  make([]*model.Hook, 0, len(hooks)),
		byName: make(map[string]*model.Hook, len(hooks)),
	}
	for i, h := range hooks {
		if h == nil || strings.TrimSpace(h.Name) == "" {
			logger.Debug("Dropping manifest entry without a name", logger.Fields{"position": i})
			continue
		}
		if _, dup := idx.byName[h.Name]; dup {
			logger.Debug("Ignoring duplicate manifest entry", logger.Fields{"hook": h.Name})
			continue
		}
		idx.byName[h.Name] = h
		idx.Hooks = append(idx.Hooks, h)
	}
	return idx
}

// ParseIndex parses a manifest payload. The payload must be a JSON object
// with a "hooks" array; anything else is reported as ErrManifestNotFound.
func ParseIndex(data []byte) (*Index, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrManifestNotFound, err)
	}

	raw, ok := doc["hooks"]
	if !ok {
		return nil, fmt.Errorf("missing hooks field: %w", errors.ErrManifestNotFound)
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("hooks field is not an array: %w", errors.ErrManifestNotFound)
	}

	var hooks []*model.Hook
	if err := json.Unmarshal(raw, &hooks); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrManifestNotFound, err)
	}

	return NewIndex(hooks), nil
}

// Names returns the hook names in manifest order.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.Hooks))
	for _, h := range idx.Hooks {
		names = append(names, h.Name)
	}
	return names
}

// Find returns the hook with the exact given name.
func (idx *Index) Find(name string) (*model.Hook, bool) {
	if idx.byName == nil {
		for _, h := range idx.Hooks {
			if h.Name == name {
				return h, true
			}
		}
		return nil, false
	}
	h, ok := idx.byName[name]
	return h, ok
}

// Installable returns the hooks that publish at least one variant.
func (idx *Index) Installable() []*model.Hook {
	out := make([]*model.Hook, 0, len(idx.Hooks))
	for _, h := range idx.Hooks {
		if h.HasAnyVariant() {
			out = append(out, h)
		}
	}
	return out
}
