// Package model provides the data structures shared by the openhooks
// installer pipeline: manifest entries, install requests and the decisions
// each pipeline stage produces.
package model

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/openhooks/pkg/errors"
)

// Language identifies one of the two mutually exclusive hook variants.
type Language string

const (
	// LanguageTS selects the TypeScript variant.
	LanguageTS Language = "ts"
	// LanguageJS selects the JavaScript variant.
	LanguageJS Language = "js"
)

// Languages lists the supported variants in prompt order.
var Languages = []Language{LanguageTS, LanguageJS}

// ParseLanguage converts user input to a Language. Matching ignores case and
// surrounding whitespace.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageTS:
		return LanguageTS, nil
	case LanguageJS:
		return LanguageJS, nil
	default:
		return "", fmt.Errorf("%q (expected ts or js): %w", s, errors.ErrInvalidLanguage)
	}
}

// Other returns the alternative variant.
func (l Language) Other() Language {
	if l == LanguageTS {
		return LanguageJS
	}
	return LanguageTS
}

// Valid reports whether l is one of the supported variants.
func (l Language) Valid() bool {
	return l == LanguageTS || l == LanguageJS
}

func (l Language) String() string { return string(l) }

// Hook is one entry of the remote manifest.
type Hook struct {
	Name         string   `json:"name"`
	JS           bool     `json:"js"`
	TS           bool     `json:"ts"`
	Description  string   `json:"description,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

// Supports reports whether the hook ships the given variant.
func (h *Hook) Supports(lang Language) bool {
	switch lang {
	case LanguageTS:
		return h.TS
	case LanguageJS:
		return h.JS
	default:
		return false
	}
}

// HasAnyVariant reports whether at least one variant is published.
func (h *Hook) HasAnyVariant() bool {
	return h.JS || h.TS
}

// Variants returns the published variants in prompt order.
func (h *Hook) Variants() []Language {
	var out []Language
	for _, l := range Languages {
		if h.Supports(l) {
			out = append(out, l)
		}
	}
	return out
}
