// Package auth provides authentication support for raw-content requests.
// Private hook repositories are read with a GitHub token taken from the
// environment.
package auth

import (
	"net/http"
	"strings"
)

// Authenticator defines the interface for applying authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request) error
	Type() Type
}

// BearerAuth represents Bearer token authentication.
type BearerAuth struct {
	Token string
}

// Type represents the type of authentication.
type Type string

// BearerAuthType represents Bearer token authentication.
const BearerAuthType Type = "bearer"

// TokenEnvVars are checked in order for a GitHub token.
var TokenEnvVars = []string{"OPENHOOKS_GITHUB_TOKEN", "GITHUB_TOKEN"}

// Apply adds a Bearer token to the Authorization header of the HTTP request.
func (b BearerAuth) Apply(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+b.Token)
	return nil
}

// Type returns the authentication type (BearerAuthType).
func (b BearerAuth) Type() Type { return BearerAuthType }

// FromEnv returns a BearerAuth for the first non-empty token variable, or
// nil when none is set. lookup is usually os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) Authenticator {
	for _, name := range TokenEnvVars {
		if v, ok := lookup(name); ok && strings.TrimSpace(v) != "" {
			return BearerAuth{Token: strings.TrimSpace(v)}
		}
	}
	return nil
}
