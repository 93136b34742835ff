// Package repository locates hook repositories on GitHub and maps hook names
// to raw-content URLs according to a Layout.
package repository

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/glorpus-work/openhooks/pkg/errors"
)

const githubHost = "github.com"

var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Locator identifies a branch of a GitHub repository.
type Locator struct {
	Owner  string
	Repo   string
	Branch string
}

func (l Locator) String() string {
	return fmt.Sprintf("%s/%s@%s", l.Owner, l.Repo, l.Branch)
}

// ParseURL extracts owner, repository and branch from a repository URL.
//
// Accepted shapes:
//
//	https://github.com/{owner}/{repo}[.git][/tree/{branch}]
//	github.com/{owner}/{repo}[/tree/{branch}]
//	git@github.com:{owner}/{repo}.git
//	{owner}/{repo}
//
// The branch falls back to defaultBranch, or DefaultBranch when that is empty.
func ParseURL(raw, defaultBranch string) (Locator, error) {
	if defaultBranch == "" {
		defaultBranch = DefaultBranch
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return Locator{}, fmt.Errorf("empty repository URL: %w", errors.ErrInvalidRepoURL)
	}

	path, shorthand, err := splitHost(s)
	if err != nil {
		return Locator{}, fmt.Errorf("%q: %w", raw, err)
	}

	loc, err := parsePath(path, shorthand, defaultBranch)
	if err != nil {
		return Locator{}, fmt.Errorf("%q: %w", raw, err)
	}
	return loc, nil
}

// splitHost validates the host part and returns the remaining path.
// shorthand is true when no host was present at all.
func splitHost(s string) (path string, shorthand bool, err error) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "git@"):
		host, rest, ok := strings.Cut(s[len("git@"):], ":")
		if !ok || !isGitHubHost(host) {
			return "", false, errors.ErrInvalidRepoURL
		}
		return rest, false, nil

	case strings.Contains(s, "://"):
		u, perr := url.Parse(s)
		if perr != nil {
			return "", false, errors.Wrap(errors.ErrInvalidRepoURL, perr.Error())
		}
		if u.Scheme != "https" && u.Scheme != "http" {
			return "", false, errors.ErrInvalidRepoURL
		}
		if !isGitHubHost(u.Host) {
			return "", false, errors.ErrInvalidRepoURL
		}
		return u.Path, false, nil

	case strings.HasPrefix(lower, githubHost+"/"), strings.HasPrefix(lower, "www."+githubHost+"/"):
		_, rest, _ := strings.Cut(s, "/")
		return stripQuery(rest), false, nil

	default:
		return stripQuery(s), true, nil
	}
}

func isGitHubHost(host string) bool {
	host = strings.ToLower(host)
	return host == githubHost || host == "www."+githubHost
}

func stripQuery(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}

func parsePath(path string, shorthand bool, defaultBranch string) (Locator, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return Locator{}, errors.ErrInvalidRepoURL
	}

	owner := segments[0]
	repo := strings.TrimSuffix(segments[1], ".git")
	if !segmentPattern.MatchString(owner) || !segmentPattern.MatchString(repo) {
		return Locator{}, errors.ErrInvalidRepoURL
	}

	branch := defaultBranch
	rest := segments[2:]
	switch {
	case len(rest) == 0:
	case shorthand:
		return Locator{}, errors.ErrInvalidRepoURL
	case rest[0] == "tree" && len(rest) > 1:
		branch = strings.Join(rest[1:], "/")
		if strings.Contains(branch, "//") || strings.TrimSpace(branch) == "" {
			return Locator{}, errors.ErrInvalidRepoURL
		}
	default:
		return Locator{}, errors.ErrInvalidRepoURL
	}

	return Locator{Owner: owner, Repo: repo, Branch: branch}, nil
}
