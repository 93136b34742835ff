// Package testutil provides fixtures shared by package and CLI tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/repository"
)

// Fixture repository coordinates used by NewHookRepoServer.
const (
	Owner  = "acme"
	Repo   = "hooks"
	Branch = "main"
)

// HookRepoServer serves an in-memory hook repository in the raw-content
// layout: /{owner}/{repo}/{branch}/{path}.
type HookRepoServer struct {
	Server *httptest.Server
	URL    string

	mu       sync.Mutex
	files    map[string]string
	requests map[string]int
}

// NewHookRepoServer starts a server for files keyed by repository path,
// e.g. "hooks/manifest.json" or "hooks/ts/useDebounce.ts". It is closed when
// the test ends.
func NewHookRepoServer(t *testing.T, files map[string]string) *HookRepoServer {
	t.Helper()

	s := &HookRepoServer{
		files:    make(map[string]string, len(files)),
		requests: make(map[string]int),
	}
	for k, v := range files {
		s.files[k] = v
	}

	prefix := "/" + Owner + "/" + Repo + "/" + Branch + "/"
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := strings.CutPrefix(r.URL.Path, prefix)
		s.mu.Lock()
		s.requests[p]++
		body, found := s.files[p]
		s.mu.Unlock()

		logger.Debug("Test server request", logger.Fields{"path": r.URL.Path, "found": ok && found})
		if !ok || !found {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	s.URL = s.Server.URL
	t.Cleanup(s.Server.Close)
	return s
}

// RepoURL returns the GitHub URL that locates the fixture repository.
func (s *HookRepoServer) RepoURL() string {
	return "https://github.com/" + Owner + "/" + Repo
}

// Layout returns the default layout pointed at this server.
func (s *HookRepoServer) Layout() repository.Layout {
	l := repository.DefaultLayout()
	l.RawContentHost = s.URL
	return l
}

// Requests returns how often path was requested.
func (s *HookRepoServer) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

// SourceRequests returns the number of requests for anything but the manifest.
func (s *HookRepoServer) SourceRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for p, c := range s.requests {
		if p != repository.DefaultManifestPath {
			n += c
		}
	}
	return n
}

// Manifest renders a manifest document for hooks.
func Manifest(t *testing.T, hooks ...model.Hook) string {
	t.Helper()
	data, err := json.MarshalIndent(map[string]any{"hooks": hooks}, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal manifest: %v", err)
	}
	return string(data)
}
