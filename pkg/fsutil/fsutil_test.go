package fsutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "creates new directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "newdir")
			},
		},
		{
			name: "creates nested directories",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "src", "hooks", "nested")
			},
		},
		{
			name: "succeeds when directory already exists",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)
			require.NoError(t, EnsureDir(path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestEnsureDir_Concurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "hooks")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- EnsureDir(path)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "useDebounce.ts")
	require.NoError(t, os.WriteFile(file, []byte("x"), FileModeDefault))

	ok, err := Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(dir)
	require.NoError(t, err)
	assert.True(t, ok, "directories count as existing")

	ok, err = Exists(filepath.Join(dir, "missing.ts"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "hooks", "useTimeout.ts")
	content := []byte("export function useTimeout() {}\n")

	require.NoError(t, WriteFile(path, content))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// Overwrites verbatim.
	require.NoError(t, WriteFile(path, []byte("v2")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "open-hooks.config.json")

	require.NoError(t, WriteFileAtomic(path, []byte("{}\n"), FileModeDefault))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}
