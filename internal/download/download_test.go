package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightforge/mlcore/events"
	"github.com/brightforge/mlcore/internal/hash"
)

func TestPreFilterSkipsVerifiedExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
	sum, err := hash.File(path)
	require.NoError(t, err)

	surviving := preFilter([]Task{{Dest: path, SHA1: sum}}, true)
	assert.Empty(t, surviving)
}

func TestPreFilterKeepsMismatchedExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	surviving := preFilter([]Task{{Dest: path, SHA1: "0000000000000000000000000000000000000"}}, true)
	assert.Len(t, surviving, 1)
}

func TestPreFilterWithoutVerifyDropsExistingRegardlessOfHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	surviving := preFilter([]Task{{Dest: path, SHA1: "mismatch"}}, false)
	assert.Empty(t, surviving)
}

func TestPreFilterAlwaysKeepsMissingFile(t *testing.T) {
	surviving := preFilter([]Task{{Dest: filepath.Join(t.TempDir(), "missing"), SHA1: "anything"}}, true)
	assert.Len(t, surviving, 1)
}

func TestPreFilterUnverifiableTaskAlwaysRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	surviving := preFilter([]Task{{Dest: path}}, true)
	assert.Len(t, surviving, 1)
}

func TestRunHonorsConfiguredParallelism(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	var tasks []Task
	for i := 0; i < 3; i++ {
		tasks = append(tasks, Task{URL: srv.URL, Dest: filepath.Join(dir, string(rune('a'+i)))})
	}

	result := Run(context.Background(), tasks, true, 1, events.DownloadObserver{})
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 0, result.Failed)
}

func TestRunFallsBackToDefaultParallelism(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	tasks := []Task{{URL: srv.URL, Dest: filepath.Join(dir, "f")}}

	result := Run(context.Background(), tasks, true, 0, events.DownloadObserver{})
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 0, result.Failed)
}
