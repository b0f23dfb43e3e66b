package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/fs"
	"go.trai.ch/peek/internal/adapters/httpserver"
	"go.trai.ch/peek/internal/adapters/shell"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/engine/gate"
)

type staticGate struct {
	failure *domain.BuildFailure
	calls   int
}

func (g *staticGate) EnsureFresh(context.Context) *domain.BuildFailure {
	g.calls++
	return g.failure
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string)         {}
func (nopLogger) Error(error)         {}

func TestHandler_ServeHTTP_FreshServesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hi</h1>"), 0o644))

	g := &staticGate{}
	handler := httpserver.NewHandler(g, dir, nopLogger{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<h1>hi</h1>", rec.Body.String())
	assert.Equal(t, 1, g.calls, "every request passes through the gate")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "no-cache")
}

func TestHandler_ServeHTTP_MissingFileIs404(t *testing.T) {
	handler := httpserver.NewHandler(&staticGate{}, t.TempDir(), nopLogger{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope.html", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ServeHTTP_BuildFailurePage(t *testing.T) {
	failure := domain.NewBuildFailure([]byte("make: *** [all] Error 1\n<oops>\n"))
	handler := httpserver.NewHandler(&staticGate{failure: failure}, t.TempDir(), nopLogger{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	// Deliberately 200, not 5xx: the browser renders the build output
	// instead of showing its own error page.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<pre>"))
	assert.True(t, strings.HasSuffix(rec.Body.String(), "</pre>"))
	assert.Contains(t, rec.Body.String(), "&lt;oops&gt;", "build output must be HTML-escaped")

	g := goldie.New(t)
	g.Assert(t, "failure_page", rec.Body.Bytes())
}

// End-to-end through the real gate, scanner and runner: a build runs on
// the first request and is skipped while nothing changes.
func TestHandler_ServeHTTP_RebuildScenario(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("built"), 0o644))

	// The marker lives outside the watched tree so the build itself does
	// not count as a change.
	marker := filepath.Join(t.TempDir(), "marker")
	t.Setenv("PEEK_TEST_MARKER", marker)

	g := gate.New(
		fs.NewModTimeScanner(fs.NewWalker()),
		shell.NewRunner(),
		nopLogger{},
		domain.Settings{
			WatchDir: dir,
			Command:  `echo run >> "$PEEK_TEST_MARKER"`,
		},
	)
	handler := httpserver.NewHandler(g, dir, nopLogger{})

	// First request builds, then serves the file.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "built", rec.Body.String())

	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), "run"))

	// Second request with no change serves directly, no rebuild.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data, err = os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "run"))
}

// A failing build is reported on the page and retried on the next request.
func TestHandler_ServeHTTP_FailingBuildScenario(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("stale"), 0o644))

	g := gate.New(
		fs.NewModTimeScanner(fs.NewWalker()),
		shell.NewRunner(),
		nopLogger{},
		domain.Settings{
			WatchDir: dir,
			Command:  "echo nope; exit 1",
		},
	)
	handler := httpserver.NewHandler(g, dir, nopLogger{})

	for range 2 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to build! Command output:")
		assert.Contains(t, rec.Body.String(), "nope")
	}
}
