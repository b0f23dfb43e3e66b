// Package httpserver serves the project directory over HTTP, gating every
// request on the rebuild gate.
package httpserver

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"time"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
)

// Gate is the freshness check every request passes through before any file
// is served.
type Gate interface {
	EnsureFresh(ctx context.Context) *domain.BuildFailure
}

// Handler gates incoming requests on the rebuild check and delegates to a
// static file server on success. The serve directory and gate are injected
// at construction.
type Handler struct {
	gate   Gate
	files  http.Handler
	logger ports.Logger
}

// NewHandler creates a Handler serving files from dir.
func NewHandler(gate Gate, dir string, logger ports.Logger) *Handler {
	return &Handler{
		gate:   gate,
		files:  http.FileServer(http.Dir(dir)),
		logger: logger,
	}
}

// ServeHTTP ensures the build output is fresh, then either streams the
// requested file or renders the failure report. Failures are deliberately
// reported with status 200 so the browser displays the build output instead
// of a generic error page.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Stale copies defeat the whole point of a live preview.
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if failure := h.gate.EnsureFresh(r.Context()); failure != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, "<pre>%s</pre>", html.EscapeString(failure.Message))

		h.logger.Info(r.Method+" "+r.URL.Path,
			"status", "build-failure",
			"duration", time.Since(start).Round(time.Microsecond).String(),
		)
		return
	}

	h.files.ServeHTTP(w, r)
	h.logger.Info(r.Method+" "+r.URL.Path,
		"duration", time.Since(start).Round(time.Microsecond).String(),
	)
}
