package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// shutdownGrace bounds how long in-flight requests may finish after the
// listener stops. A hung build is intentionally not interrupted before this.
const shutdownGrace = 5 * time.Second

// Server wraps http.Server with context-driven lifecycle management.
type Server struct {
	http   *http.Server
	logger ports.Logger

	mu   sync.Mutex
	addr net.Addr
}

// NewServer creates a Server for the given handler listening on port.
func NewServer(handler http.Handler, port int, logger ports.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              net.JoinHostPort("", strconv.Itoa(port)),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Addr returns the bound listener address, or nil before Serve has started
// listening. Tests use it together with port 0.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Serve listens and blocks until ctx is canceled or serving fails. A clean
// shutdown triggered by ctx is not an error.
func (s *Server) Serve(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", s.http.Addr)
	}
	s.mu.Lock()
	s.addr = lis.Addr()
	s.mu.Unlock()

	s.logger.Info("serving", "addr", lis.Addr().String())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.http.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, "server failed")
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "failed to shut down cleanly")
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.logger.Info("server stopped")
	return nil
}
