// Package app implements the application layer for peek.
package app

import (
	"context"

	"go.trai.ch/peek/internal/adapters/httpserver"
	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/peek/internal/engine/gate"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ConfigLoader
	modtime ports.Scanner
	digest  ports.Scanner
	runner  ports.Runner
	logger  ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	modtime ports.Scanner,
	digest ports.Scanner,
	runner ports.Runner,
	logger ports.Logger,
) *App {
	return &App{
		loader:  loader,
		modtime: modtime,
		digest:  digest,
		runner:  runner,
		logger:  logger,
	}
}

// Explicit records which serve options were set explicitly on the command
// line, so they take precedence over peek.yaml values.
type Explicit struct {
	Port    bool
	Serve   bool
	Watch   bool
	Digest  bool
	Command bool
}

// ServeOptions is the command line configuration for Serve.
type ServeOptions struct {
	Port     int
	ServeDir string
	WatchDir string
	Ignore   []string
	Command  string
	Digest   bool
	Explicit Explicit
}

// Serve resolves the effective settings, wires the rebuild gate into an HTTP
// server and blocks until ctx is canceled or serving fails.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	settings, err := a.resolveSettings(opts)
	if err != nil {
		return err
	}

	scanner := a.modtime
	if settings.DigestFingerprint {
		scanner = a.digest
	}

	if settings.Command.Empty() {
		a.logger.Warn("no build command configured, serving without rebuilds")
	}

	g := gate.New(scanner, a.runner, a.logger, settings)
	handler := httpserver.NewHandler(g, settings.ServeDir, a.logger)
	server := httpserver.NewServer(handler, settings.Port, a.logger)

	a.logger.Info("watching for changes",
		"watch", settings.WatchDir,
		"serve", settings.ServeDir,
	)
	return server.Serve(ctx)
}

// resolveSettings merges the command line options with the optional
// peek.yaml found in the watch directory. Explicit flags always win over
// file values; ignore lists are concatenated.
func (a *App) resolveSettings(opts ServeOptions) (domain.Settings, error) {
	settings := domain.Settings{
		Port:              opts.Port,
		ServeDir:          opts.ServeDir,
		WatchDir:          opts.WatchDir,
		IgnoredPaths:      opts.Ignore,
		Command:           domain.BuildCommand(opts.Command),
		DigestFingerprint: opts.Digest,
	}

	file, err := a.loader.Load(opts.WatchDir)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if file.Port != nil && !opts.Explicit.Port {
		settings.Port = *file.Port
	}
	if file.Serve != nil && !opts.Explicit.Serve {
		settings.ServeDir = *file.Serve
	}
	if file.Watch != nil && !opts.Explicit.Watch {
		settings.WatchDir = *file.Watch
	}
	if file.Command != nil && !opts.Explicit.Command {
		settings.Command = domain.BuildCommand(*file.Command)
	}
	if file.Digest != nil && !opts.Explicit.Digest {
		settings.DigestFingerprint = *file.Digest
	}
	settings.IgnoredPaths = append(settings.IgnoredPaths, file.Ignore...)

	if err := settings.Canonicalize(); err != nil {
		return domain.Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
