// Package config provides the configuration file loader for peek.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/peek/internal/core/domain"
	"go.trai.ch/peek/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file peek looks for.
const FileName = "peek.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads peek.yaml from dir. A missing file is not an error and yields
// an empty config; an unreadable or malformed file is.
func (l *Loader) Load(dir string) (*domain.FileConfig, error) {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own project dir
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.FileConfig{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read configuration file"), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse configuration file"), "path", path)
	}

	l.logger.Info("loaded configuration", "path", path)

	return &domain.FileConfig{
		Port:    file.Port,
		Serve:   file.Serve,
		Watch:   file.Watch,
		Ignore:  file.Ignore,
		Command: file.Command,
		Digest:  file.Digest,
	}, nil
}
