package ports

import "go.trai.ch/peek/internal/core/domain"

// ConfigLoader reads the optional peek.yaml configuration file.
type ConfigLoader interface {
	// Load reads the configuration file from dir. A missing file is not
	// an error and yields an empty config.
	Load(dir string) (*domain.FileConfig, error)
}
