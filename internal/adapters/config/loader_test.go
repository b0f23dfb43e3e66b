package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/peek/internal/adapters/config"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string)         {}
func (nopLogger) Error(error)         {}

func TestLoader_Load_MissingFileIsEmpty(t *testing.T) {
	loader := config.NewLoader(nopLogger{})

	cfg, err := loader.Load(t.TempDir())

	require.NoError(t, err)
	assert.Nil(t, cfg.Port)
	assert.Nil(t, cfg.Serve)
	assert.Nil(t, cfg.Command)
	assert.Empty(t, cfg.Ignore)
}

func TestLoader_Load_FullFile(t *testing.T) {
	dir := t.TempDir()
	content := `
port: 8080
serve: dist
watch: .
ignore:
  - /tmp/project/dist
  - /tmp/project/node_modules
command: make build
digest: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))

	loader := config.NewLoader(nopLogger{})
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	require.NotNil(t, cfg.Port)
	assert.Equal(t, 8080, *cfg.Port)
	require.NotNil(t, cfg.Serve)
	assert.Equal(t, "dist", *cfg.Serve)
	require.NotNil(t, cfg.Watch)
	assert.Equal(t, ".", *cfg.Watch)
	assert.Equal(t, []string{"/tmp/project/dist", "/tmp/project/node_modules"}, cfg.Ignore)
	require.NotNil(t, cfg.Command)
	assert.Equal(t, "make build", *cfg.Command)
	require.NotNil(t, cfg.Digest)
	assert.True(t, *cfg.Digest)
}

func TestLoader_Load_PartialFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("command: go generate ./...\n"), 0o644))

	loader := config.NewLoader(nopLogger{})
	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	require.NotNil(t, cfg.Command)
	assert.Equal(t, "go generate ./...", *cfg.Command)
	assert.Nil(t, cfg.Port, "absent keys stay nil so flags can win")
}

func TestLoader_Load_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("port: [not a port\n"), 0o644))

	loader := config.NewLoader(nopLogger{})
	_, err := loader.Load(dir)

	assert.Error(t, err)
}
