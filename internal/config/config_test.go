package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `parallel: 4
buffer_size: 131072
checksum_file: SHA256SUMS
progress: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, 131072, cfg.BufferSize)
	assert.Equal(t, "SHA256SUMS", cfg.ChecksumFile)
	assert.True(t, cfg.Progress)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("parallel: 2\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, 0, cfg.BufferSize)
	assert.Equal(t, "", cfg.ChecksumFile)
	assert.False(t, cfg.Progress)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("parallel: [oops\n"), 0644))

	cfg, err := Load(dir)
	require.Error(t, err)
	assert.Nil(t, cfg)
}
