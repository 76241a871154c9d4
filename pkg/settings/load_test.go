package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-snippets/pkg/common/apperr"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Empty(t, cfg.Logger.FileLogName)
	assert.Equal(t, 100, cfg.Logger.MaxSize)
	assert.Equal(t, "raw", cfg.Leak.Allocator)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := writeConfig(t, `
logger:
  log_level: debug
  file_log_name: /tmp/snippets.log
  compress: true
leak:
  allocator: heap
  batches: 3
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, "/tmp/snippets.log", cfg.Logger.FileLogName)
	assert.True(t, cfg.Logger.Compress)
	assert.Equal(t, 3, cfg.Logger.MaxBackups)
	assert.Equal(t, "heap", cfg.Leak.Allocator)
	assert.Equal(t, Leak{Allocator: "heap"}, cfg.Leak, "unknown keys are ignored")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad_level", body: "logger:\n  log_level: loud\n"},
		{name: "bad_allocator", body: "leak:\n  allocator: mmap\n"},
		{name: "negative_max_size", body: "logger:\n  max_size: -1\n"},
		{name: "malformed_yaml", body: "leak: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, apperr.CodeConfig, apperr.CodeOf(err))
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Logger: Logger{LogLevel: "info"},
		Leak:   Leak{Allocator: "pool"},
	}
	assert.NoError(t, Validate(cfg))

	cfg.Logger.MaxAge = -5
	assert.Error(t, Validate(cfg))
}
