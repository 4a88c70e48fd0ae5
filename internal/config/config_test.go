package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandguard-app/brandguard/internal/domain/brand"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_BACKUP", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10, cfg.RateLimit.Capacity)
	assert.False(t, cfg.Development())
	assert.Empty(t, cfg.Credentials())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
environment: development
gemini:
  apiKey: file-primary
  backupApiKey: file-backup
rateLimit:
  capacity: 3
  refillRate: 1
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Development())
	assert.Equal(t, 3, cfg.RateLimit.Capacity)
	assert.Equal(t, []brand.Credential{
		{Label: "primary", Key: "file-primary"},
		{Label: "backup", Key: "file-backup"},
	}, cfg.Credentials())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("GEMINI_API_KEY", "env-primary")
	t.Setenv("GEMINI_API_KEY_BACKUP", "env-backup")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.True(t, cfg.Development())
	assert.Equal(t, []brand.Credential{
		{Label: "primary", Key: "env-primary"},
		{Label: "backup", Key: "env-backup"},
	}, cfg.Credentials())
}

func TestCredentialsBackupOnly(t *testing.T) {
	t.Setenv("GEMINI_API_KEY_BACKUP", "env-backup")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	creds := cfg.Credentials()
	require.Len(t, creds, 1)
	assert.Equal(t, "backup", creds[0].Label)
}
