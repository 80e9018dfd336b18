package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv keeps the test hermetic against a developer's HDMS_* settings.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HDMS_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "credentials.csv", cfg.CredentialsFile)
	assert.Equal(t, "patients.csv", cfg.RecordsFile)
	assert.Equal(t, "usage_log.csv", cfg.UsageLog)
	assert.Equal(t, 60, cfg.SessionTTLMinutes)
	assert.Empty(t, cfg.AuditDatabase)

	for _, attr := range cfg.Attributes() {
		assert.Equal(t, "default", attr.Source, attr.Name)
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("HDMS_CONFIG_PATH", dir)

	contents := "records_file: /data/patients.csv\nsession_ttl_minutes: 15\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/patients.csv", cfg.RecordsFile)
	assert.Equal(t, 15, cfg.SessionTTLMinutes)
	// Untouched values keep their defaults.
	assert.Equal(t, "credentials.csv", cfg.CredentialsFile)

	sources := map[string]string{}
	for _, attr := range cfg.Attributes() {
		sources[attr.Name] = attr.Source
	}
	assert.Equal(t, "file", sources["records_file"])
	assert.Equal(t, "default", sources["credentials_file"])
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("HDMS_CONFIG_PATH", dir)

	contents := "records_file: /data/patients.csv\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(contents), 0o600))
	t.Setenv("HDMS_RECORDS_FILE", "/elsewhere/patients.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere/patients.csv", cfg.RecordsFile)

	for _, attr := range cfg.Attributes() {
		if attr.Name == "records_file" {
			assert.Equal(t, "env", attr.Source)
		}
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("HDMS_CONFIG_PATH", t.TempDir())
	t.Setenv("HDMS_SESSION_TTL_MINUTES", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("HDMS_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(":\n  - not yaml"), 0o600))

	_, err := Load()
	assert.Error(t, err)
}
