package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func clearEnv(t *testing.T) {
	t.Helper()
	// Run from a directory without a .env file.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{"OSDAG_ADDR", "OSDAG_LOG_LEVEL", "OSDAG_AUTH_ENABLED", "TOKEN_KEY", "ADMIN_PASSWORD_HASH"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultRate, cfg.RateLimit.Rate)
	assert.Equal(t, DefaultBurst, cfg.RateLimit.Burst)
	assert.False(t, cfg.Auth.Enabled)
	assert.False(t, cfg.Server.TLS())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `server:
  addr: ":9443"
  tls_cert: server.crt
  tls_key: server.key
  shutdown_timeout: 10s
rate_limit:
  rate: 1
  burst: 3
log:
  level: debug
  format: json
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ":9443", cfg.Server.Addr)
	assert.True(t, cfg.Server.TLS())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 3, cfg.RateLimit.Burst)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OSDAG_ADDR", ":7000")
	t.Setenv("OSDAG_LOG_LEVEL", "WARN")
	t.Setenv("OSDAG_AUTH_ENABLED", "true")
	t.Setenv("TOKEN_KEY", "k")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abc")

	cfg, err := Load(writeConfig(t, "server:\n  addr: \":9000\"\n"))
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "k", cfg.Auth.TokenKey)
}

func TestLoad_AuthRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("OSDAG_AUTH_ENABLED", "1")
	_, err := Load("")
	assert.ErrorContains(t, err, "TokenKey")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "server: [\n"},
		{"zero rate", "rate_limit:\n  rate: 0\n"},
		{"zero burst", "rate_limit:\n  burst: 0\n"},
		{"log level", "log:\n  level: trace\n"},
		{"half tls", "server:\n  tls_cert: a.crt\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "config: read")
}

func TestLoad_BadAuthFlag(t *testing.T) {
	clearEnv(t)
	t.Setenv("OSDAG_AUTH_ENABLED", "maybe")
	_, err := Load("")
	assert.ErrorContains(t, err, "OSDAG_AUTH_ENABLED")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LogConfig{Level: "debug"}.SlogLevel().String())
	assert.Equal(t, "INFO", LogConfig{Level: "info"}.SlogLevel().String())
	assert.Equal(t, "ERROR", LogConfig{Level: "error"}.SlogLevel().String())
}
