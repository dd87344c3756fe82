package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for key := range envKeys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	t.Setenv(ConfigPathEnvVar, "")
	_ = os.Unsetenv(ConfigPathEnvVar)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	want := defaultConfig()
	assert.Empty(t, cfg.Server.CORSOrigins)
	cfg.Server.CORSOrigins = want.Server.CORSOrigins
	assert.Equal(t, want, cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("ENABLE_HSTS", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("COVER_CACHE_ENTRIES", "64")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	t.Setenv("UNRELATED_SETTING", "ignored")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.True(t, cfg.Server.EnableHSTS)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, int64(64), cfg.Cover.CacheEntries)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.Database.DSN)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "config.yaml")
	yamlBody := "server:\n  addr: \":7070\"\n  idle_timeout: 2m\n  cors_origins:\n    - http://ui.test\nlog:\n  format: console\n"
	require.NoError(t, os.WriteFile(p, []byte(yamlBody), 0o644))

	t.Setenv(ConfigPathEnvVar, p)
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 2*time.Minute, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"http://ui.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RATE_LIMIT_RPS", "0"},
		{"RATE_LIMIT_BURST", "0"},
		{"COVER_CACHE_ENTRIES", "-1"},
		{"LOG_FORMAT", "xml"},
		{"READ_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Server.Addr = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Addr")
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("DB_DSN=from_file\nLOG_FORMAT=console\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("DB_DSN", "from_env")
	t.Setenv("LOG_FORMAT", "")
	_ = os.Unsetenv("LOG_FORMAT")
	t.Cleanup(func() { _ = os.Unsetenv("LOG_FORMAT") })

	cwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadEnvFiles()

	if got := os.Getenv("DB_DSN"); got != "from_env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
	if got := os.Getenv("LOG_FORMAT"); got != "console" {
		t.Fatalf("expected .env value to be loaded, got %q", got)
	}
}
