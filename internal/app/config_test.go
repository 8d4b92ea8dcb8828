package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fuel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, name := range []string{ConfigPathEnv, "PORT", "HTTP_ADDR", "FRONTEND_URL", "DATABASE_URL", "DB_MAX_OPEN_CONNS", "METRICS_ENABLED", "OTEL_ENABLED"} {
		t.Setenv(name, "")
	}
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.HTTP.Addr)
	assert.Equal(t, int64(10<<20), cfg.HTTP.MaxBodyBytes)
	assert.Equal(t, "http://localhost:3000", cfg.HTTP.FrontendURL)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
	assert.Equal(t, 20*time.Second, cfg.DB.ConnMaxIdleTime)
	assert.Equal(t, 10*time.Second, cfg.DB.ConnectTimeout)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.False(t, cfg.Observability.OTel.Enabled)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := writeConfig(t, `
env: staging
http:
  addr: ":8080"
  shutdown_timeout: 30s
  frontend_url: https://fuel.example.com
db:
  url: postgres://file@db/fuel
  max_open_conns: 4
observability:
  otel:
    enabled: true
    sample_ratio: 0.25
`)
	t.Setenv("DATABASE_URL", "postgres://env@db/fuel")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "45")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key=abc")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "https://fuel.example.com", cfg.HTTP.FrontendURL)
	assert.Equal(t, "postgres://env@db/fuel", cfg.DB.URL)
	assert.Equal(t, 4, cfg.DB.MaxOpenConns)
	assert.Equal(t, 45*time.Second, cfg.DB.ConnMaxIdleTime)
	assert.Equal(t, 10*time.Second, cfg.DB.ConnectTimeout)

	ot := cfg.OTel("v1")
	assert.True(t, ot.Enabled)
	assert.Equal(t, 0.25, ot.SampleRatio)
	assert.Equal(t, "staging", ot.Environment)
	assert.Equal(t, map[string]string{"x-api-key": "abc"}, ot.OTLPHeaders)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnv, writeConfig(t, "http:\n  addr: \":9000\"\n"))
	t.Setenv("PORT", "7000")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = LoadConfig(writeConfig(t, "http: [\n"))
	assert.ErrorContains(t, err, "parse config")

	t.Setenv("FRONTEND_URL", "localhost:3000")
	_, err = LoadConfig("")
	assert.ErrorContains(t, err, "frontend_url")
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.DB.URL = ""
	cfg.Observability.OTel.SampleRatio = 2
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.url")
	assert.Contains(t, err.Error(), "sample_ratio")
}
