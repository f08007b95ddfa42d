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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "moneygate.alerts", cfg.NATS.Subject)
	assert.Equal(t, 2*time.Second, cfg.Admission.EvaluationTimeout.AsDuration())
	assert.Equal(t, 20, cfg.Admission.BaselineWindow)
	assert.Equal(t, "0 * * * * *", cfg.Reopen.Cron)
}

func TestLoad_YAMLValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  api_token: secret
storage:
  backend: postgres
  password: pw
admission:
  evaluation_timeout: 500ms
  hard_limit_cents: 1000000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Server.APIToken)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.Equal(t, 500*time.Millisecond, cfg.Admission.EvaluationTimeout.AsDuration())
	assert.Equal(t, int64(1_000_000), cfg.Admission.HardLimitCents)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  api_token: from-file
`)
	t.Setenv("MONEYGATE_PORT", "7000")
	t.Setenv("MONEYGATE_API_TOKEN", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Server.APIToken)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err, "api token is required")

	cfg.Server.APIToken = "token"
	require.NoError(t, cfg.Validate())

	cfg.Storage.Backend = "postgres"
	require.Error(t, cfg.Validate(), "postgres needs a password")

	cfg.Storage.Password = "pw"
	require.NoError(t, cfg.Validate())

	cfg.Storage.Backend = "sqlite"
	require.Error(t, cfg.Validate())
}

func TestConnectionString(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Storage.Password = "pw"

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=moneygate sslmode=disable",
		cfg.ConnectionString())
}
