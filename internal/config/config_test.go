package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigContent = `
[development]
host = "localhost"
port = 8080
log_level = "trace"
log_to_stdout = true
state_storage_type = "file"
state_file_path = "./fittracker-state.json"
intents_rate_limit_allowed_per_min = 60

[production]
host = "0.0.0.0"
port = 9000
log_level = "debug"
logs_path = "/var/log/fittracker/service.log"
state_storage_type = "postgres"
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "fittracker"
prometheus_metrics_host = "localhost"
prometheus_metrics_port = "2112"
`

func TestLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfigContent), 0o644))

	devCfg, err := Load("development", configPath)
	require.NoError(t, err)
	assert.Equal(t, "development", devCfg.Environment)
	assert.Equal(t, 8080, devCfg.Port)
	assert.Equal(t, "file", devCfg.StateStorageType)
	assert.Equal(t, "./fittracker-state.json", devCfg.StateFilePath)
	assert.Equal(t, 60, devCfg.IntentsRateLimitAllowedPerMin)
	assert.True(t, devCfg.LogToStdout)

	prodCfg, err := Load("prod", configPath)
	require.NoError(t, err)
	assert.Equal(t, 9000, prodCfg.Port)
	assert.Equal(t, "postgres", prodCfg.StateStorageType)
	assert.Equal(t, "fittracker", prodCfg.PostgresDBName)

	_, err = Load("staging", configPath)
	require.Error(t, err)

	_, err = Load("development", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
