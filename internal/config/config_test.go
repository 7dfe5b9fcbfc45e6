package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleetintake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 80, cfg.MatchThreshold)
	assert.Equal(t, "brands.txt", cfg.BrandsFile)
	assert.Equal(t, "data.jsonl", cfg.DataFile)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
brands_file: /etc/fleet/brands.txt
store: redis
redis:
  addr: cache:6379
  db: 2
match_threshold: 90
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "/etc/fleet/brands.txt", cfg.BrandsFile)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "fleetintake:records", cfg.Redis.Key, "unset keys keep their default")
	assert.Equal(t, 90, cfg.MatchThreshold)
	assert.Equal(t, "data.jsonl", cfg.DataFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "data_file: from-file.jsonl\n")
	t.Setenv("FLEETINTAKE_DATA_FILE", "from-env.jsonl")
	t.Setenv("FLEETINTAKE_MATCH_THRESHOLD", "85")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "from-env.jsonl", cfg.DataFile)
	assert.Equal(t, 85, cfg.MatchThreshold)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"Bad YAML", "store: [file", nil},
		{"Unknown Store", "store: postgres\n", nil},
		{"Threshold Out Of Range", "match_threshold: 100\n", nil},
		{"Non Numeric Env", "", map[string]string{"FLEETINTAKE_REDIS_DB": "two"}},
		{"Redis Without Address", "store: redis\nredis:\n  addr: \"\"\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.content), true)
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"FLEETINTAKE_STORE":      "redis",
		"FLEETINTAKE_REDIS_ADDR": "10.0.0.1:6379",
		"FLEETINTAKE_REDIS_DB":   "3",
		"FLEETINTAKE_LOG_DIR":    "/var/log/fleet",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	require.NoError(t, cfg.ApplyEnv(lookup))
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "10.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "/var/log/fleet", cfg.LogDir)
	assert.NoError(t, cfg.Validate())
}
