package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "data.csv", cfg.Data.Path)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 50, cfg.Report.Limit)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "climate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  path: /srv/global_warming.csv
server:
  addr: ":9090"
report:
  limit: 10
`), 0o644))

	t.Setenv("CLIMATE_REPORT_LIMIT", "25")
	t.Setenv("CLIMATE_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/global_warming.csv", cfg.Data.Path)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 25, cfg.Report.Limit, "env overrides file")
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
