package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"bscscan_node/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "bscscan", cfg.Explorer.Provider)
	assert.Equal(t, entity.NetworkBSC, cfg.Explorer.DefaultNetwork)
	assert.Equal(t, "bscscan-node", cfg.Credentials.KeyringService)
	assert.Equal(t, 5.0, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FullFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: "9090"
explorer:
  defaultNetwork: bsc-testnet
  networks:
    - id: bsc
      baseURL: http://localhost:4000/api
credentials:
  apiKey: SECRET
rateLimit:
  requestsPerSecond: 2
  burst: 1
metrics:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, entity.NetworkBSCTestnet, cfg.Explorer.DefaultNetwork)
	require.Len(t, cfg.Explorer.Networks, 1)
	assert.Equal(t, "http://localhost:4000/api", cfg.Explorer.Networks[0].BaseURL)
	assert.Equal(t, "SECRET", cfg.Credentials.APIKey)
	assert.Equal(t, 2.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1, cfg.RateLimit.Burst)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"bad yaml", "server: [", "failed to unmarshal"},
		{"duplicate network", "explorer:\n  networks:\n    - {id: a, baseURL: http://a}\n    - {id: a, baseURL: http://b}\n", "duplicate id"},
		{"network without url", "explorer:\n  networks:\n    - {id: a}\n", "baseURL is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
