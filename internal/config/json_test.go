package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	const body = `{
		"auth": {
			"token_sign_key": "sign-key",
			"token_issuer": "tucker-sync",
			"token_duration": "1h",
			"app_keys": ["key-one", "key-two"]
		},
		"sync": {
			"conflict_policy": "server-wins",
			"download_batch_limit": 50,
			"classes": [
				{"name": "product"},
				{"name": "setting", "shareable": true}
			]
		},
		"storage": {"db": {"dsn": "postgres://localhost/sync"}},
		"server": {"http_address": "localhost:9090", "request_timeout": "30s"},
		"workers": {"purge_interval": "1h", "purge_retention": "720h"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "tucker-sync", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.AppKeys)

	assert.Equal(t, PolicyServerWins, cfg.Sync.ConflictPolicy)
	assert.Equal(t, uint64(50), cfg.Sync.DownloadBatchLimit)
	require.Len(t, cfg.Sync.Classes, 2)
	assert.Equal(t, "product", cfg.Sync.Classes[0].Name)
	assert.True(t, cfg.Sync.Classes[1].Shareable)

	assert.Equal(t, "postgres://localhost/sync", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Hour, cfg.Workers.PurgeInterval)
	assert.Equal(t, 720*time.Hour, cfg.Workers.PurgeRetention)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_InvalidBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "string form", input: `"90s"`, want: 90 * time.Second},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.input)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
