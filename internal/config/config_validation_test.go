package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "sign-key",
			TokenIssuer:   "tucker-sync",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/sync"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
		Sync: Sync{
			Classes: []ObjectClass{{Name: "product"}, {Name: "setting", Shareable: true}},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.validate())

	// Defaults filled in.
	assert.Equal(t, PolicyHighestVersionWins, cfg.Sync.ConflictPolicy)
	assert.Equal(t, uint64(defaultDownloadBatchLimit), cfg.Sync.DownloadBatchLimit)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""
	cfg.Server.HTTPAddress = ""
	cfg.Auth.TokenSignKey = ""

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDatabaseDSN)
	assert.ErrorIs(t, err, ErrNoHTTPAddress)
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
}

func TestValidate_ConflictPolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		wantErr bool
	}{
		{name: "empty defaults to highest-version-wins", policy: "", wantErr: false},
		{name: "highest-version-wins accepted", policy: PolicyHighestVersionWins, wantErr: false},
		{name: "server-wins accepted", policy: PolicyServerWins, wantErr: false},
		{name: "unknown rejected", policy: "merge-fields", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Sync.ConflictPolicy = tt.policy

			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownConflictPolicy)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ObjectClasses(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.Classes = nil
	assert.ErrorIs(t, cfg.validate(), ErrNoObjectClasses)

	cfg = validConfig()
	cfg.Sync.Classes = []ObjectClass{{Name: "product"}, {Name: "product"}}
	assert.ErrorIs(t, cfg.validate(), ErrDuplicateObjectClass)

	cfg = validConfig()
	cfg.Sync.Classes = []ObjectClass{{Name: ""}}
	assert.ErrorIs(t, cfg.validate(), ErrUnnamedObjectClass)
}
