package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuckersync/tucker-sync/models"
)

func TestParseConflictPolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ConflictPolicy
		wantErr bool
	}{
		{name: "empty selects default", input: "", want: HighestVersionWins},
		{name: "highest version wins", input: "highest-version-wins", want: HighestVersionWins},
		{name: "server wins", input: "server-wins", want: ServerWins},
		{name: "unknown name", input: "client-wins", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConflictPolicy(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownConflictPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConflictPolicy_Resolve(t *testing.T) {
	stored := models.SyncObject{ServerID: 7, Version: 5}

	tests := []struct {
		name           string
		policy         ConflictPolicy
		stored         models.SyncObject
		claimedPrior   int64
		sessionVersion int64
		wantAccepted   bool
	}{
		{
			name:           "highest version wins accepts matching prior",
			policy:         HighestVersionWins,
			stored:         stored,
			claimedPrior:   5,
			sessionVersion: 9,
			wantAccepted:   true,
		},
		{
			name:           "highest version wins rejects stale prior",
			policy:         HighestVersionWins,
			stored:         stored,
			claimedPrior:   3,
			sessionVersion: 9,
			wantAccepted:   false,
		},
		{
			name: "stored version at session version rejects under any policy",
			// A session version equal to the stored version means another
			// write in this very session already touched the object.
			policy:         HighestVersionWins,
			stored:         models.SyncObject{ServerID: 7, Version: 9},
			claimedPrior:   9,
			sessionVersion: 9,
			wantAccepted:   false,
		},
		{
			name:           "server wins accepts exact prior match",
			policy:         ServerWins,
			stored:         stored,
			claimedPrior:   5,
			sessionVersion: 9,
			wantAccepted:   true,
		},
		{
			name:           "server wins rejects stale prior",
			policy:         ServerWins,
			stored:         stored,
			claimedPrior:   4,
			sessionVersion: 9,
			wantAccepted:   false,
		},
		{
			name:           "server wins rejects prior ahead of stored",
			policy:         ServerWins,
			stored:         stored,
			claimedPrior:   6,
			sessionVersion: 9,
			wantAccepted:   false,
		},
		{
			name: "highest version wins accepts prior ahead of stored",
			// The client has seen a version the store later lost and
			// resubmitted it; the newest write still wins whole-object.
			policy:         HighestVersionWins,
			stored:         stored,
			claimedPrior:   6,
			sessionVersion: 9,
			wantAccepted:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := tt.policy.Resolve(tt.stored, tt.claimedPrior, tt.sessionVersion)

			assert.Equal(t, tt.wantAccepted, outcome.Accepted)
			if !tt.wantAccepted {
				assert.Equal(t, tt.stored, outcome.Canonical, "a rejection must echo the stored object")
			}
		})
	}
}

func TestConflictPolicy_Resolve_Deterministic(t *testing.T) {
	// The same inputs must resolve identically no matter how often or in
	// which order they are replayed.
	stored := models.SyncObject{ServerID: 1, Version: 4}

	first := HighestVersionWins.Resolve(stored, 4, 8)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, HighestVersionWins.Resolve(stored, 4, 8))
	}
}

func TestConflictPolicy_String(t *testing.T) {
	assert.Equal(t, "highest-version-wins", HighestVersionWins.String())
	assert.Equal(t, "server-wins", ServerWins.String())
}
