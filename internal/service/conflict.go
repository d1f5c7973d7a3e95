// SPDX-License-Identifier: MIT

package service

import (
	"fmt"

	"github.com/tuckersync/tucker-sync/internal/config"
	"github.com/tuckersync/tucker-sync/models"
)

// ConflictPolicy selects how an update to an existing object is resolved
// against the stored state. Resolution is always whole-object: either the
// incoming write becomes canonical or the stored object is echoed back,
// never a field-level merge.
type ConflictPolicy int

const (
	// HighestVersionWins accepts an update when the incoming write is the
	// newest the store has seen: the stored version is below the version the
	// session will assign and the client's claimed prior version is not
	// stale relative to the store.
	HighestVersionWins ConflictPolicy = iota

	// ServerWins accepts an update only when the client's claimed prior
	// version exactly matches the stored version; any divergence means the
	// server's value stands.
	ServerWins
)

// ParseConflictPolicy maps a configuration name to a [ConflictPolicy].
func ParseConflictPolicy(name string) (ConflictPolicy, error) {
	switch name {
	case "", config.PolicyHighestVersionWins:
		return HighestVersionWins, nil
	case config.PolicyServerWins:
		return ServerWins, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownConflictPolicy, name)
	}
}

// String returns the configuration name of the policy.
func (p ConflictPolicy) String() string {
	switch p {
	case ServerWins:
		return config.PolicyServerWins
	default:
		return config.PolicyHighestVersionWins
	}
}

// ConflictOutcome is the tagged result of a conflict decision. When Accepted
// is false, Canonical carries the stored object the client must adopt,
// clearing its pending-upload flag.
type ConflictOutcome struct {
	Accepted  bool
	Canonical models.SyncObject
}

// Resolve decides whether an incoming update wins against the stored object.
//
// stored is the object's current committed state, claimedPrior the version
// the client believes it is updating, and sessionVersion the value the
// session would stamp on acceptance. The decision is pure: persistence of an
// accepted write is the caller's job.
func (p ConflictPolicy) Resolve(stored models.SyncObject, claimedPrior, sessionVersion int64) ConflictOutcome {
	if stored.Version >= sessionVersion {
		// The store already holds a version the incoming write cannot beat.
		return ConflictOutcome{Accepted: false, Canonical: stored}
	}

	switch p {
	case ServerWins:
		if claimedPrior != stored.Version {
			return ConflictOutcome{Accepted: false, Canonical: stored}
		}
	default: // HighestVersionWins
		if claimedPrior < stored.Version {
			return ConflictOutcome{Accepted: false, Canonical: stored}
		}
	}

	return ConflictOutcome{Accepted: true}
}
