// SPDX-License-Identifier: MIT

package models

import "encoding/json"

// SyncObject is one logical record managed by the sync engine, parameterized
// by an application-defined object class. The engine treats Payload as an
// opaque document; the remaining fields are the sync bookkeeping the engine
// owns.
type SyncObject struct {
	// ServerID is the server-assigned identity. Zero until the first
	// successful commit, immutable and never reused afterwards.
	ServerID int64 `json:"server_id"`

	// ObjectClass names the application-defined class this object belongs to.
	ObjectClass string `json:"object_class"`

	// OriginClientID and OriginClientLocalID identify the creating client and
	// its local reference at creation time. Together they are the unique
	// dedup key per object class.
	OriginClientID      int64 `json:"origin_client_id"`
	OriginClientLocalID int64 `json:"origin_client_local_id"`

	// LastUpdatedByClientID is the client whose write produced the current
	// version.
	LastUpdatedByClientID int64 `json:"last_updated_by_client_id"`

	// OwnerUserID is the user authorized to read and mutate the object.
	OwnerUserID int64 `json:"owner_user_id"`

	// Version is the SyncVersion stamped at the last accepted commit
	// (lastSync in the wire protocol). Zero means never committed.
	Version int64 `json:"version"`

	// Deleted is the logical tombstone. Physical removal happens out of band.
	Deleted bool `json:"deleted"`

	// Payload holds the application-defined fields, opaque to the engine.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// SyncCandidate is one locally-changed object submitted by a client in an
// upload batch. ServerID zero marks a creation; non-zero marks an update to
// an existing object.
type SyncCandidate struct {
	ServerID            int64           `json:"server_id"`
	OriginClientLocalID int64           `json:"origin_client_local_id"`
	PriorVersion        int64           `json:"prior_version"`
	Deleted             bool            `json:"deleted"`
	Payload             json.RawMessage `json:"payload,omitempty"`
}

// SyncResult is the per-candidate outcome of an upload. Canonical is set
// whenever the server's value won (replay or rejected conflict) so the client
// can overwrite its local copy and clear its pending-upload flag.
type SyncResult struct {
	ServerID            int64       `json:"server_id"`
	OriginClientLocalID int64       `json:"origin_client_local_id,omitempty"`
	Version             int64       `json:"version"`
	Outcome             SyncOutcome `json:"outcome"`
	Canonical           *SyncObject `json:"canonical,omitempty"`
}
