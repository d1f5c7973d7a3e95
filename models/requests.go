// SPDX-License-Identifier: MIT

package models

// SyncUpRequest is one upload session: a batch of locally-changed objects of
// a single object class. Watermark is the client's current per-class lastSync
// and feeds the resync pre-check before any object is processed.
type SyncUpRequest struct {
	ClientID  int64           `json:"client_id"`
	Watermark int64           `json:"watermark"`
	Objects   []SyncCandidate `json:"objects"`

	// Length is the total number of entries in Objects. Sent by the client as
	// a cheap integrity check on the batch.
	Length int `json:"length"`
}

// SyncUpResponse carries one result per submitted candidate, in submission
// order, all stamped under one session version. A non-zero Error means the
// batch was aborted atomically and Objects is empty.
type SyncUpResponse struct {
	Error   APIErrorCode `json:"error"`
	Objects []SyncResult `json:"objects,omitempty"`
	Length  int          `json:"length"`
}

// SyncDownRequest asks for every object of one class changed since the
// client's watermark.
type SyncDownRequest struct {
	ClientID  int64 `json:"client_id"`
	Watermark int64 `json:"watermark"`
}

// SyncDownResponse is one bounded page of the change feed.
//
// CommittedVersion is the snapshot bound the page was computed against; no
// object from a session still in flight can appear. When MoreObjects is true
// the client must re-request with its watermark advanced to the Version of
// the last object actually delivered, not to CommittedVersion.
type SyncDownResponse struct {
	Error            APIErrorCode `json:"error"`
	CommittedVersion int64        `json:"committed_version"`
	MoreObjects      bool         `json:"more_objects"`
	Objects          []SyncObject `json:"objects,omitempty"`
	Length           int          `json:"length"`
}

// CheckResyncResponse reports the resync pre-check state for a watermark.
type CheckResyncResponse struct {
	Error APIErrorCode `json:"error"`
	State ResyncState  `json:"state"`
}
