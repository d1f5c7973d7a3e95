// SPDX-License-Identifier: MIT

package models

// APIErrorCode is the request-level error code carried in every response
// body under the "error" key. A non-zero code means the request as a whole
// was not processed; per-object outcomes are reported separately via
// [SyncOutcome] and never escalate to a request-level code.
type APIErrorCode int

const (
	// APISuccess means the request was processed. Individual objects may
	// still carry conflict or authorization outcomes.
	APISuccess APIErrorCode = 0

	// APIUnknown covers internal failures that are not the client's fault.
	// The client should retry later; no partial effect was committed.
	APIUnknown APIErrorCode = 1

	// APIMalformedRequest means the request body or parameters could not be
	// parsed, or referenced an unregistered object class.
	APIMalformedRequest APIErrorCode = 2

	// APIInvalidKey means the application key was missing or not recognised.
	APIInvalidKey APIErrorCode = 3

	// APIAuthFail means user authentication failed (bad or expired token,
	// wrong credentials).
	APIAuthFail APIErrorCode = 4

	// APIFullSyncRequired means the client's watermark is ahead of the
	// server's counter. No object data is returned; the client must mark all
	// of its local objects as changed and resubmit them.
	APIFullSyncRequired APIErrorCode = 10
)

// SyncOutcome classifies the result of processing a single uploaded object.
// Conflicts and authorization mismatches are ordinary outcomes, not errors.
type SyncOutcome string

const (
	// OutcomeAccepted - the write became canonical and was stamped with the
	// session version.
	OutcomeAccepted SyncOutcome = "accepted"

	// OutcomeReplayed - the creation was a resend of an already committed
	// create; the original server identity and version are returned.
	OutcomeReplayed SyncOutcome = "replayed"

	// OutcomeRejected - the update lost the version conflict; the server's
	// canonical object is returned and must overwrite the client's copy.
	OutcomeRejected SyncOutcome = "rejected"

	// OutcomeDenied - the authenticated user does not own the object.
	OutcomeDenied SyncOutcome = "denied"

	// OutcomeNotFound - the update referenced a server identity that does
	// not exist for the given object class.
	OutcomeNotFound SyncOutcome = "not_found"
)

// ResyncState is the result of the resync pre-check.
type ResyncState string

const (
	ResyncNormal   ResyncState = "NORMAL"
	ResyncRequired ResyncState = "FULL_RESYNC_REQUIRED"
)
