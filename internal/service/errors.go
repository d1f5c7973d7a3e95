package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrClientNotOwned is returned when a request names a client identity
	// that does not belong to the authenticated user.
	ErrClientNotOwned = errors.New("client does not belong to the authenticated user")

	// ErrFullSyncRequired is returned by the resync guard when the client's
	// watermark is ahead of the server's counter. The request carries no
	// object data; the client must mark everything locally changed and
	// resubmit.
	ErrFullSyncRequired = errors.New("full resync required")

	// ErrBatchLengthMismatch is returned when the declared batch length does
	// not match the number of submitted objects.
	ErrBatchLengthMismatch = errors.New("batch length does not match object count")

	// ErrNoClientID is returned when a sync request carries no client
	// identity.
	ErrNoClientID = errors.New("no client ID was provided")

	ErrUnknownConflictPolicy = errors.New("unknown conflict policy")
)
