// SPDX-License-Identifier: MIT

package adapter

import "errors"

// Sentinel errors mapped from server responses. Callers match against them
// with [errors.Is].
var (
	// ErrUnauthorized is returned on HTTP 401 or the in-band auth failure
	// code: the token is missing, expired or invalid.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrInvalidAppKey is returned when the server rejects the application
	// key.
	ErrInvalidAppKey = errors.New("application key rejected")

	// ErrFullSyncRequired is returned when the server demands that the
	// client mark all local objects changed and resubmit everything.
	ErrFullSyncRequired = errors.New("server requires a full resync")

	// ErrMalformedRequest is returned when the server could not parse the
	// request or the object class is not registered.
	ErrMalformedRequest = errors.New("server rejected the request as malformed")
)
