package models

import "time"

// User is an account entity used by the auth glue around the engine.
// Sensitive fields must never leave trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password carries the plaintext credential inbound on register/login
	// requests only. It is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash kept at the persistence layer.
	// Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Client is one installation of the application on one device. Every sync
// request is made on behalf of a registered client; ClientID is the value
// stamped into originClientId and lastUpdatedByClientId.
type Client struct {
	ClientID int64 `json:"client_id"`
	UserID   int64 `json:"user_id"`

	// InstallUUID is generated by the client on first run and makes client
	// registration idempotent: re-registering the same UUID returns the same
	// ClientID.
	InstallUUID string `json:"install_uuid"`

	CreatedAt time.Time `json:"created_at"`
}
