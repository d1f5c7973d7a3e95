package models

import "encoding/json"

// LocalObject is the client-side mirror of one synchronized object. It lives
// in the agent's SQLite database.
type LocalObject struct {
	// LocalID is the client-local identifier, assigned on creation and sent
	// to the server as originClientLocalId. It never changes.
	LocalID int64 `json:"local_id"`

	ObjectClass string `json:"object_class"`

	// ServerID is zero until the server acknowledges the creation.
	ServerID int64 `json:"server_id"`

	// Version is the last server version this copy reflects. Zero for
	// never-synced objects.
	Version int64 `json:"version"`

	Deleted bool            `json:"deleted"`
	Payload json.RawMessage `json:"payload"`

	// Pending marks the object as locally changed since the last successful
	// upload.
	Pending bool `json:"pending"`
}
