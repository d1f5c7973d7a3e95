// SPDX-License-Identifier: MIT

package store

const (
	createUser = `INSERT INTO users (email, password_hash)
	VALUES ($1, $2)
	RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
	FROM users
	WHERE email = $1;`

	// Re-registering an install UUID is a no-op update so RETURNING always
	// yields the original row, keeping client registration idempotent.
	registerClient = `INSERT INTO clients (user_id, install_uuid)
	VALUES ($1, $2)
	ON CONFLICT (install_uuid) DO UPDATE SET install_uuid = EXCLUDED.install_uuid
	RETURNING client_id, user_id, install_uuid, created_at;`

	findClientByID = `SELECT client_id, user_id, install_uuid, created_at
	FROM clients
	WHERE client_id = $1;`

	// The FOR UPDATE row lock on the counter singleton is what serializes
	// upload sessions: a second session blocks here until the first commits
	// or rolls back.
	lockCounterForSession = `SELECT committed_version
	FROM sync_counter
	WHERE id = 1
	FOR UPDATE;`

	advanceCounter = `UPDATE sync_counter
	SET committed_version = GREATEST(committed_version, $1)
	WHERE id = 1;`

	selectCommittedVersion = `SELECT committed_version
	FROM sync_counter
	WHERE id = 1;`

	// Counter recovery after loss of the persisted value: never reissue a
	// stamped version, at the cost of possibly skipping values.
	recoverCounter = `UPDATE sync_counter
	SET committed_version = GREATEST(
		committed_version,
		(SELECT COALESCE(MAX(version), 0) FROM sync_objects)
	)
	WHERE id = 1
	RETURNING committed_version;`

	syncObjectColumns = `server_id,
		object_class,
		origin_client_id,
		origin_client_local_id,
		last_updated_by_client_id,
		owner_user_id,
		version,
		deleted,
		payload`

	findObjectByOrigin = `SELECT ` + syncObjectColumns + `
	FROM sync_objects
	WHERE object_class = $1 AND origin_client_id = $2 AND origin_client_local_id = $3;`

	findObjectByServerID = `SELECT ` + syncObjectColumns + `
	FROM sync_objects
	WHERE object_class = $1 AND server_id = $2;`

	insertObject = `INSERT INTO sync_objects (
		object_class,
		origin_client_id,
		origin_client_local_id,
		last_updated_by_client_id,
		owner_user_id,
		version,
		deleted,
		payload
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING server_id;`

	// The version guard enforces the version-only-increases invariant even
	// if a caller ever reached this statement with a stale session version.
	applyAcceptedUpdate = `UPDATE sync_objects
	SET payload = $1,
		deleted = $2,
		version = $3,
		last_updated_by_client_id = $4,
		updated_at = now()
	WHERE object_class = $5 AND server_id = $6 AND version < $3
	RETURNING version;`

	purgeTombstones = `DELETE FROM sync_objects
	WHERE object_class = $1 AND deleted = TRUE AND updated_at < $2;`
)
