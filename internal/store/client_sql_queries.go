// SPDX-License-Identifier: MIT

package store

const (
	createLocalSchema = `
		CREATE TABLE IF NOT EXISTS local_objects (
			local_id     INTEGER PRIMARY KEY AUTOINCREMENT,
			object_class TEXT    NOT NULL,
			server_id    INTEGER NOT NULL DEFAULT 0,
			version      INTEGER NOT NULL DEFAULT 0,
			deleted      INTEGER NOT NULL DEFAULT 0,
			payload      TEXT,
			pending      INTEGER NOT NULL DEFAULT 1
		);

		CREATE UNIQUE INDEX IF NOT EXISTS local_objects_server_idx
			ON local_objects (object_class, server_id)
			WHERE server_id > 0;

		CREATE TABLE IF NOT EXISTS watermarks (
			object_class TEXT PRIMARY KEY,
			watermark    INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS agent_meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	saveLocalObject = `
		INSERT INTO local_objects (object_class, server_id, version, deleted, payload, pending)
		VALUES ($1, $2, $3, $4, $5, 1)
		RETURNING local_id;`

	selectPendingObjects = `
		SELECT local_id, object_class, server_id, version, deleted, payload, pending
		FROM local_objects
		WHERE object_class = $1 AND pending = 1
		ORDER BY local_id;`

	markObjectSynced = `
		UPDATE local_objects
		SET server_id = $1, version = $2, pending = 0
		WHERE object_class = $3 AND local_id = $4;`

	applyRemoteObject = `
		INSERT INTO local_objects (object_class, server_id, version, deleted, payload, pending)
		VALUES ($1, $2, $3, $4, $5, 0)
		ON CONFLICT (object_class, server_id) WHERE server_id > 0
		DO UPDATE SET version = EXCLUDED.version,
			deleted = EXCLUDED.deleted,
			payload = EXCLUDED.payload,
			pending = 0;`

	selectWatermark = `
		SELECT watermark FROM watermarks WHERE object_class = $1;`

	upsertWatermark = `
		INSERT INTO watermarks (object_class, watermark)
		VALUES ($1, $2)
		ON CONFLICT (object_class) DO UPDATE SET watermark = EXCLUDED.watermark;`

	markAllObjectsPending = `
		UPDATE local_objects SET pending = 1 WHERE object_class = $1;`

	selectMetaValue = `
		SELECT value FROM agent_meta WHERE key = $1;`

	upsertMetaValue = `
		INSERT INTO agent_meta (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`
)
