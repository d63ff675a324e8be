// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package store

// The sessions table holds at most one row: the single persisted login of
// this client installation. The fixed id makes the upsert a plain REPLACE.
const (
	saveSession = `
		INSERT INTO sessions (id, user_id, token, saved_at)
		VALUES (1, $1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			user_id  = excluded.user_id,
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT user_id, token
		FROM sessions
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM sessions
		WHERE id = 1;`
)
