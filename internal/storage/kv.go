package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Storage keys. Kept byte-identical to the mobile client's AsyncStorage keys.
const (
	programsKey      = "@fitx_workout_programs"
	historyKey       = "@fitx_workout_history"
	activeSessionKey = "@fitx_active_session"
)

// getValue reads the blob stored under key. Returns (nil, false, nil) when
// the key does not exist.
func (db *DB) getValue(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := db.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// setValue overwrites the blob stored under key.
func (db *DB) setValue(ctx context.Context, key string, value []byte) error {
	_, err := db.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// deleteValue removes key. Deleting a missing key is not an error.
func (db *DB) deleteValue(ctx context.Context, key string) error {
	if _, err := db.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
