package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/fitx/internal/models"
)

// ActiveSession loads the persisted in-flight session snapshot, or nil when
// none exists. The snapshot is a crash-recovery cache; while the process
// runs, the in-memory session is authoritative.
func (db *DB) ActiveSession(ctx context.Context) (*models.WorkoutSession, error) {
	data, ok, err := db.getValue(ctx, activeSessionKey)
	if err != nil || !ok {
		return nil, err
	}

	var session models.WorkoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding active session: %w", err)
	}
	return &session, nil
}

// SaveActiveSession overwrites the session snapshot. Called after every
// state-mutating transition.
func (db *DB) SaveActiveSession(ctx context.Context, session *models.WorkoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding active session: %w", err)
	}
	return db.setValue(ctx, activeSessionKey, data)
}

// ClearActiveSession deletes the snapshot. Called when a workout ends.
func (db *DB) ClearActiveSession(ctx context.Context) error {
	return db.deleteValue(ctx, activeSessionKey)
}
