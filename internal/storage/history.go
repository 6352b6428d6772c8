package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/fitx/internal/models"
)

// historyLimit caps how many completed workouts are retained.
const historyLimit = 100

// History returns completed workouts, most recent first.
func (db *DB) History(ctx context.Context) ([]models.CompletedWorkout, error) {
	data, ok, err := db.getValue(ctx, historyKey)
	if err != nil || !ok {
		return nil, err
	}

	var history []models.CompletedWorkout
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return history, nil
}

// AppendWorkout prepends a completed workout to the history log and trims it
// to the retention limit. Records are immutable once written.
func (db *DB) AppendWorkout(ctx context.Context, workout models.CompletedWorkout) error {
	history, err := db.History(ctx)
	if err != nil {
		return err
	}

	history = append([]models.CompletedWorkout{workout}, history...)
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}

	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return db.setValue(ctx, historyKey, data)
}

// ClearHistory removes the entire workout history.
func (db *DB) ClearHistory(ctx context.Context) error {
	return db.deleteValue(ctx, historyKey)
}
