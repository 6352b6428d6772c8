package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/fitx/internal/models"
)

// Programs returns every stored workout program in stored order. Returns
// (nil, false, nil) when the catalog has never been written, so the caller
// can seed the built-ins.
func (db *DB) Programs(ctx context.Context) ([]models.WorkoutProgram, bool, error) {
	data, ok, err := db.getValue(ctx, programsKey)
	if err != nil || !ok {
		return nil, false, err
	}

	var programs []models.WorkoutProgram
	if err := json.Unmarshal(data, &programs); err != nil {
		return nil, false, fmt.Errorf("decoding programs: %w", err)
	}
	return programs, true, nil
}

// SavePrograms rewrites the full program list. The catalog is loaded in full
// and rewritten in full on every save, matching the single-key blob contract.
func (db *DB) SavePrograms(ctx context.Context, programs []models.WorkoutProgram) error {
	data, err := json.Marshal(programs)
	if err != nil {
		return fmt.Errorf("encoding programs: %w", err)
	}
	return db.setValue(ctx, programsKey, data)
}
