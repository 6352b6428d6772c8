package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/claude/fitx/internal/models"
)

// testDB opens a fresh migrated database in a temp dir.
func testDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitx.db")
	if err := RunMigrations(path, "../../migrations"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestProgramsRoundTrip verifies the catalog blob is written and read back,
// and that an unwritten catalog reports ok=false so callers can seed it.
func TestProgramsRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, ok, err := db.Programs(ctx)
	if err != nil {
		t.Fatalf("Programs on empty store: %v", err)
	}
	if ok {
		t.Fatal("Programs ok = true on empty store, want false")
	}

	reps := 10
	programs := []models.WorkoutProgram{
		{
			ID: "1", Name: "Upper Body", Difficulty: models.DifficultyBeginner,
			Category:  "strength",
			Exercises: []models.Exercise{{ID: "1-1", Name: "Push-ups", Sets: 3, Reps: &reps, RestTime: 60}},
		},
	}
	if err := db.SavePrograms(ctx, programs); err != nil {
		t.Fatalf("SavePrograms: %v", err)
	}

	got, ok, err := db.Programs(ctx)
	if err != nil {
		t.Fatalf("Programs: %v", err)
	}
	if !ok {
		t.Fatal("Programs ok = false after save")
	}
	if len(got) != 1 || got[0].Name != "Upper Body" {
		t.Errorf("Programs = %+v, want the saved program", got)
	}
	if got[0].Exercises[0].Reps == nil || *got[0].Exercises[0].Reps != 10 {
		t.Errorf("exercise reps not preserved: %+v", got[0].Exercises[0])
	}
}

// TestHistoryAppendOrder verifies appends are most-recent-first.
func TestHistoryAppendOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		cw := models.CompletedWorkout{ID: fmt.Sprintf("w%d", i), ProgramName: "Leg Day"}
		if err := db.AppendWorkout(ctx, cw); err != nil {
			t.Fatalf("AppendWorkout: %v", err)
		}
	}

	history, err := db.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	if history[0].ID != "w3" || history[2].ID != "w1" {
		t.Errorf("history order = [%s %s %s], want [w3 w2 w1]",
			history[0].ID, history[1].ID, history[2].ID)
	}
}

// TestHistoryTrimsToLimit verifies the log keeps only the most recent 100
// workouts.
func TestHistoryTrimsToLimit(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for i := 0; i < historyLimit+5; i++ {
		cw := models.CompletedWorkout{ID: fmt.Sprintf("w%d", i)}
		if err := db.AppendWorkout(ctx, cw); err != nil {
			t.Fatalf("AppendWorkout: %v", err)
		}
	}

	history, err := db.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != historyLimit {
		t.Errorf("len(history) = %d, want %d", len(history), historyLimit)
	}
	if history[0].ID != fmt.Sprintf("w%d", historyLimit+4) {
		t.Errorf("newest = %s, want w%d", history[0].ID, historyLimit+4)
	}
}

// TestActiveSessionLifecycle verifies snapshot save, load, and clear.
func TestActiveSessionLifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	got, err := db.ActiveSession(ctx)
	if err != nil {
		t.Fatalf("ActiveSession on empty store: %v", err)
	}
	if got != nil {
		t.Fatalf("ActiveSession = %+v on empty store, want nil", got)
	}

	session := &models.WorkoutSession{
		ID:                   "s1",
		ProgramID:            "1",
		CurrentExerciseIndex: 2,
		CurrentSetIndex:      1,
		IsRestPhase:          true,
		RestEndTime:          1700000000000,
	}
	if err := db.SaveActiveSession(ctx, session); err != nil {
		t.Fatalf("SaveActiveSession: %v", err)
	}

	got, err = db.ActiveSession(ctx)
	if err != nil {
		t.Fatalf("ActiveSession: %v", err)
	}
	if got == nil {
		t.Fatal("ActiveSession = nil after save")
	}
	if got.CurrentExerciseIndex != 2 || got.CurrentSetIndex != 1 || !got.IsRestPhase {
		t.Errorf("restored session = %+v, want indices 2/1 resting", got)
	}

	if err := db.ClearActiveSession(ctx); err != nil {
		t.Fatalf("ClearActiveSession: %v", err)
	}
	got, err = db.ActiveSession(ctx)
	if err != nil {
		t.Fatalf("ActiveSession after clear: %v", err)
	}
	if got != nil {
		t.Errorf("ActiveSession = %+v after clear, want nil", got)
	}
}
