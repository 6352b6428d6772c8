// Package session drives one active workout attempt through its program:
// per-set completion, rest intervals, skip/advance, and the fold into an
// immutable history record when the workout ends.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/fitx/internal/models"
	"github.com/claude/fitx/internal/storage"
	"github.com/google/uuid"
)

var (
	// ErrNoActiveSession is returned when an operation needs an active
	// session and none exists. Stray UI events hit this; callers ignore it.
	ErrNoActiveSession = errors.New("no active workout session")
	// ErrSessionActive is returned by Start while another session is
	// active. The caller must resolve the conflict explicitly: keep going
	// with the existing session or Discard it first.
	ErrSessionActive = errors.New("a workout session is already active")
	// ErrInvalidTransition is returned when the operation is not legal in
	// the current engine state, e.g. completing a set while resting.
	ErrInvalidTransition = errors.New("operation not allowed in current session state")
)

// Engine owns the single process-wide active session. All mutation is
// serialized behind a mutex since HTTP handlers and the rest ticker touch
// the same session. Every mutation is mirrored to the snapshot store
// best-effort: the in-memory session stays authoritative, a failed write
// only costs resumability after a crash.
type Engine struct {
	db  *storage.DB
	log *slog.Logger
	now func() time.Time

	mu     sync.Mutex
	active *models.WorkoutSession
}

// New creates an engine with no active session.
func New(db *storage.DB, log *slog.Logger) *Engine {
	return &Engine{db: db, log: log, now: time.Now}
}

// Restore loads a persisted session snapshot on cold start, so an
// interrupted workout resumes where it left off instead of at NotStarted.
func (e *Engine) Restore(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, err := e.db.ActiveSession(ctx)
	if err != nil {
		return err
	}
	if session != nil {
		e.active = session
		e.log.Info("resumed workout session",
			"id", session.ID,
			"program", session.ProgramName,
			"exercise", session.CurrentExerciseIndex,
			"set", session.CurrentSetIndex,
		)
	}
	return nil
}

// Active returns a copy of the active session, or nil when none exists.
func (e *Engine) Active() *models.WorkoutSession {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneSession(e.active)
}

// State returns the derived engine state.
func (e *Engine) State() models.SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.StateOf(e.active)
}

// Start begins a new session from a program. The program is snapshotted into
// the session so later catalog edits cannot corrupt a workout underway.
// Starting while another session is active is a conflict the caller must
// resolve, never a silent overwrite.
func (e *Engine) Start(ctx context.Context, program models.WorkoutProgram) (*models.WorkoutSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return nil, ErrSessionActive
	}

	progress := make([]models.ExerciseProgress, len(program.Exercises))
	for i, ex := range program.Exercises {
		progress[i] = models.ExerciseProgress{
			ExerciseID:    ex.ID,
			ExerciseName:  ex.Name,
			TargetSets:    ex.Sets,
			TargetReps:    ex.Reps,
			CompletedSets: []models.CompletedSet{},
		}
	}

	e.active = &models.WorkoutSession{
		ID:               uuid.NewString(),
		ProgramID:        program.ID,
		ProgramName:      program.Name,
		StartTime:        e.now().UnixMilli(),
		ExerciseProgress: progress,
		Program:          program,
	}
	e.persist(ctx)
	e.log.Info("workout started", "id", e.active.ID, "program", program.Name)
	return cloneSession(e.active), nil
}

// Discard drops the active session without writing history, clearing its
// snapshot. Used when the user abandons a stale session to start a new one.
func (e *Engine) Discard(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return ErrNoActiveSession
	}
	id := e.active.ID
	e.active = nil
	if err := e.db.ClearActiveSession(ctx); err != nil {
		e.log.Warn("clearing session snapshot failed", "error", err)
	}
	e.log.Info("workout discarded", "id", id)
	return nil
}

// CompleteSet records one performed set for the current exercise, falling
// back to the exercise's target reps/weight when the caller omits them.
// Finishing the exercise advances to the next one (or past the end, the
// completion sentinel); otherwise the set index moves on and a rest phase
// begins.
func (e *Engine) CompleteSet(ctx context.Context, reps *int, weight *float64) (*models.WorkoutSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.active
	if s == nil {
		return nil, ErrNoActiveSession
	}
	if models.StateOf(s) != models.StateExercising {
		return nil, ErrInvalidTransition
	}

	ex := s.Program.Exercises[s.CurrentExerciseIndex]
	progress := &s.ExerciseProgress[s.CurrentExerciseIndex]
	if reps == nil {
		reps = ex.Reps
	}
	if weight == nil {
		weight = ex.Weight
	}
	progress.CompletedSets = append(progress.CompletedSets, models.CompletedSet{
		SetNumber: s.CurrentSetIndex + 1,
		Reps:      reps,
		Weight:    weight,
		Completed: true,
		Timestamp: e.now().UnixMilli(),
	})

	if len(progress.CompletedSets) >= ex.Sets {
		// Exercise done: advance, possibly past the last exercise.
		s.CurrentExerciseIndex++
		s.CurrentSetIndex = 0
		s.IsRestPhase = false
		s.RestEndTime = 0
	} else {
		s.CurrentSetIndex++
		s.IsRestPhase = true
		s.RestEndTime = e.now().UnixMilli() + int64(ex.RestTime)*1000
	}

	e.persist(ctx)
	return cloneSession(s), nil
}

// SkipExercise marks the current exercise skipped and advances, even past
// the last exercise (the completion sentinel). Skipping while resting is
// treated as a forced end of rest.
func (e *Engine) SkipExercise(ctx context.Context) (*models.WorkoutSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.active
	if s == nil {
		return nil, ErrNoActiveSession
	}
	if s.CurrentExerciseIndex >= len(s.Program.Exercises) {
		return nil, ErrInvalidTransition
	}

	s.ExerciseProgress[s.CurrentExerciseIndex].Skipped = true
	s.CurrentExerciseIndex++
	s.CurrentSetIndex = 0
	s.IsRestPhase = false
	s.RestEndTime = 0

	e.persist(ctx)
	return cloneSession(s), nil
}

// NextExercise advances to the next exercise without completing the
// remaining sets and without marking the current one skipped. On the last
// exercise there is nothing to advance to, so it is a no-op.
func (e *Engine) NextExercise(ctx context.Context) (*models.WorkoutSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.active
	if s == nil {
		return nil, ErrNoActiveSession
	}

	if s.CurrentExerciseIndex < len(s.Program.Exercises)-1 {
		s.CurrentExerciseIndex++
		s.CurrentSetIndex = 0
		s.IsRestPhase = false
		s.RestEndTime = 0
		e.persist(ctx)
	}
	return cloneSession(s), nil
}

// StartRest enters the rest phase for the current exercise.
func (e *Engine) StartRest(ctx context.Context) (*models.WorkoutSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.active
	if s == nil {
		return nil, ErrNoActiveSession
	}
	ex := s.CurrentExercise()
	if ex == nil {
		return nil, ErrInvalidTransition
	}

	s.IsRestPhase = true
	s.RestEndTime = e.now().UnixMilli() + int64(ex.RestTime)*1000
	e.persist(ctx)
	return cloneSession(s), nil
}

// EndRest leaves the rest phase. Both the countdown expiry and a manual
// "skip rest" land here; calling it while not resting is harmless.
func (e *Engine) EndRest(ctx context.Context) (*models.WorkoutSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.active
	if s == nil {
		return nil, ErrNoActiveSession
	}
	if s.IsRestPhase {
		s.IsRestPhase = false
		s.RestEndTime = 0
		e.persist(ctx)
	}
	return cloneSession(s), nil
}

// Tick applies the automatic rest-phase exit once the countdown crosses
// zero. The countdown itself is always recomputed from RestEndTime, never
// accumulated, so a suspended host picks up without drift. Returns true if
// the rest phase ended on this tick.
func (e *Engine) Tick(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.active
	if s == nil || !s.IsRestPhase {
		return false
	}
	if s.RestTimeLeft(e.now()) > 0 {
		return false
	}
	s.IsRestPhase = false
	s.RestEndTime = 0
	e.persist(ctx)
	return true
}

// End finishes the workout: folds the session into a CompletedWorkout,
// appends it to history, clears the snapshot, and leaves the engine with no
// active session. The completed flag records whether the user finished the
// program or bailed early; either way the attempt is kept in history.
func (e *Engine) End(ctx context.Context, completed bool) (*models.CompletedWorkout, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.active
	if s == nil {
		return nil, ErrNoActiveSession
	}

	workout := s.Summarize(e.now())
	if err := e.db.AppendWorkout(ctx, workout); err != nil {
		// Keep the session so the user can retry; losing the record
		// silently would be worse than staying active.
		return nil, err
	}

	e.active = nil
	if err := e.db.ClearActiveSession(ctx); err != nil {
		e.log.Warn("clearing session snapshot failed", "error", err)
	}
	e.log.Info("workout ended",
		"id", workout.ID,
		"completed", completed,
		"duration_min", workout.Duration,
		"sets", workout.SetsCompleted,
		"total_sets", workout.TotalSets,
	)
	return &workout, nil
}

// CurrentExercise returns the exercise the session points at, nil once past
// the end.
func (e *Engine) CurrentExercise() (*models.Exercise, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return nil, ErrNoActiveSession
	}
	if ex := e.active.CurrentExercise(); ex != nil {
		clone := *ex
		return &clone, nil
	}
	return nil, nil
}

// Progress returns the live progress summary.
func (e *Engine) Progress() (models.WorkoutProgress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return models.WorkoutProgress{}, ErrNoActiveSession
	}
	return e.active.Progress(), nil
}

// RestTimeLeft returns the seconds remaining in the current rest phase.
func (e *Engine) RestTimeLeft() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return 0
	}
	return e.active.RestTimeLeft(e.now())
}

// ElapsedSeconds returns seconds since the session started, zero when none.
func (e *Engine) ElapsedSeconds() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return 0
	}
	return e.active.ElapsedSeconds(e.now())
}

// persist mirrors the active session to the snapshot store. Best effort per
// the error policy: the in-memory session stays authoritative and only
// crash resumability is lost on failure.
func (e *Engine) persist(ctx context.Context) {
	if e.active == nil {
		return
	}
	if err := e.db.SaveActiveSession(ctx, e.active); err != nil {
		e.log.Warn("persisting session snapshot failed", "id", e.active.ID, "error", err)
	}
}

// cloneSession deep-copies a session so callers can't mutate engine state
// through the returned pointer.
func cloneSession(s *models.WorkoutSession) *models.WorkoutSession {
	if s == nil {
		return nil
	}
	clone := *s
	clone.ExerciseProgress = make([]models.ExerciseProgress, len(s.ExerciseProgress))
	for i, p := range s.ExerciseProgress {
		cp := p
		cp.CompletedSets = append([]models.CompletedSet(nil), p.CompletedSets...)
		clone.ExerciseProgress[i] = cp
	}
	clone.Program.Exercises = append([]models.Exercise(nil), s.Program.Exercises...)
	return &clone
}
