package models

import "time"

// CompletedSet records one set the user performed.
type CompletedSet struct {
	SetNumber int      `json:"setNumber"` // 1-based
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Completed bool     `json:"completed"`
	Timestamp int64    `json:"timestamp"` // epoch ms
}

// ExerciseProgress tracks one exercise inside a session. CompletedSets is in
// chronological (insertion) order.
type ExerciseProgress struct {
	ExerciseID    string         `json:"exerciseId"`
	ExerciseName  string         `json:"exerciseName"`
	TargetSets    int            `json:"targetSets"`
	TargetReps    *int           `json:"targetReps,omitempty"`
	CompletedSets []CompletedSet `json:"completedSets"`
	Skipped       bool           `json:"skipped"`
}

// WorkoutSession is one in-progress execution of a program. Program is an
// embedded snapshot taken at start time, so catalog edits never corrupt a
// session already underway. All timestamps are epoch milliseconds; rest and
// elapsed countdowns are recomputed from them rather than accumulated, which
// makes suspend/resume safe.
type WorkoutSession struct {
	ID                   string             `json:"id"`
	ProgramID            string             `json:"programId"`
	ProgramName          string             `json:"programName"`
	StartTime            int64              `json:"startTime"`
	CurrentExerciseIndex int                `json:"currentExerciseIndex"`
	CurrentSetIndex      int                `json:"currentSetIndex"`
	ExerciseProgress     []ExerciseProgress `json:"exerciseProgress"`
	IsRestPhase          bool               `json:"isRestPhase"`
	RestEndTime          int64              `json:"restEndTime,omitempty"` // epoch ms, 0 when not resting
	Program              WorkoutProgram     `json:"program"`
}

// CompletedWorkout is the immutable history record a session folds into.
type CompletedWorkout struct {
	ID                 string             `json:"id"`
	ProgramID          string             `json:"programId"`
	ProgramName        string             `json:"programName"`
	Date               string             `json:"date"` // YYYY-MM-DD, local
	StartTime          int64              `json:"startTime"`
	EndTime            int64              `json:"endTime"`
	Duration           int                `json:"duration"` // minutes, rounded
	ExercisesCompleted int                `json:"exercisesCompleted"`
	TotalExercises     int                `json:"totalExercises"`
	SetsCompleted      int                `json:"setsCompleted"`
	TotalSets          int                `json:"totalSets"`
	Exercises          []ExerciseProgress `json:"exercises"`
}

// WorkoutProgress is the live progress summary shown while a session runs.
type WorkoutProgress struct {
	ExercisesCompleted int `json:"exercisesCompleted"`
	TotalExercises     int `json:"totalExercises"`
	SetsCompleted      int `json:"setsCompleted"`
	TotalSets          int `json:"totalSets"`
}

// SessionState is the engine state, derived from session fields rather than
// stored, so it can never drift from the indices.
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateExercising SessionState = "exercising"
	StateResting    SessionState = "resting"
	StateComplete   SessionState = "complete"
)

// StateOf derives the engine state for a session. A nil session means no
// workout has been started.
func StateOf(s *WorkoutSession) SessionState {
	switch {
	case s == nil:
		return StateNotStarted
	case s.Finished():
		return StateComplete
	case s.IsRestPhase:
		return StateResting
	default:
		return StateExercising
	}
}

// Finished reports whether the session has reached the end of its program:
// either the exercise index moved past the last exercise (the completion
// sentinel), or the user is sitting on the last exercise with every target
// set done and no rest pending.
func (s *WorkoutSession) Finished() bool {
	n := len(s.Program.Exercises)
	if s.CurrentExerciseIndex >= n {
		return true
	}
	if s.CurrentExerciseIndex == n-1 && !s.IsRestPhase {
		done := len(s.ExerciseProgress[n-1].CompletedSets)
		return done >= s.Program.Exercises[n-1].Sets
	}
	return false
}

// CurrentExercise returns the exercise the session points at, or nil once the
// session is past the end of the program.
func (s *WorkoutSession) CurrentExercise() *Exercise {
	if s.CurrentExerciseIndex >= len(s.Program.Exercises) {
		return nil
	}
	return &s.Program.Exercises[s.CurrentExerciseIndex]
}

// RestTimeLeft returns the whole seconds remaining in the rest phase,
// clamped at zero. Always recomputed from RestEndTime.
func (s *WorkoutSession) RestTimeLeft(now time.Time) int {
	if !s.IsRestPhase || s.RestEndTime == 0 {
		return 0
	}
	left := (s.RestEndTime - now.UnixMilli()) / 1000
	if left < 0 {
		return 0
	}
	return int(left)
}

// ElapsedSeconds returns whole seconds since the session started.
func (s *WorkoutSession) ElapsedSeconds(now time.Time) int {
	return int((now.UnixMilli() - s.StartTime) / 1000)
}

// Progress computes the live progress summary. Set counts are always summed
// over the per-exercise progress, never tracked separately. An exercise
// counts as completed here once all its target sets are done or it was
// skipped; the end-of-workout summary uses a different predicate, see
// Summarize.
func (s *WorkoutSession) Progress() WorkoutProgress {
	p := WorkoutProgress{TotalExercises: len(s.Program.Exercises)}
	for i, progress := range s.ExerciseProgress {
		ex := s.Program.Exercises[i]
		p.TotalSets += ex.Sets
		for _, set := range progress.CompletedSets {
			if set.Completed {
				p.SetsCompleted++
			}
		}
		if len(progress.CompletedSets) >= ex.Sets || progress.Skipped {
			p.ExercisesCompleted++
		}
	}
	return p
}

// Summarize folds the session into its history record. Unlike the live
// Progress predicate, an exercise counts as completed in the summary if at
// least one set was done and it was not skipped.
func (s *WorkoutSession) Summarize(endTime time.Time) CompletedWorkout {
	end := endTime.UnixMilli()
	cw := CompletedWorkout{
		ID:             s.ID,
		ProgramID:      s.ProgramID,
		ProgramName:    s.ProgramName,
		Date:           endTime.Format("2006-01-02"),
		StartTime:      s.StartTime,
		EndTime:        end,
		Duration:       int(float64(end-s.StartTime)/60000 + 0.5),
		TotalExercises: len(s.Program.Exercises),
		Exercises:      s.ExerciseProgress,
	}
	for i, progress := range s.ExerciseProgress {
		ex := s.Program.Exercises[i]
		cw.TotalSets += ex.Sets
		for _, set := range progress.CompletedSets {
			if set.Completed {
				cw.SetsCompleted++
			}
		}
		if len(progress.CompletedSets) > 0 && !progress.Skipped {
			cw.ExercisesCompleted++
		}
	}
	return cw
}
