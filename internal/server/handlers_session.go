package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/claude/fitx/internal/catalog"
	"github.com/claude/fitx/internal/models"
	"github.com/claude/fitx/internal/session"
)

// sessionStatus is the full session view clients poll. Rest and elapsed
// times are derived server-side from the stored timestamps on every request.
type sessionStatus struct {
	Active          bool                    `json:"active"`
	State           models.SessionState     `json:"state"`
	Session         *models.WorkoutSession  `json:"session,omitempty"`
	Progress        *models.WorkoutProgress `json:"progress,omitempty"`
	CurrentExercise *models.Exercise        `json:"currentExercise,omitempty"`
	RestTimeLeft    int                     `json:"restTimeLeft"`
	ElapsedSec      int                     `json:"elapsedSec"`
}

func (s *Server) sessionStatusBody() sessionStatus {
	status := sessionStatus{State: s.engine.State()}
	active := s.engine.Active()
	if active == nil {
		return status
	}

	status.Active = true
	status.Session = active
	progress := active.Progress()
	status.Progress = &progress
	status.CurrentExercise = active.CurrentExercise()
	status.RestTimeLeft = s.engine.RestTimeLeft()
	status.ElapsedSec = s.engine.ElapsedSeconds()
	return status
}

func (s *Server) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	// Polling the status doubles as the rest-countdown tick.
	s.engine.Tick(r.Context())
	writeJSON(w, http.StatusOK, s.sessionStatusBody())
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProgramID string `json:"programId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	program, err := s.catalog.Get(r.Context(), req.ProgramID)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	started, err := s.engine.Start(r.Context(), *program)
	if errors.Is(err, session.ErrSessionActive) {
		// The caller must choose: keep the active session or discard it
		// and start over. Never silently replaced.
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":         err.Error(),
			"activeSession": s.engine.Active(),
		})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, started)
}

// handleResumeSession reloads the persisted session snapshot into the
// engine. With a session already active it just returns it, so resume is
// idempotent.
func (s *Server) handleResumeSession(w http.ResponseWriter, r *http.Request) {
	if active := s.engine.Active(); active != nil {
		writeJSON(w, http.StatusOK, active)
		return
	}

	if err := s.engine.Restore(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	active := s.engine.Active()
	if active == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no saved session to resume"})
		return
	}
	writeJSON(w, http.StatusOK, active)
}

func (s *Server) handleDiscardSession(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Discard(r.Context()); err != nil {
		s.writeSessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reps   *int     `json:"reps"`
		Weight *float64 `json:"weight"`
	}
	// An empty body means "use the exercise targets".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	updated, err := s.engine.CompleteSet(r.Context(), req.Reps, req.Weight)
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleSkipExercise(w http.ResponseWriter, r *http.Request) {
	updated, err := s.engine.SkipExercise(r.Context())
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleNextExercise(w http.ResponseWriter, r *http.Request) {
	updated, err := s.engine.NextExercise(r.Context())
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleStartRest(w http.ResponseWriter, r *http.Request) {
	updated, err := s.engine.StartRest(r.Context())
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleEndRest(w http.ResponseWriter, r *http.Request) {
	updated, err := s.engine.EndRest(r.Context())
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	workout, err := s.engine.End(r.Context(), req.Completed)
	if err != nil {
		s.writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// writeSessionError maps engine precondition failures to client-side status
// codes so stray UI events never read as server faults.
func (s *Server) writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoActiveSession):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, session.ErrInvalidTransition), errors.Is(err, session.ErrSessionActive):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		s.log.Error("session operation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
