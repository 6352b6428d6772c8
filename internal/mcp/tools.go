package mcp

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/claude/fitx/internal/catalog"
	"github.com/claude/fitx/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultDateRange returns start/end defaulting to the last 30 days.
func defaultDateRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// --- Tool definitions ---

var toolGetPrograms = mcp.NewTool("get_programs",
	mcp.WithDescription("List all workout programs, built-in and custom, with name, category, difficulty, estimated duration, and exercise count."),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Get one workout program by id, including its full exercise list with sets, reps, rest times, and weights."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program id (built-in ids are numeric, custom ids start with 'custom-')")),
)

var toolGetWorkoutHistory = mcp.NewTool("get_workout_history",
	mcp.WithDescription("Query completed workouts, newest first. Each record includes date, duration, and exercise/set completion counts."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
	mcp.WithString("program_id", mcp.Description("Filter by program id")),
)

var toolGetActiveSession = mcp.NewTool("get_active_session",
	mcp.WithDescription("Get the in-progress workout session, if any. Returns the session with its per-exercise progress, or a not-active marker."),
)

var toolGetTrainingStats = mcp.NewTool("get_training_stats",
	mcp.WithDescription("Aggregate training statistics over a date range: workout count, total minutes, total sets, completion rate, and per-program breakdown."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

// --- Tool handlers ---

func (h *handlers) getPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.ds.ListPrograms(ctx)
	if err != nil {
		h.log.Error("mcp get_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	program, err := h.ds.GetProgram(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return mcp.NewToolResultError("program not found: " + id), nil
		}
		h.log.Error("mcp get_program", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(program)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkoutHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultDateRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}
	programID := req.GetString("program_id", "")

	history, err := h.ds.History(ctx)
	if err != nil {
		h.log.Error("mcp get_workout_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	filtered := filterHistory(history, start, end, programID)
	result, err := mcp.NewToolResultJSON(filtered)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getActiveSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	session, err := h.ds.ActiveSession(ctx)
	if err != nil {
		h.log.Error("mcp get_active_session", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	if session == nil {
		result, err := mcp.NewToolResultJSON(map[string]any{"active": false})
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	now := time.Now()
	progress := session.Progress()
	result, err := mcp.NewToolResultJSON(map[string]any{
		"active":       true,
		"state":        models.StateOf(session),
		"session":      session,
		"progress":     progress,
		"restTimeLeft": session.RestTimeLeft(now),
		"elapsedSec":   session.ElapsedSeconds(now),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultDateRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	history, err := h.ds.History(ctx)
	if err != nil {
		h.log.Error("mcp get_training_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	stats := computeTrainingStats(filterHistory(history, start, end, ""), start, end)
	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// filterHistory keeps workouts whose end time falls inside [start, end] and,
// when programID is set, that ran the given program. History order (newest
// first) is preserved.
func filterHistory(history []models.CompletedWorkout, start, end time.Time, programID string) []models.CompletedWorkout {
	startMs := start.UnixMilli()
	endMs := end.UnixMilli()

	filtered := make([]models.CompletedWorkout, 0, len(history))
	for _, w := range history {
		if w.EndTime < startMs || w.EndTime > endMs {
			continue
		}
		if programID != "" && w.ProgramID != programID {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered
}

// trainingStats is the aggregate view served by get_training_stats.
type trainingStats struct {
	Start          string         `json:"start"`
	End            string         `json:"end"`
	Workouts       int            `json:"workouts"`
	TotalMinutes   int            `json:"totalMinutes"`
	SetsCompleted  int            `json:"setsCompleted"`
	TotalSets      int            `json:"totalSets"`
	CompletionRate float64        `json:"completionRate"`
	ByProgram      []programStats `json:"byProgram"`
}

type programStats struct {
	ProgramID   string `json:"programId"`
	ProgramName string `json:"programName"`
	Workouts    int    `json:"workouts"`
	Minutes     int    `json:"minutes"`
}

func computeTrainingStats(history []models.CompletedWorkout, start, end time.Time) trainingStats {
	stats := trainingStats{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
	}

	byProgram := map[string]*programStats{}
	for _, w := range history {
		stats.Workouts++
		stats.TotalMinutes += w.Duration
		stats.SetsCompleted += w.SetsCompleted
		stats.TotalSets += w.TotalSets

		ps, ok := byProgram[w.ProgramID]
		if !ok {
			ps = &programStats{ProgramID: w.ProgramID, ProgramName: w.ProgramName}
			byProgram[w.ProgramID] = ps
		}
		ps.Workouts++
		ps.Minutes += w.Duration
	}

	if stats.TotalSets > 0 {
		stats.CompletionRate = float64(stats.SetsCompleted) / float64(stats.TotalSets)
	}

	stats.ByProgram = make([]programStats, 0, len(byProgram))
	for _, ps := range byProgram {
		stats.ByProgram = append(stats.ByProgram, *ps)
	}
	sort.Slice(stats.ByProgram, func(i, j int) bool {
		if stats.ByProgram[i].Workouts != stats.ByProgram[j].Workouts {
			return stats.ByProgram[i].Workouts > stats.ByProgram[j].Workouts
		}
		return stats.ByProgram[i].ProgramID < stats.ByProgram[j].ProgramID
	})
	return stats
}
