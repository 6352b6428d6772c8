package mcp

import (
	"context"

	"github.com/claude/fitx/internal/catalog"
	"github.com/claude/fitx/internal/models"
	"github.com/claude/fitx/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. LocalSource (direct
// SQLite access) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	ListPrograms(ctx context.Context) ([]models.WorkoutProgram, error)
	GetProgram(ctx context.Context, id string) (*models.WorkoutProgram, error)
	History(ctx context.Context) ([]models.CompletedWorkout, error)
	ActiveSession(ctx context.Context) (*models.WorkoutSession, error)
}

// LocalSource serves MCP queries straight from the workout database. The
// catalog service is used for program reads so first access seeds the
// built-in programs the same way the REST API does.
type LocalSource struct {
	db      *storage.DB
	catalog *catalog.Service
}

// Compile-time check: *LocalSource satisfies DataSource.
var _ DataSource = (*LocalSource)(nil)

// NewLocalSource creates a DataSource over a local database.
func NewLocalSource(db *storage.DB, cat *catalog.Service) *LocalSource {
	return &LocalSource{db: db, catalog: cat}
}

func (s *LocalSource) ListPrograms(ctx context.Context) ([]models.WorkoutProgram, error) {
	return s.catalog.List(ctx)
}

func (s *LocalSource) GetProgram(ctx context.Context, id string) (*models.WorkoutProgram, error) {
	return s.catalog.Get(ctx, id)
}

func (s *LocalSource) History(ctx context.Context) ([]models.CompletedWorkout, error) {
	return s.db.History(ctx)
}

func (s *LocalSource) ActiveSession(ctx context.Context) (*models.WorkoutSession, error) {
	return s.db.ActiveSession(ctx)
}
