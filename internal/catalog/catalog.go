// Package catalog manages the workout program catalog: built-in seed
// programs plus user-created custom programs, persisted as a single blob.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/claude/fitx/internal/models"
	"github.com/claude/fitx/internal/storage"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no program has the requested id.
	ErrNotFound = errors.New("program not found")
	// ErrDuplicateName is returned when another program already uses the
	// name (case-insensitive).
	ErrDuplicateName = errors.New("a program with this name already exists")
	// ErrBuiltinProgram is returned on attempts to overwrite or delete a
	// built-in program.
	ErrBuiltinProgram = errors.New("built-in programs cannot be modified")
)

const customIDPrefix = "custom-"

// IsCustom reports whether a program id denotes a user-created program.
func IsCustom(id string) bool {
	return strings.HasPrefix(id, customIDPrefix)
}

// Service provides catalog operations over the blob store.
type Service struct {
	db  *storage.DB
	log *slog.Logger
}

// New creates a catalog service.
func New(db *storage.DB, log *slog.Logger) *Service {
	return &Service{db: db, log: log}
}

// List returns all programs. An empty catalog is seeded with the built-ins
// first; the seed write is best effort so a storage failure still yields a
// usable in-memory catalog.
func (s *Service) List(ctx context.Context) ([]models.WorkoutProgram, error) {
	programs, ok, err := s.db.Programs(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		programs = SeedPrograms()
		if err := s.db.SavePrograms(ctx, programs); err != nil {
			s.log.Warn("seeding program catalog failed", "error", err)
		} else {
			s.log.Info("program catalog seeded", "programs", len(programs))
		}
	}
	return programs, nil
}

// Get returns the program with the given id.
func (s *Service) Get(ctx context.Context, id string) (*models.WorkoutProgram, error) {
	programs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range programs {
		if programs[i].ID == id {
			return &programs[i], nil
		}
	}
	return nil, ErrNotFound
}

// Save creates or updates a custom program. New programs get a custom- id;
// the duration estimate is recomputed from the exercises. Name uniqueness is
// enforced case-insensitively against every other program, and built-ins can
// never be overwritten.
func (s *Service) Save(ctx context.Context, program models.WorkoutProgram) (*models.WorkoutProgram, error) {
	if strings.TrimSpace(program.Name) == "" {
		return nil, fmt.Errorf("program name is required")
	}
	if len(program.Exercises) == 0 {
		return nil, fmt.Errorf("program needs at least one exercise")
	}
	if program.Difficulty == "" {
		program.Difficulty = models.DifficultyBeginner
	}
	if !program.Difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", program.Difficulty)
	}

	program.Name = strings.TrimSpace(program.Name)
	if program.ID == "" {
		program.ID = customIDPrefix + uuid.NewString()
	} else if !IsCustom(program.ID) {
		return nil, ErrBuiltinProgram
	}
	program.Duration = models.EstimateDuration(program.Exercises)

	programs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range programs {
		if programs[i].ID == program.ID {
			programs[i] = program
			updated = true
			continue
		}
		if strings.EqualFold(programs[i].Name, program.Name) {
			return nil, ErrDuplicateName
		}
	}
	if !updated {
		programs = append(programs, program)
	}

	if err := s.db.SavePrograms(ctx, programs); err != nil {
		return nil, err
	}
	s.log.Info("program saved", "id", program.ID, "name", program.Name, "updated", updated)
	return &program, nil
}

// Delete removes a custom program. Built-ins are immutable; deleting one is
// a caller error, not a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !IsCustom(id) {
		return ErrBuiltinProgram
	}

	programs, err := s.List(ctx)
	if err != nil {
		return err
	}

	kept := programs[:0]
	found := false
	for _, p := range programs {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}

	if err := s.db.SavePrograms(ctx, kept); err != nil {
		return err
	}
	s.log.Info("program deleted", "id", id)
	return nil
}
