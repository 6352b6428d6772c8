package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/fitx/internal/catalog"
	"github.com/claude/fitx/internal/session"
	"github.com/claude/fitx/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	catalog *catalog.Service
	engine  *session.Engine
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, cat *catalog.Service, engine *session.Engine, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		catalog: cat,
		engine:  engine,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Read endpoints
	s.router.Get("/api/v1/programs", s.handleListPrograms)
	s.router.Get("/api/v1/programs/{id}", s.handleGetProgram)
	s.router.Get("/api/v1/history", s.handleHistory)
	s.router.Get("/api/v1/session", s.handleSessionStatus)

	// Mutations (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))

		r.Post("/api/v1/programs", s.handleSaveProgram)
		r.Delete("/api/v1/programs/{id}", s.handleDeleteProgram)

		r.Route("/api/v1/session", func(r chi.Router) {
			r.Post("/start", s.handleStartSession)
			r.Post("/resume", s.handleResumeSession)
			r.Post("/discard", s.handleDiscardSession)
			r.Post("/complete-set", s.handleCompleteSet)
			r.Post("/skip-exercise", s.handleSkipExercise)
			r.Post("/next-exercise", s.handleNextExercise)
			r.Post("/rest/start", s.handleStartRest)
			r.Post("/rest/end", s.handleEndRest)
			r.Post("/end", s.handleEndSession)
		})
	})
}
