package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/fitx/internal/catalog"
	"github.com/claude/fitx/internal/models"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client hits the expected REST paths.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestHTTPClientListPrograms verifies the client parses the program list
// response.
func TestHTTPClientListPrograms(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/programs": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []models.WorkoutProgram{
				{ID: "1", Name: "Full Body Strength"},
				{ID: "custom-abc", Name: "My Split"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	programs, err := client.ListPrograms(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(programs) != 2 || programs[1].ID != "custom-abc" {
		t.Errorf("programs = %+v, want two with custom-abc second", programs)
	}
}

// TestHTTPClientGetProgramNotFound verifies a 404 maps to catalog.ErrNotFound
// so MCP handlers treat remote and local sources the same way.
func TestHTTPClientGetProgramNotFound(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/programs/nope": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.GetProgram(context.Background(), "nope")
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("err = %v, want catalog.ErrNotFound", err)
	}
}

// TestHTTPClientActiveSession verifies both the active and inactive status
// shapes.
func TestHTTPClientActiveSession(t *testing.T) {
	active := false
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/session": func(w http.ResponseWriter, r *http.Request) {
			if !active {
				writeTestJSON(t, w, map[string]any{"active": false})
				return
			}
			writeTestJSON(t, w, map[string]any{
				"active":  true,
				"session": models.WorkoutSession{ID: "s1", ProgramID: "1"},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)

	session, err := client.ActiveSession(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if session != nil {
		t.Errorf("session = %+v, want nil when inactive", session)
	}

	active = true
	session, err = client.ActiveSession(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if session == nil || session.ID != "s1" {
		t.Errorf("session = %+v, want s1", session)
	}
}

// TestHTTPClientErrorStatus verifies non-200 responses surface as errors.
func TestHTTPClientErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/history": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	if _, err := client.History(context.Background()); err == nil {
		t.Error("expected error for 500 response")
	}
}
