package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/fitx/internal/catalog"
	"github.com/claude/fitx/internal/models"
)

// HTTPClient implements DataSource by calling the FitX REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("httpclient: read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	body, status, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, status, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("httpclient: parse %s response: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) ListPrograms(ctx context.Context) ([]models.WorkoutProgram, error) {
	var programs []models.WorkoutProgram
	if err := c.getJSON(ctx, "/api/v1/programs", &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (c *HTTPClient) GetProgram(ctx context.Context, id string) (*models.WorkoutProgram, error) {
	body, status, err := c.get(ctx, "/api/v1/programs/"+id)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, catalog.ErrNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("httpclient: program %s returned %d: %s", id, status, body)
	}

	var program models.WorkoutProgram
	if err := json.Unmarshal(body, &program); err != nil {
		return nil, fmt.Errorf("httpclient: parse program response: %w", err)
	}
	return &program, nil
}

func (c *HTTPClient) History(ctx context.Context) ([]models.CompletedWorkout, error) {
	var history []models.CompletedWorkout
	if err := c.getJSON(ctx, "/api/v1/history", &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *HTTPClient) ActiveSession(ctx context.Context) (*models.WorkoutSession, error) {
	// The status endpoint reports active=false instead of 404 when no
	// session is running.
	var status struct {
		Active  bool                   `json:"active"`
		Session *models.WorkoutSession `json:"session"`
	}
	if err := c.getJSON(ctx, "/api/v1/session", &status); err != nil {
		return nil, err
	}
	if !status.Active {
		return nil, nil
	}
	return status.Session, nil
}
