// ABOUTME: HTTP client for the WorkoutPlan API with uniform classification.
// ABOUTME: Attaches the bearer token and expires the session on any 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/workoutplan/cli/internal/models"
	"github.com/workoutplan/cli/internal/session"
)

// Client talks to the WorkoutPlan backend. All authenticated traffic flows
// through do, which owns response classification and the 401 side effect.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *session.Store
}

// New creates a client for the API at baseURL using sessions for tokens.
func New(baseURL string, sessions *session.Store) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: 30 * time.Second},
		sessions: sessions,
	}
}

// Login authenticates with the server and installs the returned token as the
// active session. A non-2xx response surfaces the server's detail message,
// falling back to a generic credentials message.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	err := c.doUnauthenticated(ctx, http.MethodPost, "/auth/login", body, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Detail == "" {
			apiErr.Detail = "Invalid email or password."
		}
		return nil, err
	}

	return c.sessions.Install(out.AccessToken, email)
}

// Register creates a new account. The caller logs in separately afterward.
func (c *Client) Register(ctx context.Context, name, email, password string, role models.Role) error {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(role),
	}
	return c.doUnauthenticated(ctx, http.MethodPost, "/auth/register", body, nil)
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/user/me", nil, &u)
	return u, err
}

// Users lists all users. The server restricts this to trainers.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/user", nil, &users)
	return users, err
}

// Exercises returns the exercise catalog resource.
func (c *Client) Exercises() *Resource[models.Exercise] {
	return NewResource[models.Exercise](c, "/workout/exercises")
}

// Plans returns the workout plan resource.
func (c *Client) Plans() *Resource[models.WorkoutPlan] {
	return NewResource[models.WorkoutPlan](c, "/workout/plans")
}

// Logs returns the workout log resource.
func (c *Client) Logs() *Resource[models.WorkoutLog] {
	return NewResource[models.WorkoutLog](c, "/workout/logs")
}

// do issues an authenticated request and classifies the response.
// Classification priority: transport failure, then 401 (which expires the
// session exactly once before returning), then 2xx, then application error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	sess := c.sessions.Current()
	if sess == nil {
		return ErrNoSession
	}
	return c.roundTrip(ctx, method, path, sess.Token, body, out)
}

// doUnauthenticated issues a request without a token, for the auth endpoints.
func (c *Client) doUnauthenticated(ctx context.Context, method, path string, body, out any) error {
	return c.roundTrip(ctx, method, path, "", body, out)
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.Debug("request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	log.Debug("response", "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized {
		// The session is cleared here, once, before the caller's
		// continuation runs. Callers must not clear it again.
		if token != "" {
			_ = c.sessions.Expire()
			return ErrUnauthorized
		}
		return &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readDetail pulls the detail field from an error response body.
func readDetail(r io.Reader) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Detail
}
