package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voltlabhq/voltlab/pkg/domain"
)

// Client is the Voltlab API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. An empty token yields an anonymous client
// that can still read the public feed.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type projectsResponse struct {
	Projects []domain.Project `json:"projects"`
}

// PublicProjects fetches the approved community showcase feed.
func (c *Client) PublicProjects(ctx context.Context) ([]domain.Project, error) {
	var resp projectsResponse
	if err := c.get(ctx, "/api/community/public", &resp); err != nil {
		return nil, fmt.Errorf("client.PublicProjects: %w", err)
	}
	return resp.Projects, nil
}

// MyProjects fetches the authenticated user's own submissions, including
// pending and rejected ones.
func (c *Client) MyProjects(ctx context.Context) ([]domain.Project, error) {
	var resp projectsResponse
	if err := c.get(ctx, "/api/community/user/me", &resp); err != nil {
		return nil, fmt.Errorf("client.MyProjects: %w", err)
	}
	return resp.Projects, nil
}

// SubmitProject submits a new project for review. The created project comes
// back with status "pending". Each attempt carries a fresh idempotency key
// so a retried submit cannot create duplicates server-side.
func (c *Client) SubmitProject(ctx context.Context, sub domain.Submission) (*domain.Project, error) {
	var resp struct {
		Project domain.Project `json:"project"`
	}
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	if err := c.doRequest(ctx, http.MethodPost, "/api/community/submit", sub, &resp, headers); err != nil {
		return nil, fmt.Errorf("client.SubmitProject: %w", err)
	}
	return &resp.Project, nil
}

// AuthResult is the response from the CLI login code exchange.
type AuthResult struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// ExchangeCode trades a one-time login code for an API token and user id.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*AuthResult, error) {
	var res AuthResult
	if err := c.post(ctx, "/api/auth/cli-exchange", map[string]string{"code": code}, &res); err != nil {
		return nil, fmt.Errorf("client.ExchangeCode: %w", err)
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out, nil)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out, nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any, headers map[string]string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
		if msg := strings.TrimSpace(string(respBody)); msg != "" {
			return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
