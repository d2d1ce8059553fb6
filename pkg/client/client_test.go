package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/voltlabhq/voltlab/pkg/domain"
)

func TestPublicProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/community/public" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("public feed request carried Authorization header %q", got)
		}
		json.NewEncoder(w).Encode(map[string][]domain.Project{ //nolint:errcheck
			"projects": {
				{ID: uuid.New(), Title: "LED Matrix Clock", Tags: []string{"hardware"}},
				{ID: uuid.New(), Title: "MIDI Footswitch", Tags: []string{"audio"}},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	projects, err := c.PublicProjects(context.Background())
	if err != nil {
		t.Fatalf("PublicProjects() error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].Title != "LED Matrix Clock" {
		t.Errorf("projects[0].Title = %q, want %q", projects[0].Title, "LED Matrix Clock")
	}
}

func TestPublicProjects_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string][]domain.Project{"projects": {}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	projects, err := c.PublicProjects(context.Background())
	if err != nil {
		t.Fatalf("PublicProjects() error: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("got %d projects, want 0", len(projects))
	}
}

func TestMyProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/community/user/me" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "not authenticated"}) //nolint:errcheck
			return
		}
		json.NewEncoder(w).Encode(map[string][]domain.Project{ //nolint:errcheck
			"projects": {
				{ID: uuid.New(), Title: "My Robot", Status: domain.StatusPending},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token")
	projects, err := c.MyProjects(context.Background())
	if err != nil {
		t.Fatalf("MyProjects() error: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects))
	}
	if projects[0].Status != domain.StatusPending {
		t.Errorf("Status = %q, want %q", projects[0].Status, domain.StatusPending)
	}
}

func TestMyProjects_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "not authenticated"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "bad-token")
	_, err := c.MyProjects(context.Background())
	if err == nil {
		t.Fatal("expected error for unauthorized request")
	}
	if got := err.Error(); !strings.Contains(got, "HTTP 401") {
		t.Errorf("error = %q, want it to contain 'HTTP 401'", got)
	}
	if !IsAuth(err) {
		t.Errorf("IsAuth(%v) = false, want true", err)
	}
}

func TestSubmitProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/community/submit" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if key := r.Header.Get("Idempotency-Key"); key == "" {
			t.Error("submit request missing Idempotency-Key header")
		} else if _, err := uuid.Parse(key); err != nil {
			t.Errorf("Idempotency-Key %q is not a UUID", key)
		}
		var sub domain.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]domain.Project{ //nolint:errcheck
			"project": {
				ID:     uuid.New(),
				Title:  sub.Title,
				Tags:   sub.Tags,
				Status: domain.StatusPending,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	created, err := c.SubmitProject(context.Background(), domain.Submission{
		Title:       "CNC Plotter",
		Description: "A pen plotter from scrap printers",
		ProjectURL:  "https://example.com/plotter",
		Tags:        []string{"hardware", "tools"},
	})
	if err != nil {
		t.Fatalf("SubmitProject() error: %v", err)
	}
	if created.Title != "CNC Plotter" {
		t.Errorf("created.Title = %q, want %q", created.Title, "CNC Plotter")
	}
	if created.Status != domain.StatusPending {
		t.Errorf("created.Status = %q, want %q", created.Status, domain.StatusPending)
	}
}

func TestSubmitProject_ServerMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"error": "title already taken"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.SubmitProject(context.Background(), domain.Submission{Title: "Dup"})
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
	if got := err.Error(); !strings.Contains(got, "title already taken") {
		t.Errorf("error = %q, want it to contain the server message", got)
	}
}

func TestExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/cli-exchange" {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["code"] != "one-time-code" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid code"}) //nolint:errcheck
			return
		}
		json.NewEncoder(w).Encode(AuthResult{Token: "api-token", UserID: "user-1"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	res, err := c.ExchangeCode(context.Background(), "one-time-code")
	if err != nil {
		t.Fatalf("ExchangeCode() error: %v", err)
	}
	if res.Token != "api-token" {
		t.Errorf("Token = %q, want %q", res.Token, "api-token")
	}
	if res.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", res.UserID, "user-1")
	}
}

func TestHTTPError_EmptyBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.PublicProjects(context.Background())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if got := err.Error(); !strings.Contains(got, "request failed with status 502") {
		t.Errorf("error = %q, want generic fallback message", got)
	}
}

func TestHTTPError_ServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.PublicProjects(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if got := err.Error(); !strings.Contains(got, "boom") {
		t.Errorf("error = %q, want it to contain 'boom'", got)
	}
	if !IsStatus(err, http.StatusInternalServerError) {
		t.Errorf("IsStatus(err, 500) = false, want true")
	}
}

func TestDoRequest_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(5 * time.Second) // slow server
		json.NewEncoder(w).Encode(map[string][]domain.Project{"projects": {}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	_, err := c.PublicProjects(ctx)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/community/public" {
			t.Errorf("path = %q, want /api/community/public", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string][]domain.Project{"projects": {}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "")
	if _, err := c.PublicProjects(context.Background()); err != nil {
		t.Fatalf("PublicProjects() error: %v", err)
	}
}
