package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session is the stored login state: the API token and the id of the user
// it belongs to. Both come from the CLI login flow.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// LoggedIn returns true when the session carries a token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".voltlab", "session.json"), nil
}

// Load returns the stored session. VOLTLAB_TOKEN (with optional
// VOLTLAB_USER_ID) overrides the file so scripts and CI can run without a
// browser login. A missing session file yields a zero session, not an error.
func Load() (Session, error) {
	if token := os.Getenv("VOLTLAB_TOKEN"); token != "" {
		return Session{Token: token, UserID: os.Getenv("VOLTLAB_USER_ID")}, nil
	}

	path, err := sessionPath()
	if err != nil {
		return Session{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse session: %w", err)
	}
	return s, nil
}

// Save writes the session file with owner-only permissions.
func Save(s Session) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func Clear() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
