package tui

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const releasesURL = "https://api.github.com/repos/voltlabhq/voltlab/releases/latest"

// versionCheckMsg carries the result of a background GitHub release check.
type versionCheckMsg struct {
	latestVersion string
	hasUpdate     bool
}

// checkVersion fires a non-blocking HTTP request to GitHub to see if a newer
// CLI release exists. Dev builds skip the check.
func checkVersion(current string) tea.Cmd {
	if current == "" || current == "dev" {
		return nil
	}
	return checkVersionAgainst(releasesURL, current)
}

// checkVersionAgainst is split out so tests can point at a mock server.
func checkVersionAgainst(url, current string) tea.Cmd {
	return func() tea.Msg {
		hc := &http.Client{Timeout: 5 * time.Second}
		resp, err := hc.Get(url)
		if err != nil {
			return versionCheckMsg{}
		}
		defer resp.Body.Close() //nolint:errcheck
		if resp.StatusCode != http.StatusOK {
			return versionCheckMsg{}
		}
		var release struct {
			TagName string `json:"tag_name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
			return versionCheckMsg{}
		}
		if !isNewerVersion(release.TagName, current) {
			return versionCheckMsg{}
		}
		return versionCheckMsg{latestVersion: release.TagName, hasUpdate: true}
	}
}

// isNewerVersion reports whether latest is a newer semver than current.
// Tags may carry a leading "v"; missing components count as zero.
func isNewerVersion(latest, current string) bool {
	latest = strings.TrimPrefix(latest, "v")
	current = strings.TrimPrefix(current, "v")
	if latest == "" || current == "" {
		return false
	}
	lp := strings.SplitN(latest, ".", 3)
	cp := strings.SplitN(current, ".", 3)
	for i := 0; i < 3; i++ {
		var l, c int
		if i < len(lp) {
			l, _ = strconv.Atoi(lp[i]) //nolint:errcheck
		}
		if i < len(cp) {
			c, _ = strconv.Atoi(cp[i]) //nolint:errcheck
		}
		if l != c {
			return l > c
		}
	}
	return false
}
