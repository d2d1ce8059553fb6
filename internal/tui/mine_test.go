package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/voltlabhq/voltlab/pkg/domain"
)

func makeOwnProject(title, status string) domain.Project {
	return domain.Project{
		ID:         uuid.New(),
		Title:      title,
		ProjectURL: "https://example.com/demo",
		Tags:       []string{"hardware"},
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

func TestMineLoggedOutMessage(t *testing.T) {
	m := newMineModel(false)
	m.width = 80
	m.height = 24

	view := m.View()
	if !strings.Contains(view, "voltlab login") {
		t.Errorf("expected login hint in logged-out view, got:\n%s", view)
	}
}

func TestMineRendersStatusBadges(t *testing.T) {
	m := newMineModel(true)
	m.width = 80
	m.height = 24
	m, _ = m.Update(mineLoadedMsg{projects: []domain.Project{
		makeOwnProject("Reflow Oven", domain.StatusApproved),
		makeOwnProject("CNC Plotter", domain.StatusPending),
	}})

	view := m.View()
	if !strings.Contains(view, "Reflow Oven") || !strings.Contains(view, "CNC Plotter") {
		t.Fatalf("expected both project titles, got:\n%s", view)
	}
	if !strings.Contains(view, "[approved]") {
		t.Errorf("expected approved badge, got:\n%s", view)
	}
	if !strings.Contains(view, "[pending]") {
		t.Errorf("expected pending badge, got:\n%s", view)
	}
}

func TestMineShowsRejectionReason(t *testing.T) {
	m := newMineModel(true)
	m.width = 80
	m.height = 24
	rejected := makeOwnProject("Laser Harp", domain.StatusRejected)
	rejected.RejectionReason = "needs a video link"
	m, _ = m.Update(mineLoadedMsg{projects: []domain.Project{rejected}})

	view := m.View()
	if !strings.Contains(view, "[rejected]") {
		t.Errorf("expected rejected badge, got:\n%s", view)
	}
	if !strings.Contains(view, "needs a video link") {
		t.Errorf("expected rejection reason, got:\n%s", view)
	}
}

func TestMineStatusSummaryCounts(t *testing.T) {
	m := newMineModel(true)
	m, _ = m.Update(mineLoadedMsg{projects: []domain.Project{
		makeOwnProject("A", domain.StatusApproved),
		makeOwnProject("B", domain.StatusApproved),
		makeOwnProject("C", domain.StatusPending),
	}})

	got := m.statusSummary()
	if !strings.Contains(got, "2 approved") {
		t.Errorf("statusSummary() = %q, want to contain %q", got, "2 approved")
	}
	if !strings.Contains(got, "1 pending") {
		t.Errorf("statusSummary() = %q, want to contain %q", got, "1 pending")
	}
	if strings.Contains(got, "rejected") {
		t.Errorf("statusSummary() = %q, should not mention rejected", got)
	}
}

func TestMineLoadFailureKeepsPriorSnapshot(t *testing.T) {
	m := newMineModel(true)
	m.width = 80
	m.height = 24
	m, _ = m.Update(mineLoadedMsg{projects: []domain.Project{
		makeOwnProject("Reflow Oven", domain.StatusApproved),
	}})

	m, _ = m.Update(mineLoadedMsg{err: errors.New("boom")})

	if len(m.projects) != 1 {
		t.Fatalf("failed reload replaced snapshot: %d projects, want 1", len(m.projects))
	}
	if view := m.View(); !strings.Contains(view, "Reflow Oven") {
		t.Errorf("expected prior snapshot still rendered, got:\n%s", view)
	}
}

func TestMineEmptyStateHintsSubmit(t *testing.T) {
	m := newMineModel(true)
	m.width = 80
	m.height = 24
	m, _ = m.Update(mineLoadedMsg{projects: nil})

	if view := m.View(); !strings.Contains(view, "press s to submit") {
		t.Errorf("expected submit hint in empty view, got:\n%s", view)
	}
}

func TestMineSnapshotShrinkClampsCursor(t *testing.T) {
	m := newMineModel(true)
	m, _ = m.Update(mineLoadedMsg{projects: []domain.Project{
		makeOwnProject("A", domain.StatusApproved),
		makeOwnProject("B", domain.StatusPending),
		makeOwnProject("C", domain.StatusPending),
	}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if m.cursor != 2 {
		t.Fatalf("cursor = %d after jj, want 2", m.cursor)
	}

	// Shrinking reload clamps to the last item, same as the showcase list
	m, _ = m.Update(mineLoadedMsg{projects: []domain.Project{
		makeOwnProject("A", domain.StatusApproved),
		makeOwnProject("B", domain.StatusPending),
	}})
	if m.cursor != 1 {
		t.Errorf("cursor = %d after snapshot shrank to 2, want 1", m.cursor)
	}

	m, _ = m.Update(mineLoadedMsg{projects: nil})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after empty snapshot, want 0", m.cursor)
	}
}

func TestMineEnterEmitsDetail(t *testing.T) {
	m := newMineModel(true)
	m, _ = m.Update(mineLoadedMsg{projects: []domain.Project{
		makeOwnProject("Reflow Oven", domain.StatusPending),
	}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected enter to return a command, got nil")
	}
	msg, ok := cmd().(showDetailMsg)
	if !ok {
		t.Fatalf("expected showDetailMsg, got %T", cmd())
	}
	if msg.project.Title != "Reflow Oven" {
		t.Errorf("detail project = %q, want %q", msg.project.Title, "Reflow Oven")
	}
}
