package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltlabhq/voltlab/pkg/domain"
)

type mineModel struct {
	projects []domain.Project
	cursor   int
	loggedIn bool
	loading  bool
	failed   bool
	width    int
	height   int
}

func newMineModel(loggedIn bool) mineModel {
	return mineModel{loggedIn: loggedIn, loading: loggedIn}
}

func (m mineModel) Update(msg tea.Msg) (mineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case mineLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.failed = true
			return m, nil
		}
		m.failed = false
		m.projects = msg.projects
		if n := len(m.projects); n == 0 {
			m.cursor = 0
		} else if m.cursor >= n {
			m.cursor = n - 1
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.projects)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(m.projects) > 0 && m.cursor < len(m.projects) {
				p := m.projects[m.cursor]
				return m, func() tea.Msg { return showDetailMsg{project: p} }
			}
		}
	}
	return m, nil
}

func (m mineModel) View() string {
	var sb strings.Builder

	if !m.loggedIn {
		sb.WriteString("\n " + dimStyle.Render("not authenticated -- run: voltlab login") + "\n")
		return sb.String()
	}

	sb.WriteString(" " + sectionHeaderStyle.Render(fmt.Sprintf("── MY PROJECTS %d submitted ──", len(m.projects))) + "\n")

	if counts := m.statusSummary(); counts != "" {
		sb.WriteString("   " + metaStyle.Render(counts) + "\n")
	}
	sb.WriteString("\n")

	if m.loading && len(m.projects) == 0 {
		sb.WriteString(" " + dimStyle.Render("loading..."))
		return sb.String()
	}
	if m.failed && len(m.projects) == 0 {
		sb.WriteString(" " + dimStyle.Render("could not load your projects · press r to retry"))
		return sb.String()
	}
	if len(m.projects) == 0 {
		sb.WriteString(" " + dimStyle.Render("no projects yet · press s to submit one"))
		return sb.String()
	}

	for i, p := range m.projects {
		isActive := i == m.cursor

		cursor := "  "
		nameStr := normalStyle.Render(truncStr(p.Title, 40))
		if isActive {
			cursor = accentStyle.Render("▸") + " "
			nameStr = selectedStyle.Render(truncStr(p.Title, 40))
		}

		dateStr := metaStyle.Render(formatTime(p.CreatedAt))

		fmt.Fprintf(&sb, " %s%s  %s  %s\n", cursor, nameStr, statusBadge(p.Status), dateStr)

		if p.Status == domain.StatusRejected && p.RejectionReason != "" {
			sb.WriteString("     " + rejectedStyle.Render(p.RejectionReason) + "\n")
		}
	}

	return truncateToHeight(sb.String(), m.height)
}

// statusSummary renders per-status counts, e.g. "2 approved · 1 pending".
func (m mineModel) statusSummary() string {
	var approved, pending, rejected int
	for _, p := range m.projects {
		switch p.Status {
		case domain.StatusApproved:
			approved++
		case domain.StatusPending:
			pending++
		case domain.StatusRejected:
			rejected++
		}
	}
	var parts []string
	if approved > 0 {
		parts = append(parts, fmt.Sprintf("%d approved", approved))
	}
	if pending > 0 {
		parts = append(parts, fmt.Sprintf("%d pending", pending))
	}
	if rejected > 0 {
		parts = append(parts, fmt.Sprintf("%d rejected", rejected))
	}
	return strings.Join(parts, " · ")
}

// helpKeys returns the help text for the mine tab.
func (m mineModel) helpKeys() string {
	return helpEntry("j/k", "nav") + "  " + helpEntry("enter", "details") + "  " + helpEntry("s", "submit") + "  " + helpEntry("r", "reload") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
}
