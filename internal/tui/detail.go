package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voltlabhq/voltlab/internal/browser"
	"github.com/voltlabhq/voltlab/pkg/domain"
)

var detailCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Background(surfaceColor).
	Padding(1, 2)

// detailModel holds its own copy of the project, so a reload that replaces
// the list underneath does not change what the open card shows.
type detailModel struct {
	project   domain.Project
	statusMsg string
	closed    bool
	width     int
}

type openResultMsg struct{ err error }

type copyResultMsg struct{ err error }

func newDetailModel(p domain.Project, width int) detailModel {
	return detailModel{project: p, width: width}
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case openResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("open failed: %v", msg.err)
		} else {
			m.statusMsg = "opened in browser"
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "link copied"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "esc", "q":
			m.closed = true
		case "o":
			u := m.project.ProjectURL
			return m, func() tea.Msg {
				return openResultMsg{err: browser.Open(u)}
			}
		case "c":
			u := m.project.ProjectURL
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(u)}
			}
		}
		return m, nil
	}
	return m, nil
}

func (m detailModel) View() string {
	p := m.project

	cardWidth := min(64, m.width-4)
	if cardWidth < 30 {
		cardWidth = 30
	}
	inner := cardWidth - 4

	var b strings.Builder
	b.WriteString(selectedStyle.Render(truncStr(p.Title, inner)) + "\n")

	meta := metaStyle.Render(formatTime(p.CreatedAt))
	if badge := statusBadge(p.Status); badge != "" {
		meta = badge + "  " + meta
	}
	b.WriteString(meta + "\n")

	if chips := tagChips(p.Tags); chips != "" {
		b.WriteString(chips + "\n")
	}

	b.WriteString(dimStyle.Render(strings.Repeat("─", inner)) + "\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Render(p.Description) + "\n\n")

	b.WriteString(accentStyle.Render(truncStr(p.ProjectURL, inner)) + "\n")
	if p.ImageURL != "" {
		b.WriteString(metaStyle.Render(truncStr("image: "+p.ImageURL, inner)) + "\n")
	}

	if p.Status == domain.StatusRejected && p.RejectionReason != "" {
		b.WriteString("\n" + rejectedStyle.Width(inner).Render("reviewer: "+p.RejectionReason) + "\n")
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg) + "\n")
	}
	b.WriteString(helpEntry("o", "open") + "  " + helpEntry("c", "copy link") + "  " + helpEntry("esc", "close"))

	card := detailCardStyle.Width(cardWidth).Render(b.String())

	if pad := (m.width - lipgloss.Width(card)) / 2; pad > 0 {
		prefix := strings.Repeat(" ", pad)
		lines := strings.Split(card, "\n")
		for i, line := range lines {
			lines[i] = prefix + line
		}
		card = strings.Join(lines, "\n")
	}
	return card
}

func (m detailModel) helpKeys() string {
	return helpEntry("o", "open") + "  " + helpEntry("c", "copy link") + "  " + helpEntry("esc", "close")
}
