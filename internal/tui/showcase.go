package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voltlabhq/voltlab/pkg/domain"
)

type showcaseModel struct {
	projects  []domain.Project
	cursor    int
	search    textinput.Model
	searching bool // true when typing in search
	category  string
	loading   bool
	failed    bool
	width     int
	height    int
}

func newShowcaseModel() showcaseModel {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.Prompt = "/ "
	ti.PromptStyle = searchStyle
	ti.TextStyle = searchStyle
	ti.PlaceholderStyle = inputPlaceholderStyle
	ti.CharLimit = 64
	ti.Width = 40
	return showcaseModel{
		search:   ti,
		category: domain.Categories[0],
		loading:  true,
	}
}

// filterProjects returns the projects visible under the given query and
// category. Both conditions must hold: the query is a case-insensitive
// substring match against title and description (empty matches all), and the
// category must appear among the project's tags ("all" passes everything).
func filterProjects(projects []domain.Project, query, category string) []domain.Project {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Project
	for _, p := range projects {
		if !matchesQuery(p, q) || !matchesCategory(p, category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p domain.Project, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func matchesCategory(p domain.Project, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	return p.HasTag(category)
}

// nextCategory steps through domain.Categories by delta, wrapping at both ends.
func nextCategory(current string, delta int) string {
	idx := 0
	for i, c := range domain.Categories {
		if c == current {
			idx = i
			break
		}
	}
	n := len(domain.Categories)
	return domain.Categories[(idx+delta+n)%n]
}

func (m showcaseModel) visibleProjects() []domain.Project {
	return filterProjects(m.projects, m.search.Value(), m.category)
}

func (m *showcaseModel) clampCursor() {
	n := len(m.visibleProjects())
	if n == 0 {
		m.cursor = 0
	} else if m.cursor >= n {
		m.cursor = n - 1
	}
}

func (m showcaseModel) Update(msg tea.Msg) (showcaseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case publicLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.failed = true
			return m, nil
		}
		m.failed = false
		m.projects = msg.projects
		m.clampCursor()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m showcaseModel) updateSearch(msg tea.KeyMsg) (showcaseModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
		m.clampCursor()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.clampCursor()
	return m, cmd
}

func (m showcaseModel) updateList(msg tea.KeyMsg) (showcaseModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.visibleProjects())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		vis := m.visibleProjects()
		if len(vis) > 0 && m.cursor < len(vis) {
			p := vis[m.cursor]
			return m, func() tea.Msg { return showDetailMsg{project: p} }
		}
	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "t", "right":
		m.category = nextCategory(m.category, 1)
		m.cursor = 0
	case "left":
		m.category = nextCategory(m.category, -1)
		m.cursor = 0
	}
	return m, nil
}

func (m showcaseModel) View() string {
	var b strings.Builder

	// Header line (hide tagline at narrow widths)
	if m.width >= 50 {
		b.WriteString(" " + accentStyle.Render("SHOWCASE") + "  " + taglineStyle.Render("What the community is building.") + "\n")
	} else {
		b.WriteString(" " + accentStyle.Render("SHOWCASE") + "\n")
	}

	// Search line
	b.WriteString(" " + m.search.View() + "\n")

	// Category strip
	b.WriteString(m.viewCategoryStrip())

	// Separator
	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.loading && len(m.projects) == 0 {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}
	if m.failed && len(m.projects) == 0 {
		b.WriteString(" " + dimStyle.Render("could not load the showcase · press r to retry"))
		return b.String()
	}
	if len(m.projects) == 0 {
		b.WriteString(" " + dimStyle.Render("no projects yet"))
		return b.String()
	}

	vis := m.visibleProjects()
	if len(vis) == 0 {
		b.WriteString(" " + dimStyle.Render("no projects match"))
		return b.String()
	}

	return b.String() + m.viewProjectList(vis)
}

func (m showcaseModel) viewCategoryStrip() string {
	var b strings.Builder
	b.WriteString(" ")
	usedWidth := 1 // leading space
	for i, cat := range domain.Categories {
		sep := "  "
		if i == 0 {
			sep = ""
		}
		needed := len(sep) + len(cat)
		if usedWidth+needed+4 > m.width {
			break // don't overflow
		}
		b.WriteString(sep)
		if cat == m.category {
			style := CategoryStyle(cat)
			if cat == "all" {
				style = selectedStyle
			}
			b.WriteString(style.Render(cat))
		} else {
			b.WriteString(dimStyle.Render(cat))
		}
		usedWidth += needed
	}
	b.WriteString("  " + helpKeyStyle.Render("t"))
	b.WriteString("\n")
	return b.String()
}

func (m showcaseModel) viewProjectList(vis []domain.Project) string {
	var b strings.Builder

	viewChrome := 9 // editorial + search + category strip + separator + preview chrome
	available := m.height - viewChrome
	if available < 6 {
		available = 6
	}
	maxVisible := available * 2 / 5
	if maxVisible < 3 {
		maxVisible = 3
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(vis) && i < start+maxVisible; i++ {
		p := vis[i]

		// Cursor indicator (▸ or space)
		cursor := "  "
		titleStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			titleStyle = normalStyle.Bold(true)
		}

		// Dot in the color of the first tag
		firstTag := ""
		if len(p.Tags) > 0 {
			firstTag = p.Tags[0]
		}
		dot := CategoryStyle(firstTag).Render("●") + " "

		// Right-side columns: responsive based on width.
		// Wide (>=70): first tag (10) + date (8) + gaps
		// Narrow (<70): date only
		showTag := m.width >= 70

		var rightParts []string
		rightWidth := 0
		if showTag {
			tagCol := strings.Repeat(" ", 10)
			if firstTag != "" {
				tagCol = CategoryStyle(firstTag).Render(fmt.Sprintf("%-10s", truncStr(firstTag, 10)))
			}
			rightParts = append(rightParts, tagCol)
			rightWidth += 11 // 10 + gap
		}
		rightParts = append(rightParts, metaStyle.Render(fmt.Sprintf("%8s", formatTime(p.CreatedAt))))
		rightWidth += 9

		// Title fills remaining space
		titleWidth := m.width - 4 - rightWidth // 4 = cursor(2) + dot(2)
		if titleWidth < 10 {
			titleWidth = 10
		}
		title := strings.ReplaceAll(p.Title, "\n", " ")
		title = truncStr(title, titleWidth)
		titlePadded := fmt.Sprintf("%-*s", titleWidth, title)

		line := cursor + dot + titleStyle.Render(titlePadded) + " " + strings.Join(rightParts, " ")
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	// Preview for the selected project (bottom portion)
	if m.cursor < len(vis) {
		p := vis[m.cursor]
		b.WriteString("\n")

		header := " " + selectedStyle.Render(truncStr(p.Title, 60))
		if chips := tagChips(p.Tags); chips != "" {
			header += "  " + chips
		}
		b.WriteString(header + "\n")

		detailWidth := m.width - 4
		if detailWidth < 40 {
			detailWidth = 40
		}
		maxDetailLines := available - maxVisible - 2
		if maxDetailLines < 2 {
			maxDetailLines = 2
		}
		wrapped := lipgloss.NewStyle().Width(detailWidth).Render(p.Description)
		lines := strings.Split(wrapped, "\n")
		truncated := false
		if len(lines) > maxDetailLines {
			lines = lines[:maxDetailLines]
			truncated = true
		}
		for _, line := range lines {
			b.WriteString(" " + normalStyle.Render(line) + "\n")
		}
		if truncated {
			b.WriteString(" " + metaStyle.Render("… more (enter for details)") + "\n")
		}
		b.WriteString(" " + metaStyle.Render(p.ProjectURL) + "\n")
	}

	return truncateToHeight(b.String(), m.height)
}

// helpKeys returns context-sensitive help text for the showcase tab.
func (m showcaseModel) helpKeys() string {
	if m.searching {
		return helpEntry("enter", "apply") + "  " + helpEntry("esc", "clear")
	}
	return helpEntry("j/k", "nav") + "  " + helpEntry("/", "search") + "  " + helpEntry("t", "category") + "  " + helpEntry("enter", "details") + "  " + helpEntry("s", "submit") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
}
