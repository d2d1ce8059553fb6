package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// makerBio is a static community member blurb shown on the Makers tab.
type makerBio struct {
	name      string
	specialty string
	line      string
}

var makerBios = []makerBio{
	{"June Park", "hardware", "four-layer boards before breakfast."},
	{"Alvar Reyes", "software", "writes firmware that reads like a datasheet."},
	{"Tilda Brandt", "wearables", "sews microcontrollers into everything she owns."},
	{"Sam Okafor", "audio", "builds synths from salvaged arcade parts."},
}

// communityStats are the static counters shown above the maker list.
var communityStats = struct {
	members   int
	projects  int
	countries int
}{2400, 870, 52}

type makersModel struct {
	width  int
	height int
}

func newMakersModel() makersModel {
	return makersModel{}
}

func (m makersModel) Update(msg tea.Msg) (makersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m, func() tea.Msg { return openSubmitMsg{} }
		}
	}
	return m, nil
}

func (m makersModel) View() string {
	var sb strings.Builder

	// Stats legend — colored dot + dim label, centered like the logo
	var legend strings.Builder
	legend.WriteString(accentStyle.Render("●") + " " + dimStyle.Render(formatNum(communityStats.members)+" makers"))
	legend.WriteString("   ")
	legend.WriteString(approvedStyle.Render("●") + " " + dimStyle.Render(formatNum(communityStats.projects)+" projects"))
	legend.WriteString("   ")
	legend.WriteString(CategoryStyle("iot").Render("●") + " " + dimStyle.Render(fmt.Sprintf("%d countries", communityStats.countries)))
	legendStr := legend.String()
	legendWidth := lipgloss.Width(legendStr)
	legendPad := (m.width - legendWidth) / 2
	if legendPad < 0 {
		legendPad = 0
	}
	sb.WriteString(strings.Repeat(" ", legendPad) + legendStr + "\n")

	// Separator after legend (matches mockup border-bottom)
	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	sb.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	sb.WriteString(" " + taglineStyle.Render("A community of people who solder.") + "\n\n")

	sb.WriteString(" " + sectionHeaderStyle.Render("── MAKERS ──") + "\n")
	for _, bio := range makerBios {
		sb.WriteString("   " + selectedStyle.Render(bio.name) + "  " + CategoryStyle(bio.specialty).Render(bio.specialty) + "\n")
		sb.WriteString("     " + dimStyle.Render(bio.line) + "\n")
	}

	sb.WriteString("\n " + sectionHeaderStyle.Render("── JOIN ──") + "\n")
	sb.WriteString("   " + accentStyle.Render("▸ share your build") + "\n")
	sb.WriteString("     " + dimStyle.Render("press enter to submit a project to the showcase") + "\n")

	return truncateToHeight(sb.String(), m.height)
}

// helpKeys returns the help text for the makers tab.
func (m makersModel) helpKeys() string {
	return helpEntry("enter", "submit") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
}
