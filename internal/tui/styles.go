package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the VOLTLAB wordmark.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "V O L T L A B" as an endless flowing wave of warm light.
// Deep copper (#3a260c) -> bright amber (#fbbf24). No hue drift.
// Letters are spaced apart (letter-spacing) and rendered without a background box.
func renderShimmerLogo(frame int) string {
	const text = "VOLTLAB"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// Flowing phase — one smooth wave advancing through the text
		phase := t*0.1 - x*3.0

		// Gentle speed modulation
		phase += math.Sin(t*0.023) * 2.0

		// Primary brightness wave
		b := math.Sin(phase)*0.5 + 0.5

		// Soft shaping
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Continuous RGB interpolation: deep copper -> bright amber
		// Deep:   (58, 38, 12)   #3a260c
		// Bright: (251, 191, 36) #fbbf24
		r := clampByte(58 + b*(251-58))
		g := clampByte(38 + b*(191-38))
		bl := clampByte(12 + b*(36-12))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		// Letter spacing — two spaces between each letter
		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// renderWordmark is the static wordmark used outside the makers tab, where
// the shimmer animation would be a distraction.
func renderWordmark() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fbbf24")).
		Render("V O L T L A B")
}

var (
	// Base styles — voltlab neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Search / accent
	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	// Accent / action styles
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b"))

	// Moderation status styles
	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	approvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	rejectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	// Surface colors
	borderColor  = lipgloss.Color("#1e1e2a")
	surfaceColor = lipgloss.Color("#111118")

	// Selected row background (matches mockup .vl-row.selected)
	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	// Category colors — from mockup CSS
	categoryColors = map[string]lipgloss.Color{
		"hardware":  lipgloss.Color("#f59e0b"),
		"software":  lipgloss.Color("#60a0e0"),
		"iot":       lipgloss.Color("#3ecce4"),
		"robotics":  lipgloss.Color("#c084e0"),
		"wearables": lipgloss.Color("#e06060"),
		"audio":     lipgloss.Color("#b080d0"),
		"tools":     lipgloss.Color("#43e88c"),
	}

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c8a84c")).
			Italic(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))
)

// CategoryStyle returns a bold style colored for the given category or tag.
func CategoryStyle(category string) lipgloss.Style {
	if c, ok := categoryColors[strings.ToLower(category)]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// tagChips renders a tag list as colored chips, e.g. "hardware · iot".
func tagChips(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, CategoryStyle(t).Render(t))
	}
	return strings.Join(parts, metaStyle.Render(" · "))
}

// statusBadge renders a moderation status as a colored badge, e.g. "[pending]".
// Public-feed projects carry no status and get an empty badge.
func statusBadge(status string) string {
	switch status {
	case "pending":
		return pendingStyle.Render("[pending]")
	case "approved":
		return approvedStyle.Render("[approved]")
	case "rejected":
		return rejectedStyle.Render("[rejected]")
	default:
		return ""
	}
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Website", "voltlab.dev", "https://voltlab.dev"},
	{"Showcase", "voltlab.dev/community", "https://voltlab.dev/community"},
	{"Guidelines", "voltlab.dev/guidelines", "https://voltlab.dev/guidelines"},
	{"Privacy Policy", "voltlab.dev/privacy", "https://voltlab.dev/privacy"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fbbf24")).
		Bold(true).
		Render("V O L T L A B")

	quote := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render(`"Build it, show it, let the magic smoke stay inside."`)

	attrib := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D4A017")).
		Render("— the makers")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fbbf24"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"voltlab", "Browse the showcase (interactive TUI)"},
		{"voltlab login", "Authenticate in your browser"},
		{"voltlab logout", "Clear your session"},
		{"voltlab whoami", "Show the logged-in account"},
		{"voltlab version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n  %s\n  %s\n\n", title, quote, attrib)

	// Commands section
	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	// Links section (selectable)
	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = selectedStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
