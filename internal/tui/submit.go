package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltlabhq/voltlab/pkg/client"
	"github.com/voltlabhq/voltlab/pkg/domain"
)

type submitField int

const (
	fieldTitle submitField = iota
	fieldDescription
	fieldProjectURL
	fieldImageURL
	fieldTags
	numFields
)

type submitModel struct {
	client    *client.Client
	inputs    [numFields]textinput.Model
	focus     submitField
	statusMsg string
	inFlight  bool
	closed    bool
	width     int
}

type projectSubmittedMsg struct {
	project *domain.Project
	err     error
}

func newSubmitModel(c *client.Client) submitModel {
	m := submitModel{client: c}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 200
		ti.Width = 48
		ti.PlaceholderStyle = inputPlaceholderStyle
		m.inputs[i] = ti
	}
	m.inputs[fieldTitle].Placeholder = "what did you build?"
	m.inputs[fieldTitle].CharLimit = 80
	m.inputs[fieldDescription].Placeholder = "tell the story"
	m.inputs[fieldDescription].CharLimit = 600
	m.inputs[fieldProjectURL].Placeholder = "https://..."
	m.inputs[fieldImageURL].Placeholder = "https://... (optional)"
	m.inputs[fieldTags].Placeholder = "hardware, iot (comma-separated)"
	m.inputs[fieldTitle].Focus()
	return m
}

// focusCmd restarts the cursor blink for the focused field.
func (m submitModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m submitModel) Update(msg tea.Msg) (submitModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectSubmittedMsg:
		m.inFlight = false
		if msg.err != nil {
			// Form stays open with values intact; the status bar carries
			// the server message.
			return m, nil
		}
		m.resetForm()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m submitModel) updateKeys(msg tea.KeyMsg) (submitModel, tea.Cmd) {
	m.statusMsg = ""

	switch {
	case key.Matches(msg, formKeys.Cancel):
		m.closed = true
		return m, nil

	case key.Matches(msg, formKeys.Send):
		return m.submit()

	case key.Matches(msg, formKeys.Next), msg.String() == "enter":
		return m.setFocus((m.focus + 1) % numFields)

	case key.Matches(msg, formKeys.Prev):
		return m.setFocus((m.focus - 1 + numFields) % numFields)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m submitModel) setFocus(f submitField) (submitModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
	return m, textinput.Blink
}

func (m submitModel) submit() (submitModel, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}

	title := strings.TrimSpace(m.inputs[fieldTitle].Value())
	description := strings.TrimSpace(m.inputs[fieldDescription].Value())
	projectURL := strings.TrimSpace(m.inputs[fieldProjectURL].Value())
	imageURL := strings.TrimSpace(m.inputs[fieldImageURL].Value())

	if title == "" {
		return m.reject(fieldTitle, "title is required")
	}
	if description == "" {
		return m.reject(fieldDescription, "description is required")
	}
	if projectURL == "" {
		return m.reject(fieldProjectURL, "project url is required")
	}
	if !validURL(projectURL) {
		return m.reject(fieldProjectURL, "project url must be http(s)")
	}
	if imageURL != "" && !validURL(imageURL) {
		return m.reject(fieldImageURL, "image url must be http(s)")
	}

	m.inFlight = true
	sub := domain.Submission{
		Title:       title,
		Description: description,
		ProjectURL:  projectURL,
		ImageURL:    imageURL,
		Tags:        domain.ParseTags(m.inputs[fieldTags].Value()),
	}
	c := m.client
	return m, func() tea.Msg {
		project, err := c.SubmitProject(context.Background(), sub)
		return projectSubmittedMsg{project: project, err: err}
	}
}

// reject focuses the offending field and shows the reason. Nothing is sent.
func (m submitModel) reject(f submitField, reason string) (submitModel, tea.Cmd) {
	m.statusMsg = reason
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
	return m, textinput.Blink
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (m *submitModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = fieldTitle
	m.inputs[fieldTitle].Focus()
	m.statusMsg = ""
}

func (m submitModel) View() string {
	var b strings.Builder

	b.WriteString(" " + accentStyle.Render("SUBMIT A PROJECT") + "  " + dimStyle.Render("reviewed before it appears in the showcase") + "\n\n")

	labels := [numFields]string{"title", "description", "project url", "image url", "tags"}

	for i := submitField(0); i < numFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		fmt.Fprintf(&b, " %s %s %s\n", cursor, style.Render(fmt.Sprintf("%-12s", labels[i])), m.inputs[i].View())
	}

	// Live chip preview under the tags field
	if chips := tagChips(domain.ParseTags(m.inputs[fieldTags].Value())); chips != "" {
		b.WriteString("   " + strings.Repeat(" ", 13) + chips + "\n")
	}

	b.WriteString("\n")
	if m.inFlight {
		b.WriteString(" " + dimStyle.Render("submitting..."))
	} else if m.statusMsg != "" {
		b.WriteString(" " + statusStyle.Render(m.statusMsg))
	}

	return b.String()
}

// helpKeys renders the form bindings' own help text.
func (m submitModel) helpKeys() string {
	parts := make([]string, 0, 4)
	for _, kb := range []key.Binding{formKeys.Next, formKeys.Prev, formKeys.Send, formKeys.Cancel} {
		h := kb.Help()
		parts = append(parts, helpEntry(h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
