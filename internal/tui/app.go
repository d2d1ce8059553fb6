package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/voltlabhq/voltlab/internal/auth"
	"github.com/voltlabhq/voltlab/internal/browser"
	"github.com/voltlabhq/voltlab/pkg/client"
	"github.com/voltlabhq/voltlab/pkg/domain"
)

var appLog = log.With().Str("component", "tui").Logger()

type tab int

const (
	tabShowcase tab = iota
	tabMine
	tabMakers
)

// publicLoadedMsg delivers the public feed fetch. gen identifies the load
// epoch; results from an older epoch are dropped.
type publicLoadedMsg struct {
	projects []domain.Project
	err      error
	gen      int
}

// mineLoadedMsg delivers the own-submissions fetch.
type mineLoadedMsg struct {
	projects []domain.Project
	err      error
	gen      int
}

// showDetailMsg opens the detail overlay. The overlay keeps its own copy of
// the project, so later snapshot replacements cannot retarget it.
type showDetailMsg struct {
	project domain.Project
}

// openSubmitMsg asks the app to open the submission form. Both entry points
// (the 's' key and the makers join CTA) produce it.
type openSubmitMsg struct{}

// App is the root Bubbletea model.
type App struct {
	client  *client.Client
	session auth.Session
	version string

	tab      tab
	showcase showcaseModel
	mine     mineModel
	makers   makersModel

	submit     submitModel
	submitOpen bool
	detail     detailModel
	detailOpen bool
	helpOpen   bool
	helpCursor int

	toast      string
	updateHint string

	// Loader state. pending counts in-flight fetches; every fetch delivers
	// exactly one message, so pending always drains back to zero. gen is
	// bumped on reload and loadCancel kills the superseded fetches.
	pending    int
	gen        int
	loadCtx    context.Context
	loadCancel context.CancelFunc

	width  int
	height int
	frame  int // logo shimmer animation frame
}

// NewApp creates the TUI application. The session is read-only here; login
// and logout happen in the CLI.
func NewApp(c *client.Client, sess auth.Session, version string) App {
	ctx, cancel := context.WithCancel(context.Background())
	a := App{
		client:     c,
		session:    sess,
		version:    version,
		showcase:   newShowcaseModel(),
		mine:       newMineModel(sess.LoggedIn()),
		makers:     newMakersModel(),
		submit:     newSubmitModel(c),
		gen:        1,
		loadCtx:    ctx,
		loadCancel: cancel,
		pending:    1,
	}
	if sess.LoggedIn() {
		a.pending = 2
	}
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		fetchPublic(a.loadCtx, a.client, a.gen),
		shimmerTickCmd(),
		checkVersion(a.version),
	}
	if a.session.LoggedIn() {
		cmds = append(cmds, fetchMine(a.loadCtx, a.client, a.gen))
	}
	return tea.Batch(cmds...)
}

// fetchPublic loads the public feed. It always delivers its message, success
// or failure, so the pending counter cannot get stuck.
func fetchPublic(ctx context.Context, c *client.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		projects, err := c.PublicProjects(ctx)
		return publicLoadedMsg{projects: projects, err: err, gen: gen}
	}
}

func fetchMine(ctx context.Context, c *client.Client, gen int) tea.Cmd {
	return func() tea.Msg {
		projects, err := c.MyProjects(ctx)
		return mineLoadedMsg{projects: projects, err: err, gen: gen}
	}
}

// reloadAll cancels any in-flight fetches and starts a fresh load pair under
// a new generation.
func (a *App) reloadAll() tea.Cmd {
	a.loadCancel()
	a.gen++
	a.loadCtx, a.loadCancel = context.WithCancel(context.Background())

	a.pending = 1
	a.showcase.loading = true
	cmds := []tea.Cmd{fetchPublic(a.loadCtx, a.client, a.gen)}
	if a.session.LoggedIn() {
		a.pending = 2
		a.mine.loading = true
		cmds = append(cmds, fetchMine(a.loadCtx, a.client, a.gen))
	}
	return tea.Batch(cmds...)
}

// refreshMine re-fetches only the own-submissions snapshot, within the
// current load generation. Used after a successful submission; the public
// feed does not change until a reviewer approves.
func (a *App) refreshMine() tea.Cmd {
	a.pending++
	return fetchMine(a.loadCtx, a.client, a.gen)
}

// handleOpenSubmit opens the submission form, or nags about login when there
// is no session. Both entry points share this precondition.
func (a *App) handleOpenSubmit() tea.Cmd {
	if !a.session.LoggedIn() {
		appLog.Info().Msg("submit blocked: not logged in")
		a.toast = "sign in to submit · run: voltlab login"
		return nil
	}
	a.submitOpen = true
	return a.submit.focusCmd()
}

// userMessage extracts the server-provided error text when there is one.
// Transport failures collapse to a generic line; the log keeps the detail.
func userMessage(err error) string {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return "network error · try again"
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + status(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		a.showcase, _ = a.showcase.Update(bodyMsg)
		a.mine, _ = a.mine.Update(bodyMsg)
		a.makers, _ = a.makers.Update(bodyMsg)
		a.submit, _ = a.submit.Update(bodyMsg)
		a.detail, _ = a.detail.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case versionCheckMsg:
		if msg.hasUpdate {
			a.updateHint = fmt.Sprintf("voltlab %s is out · github.com/voltlabhq/voltlab/releases", msg.latestVersion)
		}
		return a, nil

	case publicLoadedMsg:
		if msg.gen != a.gen {
			return a, nil // stale result from a superseded load
		}
		a.pending--
		if msg.err != nil {
			appLog.Error().Err(msg.err).Msg("public feed load failed")
			a.toast = userMessage(msg.err)
		} else {
			appLog.Debug().Int("projects", len(msg.projects)).Msg("public feed loaded")
		}
		a.showcase, _ = a.showcase.Update(msg)
		return a, nil

	case mineLoadedMsg:
		if msg.gen != a.gen {
			return a, nil
		}
		a.pending--
		if msg.err != nil {
			appLog.Error().Err(msg.err).Msg("own projects load failed")
			a.toast = userMessage(msg.err)
		} else {
			appLog.Debug().Int("projects", len(msg.projects)).Msg("own projects loaded")
		}
		a.mine, _ = a.mine.Update(msg)
		return a, nil

	case projectSubmittedMsg:
		a.submit, _ = a.submit.Update(msg)
		if msg.err != nil {
			appLog.Error().Err(msg.err).Msg("submission failed")
			a.toast = userMessage(msg.err)
			return a, nil // form stays open with values intact
		}
		appLog.Info().Str("title", msg.project.Title).Msg("project submitted")
		a.toast = "submitted for review"
		a.submitOpen = false
		return a, a.refreshMine()

	case showDetailMsg:
		a.detail = newDetailModel(msg.project, a.width)
		a.detailOpen = true
		return a, nil

	case openSubmitMsg:
		return a, a.handleOpenSubmit()

	case tea.KeyMsg:
		// Any keypress clears the transient status message.
		a.toast = ""

		if msg.String() == "ctrl+c" {
			a.loadCancel()
			return a, tea.Quit
		}

		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "?", "esc":
				a.helpOpen = false
			case "q":
				a.loadCancel()
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.Open(item.url) //nolint:errcheck // best-effort browser open
				}
			}
			return a, nil
		}

		// Detail overlay captures all keys when open
		if a.detailOpen {
			var cmd tea.Cmd
			a.detail, cmd = a.detail.Update(msg)
			if a.detail.closed {
				a.detailOpen = false
			}
			return a, cmd
		}

		// Submission form captures all keys when open
		if a.submitOpen {
			var cmd tea.Cmd
			a.submit, cmd = a.submit.Update(msg)
			if a.submit.closed {
				a.submit.closed = false
				a.submitOpen = false
			}
			return a, cmd
		}

		// Global keys (only when not typing in the showcase search)
		if !a.isEditing() {
			switch msg.String() {
			case "q":
				a.loadCancel()
				return a, tea.Quit
			case "?":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "r":
				appLog.Debug().Int("gen", a.gen+1).Msg("manual reload")
				return a, a.reloadAll()
			case "s":
				return a, a.handleOpenSubmit()
			case "tab":
				a.cycleTab(1)
				return a, nil
			case "shift+tab":
				a.cycleTab(-1)
				return a, nil
			case "1", "2", "3":
				tabs := a.visibleTabs()
				if idx := int(msg.String()[0] - '1'); idx < len(tabs) {
					a.tab = tabs[idx]
				}
				return a, nil
			}
		}

		var cmd tea.Cmd
		switch a.tab {
		case tabShowcase:
			a.showcase, cmd = a.showcase.Update(msg)
		case tabMine:
			a.mine, cmd = a.mine.Update(msg)
		case tabMakers:
			a.makers, cmd = a.makers.Update(msg)
		}
		return a, cmd
	}

	// Route remaining messages (input blinks, overlay results) to whichever
	// surface is on top.
	var cmd tea.Cmd
	switch {
	case a.detailOpen:
		a.detail, cmd = a.detail.Update(msg)
	case a.submitOpen:
		a.submit, cmd = a.submit.Update(msg)
	case a.tab == tabShowcase:
		a.showcase, cmd = a.showcase.Update(msg)
	case a.tab == tabMine:
		a.mine, cmd = a.mine.Update(msg)
	case a.tab == tabMakers:
		a.makers, cmd = a.makers.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	return a.tab == tabShowcase && a.showcase.searching
}

// visibleTabs returns the tab strip in display order. Mine only exists for
// a logged-in session.
func (a App) visibleTabs() []tab {
	if a.session.LoggedIn() {
		return []tab{tabShowcase, tabMine, tabMakers}
	}
	return []tab{tabShowcase, tabMakers}
}

func tabName(t tab) string {
	switch t {
	case tabShowcase:
		return "Showcase"
	case tabMine:
		return "Mine"
	default:
		return "Makers"
	}
}

func (a *App) cycleTab(delta int) {
	tabs := a.visibleTabs()
	cur := 0
	for i, t := range tabs {
		if t == a.tab {
			cur = i
			break
		}
	}
	n := len(tabs)
	a.tab = tabs[(cur+delta+n)%n]
}

func (a App) View() string {
	// Header: centered wordmark. Animated on the makers tab, static elsewhere.
	logo := renderWordmark()
	if a.tab == tabMakers && !a.helpOpen && !a.detailOpen && !a.submitOpen {
		logo = renderShimmerLogo(a.frame)
	}
	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	// Identity line below the wordmark
	meta := a.metaLine()
	if meta != "" {
		metaWidth := lipgloss.Width(meta)
		metaPad := (a.width - metaWidth) / 2
		if metaPad < 0 {
			metaPad = 0
		}
		header += "\n" + strings.Repeat(" ", metaPad) + meta
	} else {
		header += "\n"
	}

	// Tab bar: equal-width columns spread across the terminal
	tabs := a.visibleTabs()
	colWidth := 0
	if len(tabs) > 0 && a.width > 0 {
		colWidth = a.width / len(tabs)
	}
	var tabBar strings.Builder
	for i, t := range tabs {
		var label string
		if t == a.tab {
			label = accentStyle.Render(fmt.Sprintf("%d", i+1)) + " " + selectedStyle.Underline(true).Render(tabName(t))
		} else {
			label = metaStyle.Render(fmt.Sprintf("%d", i+1)) + " " + dimStyle.Render(tabName(t))
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	// Body: overlays take precedence over the active tab
	var body string
	switch {
	case a.helpOpen:
		body = helpView(a.helpCursor)
	case a.detailOpen:
		body = a.detail.View()
	case a.submitOpen:
		body = a.submit.View()
	case a.tab == tabShowcase:
		body = a.showcase.View()
	case a.tab == tabMine:
		body = a.mine.View()
	default:
		body = a.makers.View()
	}

	// Chrome: header(2) + tabs(1) + status(1) + help(1) = 5 lines + body
	chrome := 5
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, tabBar.String(), body, a.statusLine(), a.helpLine())
}

// metaLine is the identity strip under the wordmark.
func (a App) metaLine() string {
	if !a.session.LoggedIn() {
		return metaStyle.Render("browsing as guest · voltlab login to submit")
	}
	parts := []string{"signed in"}
	if s := a.mine.statusSummary(); s != "" {
		parts = append(parts, s)
	}
	return metaStyle.Render(strings.Join(parts, " · "))
}

// statusLine renders the one-line transient status bar: a toast when one is
// up, otherwise load progress, otherwise the release hint.
func (a App) statusLine() string {
	switch {
	case a.toast != "":
		return " " + statusStyle.Render(a.toast)
	case a.pending > 0:
		return " " + dimStyle.Render("loading…")
	case a.updateHint != "":
		return " " + metaStyle.Render(a.updateHint)
	default:
		return ""
	}
}

func (a App) helpLine() string {
	switch {
	case a.helpOpen:
		return " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	case a.detailOpen:
		return " " + a.detail.helpKeys()
	case a.submitOpen:
		return " " + a.submit.helpKeys()
	}

	tabsHint := helpEntry(fmt.Sprintf("1-%d", len(a.visibleTabs())), "tabs")
	switch a.tab {
	case tabShowcase:
		return " " + tabsHint + "  " + a.showcase.helpKeys()
	case tabMine:
		return " " + tabsHint + "  " + a.mine.helpKeys()
	default:
		return " " + tabsHint + "  " + a.makers.helpKeys()
	}
}
