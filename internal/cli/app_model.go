package cli

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/solutionspm/onboard/internal/cli/formatter"
	"github.com/solutionspm/onboard/internal/domain"
)

// appModel is the root bubbletea Model. It owns the router state, the
// sidebar (nav menu + summary stats), and the toast stack. Exactly one
// page view is active at a time; any page can transition to any other.
type appModel struct {
	state  *SharedState
	vs     viewState
	active View

	// drawerOpen forces the sidebar visible on narrow terminals. Any
	// navigation closes it.
	drawerOpen bool

	toasts      []toast
	nextToastID int

	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}
	m.vs = viewState{page: PageDashboard, gen: uuid.New()}
	m.active = newPageView(state, m.vs)
	return m
}

// transition is the single mutation path for router state. It sets the
// page fields, mints a fresh navigation generation, closes the drawer,
// replaces the active view, and kicks off its data fetch plus a sidebar
// summary refresh.
func (m *appModel) transition(page PageID, detail int64) tea.Cmd {
	m.vs = viewState{page: page, detail: detail, gen: uuid.New()}
	m.drawerOpen = false
	m.active = newPageView(m.state, m.vs)
	return tea.Batch(m.active.Init(), m.summaryCmd())
}

// rerender rebuilds the active page without changing navigation state:
// the total-replacement refresh used after mutations.
func (m *appModel) rerender() tea.Cmd {
	m.active = newPageView(m.state, m.vs)
	return m.active.Init()
}

// newPageView dispatches a page id to its view constructor.
func newPageView(state *SharedState, vs viewState) View {
	switch vs.page {
	case PageConsultants:
		return newConsultantListView(state, vs.gen)
	case PageDetail:
		return newDetailView(state, vs.gen, vs.detail)
	case PageNew:
		return newNewConsultantView(state, vs.gen)
	case PageEmails:
		return newEmailsView(state, vs.gen)
	case PageReports:
		return newReportsView(state, vs.gen)
	default:
		return newDashboardView(state, vs.gen)
	}
}

// summaryLoadedMsg delivers the sidebar summary. Failures are silent: the
// sidebar keeps its last known counts.
type summaryLoadedMsg struct {
	summary domain.Summary
	err     error
}

func (m *appModel) summaryCmd() tea.Cmd {
	client := m.state.App.Client
	return func() tea.Msg {
		s, err := client.Summary(context.Background())
		return summaryLoadedMsg{summary: s, err: err}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.active.Init(), m.summaryCmd())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		updated, cmd := m.active.Update(msg)
		m.active = updated.(View)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case navigateMsg:
		return m, m.transition(msg.page, msg.detail)

	case summaryRefreshMsg:
		return m, m.summaryCmd()

	case summaryLoadedMsg:
		if msg.err == nil {
			s := msg.summary
			m.state.Summary = &s
		}
		return m, nil

	case toastMsg:
		m.nextToastID++
		t := toast{id: m.nextToastID, kind: msg.kind, text: msg.text}
		m.toasts = append(m.toasts, t)
		return m, expireToast(t.id, m.state.App.Config.ToastDuration())

	case toastExpireMsg:
		for i, t := range m.toasts {
			if t.id == msg.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case actionDoneMsg:
		return m.handleActionDone(msg)
	}

	// Fetch results: drop anything from a stale navigation generation, and
	// surface load errors as a single error toast. The view still receives
	// the message so it can leave its loading placeholder.
	if lr, ok := msg.(generationed); ok {
		if lr.generation() != m.vs.gen {
			return m, nil
		}
		var cmds []tea.Cmd
		if err := lr.loadErr(); err != nil {
			cmds = append(cmds, showErrorToast(err.Error()))
		}
		updated, cmd := m.active.Update(msg)
		m.active = updated.(View)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

// handleActionDone applies the mutation protocol: toast the outcome, and on
// success re-render the current detail page and refresh the sidebar summary
// where the action calls for it. Failed actions toast only.
func (m appModel) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, showErrorToast(msg.err.Error())
	}

	var cmds []tea.Cmd
	if msg.toastText != "" {
		cmds = append(cmds, showToast(msg.toastText))
	}
	for _, info := range msg.infoTexts {
		cmds = append(cmds, showInfoToast(info))
	}

	if msg.navigateToDetail != nil {
		cmds = append(cmds, navigateDetail(*msg.navigateToDetail))
		if msg.refreshSummary {
			cmds = append(cmds, refreshSummary())
		}
		return m, tea.Batch(cmds...)
	}

	// A result arriving after the user navigated elsewhere keeps its toast
	// but must not touch the current page.
	if msg.gen == m.vs.gen {
		if msg.refreshDetail && m.vs.page == PageDetail {
			cmds = append(cmds, m.rerender())
		}
		if msg.refreshSummary {
			cmds = append(cmds, refreshSummary())
		}
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Views with a focused input or form in flight own the keyboard.
	if viewCapturesInput(m.active) {
		updated, cmd := m.active.Update(msg)
		m.active = updated.(View)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "m":
		m.drawerOpen = !m.drawerOpen
		return m, nil

	case "R":
		return m, m.transition(m.vs.page, m.vs.detail)

	case "esc":
		// Fixed back targets, not a history stack.
		if m.vs.page == PageDetail || m.vs.page == PageNew {
			return m, m.transition(PageConsultants, 0)
		}
		return m, nil
	}

	for _, e := range navEntries {
		if msg.String() == e.key {
			return m, m.transition(e.page, 0)
		}
	}

	updated, cmd := m.active.Update(msg)
	m.active = updated.(View)
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	content := m.active.View()
	if m.sidebarVisible() {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.renderSidebar())
		divider := formatter.StyleDim.Render("│")
		contentWidth := m.state.Width - sidebarWidth - 3
		if contentWidth < 20 {
			contentWidth = 20
		}
		body := lipgloss.JoinHorizontal(lipgloss.Top,
			sidebar,
			" "+divider+" ",
			lipgloss.NewStyle().Width(contentWidth).Render(content),
		)
		sections = append(sections, body)
	} else {
		sections = append(sections, content)
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

const sidebarWidth = 22

// sidebarVisible reports whether the nav sidebar renders: always on wide
// terminals, on demand (drawer) on narrow ones.
func (m appModel) sidebarVisible() bool {
	return m.state.Width >= 80 || m.drawerOpen
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("onboard")
	crumb := " " + formatter.Dim("›") + " " + formatter.Dim(m.active.Title())
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + crumb + "\n" + sep
}

func (m *appModel) renderSidebar() string {
	var b strings.Builder
	b.WriteString("\n")

	activeEntry := navHighlight(m.vs.page)
	for _, e := range navEntries {
		if e.page == activeEntry {
			b.WriteString(formatter.StyleHeader.Render("▸ "+e.label) + "\n")
		} else {
			b.WriteString("  " + formatter.StyleFg.Render(e.label) + "\n")
		}
	}

	b.WriteString("\n" + formatter.Header("Pipeline") + "\n")
	if s := m.state.Summary; s != nil {
		b.WriteString(statRow("Total", s.Total, formatter.StyleFg))
		b.WriteString(statRow("Pending", s.Pending, formatter.StyleYellow))
		b.WriteString(statRow("In Progress", s.InProgress, formatter.StyleBlue))
		b.WriteString(statRow("Complete", s.Complete, formatter.StyleGreen))
	} else {
		b.WriteString(formatter.Dim("…") + "\n")
	}

	return b.String()
}

func statRow(label string, val int, style lipgloss.Style) string {
	pad := 13 - len(label)
	if pad < 1 {
		pad = 1
	}
	return formatter.Dim(label) + strings.Repeat(" ", pad) + style.Render(strconv.Itoa(val)) + "\n"
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.active.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	hints = append(hints, formatter.Dim("1-5: pages"))
	if m.vs.page == PageDetail || m.vs.page == PageNew {
		hints = append(hints, formatter.Dim("esc: back"))
	}
	hints = append(hints, formatter.Dim("q: quit"))

	bar := strings.Join(hints, "  ")

	// Toasts sit on their own line above the hints.
	var toastLine string
	if len(m.toasts) > 0 {
		parts := make([]string, 0, len(m.toasts))
		for _, t := range m.toasts {
			parts = append(parts, t.render())
		}
		toastLine = "  " + strings.Join(parts, "  ") + "\n"
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return toastLine + sep + "\n" + bar
}
