package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/solutionspm/onboard/internal/cli/formatter"
	"github.com/solutionspm/onboard/internal/domain"
)

// ── data types ───────────────────────────────────────────────────────────────

// dashboardData holds the loaded data for the dashboard view.
type dashboardData struct {
	summary     domain.Summary
	consultants []domain.Consultant
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that the joined summary + consultant fetch is
// done.
type dashboardLoadedMsg struct {
	loadResult
	data dashboardData
}

// dashboardFeedMsg delivers the merged recent-activity feed. It never
// carries an error: per-consultant fetch failures are skipped silently and
// the feed is whatever survived.
type dashboardFeedMsg struct {
	loadResult
	feed []domain.Activity
}

// ── view ─────────────────────────────────────────────────────────────────────

const (
	dashRecentConsultants = 5
	feedConsultantLimit   = 10
	feedPerConsultant     = 3
	feedDisplayLimit      = 8
)

// dashboardView is the home page: four metric cards, the five most recent
// consultants, and a best-effort activity feed merged across consultants.
type dashboardView struct {
	state   *SharedState
	gen     uuid.UUID
	loading bool
	data    *dashboardData

	feed        []domain.Activity
	feedLoading bool

	cursor int
}

func newDashboardView(state *SharedState, gen uuid.UUID) *dashboardView {
	return &dashboardView{state: state, gen: gen, loading: true}
}

func (v *dashboardView) Page() PageID  { return PageDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

// loadData fetches the summary and the consultant list concurrently and
// joins on both completing.
func (v *dashboardView) loadData() tea.Cmd {
	client := v.state.App.Client
	gen := v.gen
	return func() tea.Msg {
		var (
			summary     domain.Summary
			consultants []domain.Consultant
		)

		g, ctx := errgroup.WithContext(context.Background())
		g.Go(func() error {
			s, err := client.Summary(ctx)
			summary = s
			return err
		})
		g.Go(func() error {
			cs, err := client.Consultants(ctx)
			consultants = cs
			return err
		})
		if err := g.Wait(); err != nil {
			return dashboardLoadedMsg{loadResult: loadResult{gen: gen, err: err}}
		}

		return dashboardLoadedMsg{
			loadResult: loadResult{gen: gen},
			data:       dashboardData{summary: summary, consultants: consultants},
		}
	}
}

// loadFeed gathers up to three recent activities for each of the first ten
// consultants, skipping any consultant whose fetch fails, then merges,
// sorts by parsed timestamp descending, and keeps the top eight.
func (v *dashboardView) loadFeed(consultants []domain.Consultant) tea.Cmd {
	client := v.state.App.Client
	gen := v.gen
	return func() tea.Msg {
		ctx := context.Background()

		var merged []domain.Activity
		limit := min(len(consultants), feedConsultantLimit)
		for _, c := range consultants[:limit] {
			acts, err := client.ConsultantActivities(ctx, c.ID)
			if err != nil {
				continue
			}
			take := min(len(acts), feedPerConsultant)
			for _, a := range acts[:take] {
				a.ConsultantName = c.Name
				merged = append(merged, a)
			}
		}

		sortActivitiesDesc(merged)
		if len(merged) > feedDisplayLimit {
			merged = merged[:feedDisplayLimit]
		}
		return dashboardFeedMsg{loadResult: loadResult{gen: gen}, feed: merged}
	}
}

// sortActivitiesDesc orders newest first by parsed timestamp; entries with
// unparsable timestamps sort last.
func sortActivitiesDesc(acts []domain.Activity) {
	sort.SliceStable(acts, func(i, j int) bool {
		ti, oki := domain.ParseTimestamp(acts[i].Timestamp)
		tj, okj := domain.ParseTimestamp(acts[j].Timestamp)
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			return v, nil
		}
		v.data = &msg.data
		if v.cursor >= len(v.recent()) {
			v.cursor = max(0, len(v.recent())-1)
		}
		// First paint happens with the feed still loading.
		v.feedLoading = true
		return v, v.loadFeed(msg.data.consultants)

	case dashboardFeedMsg:
		v.feedLoading = false
		v.feed = msg.feed
		return v, nil

	case tea.KeyMsg:
		recent := v.recent()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(recent)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(recent) {
				return v, navigateDetail(recent[v.cursor].ID)
			}
		}
	}
	return v, nil
}

// recent returns the top consultants shown in the left card.
func (v *dashboardView) recent() []domain.Consultant {
	if v.data == nil {
		return nil
	}
	n := min(len(v.data.consultants), dashRecentConsultants)
	return v.data.consultants[:n]
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading…")
	}
	if v.data == nil {
		return "\n  " + formatter.Dim("Nothing to show.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderMetricCards(v.data.summary))
	b.WriteString("\n\n")

	left := v.renderRecent()
	right := v.renderFeed()

	if v.state.Width >= 100 {
		half := (v.state.Width - sidebarWidth - 8) / 2
		if half < 30 {
			half = 30
		}
		leftCol := lipgloss.NewStyle().Width(half).Render(left)
		rightCol := lipgloss.NewStyle().Width(half).Render(right)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "  ", rightCol))
	} else {
		b.WriteString(left)
		b.WriteString("\n")
		b.WriteString(right)
	}

	return b.String()
}

var metricCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(formatter.ColorDim).
	Padding(0, 2)

// renderMetricCards shows the four summary counters in a row.
func renderMetricCards(s domain.Summary) string {
	cards := []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"Total", s.Total, formatter.StyleFg},
		{"Pending", s.Pending, formatter.StyleYellow},
		{"In Progress", s.InProgress, formatter.StyleBlue},
		{"Complete", s.Complete, formatter.StyleGreen},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		inner := formatter.Dim(c.label) + "\n" + c.style.Bold(true).Render(fmt.Sprintf("%d", c.value))
		rendered = append(rendered, metricCardStyle.Render(inner))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (v *dashboardView) renderRecent() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Recent Consultants") + "\n")

	recent := v.recent()
	if len(recent) == 0 {
		b.WriteString(formatter.Dim("No consultants yet. Press '3' to start an onboarding.") + "\n")
		return b.String()
	}

	for i, c := range recent {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s\n",
			cursor,
			nameStyle.Render(padRight(formatter.TruncateName(c.Name, 18), 18)),
			formatter.DocProgress(c.DocCompleted, c.DocTotal, 6),
			formatter.Dim(formatter.FormatDate(c.StartDate)),
			formatter.StatusBadge(string(c.Status)),
		))
	}
	return b.String()
}

func (v *dashboardView) renderFeed() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Recent Activity") + "\n")

	if v.feedLoading {
		b.WriteString(formatter.Dim("Loading activity…") + "\n")
		return b.String()
	}
	if len(v.feed) == 0 {
		b.WriteString(formatter.Dim("No activity yet") + "\n")
		return b.String()
	}

	for _, a := range v.feed {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			formatter.ActivityIcon(a.ActivityType),
			formatter.StyleFg.Render(a.ActivityType),
			formatter.Dim(formatter.TimeAgo(a.Timestamp)),
		))
		if a.Description != "" {
			b.WriteString("   " + formatter.Dim(formatter.TruncateName(a.Description, 48)) + "\n")
		}
	}
	return b.String()
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}
