package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/solutionspm/onboard/internal/api"
	"github.com/solutionspm/onboard/internal/cli/formatter"
	"github.com/solutionspm/onboard/internal/domain"
)

// reportsLoadedMsg signals that the joined summary + consultant fetch for
// the reports page is done.
type reportsLoadedMsg struct {
	loadResult
	summary     domain.Summary
	consultants []domain.Consultant
}

// reportsView shows aggregate metrics, a status distribution chart and the
// CSV export menu.
type reportsView struct {
	state   *SharedState
	gen     uuid.UUID
	loading bool

	summary     domain.Summary
	consultants []domain.Consultant

	exportCursor int
}

func newReportsView(state *SharedState, gen uuid.UUID) *reportsView {
	return &reportsView{state: state, gen: gen, loading: true}
}

func (v *reportsView) Page() PageID  { return PageReports }
func (v *reportsView) Title() string { return "Reports" }

func (v *reportsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "export kind")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "export CSV")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
	}
}

func (v *reportsView) Init() tea.Cmd {
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
			return reportsLoadedMsg{loadResult: loadResult{gen: gen, err: err}}
		}

		return reportsLoadedMsg{
			loadResult:  loadResult{gen: gen},
			summary:     summary,
			consultants: consultants,
		}
	}
}

func (v *reportsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			return v, nil
		}
		v.summary = msg.summary
		v.consultants = msg.consultants
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.exportCursor > 0 {
				v.exportCursor--
			}
		case "down", "j":
			if v.exportCursor < len(api.ExportKinds)-1 {
				v.exportCursor++
			}
		case "enter":
			return v, exportCmd(v.state, v.gen, api.ExportKinds[v.exportCursor])
		}
	}
	return v, nil
}

// completionRate averages the per-consultant document progress.
func (v *reportsView) completionRate() float64 {
	if len(v.consultants) == 0 {
		return 0
	}
	var total float64
	for _, c := range v.consultants {
		total += c.DocProgress
	}
	return total / float64(len(v.consultants))
}

func (v *reportsView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Reports"))
	b.WriteString("\n\n")

	if v.loading {
		b.WriteString(formatter.Dim("Loading reports..."))
		return b.String()
	}

	b.WriteString(renderMetricCards(v.summary))
	b.WriteString("\n\n")

	b.WriteString(formatter.Bold("Status Distribution"))
	b.WriteString("\n")
	b.WriteString(formatter.StatusChart(v.summary))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n\n",
		formatter.Bold("Avg Document Completion:"),
		formatter.StyleGreen.Render(fmt.Sprintf("%.0f%%", v.completionRate()))))

	b.WriteString(formatter.Bold("Export CSV"))
	b.WriteString("\n")
	b.WriteString(v.renderExportMenu())
	return b.String()
}

func (v *reportsView) renderExportMenu() string {
	var b strings.Builder
	for i, kind := range api.ExportKinds {
		prefix := "  "
		label := lipgloss.NewStyle().Foreground(formatter.ColorFg)
		if i == v.exportCursor {
			prefix = formatter.StyleHeader.Render("> ")
			label = label.Bold(true)
		}
		b.WriteString(prefix)
		b.WriteString(label.Render(strings.ToUpper(kind[:1]) + kind[1:]))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
