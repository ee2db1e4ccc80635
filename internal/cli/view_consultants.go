package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/solutionspm/onboard/internal/cli/formatter"
	"github.com/solutionspm/onboard/internal/domain"
)

// consultantsLoadedMsg signals that the consultant list has been fetched.
type consultantsLoadedMsg struct {
	loadResult
	consultants []domain.Consultant
}

// statusFilterAll is the status filter position matching every status.
const statusFilterAll = "All"

// statusFilterCycle orders the positions of the status filter.
var statusFilterCycle = []string{
	statusFilterAll,
	string(domain.StatusPending),
	string(domain.StatusInProgress),
	string(domain.StatusComplete),
}

// consultantListView shows every consultant with client-side filtering.
// The list is fetched once per navigation and cached in the view; search
// and status filtering operate purely on the cache and never refetch.
type consultantListView struct {
	state   *SharedState
	gen     uuid.UUID
	loading bool

	consultants []domain.Consultant
	cursor      int

	search       textinput.Model
	searching    bool
	statusFilter string
}

func newConsultantListView(state *SharedState, gen uuid.UUID) *consultantListView {
	ti := textinput.New()
	ti.Placeholder = "name or position"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return &consultantListView{
		state:        state,
		gen:          gen,
		loading:      true,
		search:       ti,
		statusFilter: statusFilterAll,
	}
}

func (v *consultantListView) Page() PageID  { return PageConsultants }
func (v *consultantListView) Title() string { return "Consultants" }

func (v *consultantListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status: "+v.statusFilter)),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	}
}

func (v *consultantListView) capturesInput() bool { return v.searching }

func (v *consultantListView) Init() tea.Cmd {
	return v.loadConsultants()
}

func (v *consultantListView) loadConsultants() tea.Cmd {
	client := v.state.App.Client
	gen := v.gen
	return func() tea.Msg {
		list, err := client.Consultants(context.Background())
		return consultantsLoadedMsg{loadResult: loadResult{gen: gen, err: err}, consultants: list}
	}
}

func (v *consultantListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case consultantsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			return v, nil
		}
		// Last fetch wins: the cache is simply overwritten.
		v.consultants = msg.consultants
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *consultantListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleConsultants()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(visible) {
			return v, navigateDetail(visible[v.cursor].ID)
		}
	case "/":
		v.searching = true
		v.cursor = 0
		return v, v.search.Focus()
	case "s":
		v.cycleStatusFilter()
		v.clampCursor()
	case "n":
		return v, navigate(PageNew)
	}
	return v, nil
}

func (v *consultantListView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.searching = false
		v.search.SetValue("")
		v.search.Blur()
		v.cursor = 0
		return v, nil
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.cursor = 0
	return v, cmd
}

func (v *consultantListView) cycleStatusFilter() {
	for i, s := range statusFilterCycle {
		if s == v.statusFilter {
			v.statusFilter = statusFilterCycle[(i+1)%len(statusFilterCycle)]
			return
		}
	}
	v.statusFilter = statusFilterAll
}

// visibleConsultants filters the cached list: case-insensitive substring
// match on name or position, AND status equality (unless All). Pure over
// the cache, no network.
func (v *consultantListView) visibleConsultants() []domain.Consultant {
	q := strings.ToLower(strings.TrimSpace(v.search.Value()))

	var filtered []domain.Consultant
	for _, c := range v.consultants {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Position), q) {
			continue
		}
		if v.statusFilter != statusFilterAll && string(c.Status) != v.statusFilter {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func (v *consultantListView) clampCursor() {
	if n := len(v.visibleConsultants()); v.cursor >= n {
		v.cursor = max(0, n-1)
	}
}

func (v *consultantListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading consultants…")
	}

	var b strings.Builder
	b.WriteString("\n")

	if v.searching || v.search.Value() != "" {
		b.WriteString("  " + v.search.View() + "\n\n")
	}
	if v.statusFilter != statusFilterAll {
		b.WriteString("  " + formatter.Dim("status = ") + formatter.StatusBadge(v.statusFilter) + "\n\n")
	}

	visible := v.visibleConsultants()
	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No consultants found.") + "\n")
		return b.String()
	}

	for i, c := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		position := c.Position
		if position == "" {
			position = formatter.EmDash
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s  %s  %s\n",
			cursor,
			nameStyle.Render(padRight(formatter.TruncateName(c.Name, 20), 20)),
			formatter.Dim(padRight(formatter.TruncateName(position, 18), 18)),
			formatter.Dim(formatter.FormatDate(c.StartDate)),
			formatter.DocProgress(c.DocCompleted, c.DocTotal, 6),
			formatter.StatusBadge(string(c.Status)),
		))
	}

	return b.String()
}
