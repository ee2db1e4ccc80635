package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/solutionspm/onboard/internal/cli/formatter"
	"github.com/solutionspm/onboard/internal/contract"
	"github.com/solutionspm/onboard/internal/domain"
)

// detailLoadedMsg signals that a consultant's full record has been fetched.
type detailLoadedMsg struct {
	loadResult
	detail *contract.ConsultantDetail
}

// detailActivityLimit caps the activity log shown on the detail page.
const detailActivityLimit = 15

// detailView shows one consultant's full record: profile, document
// checklist, activity log, and the action keys that mutate it. Every
// navigation here fetches the record exactly once; mutations re-fetch it
// whole rather than patching locally.
type detailView struct {
	state   *SharedState
	gen     uuid.UUID
	id      int64
	loading bool

	detail    *contract.ConsultantDetail
	docCursor int
}

func newDetailView(state *SharedState, gen uuid.UUID, id int64) *detailView {
	return &detailView{state: state, gen: gen, id: id, loading: true}
}

func (v *detailView) Page() PageID { return PageDetail }

func (v *detailView) Title() string {
	if v.detail != nil {
		return v.detail.Consultant.Name
	}
	return "Consultant"
}

func (v *detailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate docs")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "send offer")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "send reminder")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "cycle status")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle doc")),
	}
}

func (v *detailView) Init() tea.Cmd {
	return v.loadDetail()
}

func (v *detailView) loadDetail() tea.Cmd {
	client := v.state.App.Client
	gen := v.gen
	id := v.id
	return func() tea.Msg {
		detail, err := client.Consultant(context.Background(), id)
		return detailLoadedMsg{loadResult: loadResult{gen: gen, err: err}, detail: detail}
	}
}

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		v.loading = false
		if msg.err != nil {
			return v, nil
		}
		v.detail = msg.detail
		if v.docCursor >= len(v.detail.Documents) {
			v.docCursor = max(0, len(v.detail.Documents)-1)
		}
		return v, nil

	case tea.KeyMsg:
		if v.detail == nil {
			return v, nil
		}
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *detailView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	docs := v.detail.Documents

	switch msg.String() {
	case "up", "k":
		if v.docCursor > 0 {
			v.docCursor--
		}
	case "down", "j":
		if v.docCursor < len(docs)-1 {
			v.docCursor++
		}
	case " ", "enter":
		if v.docCursor < len(docs) {
			d := docs[v.docCursor]
			return v, toggleDocCmd(v.state, v.gen, d.ID, d.Status)
		}
	case "d":
		if v.docCursor < len(docs) {
			if fname := docs[v.docCursor].Filename(); fname != "" {
				return v, downloadDocumentCmd(v.state, v.gen, fname)
			}
		}
	case "g":
		return v, generateDocsCmd(v.state, v.gen, v.id)
	case "o":
		return v, sendOfferCmd(v.state, v.gen, v.id, true)
	case "r":
		return v, sendReminderCmd(v.state, v.gen, v.id, true)
	case "u":
		next := domain.NextStatus(v.detail.Consultant.Status)
		return v, updateStatusCmd(v.state, v.gen, v.id, next)
	case "a":
		return v, addStandardDocsCmd(v.state, v.gen, v.id)
	}
	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *detailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading…")
	}
	if v.detail == nil {
		return "\n  " + formatter.Dim("Nothing to show.")
	}

	d := v.detail
	c := d.Consultant

	var b strings.Builder
	b.WriteString("\n")

	// Profile header
	avatar := formatter.StylePurple.Bold(true).Render("(" + formatter.Initials(c.Name) + ")")
	sub := c.Position
	if sub != "" {
		sub += " · "
	}
	sub += c.Email
	b.WriteString(fmt.Sprintf("  %s %s  %s\n", avatar, formatter.Bold(c.Name), formatter.StatusBadge(string(c.Status))))
	b.WriteString("      " + formatter.Dim(sub) + "\n\n")

	// Key figures
	b.WriteString(fmt.Sprintf("  %s %s    %s %s    %s %d/%d (%.0f%%)\n\n",
		formatter.Dim("Rate"), formatter.FormatRate(c.PayRate),
		formatter.Dim("Start"), formatter.FormatDate(c.StartDate),
		formatter.Dim("Docs"), d.CompletedDocuments, d.TotalDocuments, d.CompletionPercentage,
	))

	left := v.renderChecklist()
	right := v.renderActivityLog()

	if v.state.Width >= 100 {
		half := (v.state.Width - sidebarWidth - 8) / 2
		if half < 30 {
			half = 30
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(half).Render(left),
			"  ",
			lipgloss.NewStyle().Width(half).Render(right),
		))
	} else {
		b.WriteString(left)
		b.WriteString("\n")
		b.WriteString(right)
	}

	return b.String()
}

func (v *detailView) renderChecklist() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Document Checklist") + "\n")

	docs := v.detail.Documents
	if len(docs) == 0 {
		b.WriteString(formatter.Dim("No documents tracked yet. Press 'a' to add the standard set:") + "\n")
		for _, t := range domain.StandardDocumentTypes {
			b.WriteString(formatter.Dim("  · "+t) + "\n")
		}
		return b.String()
	}

	for i, d := range docs {
		cursor := "  "
		if i == v.docCursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		check := formatter.Dim("[ ]")
		if d.Status == domain.DocCompleted {
			check = formatter.StyleGreen.Render("[✔]")
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			cursor, check,
			formatter.StyleFg.Render(padRight(formatter.TruncateName(d.DocumentType, 24), 24)),
			formatter.StatusBadge(string(d.Status)),
		))
		if fname := d.Filename(); fname != "" {
			b.WriteString("      " + formatter.Dim("⬇ "+fname+"  (d to download)") + "\n")
		}
	}
	return b.String()
}

func (v *detailView) renderActivityLog() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Activity Log") + "\n")

	acts := v.detail.Activities
	if len(acts) == 0 {
		b.WriteString(formatter.Dim("No activity yet") + "\n")
		return b.String()
	}

	limit := min(len(acts), detailActivityLimit)
	for _, a := range acts[:limit] {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			formatter.ActivityIcon(a.ActivityType),
			formatter.StyleFg.Render(a.ActivityType),
			formatter.Dim(formatter.TimeAgo(a.Timestamp)),
		))
		if a.Description != "" {
			b.WriteString("   " + formatter.Dim(formatter.TruncateName(a.Description, 44)) + "\n")
		}
	}
	return b.String()
}
