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
	"github.com/solutionspm/onboard/internal/domain"
)

// emailsLoadedMsg signals that the recipient list has been fetched.
type emailsLoadedMsg struct {
	loadResult
	consultants []domain.Consultant
}

// emailTemplate is one entry of the template catalog. Only the offer and
// reminder templates trigger a request; the others are informational.
type emailTemplate struct {
	name     string
	icon     string
	desc     string
	sendable bool
}

var emailTemplates = []emailTemplate{
	{"Offer Letter", "📨", "Send the signed offer letter to a consultant", true},
	{"Document Request", "📋", "Ask for outstanding onboarding paperwork", false},
	{"Reminder", "⏰", "Nudge a consultant about pending documents", true},
	{"Welcome", "🎉", "First-day welcome with logistics and contacts", false},
}

// emailsView is the email templates page. A template is picked on the
// left, a recipient on the right; sending never re-renders the detail
// page because no detail page is on screen here.
type emailsView struct {
	state   *SharedState
	gen     uuid.UUID
	loading bool

	consultants []domain.Consultant
	template    int
	cursor      int
}

func newEmailsView(state *SharedState, gen uuid.UUID) *emailsView {
	return &emailsView{state: state, gen: gen, loading: true}
}

func (v *emailsView) Page() PageID  { return PageEmails }
func (v *emailsView) Title() string { return "Emails" }

func (v *emailsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "template")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "recipient")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bulk")),
	}
}

func (v *emailsView) Init() tea.Cmd {
	client := v.state.App.Client
	gen := v.gen
	return func() tea.Msg {
		list, err := client.Consultants(context.Background())
		return emailsLoadedMsg{loadResult: loadResult{gen: gen, err: err}, consultants: list}
	}
}

func (v *emailsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case emailsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			return v, nil
		}
		v.consultants = msg.consultants
		if v.cursor >= len(v.consultants) {
			v.cursor = 0
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *emailsView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.template > 0 {
			v.template--
		}
	case "right", "l", "tab":
		if v.template < len(emailTemplates)-1 {
			v.template++
		}
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.consultants)-1 {
			v.cursor++
		}
	case "enter":
		return v, v.send()
	case "b":
		return v, showInfoToast("Bulk emails queued!")
	}
	return v, nil
}

// send dispatches the selected template to the selected recipient.
func (v *emailsView) send() tea.Cmd {
	if v.cursor >= len(v.consultants) {
		return showErrorToast("No consultant selected")
	}
	tmpl := emailTemplates[v.template]
	if !tmpl.sendable {
		return showInfoToast(tmpl.name + " emails are sent automatically")
	}
	id := v.consultants[v.cursor].ID
	if tmpl.name == "Offer Letter" {
		return sendOfferCmd(v.state, v.gen, id, false)
	}
	return sendReminderCmd(v.state, v.gen, id, false)
}

func (v *emailsView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Email Templates"))
	b.WriteString("\n\n")
	b.WriteString(v.renderTemplates())
	b.WriteString("\n\n")
	b.WriteString(formatter.Bold("Recipient"))
	b.WriteString("\n")
	b.WriteString(v.renderRecipients())
	return b.String()
}

func (v *emailsView) renderTemplates() string {
	cards := make([]string, 0, len(emailTemplates))
	for i, t := range emailTemplates {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1).
			Width(20)
		if i == v.template {
			style = style.BorderForeground(formatter.ColorHeader)
		}
		body := fmt.Sprintf("%s %s\n%s", t.icon, formatter.Bold(t.name), formatter.Dim(t.desc))
		cards = append(cards, style.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (v *emailsView) renderRecipients() string {
	if v.loading {
		return formatter.Dim("Loading consultants...")
	}
	if len(v.consultants) == 0 {
		return formatter.Dim("No consultants yet.")
	}

	var b strings.Builder
	for i, c := range v.consultants {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("> ")
		}
		line := fmt.Sprintf("%s%s  %s  %s",
			prefix,
			padRight(formatter.TruncateName(c.Name, 24), 24),
			padRight(c.Email, 30),
			formatter.StatusBadge(string(c.Status)))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
