package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/solutionspm/onboard/internal/cli/formatter"
	"github.com/solutionspm/onboard/internal/contract"
	"github.com/solutionspm/onboard/internal/domain"
	"github.com/google/uuid"
)

// newConsultantView is the onboarding form page. The form itself runs
// embedded as a bubbletea model; completion hands off to the submit
// command, abort returns to the consultant list.
type newConsultantView struct {
	state *SharedState
	gen   uuid.UUID
	form  *huh.Form

	name           string
	email          string
	position       string
	manager        string
	payRate        string
	startDate      string
	endDate        string
	employmentType string

	submitting bool
}

func newNewConsultantView(state *SharedState, gen uuid.UUID) *newConsultantView {
	v := &newConsultantView{state: state, gen: gen, employmentType: domain.EmploymentTypes[0]}
	v.form = v.buildForm()
	return v
}

func (v *newConsultantView) buildForm() *huh.Form {
	options := make([]huh.Option[string], 0, len(domain.EmploymentTypes))
	for _, t := range domain.EmploymentTypes {
		options = append(options, huh.NewOption(t, t))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full Name *").
				Placeholder("Jane Smith").
				Value(&v.name),
			huh.NewInput().
				Title("Email *").
				Placeholder("jane@example.com").
				Value(&v.email),
			huh.NewInput().
				Title("Position *").
				Placeholder("Senior Consultant").
				Value(&v.position),
			huh.NewInput().
				Title("Manager").
				Value(&v.manager),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Employment Type").
				Options(options...).
				Value(&v.employmentType),
			huh.NewInput().
				Title("Pay Rate").
				Placeholder("85.00").
				Value(&v.payRate),
			huh.NewInput().
				Title("Start Date").
				Description("YYYY-MM-DD, optional").
				Validate(validateOptionalDate).
				Value(&v.startDate),
			huh.NewInput().
				Title("End Date").
				Description("YYYY-MM-DD, optional").
				Validate(validateOptionalDate).
				Value(&v.endDate),
		),
	).WithTheme(onboardHuhTheme()).WithShowHelp(false)
}

func (v *newConsultantView) Page() PageID  { return PageNew }
func (v *newConsultantView) Title() string { return "New Onboarding" }

func (v *newConsultantView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *newConsultantView) capturesInput() bool { return true }

func (v *newConsultantView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *newConsultantView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.submitting {
		return v, nil
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateAborted:
		return v, navigate(PageConsultants)
	case huh.StateCompleted:
		if err := validateNewConsultant(v.name, v.email, v.position); err != nil {
			v.form = v.buildForm()
			return v, tea.Batch(v.form.Init(), showErrorToast(err.Error()))
		}
		v.submitting = true
		return v, tea.Batch(cmd, submitConsultantCmd(v.state, v.gen, v.request()))
	}
	return v, cmd
}

// validateNewConsultant enforces the required fields after trimming.
// It runs before any request is built so an incomplete form never
// reaches the network.
func validateNewConsultant(name, email, position string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(position) == "" {
		return errors.New("Name, email and position are required")
	}
	return nil
}

func (v *newConsultantView) request() contract.NewConsultantRequest {
	req := contract.NewConsultantRequest{
		Name:            strings.TrimSpace(v.name),
		Email:           strings.TrimSpace(v.email),
		Position:        strings.TrimSpace(v.position),
		Manager:         strings.TrimSpace(v.manager),
		PayRate:         strings.TrimSpace(v.payRate),
		EmploymentType:  v.employmentType,
		AddStandardDocs: true,
	}
	if s := strings.TrimSpace(v.startDate); s != "" {
		req.StartDate = &s
	}
	if s := strings.TrimSpace(v.endDate); s != "" {
		req.EndDate = &s
	}
	return req
}

func (v *newConsultantView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("New Onboarding"))
	b.WriteString("\n\n")
	if v.submitting {
		b.WriteString(formatter.Dim("Creating consultant..."))
		return b.String()
	}
	b.WriteString(lipgloss.NewStyle().MaxWidth(64).Render(v.form.View()))
	return b.String()
}
