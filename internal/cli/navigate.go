package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Navigation and feedback messages handled by the appModel in Update.

// navigateMsg requests a transition to another page. Detail is meaningful
// only for PageDetail.
type navigateMsg struct {
	page   PageID
	detail int64
}

// navigate returns a tea.Cmd requesting a page transition.
func navigate(page PageID) tea.Cmd {
	return func() tea.Msg { return navigateMsg{page: page} }
}

// navigateDetail returns a tea.Cmd opening one consultant's detail page.
func navigateDetail(id int64) tea.Cmd {
	return func() tea.Msg { return navigateMsg{page: PageDetail, detail: id} }
}

// loadResult carries the navigation generation a fetch was dispatched
// under, plus its error. Loaded messages embed it so the appModel can drop
// results that resolve after the user has navigated elsewhere.
type loadResult struct {
	gen uuid.UUID
	err error
}

func (r loadResult) generation() uuid.UUID { return r.gen }
func (r loadResult) loadErr() error        { return r.err }

// generationed is implemented by every message tied to a navigation
// generation.
type generationed interface {
	generation() uuid.UUID
	loadErr() error
}

// summaryRefreshMsg asks the appModel to re-fetch the sidebar summary.
type summaryRefreshMsg struct{}

func refreshSummary() tea.Cmd {
	return func() tea.Msg { return summaryRefreshMsg{} }
}
