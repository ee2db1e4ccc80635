package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PageID identifies each page of the dashboard.
type PageID string

const (
	PageDashboard   PageID = "dashboard"
	PageConsultants PageID = "consultants"
	PageDetail      PageID = "detail"
	PageNew         PageID = "new"
	PageEmails      PageID = "emails"
	PageReports     PageID = "reports"
)

// navEntry is one sidebar navigation item.
type navEntry struct {
	page  PageID
	label string
	key   string
}

// navEntries lists the sidebar menu in display order. Detail and new have
// no entry of their own; they highlight the consultants entry.
var navEntries = []navEntry{
	{PageDashboard, "Dashboard", "1"},
	{PageConsultants, "Consultants", "2"},
	{PageNew, "New Onboarding", "3"},
	{PageEmails, "Emails", "4"},
	{PageReports, "Reports", "5"},
}

// navHighlight maps a page onto the nav entry rendered active for it.
func navHighlight(p PageID) PageID {
	if p == PageDetail {
		return PageConsultants
	}
	return p
}

// View is the interface all page views implement. It extends tea.Model
// with identity and help metadata.
type View interface {
	tea.Model
	Page() PageID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // header segment for this page
}

// viewCapturesInput reports whether the active view owns the keyboard
// (search input focused, or a form in flight) and global keybindings
// should be bypassed.
func viewCapturesInput(v View) bool {
	c, ok := v.(interface{ capturesInput() bool })
	return ok && c.capturesInput()
}
