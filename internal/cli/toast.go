package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solutionspm/onboard/internal/cli/formatter"
)

// toastKind selects the toast accent color.
type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
	toastInfo
)

// toast is one transient notification. Toasts never block interaction and
// auto-dismiss after the configured duration.
type toast struct {
	id   int
	kind toastKind
	text string
}

// toastMsg requests a new toast.
type toastMsg struct {
	kind toastKind
	text string
}

// toastExpireMsg removes a toast by id after its lifetime elapses.
type toastExpireMsg struct {
	id int
}

func showToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{kind: toastSuccess, text: text} }
}

func showErrorToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{kind: toastError, text: text} }
}

func showInfoToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{kind: toastInfo, text: text} }
}

// expireToast schedules removal of toast id after d.
func expireToast(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}

func (t toast) render() string {
	switch t.kind {
	case toastError:
		return formatter.StyleRed.Render("✗ " + t.text)
	case toastInfo:
		return formatter.StyleBlue.Render("ℹ " + t.text)
	default:
		return formatter.StyleGreen.Render("✔ " + t.text)
	}
}
