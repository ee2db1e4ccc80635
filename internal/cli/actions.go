package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/solutionspm/onboard/internal/contract"
	"github.com/solutionspm/onboard/internal/domain"
)

// actionDoneMsg reports the outcome of a user-triggered mutation. The
// appModel applies the refresh protocol: on success, toast plus one
// re-render of the current detail page (refreshDetail) and one sidebar
// summary refresh (refreshSummary); on failure, an error toast and nothing
// else. The client never applies optimistic local updates.
type actionDoneMsg struct {
	gen uuid.UUID
	err error

	toastText string
	infoTexts []string

	refreshDetail    bool
	refreshSummary   bool
	navigateToDetail *int64
}

// generateDocsCmd asks the backend to generate onboarding documents and
// writes any inline base64 file payloads into the downloads directory.
func generateDocsCmd(state *SharedState, gen uuid.UUID, id int64) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		resp, err := app.Client.GenerateDocs(context.Background(), id)
		if err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}

		msg := actionDoneMsg{
			gen:            gen,
			toastText:      "Documents generated successfully!",
			refreshDetail:  true,
			refreshSummary: true,
		}
		for _, f := range resp.Files {
			if err := saveInlineFile(app.Config.Downloads.Dir, f); err != nil {
				msg.infoTexts = append(msg.infoTexts, fmt.Sprintf("Could not save %s: %v", f.Name, err))
				continue
			}
			msg.infoTexts = append(msg.infoTexts, fmt.Sprintf("Downloaded %s", f.Name))
		}
		return msg
	}
}

// saveInlineFile decodes one base64 payload onto disk.
func saveInlineFile(dir string, f contract.GeneratedFile) error {
	data, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, f.Name), data, 0o644)
}

// sendOfferCmd emails the offer letter. refreshDetail is set when
// triggered from the detail page; the emails page sends without one.
func sendOfferCmd(state *SharedState, gen uuid.UUID, id int64, refreshDetail bool) tea.Cmd {
	client := state.App.Client
	return func() tea.Msg {
		resp, err := client.SendOffer(context.Background(), id)
		if err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		return actionDoneMsg{gen: gen, toastText: resp.Message, refreshDetail: refreshDetail}
	}
}

// sendReminderCmd emails a pending-documents reminder.
func sendReminderCmd(state *SharedState, gen uuid.UUID, id int64, refreshDetail bool) tea.Cmd {
	client := state.App.Client
	return func() tea.Msg {
		resp, err := client.SendReminder(context.Background(), id)
		if err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		return actionDoneMsg{gen: gen, toastText: resp.Message, refreshDetail: refreshDetail}
	}
}

// updateStatusCmd sets a consultant's onboarding status.
func updateStatusCmd(state *SharedState, gen uuid.UUID, id int64, status domain.ConsultantStatus) tea.Cmd {
	client := state.App.Client
	return func() tea.Msg {
		if err := client.UpdateConsultantStatus(context.Background(), id, status); err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		return actionDoneMsg{
			gen:            gen,
			toastText:      fmt.Sprintf("Status updated to %s", status),
			refreshDetail:  true,
			refreshSummary: true,
		}
	}
}

// toggleDocCmd flips one checklist document between Completed and Pending.
func toggleDocCmd(state *SharedState, gen uuid.UUID, docID int64, current domain.DocumentStatus) tea.Cmd {
	client := state.App.Client
	next := domain.ToggledDocStatus(current)
	return func() tea.Msg {
		if err := client.UpdateDocumentStatus(context.Background(), docID, next); err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		text := "Document marked pending"
		if next == domain.DocCompleted {
			text = "Document completed ✓"
		}
		return actionDoneMsg{
			gen:            gen,
			toastText:      text,
			refreshDetail:  true,
			refreshSummary: true,
		}
	}
}

// addStandardDocsCmd applies the predefined document checklist.
func addStandardDocsCmd(state *SharedState, gen uuid.UUID, id int64) tea.Cmd {
	client := state.App.Client
	return func() tea.Msg {
		if err := client.AddStandardDocs(context.Background(), id); err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		return actionDoneMsg{gen: gen, toastText: "Standard documents added!", refreshDetail: true}
	}
}

// submitConsultantCmd creates a new consultant and navigates to the created
// record's detail page.
func submitConsultantCmd(state *SharedState, gen uuid.UUID, req contract.NewConsultantRequest) tea.Cmd {
	client := state.App.Client
	return func() tea.Msg {
		created, err := client.CreateConsultant(context.Background(), req)
		if err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		id := created.ID
		return actionDoneMsg{
			gen:              gen,
			toastText:        fmt.Sprintf("%s added successfully!", req.Name),
			navigateToDetail: &id,
			refreshSummary:   true,
		}
	}
}

// downloadDocumentCmd fetches a stored document file into the downloads
// directory.
func downloadDocumentCmd(state *SharedState, gen uuid.UUID, filename string) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		path, err := app.Client.DownloadFile(context.Background(), filename, app.Config.Downloads.Dir)
		if err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		return actionDoneMsg{gen: gen, toastText: fmt.Sprintf("Downloaded %s", path)}
	}
}

// exportCmd downloads one CSV dataset export.
func exportCmd(state *SharedState, gen uuid.UUID, kind string) tea.Cmd {
	app := state.App
	return func() tea.Msg {
		path, err := app.Client.ExportCSV(context.Background(), kind, app.Config.Downloads.Dir)
		if err != nil {
			return actionDoneMsg{gen: gen, err: err}
		}
		return actionDoneMsg{gen: gen, toastText: fmt.Sprintf("Exported %s", path)}
	}
}
