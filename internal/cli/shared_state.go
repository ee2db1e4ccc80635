package cli

import (
	"github.com/google/uuid"

	"github.com/solutionspm/onboard/internal/domain"
)

// SharedState holds context shared across all page views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Summary shown in the sidebar; nil until first fetch succeeds.
	Summary *domain.Summary
}

// ContentHeight returns the available height for page content, accounting
// for the header (2 lines) and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// viewState is the router state: which page is active, which consultant is
// selected (detail only), and the navigation generation fetches are keyed
// to. It is owned by the appModel and mutated only through transition.
type viewState struct {
	page   PageID
	detail int64
	gen    uuid.UUID
}
