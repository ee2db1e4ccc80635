package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/solutionspm/onboard/internal/api"
	"github.com/solutionspm/onboard/internal/config"
	"github.com/solutionspm/onboard/internal/contract"
	"github.com/solutionspm/onboard/internal/domain"
	"github.com/solutionspm/onboard/internal/teatest"
)

// fakeBackend is an in-memory stand-in for the onboarding API. It counts
// requests per path so tests can assert what the client fetched.
type fakeBackend struct {
	t   *testing.T
	srv *httptest.Server

	mu       sync.Mutex
	requests []string

	consultants []domain.Consultant
	summary     domain.Summary
	detail      contract.ConsultantDetail
	activities  map[string][]domain.Activity

	// failAll makes every endpoint return a 500.
	failAll bool
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		t: t,
		consultants: []domain.Consultant{
			{ID: 1, Name: "Jane Doe", Email: "jane@example.com", Position: "Developer", Status: domain.StatusPending, StartDate: "2026-03-01", DocTotal: 5, DocCompleted: 1, DocProgress: 20},
			{ID: 2, Name: "Bob Lee", Email: "bob@example.com", Position: "Designer", Status: domain.StatusInProgress, StartDate: "2026-02-15", DocTotal: 5, DocCompleted: 3, DocProgress: 60},
			{ID: 3, Name: "Cara Yu", Email: "cara@example.com", Position: "Analyst", Status: domain.StatusComplete, StartDate: "2026-01-10", DocTotal: 5, DocCompleted: 5, DocProgress: 100},
		},
		summary: domain.Summary{Total: 3, Pending: 1, InProgress: 1, Complete: 1},
		activities: map[string][]domain.Activity{
			"1": {{ID: 10, ConsultantID: 1, ActivityType: "email_sent", Description: "Offer letter sent", Timestamp: "2026-02-07T10:00:00"}},
			"2": {{ID: 11, ConsultantID: 2, ActivityType: "status_change", Description: "Moved to In Progress", Timestamp: "2026-02-07T11:00:00"}},
			"3": {{ID: 12, ConsultantID: 3, ActivityType: "onboarding_complete", Description: "Onboarding complete", Timestamp: "2026-02-07T09:00:00"}},
		},
	}
	b.detail = contract.ConsultantDetail{
		Consultant: b.consultants[0],
		Documents: []domain.Document{
			{ID: 100, ConsultantID: 1, DocumentType: "Offer Letter", Status: domain.DocGenerated, FilePath: "generated_docs/offer_letter_1.txt"},
			{ID: 101, ConsultantID: 1, DocumentType: "W-4", Status: domain.DocPending},
		},
		Activities:           b.activities["1"],
		TotalDocuments:       5,
		CompletedDocuments:   1,
		CompletionPercentage: 20,
	}

	b.srv = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
	failAll := b.failAll
	b.mu.Unlock()

	if failAll {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "backend down"})
		return
	}

	path := r.URL.Path
	switch {
	case path == "/api/summary":
		json.NewEncoder(w).Encode(b.summary)
	case path == "/api/consultants" && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(b.consultants)
	case path == "/api/consultants" && r.Method == http.MethodPost:
		json.NewEncoder(w).Encode(domain.Consultant{ID: 4, Name: "New Person"})
	case strings.HasPrefix(path, "/api/consultants/") && strings.HasSuffix(path, "/activities"):
		id := strings.TrimSuffix(strings.TrimPrefix(path, "/api/consultants/"), "/activities")
		acts, ok := b.activities[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Consultant not found"})
			return
		}
		json.NewEncoder(w).Encode(acts)
	case path == "/api/consultants/1":
		json.NewEncoder(w).Encode(b.detail)
	case strings.HasSuffix(path, "/send-offer"), strings.HasSuffix(path, "/send-reminder"):
		json.NewEncoder(w).Encode(contract.MessageResponse{Message: "sent"})
	case strings.HasSuffix(path, "/generate-docs"):
		json.NewEncoder(w).Encode(contract.GenerateDocsResponse{Message: "done"})
	case strings.HasSuffix(path, "/add-standard-docs"), strings.HasSuffix(path, "/status"):
		json.NewEncoder(w).Encode(contract.MessageResponse{Message: "ok"})
	case strings.HasPrefix(path, "/api/export/"):
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("id,name\n1,Jane Doe\n"))
	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	}
}

// countRequests returns how many recorded requests match the given path
// suffix.
func (b *fakeBackend) countRequests(suffix string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, req := range b.requests {
		if strings.HasSuffix(req, suffix) {
			n++
		}
	}
	return n
}

func (b *fakeBackend) setFailAll(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failAll = fail
}

func testApp(t *testing.T, b *fakeBackend) *App {
	t.Helper()
	cfg := config.Defaults()
	cfg.API.BaseURL = b.srv.URL
	cfg.Downloads.Dir = t.TempDir()
	return &App{
		Client:        api.New(b.srv.URL),
		Config:        cfg,
		IsInteractive: func() bool { return true },
	}
}

// newTestDriver builds a fully wired app model over a fake backend and
// drains the initial dashboard load.
func newTestDriver(t *testing.T, b *fakeBackend) *teatest.Driver {
	t.Helper()
	return newTestDriverWithApp(t, testApp(t, b))
}

func newTestDriverWithApp(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()
	return d
}

// appOf unwraps the driver's model for direct state assertions.
func appOf(t *testing.T, d *teatest.Driver) appModel {
	t.Helper()
	m, ok := d.Model.(appModel)
	if !ok {
		t.Fatalf("driver model is %T, want appModel", d.Model)
	}
	return m
}
