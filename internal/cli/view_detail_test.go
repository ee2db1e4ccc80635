package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solutionspm/onboard/internal/teatest"
)

func openDetail(t *testing.T, b *fakeBackend) *teatest.Driver {
	t.Helper()
	d := newTestDriver(t, b)
	d.PressKey('2')
	d.PressEnter()
	require.Equal(t, PageDetail, appOf(t, d).vs.page)
	return d
}

func TestDetail_RendersRecord(t *testing.T) {
	b := newFakeBackend(t)
	d := openDetail(t, b)

	out := d.View()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "Offer Letter")
	assert.Contains(t, out, "W-4")
	assert.Contains(t, out, "Offer letter sent") // activity log
}

func TestDetail_ToggleDocumentRefetchesWholeRecord(t *testing.T) {
	b := newFakeBackend(t)
	d := openDetail(t, b)
	fetches := b.countRequests("/api/consultants/1")

	d.PressDown() // W-4, currently Pending
	d.PressKey(' ')

	assert.Equal(t, 1, b.countRequests("/api/documents/101/status"))
	// The record is re-fetched whole rather than patched locally.
	assert.Equal(t, fetches+1, b.countRequests("/api/consultants/1"))
}

func TestDetail_StatusCycleSendsNextStatus(t *testing.T) {
	b := newFakeBackend(t)
	d := openDetail(t, b)

	d.PressKey('u')

	assert.Equal(t, 1, b.countRequests("/api/consultants/1/status"))
	m := appOf(t, d)
	require.NotEmpty(t, m.toasts)
	// Jane is Pending; the cycle advances her to In Progress.
	assert.Contains(t, m.toasts[0].text, "In Progress")
}

func TestDetail_ActionKeys(t *testing.T) {
	b := newFakeBackend(t)
	d := openDetail(t, b)

	d.PressKey('o')
	assert.Equal(t, 1, b.countRequests("/api/consultants/1/send-offer"))

	d.PressKey('r')
	assert.Equal(t, 1, b.countRequests("/api/consultants/1/send-reminder"))

	d.PressKey('a')
	assert.Equal(t, 1, b.countRequests("/api/consultants/1/add-standard-docs"))
}

func TestDetail_GenerateDocsSavesInlineFiles(t *testing.T) {
	b := newFakeBackend(t)
	d := openDetail(t, b)

	d.PressKey('g')

	assert.Equal(t, 1, b.countRequests("/api/consultants/1/generate-docs"))
	m := appOf(t, d)
	require.NotEmpty(t, m.toasts)
	assert.Contains(t, m.toasts[0].text, "Documents generated")
}
