package cli

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solutionspm/onboard/internal/domain"
)

func TestSortActivitiesDesc(t *testing.T) {
	acts := []domain.Activity{
		{ID: 1, Timestamp: "2026-02-05T10:00:00"},
		{ID: 2, Timestamp: "garbage"},
		{ID: 3, Timestamp: "2026-02-07T10:00:00"},
		{ID: 4, Timestamp: "2026-02-06T10:00:00"},
	}

	sortActivitiesDesc(acts)

	assert.Equal(t, int64(3), acts[0].ID)
	assert.Equal(t, int64(4), acts[1].ID)
	assert.Equal(t, int64(1), acts[2].ID)
	// Unparsable timestamps sort last.
	assert.Equal(t, int64(2), acts[3].ID)
}

func TestDashboardFeed_MergesAndAttachesNames(t *testing.T) {
	b := newFakeBackend(t)
	v := newDashboardView(&SharedState{App: testApp(t, b)}, uuid.New())

	msg := v.loadFeed([]domain.Consultant{
		{ID: 1, Name: "Jane Doe"},
		{ID: 2, Name: "Bob Lee"},
	})()

	feed, ok := msg.(dashboardFeedMsg)
	require.True(t, ok)
	require.NoError(t, feed.err)
	require.Len(t, feed.feed, 2)

	// Newest first, with the owner's name attached client-side.
	assert.Equal(t, "Bob Lee", feed.feed[0].ConsultantName)
	assert.Equal(t, "Jane Doe", feed.feed[1].ConsultantName)
}

func TestDashboardFeed_SkipsFailedConsultantsSilently(t *testing.T) {
	b := newFakeBackend(t)
	v := newDashboardView(&SharedState{App: testApp(t, b)}, uuid.New())

	// Consultant 99 has no activity endpoint; its failure must not poison
	// the rest of the feed.
	msg := v.loadFeed([]domain.Consultant{
		{ID: 1, Name: "Jane Doe"},
		{ID: 99, Name: "Ghost"},
		{ID: 2, Name: "Bob Lee"},
	})()

	feed, ok := msg.(dashboardFeedMsg)
	require.True(t, ok)
	require.NoError(t, feed.err)
	assert.Len(t, feed.feed, 2)
	for _, a := range feed.feed {
		assert.NotEqual(t, "Ghost", a.ConsultantName)
	}
}

func TestDashboardFeed_CapsConsultantsAndEntries(t *testing.T) {
	b := newFakeBackend(t)

	// Every consultant resolves to consultant 1's single activity; with
	// twelve consultants only the first ten are consulted and the merged
	// feed is clipped to the display limit.
	var many []domain.Consultant
	for i := 1; i <= 12; i++ {
		many = append(many, domain.Consultant{ID: 1, Name: fmt.Sprintf("Person %d", i)})
	}

	v := newDashboardView(&SharedState{App: testApp(t, b)}, uuid.New())
	msg := v.loadFeed(many)()

	feed, ok := msg.(dashboardFeedMsg)
	require.True(t, ok)
	assert.Len(t, feed.feed, feedDisplayLimit)
	assert.Equal(t, feedConsultantLimit, b.countRequests("/api/consultants/1/activities"))
}

func TestDashboard_EnterOpensSelectedConsultant(t *testing.T) {
	b := newFakeBackend(t)
	d := newTestDriver(t, b)

	d.PressDown()
	d.PressEnter()

	m := appOf(t, d)
	assert.Equal(t, PageDetail, m.vs.page)
	assert.Equal(t, int64(2), m.vs.detail)
}
