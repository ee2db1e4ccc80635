package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmails_SendOffer(t *testing.T) {
	b := newFakeBackend(t)
	d := newTestDriver(t, b)

	d.PressKey('4')
	require.Equal(t, PageEmails, appOf(t, d).vs.page)

	d.PressEnter() // Offer Letter template, first recipient

	assert.Equal(t, 1, b.countRequests("/api/consultants/1/send-offer"))
	m := appOf(t, d)
	require.NotEmpty(t, m.toasts)
	assert.Equal(t, toastSuccess, m.toasts[0].kind)
}

func TestEmails_SendReminderToSelectedRecipient(t *testing.T) {
	b := newFakeBackend(t)
	d := newTestDriver(t, b)
	d.PressKey('4')

	// Third template is Reminder; second recipient is Bob.
	d.PressKey('l')
	d.PressKey('l')
	d.PressDown()
	d.PressEnter()

	assert.Equal(t, 1, b.countRequests("/api/consultants/2/send-reminder"))
}

func TestEmails_SendingNeverTouchesADetailPage(t *testing.T) {
	b := newFakeBackend(t)
	d := newTestDriver(t, b)
	d.PressKey('4')

	detailFetches := b.countRequests("/api/consultants/1")
	d.PressEnter()
	assert.Equal(t, detailFetches, b.countRequests("/api/consultants/1"))
}

func TestEmails_NonSendableTemplateToastsOnly(t *testing.T) {
	b := newFakeBackend(t)
	d := newTestDriver(t, b)
	d.PressKey('4')

	d.PressKey('l') // Document Request
	d.PressEnter()

	assert.Zero(t, b.countRequests("/send-offer"))
	assert.Zero(t, b.countRequests("/send-reminder"))
	m := appOf(t, d)
	require.NotEmpty(t, m.toasts)
	assert.Equal(t, toastInfo, m.toasts[0].kind)
}

func TestEmails_BulkStub(t *testing.T) {
	b := newFakeBackend(t)
	d := newTestDriver(t, b)
	d.PressKey('4')

	d.PressKey('b')
	m := appOf(t, d)
	require.NotEmpty(t, m.toasts)
	assert.Contains(t, m.toasts[0].text, "Bulk emails queued")
}
