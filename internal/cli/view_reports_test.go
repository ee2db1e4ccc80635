package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReports_RendersChartAndMetrics(t *testing.T) {
	b := newFakeBackend(t)
	d := newTestDriver(t, b)

	d.PressKey('5')
	out := d.View()

	assert.Contains(t, out, "Status Distribution")
	assert.Contains(t, out, "In Progress")
	assert.Contains(t, out, "Avg Document Completion")
	// (20 + 60 + 100) / 3
	assert.Contains(t, out, "60%")
}

func TestReports_CompletionRate(t *testing.T) {
	v := &reportsView{}
	assert.Zero(t, v.completionRate())
}

func TestReports_ExportWritesCSV(t *testing.T) {
	b := newFakeBackend(t)
	app := testApp(t, b)
	d := newTestDriverWithApp(t, app)

	d.PressKey('5')
	d.PressEnter() // first kind: consultants

	m := appOf(t, d)
	require.NotEmpty(t, m.toasts)
	assert.Contains(t, m.toasts[0].text, "consultants.csv")

	data, err := os.ReadFile(filepath.Join(app.Config.Downloads.Dir, "consultants.csv"))
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
