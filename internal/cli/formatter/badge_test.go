package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  BadgeKind
	}{
		{"complete exact", "Complete", BadgeComplete},
		{"completed substring", "Completed", BadgeComplete},
		{"in progress", "In Progress", BadgeProgress},
		{"sent exact", "Sent", BadgeSent},
		{"generated exact", "Generated", BadgeGenerated},
		{"pending", "Pending", BadgePending},
		{"unknown defaults to pending", "Archived", BadgePending},
		{"empty defaults to pending", "", BadgePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.input))
		})
	}
}

func TestStatusBadge(t *testing.T) {
	assert.Contains(t, StatusBadge("Complete"), "Complete")
	assert.Contains(t, StatusBadge("Complete"), "●")

	// Empty statuses display as Pending.
	assert.Contains(t, StatusBadge(""), "Pending")
}

func TestActivityIcon(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"email_sent", "📧"},
		{"reminder_sent", "📧"},
		{"document_generated", "📄"},
		{"document_completed", "📄"},
		{"onboarding_complete", "✅"},
		{"status_change", "🔄"},
		{"consultant_added", "👤"},
		{"", "👤"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ActivityIcon(tt.input))
		})
	}
}
