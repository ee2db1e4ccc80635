package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name  string
		input ConsultantStatus
		want  ConsultantStatus
	}{
		{"pending advances", StatusPending, StatusInProgress},
		{"in progress advances", StatusInProgress, StatusComplete},
		{"complete wraps", StatusComplete, StatusPending},
		{"unknown restarts at pending", ConsultantStatus("Archived"), StatusPending},
		{"empty restarts at pending", ConsultantStatus(""), StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStatus(tt.input))
		})
	}
}

func TestNextStatus_OnlyEmitsCanonicalValues(t *testing.T) {
	seen := map[ConsultantStatus]bool{}
	s := ConsultantStatus("whatever")
	for i := 0; i < 5; i++ {
		s = NextStatus(s)
		seen[s] = true
	}
	for got := range seen {
		assert.Contains(t, StatusCycle, got)
	}
}

func TestToggledDocStatus(t *testing.T) {
	assert.Equal(t, DocPending, ToggledDocStatus(DocCompleted))
	assert.Equal(t, DocCompleted, ToggledDocStatus(DocPending))
	assert.Equal(t, DocCompleted, ToggledDocStatus(DocSent))
	assert.Equal(t, DocCompleted, ToggledDocStatus(DocGenerated))
	assert.Equal(t, DocCompleted, ToggledDocStatus(DocumentStatus("")))
}

func TestDocumentFilename(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"unix path", "generated_docs/offer_letter_3.txt", "offer_letter_3.txt"},
		{"windows path", `generated_docs\offer_letter_3.txt`, "offer_letter_3.txt"},
		{"mixed separators", `a/b\c.pdf`, "c.pdf"},
		{"bare filename", "w4.pdf", "w4.pdf"},
		{"empty", "", ""},
		{"trailing slash", "generated_docs/", "generated_docs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Document{FilePath: tt.path}.Filename())
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"rfc3339", "2024-03-05T10:30:00Z", true},
		{"rfc3339 with offset", "2024-03-05T10:30:00+02:00", true},
		{"python isoformat with micros", "2024-03-05T10:30:00.123456", true},
		{"no fractional seconds", "2024-03-05T10:30:00", true},
		{"date only", "2024-03-05", true},
		{"empty", "", false},
		{"garbage", "yesterday-ish", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, 2024, got.Year())
				assert.Equal(t, time.March, got.Month())
				assert.Equal(t, 5, got.Day())
			}
		})
	}
}

func TestActivityTime_Unparsable(t *testing.T) {
	a := Activity{Timestamp: "not a time"}
	assert.True(t, a.Time().IsZero())
}

func TestSummaryMaxStatusCount(t *testing.T) {
	assert.Equal(t, 7, Summary{Pending: 2, InProgress: 7, Complete: 4}.MaxStatusCount())
	assert.Equal(t, 1, Summary{}.MaxStatusCount())
}
