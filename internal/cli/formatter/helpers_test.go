package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2024-03-05", "Mar 5, 2024"},
		{"iso date december", "2023-12-25", "Dec 25, 2023"},
		{"empty renders em-dash", "", "—"},
		{"non-iso passes through", "next week", "next week"},
		{"timestamp passes through", "2024-03-05T10:00:00", "2024-03-05T10:00:00"},
		{"month out of range passes through", "2024-13-05", "2024-13-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.input))
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain number", "25", "$25.00/hr"},
		{"decimal", "85.5", "$85.50/hr"},
		{"already prefixed", "$95.00", "$95.00/hr"},
		{"thousands grouped", "1250", "$1,250.00/hr"},
		{"empty renders em-dash", "", "—"},
		{"unparsable passes through", "TBD", "TBD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRate(tt.input))
		})
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two names", "John Smith", "JS"},
		{"single name", "Cher", "C"},
		{"three names caps at two", "Anna Maria Lopez", "AM"},
		{"lowercase uppercased", "jane doe", "JD"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.input))
		})
	}
}

func TestTimeAgoFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"under a minute", "2026-02-07T11:59:40", "just now"},
		{"minutes", "2026-02-07T11:30:00", "30m ago"},
		{"ninety minutes is hours", "2026-02-07T10:30:00", "1h ago"},
		{"hours", "2026-02-07T04:00:00", "8h ago"},
		{"days", "2026-02-04T12:00:00", "3d ago"},
		{"past a week shows the date", "2026-01-15T12:00:00", "Jan 15"},
		{"date only", "2026-02-06", "1d ago"},
		{"empty renders empty", "", ""},
		{"unparsable renders empty", "not a time", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeAgoFrom(tt.input, now))
		})
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", 10))
	assert.Equal(t, "exactly-10", TruncateName("exactly-10", 10))
	assert.Equal(t, "a long na…", TruncateName("a long name here", 10))
}
