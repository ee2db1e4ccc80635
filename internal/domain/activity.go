package domain

import "time"

// Activity is one append-only log entry on a consultant's record.
type Activity struct {
	ID           int64  `json:"id"`
	ConsultantID int64  `json:"consultant_id"`
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`
	Timestamp    string `json:"timestamp"`

	// ConsultantName is attached client-side when merging feeds across
	// consultants; it is never present on the wire.
	ConsultantName string `json:"-"`
}

// timestampLayouts covers the backend's isoformat output, with and without
// fractional seconds or a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO 8601 timestamp string. The second return is
// false for empty or unparsable input.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Time returns the parsed activity timestamp; the zero time when the
// backend delivered something unparsable.
func (a Activity) Time() time.Time {
	t, _ := ParseTimestamp(a.Timestamp)
	return t
}
