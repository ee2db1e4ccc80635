package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/solutionspm/onboard/internal/domain"
)

// EmDash is the placeholder shown for empty field values.
const EmDash = "—"

var monthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// FormatDate turns an ISO date ("2024-03-05") into "Mar 5, 2024".
// Empty input renders as an em-dash; anything that is not a plain ISO date
// passes through unchanged.
func FormatDate(d string) string {
	if d == "" {
		return EmDash
	}
	if len(d) > 10 || !strings.Contains(d, "-") {
		return d
	}
	parts := strings.Split(d, "-")
	if len(parts) != 3 {
		return d
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return d
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return d
	}
	return fmt.Sprintf("%s %d, %s", monthNames[month-1], day, parts[0])
}

// FormatRate normalizes a raw pay-rate string into "$N.NN/hr" with
// thousands separators. Empty input renders as an em-dash; unparsable
// input passes through unchanged.
func FormatRate(v string) string {
	if v == "" {
		return EmDash
	}
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(v)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return v
	}
	return fmt.Sprintf("$%s/hr", groupThousands(fmt.Sprintf("%.2f", n)))
}

// groupThousands inserts commas into the integer part of a fixed-point
// decimal string such as "1234.50".
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if fracPart != "" {
		out += "." + fracPart
	}
	return out
}

// Initials returns the first letter of each space-separated name token,
// uppercased, at most two.
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		for _, r := range token {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// TimeAgo renders an ISO timestamp as a bucketed relative time: "just now"
// under a minute, then minutes, hours, days, and finally a short
// month/day date past a week. Empty or unparsable input renders empty.
func TimeAgo(iso string) string {
	return TimeAgoFrom(iso, time.Now())
}

// TimeAgoFrom is TimeAgo against an explicit reference time.
func TimeAgoFrom(iso string, now time.Time) string {
	t, ok := domain.ParseTimestamp(iso)
	if !ok {
		return ""
	}
	mins := int(now.Sub(t).Minutes())
	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%dm ago", mins)
	}
	hrs := mins / 60
	if hrs < 24 {
		return fmt.Sprintf("%dh ago", hrs)
	}
	days := hrs / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Day())
}

// TruncateName shortens a display name to fit a column width.
func TruncateName(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
