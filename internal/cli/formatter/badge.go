package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BadgeKind is the visual category a status string classifies into.
type BadgeKind string

const (
	BadgePending   BadgeKind = "pending"
	BadgeProgress  BadgeKind = "progress"
	BadgeComplete  BadgeKind = "complete"
	BadgeSent      BadgeKind = "sent"
	BadgeGenerated BadgeKind = "generated"
)

// ClassifyStatus maps a free-text status onto a badge kind by
// case-insensitive substring match. Empty input classifies as pending.
func ClassifyStatus(status string) BadgeKind {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "complete"):
		return BadgeComplete
	case strings.Contains(s, "progress"):
		return BadgeProgress
	case s == "sent":
		return BadgeSent
	case s == "generated":
		return BadgeGenerated
	default:
		return BadgePending
	}
}

func badgeStyle(kind BadgeKind) lipgloss.Style {
	switch kind {
	case BadgeComplete:
		return StyleGreen
	case BadgeProgress:
		return StyleBlue
	case BadgeSent:
		return StylePurple
	case BadgeGenerated:
		return StyleYellow
	default:
		return StyleYellow
	}
}

// StatusBadge renders a colored status pill. Empty statuses display as
// "Pending".
func StatusBadge(status string) string {
	if status == "" {
		status = "Pending"
	}
	return badgeStyle(ClassifyStatus(status)).Render("● " + status)
}

// ActivityIcon classifies an activity type into a display glyph by
// case-insensitive substring match, defaulting to the generic person icon.
func ActivityIcon(activityType string) string {
	t := strings.ToLower(activityType)
	switch {
	case strings.Contains(t, "email"), strings.Contains(t, "reminder"):
		return "📧"
	case strings.Contains(t, "document"):
		return "📄"
	case strings.Contains(t, "complete"):
		return "✅"
	case strings.Contains(t, "status"):
		return "🔄"
	default:
		return "👤"
	}
}
