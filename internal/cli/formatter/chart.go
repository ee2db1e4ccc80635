package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solutionspm/onboard/internal/domain"
)

// chartCeiling is the fixed cell ceiling a full-scale bar occupies.
const chartCeiling = 28

// chartBarCells scales count linearly against maxVal into the ceiling.
// Bars never collapse below one cell, mirroring the minimum bar height of
// the status chart.
func chartBarCells(count, maxVal int) int {
	if maxVal < 1 {
		maxVal = 1
	}
	cells := count * chartCeiling / maxVal
	if cells < 1 {
		cells = 1
	}
	if cells > chartCeiling {
		cells = chartCeiling
	}
	return cells
}

// StatusChart renders the reports-page status breakdown as horizontal bars,
// one per status, scaled against the largest status count.
func StatusChart(s domain.Summary) string {
	maxVal := s.MaxStatusCount()

	rows := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{"Pending", s.Pending, StyleYellow},
		{"In Progress", s.InProgress, StyleBlue},
		{"Complete", s.Complete, StyleGreen},
	}

	var b strings.Builder
	for _, r := range rows {
		bar := strings.Repeat(filledBlock, chartBarCells(r.count, maxVal))
		b.WriteString(fmt.Sprintf("%s %s %d\n",
			Dim(padLabel(r.label, 12)),
			r.style.Render(bar),
			r.count,
		))
	}
	return b.String()
}

func padLabel(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
