package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solutionspm/onboard/internal/domain"
)

func TestChartBarCells(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		maxVal int
		want   int
	}{
		{"max value fills the ceiling", 10, 10, chartCeiling},
		{"half value is half scale", 5, 10, chartCeiling / 2},
		{"zero count keeps minimum bar", 0, 10, 1},
		{"zero max does not divide by zero", 3, 0, chartCeiling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chartBarCells(tt.count, tt.maxVal))
		})
	}
}

func TestStatusChart(t *testing.T) {
	s := domain.Summary{Total: 10, Pending: 2, InProgress: 3, Complete: 5}
	out := StatusChart(s)

	for _, label := range []string{"Pending", "In Progress", "Complete"} {
		assert.Contains(t, out, label)
	}
	// Counts rendered alongside the bars.
	for _, n := range []string{" 2", " 3", " 5"} {
		assert.Contains(t, out, n)
	}
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestStatusChart_EmptySummary(t *testing.T) {
	out := StatusChart(domain.Summary{})
	// Every bar keeps its minimum cell even with zero counts.
	assert.Equal(t, 3, strings.Count(out, filledBlock))
}

func TestDocProgress(t *testing.T) {
	out := DocProgress(2, 5, 10)
	assert.Contains(t, out, "2/5")
	assert.Contains(t, out, "40%")

	out = DocProgress(0, 0, 10)
	assert.Contains(t, out, "0/0")
	assert.Contains(t, out, "0%")
}
