package grid

import (
	"fmt"

	"github.com/alexanderramin/heatmap/internal/domain"
)

const describeLayout = "Mon, Jan 2, 2006"

// ActiveDays counts records inside period with at least one unit of activity.
func ActiveDays(records []domain.DayRecord, period domain.Period) int {
	n := 0
	for _, r := range records {
		if r.Count > 0 && period.Contains(r.Date) {
			n++
		}
	}
	return n
}

// Describe returns the hover text for a grid cell, e.g.
// "Mon, Jan 1, 2024: 3 contributions". Padding days outside period and
// zero-count days read "No contributions".
func Describe(r domain.DayRecord, period domain.Period) string {
	label := r.Date.Format(describeLayout)
	if r.Count == 0 || !period.Contains(r.Date) {
		return label + ": No contributions"
	}
	if r.Count == 1 {
		return label + ": 1 contribution"
	}
	return fmt.Sprintf("%s: %d contributions", label, r.Count)
}
