package grid

import (
	"fmt"
	"time"

	"github.com/alexanderramin/heatmap/internal/domain"
)

// wednesday is the fallback representative for weeks that are pure padding.
const wednesday = int(time.Wednesday)

// SegmentMonths attributes each week column to one month and run-length
// encodes the result into header spans. A week belongs to the month of its
// first day inside period, or of its Wednesday when no day is inside.
// The spans always sum to len(weeks).
func SegmentMonths(weeks []domain.Week, period domain.Period) ([]domain.MonthSpan, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("segmenting months: %w", err)
	}

	spans := []domain.MonthSpan{}
	var (
		curYear  int
		curMonth time.Month
	)
	for _, w := range weeks {
		rep := representativeDay(w, period)
		if len(spans) > 0 && rep.Year() == curYear && rep.Month() == curMonth {
			spans[len(spans)-1].Span++
			continue
		}
		curYear, curMonth = rep.Year(), rep.Month()
		spans = append(spans, domain.MonthSpan{Label: domain.MonthLabel(curMonth), Span: 1})
	}
	return spans, nil
}

func representativeDay(w domain.Week, period domain.Period) domain.Date {
	for _, day := range w {
		if period.Contains(day.Date) {
			return day.Date
		}
	}
	return w[wednesday].Date
}
