// Package grid arranges day records into the Sunday-first week columns and
// month header spans of a contribution heatmap.
package grid

import (
	"fmt"

	"github.com/alexanderramin/heatmap/internal/domain"
)

const daysPerWeek = 7

// BucketIntoWeeks groups records into whole calendar weeks running from the
// Sunday on or before the earliest record to the Saturday on or after the
// latest. Days without a record become zero-activity placeholders.
//
// Records may arrive in any order. Duplicate dates are rejected with
// domain.ErrDuplicateDate. The input slice is not modified.
func BucketIntoWeeks(records []domain.DayRecord) ([]domain.Week, error) {
	if len(records) == 0 {
		return []domain.Week{}, nil
	}

	byDate := make(map[string]domain.DayRecord, len(records))
	first, last := records[0].Date, records[0].Date
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("bucketing records: %w", err)
		}
		key := r.Date.String()
		if _, dup := byDate[key]; dup {
			return nil, fmt.Errorf("bucketing records: %w %s", domain.ErrDuplicateDate, key)
		}
		byDate[key] = r

		if r.Date.Before(first) {
			first = r.Date
		}
		if r.Date.After(last) {
			last = r.Date
		}
	}

	gridStart := first.StartOfWeek()
	gridEnd := last.EndOfWeek()
	total := gridStart.DaysUntil(gridEnd) + 1

	weeks := make([]domain.Week, 0, total/daysPerWeek)
	for offset := 0; offset < total; offset += daysPerWeek {
		var week domain.Week
		for i := range daysPerWeek {
			d := gridStart.AddDays(offset + i)
			if r, ok := byDate[d.String()]; ok {
				week[i] = r
			} else {
				week[i] = domain.EmptyDay(d)
			}
		}
		weeks = append(weeks, week)
	}
	return weeks, nil
}
