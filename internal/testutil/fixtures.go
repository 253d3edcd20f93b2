package testutil

import (
	"testing"

	"github.com/alexanderramin/heatmap/internal/domain"
	"github.com/alexanderramin/heatmap/internal/intensity"
)

// Record options
type RecordOption func(*domain.DayRecord)

func WithCount(n int) RecordOption {
	return func(r *domain.DayRecord) {
		r.Count = n
		r.Level = intensity.Realistic.ClassifyClamped(n)
	}
}

func WithLevel(l domain.Level) RecordOption {
	return func(r *domain.DayRecord) {
		r.Level = l
	}
}

// NewTestRecord builds a zero-activity record for a YYYY-MM-DD literal.
func NewTestRecord(date string, opts ...RecordOption) domain.DayRecord {
	r := domain.DayRecord{Date: domain.MustParseDate(date)}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RecordsBetween returns one record per day from start to end inclusive,
// each built with opts.
func RecordsBetween(start, end string, opts ...RecordOption) []domain.DayRecord {
	from := domain.MustParseDate(start)
	to := domain.MustParseDate(end)
	var out []domain.DayRecord
	for d := from; !d.After(to); d = d.AddDays(1) {
		out = append(out, NewTestRecord(d.String(), opts...))
	}
	return out
}

// NewTestPeriod builds a validated period from YYYY-MM-DD literals.
func NewTestPeriod(t *testing.T, start, end string) domain.Period {
	t.Helper()
	p, err := domain.NewPeriod(domain.MustParseDate(start), domain.MustParseDate(end))
	if err != nil {
		t.Fatalf("invalid test period %s..%s: %v", start, end, err)
	}
	return p
}
