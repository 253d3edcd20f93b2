package domain

import "fmt"

// Period is an inclusive date range bounding the requested display window.
type Period struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// NewPeriod validates start <= end.
func NewPeriod(start, end Date) (Period, error) {
	p := Period{Start: start, End: end}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// DefaultPeriod is the last year ending today on the process clock.
func DefaultPeriod() Period {
	return DefaultPeriodEnding(Today())
}

// DefaultPeriodEnding returns [today - 1 year + 1 day, today]. The year is
// subtracted on the calendar, so leap years shift the day count.
func DefaultPeriodEnding(today Date) Period {
	return Period{Start: today.AddDate(-1, 0, 1), End: today}
}

func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: period bounds are required", ErrInvalidArgument)
	}
	if p.Start.After(p.End) {
		return fmt.Errorf("%w: period start %s is after end %s", ErrInvalidArgument, p.Start, p.End)
	}
	return nil
}

// Contains reports whether d falls within the period, bounds included.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days returns the number of calendar days in the period.
func (p Period) Days() int {
	return p.Start.DaysUntil(p.End) + 1
}

func (p Period) String() string {
	return p.Start.String() + ".." + p.End.String()
}
