package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD representation used as the join key
// between raw data and bucketed weeks.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a timezone-naive calendar date. The zero value is not a valid date.
//
// Internally the date is held as midnight UTC so that day arithmetic never
// crosses a DST transition; callers only ever observe the civil fields.
type Date struct {
	t time.Time
}

// NewDate returns the calendar date y-m-d, normalizing overflow the way
// time.Date does (e.g. Feb 30 becomes Mar 1 or 2).
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the wall-clock date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the local calendar date of the process clock.
func Today() Date {
	return DateOf(time.Now())
}

// DateKey returns the canonical YYYY-MM-DD key for t's wall-clock date.
// It never converts to UTC first, which would shift the date near midnight.
func DateKey(t time.Time) string {
	return DateOf(t).String()
}

// ParseDate parses a zero-padded YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) {
		return Date{}, fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", ErrInvalidArgument, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: invalid date %q (expected YYYY-MM-DD)", ErrInvalidArgument, s)
	}
	if t.IsZero() {
		// 0001-01-01 is the zero Date and cannot be told apart from "unset".
		return Date{}, fmt.Errorf("%w: date %q is out of range", ErrInvalidArgument, s)
	}
	return Date{t: t}, nil
}

// MustParseDate is ParseDate for literals known to be valid. It panics otherwise.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the date n whole days later (earlier when n < 0).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddDate is calendar-aware: AddDate(-1, 0, 0) on Feb 29 yields Mar 1 of the
// previous year, matching time.Time.AddDate normalization.
func (d Date) AddDate(years, months, days int) Date {
	return Date{t: d.t.AddDate(years, months, days)}
}

// DaysUntil returns the number of days from d to other (negative if other is earlier).
// Both dates sit at midnight UTC, so the second difference is an exact
// multiple of a day and never overflows the way time.Duration would.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

// StartOfWeek returns the Sunday on or before d.
func (d Date) StartOfWeek() Date {
	return d.AddDays(-int(d.Weekday()))
}

// EndOfWeek returns the Saturday on or after d.
func (d Date) EndOfWeek() Date {
	return d.AddDays(int(time.Saturday - d.Weekday()))
}

// Format formats the date with a time package layout.
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
