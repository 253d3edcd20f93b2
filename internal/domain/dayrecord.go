package domain

import (
	"fmt"
	"time"
)

// Level is the ordinal intensity of a day's activity.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelMax
)

// Levels lists every intensity level in ascending order.
var Levels = []Level{LevelNone, LevelLow, LevelMedium, LevelHigh, LevelMax}

func (l Level) Valid() bool {
	return l >= LevelNone && l <= LevelMax
}

var MonthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthLabel returns the three-letter English name of m.
func MonthLabel(m time.Month) string {
	return MonthNames[m-1]
}

// DayRecord is one calendar day's activity count and intensity level.
type DayRecord struct {
	Date  Date  `json:"date"`
	Count int   `json:"count"`
	Level Level `json:"level"`
}

// EmptyDay is the zero-activity placeholder synthesized for a missing day.
func EmptyDay(d Date) DayRecord {
	return DayRecord{Date: d}
}

func (r DayRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: record date is required", ErrInvalidArgument)
	}
	if r.Count < 0 {
		return fmt.Errorf("%w: %s: count %d is negative", ErrInvalidArgument, r.Date, r.Count)
	}
	if !r.Level.Valid() {
		return fmt.Errorf("%w: %s: level %d out of range 0-4", ErrInvalidArgument, r.Date, r.Level)
	}
	return nil
}

// Week is a Sunday-first run of exactly seven days.
type Week [7]DayRecord

// First returns the Sunday entry.
func (w Week) First() DayRecord { return w[0] }

// Last returns the Saturday entry.
func (w Week) Last() DayRecord { return w[6] }

// MonthSpan is a month header label and the number of week columns under it.
type MonthSpan struct {
	Label string `json:"label"`
	Span  int    `json:"span"`
}
