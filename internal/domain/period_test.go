package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod_RejectsInverted(t *testing.T) {
	_, err := NewPeriod(MustParseDate("2024-02-01"), MustParseDate("2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewPeriod_SingleDay(t *testing.T) {
	d := MustParseDate("2024-02-01")
	p, err := NewPeriod(d, d)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Days())
	assert.True(t, p.Contains(d))
}

func TestPeriod_ValidateRequiresBounds(t *testing.T) {
	assert.ErrorIs(t, Period{}.Validate(), ErrInvalidArgument)
}

func TestDefaultPeriodEnding_RegularYear(t *testing.T) {
	p := DefaultPeriodEnding(MustParseDate("2025-10-19"))
	assert.Equal(t, "2024-10-20", p.Start.String())
	assert.Equal(t, "2025-10-19", p.End.String())
	assert.Equal(t, 365, p.Days())
}

func TestDefaultPeriodEnding_SpansLeapDay(t *testing.T) {
	p := DefaultPeriodEnding(MustParseDate("2024-03-15"))
	assert.Equal(t, "2023-03-16", p.Start.String())
	assert.Equal(t, 366, p.Days(), "calendar year subtraction keeps Feb 29 in range")
}

func TestDefaultPeriodEnding_OnLeapDay(t *testing.T) {
	p := DefaultPeriodEnding(MustParseDate("2024-02-29"))
	assert.Equal(t, "2023-03-02", p.Start.String())
	assert.True(t, p.Start.Before(p.End))
}

func TestDefaultPeriod_EndsToday(t *testing.T) {
	p := DefaultPeriod()
	require.NoError(t, p.Validate())
	assert.Equal(t, Today(), p.End)
}

func TestPeriod_Contains(t *testing.T) {
	p := Period{Start: MustParseDate("2024-01-10"), End: MustParseDate("2024-01-20")}
	assert.True(t, p.Contains(MustParseDate("2024-01-10")))
	assert.True(t, p.Contains(MustParseDate("2024-01-20")))
	assert.False(t, p.Contains(MustParseDate("2024-01-09")))
	assert.False(t, p.Contains(MustParseDate("2024-01-21")))
}

func TestDayRecord_Validate(t *testing.T) {
	d := MustParseDate("2024-01-01")
	assert.NoError(t, DayRecord{Date: d, Count: 3, Level: LevelMedium}.Validate())
	assert.ErrorIs(t, DayRecord{Date: d, Count: -1}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, DayRecord{Date: d, Level: 5}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, DayRecord{Count: 1}.Validate(), ErrInvalidArgument)
}

func TestErrDuplicateDate_IsInvalidArgument(t *testing.T) {
	assert.ErrorIs(t, ErrDuplicateDate, ErrInvalidArgument)
}

func TestPeriod_DaysBeyondDurationRange(t *testing.T) {
	p, err := NewPeriod(MustParseDate("1700-01-01"), MustParseDate("2024-12-31"))
	require.NoError(t, err)
	assert.Equal(t, 118704, p.Days())
}
