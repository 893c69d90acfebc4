package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeScope_DayRequiresMonth(t *testing.T) {
	_, err := NewTimeScope(2024, 0, 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTimeScope_YearBounds(t *testing.T) {
	_, err := NewTimeScope(1899, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTimeScope(2101, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTimeScope(1900, 0, 0)
	assert.NoError(t, err)
}

func TestNewTimeScope_InvalidMonth(t *testing.T) {
	_, err := NewTimeScope(2024, 13, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewTimeScope_NonexistentDay(t *testing.T) {
	// June has 30 days; 2023 is not a leap year.
	_, err := NewTimeScope(2024, 6, 31)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTimeScope(2023, 2, 29)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewTimeScope(2024, 2, 29)
	assert.NoError(t, err)
}

func TestTimeScope_Granularity(t *testing.T) {
	year, err := NewTimeScope(2024, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, GranularityYear, year.Granularity())

	month, err := NewTimeScope(2024, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, GranularityMonth, month.Granularity())

	day, err := NewTimeScope(2024, 6, 15)
	require.NoError(t, err)
	assert.Equal(t, GranularityDay, day.Granularity())
}

func TestTimeScope_Days_LeapYear(t *testing.T) {
	scope, err := NewTimeScope(2024, 0, 0)
	require.NoError(t, err)

	days := scope.Days()
	require.Len(t, days, 366)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), days[len(days)-1])
}

func TestTimeScope_Days_Month(t *testing.T) {
	scope, err := NewTimeScope(2024, 6, 0)
	require.NoError(t, err)

	days := scope.Days()
	require.Len(t, days, 30)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), days[len(days)-1])
}

func TestTimeScope_Days_SingleDay(t *testing.T) {
	scope, err := NewTimeScope(2024, 3, 15)
	require.NoError(t, err)

	days := scope.Days()
	require.Len(t, days, 1)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), days[0])
}

func TestTimeScope_Days_Restartable(t *testing.T) {
	scope, err := NewTimeScope(2024, 2, 0)
	require.NoError(t, err)

	first := scope.Days()
	second := scope.Days()
	assert.Equal(t, first, second)
}

func TestTimeScope_ClosestDay(t *testing.T) {
	feb, err := NewTimeScope(2024, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), feb.ClosestDay())

	year, err := NewTimeScope(2024, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), year.ClosestDay())

	day, err := NewTimeScope(2024, 3, 15)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), day.ClosestDay())
}

func TestTimeScope_Range_Inclusive(t *testing.T) {
	scope, err := NewTimeScope(2024, 6, 0)
	require.NoError(t, err)

	start, end := scope.Range()
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestTimeScope_String(t *testing.T) {
	year, _ := NewTimeScope(2024, 0, 0)
	assert.Equal(t, "2024", year.String())

	month, _ := NewTimeScope(2024, 6, 0)
	assert.Equal(t, "2024-06", month.String())

	day, _ := NewTimeScope(2024, 6, 5)
	assert.Equal(t, "2024-06-05", day.String())
}
