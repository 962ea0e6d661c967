package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonday(t *testing.T) {
	d, err := ParseMonday("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d.Weekday())
	assert.Equal(t, "2024-06-03", d.Format(DateLayout))
}

func TestParseMonday_NotAMonday(t *testing.T) {
	_, err := ParseMonday("2024-06-04")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a Monday")
}

func TestParseMonday_BadFormat(t *testing.T) {
	for _, input := range []string{"04-06-2024", "2024/06/03", "not-a-date", ""} {
		_, err := ParseMonday(input)
		assert.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	}
}

func TestEnd(t *testing.T) {
	start, err := ParseMonday("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-07", End(start).Format(DateLayout))
}

func TestDayName(t *testing.T) {
	start, err := ParseMonday("2024-06-03")
	require.NoError(t, err)

	day, ok := DayName(start, start)
	require.True(t, ok)
	assert.Equal(t, "Monday", day)

	day, ok = DayName(start.AddDate(0, 0, 4), start)
	require.True(t, ok)
	assert.Equal(t, "Friday", day)

	_, ok = DayName(start.AddDate(0, 0, 5), start)
	assert.False(t, ok, "Saturday falls outside the window")

	_, ok = DayName(start.AddDate(0, 0, -1), start)
	assert.False(t, ok, "previous Sunday falls outside the window")
}

func TestEmptyWindow(t *testing.T) {
	m := EmptyWindow()
	assert.Len(t, m, 5)
	for _, day := range Weekdays {
		v, present := m[day]
		assert.True(t, present, "missing key %s", day)
		assert.Nil(t, v)
	}
}
