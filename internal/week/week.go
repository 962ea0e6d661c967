package week

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Weekdays is the fixed Monday..Friday window every weekly view is built over.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ParseMonday parses a YYYY-MM-DD date and requires it to fall on a Monday.
func ParseMonday(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week_start format, use YYYY-MM-DD")
	}
	if d.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("week_start must be a Monday")
	}
	return d, nil
}

// End returns the Friday of the week starting at the given Monday.
func End(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 4)
}

// DayName maps a date inside the Monday..Friday window to its weekday name.
// Dates outside the window return "", false.
func DayName(date time.Time, weekStart time.Time) (string, bool) {
	offset := int(date.Sub(weekStart).Hours() / 24)
	if offset < 0 || offset >= len(Weekdays) {
		return "", false
	}
	return Weekdays[offset], true
}

// EmptyWindow returns the fixed five-key map with every day unset.
func EmptyWindow() map[string]*string {
	m := make(map[string]*string, len(Weekdays))
	for _, day := range Weekdays {
		m[day] = nil
	}
	return m
}
