package utils

import "time"

// Day-window filtering is computed in UTC regardless of the server's
// local timezone, so the same query means the same thing on every
// deployment.

// ParseDay parses a YYYY-MM-DD date string as a UTC calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// DayWindow returns the inclusive [start, end] of t's UTC calendar day.
func DayWindow(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	return start, end
}
