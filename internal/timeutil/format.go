// Package timeutil formats instants into the display strings stored on
// notifications and used in booking messages.
package timeutil

import "time"

const (
	dateLayout = "Monday, January 2, 2006"
	timeLayout = "03:04 PM"
)

// FormatDate renders a full weekday date, e.g. "Friday, March 14, 2025".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTime renders a 12-hour clock time, e.g. "04:30 PM".
func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}
