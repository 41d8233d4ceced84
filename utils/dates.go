// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// CombineDateTime merges a date and an "HH:MM" time of day into one
// instant in local time. An unparseable time yields midnight.
func CombineDateTime(date time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return BeginningOfDay(date)
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, time.Local)
}

// WeekdayIndex maps Go's Sunday-first weekday to the availability
// table convention (0=Monday .. 6=Sunday).
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
