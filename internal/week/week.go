// Package week maps calendar dates to the canonical week bucket used as
// the weekly meal plan cache key.
package week

import "time"

// Key identifies one cached weekly plan for a user. Month and WeekOfMonth
// derive from the anchor date a request was made on, not from StartDate,
// so a week spanning a month boundary is filed under the month of the
// request.
type Key struct {
	Year        int
	Month       int
	WeekOfMonth int
}

// Week is the resolved bucket for an anchor date.
type Week struct {
	Key
	WeekNumber int
	StartDate  time.Time
	EndDate    time.Time
}

// Resolve maps an anchor date to its week bucket. The result is
// deterministic for any valid date: two dates in the same ISO week on the
// same side of a month boundary resolve to the same key.
func Resolve(date time.Time) Week {
	year, month, day := date.Date()

	start := startOfWeek(date)
	end := start.AddDate(0, 0, 6)
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(999*time.Millisecond), end.Location())

	return Week{
		Key: Key{
			Year:        year,
			Month:       int(month),
			WeekOfMonth: (day + 6) / 7,
		},
		WeekNumber: weekNumber(date),
		StartDate:  start,
		EndDate:    end,
	}
}

// startOfWeek returns the Monday on or before date, at start of day.
func startOfWeek(date time.Time) time.Time {
	back := int(date.Weekday()) - 1
	if date.Weekday() == time.Sunday {
		back = 6
	}
	monday := date.AddDate(0, 0, -back)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}

// weekNumber is the day-of-year week index, offset by the weekday of
// Jan 1 (Sunday = 0) so that weeks line up with the calendar grid.
func weekNumber(date time.Time) int {
	jan1 := time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
	dayOfYear := date.YearDay() - 1
	firstWeekday := int(jan1.Weekday())
	return (dayOfYear + firstWeekday + 1 + 6) / 7
}
