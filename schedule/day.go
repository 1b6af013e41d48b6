// Package schedule models per-day timetable and canteen entries.
package schedule

import (
	"fmt"
	"time"
)

// Day is a civil date without time zone
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the civil date of t in t's location
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Today returns the local date
func Today() Day {
	return DayOf(time.Now())
}

// Date returns a normalized Day, so Date(2024, 1, 32) is February 1st
func Date(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// Time returns noon of d in loc
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, loc)
}

func (d Day) utc() time.Time {
	return d.Time(time.UTC)
}

// AddDays returns d moved by n days
func (d Day) AddDays(n int) Day {
	return Date(d.Year, d.Month, d.Day+n)
}

// Next returns the following day
func (d Day) Next() Day {
	return d.AddDays(1)
}

// Prev returns the preceding day
func (d Day) Prev() Day {
	return d.AddDays(-1)
}

// Weekday returns the day of the week
func (d Day) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// Before reports whether d is earlier than o
func (d Day) Before(o Day) bool {
	return d.utc().Before(o.utc())
}

// Sub returns the number of days from o to d
func (d Day) Sub(o Day) int {
	return int(d.utc().Sub(o.utc()).Hours() / 24)
}

// String formats d as YYYY-MM-DD
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler, so Day can key JSON objects
func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses YYYY-MM-DD
func (d *Day) UnmarshalText(b []byte) error {
	t, err := time.Parse(time.DateOnly, string(b))
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", b, err)
	}
	*d = DayOf(t)
	return nil
}

// LastMonday returns the Monday of d's week, d itself when it is a Monday
func LastMonday(d Day) Day {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// WeekStart returns the Monday the published week plans for d start on.
// On Sundays that is the upcoming Monday.
func WeekStart(d Day) Day {
	if d.Weekday() == time.Sunday {
		return d.Next()
	}
	return LastMonday(d)
}
