package app

import (
	"fmt"
	"time"

	"github.com/lixenwraith/hsterm/schedule"
)

var weekdays = [...]string{
	time.Sunday:    "Sonntag",
	time.Monday:    "Montag",
	time.Tuesday:   "Dienstag",
	time.Wednesday: "Mittwoch",
	time.Thursday:  "Donnerstag",
	time.Friday:    "Freitag",
	time.Saturday:  "Samstag",
}

// Weekday returns the German name of d's weekday
func Weekday(d schedule.Day) string {
	return weekdays[d.Weekday()]
}

// DateLabel formats d as DD.MM.YYYY
func DateLabel(d schedule.Day) string {
	return fmt.Sprintf("%02d.%02d.%d", d.Day, int(d.Month), d.Year)
}
