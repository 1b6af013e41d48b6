package cache

import (
	"time"

	"github.com/lixenwraith/hsterm/schedule"
)

// MaxAge is how many days back entries survive a save
const MaxAge = 30

// Data is the cached state of one course
type Data struct {
	Canteen   schedule.Plan `json:"canteen"`
	Timetable schedule.Plan `json:"timetable"`
}

// Empty reports whether d holds no days at all
func (d *Data) Empty() bool {
	return d == nil || len(d.Canteen) == 0 && len(d.Timetable) == 0
}

// pruned returns a copy of d without days older than MaxAge relative to now
func (d *Data) pruned(now time.Time) Data {
	cutoff := schedule.DayOf(now).AddDays(-MaxAge + 1)
	out := Data{Canteen: make(schedule.Plan), Timetable: make(schedule.Plan)}
	out.Canteen.Merge(d.Canteen)
	out.Timetable.Merge(d.Timetable)
	out.Canteen.Prune(cutoff)
	out.Timetable.Prune(cutoff)
	return out
}
