package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lixenwraith/hsterm/crawler"
	"github.com/lixenwraith/hsterm/schedule"
	"github.com/lixenwraith/hsterm/terminal/tui"
	"github.com/lixenwraith/hsterm/theme"
)

// monday is 2024-05-13
var monday = schedule.Day{Year: 2024, Month: time.May, Day: 13}

var errDown = errors.New("site down")

type fakeFetcher struct {
	timetable map[crawler.Query]schedule.Plan
	canteen   map[crawler.Query]schedule.Plan
}

func (f *fakeFetcher) Timetable(_ context.Context, q crawler.Query, course string) (schedule.Plan, error) {
	p, ok := f.timetable[q]
	if !ok {
		return nil, errDown
	}
	return p, nil
}

func (f *fakeFetcher) Canteen(_ context.Context, q crawler.Query) (schedule.Plan, error) {
	p, ok := f.canteen[q]
	if !ok {
		return nil, errDown
	}
	return p, nil
}

func newTestState() *State {
	s := NewState("AI4", "1.0", theme.Basic(), monday.Time(time.Local))
	s.Width, s.Height = 120, 30
	return s
}

// screen reads the runes of w laid out at width x height
func screen(w tui.Widget, width, height int) string {
	w.AssignSize(width, height)
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c, ok := w.CellAt(x, y)
			switch {
			case !ok:
				b.WriteByte(' ')
			case c.IsContinuation():
			default:
				b.WriteRune(c.Rune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
