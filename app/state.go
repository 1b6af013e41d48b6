package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lixenwraith/hsterm/cache"
	"github.com/lixenwraith/hsterm/schedule"
	"github.com/lixenwraith/hsterm/terminal"
	"github.com/lixenwraith/hsterm/theme"
)

// maxLogLen bounds the error log printed on exit
const maxLogLen = 8192

// Mode selects the main view
type Mode int

const (
	ModeOverview Mode = iota
	ModeCanteen
	ModeTimetable
	modeCount
)

// Next cycles to the following mode
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

func (m Mode) String() string {
	switch m {
	case ModeOverview:
		return "overview"
	case ModeCanteen:
		return "canteen"
	case ModeTimetable:
		return "timetable"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Action tells the loop what to do after an update
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	// ActionResize asks the loop to re-query the terminal size
	ActionResize
)

// State is everything the views render from
type State struct {
	Course  string
	Version string
	Theme   theme.Theme

	Day       schedule.Day
	Timetable schedule.Plan
	Canteen   schedule.Plan

	// Errors is a stack, the last one is shown until dismissed
	Errors []string
	Mode   Mode

	Width, Height int

	log strings.Builder
}

// NewState returns the initial state for course at time now
func NewState(course, version string, th theme.Theme, now time.Time) *State {
	return &State{
		Course:    course,
		Version:   version,
		Theme:     th,
		Day:       InitialDay(now),
		Timetable: make(schedule.Plan),
		Canteen:   make(schedule.Plan),
		Width:     terminal.DefaultWidth,
		Height:    terminal.DefaultHeight,
	}
}

// InitialDay is today, or tomorrow in the evening, moved past weekends
func InitialDay(now time.Time) schedule.Day {
	d := schedule.DayOf(now)
	if now.Hour() > 18 {
		d = d.Next()
	}
	if d.Weekday() == time.Saturday {
		d = d.Next()
	}
	if d.Weekday() == time.Sunday {
		d = d.Next()
	}
	return d
}

// Restore merges cached plans into s
func (s *State) Restore(d *cache.Data) {
	if d.Empty() {
		return
	}
	s.Timetable.Merge(d.Timetable)
	s.Canteen.Merge(d.Canteen)
}

// Data returns the plans for caching
func (s *State) Data() *cache.Data {
	return &cache.Data{Canteen: s.Canteen, Timetable: s.Timetable}
}

// Loading reports whether either plan is still empty
func (s *State) Loading() bool {
	return len(s.Timetable) == 0 || len(s.Canteen) == 0
}

// Logf appends a line to the exit log while it is below its bound
func (s *State) Logf(format string, args ...any) {
	log.Printf(format, args...)
	if s.log.Len() >= maxLogLen {
		return
	}
	fmt.Fprintf(&s.log, format, args...)
	s.log.WriteByte('\n')
}

// Log returns the exit log
func (s *State) Log() string {
	return s.log.String()
}

// Update applies m and returns what the loop should do next
func (s *State) Update(m Msg) Action {
	switch m := m.(type) {
	case KeyMsg:
		return s.handleKey(m.Event)
	case ResizeMsg:
		s.Width, s.Height = m.W, m.H
	case TimetableMsg:
		s.Timetable.Merge(m.Plan)
	case CanteenMsg:
		s.Canteen.Merge(m.Plan)
	case ErrorMsg:
		s.Logf("Error: %v", m.Err)
		s.Errors = append(s.Errors, m.Err.Error())
	case QuitMsg:
		return ActionQuit
	}
	return ActionNone
}

func (s *State) handleKey(ev terminal.Event) Action {
	switch {
	case ev.IsRune('m'), ev.IsRune('M'):
		s.Mode = s.Mode.Next()
	case ev.Is(terminal.KeyRight), ev.IsRune('l'), ev.IsRune('L'):
		s.Day = s.Day.Next()
	case ev.Is(terminal.KeyLeft), ev.IsRune('h'), ev.IsRune('H'):
		s.Day = s.Day.Prev()
	case ev.IsCtrl('L'):
		return ActionResize
	case ev.Key == terminal.KeyRune && ev.Mod == terminal.ModCtrl,
		ev.Is(terminal.KeyEscape), ev.IsRune('q'), ev.IsRune('Q'):
		return ActionQuit
	case ev.Is(terminal.KeyEnter):
		if n := len(s.Errors); n > 0 {
			s.Errors = s.Errors[:n-1]
		}
	}
	return ActionNone
}
