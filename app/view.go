package app

import (
	"fmt"

	"github.com/lixenwraith/hsterm/schedule"
	"github.com/lixenwraith/hsterm/terminal"
	"github.com/lixenwraith/hsterm/terminal/tui"
)

// tableDays is how many days the weekly tables span
const tableDays = 7

const helpText = "HELP\n\nq => Quit\nm => Modus\n▶ => Next\n◀ => Prev"

// View builds the widget tree for the current state
func (s *State) View() tui.Widget {
	switch {
	case len(s.Errors) > 0:
		return s.errorView()
	case s.Mode == ModeTimetable:
		return s.tableView(s.Timetable)
	case s.Mode == ModeCanteen:
		return s.tableView(s.Canteen)
	}
	return s.overview()
}

// stripe alternates entry backgrounds
func (s *State) stripe(i int) terminal.Color {
	if i%2 == 1 {
		return s.Theme.TextBack1
	}
	return s.Theme.TextBack2
}

func (s *State) dayEntries(entries []string) *tui.GridV {
	col := tui.NewGridV()
	for i, e := range entries {
		text := tui.Margined(tui.NewColoredText(s.Theme.Text, e), 1, 0)
		col.Add(tui.Margined(tui.WithBackground(tui.Centered(text), s.stripe(i)), 1, 0))
	}
	return col
}

func (s *State) overview() tui.Widget {
	th := s.Theme

	loading := ""
	if s.Loading() {
		loading = "\n\nLädt..."
	}
	info := fmt.Sprintf("Hochschul-App \n\tv%s\n\n%-10s %s%s",
		s.Version, Weekday(s.Day), DateLabel(s.Day), loading)

	heading := tui.Margined(
		tui.WithBackground(tui.Margined(tui.NewColoredText(th.Heading, info), 2, 1), th.TextBack1),
		1, 1)
	help := tui.Margined(tui.NewColoredText(th.Heading, helpText), 4, 2)

	root := tui.NewGridH(
		tui.Centered(tui.Margined(tui.NewGridV(heading, help), 2, 1)),
		tui.Centered(tui.Margined(s.dayEntries(s.Timetable[s.Day]), 2, 1)),
		tui.Centered(tui.Margined(s.dayEntries(s.Canteen[s.Day]), 2, 1)),
	)
	return tui.WithBackground(tui.Centered(root), th.Background)
}

// tableView lays out a week of plan starting at the selected day, one
// column per day that has data. Stripes continue across columns.
func (s *State) tableView(plan schedule.Plan) tui.Widget {
	th := s.Theme

	root := tui.NewGridH()
	i := 0
	for n := range tableDays {
		d := s.Day.AddDays(n)
		entries, ok := plan[d]
		if !ok {
			continue
		}

		label := fmt.Sprintf("%-10s\n%s", Weekday(d), DateLabel(d))
		col := tui.NewGridV(tui.Centered(tui.NewColoredText(th.Heading, label)))
		for _, e := range entries {
			col.Add(tui.WithBackground(tui.Centered(tui.NewColoredText(th.Text, e)), s.stripe(i)))
			i++
		}
		root.Add(col)
	}
	return tui.WithBackground(tui.Centered(root), th.Background)
}

func (s *State) errorView() tui.Widget {
	th := s.Theme
	msg := s.Errors[len(s.Errors)-1] + "\n\nPress Enter to continue."

	dialog := tui.WithBackground(
		tui.Boxed(tui.NewColoredText(th.Heading, msg), tui.BoxDouble, th.Error),
		th.TextBack1)
	return tui.WithBackground(tui.Centered(tui.Capped(dialog, 40, 80)), th.Background)
}
