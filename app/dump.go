package app

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/hsterm/crawler"
	"github.com/lixenwraith/hsterm/schedule"
)

// dump is the -json output: date to the day's entries joined by newlines
type dump struct {
	Timetable map[string]string `json:"timetable"`
	Canteen   map[string]string `json:"canteen"`
}

func flatten(p schedule.Plan) map[string]string {
	out := make(map[string]string, len(p))
	for d, entries := range p {
		out[d.String()] = strings.Join(entries, "\n")
	}
	return out
}

// DumpJSON fetches this week's plans and writes them to w as indented JSON.
// A failed fetch yields an empty object for that plan.
func DumpJSON(ctx context.Context, w io.Writer, f Fetcher, course string) error {
	var (
		g                  errgroup.Group
		timetable, canteen schedule.Plan
	)
	g.Go(func() error {
		p, err := f.Timetable(ctx, crawler.ThisWeek, course)
		if err != nil {
			log.Printf("dump timetable: %v", err)
			return nil
		}
		timetable = p
		return nil
	})
	g.Go(func() error {
		p, err := f.Canteen(ctx, crawler.ThisWeek)
		if err != nil {
			log.Printf("dump canteen: %v", err)
			return nil
		}
		canteen = p
		return nil
	})
	g.Wait()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dump{Timetable: flatten(timetable), Canteen: flatten(canteen)})
}
