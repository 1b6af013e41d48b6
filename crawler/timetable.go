package crawler

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lixenwraith/hsterm/schedule"
)

// CourseIndex maps lower-cased course names to their timetable URLs
func (c *Client) CourseIndex(ctx context.Context) (map[string]string, error) {
	doc, err := c.document(ctx, c.TimetableIndexURL)
	if err != nil {
		return nil, fmt.Errorf("course index: %w", err)
	}

	index := make(map[string]string)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		rest, ok := strings.CutPrefix(href, "https://")
		if !ok {
			rest, ok = strings.CutPrefix(href, "http://")
		}
		if !ok || !strings.HasPrefix(rest, courseLinkPrefix) {
			return
		}
		name := strings.ToLower(strings.TrimSpace(s.Text()))
		if name == "" {
			return
		}
		index[name] = "https://" + rest
	})

	if len(index) == 0 {
		return nil, ErrEmptyIndex
	}
	return index, nil
}

// Timetable fetches the lecture plan of course for the queried week.
// Course names are matched case-insensitively.
func (c *Client) Timetable(ctx context.Context, q Query, course string) (schedule.Plan, error) {
	index, err := c.CourseIndex(ctx)
	if err != nil {
		return nil, err
	}

	link, ok := index[strings.ToLower(course)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, course)
	}
	if q == NextWeek {
		link = strings.Replace(link, "week=0", "week=1", 1)
	}

	doc, err := c.document(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("timetable %s: %w", course, err)
	}

	rows, err := timetableRows(doc)
	if err != nil {
		return nil, fmt.Errorf("timetable %s: %w", course, err)
	}

	start := schedule.LastMonday(c.today()).AddDays(q.offset())
	return schedule.Columns(start, compact(schedule.Transpose(rows))), nil
}

// timetableRows returns one slice per hour row, one entry per weekday
func timetableRows(doc *goquery.Document) ([][]string, error) {
	table := doc.Find(".timetable").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: .timetable", ErrNoTable)
	}

	var rows [][]string
	table.Find("[scope=row]").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td.lastcol").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, schedule.Tidy(td.Text()))
		})
		rows = append(rows, cells)
	})
	return rows, nil
}

// compact drops empty slots from every day column
func compact(cols [][]string) [][]string {
	for i, col := range cols {
		kept := col[:0]
		for _, entry := range col {
			if entry != "" {
				kept = append(kept, entry)
			}
		}
		cols[i] = kept
	}
	return cols
}
