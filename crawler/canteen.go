package crawler

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/lixenwraith/hsterm/schedule"
)

// Menu lines starting with these carry allergen footnotes only
var menuNoise = []string{"enthält Allergene", "Kennzeichnungen"}

// Canteen fetches the canteen menu for the queried week. On Sundays the
// current week is the one starting tomorrow.
func (c *Client) Canteen(ctx context.Context, q Query) (schedule.Plan, error) {
	body, err := c.fetch(ctx, c.CanteenURL)
	if err != nil {
		return nil, fmt.Errorf("canteen: %w", err)
	}

	if q == NextWeek {
		doc, err := parse(body)
		if err != nil {
			return nil, fmt.Errorf("canteen: %w", err)
		}
		href, ok := doc.Find(".next-week.text-right").First().Attr("href")
		if !ok {
			return nil, fmt.Errorf("canteen: %w: next week link", ErrNoTable)
		}
		if body, err = c.fetch(ctx, c.BaseURL+href); err != nil {
			return nil, fmt.Errorf("canteen next week: %w", err)
		}
	}

	// Menu items are separated by line breaks only
	doc, err := parse(strings.ReplaceAll(body, "<br>", "\n"))
	if err != nil {
		return nil, fmt.Errorf("canteen: %w", err)
	}

	days := doc.Find(".tab-content .menu-tagesplan")
	if days.Length() == 0 {
		return nil, fmt.Errorf("canteen: %w: .menu-tagesplan", ErrNoTable)
	}

	var cols [][]string
	days.Each(func(_ int, day *goquery.Selection) {
		var menus []string
		day.Find(".menu-info").Each(func(_ int, s *goquery.Selection) {
			if m := menuText(s.Text()); m != "" {
				menus = append(menus, m)
			}
		})
		cols = append(cols, menus)
	})

	start := schedule.WeekStart(c.today()).AddDays(q.offset())
	return schedule.Columns(start, cols), nil
}

// menuText tidies a menu description and strips footnote lines
func menuText(s string) string {
	var kept []string
	for _, line := range strings.Split(schedule.Tidy(s), "\n") {
		if line == "" || hasAnyPrefix(line, menuNoise) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
