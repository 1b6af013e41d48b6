package schedule

import (
	"maps"
	"slices"
	"strings"
)

// Plan maps days to the entries listed for them, in display order
type Plan map[Day][]string

// Merge copies every day of o into p, replacing days present in both
func (p Plan) Merge(o Plan) {
	maps.Copy(p, o)
}

// Prune removes days earlier than cutoff
func (p Plan) Prune(cutoff Day) {
	maps.DeleteFunc(p, func(d Day, _ []string) bool {
		return d.Before(cutoff)
	})
}

// Days returns the days of p in chronological order
func (p Plan) Days() []Day {
	days := slices.Collect(maps.Keys(p))
	slices.SortFunc(days, func(a, b Day) int {
		return a.Sub(b)
	})
	return days
}

// Columns assigns each column to consecutive days starting at start
func Columns(start Day, cols [][]string) Plan {
	p := make(Plan, len(cols))
	for i, col := range cols {
		p[start.AddDays(i)] = col
	}
	return p
}

// Tidy trims every line of s and drops empty ones
func Tidy(s string) string {
	var out []string
	for line := range strings.Lines(s) {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// Transpose swaps rows and columns. Ragged rows are padded with empty strings.
func Transpose(rows [][]string) [][]string {
	h := 0
	for _, r := range rows {
		h = max(h, len(r))
	}
	out := make([][]string, h)
	for y := range out {
		out[y] = make([]string, len(rows))
	}
	for x, r := range rows {
		for y, v := range r {
			out[y][x] = v
		}
	}
	return out
}
