package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gratitude-grove/core/internal/pkg/contribution"
)

// graphWindowDays covers the six rendered months with margin.
const graphWindowDays = 186

// renderGraph prints the trailing six months as week-row grids, one cell per
// day: ■ for a day with an entry, · for a day without, blank outside the
// month or after today.
func renderGraph(w io.Writer, timestamps []time.Time, now time.Time) {
	index := contribution.BuildIndex(timestamps, graphWindowDays, now)
	loc := now.Location()

	for _, block := range contribution.LayoutMonths(now) {
		fmt.Fprintf(w, "%d-%02d\n", block.Year, int(block.Month))
		fmt.Fprintln(w, "Su Mo Tu We Th Fr Sa")
		for _, week := range block.Weeks {
			cells := make([]string, 0, 7)
			for _, day := range week {
				if day == 0 {
					cells = append(cells, "  ")
					continue
				}
				key := contribution.DayKey(block.Date(day, loc))
				if _, ok := index[key]; ok {
					cells = append(cells, " ■")
				} else {
					cells = append(cells, " ·")
				}
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
		}
		fmt.Fprintln(w)
	}
}
