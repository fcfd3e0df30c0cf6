// Package timeline maps goal date ranges onto a 1-D unit/day
// coordinate space for rendering.
package timeline

import (
	"fmt"
	"time"

	"github.com/fentz26/strive/internal/models"
	"github.com/fentz26/strive/internal/view"
)

// UnitsPerDay is the horizontal scale. The same scale applies to rows
// and the today marker so they stay aligned.
const UnitsPerDay = 20

const dayDuration = 24 * time.Hour

// Row is one goal bar on the timeline, in collection order.
type Row struct {
	Label string
	Start int
	Width int
	Index int
}

// Layout is the computed timeline geometry.
type Layout struct {
	SpanDays    int
	TodayOffset int
	Rows        []Row
}

// Build computes the timeline layout for a collection. An empty
// collection yields a zero-value layout and the caller renders
// nothing. today is an ISO date string.
func Build(goals models.Collection, today string) Layout {
	if len(goals) == 0 {
		return Layout{}
	}

	minDate, maxDate, ok := dateBounds(goals)
	if !ok {
		// Not a single parseable date; every row collapses to the
		// origin of a one-day span.
		minDate = time.Time{}
		maxDate = minDate
	}

	layout := Layout{
		SpanDays:    int(maxDate.Sub(minDate)/dayDuration) + 1,
		TodayOffset: daysSince(minDate, today) * UnitsPerDay,
	}

	for i, g := range goals {
		start := daysSince(minDate, g.Start) * UnitsPerDay
		end := daysSince(minDate, g.Due) * UnitsPerDay
		width := end - start
		if width < 0 {
			width = 0
		}
		layout.Rows = append(layout.Rows, Row{
			Label: fmt.Sprintf("%s (%d%%)", g.Title, view.Progress(g)),
			Start: start,
			Width: width,
			Index: i,
		})
	}
	return layout
}

// dateBounds returns the earliest and latest of all parseable
// start/due dates. Malformed or empty dates are skipped so they never
// distort the range.
func dateBounds(goals models.Collection) (minDate, maxDate time.Time, ok bool) {
	for _, g := range goals {
		for _, s := range []string{g.Start, g.Due} {
			d, err := time.Parse(models.DateLayout, s)
			if err != nil {
				continue
			}
			if !ok || d.Before(minDate) {
				minDate = d
			}
			if !ok || d.After(maxDate) {
				maxDate = d
			}
			ok = true
		}
	}
	return minDate, maxDate, ok
}

// daysSince returns whole days from min to the given ISO date, or 0
// when the date does not parse (malformed dates render at the origin
// rather than erroring).
func daysSince(min time.Time, date string) int {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return 0
	}
	return int(d.Sub(min) / dayDuration)
}
