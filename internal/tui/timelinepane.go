package tui

import (
	"fmt"
	"strings"

	"github.com/fentz26/strive/internal/timeline"
)

// renderTimeline draws the layout engine's output one character per
// day, with a marker column for today.
func (a *App) renderTimeline(height int) string {
	layout := timeline.Build(a.sess.Goals(), a.today)
	if len(layout.Rows) == 0 {
		return "\n  No goals to place on the timeline.\n"
	}

	var b strings.Builder
	b.WriteString("\n  " + helpStyle.Render(fmt.Sprintf("Span: %d days", layout.SpanDays)) + "\n\n")

	todayCol := layout.TodayOffset / timeline.UnitsPerDay
	for _, row := range layout.Rows {
		start := row.Start / timeline.UnitsPerDay
		width := row.Width / timeline.UnitsPerDay

		var line strings.Builder
		for col := 0; col < layout.SpanDays; col++ {
			switch {
			case col == todayCol:
				line.WriteString(todayStyle.Render("|"))
			case col >= start && col <= start+width:
				line.WriteString(barStyle.Render("="))
			default:
				line.WriteString(timelineLabel.Render("."))
			}
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n", line.String(), row.Label))
		if row.Index >= height {
			break
		}
	}
	return b.String()
}
