package main

import (
	"fmt"
	"strings"

	"github.com/fentz26/strive/internal/timeline"
	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Render a textual timeline of all goals",
	RunE:  runTimeline,
}

func runTimeline(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	layout := timeline.Build(sess.Goals(), todayStr())
	if len(layout.Rows) == 0 {
		fmt.Println("No goals to show")
		return nil
	}

	fmt.Print(renderTimeline(layout))
	return nil
}

// renderTimeline draws one character per day. Layout units are scaled
// back down so the gantt fits a terminal.
func renderTimeline(layout timeline.Layout) string {
	var b strings.Builder

	todayCol := layout.TodayOffset / timeline.UnitsPerDay
	for _, row := range layout.Rows {
		start := row.Start / timeline.UnitsPerDay
		width := row.Width / timeline.UnitsPerDay

		line := make([]byte, layout.SpanDays)
		for i := range line {
			line[i] = '.'
		}
		for i := start; i <= start+width && i < len(line); i++ {
			if i >= 0 {
				line[i] = '='
			}
		}
		if todayCol >= 0 && todayCol < len(line) {
			line[todayCol] = '|'
		}
		fmt.Fprintf(&b, "%s  %s\n", line, row.Label)
	}
	return b.String()
}
