package main

import (
	"fmt"
	"strings"

	"github.com/fentz26/strive/internal/view"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate progress across all goals",
	RunE:  runStats,
}

const statsBarWidth = 40

func runStats(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	st := view.Collect(sess.Goals())

	fmt.Printf("Goals:   %d\n", st.Goals)
	fmt.Printf("Tasks:   %d/%d done\n", st.DoneTasks, st.TotalTasks)
	fmt.Printf("Overall: %.1f%%\n", st.OverallPercent)
	fmt.Printf("[%s]\n", progressBar(st.OverallPercent, statsBarWidth))
	return nil
}

// progressBar renders a proportional bar; the fill uses the raw ratio
// so small amounts of progress stay visible.
func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}
