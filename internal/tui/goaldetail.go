package tui

import (
	"fmt"
	"strings"

	"github.com/fentz26/strive/internal/view"
)

func (a *App) renderGoalDetail(height int) string {
	g := a.selected()
	if g == nil {
		return "\n  Goal no longer exists.\n"
	}

	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render(g.Title) + "\n")
	b.WriteString("  " + helpStyle.Render(g.SubjectOrDefault()) + "\n\n")
	b.WriteString(fmt.Sprintf("  Dates:    %s -> %s\n", orDash(g.Start), orDash(g.Due)))
	b.WriteString(fmt.Sprintf("  Hours:    %g\n", g.Hours))
	if g.Notes != "" {
		b.WriteString(fmt.Sprintf("  Notes:    %s\n", g.Notes))
	}
	if g.Reminder != "" {
		b.WriteString(fmt.Sprintf("  Reminder: %s\n", g.Reminder))
	}

	pct := view.Progress(g)
	b.WriteString(fmt.Sprintf("  Progress: %s %d%%\n", progressCells(pct, 20), pct))
	b.WriteString("\n  Tasks:\n")

	if len(g.Tasks) == 0 {
		b.WriteString("    (no tasks yet)\n")
		return b.String()
	}

	for i, t := range g.Tasks {
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, t.Text)
		if i == a.taskIdx {
			b.WriteString("  " + selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	return b.String()
}

// progressCells renders a fixed-width fill bar for a percentage.
func progressCells(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return barStyle.Render(strings.Repeat("█", filled)) +
		helpStyle.Render(strings.Repeat("░", width-filled))
}
