package tui

import (
	"fmt"
	"strings"

	"github.com/fentz26/strive/internal/models"
	"github.com/fentz26/strive/internal/view"
)

func (a *App) renderGoalList(height int) string {
	if len(a.visible) == 0 {
		return "\n  No goals match. Use `strive goal add --title ...` to create one.\n"
	}

	var lines []string
	for i, g := range a.visible {
		chip := a.formatChip(g)
		entry := fmt.Sprintf("%s  %-30s %s  due %s  %3d%%",
			chip, clip(g.Title, 30), g.SubjectOrDefault(), orDash(g.Due), view.Progress(g))

		if i == a.selectedIdx {
			lines = append(lines, selectedStyle.Render("> "+a.formatChipPlain(g)+entryTail(g)))
		} else {
			lines = append(lines, goalItemStyle.Render("  "+entry))
		}
	}

	// Keep the cursor visible when the list overflows
	if len(lines) > height {
		start := a.selectedIdx - height/2
		if start < 0 {
			start = 0
		}
		end := start + height
		if end > len(lines) {
			end = len(lines)
			start = max(0, end-height)
		}
		lines = lines[start:end]
	}

	return strings.Join(lines, "\n")
}

// entryTail renders the selected row without color codes so the
// selection background stays uniform.
func entryTail(g *models.Goal) string {
	return fmt.Sprintf("  %-30s %s  due %s  %3d%%",
		clip(g.Title, 30), g.SubjectOrDefault(), orDash(g.Due), view.Progress(g))
}

func (a *App) formatChip(g *models.Goal) string {
	switch {
	case g.Completed:
		return chipCompleted.Render("● done   ")
	case view.IsOverdue(g, a.today):
		return chipOverdue.Render("● overdue")
	default:
		return chipActive.Render("● active ")
	}
}

func (a *App) formatChipPlain(g *models.Goal) string {
	switch {
	case g.Completed:
		return "● done   "
	case view.IsOverdue(g, a.today):
		return "● overdue"
	default:
		return "● active "
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
