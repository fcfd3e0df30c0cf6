// Package tui provides the interactive terminal UI for Strive.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/strive/internal/models"
	"github.com/fentz26/strive/internal/session"
	"github.com/fentz26/strive/internal/view"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED")
	successColor = lipgloss.Color("#10B981")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(fgColor).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	goalItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	chipCompleted = lipgloss.NewStyle().Foreground(successColor)
	chipOverdue   = lipgloss.NewStyle().Foreground(errorColor)
	chipActive    = lipgloss.NewStyle().Foreground(warningColor)

	barStyle      = lipgloss.NewStyle().Foreground(primaryColor)
	todayStyle    = lipgloss.NewStyle().Foreground(errorColor)
	timelineLabel = lipgloss.NewStyle().Foreground(mutedColor)
)

var (
	filters     = []models.FilterKey{models.FilterAll, models.FilterCompleted, models.FilterActive, models.FilterOverdue}
	filterNames = []string{"ALL", "DONE", "ACTIVE", "OVERDUE"}
	sorts       = []models.SortKey{models.SortNone, models.SortDue, models.SortProgress, models.SortCreated}
	sortNames   = []string{"NONE", "DUE", "PROGRESS", "CREATED"}
)

// App is the main TUI application model.
type App struct {
	sess *session.Session

	visible     models.Collection
	selectedIdx int
	taskIdx     int
	search      textinput.Model
	filterIdx   int
	sortIdx     int
	mode        string // "list", "detail", "timeline"
	today       string
	width       int
	height      int
	message     string
}

// New creates a new TUI application over a loaded session.
func New(sess *session.Session) *App {
	ti := textinput.New()
	ti.Placeholder = "search title or subject (press / to focus)"
	ti.CharLimit = 128
	ti.Width = 60

	a := &App{
		sess:   sess,
		search: ti,
		mode:   "list",
		today:  time.Now().Format(models.DateLayout),
	}
	a.refresh()
	return a
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// refresh recomputes the visible list from current controls.
func (a *App) refresh() {
	a.visible = view.Build(a.sess.Goals(), a.search.Value(), filters[a.filterIdx], sorts[a.sortIdx], a.today)
	if a.selectedIdx >= len(a.visible) {
		a.selectedIdx = max(0, len(a.visible)-1)
	}
}

// selected returns the goal under the cursor, or nil.
func (a *App) selected() *models.Goal {
	if a.selectedIdx < 0 || a.selectedIdx >= len(a.visible) {
		return nil
	}
	return a.visible[a.selectedIdx]
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.search.Focused() {
			switch msg.String() {
			case "ctrl+c":
				return a, tea.Quit
			case "esc", "enter":
				a.search.Blur()
				return a, nil
			default:
				var cmd tea.Cmd
				a.search, cmd = a.search.Update(msg)
				a.refresh()
				return a, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit

		case "esc":
			if a.mode != "list" {
				a.mode = "list"
				return a, nil
			}
			if a.search.Value() != "" {
				a.search.SetValue("")
				a.refresh()
			}

		case "/":
			a.search.Focus()
			return a, textinput.Blink

		case "up", "k":
			if a.mode == "detail" {
				if a.taskIdx > 0 {
					a.taskIdx--
				}
			} else if a.selectedIdx > 0 {
				a.selectedIdx--
			}

		case "down", "j":
			if a.mode == "detail" {
				if g := a.selected(); g != nil && a.taskIdx < len(g.Tasks)-1 {
					a.taskIdx++
				}
			} else if a.selectedIdx < len(a.visible)-1 {
				a.selectedIdx++
			}

		case "f":
			a.filterIdx = (a.filterIdx + 1) % len(filters)
			a.refresh()

		case "s":
			a.sortIdx = (a.sortIdx + 1) % len(sorts)
			a.refresh()

		case "t":
			if a.mode == "timeline" {
				a.mode = "list"
			} else {
				a.mode = "timeline"
			}

		case "enter":
			if a.mode == "list" && a.selected() != nil {
				a.mode = "detail"
				a.taskIdx = 0
			}

		case " ":
			if a.mode == "detail" {
				a.toggleSelectedTask()
			}

		case "x":
			if a.mode == "detail" {
				a.removeSelectedTask()
			}

		case "c":
			if g := a.selected(); g != nil {
				a.report(a.sess.MarkCompleted(g.ID), fmt.Sprintf("Completed %q", g.Title))
				a.refresh()
			}

		case "D":
			if a.mode == "list" {
				if g := a.selected(); g != nil {
					a.report(a.sess.DeleteGoal(g.ID), fmt.Sprintf("Deleted %q", g.Title))
					a.refresh()
				}
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search.Width = msg.Width - 6
	}

	return a, nil
}

func (a *App) toggleSelectedTask() {
	g := a.selected()
	if g == nil || a.taskIdx >= len(g.Tasks) {
		return
	}
	t := g.Tasks[a.taskIdx]
	a.report(a.sess.ToggleTask(g.ID, t.ID), "")
}

func (a *App) removeSelectedTask() {
	g := a.selected()
	if g == nil || a.taskIdx >= len(g.Tasks) {
		return
	}
	t := g.Tasks[a.taskIdx]
	a.report(a.sess.RemoveTask(g.ID, t.ID), fmt.Sprintf("Removed task %q", t.Text))
	if a.taskIdx >= len(g.Tasks) {
		a.taskIdx = max(0, len(g.Tasks)-1)
	}
}

// report records the outcome of a mutation in the message bar. Save
// failures surface here; the in-memory state is already updated.
func (a *App) report(err error, ok string) {
	if err != nil {
		a.message = "Error: " + err.Error()
		return
	}
	a.message = ok
}

// View implements tea.Model
func (a *App) View() string {
	var b strings.Builder

	st := view.Collect(a.sess.Goals())
	header := titleStyle.Render("STRIVE Goal Tracker")
	header += "  " + helpStyle.Render(fmt.Sprintf("Today: %s", a.today))
	header += "  " + statsLine(st)
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", max(0, a.width)) + "\n")

	contentHeight := a.height - 9
	if contentHeight < 5 {
		contentHeight = 5
	}

	switch a.mode {
	case "detail":
		b.WriteString(a.renderGoalDetail(contentHeight))
	case "timeline":
		b.WriteString(a.renderTimeline(contentHeight))
	default:
		controls := fmt.Sprintf(" Filter: [%s]  Sort: [%s]", filterNames[a.filterIdx], sortNames[a.sortIdx])
		b.WriteString(helpStyle.Render(controls) + "\n")
		b.WriteString(a.renderGoalList(contentHeight - 1))
	}

	if a.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(successColor)
		if strings.HasPrefix(a.message, "Error") {
			msgStyle = lipgloss.NewStyle().Foreground(errorColor)
		}
		b.WriteString("\n" + msgStyle.Render(a.message))
	} else {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(inputBoxStyle.Render(a.search.View()))
	b.WriteString("\n")

	var status string
	switch a.mode {
	case "detail":
		status = " ↑↓:tasks | Space:toggle | x:remove | c:complete goal | Esc:back | q:quit"
	case "timeline":
		status = " t/Esc:back to list | q:quit"
	default:
		status = fmt.Sprintf(" Goals: %d/%d | ↑↓:nav | Enter:detail | f:filter | s:sort | t:timeline | /:search | q:quit",
			len(a.visible), st.Goals)
	}
	b.WriteString(statusBarStyle.Width(max(0, a.width)).Render(status))

	return b.String()
}

func statsLine(st view.Stats) string {
	return helpStyle.Render(fmt.Sprintf("%d goals, %d/%d tasks done (%.0f%%)",
		st.Goals, st.DoneTasks, st.TotalTasks, st.OverallPercent))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
