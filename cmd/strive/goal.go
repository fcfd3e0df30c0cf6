package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fentz26/strive/internal/models"
	"github.com/fentz26/strive/internal/view"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new goal",
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE:  runGoalList,
}

var goalShowCmd = &cobra.Command{
	Use:   "show [goal-id]",
	Short: "Show goal details and its checklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalShow,
}

var goalEditCmd = &cobra.Command{
	Use:   "edit [goal-id]",
	Short: "Edit goal fields",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalEdit,
}

var goalRmCmd = &cobra.Command{
	Use:   "rm [goal-id]",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalRm,
}

var goalDoneCmd = &cobra.Command{
	Use:   "done [goal-id]",
	Short: "Mark a goal completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalDone,
}

var (
	goalTitle    string
	goalSubject  string
	goalStart    string
	goalDue      string
	goalHours    float64
	goalNotes    string
	goalReminder string

	listFilter string
	listSort   string
	listSearch string
)

func init() {
	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalShowCmd, goalEditCmd, goalRmCmd, goalDoneCmd)

	for _, c := range []*cobra.Command{goalAddCmd, goalEditCmd} {
		c.Flags().StringVar(&goalTitle, "title", "", "Goal title")
		c.Flags().StringVar(&goalSubject, "subject", "", "Subject or category")
		c.Flags().StringVar(&goalStart, "start", "", "Start date (YYYY-MM-DD)")
		c.Flags().StringVar(&goalDue, "due", "", "Due date (YYYY-MM-DD)")
		c.Flags().Float64Var(&goalHours, "hours", 0, "Estimated hours")
		c.Flags().StringVar(&goalNotes, "notes", "", "Free-form notes")
		c.Flags().StringVar(&goalReminder, "reminder", "", "Reminder timestamp")
	}
	goalAddCmd.MarkFlagRequired("title")

	goalListCmd.Flags().StringVar(&listFilter, "filter", "all", "Filter (all, completed, active, overdue)")
	goalListCmd.Flags().StringVar(&listSort, "sort", "", "Sort (due, progress, created)")
	goalListCmd.Flags().StringVar(&listSearch, "search", "", "Search title and subject")
}

func runGoalAdd(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := sess.CreateGoal(models.GoalDraft{
		Title:    goalTitle,
		Subject:  goalSubject,
		Start:    goalStart,
		Due:      goalDue,
		Hours:    goalHours,
		Notes:    goalNotes,
		Reminder: goalReminder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created goal: %s\n", g.ID)
	return nil
}

func runGoalList(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	today := todayStr()
	list := view.Build(sess.Goals(), listSearch, models.ParseFilterKey(listFilter), models.ParseSortKey(listSort), today)

	if len(list) == 0 {
		fmt.Println("No goals found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSUBJECT\tDUE\tPROGRESS\tSTATUS")
	for _, g := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\n",
			truncateID(g.ID), truncate(g.Title, 40), g.SubjectOrDefault(),
			orDash(g.Due), view.Progress(g), statusChip(g, today))
	}
	w.Flush()
	return nil
}

// statusChip mirrors the status badge: completed wins, then overdue,
// then active.
func statusChip(g *models.Goal, today string) string {
	switch {
	case g.Completed:
		return "completed"
	case view.IsOverdue(g, today):
		return "overdue"
	default:
		return "active"
	}
}

func runGoalShow(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := resolveGoal(sess.Goals(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("ID:       %s\n", g.ID)
	fmt.Printf("Title:    %s\n", g.Title)
	fmt.Printf("Subject:  %s\n", g.SubjectOrDefault())
	fmt.Printf("Dates:    %s -> %s\n", orDash(g.Start), orDash(g.Due))
	fmt.Printf("Hours:    %g\n", g.Hours)
	if g.Notes != "" {
		fmt.Printf("Notes:    %s\n", g.Notes)
	}
	if g.Reminder != "" {
		fmt.Printf("Reminder: %s\n", g.Reminder)
	}
	fmt.Printf("Status:   %s\n", statusChip(g, todayStr()))
	fmt.Printf("Progress: %d%%\n", view.Progress(g))
	fmt.Printf("Created:  %s\n", g.Created.Local().Format("2006-01-02 15:04"))

	if len(g.Tasks) > 0 {
		fmt.Println("\nTasks:")
		for _, t := range g.Tasks {
			mark := " "
			if t.Done {
				mark = "x"
			}
			fmt.Printf("  [%s] %s  %s\n", mark, truncateID(t.ID), t.Text)
		}
	}
	return nil
}

func runGoalEdit(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := resolveGoal(sess.Goals(), args[0])
	if err != nil {
		return err
	}

	// Only flags the user actually set become part of the patch.
	var patch models.GoalPatch
	if cmd.Flags().Changed("title") {
		patch.Title = &goalTitle
	}
	if cmd.Flags().Changed("subject") {
		patch.Subject = &goalSubject
	}
	if cmd.Flags().Changed("start") {
		patch.Start = &goalStart
	}
	if cmd.Flags().Changed("due") {
		patch.Due = &goalDue
	}
	if cmd.Flags().Changed("hours") {
		patch.Hours = &goalHours
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &goalNotes
	}
	if cmd.Flags().Changed("reminder") {
		patch.Reminder = &goalReminder
	}

	if _, err := sess.UpdateGoal(g.ID, patch); err != nil {
		return err
	}
	fmt.Printf("Updated goal %s\n", truncateID(g.ID))
	return nil
}

func runGoalRm(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := resolveGoal(sess.Goals(), args[0])
	if err != nil {
		return err
	}
	if err := sess.DeleteGoal(g.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted goal %s\n", truncateID(g.ID))
	return nil
}

func runGoalDone(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := resolveGoal(sess.Goals(), args[0])
	if err != nil {
		return err
	}
	if err := sess.MarkCompleted(g.ID); err != nil {
		return err
	}
	fmt.Printf("Completed goal %s\n", truncateID(g.ID))
	return nil
}

// --- Helpers ---

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func truncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
