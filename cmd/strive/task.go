package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage a goal's task checklist",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [goal-id] [text]",
	Short: "Add a task to a goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskAdd,
}

var taskToggleCmd = &cobra.Command{
	Use:   "toggle [goal-id] [task-id]",
	Short: "Toggle a task done/undone",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskToggle,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm [goal-id] [task-id]",
	Short: "Remove a task from a goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runTaskRm,
}

func init() {
	taskCmd.AddCommand(taskAddCmd, taskToggleCmd, taskRmCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := resolveGoal(sess.Goals(), args[0])
	if err != nil {
		return err
	}

	before := len(g.Tasks)
	if err := sess.AddTask(g.ID, args[1]); err != nil {
		return err
	}
	if len(g.Tasks) == before {
		fmt.Println("Task text is empty, nothing added")
		return nil
	}
	t := g.Tasks[len(g.Tasks)-1]
	fmt.Printf("Added task %s to goal %s\n", truncateID(t.ID), truncateID(g.ID))
	return nil
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := resolveGoal(sess.Goals(), args[0])
	if err != nil {
		return err
	}
	taskID, err := resolveTask(g, args[1])
	if err != nil {
		return err
	}
	if err := sess.ToggleTask(g.ID, taskID); err != nil {
		return err
	}

	i := g.FindTask(taskID)
	state := "todo"
	if i >= 0 && g.Tasks[i].Done {
		state = "done"
	}
	fmt.Printf("Task %s is now %s\n", truncateID(taskID), state)
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	g, err := resolveGoal(sess.Goals(), args[0])
	if err != nil {
		return err
	}
	taskID, err := resolveTask(g, args[1])
	if err != nil {
		return err
	}
	if err := sess.RemoveTask(g.ID, taskID); err != nil {
		return err
	}
	fmt.Printf("Removed task %s\n", truncateID(taskID))
	return nil
}
