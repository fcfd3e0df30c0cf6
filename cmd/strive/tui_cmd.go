package main

import (
	"fmt"

	"github.com/fentz26/strive/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive TUI",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	sess, s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	app := tui.New(sess)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
