package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fentz26/strive/internal/models"
	"github.com/fentz26/strive/internal/session"
	"github.com/fentz26/strive/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strive",
	Short: "Strive - personal goal tracker",
	Long:  `Strive tracks goals with date ranges, notes, and task checklists, stored locally.`,
	// No RunE - defaults to showing help when no subcommand is provided
}

var (
	dbPath string
)

func init() {
	homeDir, _ := os.UserHomeDir()
	defaultDB := filepath.Join(homeDir, ".strive", "strive.db")

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "Path to SQLite database")

	// Add subcommands
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(tuiCmd)
}

// openSession opens the store and loads the collection. The caller
// must Close the returned store.
func openSession() (*session.Session, *store.Store, error) {
	s, err := store.New(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return session.Open(s), s, nil
}

// todayStr returns the current date as an ISO day string.
func todayStr() string {
	return time.Now().Format(models.DateLayout)
}

// resolveGoal finds a goal by full id or unique id prefix, so the
// truncated ids shown in listings work as arguments.
func resolveGoal(goals models.Collection, idOrPrefix string) (*models.Goal, error) {
	if g := goals.FindGoal(idOrPrefix); g != nil {
		return g, nil
	}
	var match *models.Goal
	for _, g := range goals {
		if strings.HasPrefix(g.ID, idOrPrefix) {
			if match != nil {
				return nil, fmt.Errorf("goal id %q is ambiguous", idOrPrefix)
			}
			match = g
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no goal matches %q", idOrPrefix)
	}
	return match, nil
}

// resolveTask finds a task id within a goal by full id or unique prefix.
func resolveTask(g *models.Goal, idOrPrefix string) (string, error) {
	var match string
	for _, t := range g.Tasks {
		if t.ID == idOrPrefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, idOrPrefix) {
			if match != "" {
				return "", fmt.Errorf("task id %q is ambiguous", idOrPrefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no task matches %q", idOrPrefix)
	}
	return match, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
