// Package view computes read-only projections of the goal collection:
// per-goal progress, overdue status, aggregate stats, and the
// searched/filtered/sorted list the UI displays.
package view

import (
	"math"
	"sort"
	"strings"

	"github.com/fentz26/strive/internal/models"
)

// Progress returns the completion percentage of a goal in [0,100].
// A goal marked completed is always 100 regardless of its tasks; a
// goal with no tasks is 0; otherwise it is the done-task ratio rounded
// to the nearest integer, ties away from zero.
func Progress(g *models.Goal) int {
	if g.Completed {
		return 100
	}
	if len(g.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range g.Tasks {
		if t.Done {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(g.Tasks))))
}

// IsOverdue reports whether the goal is past due and not completed.
// today is an ISO date string; ISO dates compare lexicographically in
// calendar order, so no parsing is needed.
func IsOverdue(g *models.Goal, today string) bool {
	return !g.Completed && g.Due < today
}

// Stats aggregates task counts across the whole collection.
type Stats struct {
	Goals      int
	TotalTasks int
	DoneTasks  int
	// OverallPercent is the raw done/total ratio scaled to 100,
	// kept unrounded for proportional bar rendering.
	OverallPercent float64
}

// Collect computes aggregate stats for a collection.
func Collect(goals models.Collection) Stats {
	st := Stats{Goals: len(goals)}
	for _, g := range goals {
		st.TotalTasks += len(g.Tasks)
		for _, t := range g.Tasks {
			if t.Done {
				st.DoneTasks++
			}
		}
	}
	if st.TotalTasks > 0 {
		st.OverallPercent = 100 * float64(st.DoneTasks) / float64(st.TotalTasks)
	}
	return st
}

// Build produces the display list: search, then filter, then a stable
// sort. The input collection is never mutated or reordered.
func Build(goals models.Collection, query string, filter models.FilterKey, sortKey models.SortKey, today string) models.Collection {
	list := make(models.Collection, len(goals))
	copy(list, goals)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		matched := list[:0]
		for _, g := range list {
			if strings.Contains(strings.ToLower(g.Title), q) ||
				strings.Contains(strings.ToLower(g.Subject), q) {
				matched = append(matched, g)
			}
		}
		list = matched
	}

	switch filter {
	case models.FilterCompleted:
		list = keep(list, func(g *models.Goal) bool { return g.Completed })
	case models.FilterActive:
		list = keep(list, func(g *models.Goal) bool { return !g.Completed })
	case models.FilterOverdue:
		list = keep(list, func(g *models.Goal) bool { return IsOverdue(g, today) })
	}

	switch sortKey {
	case models.SortDue:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Due < list[j].Due })
	case models.SortProgress:
		sort.SliceStable(list, func(i, j int) bool { return Progress(list[i]) > Progress(list[j]) })
	case models.SortCreated:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Created.Before(list[j].Created) })
	}

	return list
}

func keep(list models.Collection, pred func(*models.Goal) bool) models.Collection {
	out := list[:0]
	for _, g := range list {
		if pred(g) {
			out = append(out, g)
		}
	}
	return out
}
