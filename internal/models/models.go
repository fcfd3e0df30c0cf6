// Package models defines the core domain types for Strive.
package models

import "time"

// DateLayout is the day-granularity layout used for Start and Due.
// ISO dates compare correctly as plain strings, which the overdue
// check and due-date sort rely on.
const DateLayout = "2006-01-02"

// DefaultSubject is the display fallback for goals without a subject.
const DefaultSubject = "General"

// FilterKey selects which goals the view keeps.
type FilterKey string

const (
	FilterAll       FilterKey = "all"
	FilterCompleted FilterKey = "completed"
	FilterActive    FilterKey = "active"
	FilterOverdue   FilterKey = "overdue"
)

// ParseFilterKey maps free-form input to a FilterKey. Unrecognized
// values fall back to FilterAll (no filtering).
func ParseFilterKey(s string) FilterKey {
	switch FilterKey(s) {
	case FilterCompleted, FilterActive, FilterOverdue:
		return FilterKey(s)
	default:
		return FilterAll
	}
}

// SortKey selects the display ordering of the view.
type SortKey string

const (
	SortNone     SortKey = ""
	SortDue      SortKey = "due"
	SortProgress SortKey = "progress"
	SortCreated  SortKey = "created"
)

// ParseSortKey maps free-form input to a SortKey. Unrecognized values
// fall back to SortNone (keep collection order).
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortDue, SortProgress, SortCreated:
		return SortKey(s)
	default:
		return SortNone
	}
}

// Task is a single checklist item owned by exactly one Goal.
type Task struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Done    bool      `json:"done"`
	Created time.Time `json:"created"`
}

// Goal is a tracked objective with a date range, optional metadata,
// and an ordered task checklist.
type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subject   string    `json:"subject,omitempty"`
	Start     string    `json:"start,omitempty"`
	Due       string    `json:"due,omitempty"`
	Hours     float64   `json:"hours,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Reminder  string    `json:"reminder,omitempty"`
	Created   time.Time `json:"created"`
	Completed bool      `json:"completed"`
	Tasks     []Task    `json:"tasks"`
}

// SubjectOrDefault returns the subject, or DefaultSubject when unset.
func (g *Goal) SubjectOrDefault() string {
	if g.Subject == "" {
		return DefaultSubject
	}
	return g.Subject
}

// FindTask returns the index of the task with the given id, or -1.
func (g *Goal) FindTask(taskID string) int {
	for i := range g.Tasks {
		if g.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

// GoalDraft carries the editable fields for goal creation.
type GoalDraft struct {
	Title    string
	Subject  string
	Start    string
	Due      string
	Hours    float64
	Notes    string
	Reminder string
}

// GoalPatch carries a partial edit. Nil fields are left untouched;
// ID, Tasks, and Created are never part of a patch.
type GoalPatch struct {
	Title     *string
	Subject   *string
	Start     *string
	Due       *string
	Hours     *float64
	Notes     *string
	Reminder  *string
	Completed *bool
}

// Collection is the full ordered set of goals, the unit of persistence.
// Order is insertion order; sorting for display never reorders it.
type Collection []*Goal

// FindGoal returns the goal with the given id, or nil.
func (c Collection) FindGoal(id string) *Goal {
	for _, g := range c {
		if g.ID == id {
			return g
		}
	}
	return nil
}
