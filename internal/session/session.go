// Package session owns the in-memory goal collection for one
// application run and routes every mutation through a single place.
//
// The collection is loaded from the store at construction and mirrored
// back after each mutation. When a write fails the error is reported
// to the caller but the in-memory state keeps the change: the session
// stays the source of truth even while the durable copy is stale.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/fentz26/strive/internal/models"
	"github.com/fentz26/strive/internal/store"
	"github.com/google/uuid"
)

// Saver is the slice of the store the session needs.
type Saver interface {
	Save(models.Collection) error
}

// Session holds the live collection and its durable mirror.
type Session struct {
	goals models.Collection
	store Saver

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// New creates a session over an already-loaded collection.
func New(goals models.Collection, s Saver) *Session {
	return &Session{
		goals: goals,
		store: s,
		now:   time.Now,
	}
}

// Open loads the collection from the store and wraps it in a session.
func Open(s *store.Store) *Session {
	return New(s.Load(), s)
}

// Goals returns the collection in insertion order. Callers must treat
// it as read-only; display ordering belongs to the view package.
func (s *Session) Goals() models.Collection {
	return s.goals
}

// CreateGoal validates the draft, appends a new goal to the
// collection tail, and persists.
func (s *Session) CreateGoal(draft models.GoalDraft) (*models.Goal, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, ErrTitleRequired
	}

	g := &models.Goal{
		ID:       uuid.New().String(),
		Title:    draft.Title,
		Subject:  draft.Subject,
		Start:    draft.Start,
		Due:      draft.Due,
		Hours:    draft.Hours,
		Notes:    draft.Notes,
		Reminder: draft.Reminder,
		Created:  s.now().UTC(),
		Tasks:    []models.Task{},
	}
	s.goals = append(s.goals, g)
	return g, s.persist()
}

// UpdateGoal overwrites only the fields present in the patch. ID,
// tasks, and creation time are always preserved; the completed flag
// only changes when the patch carries it.
func (s *Session) UpdateGoal(id string, patch models.GoalPatch) (*models.Goal, error) {
	g := s.goals.FindGoal(id)
	if g == nil {
		return nil, fmt.Errorf("update goal %s: %w", id, ErrGoalNotFound)
	}

	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Subject != nil {
		g.Subject = *patch.Subject
	}
	if patch.Start != nil {
		g.Start = *patch.Start
	}
	if patch.Due != nil {
		g.Due = *patch.Due
	}
	if patch.Hours != nil {
		g.Hours = *patch.Hours
	}
	if patch.Notes != nil {
		g.Notes = *patch.Notes
	}
	if patch.Reminder != nil {
		g.Reminder = *patch.Reminder
	}
	if patch.Completed != nil {
		g.Completed = *patch.Completed
	}
	return g, s.persist()
}

// DeleteGoal removes the goal with the given id. Deleting an id that
// is not present is a no-op, not an error.
func (s *Session) DeleteGoal(id string) error {
	kept := s.goals[:0]
	for _, g := range s.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(s.goals) {
		return nil
	}
	s.goals = kept
	return s.persist()
}

// MarkCompleted sets the completed flag. Tasks are left untouched;
// the flag alone forces progress to 100.
func (s *Session) MarkCompleted(id string) error {
	g := s.goals.FindGoal(id)
	if g == nil {
		return fmt.Errorf("complete goal %s: %w", id, ErrGoalNotFound)
	}
	g.Completed = true
	return s.persist()
}

// AddTask appends a task to the goal's checklist. Whitespace-only
// text is silently ignored.
func (s *Session) AddTask(goalID, text string) error {
	g := s.goals.FindGoal(goalID)
	if g == nil {
		return fmt.Errorf("add task to goal %s: %w", goalID, ErrGoalNotFound)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	g.Tasks = append(g.Tasks, models.Task{
		ID:      uuid.New().String(),
		Text:    text,
		Done:    false,
		Created: s.now().UTC(),
	})
	return s.persist()
}

// ToggleTask flips the done flag on the matching task. Unknown goal
// or task ids are a no-op.
func (s *Session) ToggleTask(goalID, taskID string) error {
	g := s.goals.FindGoal(goalID)
	if g == nil {
		return nil
	}
	i := g.FindTask(taskID)
	if i < 0 {
		return nil
	}
	g.Tasks[i].Done = !g.Tasks[i].Done
	return s.persist()
}

// RemoveTask deletes the matching task; absent ids are a no-op.
func (s *Session) RemoveTask(goalID, taskID string) error {
	g := s.goals.FindGoal(goalID)
	if g == nil {
		return nil
	}
	i := g.FindTask(taskID)
	if i < 0 {
		return nil
	}
	g.Tasks = append(g.Tasks[:i], g.Tasks[i+1:]...)
	return s.persist()
}

func (s *Session) persist() error {
	if err := s.store.Save(s.goals); err != nil {
		return fmt.Errorf("persist goals: %w", err)
	}
	return nil
}
