package view

import (
	"testing"
	"time"

	"github.com/fentz26/strive/internal/models"
)

func goalWithTasks(title string, done, todo int) *models.Goal {
	g := &models.Goal{ID: title, Title: title, Tasks: []models.Task{}}
	for i := 0; i < done; i++ {
		g.Tasks = append(g.Tasks, models.Task{ID: "d", Done: true})
	}
	for i := 0; i < todo; i++ {
		g.Tasks = append(g.Tasks, models.Task{ID: "t", Done: false})
	}
	return g
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		goal *models.Goal
		want int
	}{
		{"no tasks", &models.Goal{}, 0},
		{"completed overrides zero tasks", &models.Goal{Completed: true}, 100},
		{"completed overrides open tasks", func() *models.Goal {
			g := goalWithTasks("g", 0, 3)
			g.Completed = true
			return g
		}(), 100},
		{"one of three", goalWithTasks("g", 1, 2), 33},
		{"two of three", goalWithTasks("g", 2, 1), 67},
		{"one of two", goalWithTasks("g", 1, 1), 50},
		{"all done", goalWithTasks("g", 4, 0), 100},
		{"none done", goalWithTasks("g", 0, 4), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.goal)
			if got != tt.want {
				t.Errorf("Progress() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("Progress() = %d, outside [0,100]", got)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	today := "2025-06-15"

	g := &models.Goal{Due: "2025-06-14"}
	if !IsOverdue(g, today) {
		t.Error("past due and not completed should be overdue")
	}

	g.Completed = true
	if IsOverdue(g, today) {
		t.Error("completed goal is never overdue")
	}

	future := &models.Goal{Due: "2025-06-16"}
	if IsOverdue(future, today) {
		t.Error("future due date should not be overdue")
	}

	sameDay := &models.Goal{Due: "2025-06-15"}
	if IsOverdue(sameDay, today) {
		t.Error("due today is not yet overdue")
	}
}

func TestCollect(t *testing.T) {
	empty := Collect(models.Collection{})
	if empty.Goals != 0 || empty.TotalTasks != 0 || empty.DoneTasks != 0 {
		t.Errorf("empty collection stats should be zero, got %+v", empty)
	}
	if empty.OverallPercent != 0 {
		t.Errorf("OverallPercent should be 0 with no tasks, got %f", empty.OverallPercent)
	}

	goals := models.Collection{
		goalWithTasks("a", 1, 1),
		goalWithTasks("b", 2, 0),
		goalWithTasks("c", 0, 0),
	}
	st := Collect(goals)
	if st.Goals != 3 {
		t.Errorf("Goals = %d, want 3", st.Goals)
	}
	if st.TotalTasks != 4 {
		t.Errorf("TotalTasks = %d, want 4", st.TotalTasks)
	}
	if st.DoneTasks != 3 {
		t.Errorf("DoneTasks = %d, want 3", st.DoneTasks)
	}
	if st.DoneTasks > st.TotalTasks {
		t.Error("DoneTasks must not exceed TotalTasks")
	}
	if st.OverallPercent != 75 {
		t.Errorf("OverallPercent = %f, want 75", st.OverallPercent)
	}
}

func testCollection() models.Collection {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.Collection{
		&models.Goal{ID: "1", Title: "Learn Go", Subject: "Programming", Due: "2025-03-01", Created: created},
		&models.Goal{ID: "2", Title: "Read novels", Due: "2025-01-10", Created: created.Add(time.Hour)},
		&models.Goal{ID: "3", Title: "Marathon", Subject: "Fitness", Due: "2025-02-01", Completed: true, Created: created.Add(2 * time.Hour)},
		&models.Goal{ID: "4", Title: "go hiking", Subject: "Fitness", Due: "2025-01-10"},
	}
}

func ids(goals models.Collection) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildIdentityPreservesOrder(t *testing.T) {
	goals := testCollection()
	got := Build(goals, "", models.FilterAll, models.SortNone, "2025-01-20")
	if !equalIDs(ids(got), []string{"1", "2", "3", "4"}) {
		t.Errorf("identity build reordered: %v", ids(got))
	}
	// Source must be untouched
	if goals[0].ID != "1" || goals[3].ID != "4" {
		t.Error("Build mutated the source collection")
	}
}

func TestBuildSearch(t *testing.T) {
	goals := testCollection()

	got := Build(goals, "GO", models.FilterAll, models.SortNone, "2025-01-20")
	if !equalIDs(ids(got), []string{"1", "4"}) {
		t.Errorf("case-insensitive title search: got %v", ids(got))
	}

	got = Build(goals, "fitness", models.FilterAll, models.SortNone, "2025-01-20")
	if !equalIDs(ids(got), []string{"3", "4"}) {
		t.Errorf("subject search: got %v", ids(got))
	}

	got = Build(goals, "   ", models.FilterAll, models.SortNone, "2025-01-20")
	if len(got) != 4 {
		t.Errorf("blank query should keep everything, got %d", len(got))
	}
}

func TestBuildFilter(t *testing.T) {
	goals := testCollection()
	today := "2025-01-20"

	got := Build(goals, "", models.FilterCompleted, models.SortNone, today)
	if !equalIDs(ids(got), []string{"3"}) {
		t.Errorf("completed filter: got %v", ids(got))
	}

	got = Build(goals, "", models.FilterActive, models.SortNone, today)
	if !equalIDs(ids(got), []string{"1", "2", "4"}) {
		t.Errorf("active filter: got %v", ids(got))
	}

	// 2 and 4 are past due; 3 is past due but completed, so excluded.
	got = Build(goals, "", models.FilterOverdue, models.SortNone, today)
	if !equalIDs(ids(got), []string{"2", "4"}) {
		t.Errorf("overdue filter: got %v", ids(got))
	}
}

func TestBuildSort(t *testing.T) {
	goals := testCollection()
	today := "2025-01-20"

	got := Build(goals, "", models.FilterAll, models.SortDue, today)
	// 2 and 4 share a due date; stable sort keeps their input order.
	if !equalIDs(ids(got), []string{"2", "4", "3", "1"}) {
		t.Errorf("due sort: got %v", ids(got))
	}

	got = Build(goals, "", models.FilterAll, models.SortProgress, today)
	if got[0].ID != "3" {
		t.Errorf("progress sort should put the completed goal first, got %v", ids(got))
	}

	// Goal 4 has a zero Created and must sort first.
	got = Build(goals, "", models.FilterAll, models.SortCreated, today)
	if !equalIDs(ids(got), []string{"4", "1", "2", "3"}) {
		t.Errorf("created sort: got %v", ids(got))
	}
}

func TestParseKeysFallBack(t *testing.T) {
	if models.ParseFilterKey("bogus") != models.FilterAll {
		t.Error("unknown filter key should fall back to all")
	}
	if models.ParseSortKey("bogus") != models.SortNone {
		t.Error("unknown sort key should fall back to none")
	}
	if models.ParseFilterKey("overdue") != models.FilterOverdue {
		t.Error("known filter key should parse")
	}
	if models.ParseSortKey("due") != models.SortDue {
		t.Error("known sort key should parse")
	}
}
