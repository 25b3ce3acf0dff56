package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func taskAt(title string, created time.Time) Task {
	return Task{Title: title, Priority: "medium", CreatedAt: created, UpdatedAt: created}
}

func titles(items []Task) []string {
	out := make([]string, len(items))
	for i, t := range items {
		out[i] = t.Title
	}
	return out
}

func TestApplyFilters_Search(t *testing.T) {
	now := time.Now()
	items := []Task{
		{Title: "Buy groceries", CreatedAt: now},
		{Title: "Call mom", Description: "about groceries", CreatedAt: now},
		{Title: "Gym", Category: "Groceries run", CreatedAt: now},
		{Title: "Laundry", CreatedAt: now},
	}

	got := ApplyFilters(items, ListQuery{Search: "GROCERIES"})
	require.Equal(t, []string{"Buy groceries", "Call mom", "Gym"}, titles(got))
}

func TestApplyFilters_EmptyFieldsNeverMatch(t *testing.T) {
	items := []Task{{Title: "Plain", Description: "", Category: ""}}

	got := ApplyFilters(items, ListQuery{Search: "xyz"})
	require.Empty(t, got)
}

func TestApplyFilters_Status(t *testing.T) {
	items := []Task{
		{Title: "a", Completed: false},
		{Title: "b", Completed: true},
	}

	require.Equal(t, []string{"a"}, titles(ApplyFilters(items, ListQuery{Status: "pending"})))
	require.Equal(t, []string{"b"}, titles(ApplyFilters(items, ListQuery{Status: "completed"})))

	// anything else is not a filter
	require.Len(t, ApplyFilters(items, ListQuery{Status: "all"}), 2)
	require.Len(t, ApplyFilters(items, ListQuery{Status: "bogus"}), 2)
}

func TestApplyFilters_PriorityExactMatch(t *testing.T) {
	items := []Task{
		{Title: "a", Priority: "high"},
		{Title: "b", Priority: "low"},
		{Title: "c", Priority: "high"},
	}

	require.Equal(t, []string{"a", "c"}, titles(ApplyFilters(items, ListQuery{Priority: "high"})))
	require.Empty(t, ApplyFilters(items, ListQuery{Priority: "High"}))
}

func TestApplyFilters_CategorySubstring(t *testing.T) {
	items := []Task{
		{Title: "a", Category: "Work Projects"},
		{Title: "b", Category: "personal"},
		{Title: "c"},
	}

	require.Equal(t, []string{"a"}, titles(ApplyFilters(items, ListQuery{Category: "work"})))
}

func TestApplyFilters_Conjunctive(t *testing.T) {
	items := []Task{
		{Title: "a", Priority: "high", Completed: false},
		{Title: "b", Priority: "high", Completed: true},
		{Title: "c", Priority: "low", Completed: false},
	}

	got := ApplyFilters(items, ListQuery{Status: "pending", Priority: "high"})
	require.Equal(t, []string{"a"}, titles(got))

	// intersection of each filter applied alone
	byStatus := ApplyFilters(items, ListQuery{Status: "pending"})
	byPriority := ApplyFilters(items, ListQuery{Priority: "high"})
	require.Subset(t, titles(byStatus), titles(got))
	require.Subset(t, titles(byPriority), titles(got))
}

func TestSortTasks_Title(t *testing.T) {
	items := []Task{
		{Title: "banana"},
		{Title: "Apple"},
		{Title: "cherry"},
	}

	SortTasks(items, "title")
	require.Equal(t, []string{"Apple", "banana", "cherry"}, titles(items))
}

func TestSortTasks_Priority(t *testing.T) {
	items := []Task{
		{Title: "l", Priority: "low"},
		{Title: "u", Priority: "urgent"},
		{Title: "h", Priority: "high"},
		{Title: "m", Priority: "medium"},
	}

	SortTasks(items, "priority")
	require.Equal(t, []string{"h", "m", "l", "u"}, titles(items))
}

func TestSortTasks_PriorityStable(t *testing.T) {
	items := []Task{
		{Title: "h1", Priority: "high"},
		{Title: "h2", Priority: "high"},
		{Title: "h3", Priority: "high"},
	}

	SortTasks(items, "priority")
	require.Equal(t, []string{"h1", "h2", "h3"}, titles(items))
}

func TestSortTasks_DueDateNilLast(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	items := []Task{
		{Title: "none"},
		{Title: "late", DueDate: &d2},
		{Title: "early", DueDate: &d1},
	}

	SortTasks(items, "due_date")
	require.Equal(t, []string{"early", "late", "none"}, titles(items))
}

func TestSortTasks_DefaultCreatedDesc(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Task{
		taskAt("old", base),
		taskAt("new", base.Add(2*time.Hour)),
		taskAt("mid", base.Add(time.Hour)),
	}

	SortTasks(items, "")
	require.Equal(t, []string{"new", "mid", "old"}, titles(items))

	// unknown keys fall back to the default
	SortTasks(items, "bogus")
	require.Equal(t, []string{"new", "mid", "old"}, titles(items))
}

func TestListing_Deterministic(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Task{
		taskAt("a", base.Add(time.Minute)),
		taskAt("b", base),
		taskAt("c", base.Add(time.Hour)),
	}

	first := ApplyFilters(items, ListQuery{})
	SortTasks(first, "title")
	second := ApplyFilters(items, ListQuery{})
	SortTasks(second, "title")
	require.Equal(t, titles(first), titles(second))
}
