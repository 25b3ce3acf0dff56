package tasks

import (
	"sort"
	"strings"
)

// ListQuery carries the optional filter and sort parameters for a listing.
// Empty strings mean "no filter of this kind".
type ListQuery struct {
	Search   string
	Status   string // pending, completed
	Priority string // low, medium, high
	Category string
	Sort     string // title, priority, due_date; anything else sorts by created_at desc
}

// priority sort ranks; anything unrecognized sorts last
var priorityRank = map[string]int{
	"high":   0,
	"medium": 1,
	"low":    2,
}

// ApplyFilters returns the tasks matching every supplied filter. Filters are
// conjunctive, so application order does not change the result.
func ApplyFilters(items []Task, q ListQuery) []Task {
	if q.Search != "" {
		search := strings.ToLower(q.Search)
		filtered := make([]Task, 0, len(items))
		for _, t := range items {
			if strings.Contains(strings.ToLower(t.Title), search) ||
				(t.Description != "" && strings.Contains(strings.ToLower(t.Description), search)) ||
				(t.Category != "" && strings.Contains(strings.ToLower(t.Category), search)) {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}

	// Any status other than pending/completed is treated as no filter.
	if q.Status == "pending" || q.Status == "completed" {
		wantCompleted := q.Status == "completed"
		filtered := make([]Task, 0, len(items))
		for _, t := range items {
			if t.Completed == wantCompleted {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}

	if q.Priority != "" {
		filtered := make([]Task, 0, len(items))
		for _, t := range items {
			if t.Priority == q.Priority {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}

	if q.Category != "" {
		category := strings.ToLower(q.Category)
		filtered := make([]Task, 0, len(items))
		for _, t := range items {
			if t.Category != "" && strings.Contains(strings.ToLower(t.Category), category) {
				filtered = append(filtered, t)
			}
		}
		items = filtered
	}

	return items
}

// SortTasks orders tasks in place by the requested key. The default, and the
// fallback for unknown keys, is most recently created first.
func SortTasks(items []Task, key string) {
	switch key {
	case "title":
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	case "priority":
		sort.SliceStable(items, func(i, j int) bool {
			return rankPriority(items[i].Priority) < rankPriority(items[j].Priority)
		})
	case "due_date":
		// Tasks without a due date sort after all tasks that have one.
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].DueDate, items[j].DueDate
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.Before(*b)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	}
}

func rankPriority(priority string) int {
	if rank, ok := priorityRank[priority]; ok {
		return rank
	}
	return len(priorityRank)
}
