// Package taskquery is the single filter/sort/stats engine shared by every
// consumer of a user's task list. It is pure: no I/O, no shared state.
package taskquery

import (
	"sort"
	"strings"
	"time"

	"github.com/Alden-Crist/Planzee/internal/domain"
)

type Filter string

const (
	FilterAll    Filter = "all"
	FilterToday  Filter = "today"
	FilterWeek   Filter = "week"
	FilterHigh   Filter = "high"
	FilterMedium Filter = "medium"
	FilterLow    Filter = "low"
)

// ParseFilter matches case-insensitively; empty input means all.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return FilterAll, true
	case FilterAll:
		return FilterAll, true
	case FilterToday:
		return FilterToday, true
	case FilterWeek:
		return FilterWeek, true
	case FilterHigh:
		return FilterHigh, true
	case FilterMedium:
		return FilterMedium, true
	case FilterLow:
		return FilterLow, true
	}
	return "", false
}

type Sort string

const (
	SortNone     Sort = ""
	SortNewest   Sort = "newest"
	SortOldest   Sort = "oldest"
	SortPriority Sort = "priority"
)

// ParseSort matches case-insensitively; empty input means no sorting.
func ParseSort(s string) (Sort, bool) {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortNone:
		return SortNone, true
	case SortNewest:
		return SortNewest, true
	case SortOldest:
		return SortOldest, true
	case SortPriority:
		return SortPriority, true
	}
	return "", false
}

// FilterTasks keeps the tasks matching f, evaluated against now. Tasks
// without a due date never match today or week and never raise an error.
func FilterTasks(tasks []domain.Task, f Filter, now time.Time) []domain.Task {
	if f == FilterAll {
		return tasks
	}

	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		switch f {
		case FilterToday:
			if t.DueDate != nil && sameDay(*t.DueDate, now) {
				out = append(out, t)
			}
		case FilterWeek:
			// Inclusive window [now, now+7d] at the same time of day.
			if t.DueDate != nil && !t.DueDate.Before(now) && !t.DueDate.After(now.AddDate(0, 0, 7)) {
				out = append(out, t)
			}
		case FilterHigh, FilterMedium, FilterLow:
			if strings.EqualFold(string(t.Priority), string(f)) {
				out = append(out, t)
			}
		}
	}
	return out
}

// SortTasks returns a sorted copy. Priority sorting is stable: tasks with
// equal rank keep their relative input order.
func SortTasks(tasks []domain.Task, s Sort) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)

	switch s {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		})
	}
	return out
}

// Stats summarizes a user's full task set, independent of any active filter.
type Stats struct {
	Total          int `json:"total"`
	LowPriority    int `json:"low_priority"`
	MediumPriority int `json:"medium_priority"`
	HighPriority   int `json:"high_priority"`
	Completed      int `json:"completed"`
}

func Compute(tasks []domain.Task) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch strings.ToLower(string(t.Priority)) {
		case "low":
			s.LowPriority++
		case "medium":
			s.MediumPriority++
		case "high":
			s.HighPriority++
		}
		if domain.NormalizeCompleted(t.Completed) {
			s.Completed++
		}
	}
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
