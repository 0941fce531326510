package task

import (
	"sort"
	"strings"
	"time"
)

type Category string

const (
	CategoryGroupProject Category = "Group Project"
	CategoryExam         Category = "Exam"
	CategoryWorkShift    Category = "Work Shift"
	CategoryAssignment   Category = "Assignment"
	CategoryStudy        Category = "Study"
	CategoryPersonal     Category = "Personal"
	CategoryMeeting      Category = "Meeting"
	CategoryDeadline     Category = "Deadline"
)

// Categories lists the closed set of labels a task may carry, in the
// order forms and filters present them.
func Categories() []Category {
	return []Category{
		CategoryGroupProject,
		CategoryExam,
		CategoryWorkShift,
		CategoryAssignment,
		CategoryStudy,
		CategoryPersonal,
		CategoryMeeting,
		CategoryDeadline,
	}
}

// ValidCategory reports whether c is empty (unset) or one of the closed set.
func ValidCategory(c Category) bool {
	if c == "" {
		return true
	}
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func ValidPriority(p Priority) bool {
	return p == "" || p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is the sole domain entity. Optional fields are absent when unset:
// pointers for timestamps, zero values plus omitempty for the rest. null is
// never written.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Deadline       time.Time  `json:"deadline"`
	Completed      bool       `json:"completed"`
	CreatedAt      time.Time  `json:"createdAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	Category       Category   `json:"category,omitempty"`
	Priority       Priority   `json:"priority,omitempty"`
	EstimatedHours float64    `json:"estimatedTime,omitempty"`
}

// New builds a task with a fresh ID and CreatedAt fixed to now. The caller
// validates the title before calling; New does not.
func New(title, description string, deadline, now time.Time) Task {
	return Task{
		ID:          NewID(now),
		Title:       title,
		Description: description,
		Deadline:    deadline,
		Completed:   false,
		CreatedAt:   now,
	}
}

// SetCompleted flips completion state, keeping CompletedAt present exactly
// when Completed is true.
func (t Task) SetCompleted(done bool, now time.Time) Task {
	t.Completed = done
	if done {
		at := now
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	return t
}

// IsOverdue reports whether the task is incomplete and its deadline instant
// has passed. Completed tasks are never overdue.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.Deadline.Before(now)
}

// DueOn reports whether the deadline falls on the same local calendar day
// as day. Time-of-day is ignored.
func (t Task) DueOn(day time.Time) bool {
	y1, m1, d1 := t.Deadline.Local().Date()
	y2, m2, d2 := day.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DueWithin reports whether the deadline lies in [now, now+d].
func (t Task) DueWithin(d time.Duration, now time.Time) bool {
	return !t.Deadline.Before(now) && !t.Deadline.After(now.Add(d))
}

func (t Task) CreatedWithin(d time.Duration, now time.Time) bool {
	return !t.CreatedAt.Before(now.Add(-d))
}

func (t Task) CompletedWithin(d time.Duration, now time.Time) bool {
	return t.Completed && t.CompletedAt != nil && !t.CompletedAt.Before(now.Add(-d))
}

// SearchText is the text projection the fuzzy matcher runs against.
func (t Task) SearchText() string {
	parts := []string{t.Title}
	if t.Description != "" {
		parts = append(parts, t.Description)
	}
	if t.Category != "" {
		parts = append(parts, string(t.Category))
	}
	if t.Priority != "" {
		parts = append(parts, string(t.Priority))
	}
	return strings.Join(parts, " ")
}

// SortByDeadline orders tasks earliest deadline first, completed tasks
// after pending ones. The sort is stable so equal keys keep their order.
func SortByDeadline(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}
		return tasks[i].Deadline.Before(tasks[j].Deadline)
	})
}

// Filter returns the tasks for which keep is true, in order.
func Filter(tasks []Task, keep func(Task) bool) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Replace returns a copy of tasks with the task matching updated.ID swapped
// out. Unknown IDs leave the slice unchanged.
func Replace(tasks []Task, updated Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i, t := range out {
		if t.ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

// Remove returns a copy of tasks without the task carrying id.
func Remove(tasks []Task, id string) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
