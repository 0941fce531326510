package task

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsIdentityAndCreation(t *testing.T) {
	now := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	deadline := now.AddDate(0, 0, 7)

	tk := New("Finish lab report", "chapters 3-4", deadline, now)
	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, "Finish lab report", tk.Title)
	assert.Equal(t, now, tk.CreatedAt)
	assert.False(t, tk.Completed)
	assert.Nil(t, tk.CompletedAt)
}

func TestNewIDUniqueWithinSession(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID(now)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestSetCompletedKeepsTimestampInvariant(t *testing.T) {
	now := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	tk := New("t", "", now.AddDate(0, 0, 1), now)

	done := tk.SetCompleted(true, now.Add(time.Hour))
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, now.Add(time.Hour), *done.CompletedAt)

	reopened := done.SetCompleted(false, now.Add(2*time.Hour))
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestIsOverdue(t *testing.T) {
	deadline := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.January, 11, 0, 0, 0, 0, time.UTC)

	tk := Task{ID: "a", Title: "a", Deadline: deadline}
	assert.True(t, tk.IsOverdue(now))

	done := tk.SetCompleted(true, now)
	assert.False(t, done.IsOverdue(now))
	assert.False(t, done.IsOverdue(now.AddDate(1, 0, 0)))

	assert.False(t, tk.IsOverdue(deadline.Add(-time.Minute)))
	assert.False(t, tk.IsOverdue(deadline))
}

func TestDueOnIgnoresTimeOfDay(t *testing.T) {
	tk := Task{Deadline: time.Date(2024, time.March, 15, 23, 30, 0, 0, time.Local)}
	assert.True(t, tk.DueOn(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)))
	assert.False(t, tk.DueOn(time.Date(2024, time.March, 16, 0, 0, 0, 0, time.Local)))
}

func TestJSONRoundTripLossless(t *testing.T) {
	now := time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC)
	completedAt := now.Add(48 * time.Hour)
	tasks := []Task{
		{
			ID:             "1",
			Title:          "full",
			Description:    "every field set",
			Deadline:       now.AddDate(0, 0, 10),
			Completed:      true,
			CreatedAt:      now,
			CompletedAt:    &completedAt,
			Category:       CategoryExam,
			Priority:       PriorityHigh,
			EstimatedHours: 2.5,
		},
		{
			ID:        "2",
			Title:     "minimal",
			Deadline:  now.AddDate(0, 0, 3),
			CreatedAt: now,
		},
	}

	data, err := json.Marshal(tasks)
	require.NoError(t, err)

	var got []Task
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, tasks, got)
}

func TestJSONOmitsUnsetOptionals(t *testing.T) {
	tk := Task{ID: "1", Title: "minimal", Deadline: time.Now().UTC(), CreatedAt: time.Now().UTC()}
	data, err := json.Marshal(tk)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "completedAt")
	assert.NotContains(t, fields, "category")
	assert.NotContains(t, fields, "priority")
	assert.NotContains(t, fields, "estimatedTime")
	assert.NotContains(t, fields, "description")
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(""))
	for _, c := range Categories() {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("Chores"))
}

func TestSortByDeadlineCompletedLast(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		{ID: "done-early", Deadline: now.AddDate(0, 0, 1), Completed: true},
		{ID: "late", Deadline: now.AddDate(0, 0, 5)},
		{ID: "soon", Deadline: now.AddDate(0, 0, 2)},
	}
	SortByDeadline(tasks)
	assert.Equal(t, "soon", tasks[0].ID)
	assert.Equal(t, "late", tasks[1].ID)
	assert.Equal(t, "done-early", tasks[2].ID)
}

func TestReplaceAndRemove(t *testing.T) {
	tasks := []Task{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}}

	updated := Replace(tasks, Task{ID: "b", Title: "changed"})
	assert.Equal(t, "two", tasks[1].Title)
	assert.Equal(t, "changed", updated[1].Title)

	removed := Remove(tasks, "a")
	require.Len(t, removed, 1)
	assert.Equal(t, "b", removed[0].ID)

	assert.Len(t, Remove(tasks, "missing"), 2)
}
