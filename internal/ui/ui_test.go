package ui

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JustSimplyTom/HACKATHON/internal/config"
	"github.com/JustSimplyTom/HACKATHON/internal/storage"
	"github.com/JustSimplyTom/HACKATHON/internal/task"
)

func newTestModel(t *testing.T, tasks []task.Task) Model {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.Open(filepath.Join(dir, "planner.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg, err := config.LoadOrCreate(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		store:    store,
		cfg:      cfg,
		tasks:    tasks,
		view:     viewList,
		mode:     modeBrowse,
		input:    ti,
		calFocus: time.Now(),
	}
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func pressRune(m Model, s string) Model {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func typeString(m Model, s string) Model {
	for _, r := range s {
		m = pressRune(m, string(r))
	}
	return m
}

func reportTasks(n int) []task.Task {
	now := time.Now()
	tasks := make([]task.Task, 0, n)
	for i := 0; i < n; i++ {
		tasks = append(tasks, task.Task{
			ID:        fmt.Sprintf("t%d", i+1),
			Title:     fmt.Sprintf("report %d", i+1),
			Deadline:  now.AddDate(0, 0, i+1),
			CreatedAt: now,
		})
	}
	return tasks
}

// Editing the last match of a live search filter so it no longer matches
// shrinks the visible set; the next toggle must index the clamped cursor,
// not the stale one.
func TestEditUnderFilterKeepsCursorValid(t *testing.T) {
	m := newTestModel(t, reportTasks(5))

	m = pressRune(m, "/")
	require.Equal(t, modeSearch, m.mode)
	m = typeString(m, "report")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "report", m.query)
	require.Len(t, m.visibleTasks(), 5)

	for i := 0; i < 4; i++ {
		m = pressRune(m, "j")
	}
	require.Equal(t, 4, m.cursor)

	m = pressRune(m, "e")
	require.Equal(t, modeForm, m.mode)
	m.input.SetValue("zzz")
	for i := 0; i < len(formFields()); i++ {
		m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.Equal(t, modeBrowse, m.mode)
	require.Len(t, m.visibleTasks(), 4)
	assert.Less(t, m.cursor, len(m.visibleTasks()))

	require.NotPanics(t, func() {
		m = press(m, tea.KeyMsg{Type: tea.KeySpace})
	})
	visible := m.visibleTasks()
	completed := task.Filter(m.tasks, func(tk task.Task) bool { return tk.Completed })
	require.Len(t, completed, 1)
	assert.Less(t, m.cursor, len(visible))
}

func TestListKeysOnEmptyList(t *testing.T) {
	m := newTestModel(t, nil)
	require.NotPanics(t, func() {
		m = press(m, tea.KeyMsg{Type: tea.KeySpace})
		m = pressRune(m, "d")
		m = pressRune(m, "e")
		m = pressRune(m, "j")
	})
	assert.Equal(t, 0, m.cursor)
	assert.Empty(t, m.tasks)
}

func TestSearchFiltersLiveAndClears(t *testing.T) {
	now := time.Now()
	m := newTestModel(t, []task.Task{
		{ID: "a", Title: "math exam", Deadline: now.AddDate(0, 0, 1), CreatedAt: now},
		{ID: "b", Title: "grocery run", Deadline: now.AddDate(0, 0, 2), CreatedAt: now},
	})

	m = pressRune(m, "/")
	m = typeString(m, "math")
	assert.Len(t, m.visibleTasks(), 1)
	assert.Equal(t, "math exam", m.visibleTasks()[0].Title)

	m = press(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.query)
	assert.Len(t, m.visibleTasks(), 2)
}

func TestCursorStopsAtListEnds(t *testing.T) {
	m := newTestModel(t, reportTasks(2))
	m = pressRune(m, "k")
	assert.Equal(t, 0, m.cursor)
	for i := 0; i < 5; i++ {
		m = pressRune(m, "j")
	}
	assert.Equal(t, 1, m.cursor)
}

func TestWindowResizeFloorsInputWidth(t *testing.T) {
	m := newTestModel(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 4, Height: 10})
	m = next.(Model)
	assert.Equal(t, 10, m.input.Width)
}
